package model

import "strings"

// Category is the closed set of cookbook sections. Recipes never carry a
// category outside this list, so filter and sort code can match exhaustively.
type Category string

const (
	CategoryAppetizers    Category = "Appetizers & Dips"
	CategorySoupsSalads   Category = "Soups & Salads"
	CategoryBreadsMuffins Category = "Breads & Muffins"
	CategoryMainDishes    Category = "Main Dishes"
	CategorySideDishes    Category = "Side Dishes"
	CategoryDesserts      Category = "Desserts & Baked Goods"
	CategorySauces        Category = "Sauces, Condiments & Extras"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryAppetizers,
		CategorySoupsSalads,
		CategoryBreadsMuffins,
		CategoryMainDishes,
		CategorySideDishes,
		CategoryDesserts,
		CategorySauces,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAppetizers, CategorySoupsSalads, CategoryBreadsMuffins,
		CategoryMainDishes, CategorySideDishes, CategoryDesserts, CategorySauces:
		return true
	}
	return false
}

// Recipe is a single cookbook entry. JSON field names match the persisted
// blob format, so stored collections and import/export files round-trip
// without translation.
type Recipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Yields       string   `json:"yields,omitempty"`
	PrepTime     string   `json:"prepTime,omitempty"`
	CookTime     string   `json:"cookTime,omitempty"`
	Temp         string   `json:"temp,omitempty"`
	Description  string   `json:"description,omitempty"`
	AddedBy      string   `json:"addedBy"`
	UserColor    string   `json:"userColor,omitempty"`
	Timestamp    int64    `json:"timestamp"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Rating       int      `json:"rating,omitempty"`
}

// ValidationError describes a recipe that fails required-field checks.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the required fields. The store never validates; this
// belongs to the edit surface (API handlers).
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ValidationError{Field: "title", Message: "title is required"}
	}
	if len(r.Ingredients) == 0 {
		return ValidationError{Field: "ingredients", Message: "at least one ingredient is required"}
	}
	if len(r.Instructions) == 0 {
		return ValidationError{Field: "instructions", Message: "at least one instruction is required"}
	}
	if strings.TrimSpace(r.AddedBy) == "" {
		return ValidationError{Field: "addedBy", Message: "attribution is required"}
	}
	if r.Rating < 0 || r.Rating > 5 {
		return ValidationError{Field: "rating", Message: "rating must be between 0 and 5"}
	}
	return nil
}
