package api

import "github.com/shirleys-kitchen/backend/internal/model"

// CategoryCount pairs a category with the number of recipes in it.
type CategoryCount struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
}

// SubstitutionRequest asks the assistant an ingredient question about a
// recipe.
type SubstitutionRequest struct {
	Question string `json:"question" binding:"required"`
}

// GenerateImageRequest selects the resolution tier for a generated photo.
type GenerateImageRequest struct {
	Size string `json:"size"`
}
