package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shirleys-kitchen/backend/internal/listview"
	"github.com/shirleys-kitchen/backend/internal/model"
	"github.com/shirleys-kitchen/backend/internal/store"
)

type RecipeHandler struct {
	store *store.RecipeStore
}

func NewRecipeHandler(s *store.RecipeStore) *RecipeHandler {
	return &RecipeHandler{store: s}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/favorite", h.ToggleFavorite)
	}
	router.GET("/favorites", h.ListFavorites)
	router.GET("/categories", h.ListCategories)
}

// ListRecipes derives the displayed subset from query parameters. All
// predicates are optional; absent ones pass everything.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	params := listview.Params{
		Category: model.Category(c.Query("category")),
		Search:   c.Query("q"),
		Owner:    c.Query("owner"),
	}

	if v := c.Query("min_rating"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		params.MinRating = n
	}

	if v := c.Query("max_time"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_time"})
			return
		}
		params.MaxMinutes = n
	}

	if ex := c.Query("exclude"); ex != "" {
		for _, term := range strings.Split(ex, ",") {
			if term = strings.TrimSpace(term); term != "" {
				params.Exclude = append(params.Exclude, term)
			}
		}
	}

	sortState := listview.DefaultSort
	switch key := listview.SortKey(c.Query("sort")); key {
	case listview.SortTitle, listview.SortDate, listview.SortTime, listview.SortRating:
		sortState.Key = key
	case "":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort key"})
		return
	}
	sortState.Descending = c.Query("direction") == "desc"

	recipes := listview.Apply(h.store.Recipes(), params, sortState)

	c.JSON(http.StatusOK, gin.H{
		"recipes":   recipes,
		"favorites": h.store.Favorites(),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")
	recipe, ok := h.store.Recipe(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":   recipe,
		"favorite": h.store.IsFavorite(id),
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !recipe.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	if err := recipe.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if recipe.Timestamp == 0 {
		recipe.Timestamp = time.Now().UnixMilli()
	}
	recipe.UserColor = model.AvatarColor(recipe.AddedBy, recipe.UserColor)

	if err := h.store.AddRecipe(c.Request.Context(), recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// UpdateRecipe replaces the recipe with the path id. An unknown id leaves
// the collection untouched; the response is the same either way.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")
	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe.ID = id

	if !recipe.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	if err := recipe.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe.UserColor = model.AvatarColor(recipe.AddedBy, recipe.UserColor)

	if err := h.store.UpdateRecipe(c.Request.Context(), recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"id":      id,
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteRecipe(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      id,
	})
}

func (h *RecipeHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	favorited, err := h.store.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        id,
		"favorited": favorited,
	})
}

func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"recipes": h.store.FavoriteRecipes(),
	})
}

func (h *RecipeHandler) ListCategories(c *gin.Context) {
	counts := make(map[model.Category]int)
	for _, r := range h.store.Recipes() {
		counts[r.Category]++
	}

	categories := make([]CategoryCount, 0, len(model.Categories()))
	for _, cat := range model.Categories() {
		categories = append(categories, CategoryCount{
			Category: cat,
			Count:    counts[cat],
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
