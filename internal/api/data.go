package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shirleys-kitchen/backend/internal/model"
	"github.com/shirleys-kitchen/backend/internal/store"
)

// DataHandler serves whole-collection backup and restore.
type DataHandler struct {
	store *store.RecipeStore
}

func NewDataHandler(s *store.RecipeStore) *DataHandler {
	return &DataHandler{store: s}
}

func (h *DataHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/export", h.ExportRecipes)
	router.POST("/recipes/import", h.ImportRecipes)
}

// ExportRecipes streams the full collection as a downloadable JSON file.
func (h *DataHandler) ExportRecipes(c *gin.Context) {
	filename := fmt.Sprintf("shirleys_kitchen_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, h.store.Recipes())
}

// ImportRecipes merges an uploaded backup into the collection. The payload
// must be a JSON array; a non-empty array must carry id and title on its
// first element, which catches backups from unrelated apps before any data
// is touched.
func (h *DataHandler) ImportRecipes(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format: Must be a recipe array."})
		return
	}

	if len(raw) > 0 {
		var probe struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		}
		if err := json.Unmarshal(raw[0], &probe); err != nil || probe.ID == "" || probe.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format: Must be a recipe array."})
			return
		}
	}

	var imported []model.Recipe
	if err := json.Unmarshal(body, &imported); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format: Must be a recipe array."})
		return
	}

	if err := h.store.ImportRecipes(c.Request.Context(), imported); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Recipes imported successfully",
		"imported": len(imported),
		"total":    len(h.store.Recipes()),
	})
}
