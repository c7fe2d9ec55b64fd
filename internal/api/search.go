package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shirleys-kitchen/backend/internal/service"
)

type SearchHandler struct {
	search *service.SearchService
}

func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/search", h.Search)
}

// Search runs the title search against the service index. A closed client
// connection cancels the in-flight lookup.
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.search.SearchRecipes(c.Request.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, c.Request.Context().Err()) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
