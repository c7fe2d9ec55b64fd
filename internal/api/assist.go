package api

import (
	"encoding/base64"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shirleys-kitchen/backend/internal/model"
	"github.com/shirleys-kitchen/backend/internal/service"
	"github.com/shirleys-kitchen/backend/internal/store"
)

// AssistHandler exposes the Gemini-backed helpers for a single recipe. Every
// route resolves the recipe first; the model never sees a raw id.
type AssistHandler struct {
	store     *store.RecipeStore
	assistant service.Assistant
	images    service.ImageStore
}

func NewAssistHandler(s *store.RecipeStore, assistant service.Assistant, images service.ImageStore) *AssistHandler {
	return &AssistHandler{
		store:     s,
		assistant: assistant,
		images:    images,
	}
}

func (h *AssistHandler) RegisterRoutes(router *gin.RouterGroup) {
	assist := router.Group("/recipes/:id/assist")
	{
		assist.POST("/tips", h.CookingTips)
		assist.POST("/substitutions", h.Substitutions)
		assist.POST("/image", h.GenerateImage)
		assist.POST("/speech", h.Speech)
	}
}

func (h *AssistHandler) CookingTips(c *gin.Context) {
	recipe, ok := h.resolve(c)
	if !ok {
		return
	}

	tips, err := h.assistant.CookingTips(c.Request.Context(), &recipe)
	if err != nil {
		h.assistError(c, "tips", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

func (h *AssistHandler) Substitutions(c *gin.Context) {
	recipe, ok := h.resolve(c)
	if !ok {
		return
	}

	var req SubstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	answer, err := h.assistant.SearchSubstitutions(c.Request.Context(), &recipe, req.Question)
	if err != nil {
		h.assistError(c, "substitutions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":    answer.Text,
		"sources": answer.Sources,
	})
}

// GenerateImage produces a photo for the recipe, stores it, and records the
// resulting URL on the recipe itself so it survives restarts.
func (h *AssistHandler) GenerateImage(c *gin.Context) {
	recipe, ok := h.resolve(c)
	if !ok {
		return
	}

	// The body is optional; an absent or malformed one means default size.
	var req GenerateImageRequest
	_ = c.ShouldBindJSON(&req)

	imageData, err := h.assistant.GenerateRecipeImage(c.Request.Context(), &recipe, req.Size)
	if err != nil {
		h.assistError(c, "image", err)
		return
	}

	url, err := h.images.StoreImage(c.Request.Context(), imageData)
	if err != nil {
		log.Printf("[AssistHandler] failed to store generated image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	recipe.ImageURL = url
	if err := h.store.UpdateRecipe(c.Request.Context(), recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

func (h *AssistHandler) Speech(c *gin.Context) {
	recipe, ok := h.resolve(c)
	if !ok {
		return
	}

	audio, err := h.assistant.SynthesizeSpeech(c.Request.Context(), &recipe)
	if err != nil {
		h.assistError(c, "speech", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"audio":    base64.StdEncoding.EncodeToString(audio),
		"mimeType": "audio/pcm;rate=24000",
	})
}

func (h *AssistHandler) resolve(c *gin.Context) (model.Recipe, bool) {
	recipe, ok := h.store.Recipe(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	}
	return recipe, ok
}

// assistError maps a stale or revoked API key to a distinct response so the
// client can prompt for reconfiguration instead of showing a dead end.
func (h *AssistHandler) assistError(c *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrEntityNotFound) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":       "AI model unavailable for the configured API key",
			"reconfigure": true,
		})
		return
	}
	log.Printf("[AssistHandler] %s failed: %v", op, err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "AI request failed"})
}
