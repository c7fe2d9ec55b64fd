package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/shirleys-kitchen/backend/config"
	"github.com/shirleys-kitchen/backend/internal/api"
	"github.com/shirleys-kitchen/backend/internal/middleware"
	"github.com/shirleys-kitchen/backend/internal/service"
	"github.com/shirleys-kitchen/backend/internal/store"
)

// Deps carries everything the HTTP layer needs. Assistant and Images are nil
// when no Gemini key is configured; the assist routes then answer 503.
type Deps struct {
	Config    *config.Config
	Store     *store.RecipeStore
	Search    *service.SearchService
	Assistant service.Assistant
	Images    service.ImageStore
	Redis     *redis.Client

	// StorageAdvisory is a human-readable note set when startup had to
	// recover from corrupt persisted data. Surfaced on the health endpoint.
	StorageAdvisory string
}

// Server represents the HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
	deps   Deps
}

// NewServer builds the router and wires all handlers.
func NewServer(deps Deps) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{deps.Config.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{router: router, deps: deps}

	v1 := router.Group("/api/v1")
	v1.GET("/health", s.health)

	api.NewRecipeHandler(deps.Store).RegisterRoutes(v1)
	api.NewDataHandler(deps.Store).RegisterRoutes(v1)
	api.NewSearchHandler(deps.Search).RegisterRoutes(v1)

	if deps.Assistant != nil && deps.Images != nil {
		assistGroup := v1.Group("")
		if deps.Redis != nil {
			assistGroup.Use(middleware.NewAssistRateLimiter(deps.Redis).RateLimitMiddleware())
		}
		api.NewAssistHandler(deps.Store, deps.Assistant, deps.Images).RegisterRoutes(assistGroup)
	} else {
		v1.POST("/recipes/:id/assist/*action", func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":       "AI assistance is not configured",
				"reconfigure": true,
			})
		})
	}

	return s
}

func (s *Server) health(c *gin.Context) {
	resp := gin.H{
		"status":  "ok",
		"storage": s.deps.Config.StorageBackend,
		"recipes": len(s.deps.Store.Recipes()),
	}
	if s.deps.StorageAdvisory != "" {
		resp["storage_advisory"] = s.deps.StorageAdvisory
	}
	c.JSON(http.StatusOK, resp)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving and blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.deps.Config.ServerHost + ":" + s.deps.Config.ServerPort,
		Handler: s.router,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
