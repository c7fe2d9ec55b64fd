package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shirleys-kitchen/backend/config"
	"github.com/shirleys-kitchen/backend/internal/database"
	"github.com/shirleys-kitchen/backend/internal/seed"
	"github.com/shirleys-kitchen/backend/internal/server"
	"github.com/shirleys-kitchen/backend/internal/service"
	"github.com/shirleys-kitchen/backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var blobs database.BlobStore
	var redisClient *redis.Client

	switch cfg.StorageBackend {
	case config.StorageRedis:
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		blobs = database.NewRedisStore(redisClient)
	default:
		local, err := database.NewLocalStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open local storage: %v", err)
		}
		blobs = local

		// Redis is optional with the sqlite backend; without it the tips
		// cache and assist rate limiting are simply off.
		if rc, rcErr := database.NewRedisClient(cfg); rcErr == nil {
			redisClient = rc
		} else {
			log.Printf("Redis unavailable, continuing without cache: %v", rcErr)
		}
	}

	recipeStore := store.New(blobs, seed.Recipes())
	searchService := service.NewSearchService()
	recipeStore.OnChange(searchService.UpdateIndex)

	var advisory string
	if err := recipeStore.Load(ctx); err != nil {
		if !errors.Is(err, store.ErrCorruptState) {
			log.Fatalf("Failed to load recipes: %v", err)
		}
		advisory = "persisted data was corrupted and has been reset to the built-in collection"
		log.Printf("Warning: %s", advisory)
	}

	var assistant service.Assistant
	var images service.ImageStore
	if gemini, gErr := service.NewGeminiService(redisClient); gErr != nil {
		log.Printf("AI assistance disabled: %v", gErr)
	} else {
		assistant = gemini

		var s3cfg *config.S3Config
		if config.S3Enabled() {
			s3cfg, err = config.NewS3Config(ctx)
			if err != nil {
				log.Fatalf("Failed to initialize S3: %v", err)
			}
		}
		images = service.NewImageService(s3cfg)
	}

	srv := server.NewServer(server.Deps{
		Config:          cfg,
		Store:           recipeStore,
		Search:          searchService,
		Assistant:       assistant,
		Images:          images,
		Redis:           redisClient,
		StorageAdvisory: advisory,
	})

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
