// Command seed_recipes resets the configured blob store to the built-in
// recipe collection, or with -out writes the collection to a JSON backup
// file instead.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/shirleys-kitchen/backend/config"
	"github.com/shirleys-kitchen/backend/internal/database"
	"github.com/shirleys-kitchen/backend/internal/seed"
)

func main() {
	out := flag.String("out", "", "write the seed collection to this file instead of the blob store")
	flag.Parse()

	recipes := seed.Recipes()
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal seed recipes: %v", err)
	}

	if *out != "" {
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *out, err)
		}
		log.Printf("Wrote %d recipes to %s", len(recipes), *out)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var blobs database.BlobStore
	switch cfg.StorageBackend {
	case config.StorageRedis:
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		blobs = database.NewRedisStore(client)
	default:
		local, err := database.NewLocalStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open local storage: %v", err)
		}
		blobs = local
	}

	if err := blobs.Set(ctx, database.RecipesKey, data); err != nil {
		log.Fatalf("Failed to write recipes: %v", err)
	}
	if err := blobs.Set(ctx, database.FavoritesKey, []byte("[]")); err != nil {
		log.Fatalf("Failed to reset favorites: %v", err)
	}

	log.Printf("Seeded %d recipes into %s storage", len(recipes), cfg.StorageBackend)
}
