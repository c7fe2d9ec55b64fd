package service

import (
	"context"

	"github.com/shirleys-kitchen/backend/internal/model"
)

// Assistant is the AI collaborator contract consumed by the API layer.
// GeminiService is the production implementation; tests substitute fakes.
type Assistant interface {
	CookingTips(ctx context.Context, recipe *model.Recipe) (string, error)
	SearchSubstitutions(ctx context.Context, recipe *model.Recipe, question string) (*SubstitutionAnswer, error)
	GenerateRecipeImage(ctx context.Context, recipe *model.Recipe, size string) ([]byte, error)
	SynthesizeSpeech(ctx context.Context, recipe *model.Recipe) ([]byte, error)
}

// ImageStore persists generated images and yields a URL for the recipe
// record.
type ImageStore interface {
	StoreImage(ctx context.Context, imageData []byte) (string, error)
}

var (
	_ Assistant  = (*GeminiService)(nil)
	_ ImageStore = (*ImageService)(nil)
)
