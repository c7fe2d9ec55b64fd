// Package store owns the authoritative recipe collection and favorites set.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/shirleys-kitchen/backend/internal/database"
	"github.com/shirleys-kitchen/backend/internal/model"
)

// ErrCorruptState reports that persisted state could not be parsed at
// startup. The store recovers by falling back to the built-in collection;
// the error is an advisory for the caller, not a failure.
var ErrCorruptState = errors.New("stored recipe data is corrupted")

// RecipeStore holds the in-memory recipe collection and favorites set and
// writes every mutation back to the blob store. It is the single writer;
// concurrent HTTP handlers see a consistent snapshot through the mutex.
type RecipeStore struct {
	mu        sync.RWMutex
	blobs     database.BlobStore
	seed      []model.Recipe
	recipes   []model.Recipe
	favorites []string
	onChange  func([]model.Recipe)
}

// New creates a RecipeStore backed by the given blob store and built-in
// seed collection. Call Load before using it.
func New(blobs database.BlobStore, seed []model.Recipe) *RecipeStore {
	return &RecipeStore{
		blobs: blobs,
		seed:  seed,
	}
}

// OnChange registers a listener invoked with a snapshot of the collection
// after Load and after every recipe mutation. The search service uses this
// to refresh its index. Must be set before Load.
func (s *RecipeStore) OnChange(fn func([]model.Recipe)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Load reconciles persisted state with the built-in collection:
// for every seed recipe, a persisted record with the same id wins (it holds
// the user's edits); seed recipes the user never touched come through
// unchanged; whatever remains in the persisted set are user-created recipes
// and are appended in their stored order. Corrupt persisted data falls back
// to the seed collection and returns ErrCorruptState as a non-fatal
// advisory. Favorites load independently; a missing blob means none.
func (s *RecipeStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var advisory error

	data, err := s.blobs.Get(ctx, database.RecipesKey)
	switch {
	case errors.Is(err, database.ErrKeyNotFound):
		// First run.
		s.recipes = cloneRecipes(s.seed)
	case err != nil:
		return fmt.Errorf("failed to load recipes: %w", err)
	default:
		var persisted []model.Recipe
		if jsonErr := json.Unmarshal(data, &persisted); jsonErr != nil {
			log.Printf("[RecipeStore] corrupt recipe blob, falling back to built-in collection: %v", jsonErr)
			s.recipes = cloneRecipes(s.seed)
			advisory = ErrCorruptState
		} else {
			s.recipes = reconcile(s.seed, persisted)
		}
	}

	if advisory == nil {
		favData, favErr := s.blobs.Get(ctx, database.FavoritesKey)
		switch {
		case errors.Is(favErr, database.ErrKeyNotFound):
			s.favorites = nil
		case favErr != nil:
			return fmt.Errorf("failed to load favorites: %w", favErr)
		default:
			var favs []string
			if jsonErr := json.Unmarshal(favData, &favs); jsonErr != nil {
				log.Printf("[RecipeStore] corrupt favorites blob, starting empty: %v", jsonErr)
				s.favorites = nil
				advisory = ErrCorruptState
			} else {
				s.favorites = favs
			}
		}
	}

	if err := s.persistRecipesLocked(ctx); err != nil {
		return err
	}
	s.notifyLocked()
	return advisory
}

// reconcile merges persisted state onto the seed collection by id.
func reconcile(seed, persisted []model.Recipe) []model.Recipe {
	stored := make(map[string]model.Recipe, len(persisted))
	for _, r := range persisted {
		stored[r.ID] = r
	}

	merged := make([]model.Recipe, 0, len(persisted))
	for _, r := range seed {
		if kept, ok := stored[r.ID]; ok {
			merged = append(merged, kept)
			delete(stored, r.ID)
		} else {
			merged = append(merged, r)
		}
	}

	// Remaining entries are user-created; keep their stored order.
	for _, r := range persisted {
		if _, ok := stored[r.ID]; ok {
			merged = append(merged, r)
		}
	}
	return merged
}

// Recipes returns a snapshot of the collection in display order.
func (s *RecipeStore) Recipes() []model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecipes(s.recipes)
}

// Recipe returns the recipe with the given id, if present.
func (s *RecipeStore) Recipe(id string) (model.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return model.Recipe{}, false
}

// Favorites returns a snapshot of the favorited recipe ids.
func (s *RecipeStore) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.favorites...)
}

// IsFavorite reports whether the id is currently favorited.
func (s *RecipeStore) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.favorites, id) >= 0
}

// FavoriteRecipes joins favorites against the live collection. Favorite ids
// whose recipe has been deleted simply drop out of the result.
func (s *RecipeStore) FavoriteRecipes() []model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	favSet := make(map[string]struct{}, len(s.favorites))
	for _, id := range s.favorites {
		favSet[id] = struct{}{}
	}
	var out []model.Recipe
	for _, r := range s.recipes {
		if _, ok := favSet[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// AddRecipe appends a recipe to the collection and persists. The caller is
// responsible for supplying a fresh unique id.
func (s *RecipeStore) AddRecipe(ctx context.Context, r model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = append(s.recipes, r)
	if err := s.persistRecipesLocked(ctx); err != nil {
		return err
	}
	s.notifyLocked()
	return nil
}

// UpdateRecipe replaces the entry whose id matches. An unknown id leaves the
// collection unchanged.
func (s *RecipeStore) UpdateRecipe(ctx context.Context, r model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recipes {
		if s.recipes[i].ID == r.ID {
			s.recipes[i] = r
			break
		}
	}
	if err := s.persistRecipesLocked(ctx); err != nil {
		return err
	}
	s.notifyLocked()
	return nil
}

// DeleteRecipe removes the matching entry and persists. Favorites are left
// alone; a dangling favorite id is harmless and disappears from any joined
// view.
func (s *RecipeStore) DeleteRecipe(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.recipes[:0]
	for _, r := range s.recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.recipes = kept
	if err := s.persistRecipesLocked(ctx); err != nil {
		return err
	}
	s.notifyLocked()
	return nil
}

// ToggleFavorite adds the id to the favorites set if absent, removes it if
// present, and persists the favorites blob only. Returns whether the id is
// favorited after the toggle.
func (s *RecipeStore) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(s.favorites, id); i >= 0 {
		s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
	} else {
		s.favorites = append(s.favorites, id)
	}

	data, err := json.Marshal(favoritesOrEmpty(s.favorites))
	if err != nil {
		return false, fmt.Errorf("failed to marshal favorites: %w", err)
	}
	if err := s.blobs.Set(ctx, database.FavoritesKey, data); err != nil {
		return false, err
	}
	return indexOf(s.favorites, id) >= 0, nil
}

// ImportRecipes merges an external list into the collection by id: matching
// entries are overwritten in place, new entries are appended in import
// order. The merge is idempotent per id.
func (s *RecipeStore) ImportRecipes(ctx context.Context, imported []model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int, len(s.recipes))
	for i, r := range s.recipes {
		index[r.ID] = i
	}
	for _, r := range imported {
		if i, ok := index[r.ID]; ok {
			s.recipes[i] = r
		} else {
			index[r.ID] = len(s.recipes)
			s.recipes = append(s.recipes, r)
		}
	}

	if err := s.persistRecipesLocked(ctx); err != nil {
		return err
	}
	s.notifyLocked()
	return nil
}

func (s *RecipeStore) persistRecipesLocked(ctx context.Context) error {
	data, err := json.Marshal(s.recipes)
	if err != nil {
		return fmt.Errorf("failed to marshal recipes: %w", err)
	}
	if err := s.blobs.Set(ctx, database.RecipesKey, data); err != nil {
		return err
	}
	return nil
}

func (s *RecipeStore) notifyLocked() {
	if s.onChange != nil {
		s.onChange(cloneRecipes(s.recipes))
	}
}

func cloneRecipes(in []model.Recipe) []model.Recipe {
	out := make([]model.Recipe, len(in))
	copy(out, in)
	return out
}

func favoritesOrEmpty(favs []string) []string {
	if favs == nil {
		return []string{}
	}
	return favs
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
