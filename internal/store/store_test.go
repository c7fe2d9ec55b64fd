package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shirleys-kitchen/backend/internal/database"
	"github.com/shirleys-kitchen/backend/internal/model"
)

func testSeed() []model.Recipe {
	return []model.Recipe{
		{ID: "seed-1", Title: "Apple Pie", Category: model.CategoryDesserts, AddedBy: "Nan", Rating: 5},
		{ID: "seed-2", Title: "Banana Bread", Category: model.CategoryBreadsMuffins, AddedBy: "Wade"},
		{ID: "seed-3", Title: "Cranberries", Category: model.CategorySauces, AddedBy: "Nan"},
	}
}

func putJSON(t *testing.T, blobs database.BlobStore, key string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, blobs.Set(context.Background(), key, data))
}

func TestLoadFirstRunUsesSeed(t *testing.T) {
	blobs := database.NewMemoryStore()
	s := New(blobs, testSeed())

	require.NoError(t, s.Load(context.Background()))

	recipes := s.Recipes()
	require.Len(t, recipes, 3)
	assert.Equal(t, "Apple Pie", recipes[0].Title)

	// First run persists the seed collection immediately.
	data, err := blobs.Get(context.Background(), database.RecipesKey)
	require.NoError(t, err)
	var persisted []model.Recipe
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Len(t, persisted, 3)
}

func TestLoadReconcilesPersistedState(t *testing.T) {
	blobs := database.NewMemoryStore()

	// seed-1 was edited, seed-3 was deleted before this snapshot was taken,
	// and the user added their own recipe.
	putJSON(t, blobs, database.RecipesKey, []model.Recipe{
		{ID: "user-1", Title: "Wanda's Chili", Category: model.CategoryMainDishes, AddedBy: "Wanda"},
		{ID: "seed-1", Title: "Apple Pie (improved)", Category: model.CategoryDesserts, AddedBy: "Nan", Rating: 4},
		{ID: "seed-2", Title: "Banana Bread", Category: model.CategoryBreadsMuffins, AddedBy: "Wade"},
		{ID: "seed-3", Title: "Cranberries", Category: model.CategorySauces, AddedBy: "Nan"},
	})

	s := New(blobs, testSeed())
	require.NoError(t, s.Load(context.Background()))

	recipes := s.Recipes()
	require.Len(t, recipes, 4)

	// Seed order first, with the persisted edit winning.
	assert.Equal(t, "seed-1", recipes[0].ID)
	assert.Equal(t, "Apple Pie (improved)", recipes[0].Title)
	assert.Equal(t, "seed-2", recipes[1].ID)
	assert.Equal(t, "seed-3", recipes[2].ID)

	// User-created recipes come after, in stored order.
	assert.Equal(t, "user-1", recipes[3].ID)
}

func TestLoadCorruptBlobFallsBackToSeed(t *testing.T) {
	blobs := database.NewMemoryStore()
	require.NoError(t, blobs.Set(context.Background(), database.RecipesKey, []byte("{not json")))
	putJSON(t, blobs, database.FavoritesKey, []string{"seed-1"})

	s := New(blobs, testSeed())
	err := s.Load(context.Background())
	require.ErrorIs(t, err, ErrCorruptState)

	assert.Len(t, s.Recipes(), 3)
	// Favorites are not loaded when the recipe blob is corrupt.
	assert.Empty(t, s.Favorites())

	// The fallback collection was re-persisted over the corrupt blob.
	data, getErr := blobs.Get(context.Background(), database.RecipesKey)
	require.NoError(t, getErr)
	var persisted []model.Recipe
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Len(t, persisted, 3)
}

func TestLoadFavorites(t *testing.T) {
	blobs := database.NewMemoryStore()
	putJSON(t, blobs, database.RecipesKey, testSeed())
	putJSON(t, blobs, database.FavoritesKey, []string{"seed-2", "seed-3"})

	s := New(blobs, testSeed())
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, []string{"seed-2", "seed-3"}, s.Favorites())
	assert.True(t, s.IsFavorite("seed-2"))
	assert.False(t, s.IsFavorite("seed-1"))
}

func TestAddRecipePersistsAndNotifies(t *testing.T) {
	blobs := database.NewMemoryStore()
	s := New(blobs, testSeed())

	var notified []model.Recipe
	s.OnChange(func(rs []model.Recipe) { notified = rs })
	require.NoError(t, s.Load(context.Background()))
	require.Len(t, notified, 3)

	require.NoError(t, s.AddRecipe(context.Background(), model.Recipe{
		ID: "user-1", Title: "Hodge Podge", Category: model.CategorySideDishes, AddedBy: "Joanie",
	}))

	assert.Len(t, s.Recipes(), 4)
	assert.Len(t, notified, 4)

	data, err := blobs.Get(context.Background(), database.RecipesKey)
	require.NoError(t, err)
	var persisted []model.Recipe
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, "user-1", persisted[3].ID)
}

func TestUpdateRecipeUnknownIDIsNoOp(t *testing.T) {
	blobs := database.NewMemoryStore()
	s := New(blobs, testSeed())
	require.NoError(t, s.Load(context.Background()))

	before := s.Recipes()
	require.NoError(t, s.UpdateRecipe(context.Background(), model.Recipe{
		ID: "missing", Title: "Ghost", Category: model.CategoryDesserts, AddedBy: "Nan",
	}))

	assert.Equal(t, before, s.Recipes())
}

func TestDeleteRecipeLeavesFavoritesAlone(t *testing.T) {
	blobs := database.NewMemoryStore()
	s := New(blobs, testSeed())
	require.NoError(t, s.Load(context.Background()))

	_, err := s.ToggleFavorite(context.Background(), "seed-2")
	require.NoError(t, err)

	require.NoError(t, s.DeleteRecipe(context.Background(), "seed-2"))

	assert.Len(t, s.Recipes(), 2)
	// The id stays in the favorites set but drops out of the joined view.
	assert.Equal(t, []string{"seed-2"}, s.Favorites())
	assert.Empty(t, s.FavoriteRecipes())
}

func TestToggleFavoriteIsSelfInverse(t *testing.T) {
	blobs := database.NewMemoryStore()
	s := New(blobs, testSeed())
	require.NoError(t, s.Load(context.Background()))

	on, err := s.ToggleFavorite(context.Background(), "seed-1")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, s.IsFavorite("seed-1"))

	off, err := s.ToggleFavorite(context.Background(), "seed-1")
	require.NoError(t, err)
	assert.False(t, off)
	assert.False(t, s.IsFavorite("seed-1"))
	assert.Empty(t, s.FavoriteRecipes())
}

func TestFavoriteRecipesFollowCollectionOrder(t *testing.T) {
	blobs := database.NewMemoryStore()
	s := New(blobs, testSeed())
	require.NoError(t, s.Load(context.Background()))

	_, err := s.ToggleFavorite(context.Background(), "seed-3")
	require.NoError(t, err)
	_, err = s.ToggleFavorite(context.Background(), "seed-1")
	require.NoError(t, err)

	favs := s.FavoriteRecipes()
	require.Len(t, favs, 2)
	assert.Equal(t, "seed-1", favs[0].ID)
	assert.Equal(t, "seed-3", favs[1].ID)
}

func TestImportRecipesMergesByID(t *testing.T) {
	blobs := database.NewMemoryStore()
	s := New(blobs, testSeed())
	require.NoError(t, s.Load(context.Background()))

	imported := []model.Recipe{
		{ID: "seed-1", Title: "Apple Pie Deluxe", Category: model.CategoryDesserts, AddedBy: "Nan"},
		{ID: "new-1", Title: "Lobster Dip", Category: model.CategoryAppetizers, AddedBy: "Donetta"},
	}
	require.NoError(t, s.ImportRecipes(context.Background(), imported))

	recipes := s.Recipes()
	require.Len(t, recipes, 4)
	assert.Equal(t, "Apple Pie Deluxe", recipes[0].Title)
	assert.Equal(t, "new-1", recipes[3].ID)

	// Importing the same payload again changes nothing.
	require.NoError(t, s.ImportRecipes(context.Background(), imported))
	assert.Equal(t, recipes, s.Recipes())
}

func TestRecipesReturnsSnapshot(t *testing.T) {
	blobs := database.NewMemoryStore()
	s := New(blobs, testSeed())
	require.NoError(t, s.Load(context.Background()))

	snap := s.Recipes()
	snap[0].Title = "mutated"

	fresh, ok := s.Recipe("seed-1")
	require.True(t, ok)
	assert.Equal(t, "Apple Pie", fresh.Title)
}
