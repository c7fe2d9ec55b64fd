package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shirleys-kitchen/backend/internal/model"
)

func TestExportRecipes(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/recipes/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "shirleys_kitchen_backup_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".json")

	var exported []model.Recipe
	decode(t, w, &exported)
	assert.Len(t, exported, 2)
}

func TestImportRecipesMerges(t *testing.T) {
	env := newTestEnv(t)

	payload := []model.Recipe{
		{
			ID: "seed-1", Title: "Apple Pie Deluxe", Category: model.CategoryDesserts,
			Ingredients: []string{"8 apples"}, Instructions: []string{"Bake."},
			AddedBy: "Nan",
		},
		{
			ID: "imported-1", Title: "Lobster Dip", Category: model.CategoryAppetizers,
			Ingredients: []string{"lobster"}, Instructions: []string{"Mix."},
			AddedBy: "Donetta",
		},
	}

	w := env.do(t, http.MethodPost, "/api/v1/recipes/import", payload)
	require.Equal(t, http.StatusOK, w.Code)

	recipes := env.store.Recipes()
	require.Len(t, recipes, 3)
	assert.Equal(t, "Apple Pie Deluxe", recipes[0].Title)
	assert.Equal(t, "imported-1", recipes[2].ID)
}

func TestImportRecipesEmptyArrayIsAccepted(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/recipes/import", []model.Recipe{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.store.Recipes(), 2)
}

func TestImportRecipesRejectsNonArray(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/recipes/import", map[string]string{"not": "an array"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, env.store.Recipes(), 2)
}

func TestImportRecipesRejectsForeignShape(t *testing.T) {
	env := newTestEnv(t)

	// An array whose first element lacks id and title is some other app's
	// backup; nothing should be touched.
	w := env.do(t, http.MethodPost, "/api/v1/recipes/import", []map[string]string{
		{"name": "Contact", "phone": "555-1234"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, env.store.Recipes(), 2)
}
