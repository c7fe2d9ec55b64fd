package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shirleys-kitchen/backend/internal/model"
)

func searchFixture() []model.Recipe {
	return []model.Recipe{
		{ID: "r1", Title: "Apple Pie", Ingredients: []string{"apples", "sugar"}},
		{ID: "r2", Title: "Banana Bread", Ingredients: []string{"bananas", "flour"}},
		{ID: "r3", Title: "Minestrone Soup", Ingredients: []string{"tomatoes"},
			Description: "A hearty soup with pasta."},
	}
}

func TestSearchRecipesBlankQueryIsImmediate(t *testing.T) {
	s := NewSearchServiceWithLatency(0, 0)
	s.UpdateIndex(searchFixture())

	results, err := s.SearchRecipes(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchRecipesMatchesTitleIngredientsDescription(t *testing.T) {
	s := NewSearchServiceWithLatency(0, 0)
	s.UpdateIndex(searchFixture())
	ctx := context.Background()

	byTitle, err := s.SearchRecipes(ctx, "BANANA")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "r2", byTitle[0].ID)

	byIngredient, err := s.SearchRecipes(ctx, "tomatoes")
	require.NoError(t, err)
	require.Len(t, byIngredient, 1)
	assert.Equal(t, "r3", byIngredient[0].ID)

	byDescription, err := s.SearchRecipes(ctx, "hearty")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "r3", byDescription[0].ID)
}

func TestSearchRecipesCapsResults(t *testing.T) {
	recipes := make([]model.Recipe, 25)
	for i := range recipes {
		recipes[i] = model.Recipe{ID: string(rune('a' + i)), Title: "Potato Dish"}
	}
	s := NewSearchServiceWithLatency(0, 0)
	s.UpdateIndex(recipes)

	results, err := s.SearchRecipes(context.Background(), "potato")
	require.NoError(t, err)
	assert.Len(t, results, searchResultCap)
}

func TestSearchRecipesCancellation(t *testing.T) {
	s := NewSearchServiceWithLatency(time.Second, 0)
	s.UpdateIndex(searchFixture())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SearchRecipes(ctx, "apple")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchRecipesUsesLatestIndex(t *testing.T) {
	s := NewSearchServiceWithLatency(0, 0)
	s.UpdateIndex(searchFixture())
	ctx := context.Background()

	results, err := s.SearchRecipes(ctx, "apple")
	require.NoError(t, err)
	require.Len(t, results, 1)

	s.UpdateIndex(nil)
	results, err = s.SearchRecipes(ctx, "apple")
	require.NoError(t, err)
	assert.Empty(t, results)
}
