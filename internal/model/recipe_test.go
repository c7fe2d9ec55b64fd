package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecipe() Recipe {
	return Recipe{
		ID:           "r1",
		Title:        "Apple Pie",
		Category:     CategoryDesserts,
		Ingredients:  []string{"6 apples"},
		Instructions: []string{"Bake."},
		AddedBy:      "Nan",
		Rating:       5,
	}
}

func TestValidate(t *testing.T) {
	r := validRecipe()
	assert.NoError(t, r.Validate())

	tests := []struct {
		name   string
		mutate func(*Recipe)
		field  string
	}{
		{"blank title", func(r *Recipe) { r.Title = "  " }, "title"},
		{"no ingredients", func(r *Recipe) { r.Ingredients = nil }, "ingredients"},
		{"no instructions", func(r *Recipe) { r.Instructions = nil }, "instructions"},
		{"blank addedBy", func(r *Recipe) { r.AddedBy = "" }, "addedBy"},
		{"rating too high", func(r *Recipe) { r.Rating = 6 }, "rating"},
		{"negative rating", func(r *Recipe) { r.Rating = -1 }, "rating"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(&r)
			err := r.Validate()
			assert.Error(t, err)
			verr, ok := err.(ValidationError)
			assert.True(t, ok)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %q", c)
	}
	assert.False(t, Category("Snacks").Valid())
	assert.False(t, Category("").Valid())
}

func TestAvatarColorExplicitWins(t *testing.T) {
	assert.Equal(t, "#abcdef", AvatarColor("Somebody New", "#abcdef"))
}

func TestAvatarColorKnownFamilyMember(t *testing.T) {
	assert.Equal(t, ownerColors["Nan"], AvatarColor("Nan", ""))
	assert.Equal(t, ownerColors["Bernice"], AvatarColor("Bernice", ""))
}

func TestAvatarColorDeterministicFallback(t *testing.T) {
	first := AvatarColor("Somebody New", "")
	second := AvatarColor("Somebody New", "")
	assert.Equal(t, first, second)
	assert.Contains(t, avatarColors, first)
}
