package services

import (
	"strings"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRecipeKnownMealTypes(t *testing.T) {
	for _, mt := range models.MealTypes {
		recipe := FallbackRecipe(mt, nil)
		require.NotNil(t, recipe, "meal type %s", mt)
		assert.NotEmpty(t, recipe.Name)
		assert.NotEmpty(t, recipe.Ingredients)
		assert.NotEmpty(t, recipe.Instructions)
	}
}

func TestFallbackRecipeUnknownTypeGetsSnack(t *testing.T) {
	recipe := FallbackRecipe("brunch", nil)
	require.NotNil(t, recipe)
	assert.Equal(t, fallbackRecipes[models.MealSnack].Name, recipe.Name)
}

func TestFallbackRecipeFiltersAllergens(t *testing.T) {
	recipe := FallbackRecipe(models.MealSnack, []string{"peanuts"})
	for _, ing := range recipe.Ingredients {
		assert.NotContains(t, strings.ToLower(ing), "peanut")
	}
	// the apple survives
	assert.NotEmpty(t, recipe.Ingredients)
}

func TestFallbackRecipeFilterIsCaseInsensitive(t *testing.T) {
	recipe := FallbackRecipe(models.MealBreakfast, []string{"WALNUTS"})
	for _, ing := range recipe.Ingredients {
		assert.NotContains(t, strings.ToLower(ing), "walnut")
	}
}

func TestFallbackRecipeDoesNotMutateSample(t *testing.T) {
	before := len(fallbackRecipes[models.MealSnack].Ingredients)
	FallbackRecipe(models.MealSnack, []string{"peanuts"})
	assert.Equal(t, before, len(fallbackRecipes[models.MealSnack].Ingredients))
}
