package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"backend/apperror"
	"backend/models"
	"backend/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator lets tests script the external service.
type fakeGenerator struct {
	recipe *GeneratedRecipe
	err    error
	calls  int

	gotMealType  string
	gotAllergies []string
}

func (f *fakeGenerator) Generate(ctx context.Context, mealType string, allergies []string) (*GeneratedRecipe, error) {
	f.calls++
	f.gotMealType = mealType
	f.gotAllergies = allergies
	if f.err != nil {
		return nil, f.err
	}
	return f.recipe, nil
}

func newTestMealPlanService(gen RecipeGenerator) (*MealPlanService, repositories.UserRepository) {
	users := repositories.NewUserMemoryRepository()
	return NewMealPlanService(repositories.NewMealPlanMemoryRepository(), users, gen), users
}

func TestMealPlanCRUD(t *testing.T) {
	svc, _ := newTestMealPlanService(nil)

	plan, err := svc.Create(1, MealPlanInput{
		Name:        "Oatmeal",
		MealType:    models.MealBreakfast,
		Carbs:       30,
		Servings:    1,
		Ingredients: []string{"rolled oats", "milk"},
	})
	require.NoError(t, err)
	assert.NotZero(t, plan.ID)

	name := "Overnight Oats"
	updated, err := svc.Update(1, plan.ID, MealPlanUpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Overnight Oats", updated.Name)
	assert.Equal(t, models.MealBreakfast, updated.MealType)

	require.NoError(t, svc.Delete(1, plan.ID))
	assert.ErrorIs(t, svc.Delete(1, plan.ID), apperror.ErrNotFound)
}

func TestMealPlanCreateRejectsUnknownType(t *testing.T) {
	svc, _ := newTestMealPlanService(nil)

	_, err := svc.Create(1, MealPlanInput{Name: "Mystery", MealType: "brunch"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestMealPlanListFiltersByType(t *testing.T) {
	svc, _ := newTestMealPlanService(nil)

	_, err := svc.Create(1, MealPlanInput{Name: "Oatmeal", MealType: models.MealBreakfast})
	require.NoError(t, err)
	_, err = svc.Create(1, MealPlanInput{Name: "Salad", MealType: models.MealLunch})
	require.NoError(t, err)
	_, err = svc.Create(2, MealPlanInput{Name: "Other user's", MealType: models.MealBreakfast})
	require.NoError(t, err)

	all, err := svc.List(1, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	breakfasts, err := svc.List(1, models.MealBreakfast)
	require.NoError(t, err)
	require.Len(t, breakfasts, 1)
	assert.Equal(t, "Oatmeal", breakfasts[0].Name)

	_, err = svc.List(1, "supper")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestMealPlanOwnership(t *testing.T) {
	svc, _ := newTestMealPlanService(nil)

	plan, err := svc.Create(1, MealPlanInput{Name: "Oatmeal", MealType: models.MealBreakfast})
	require.NoError(t, err)

	name := "Stolen"
	_, err = svc.Update(2, plan.ID, MealPlanUpdateInput{Name: &name})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(2, plan.ID), apperror.ErrForbidden)
}

func TestGenerateWithoutGeneratorUsesFallback(t *testing.T) {
	svc, _ := newTestMealPlanService(nil)

	plan, err := svc.Generate(context.Background(), 1, models.MealBreakfast, []string{})
	require.NoError(t, err)

	assert.Equal(t, uint(1), plan.UserID)
	assert.Equal(t, models.MealBreakfast, plan.MealType)
	assert.Equal(t, fallbackRecipes[models.MealBreakfast].Name, plan.Name)

	// persisted, not just returned
	plans, err := svc.List(1, "")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, plan.ID, plans[0].ID)
}

func TestGenerateFallsBackOnGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream down")}
	svc, _ := newTestMealPlanService(gen)

	plan, err := svc.Generate(context.Background(), 1, models.MealDinner, []string{})
	require.NoError(t, err, "generator failures must not surface")
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, fallbackRecipes[models.MealDinner].Name, plan.Name)
}

func TestGenerateUsesGeneratorResult(t *testing.T) {
	gen := &fakeGenerator{recipe: &GeneratedRecipe{
		Name:        "Veggie Omelette",
		Carbs:       12,
		Servings:    1,
		PrepTime:    15,
		Ingredients: []string{"3 eggs", "spinach", "peanut oil"},
	}}
	svc, _ := newTestMealPlanService(gen)

	plan, err := svc.Generate(context.Background(), 1, models.MealBreakfast, []string{"peanuts"})
	require.NoError(t, err)
	assert.Equal(t, "Veggie Omelette", plan.Name)
	assert.Equal(t, []string{"peanuts"}, gen.gotAllergies)

	// allergen filter applies to generated output too
	for _, ing := range plan.Ingredients {
		assert.NotContains(t, strings.ToLower(ing), "peanut")
	}
	assert.Contains(t, plan.Ingredients, "3 eggs")
}

func TestGenerateDefaultsToStoredAllergies(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("down")}
	svc, users := newTestMealPlanService(gen)

	user := &models.User{Username: "demo", Email: "demo@example.com", Password: "x", Allergies: []string{"peanuts"}}
	require.NoError(t, users.Create(user))

	plan, err := svc.Generate(context.Background(), user.ID, models.MealSnack, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"peanuts"}, gen.gotAllergies)
	for _, ing := range plan.Ingredients {
		assert.NotContains(t, strings.ToLower(ing), "peanut")
	}
}

func TestGenerateExplicitEmptyAllergiesSkipsProfile(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("down")}
	svc, users := newTestMealPlanService(gen)

	user := &models.User{Username: "demo", Email: "demo@example.com", Password: "x", Allergies: []string{"apple"}}
	require.NoError(t, users.Create(user))

	plan, err := svc.Generate(context.Background(), user.ID, models.MealSnack, []string{})
	require.NoError(t, err)
	assert.Empty(t, gen.gotAllergies)

	found := false
	for _, ing := range plan.Ingredients {
		if strings.Contains(strings.ToLower(ing), "apple") {
			found = true
		}
	}
	assert.True(t, found, "profile allergies must not apply when an explicit list is given")
}

func TestGenerateRejectsUnknownMealType(t *testing.T) {
	svc, _ := newTestMealPlanService(nil)

	_, err := svc.Generate(context.Background(), 1, "brunch", nil)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
