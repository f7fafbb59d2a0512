package services

import (
	"context"
	"log"
	"time"

	"backend/apperror"
	"backend/models"
	"backend/repositories"
)

type MealPlanInput struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	MealType     string   `json:"meal_type" binding:"required"`
	ImageURL     string   `json:"image_url"`
	Carbs        int      `json:"carbs"`
	Servings     int      `json:"servings"`
	PrepTime     int      `json:"prep_time"`
	Tags         []string `json:"tags"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

type MealPlanUpdateInput struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	MealType     *string   `json:"meal_type"`
	ImageURL     *string   `json:"image_url"`
	Carbs        *int      `json:"carbs"`
	Servings     *int      `json:"servings"`
	PrepTime     *int      `json:"prep_time"`
	Tags         []string  `json:"tags"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
}

const generateTimeout = 20 * time.Second

type MealPlanService struct {
	plans     repositories.MealPlanRepository
	users     repositories.UserRepository
	generator RecipeGenerator // nil when no external service is configured
}

func NewMealPlanService(plans repositories.MealPlanRepository, users repositories.UserRepository, generator RecipeGenerator) *MealPlanService {
	return &MealPlanService{plans: plans, users: users, generator: generator}
}

func validateMealType(t string) error {
	if !models.ValidMealType(t) {
		return apperror.ValidationFailed("unknown meal type: "+t, "meal_type")
	}
	return nil
}

func (s *MealPlanService) Create(userID uint, input MealPlanInput) (*models.MealPlan, error) {
	if err := validateMealType(input.MealType); err != nil {
		return nil, err
	}

	plan := &models.MealPlan{
		UserID:       userID,
		Name:         input.Name,
		Description:  input.Description,
		MealType:     input.MealType,
		ImageURL:     input.ImageURL,
		Carbs:        input.Carbs,
		Servings:     input.Servings,
		PrepTime:     input.PrepTime,
		Tags:         input.Tags,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
	}
	if err := s.plans.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealPlanService) List(userID uint, mealType string) ([]models.MealPlan, error) {
	if mealType != "" {
		if err := validateMealType(mealType); err != nil {
			return nil, err
		}
	}
	return s.plans.GetByUser(userID, mealType)
}

func (s *MealPlanService) getOwned(userID, id uint) (*models.MealPlan, error) {
	plan, err := s.plans.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("meal plan", id)
	}
	if plan.UserID != userID {
		return nil, apperror.Forbidden("meal plan belongs to another user")
	}
	return plan, nil
}

func (s *MealPlanService) Update(userID, id uint, input MealPlanUpdateInput) (*models.MealPlan, error) {
	plan, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if input.MealType != nil {
		if err := validateMealType(*input.MealType); err != nil {
			return nil, err
		}
		plan.MealType = *input.MealType
	}
	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.ImageURL != nil {
		plan.ImageURL = *input.ImageURL
	}
	if input.Carbs != nil {
		plan.Carbs = *input.Carbs
	}
	if input.Servings != nil {
		plan.Servings = *input.Servings
	}
	if input.PrepTime != nil {
		plan.PrepTime = *input.PrepTime
	}
	if input.Tags != nil {
		plan.Tags = input.Tags
	}
	if input.Ingredients != nil {
		plan.Ingredients = input.Ingredients
	}
	if input.Instructions != nil {
		plan.Instructions = input.Instructions
	}

	if err := s.plans.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealPlanService) Delete(userID, id uint) error {
	if _, err := s.getOwned(userID, id); err != nil {
		return err
	}
	ok, err := s.plans.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("meal plan", id)
	}
	return nil
}

// Generate produces a recipe for the meal type and persists it as the
// user's meal plan. Allergies default to the user's stored list. Generator
// failures never surface to the caller: any error, timeout included, falls
// back to the built-in sample with the allergens filtered out.
func (s *MealPlanService) Generate(ctx context.Context, userID uint, mealType string, allergies []string) (*models.MealPlan, error) {
	if err := validateMealType(mealType); err != nil {
		return nil, err
	}

	if allergies == nil {
		user, err := s.users.GetByID(userID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			allergies = user.Allergies
		}
	}

	recipe := s.generate(ctx, mealType, allergies)

	plan := &models.MealPlan{
		UserID:       userID,
		Name:         recipe.Name,
		Description:  recipe.Description,
		MealType:     mealType,
		Carbs:        recipe.Carbs,
		Servings:     recipe.Servings,
		PrepTime:     recipe.PrepTime,
		Tags:         recipe.Tags,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
	}
	if err := s.plans.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealPlanService) generate(ctx context.Context, mealType string, allergies []string) *GeneratedRecipe {
	if s.generator == nil {
		return FallbackRecipe(mealType, allergies)
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	recipe, err := s.generator.Generate(ctx, mealType, allergies)
	if err != nil {
		log.Printf("recipe generation failed, using fallback: %v", err)
		return FallbackRecipe(mealType, allergies)
	}
	recipe.Ingredients = filterAllergens(recipe.Ingredients, allergies)
	return recipe
}
