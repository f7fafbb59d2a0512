package services

import (
	"strings"

	"backend/models"
)

// Built-in sample recipes, one per meal type, used whenever the external
// generator is unavailable or fails.
var fallbackRecipes = map[string]GeneratedRecipe{
	models.MealBreakfast: {
		Name:        "Greek Yogurt Berry Bowl",
		Description: "Plain Greek yogurt with fresh berries, chopped walnuts and a sprinkle of cinnamon.",
		Carbs:       24,
		Servings:    1,
		PrepTime:    5,
		Tags:        []string{"low-sugar", "high-protein", "no-cook"},
		Ingredients: []string{
			"1 cup plain Greek yogurt",
			"1/2 cup mixed berries",
			"2 tbsp chopped walnuts",
			"1 tsp chia seeds",
			"pinch of cinnamon",
		},
		Instructions: []string{
			"Spoon the yogurt into a bowl.",
			"Top with berries, walnuts and chia seeds.",
			"Dust with cinnamon and serve.",
		},
	},
	models.MealLunch: {
		Name:        "Grilled Chicken Quinoa Salad",
		Description: "Grilled chicken breast over quinoa, leafy greens and olive-oil lemon dressing.",
		Carbs:       32,
		Servings:    2,
		PrepTime:    25,
		Tags:        []string{"high-protein", "whole-grain"},
		Ingredients: []string{
			"2 chicken breasts",
			"1 cup cooked quinoa",
			"2 cups baby spinach",
			"1/2 cucumber, sliced",
			"10 cherry tomatoes",
			"2 tbsp olive oil",
			"juice of 1 lemon",
		},
		Instructions: []string{
			"Season and grill the chicken until cooked through, then slice.",
			"Toss the quinoa, spinach, cucumber and tomatoes in a bowl.",
			"Whisk the olive oil and lemon juice, dress the salad and top with chicken.",
		},
	},
	models.MealDinner: {
		Name:        "Baked Salmon with Roasted Vegetables",
		Description: "Oven-baked salmon fillet with broccoli, peppers and a side of brown rice.",
		Carbs:       38,
		Servings:    2,
		PrepTime:    35,
		Tags:        []string{"omega-3", "heart-healthy"},
		Ingredients: []string{
			"2 salmon fillets",
			"1 head broccoli, cut into florets",
			"1 red bell pepper, sliced",
			"1 cup cooked brown rice",
			"1 tbsp olive oil",
			"1 clove garlic, minced",
		},
		Instructions: []string{
			"Heat the oven to 200C / 400F.",
			"Toss the vegetables with olive oil and garlic, spread on a tray and roast 15 minutes.",
			"Add the salmon to the tray and bake 12-15 minutes more.",
			"Serve over the brown rice.",
		},
	},
	models.MealSnack: {
		Name:        "Apple Slices with Peanut Butter",
		Description: "Crisp apple slices with natural peanut butter for a balanced snack.",
		Carbs:       20,
		Servings:    1,
		PrepTime:    5,
		Tags:        []string{"quick", "no-cook"},
		Ingredients: []string{
			"1 medium apple, sliced",
			"2 tbsp natural peanut butter",
		},
		Instructions: []string{
			"Core and slice the apple.",
			"Serve with the peanut butter for dipping.",
		},
	},
}

// FallbackRecipe returns the built-in sample for a meal type with any
// ingredient matching an allergy substring removed (case-insensitive).
// Unknown meal types get the snack sample.
func FallbackRecipe(mealType string, allergies []string) *GeneratedRecipe {
	sample, ok := fallbackRecipes[mealType]
	if !ok {
		sample = fallbackRecipes[models.MealSnack]
	}

	recipe := sample
	recipe.Ingredients = filterAllergens(sample.Ingredients, allergies)
	return &recipe
}

func filterAllergens(ingredients, allergies []string) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if containsAllergen(ing, allergies) {
			continue
		}
		out = append(out, ing)
	}
	return out
}

func containsAllergen(ingredient string, allergies []string) bool {
	lower := strings.ToLower(ingredient)
	for _, a := range allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if strings.Contains(lower, a) {
			return true
		}
		// "peanuts" must still catch "peanut butter"
		if singular := strings.TrimSuffix(a, "s"); singular != "" && strings.Contains(lower, singular) {
			return true
		}
	}
	return false
}
