package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeneratedRecipe is the shape a generator must produce. It maps 1:1 onto
// the persisted meal plan fields.
type GeneratedRecipe struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Carbs        int      `json:"carbs"`
	Servings     int      `json:"servings"`
	PrepTime     int      `json:"prep_time"`
	Tags         []string `json:"tags"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// RecipeGenerator produces a diabetes-friendly recipe for a meal type,
// avoiding the given allergies. Implementations may fail; the meal plan
// service absorbs failures with a static fallback.
type RecipeGenerator interface {
	Generate(ctx context.Context, mealType string, allergies []string) (*GeneratedRecipe, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator creates a Gemini-backed recipe generator.
func NewGeminiGenerator(ctx context.Context, apiKey string) (RecipeGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, mealType string, allergies []string) (*GeneratedRecipe, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildRecipePrompt(mealType, allergies)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("generated content is not text")
	}

	recipe := &GeneratedRecipe{}
	if err := json.Unmarshal([]byte(stripCodeFence(string(text))), recipe); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if recipe.Name == "" || len(recipe.Ingredients) == 0 {
		return nil, fmt.Errorf("incomplete recipe")
	}

	return recipe, nil
}

func buildRecipePrompt(mealType string, allergies []string) string {
	var sb strings.Builder
	sb.WriteString("You are a dietitian planning meals for a person managing diabetes.\n")
	sb.WriteString(fmt.Sprintf("Suggest one %s recipe that is low in added sugar and moderate in carbohydrates.\n", mealType))
	if len(allergies) > 0 {
		sb.WriteString(fmt.Sprintf("The recipe must not contain any of: %s.\n", strings.Join(allergies, ", ")))
	}
	sb.WriteString(`Respond with JSON only, no prose, in this shape:
{"name":"","description":"","carbs":0,"servings":0,"prep_time":0,"tags":[],"ingredients":[],"instructions":[]}
carbs is grams per serving, prep_time is minutes.`)
	return sb.String()
}

// stripCodeFence removes a ```json ... ``` wrapper the model sometimes adds.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
