package main

import (
	"context"
	"log"
	"os"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.LoadEnv()
	store := config.InitStore()
	utils.InitS3()
	utils.InitSES()

	// Recipe generation is optional: without an API key every generate
	// request serves the built-in fallback recipes.
	var generator services.RecipeGenerator
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		g, err := services.NewGeminiGenerator(context.Background(), key)
		if err != nil {
			log.Printf("gemini generator unavailable: %v", err)
		} else {
			generator = g
		}
	}

	hub := services.NewRealtimeHub()
	alertSvc := services.NewAlertService(store.Alerts, hub)

	authSvc := services.NewAuthService(store.Users)
	glucoseSvc := services.NewGlucoseService(store.Glucose, alertSvc)
	mealPlanSvc := services.NewMealPlanService(store.MealPlans, store.Users, generator)
	noteSvc := services.NewNoteService(store.Notes)

	r := routes.SetupRouter(
		controllers.NewAuthController(authSvc),
		controllers.NewGlucoseController(glucoseSvc),
		controllers.NewMealPlanController(mealPlanSvc),
		controllers.NewNoteController(noteSvc),
		controllers.NewAlertController(alertSvc),
		controllers.NewRealtimeController(hub),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
