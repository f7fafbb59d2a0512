package routes

import (
    "backend/controllers"
    "backend/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter(
    auth *controllers.AuthController,
    glucose *controllers.GlucoseController,
    mealPlans *controllers.MealPlanController,
    notes *controllers.NoteController,
    alerts *controllers.AlertController,
    realtime *controllers.RealtimeController,
) *gin.Engine {
    r := gin.Default()

    // Public auth routes
    pub := r.Group("/auth")
    {
        pub.POST("/register", auth.Register)
        pub.POST("/login", auth.Login)
        pub.POST("/logout", auth.Logout)
        pub.POST("/forgot-password", auth.ForgotPassword)
        pub.POST("/reset-password", auth.ResetPassword)
    }

    // Everything below requires an authenticated session
    priv := r.Group("/")
    priv.Use(middlewares.AuthMiddleware())
    {
        priv.GET("/auth/current-user", auth.CurrentUser)
        priv.PUT("/auth/update-profile", auth.UpdateProfile)
        priv.PUT("/auth/update-allergies", auth.UpdateAllergies)

        priv.GET("/glucose", glucose.List)
        priv.POST("/glucose", glucose.Create)
        priv.GET("/glucose/range", glucose.ListRange)
        priv.GET("/glucose/stats", glucose.Stats)
        priv.PUT("/glucose/:id", glucose.Update)
        priv.DELETE("/glucose/:id", glucose.Delete)

        priv.GET("/meal-plans", mealPlans.List)
        priv.POST("/meal-plans", mealPlans.Create)
        priv.PUT("/meal-plans/:id", mealPlans.Update)
        priv.DELETE("/meal-plans/:id", mealPlans.Delete)
        priv.POST("/generate-meal-plan", mealPlans.Generate)

        priv.GET("/notes", notes.List)
        priv.POST("/notes", notes.Create)
        priv.PUT("/notes/:id", notes.Update)
        priv.DELETE("/notes/:id", notes.Delete)

        priv.GET("/alerts", alerts.List)
        priv.GET("/ws/alerts", realtime.AlertsWS)

        priv.POST("/upload/image", controllers.UploadImage)
    }

    return r
}
