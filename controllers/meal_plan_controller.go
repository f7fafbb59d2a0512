package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealPlanController struct {
	plans *services.MealPlanService
}

func NewMealPlanController(plans *services.MealPlanService) *MealPlanController {
	return &MealPlanController{plans: plans}
}

func (mc *MealPlanController) Create(c *gin.Context) {
	var input services.MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	plan, err := mc.plans.Create(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (mc *MealPlanController) List(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)
	plans, err := mc.plans.List(userID, c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (mc *MealPlanController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.MealPlanUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	plan, err := mc.plans.Update(userID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (mc *MealPlanController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	if err := mc.plans.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}

// Generate builds a recipe for the requested meal type and saves it as a
// plan. Omitted allergies default to the user's stored list; an explicit
// empty list means "no restrictions".
func (mc *MealPlanController) Generate(c *gin.Context) {
	var input struct {
		MealType  string   `json:"mealType" binding:"required"`
		Allergies []string `json:"allergies"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	plan, err := mc.plans.Generate(c.Request.Context(), userID, input.MealType, input.Allergies)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}
