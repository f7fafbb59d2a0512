package models

import (
	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

type MealPlan struct {
	gorm.Model
	UserID       uint     `gorm:"index;not null" json:"user_id"`
	Name         string   `gorm:"not null" json:"name"`
	Description  string   `json:"description"`
	MealType     string   `gorm:"not null" json:"meal_type"`
	ImageURL     string   `json:"image_url"`
	Carbs        int      `json:"carbs"` // grams per serving
	Servings     int      `json:"servings"`
	PrepTime     int      `json:"prep_time"` // minutes
	Tags         []string `gorm:"serializer:json" json:"tags"`
	Ingredients  []string `gorm:"serializer:json" json:"ingredients"`
	Instructions []string `gorm:"serializer:json" json:"instructions"`
}

// ValidMealType reports whether t is one of breakfast/lunch/dinner/snack.
func ValidMealType(t string) bool {
	for _, mt := range MealTypes {
		if mt == t {
			return true
		}
	}
	return false
}
