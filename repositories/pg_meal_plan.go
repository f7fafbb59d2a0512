package repositories

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type mealPlanPgRepository struct {
	db *gorm.DB
}

func NewMealPlanPgRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanPgRepository{db: db}
}

func (r *mealPlanPgRepository) Create(plan *models.MealPlan) error {
	return r.db.Create(plan).Error
}

func (r *mealPlanPgRepository) GetByID(id uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.First(&plan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanPgRepository) GetByUser(userID uint, mealType string) ([]models.MealPlan, error) {
	q := r.db.Where("user_id = ?", userID)
	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}
	var plans []models.MealPlan
	err := q.Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *mealPlanPgRepository) Update(plan *models.MealPlan) error {
	return r.db.Save(plan).Error
}

func (r *mealPlanPgRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.MealPlan{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
