package repositories

import (
	"backend/models"

	"gorm.io/gorm"
)

type alertPgRepository struct {
	db *gorm.DB
}

func NewAlertPgRepository(db *gorm.DB) AlertRepository {
	return &alertPgRepository{db: db}
}

func (r *alertPgRepository) Create(alert *models.Alert) error {
	return r.db.Create(alert).Error
}

func (r *alertPgRepository) GetByUser(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}

// NewPgStore wires one GORM-backed repository per entity.
func NewPgStore(db *gorm.DB) *Store {
	return &Store{
		Users:     NewUserPgRepository(db),
		Glucose:   NewGlucosePgRepository(db),
		MealPlans: NewMealPlanPgRepository(db),
		Notes:     NewNotePgRepository(db),
		Alerts:    NewAlertPgRepository(db),
	}
}
