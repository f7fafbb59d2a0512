package repositories

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type glucosePgRepository struct {
	db *gorm.DB
}

func NewGlucosePgRepository(db *gorm.DB) GlucoseRepository {
	return &glucosePgRepository{db: db}
}

func (r *glucosePgRepository) Create(reading *models.GlucoseReading) error {
	return r.db.Create(reading).Error
}

func (r *glucosePgRepository) GetByID(id uint) (*models.GlucoseReading, error) {
	var reading models.GlucoseReading
	err := r.db.First(&reading, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

func (r *glucosePgRepository) GetByUser(userID uint) ([]models.GlucoseReading, error) {
	var readings []models.GlucoseReading
	err := r.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&readings).Error
	return readings, err
}

func (r *glucosePgRepository) GetByUserAndRange(userID uint, start, end time.Time) ([]models.GlucoseReading, error) {
	var readings []models.GlucoseReading
	err := r.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Order("timestamp DESC").
		Find(&readings).Error
	return readings, err
}

func (r *glucosePgRepository) Update(reading *models.GlucoseReading) error {
	return r.db.Save(reading).Error
}

func (r *glucosePgRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.GlucoseReading{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
