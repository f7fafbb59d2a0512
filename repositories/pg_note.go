package repositories

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type notePgRepository struct {
	db *gorm.DB
}

func NewNotePgRepository(db *gorm.DB) NoteRepository {
	return &notePgRepository{db: db}
}

func (r *notePgRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

func (r *notePgRepository) GetByID(id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *notePgRepository) GetByUser(userID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&notes).Error
	return notes, err
}

func (r *notePgRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

func (r *notePgRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Note{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
