package services

import (
	"time"

	"backend/apperror"
	"backend/models"
	"backend/repositories"
)

type NoteInput struct {
	Title     string     `json:"title" binding:"required"`
	Content   string     `json:"content" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
	Category  string     `json:"category"`
}

type NoteUpdateInput struct {
	Title     *string    `json:"title"`
	Content   *string    `json:"content"`
	Timestamp *time.Time `json:"timestamp"`
	Category  *string    `json:"category"`
}

type NoteService struct {
	notes repositories.NoteRepository
}

func NewNoteService(notes repositories.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) Create(userID uint, input NoteInput) (*models.Note, error) {
	ts := time.Now()
	if input.Timestamp != nil {
		ts = *input.Timestamp
	}

	note := &models.Note{
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		Timestamp: ts,
		Category:  input.Category,
	}
	if err := s.notes.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List(userID uint) ([]models.Note, error) {
	return s.notes.GetByUser(userID)
}

func (s *NoteService) getOwned(userID, id uint) (*models.Note, error) {
	note, err := s.notes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note", id)
	}
	if note.UserID != userID {
		return nil, apperror.Forbidden("note belongs to another user")
	}
	return note, nil
}

func (s *NoteService) Update(userID, id uint, input NoteUpdateInput) (*models.Note, error) {
	note, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Timestamp != nil {
		note.Timestamp = *input.Timestamp
	}
	if input.Category != nil {
		note.Category = *input.Category
	}

	if err := s.notes.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(userID, id uint) error {
	if _, err := s.getOwned(userID, id); err != nil {
		return err
	}
	ok, err := s.notes.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("note", id)
	}
	return nil
}
