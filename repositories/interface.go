package repositories

import (
	"time"

	"backend/models"
)

// Absent records are reported as a nil pointer with a nil error; callers
// translate absence into their own not-found errors.

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error) // case-insensitive
	GetByEmail(email string) (*models.User, error)       // case-insensitive
	GetByResetToken(token string) (*models.User, error)
	Update(user *models.User) error
}

type GlucoseRepository interface {
	Create(reading *models.GlucoseReading) error
	GetByID(id uint) (*models.GlucoseReading, error)
	GetByUser(userID uint) ([]models.GlucoseReading, error)
	GetByUserAndRange(userID uint, start, end time.Time) ([]models.GlucoseReading, error)
	Update(reading *models.GlucoseReading) error
	Delete(id uint) (bool, error)
}

type MealPlanRepository interface {
	Create(plan *models.MealPlan) error
	GetByID(id uint) (*models.MealPlan, error)
	GetByUser(userID uint, mealType string) ([]models.MealPlan, error)
	Update(plan *models.MealPlan) error
	Delete(id uint) (bool, error)
}

type NoteRepository interface {
	Create(note *models.Note) error
	GetByID(id uint) (*models.Note, error)
	GetByUser(userID uint) ([]models.Note, error)
	Update(note *models.Note) error
	Delete(id uint) (bool, error)
}

type AlertRepository interface {
	Create(alert *models.Alert) error
	GetByUser(userID uint) ([]models.Alert, error)
}

// Store bundles one repository per entity so the wiring in main stays flat.
type Store struct {
	Users     UserRepository
	Glucose   GlucoseRepository
	MealPlans MealPlanRepository
	Notes     NoteRepository
	Alerts    AlertRepository
}
