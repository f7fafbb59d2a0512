package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"backend/models"
)

// Memory-backed repositories with the same semantics as the Postgres ones:
// auto-incrementing ids that are never reused after deletion, newest-first
// list ordering, absence reported as (nil, nil). A single mutex per
// repository keeps concurrent requests from racing on the maps.

type userMemoryRepository struct {
	mu     sync.Mutex
	users  map[uint]models.User
	nextID uint
}

func NewUserMemoryRepository() UserRepository {
	return &userMemoryRepository{users: make(map[uint]models.User), nextID: 1}
}

func (r *userMemoryRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *userMemoryRepository) GetByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userMemoryRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userMemoryRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userMemoryRepository) GetByResetToken(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetToken == token {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userMemoryRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

type glucoseMemoryRepository struct {
	mu       sync.Mutex
	readings map[uint]models.GlucoseReading
	nextID   uint
}

func NewGlucoseMemoryRepository() GlucoseRepository {
	return &glucoseMemoryRepository{readings: make(map[uint]models.GlucoseReading), nextID: 1}
}

func (r *glucoseMemoryRepository) Create(reading *models.GlucoseReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reading.ID = r.nextID
	r.nextID++
	now := time.Now()
	reading.CreatedAt = now
	reading.UpdatedAt = now
	r.readings[reading.ID] = *reading
	return nil
}

func (r *glucoseMemoryRepository) GetByID(id uint) (*models.GlucoseReading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.readings[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *glucoseMemoryRepository) GetByUser(userID uint) ([]models.GlucoseReading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.GlucoseReading
	for _, g := range r.readings {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sortReadingsNewestFirst(out)
	return out, nil
}

func (r *glucoseMemoryRepository) GetByUserAndRange(userID uint, start, end time.Time) ([]models.GlucoseReading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.GlucoseReading
	for _, g := range r.readings {
		if g.UserID != userID {
			continue
		}
		if g.Timestamp.Before(start) || g.Timestamp.After(end) {
			continue
		}
		out = append(out, g)
	}
	sortReadingsNewestFirst(out)
	return out, nil
}

func (r *glucoseMemoryRepository) Update(reading *models.GlucoseReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reading.UpdatedAt = time.Now()
	r.readings[reading.ID] = *reading
	return nil
}

func (r *glucoseMemoryRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.readings[id]; !ok {
		return false, nil
	}
	delete(r.readings, id)
	return true, nil
}

func sortReadingsNewestFirst(readings []models.GlucoseReading) {
	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Timestamp.After(readings[j].Timestamp)
	})
}

type mealPlanMemoryRepository struct {
	mu     sync.Mutex
	plans  map[uint]models.MealPlan
	nextID uint
}

func NewMealPlanMemoryRepository() MealPlanRepository {
	return &mealPlanMemoryRepository{plans: make(map[uint]models.MealPlan), nextID: 1}
}

func (r *mealPlanMemoryRepository) Create(plan *models.MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan.ID = r.nextID
	r.nextID++
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	r.plans[plan.ID] = *plan
	return nil
}

func (r *mealPlanMemoryRepository) GetByID(id uint) (*models.MealPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *mealPlanMemoryRepository) GetByUser(userID uint, mealType string) ([]models.MealPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.MealPlan
	for _, p := range r.plans {
		if p.UserID != userID {
			continue
		}
		if mealType != "" && p.MealType != mealType {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *mealPlanMemoryRepository) Update(plan *models.MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan.UpdatedAt = time.Now()
	r.plans[plan.ID] = *plan
	return nil
}

func (r *mealPlanMemoryRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return false, nil
	}
	delete(r.plans, id)
	return true, nil
}

type noteMemoryRepository struct {
	mu     sync.Mutex
	notes  map[uint]models.Note
	nextID uint
}

func NewNoteMemoryRepository() NoteRepository {
	return &noteMemoryRepository{notes: make(map[uint]models.Note), nextID: 1}
}

func (r *noteMemoryRepository) Create(note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.ID = r.nextID
	r.nextID++
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now
	r.notes[note.ID] = *note
	return nil
}

func (r *noteMemoryRepository) GetByID(id uint) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (r *noteMemoryRepository) GetByUser(userID uint) ([]models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Note
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (r *noteMemoryRepository) Update(note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.UpdatedAt = time.Now()
	r.notes[note.ID] = *note
	return nil
}

func (r *noteMemoryRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return false, nil
	}
	delete(r.notes, id)
	return true, nil
}

type alertMemoryRepository struct {
	mu     sync.Mutex
	alerts map[uint]models.Alert
	nextID uint
}

func NewAlertMemoryRepository() AlertRepository {
	return &alertMemoryRepository{alerts: make(map[uint]models.Alert), nextID: 1}
}

func (r *alertMemoryRepository) Create(alert *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	alert.ID = r.nextID
	r.nextID++
	alert.CreatedAt = time.Now()
	r.alerts[alert.ID] = *alert
	return nil
}

func (r *alertMemoryRepository) GetByUser(userID uint) ([]models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Alert
	for _, a := range r.alerts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// NewMemoryStore wires one in-memory repository per entity. Used when
// STORE_DRIVER=memory and throughout the tests.
func NewMemoryStore() *Store {
	return &Store{
		Users:     NewUserMemoryRepository(),
		Glucose:   NewGlucoseMemoryRepository(),
		MealPlans: NewMealPlanMemoryRepository(),
		Notes:     NewNoteMemoryRepository(),
		Alerts:    NewAlertMemoryRepository(),
	}
}
