package repositories

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIDsNeverReused(t *testing.T) {
	repo := NewGlucoseMemoryRepository()

	first := &models.GlucoseReading{UserID: 1, Value: 100, Timestamp: time.Now(), Type: models.ReadingFasting}
	require.NoError(t, repo.Create(first))

	ok, err := repo.Delete(first.ID)
	require.NoError(t, err)
	require.True(t, ok)

	second := &models.GlucoseReading{UserID: 1, Value: 110, Timestamp: time.Now(), Type: models.ReadingFasting}
	require.NoError(t, repo.Create(second))
	assert.Greater(t, second.ID, first.ID)
}

func TestMemoryDeleteAbsent(t *testing.T) {
	repo := NewNoteMemoryRepository()

	ok, err := repo.Delete(42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryGetAbsentReturnsNil(t *testing.T) {
	repo := NewMealPlanMemoryRepository()

	plan, err := repo.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestMemoryDeleteThenGet(t *testing.T) {
	repo := NewNoteMemoryRepository()

	note := &models.Note{UserID: 1, Title: "t", Content: "c", Timestamp: time.Now()}
	require.NoError(t, repo.Create(note))

	ok, err := repo.Delete(note.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryUserLookupsCaseInsensitive(t *testing.T) {
	repo := NewUserMemoryRepository()

	require.NoError(t, repo.Create(&models.User{Username: "Demo", Email: "Demo@Example.com", Password: "x"}))

	byName, err := repo.GetByUsername("demo")
	require.NoError(t, err)
	require.NotNil(t, byName)

	byEmail, err := repo.GetByEmail("demo@example.COM")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, byName.ID, byEmail.ID)
}

func TestMemoryListScopedToUser(t *testing.T) {
	notes := NewNoteMemoryRepository()
	require.NoError(t, notes.Create(&models.Note{UserID: 1, Title: "mine", Content: "c", Timestamp: time.Now()}))
	require.NoError(t, notes.Create(&models.Note{UserID: 2, Title: "theirs", Content: "c", Timestamp: time.Now()}))

	got, err := notes.GetByUser(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Title)
}

func TestMemoryGlucoseRangeQuery(t *testing.T) {
	repo := NewGlucoseMemoryRepository()

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(&models.GlucoseReading{
			UserID:    1,
			Value:     100 + i,
			Timestamp: base.AddDate(0, 0, i),
			Type:      models.ReadingFasting,
		}))
	}

	got, err := repo.GetByUserAndRange(1, base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, got, 3)
	// newest first
	assert.Equal(t, 103, got[0].Value)
	assert.Equal(t, 101, got[2].Value)
}

func TestMemoryStoreMutationsDoNotAliasCallerStructs(t *testing.T) {
	repo := NewNoteMemoryRepository()

	note := &models.Note{UserID: 1, Title: "original", Content: "c", Timestamp: time.Now()}
	require.NoError(t, repo.Create(note))

	note.Title = "mutated after create"
	stored, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Title)
}
