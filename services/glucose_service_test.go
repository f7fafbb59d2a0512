package services

import (
	"testing"
	"time"

	"backend/apperror"
	"backend/models"
	"backend/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGlucoseService() (*GlucoseService, repositories.AlertRepository) {
	alerts := repositories.NewAlertMemoryRepository()
	alertSvc := NewAlertService(alerts, nil)
	return NewGlucoseService(repositories.NewGlucoseMemoryRepository(), alertSvc), alerts
}

func TestGlucoseCreateDefaultsTimestamp(t *testing.T) {
	svc, _ := newTestGlucoseService()

	before := time.Now()
	reading, err := svc.Create(1, GlucoseInput{Value: 118, Type: models.ReadingBeforeBreakfast})
	require.NoError(t, err)

	assert.NotZero(t, reading.ID)
	assert.Equal(t, 118, reading.Value)
	assert.False(t, reading.Timestamp.Before(before))
	assert.False(t, reading.Timestamp.After(time.Now()))
}

func TestGlucoseCreateRejectsOutOfRange(t *testing.T) {
	svc, _ := newTestGlucoseService()

	for _, v := range []int{19, 601, -5, 1000} {
		_, err := svc.Create(1, GlucoseInput{Value: v, Type: models.ReadingFasting})
		assert.ErrorIs(t, err, apperror.ErrValidation, "value %d", v)
	}
	for _, v := range []int{20, 600, 118} {
		_, err := svc.Create(1, GlucoseInput{Value: v, Type: models.ReadingFasting})
		assert.NoError(t, err, "value %d", v)
	}
}

func TestGlucoseCreateRejectsUnknownType(t *testing.T) {
	svc, _ := newTestGlucoseService()

	_, err := svc.Create(1, GlucoseInput{Value: 100, Type: "midnight_snack"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestGlucoseListIsScopedToUser(t *testing.T) {
	svc, _ := newTestGlucoseService()

	_, err := svc.Create(1, GlucoseInput{Value: 100, Type: models.ReadingFasting})
	require.NoError(t, err)
	_, err = svc.Create(2, GlucoseInput{Value: 140, Type: models.ReadingBedtime})
	require.NoError(t, err)

	readings, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, uint(1), readings[0].UserID)
}

func TestGlucoseListNewestFirst(t *testing.T) {
	svc, _ := newTestGlucoseService()

	older := time.Now().Add(-2 * time.Hour)
	newer := time.Now().Add(-time.Hour)
	_, err := svc.Create(1, GlucoseInput{Value: 90, Timestamp: &older, Type: models.ReadingFasting})
	require.NoError(t, err)
	_, err = svc.Create(1, GlucoseInput{Value: 150, Timestamp: &newer, Type: models.ReadingAfterLunch})
	require.NoError(t, err)
	_, err = svc.Create(1, GlucoseInput{Value: 110, Type: models.ReadingBedtime}) // now
	require.NoError(t, err)

	readings, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, readings, 3)
	assert.Equal(t, 110, readings[0].Value)
	assert.Equal(t, 150, readings[1].Value)
	assert.Equal(t, 90, readings[2].Value)
}

func TestGlucoseListRange(t *testing.T) {
	svc, _ := newTestGlucoseService()

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	outside := day.AddDate(0, 0, -3)
	_, err := svc.Create(1, GlucoseInput{Value: 100, Timestamp: &day, Type: models.ReadingFasting})
	require.NoError(t, err)
	_, err = svc.Create(1, GlucoseInput{Value: 200, Timestamp: &outside, Type: models.ReadingFasting})
	require.NoError(t, err)

	got, err := svc.ListRange(1, day.Add(-time.Hour), day.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Value)

	_, err = svc.ListRange(1, day, day.Add(-time.Hour))
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestGlucoseUpdateOwnershipCheck(t *testing.T) {
	svc, _ := newTestGlucoseService()

	reading, err := svc.Create(1, GlucoseInput{Value: 100, Type: models.ReadingFasting})
	require.NoError(t, err)

	v := 140
	_, err = svc.Update(2, reading.ID, GlucoseUpdateInput{Value: &v})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	// record unchanged after the rejected update
	readings, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, 100, readings[0].Value)

	updated, err := svc.Update(1, reading.ID, GlucoseUpdateInput{Value: &v})
	require.NoError(t, err)
	assert.Equal(t, 140, updated.Value)
	assert.Equal(t, models.ReadingFasting, updated.Type, "untouched fields survive partial update")
}

func TestGlucoseDelete(t *testing.T) {
	svc, _ := newTestGlucoseService()

	reading, err := svc.Create(1, GlucoseInput{Value: 100, Type: models.ReadingFasting})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(2, reading.ID), apperror.ErrForbidden)
	require.NoError(t, svc.Delete(1, reading.ID))

	assert.ErrorIs(t, svc.Delete(1, reading.ID), apperror.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(1, 9999), apperror.ErrNotFound)
}

func TestGlucoseStats(t *testing.T) {
	svc, _ := newTestGlucoseService()

	for _, v := range []int{60, 100, 140, 200} {
		_, err := svc.Create(1, GlucoseInput{Value: v, Type: models.ReadingFasting})
		require.NoError(t, err)
	}
	_, err := svc.Create(1, GlucoseInput{Value: 100, Type: models.ReadingBedtime})
	require.NoError(t, err)

	stats, err := svc.Stats(1)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Count)
	assert.Equal(t, 60, stats.Min)
	assert.Equal(t, 200, stats.Max)
	assert.InDelta(t, 120.0, stats.Average, 0.001)
	assert.InDelta(t, 60.0, stats.InRangePercent, 0.001) // 3 of 5 in [70,180]
	assert.Equal(t, 4, stats.ByType[models.ReadingFasting])
	assert.Equal(t, 1, stats.ByType[models.ReadingBedtime])
}

func TestGlucoseStatsEmpty(t *testing.T) {
	svc, _ := newTestGlucoseService()

	stats, err := svc.Stats(1)
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.Zero(t, stats.InRangePercent)
}

func TestGlucoseAlertsOnOutOfRangeReadings(t *testing.T) {
	svc, alerts := newTestGlucoseService()

	_, err := svc.Create(1, GlucoseInput{Value: 55, Type: models.ReadingFasting})
	require.NoError(t, err)
	_, err = svc.Create(1, GlucoseInput{Value: 120, Type: models.ReadingFasting})
	require.NoError(t, err)
	_, err = svc.Create(1, GlucoseInput{Value: 250, Type: models.ReadingAfterDinner})
	require.NoError(t, err)

	got, err := alerts.GetByUser(1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	types := []string{got[0].Type, got[1].Type}
	assert.Contains(t, types, models.AlertLowGlucose)
	assert.Contains(t, types, models.AlertHighGlucose)
}
