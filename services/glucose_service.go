package services

import (
	"fmt"
	"time"

	"backend/apperror"
	"backend/models"
	"backend/repositories"
)

type GlucoseInput struct {
	Value     int        `json:"value" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
	Type      string     `json:"type" binding:"required"`
	Notes     string     `json:"notes"`
}

// GlucoseUpdateInput uses pointers so absent fields are left untouched.
type GlucoseUpdateInput struct {
	Value     *int       `json:"value"`
	Timestamp *time.Time `json:"timestamp"`
	Type      *string    `json:"type"`
	Notes     *string    `json:"notes"`
}

type GlucoseStats struct {
	Count          int            `json:"count"`
	Average        float64        `json:"average"`
	Min            int            `json:"min"`
	Max            int            `json:"max"`
	InRangePercent float64        `json:"in_range_percent"`
	ByType         map[string]int `json:"by_type"`
}

type GlucoseService struct {
	readings repositories.GlucoseRepository
	alerts   *AlertService
}

func NewGlucoseService(readings repositories.GlucoseRepository, alerts *AlertService) *GlucoseService {
	return &GlucoseService{readings: readings, alerts: alerts}
}

func validateGlucoseValue(v int) error {
	if v < models.GlucoseMin || v > models.GlucoseMax {
		return apperror.ValidationFailed(
			fmt.Sprintf("value must be between %d and %d mg/dL", models.GlucoseMin, models.GlucoseMax),
			"value")
	}
	return nil
}

func validateReadingType(t string) error {
	if !models.ValidReadingType(t) {
		return apperror.ValidationFailed("unknown reading type: "+t, "type")
	}
	return nil
}

func (s *GlucoseService) Create(userID uint, input GlucoseInput) (*models.GlucoseReading, error) {
	if err := validateGlucoseValue(input.Value); err != nil {
		return nil, err
	}
	if err := validateReadingType(input.Type); err != nil {
		return nil, err
	}

	ts := time.Now()
	if input.Timestamp != nil {
		ts = *input.Timestamp
	}

	reading := &models.GlucoseReading{
		UserID:    userID,
		Value:     input.Value,
		Timestamp: ts,
		Type:      input.Type,
		Notes:     input.Notes,
	}
	if err := s.readings.Create(reading); err != nil {
		return nil, err
	}

	if s.alerts != nil {
		s.alerts.EmitGlucoseAlert(reading)
	}
	return reading, nil
}

func (s *GlucoseService) List(userID uint) ([]models.GlucoseReading, error) {
	return s.readings.GetByUser(userID)
}

func (s *GlucoseService) ListRange(userID uint, start, end time.Time) ([]models.GlucoseReading, error) {
	if end.Before(start) {
		return nil, apperror.ValidationFailed("end must not be before start", "start", "end")
	}
	return s.readings.GetByUserAndRange(userID, start, end)
}

// getOwned loads a reading and enforces that userID owns it.
func (s *GlucoseService) getOwned(userID, id uint) (*models.GlucoseReading, error) {
	reading, err := s.readings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reading == nil {
		return nil, apperror.NotFound("glucose reading", id)
	}
	if reading.UserID != userID {
		return nil, apperror.Forbidden("reading belongs to another user")
	}
	return reading, nil
}

func (s *GlucoseService) Update(userID, id uint, input GlucoseUpdateInput) (*models.GlucoseReading, error) {
	reading, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if input.Value != nil {
		if err := validateGlucoseValue(*input.Value); err != nil {
			return nil, err
		}
		reading.Value = *input.Value
	}
	if input.Type != nil {
		if err := validateReadingType(*input.Type); err != nil {
			return nil, err
		}
		reading.Type = *input.Type
	}
	if input.Timestamp != nil {
		reading.Timestamp = *input.Timestamp
	}
	if input.Notes != nil {
		reading.Notes = *input.Notes
	}

	if err := s.readings.Update(reading); err != nil {
		return nil, err
	}
	return reading, nil
}

func (s *GlucoseService) Delete(userID, id uint) error {
	if _, err := s.getOwned(userID, id); err != nil {
		return err
	}
	ok, err := s.readings.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("glucose reading", id)
	}
	return nil
}

// Stats aggregates a user's readings: average/min/max, count per context
// tag, and the share inside the 70-180 mg/dL target band.
func (s *GlucoseService) Stats(userID uint) (*GlucoseStats, error) {
	readings, err := s.readings.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &GlucoseStats{ByType: make(map[string]int)}
	if len(readings) == 0 {
		return stats, nil
	}

	sum := 0
	inRange := 0
	stats.Min = readings[0].Value
	stats.Max = readings[0].Value
	for _, r := range readings {
		sum += r.Value
		if r.Value < stats.Min {
			stats.Min = r.Value
		}
		if r.Value > stats.Max {
			stats.Max = r.Value
		}
		if r.Value >= models.TargetLow && r.Value <= models.TargetHigh {
			inRange++
		}
		stats.ByType[r.Type]++
	}

	stats.Count = len(readings)
	stats.Average = float64(sum) / float64(len(readings))
	stats.InRangePercent = 100 * float64(inRange) / float64(len(readings))
	return stats, nil
}
