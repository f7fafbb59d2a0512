package services

import (
	"fmt"
	"log"

	"backend/models"
	"backend/repositories"
)

// AlertService persists alerts and pushes them to the owner's open
// websockets. The hub is optional so tests can run without one.
type AlertService struct {
	alerts repositories.AlertRepository
	hub    *RealtimeHub
}

func NewAlertService(alerts repositories.AlertRepository, hub *RealtimeHub) *AlertService {
	return &AlertService{alerts: alerts, hub: hub}
}

func (s *AlertService) Emit(userID uint, typ, message string) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message}
	if err := s.alerts.Create(a); err != nil {
		log.Printf("alert persist failed for user %d: %v", userID, err)
		return
	}

	if s.hub != nil {
		s.hub.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

// EmitGlucoseAlert raises an alert when a reading falls outside the target
// band. In-range readings are a no-op.
func (s *AlertService) EmitGlucoseAlert(reading *models.GlucoseReading) {
	switch {
	case reading.Value < models.TargetLow:
		s.Emit(reading.UserID, models.AlertLowGlucose,
			fmt.Sprintf("Low glucose reading: %d mg/dL", reading.Value))
	case reading.Value > models.TargetHigh:
		s.Emit(reading.UserID, models.AlertHighGlucose,
			fmt.Sprintf("High glucose reading: %d mg/dL", reading.Value))
	}
}

func (s *AlertService) List(userID uint) ([]models.Alert, error) {
	return s.alerts.GetByUser(userID)
}
