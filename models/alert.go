package models

import (
	"gorm.io/gorm"
)

const (
	AlertLowGlucose  = "low_glucose"
	AlertHighGlucose = "high_glucose"
)

type Alert struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Type    string `gorm:"not null" json:"type"`
	Message string `json:"message"`
}
