package models

import (
	"time"

	"gorm.io/gorm"
)

// Reading context tags, relative to meals and sleep.
const (
	ReadingBeforeBreakfast = "before_breakfast"
	ReadingAfterBreakfast  = "after_breakfast"
	ReadingBeforeLunch     = "before_lunch"
	ReadingAfterLunch      = "after_lunch"
	ReadingBeforeDinner    = "before_dinner"
	ReadingAfterDinner     = "after_dinner"
	ReadingBedtime         = "bedtime"
	ReadingFasting         = "fasting"
	ReadingOther           = "other"
)

// ReadingTypes lists every valid reading context tag.
var ReadingTypes = []string{
	ReadingBeforeBreakfast,
	ReadingAfterBreakfast,
	ReadingBeforeLunch,
	ReadingAfterLunch,
	ReadingBeforeDinner,
	ReadingAfterDinner,
	ReadingBedtime,
	ReadingFasting,
	ReadingOther,
}

// Accepted value range in mg/dL.
const (
	GlucoseMin = 20
	GlucoseMax = 600
)

// Target band used for alerts and in-range statistics.
const (
	TargetLow  = 70
	TargetHigh = 180
)

type GlucoseReading struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Value     int       `gorm:"not null" json:"value"` // mg/dL
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Type      string    `gorm:"not null" json:"type"`
	Notes     string    `json:"notes"`
}

// ValidReadingType reports whether t is one of the known context tags.
func ValidReadingType(t string) bool {
	for _, rt := range ReadingTypes {
		if rt == t {
			return true
		}
	}
	return false
}
