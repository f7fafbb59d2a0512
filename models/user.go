package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username      string    `gorm:"uniqueIndex;not null" json:"username"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"not null" json:"-"`
	Name          string    `json:"name"`
	Allergies     []string  `gorm:"serializer:json" json:"allergies"`
	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
