package models

import (
	"time"

	"gorm.io/gorm"
)

type Note struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Category  string    `json:"category"`
}
