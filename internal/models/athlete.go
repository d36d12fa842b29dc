package models

import (
	"time"

	"gorm.io/gorm"
)

type Athlete struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:128;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Sport        string         `gorm:"size:64;index" json:"sport"`
	Bio          string         `gorm:"type:text" json:"bio"`
	Location     string         `gorm:"size:128" json:"location"`
	Achievements string         `gorm:"type:text" json:"achievements"`
	PhotoURL     string         `gorm:"size:512" json:"photo_url"`
	// TotalReceived is in whole rupees and is only ever mutated by the
	// donation settlement path, via a guarded increment.
	TotalReceived int64          `gorm:"not null;default:0" json:"total_received"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Athlete) TableName() string {
	return "athletes"
}
