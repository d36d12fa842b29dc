package models

import (
	"time"

	"gorm.io/gorm"
)

type Organization struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:128;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Description  string         `gorm:"type:text" json:"description"`
	Website      string         `gorm:"size:255" json:"website"`
	Location     string         `gorm:"size:128" json:"location"`
	LogoURL      string         `gorm:"size:512" json:"logo_url"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Organization) TableName() string {
	return "organizations"
}
