package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	OrganizationID uint           `gorm:"not null;index" json:"organization_id"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Sport          string         `gorm:"size:64" json:"sport"`
	Location       string         `gorm:"size:128" json:"location"`
	Date           *time.Time     `json:"date"`
	Status         string         `gorm:"size:20;not null;index" json:"status"` // OPEN, CLOSED
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

func (Event) TableName() string {
	return "events"
}
