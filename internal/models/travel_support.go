package models

import (
	"time"

	"gorm.io/gorm"
)

type TravelSupport struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	OrganizationID uint           `gorm:"not null;index" json:"organization_id"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Destination    string         `gorm:"size:128" json:"destination"`
	CoverageAmount int64          `gorm:"not null;default:0" json:"coverage_amount"` // rupees
	Deadline       *time.Time     `json:"deadline"`
	Status         string         `gorm:"size:20;not null;index" json:"status"` // OPEN, CLOSED
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

func (TravelSupport) TableName() string {
	return "travel_supports"
}
