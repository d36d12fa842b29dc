package models

import (
	"time"
)

// Application links one athlete to one opportunity. The composite unique
// index is the duplicate guard: a second apply for the same target fails at
// the storage layer regardless of the first application's status. No soft
// delete — a deleted row would punch a hole in the uniqueness guarantee.
type Application struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AthleteID       uint      `gorm:"not null;uniqueIndex:idx_applications_target" json:"athlete_id"`
	OpportunityType string    `gorm:"size:20;not null;uniqueIndex:idx_applications_target" json:"opportunity_type"`
	OpportunityID   uint      `gorm:"not null;uniqueIndex:idx_applications_target" json:"opportunity_id"`
	Message         string    `gorm:"type:text;not null" json:"message"`
	Requirements    string    `gorm:"type:text" json:"requirements"`
	Status          string    `gorm:"size:20;not null;index" json:"status"` // PENDING, ACCEPTED, REJECTED
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}
