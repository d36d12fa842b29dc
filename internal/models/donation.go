package models

import (
	"time"
)

// Donation ties a donor's pledge to a gateway order. PaymentID is only set
// on settlement; Status never leaves COMPLETED or FAILED once there.
type Donation struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	DonorID     uint       `gorm:"not null;index" json:"donor_id"`
	AthleteID   uint       `gorm:"not null;index" json:"athlete_id"`
	Amount      int64      `gorm:"not null" json:"amount"` // rupees
	Currency    string     `gorm:"size:3;default:'INR'" json:"currency"`
	OrderID     string     `gorm:"size:64;uniqueIndex;not null" json:"order_id"`
	PaymentID   string     `gorm:"size:64" json:"payment_id"`
	Status      string     `gorm:"size:20;not null;index" json:"status"` // PENDING, COMPLETED, FAILED
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Donation) TableName() string {
	return "donations"
}
