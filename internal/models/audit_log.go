package models

import (
	"time"
)

// AuditLog records security-relevant events (logins, settlements, status
// changes). Append-only.
type AuditLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PrincipalKind string    `gorm:"size:20;index" json:"principal_kind"`
	PrincipalID   *uint     `gorm:"index" json:"principal_id"`
	Action        string    `gorm:"size:64;not null" json:"action"`
	Resource      string    `gorm:"size:64" json:"resource"`
	ResourceID    string    `gorm:"size:128" json:"resource_id"`
	IP            string    `gorm:"size:64" json:"ip"`
	UserAgent     string    `gorm:"size:255" json:"user_agent"`
	CreatedAt     time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
