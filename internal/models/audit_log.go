package models

import (
	"time"

	"gorm.io/gorm"
)

const AuditActionSetFavorite = "set_favorite"

// AuditLog records one favorite change. Rows are an event trail only;
// landmark state is never rebuilt from them.
type AuditLog struct {
	gorm.Model
	LandmarkID int       `gorm:"not null;index" json:"landmarkId"`
	Action     string    `gorm:"type:varchar(50);not null" json:"action"`
	OldValue   bool      `json:"oldValue"`
	NewValue   bool      `json:"newValue"`
	RequestID  string    `gorm:"type:varchar(64)" json:"requestId"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
}

func (AuditLog) TableName() string {
	return "landmark_audit_logs"
}
