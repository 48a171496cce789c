package models

import (
	"time"
)

// SessionHistory records one lesson launch. Rows are append-only:
// repeated launches of the same companion create repeated rows.
type SessionHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanionID string    `gorm:"type:uuid;not null;index" json:"companionId"`
	UserID      string    `gorm:"not null;index" json:"userId"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`

	// Relations (for eager loading)
	Companion Companion `gorm:"foreignKey:CompanionID" json:"companion,omitempty"`
}

func (SessionHistory) TableName() string {
	return "session_history"
}
