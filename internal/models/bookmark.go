package models

import (
	"time"
)

// Bookmark marks a companion as a favourite of one user. The composite
// unique index keeps one row per (companion, user) pair.
type Bookmark struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanionID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_companion_user" json:"companionId"`
	UserID      string    `gorm:"not null;index;uniqueIndex:idx_companion_user" json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`

	// Relations (for eager loading)
	Companion Companion `gorm:"foreignKey:CompanionID" json:"companion,omitempty"`
}
