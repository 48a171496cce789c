package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subjects a companion can teach. Kept as plain strings because the
// store column is text and filters are substring matches.
var Subjects = []string{
	"maths",
	"language",
	"science",
	"history",
	"coding",
	"geography",
	"economics",
	"finance",
	"business",
}

// Companion is a tutoring persona. Bookmarked is derived per caller at
// query time and never stored.
type Companion struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Subject   string    `gorm:"not null;index" json:"subject"`
	Topic     string    `gorm:"not null" json:"topic"`
	Duration  int       `gorm:"not null" json:"duration"`
	Author    string    `gorm:"index" json:"author,omitempty"`
	Voice     string    `json:"voice,omitempty"`
	Style     string    `json:"style,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	Bookmarked bool `gorm:"-" json:"bookmarked"`

	// Relations (for eager loading)
	Bookmarks []Bookmark `gorm:"foreignKey:CompanionID" json:"-"`
}

func (c *Companion) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ValidSubject reports whether s is one of the known subjects.
func ValidSubject(s string) bool {
	for _, subject := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// CreateCompanionRequest is the payload for creating a companion.
type CreateCompanionRequest struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Voice    string `json:"voice"`
	Style    string `json:"style"`
	Duration int    `json:"duration"`
}
