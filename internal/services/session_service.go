package services

import (
	"gorm.io/gorm"

	"github.com/hitakshi13/saas-app/internal/models"
)

type SessionService struct {
	DB  *gorm.DB
	Hub Broadcaster
}

func NewSessionService(db *gorm.DB, hub Broadcaster) *SessionService {
	return &SessionService{DB: db, Hub: hub}
}

// AddToSessionHistory appends one lesson-launch entry. There is no
// uniqueness constraint: repeated launches create repeated rows.
func (s *SessionService) AddToSessionHistory(companionID, userID string) error {
	entry := models.SessionHistory{
		CompanionID: companionID,
		UserID:      userID,
	}

	if err := s.DB.Create(&entry).Error; err != nil {
		return &WriteError{Err: err}
	}

	if s.Hub != nil {
		s.Hub.Broadcast(models.Message{
			Type: "session_recorded",
			Content: map[string]string{
				"companionId": companionID,
				"userId":      userID,
			},
		})
	}
	return nil
}

// GetRecentSessions returns the companions of the most recent lesson
// launches, newest first. The same companion may appear more than once.
func (s *SessionService) GetRecentSessions(limit int) ([]models.Companion, error) {
	return s.recentCompanions(s.DB, limit)
}

// GetUserSessions is GetRecentSessions scoped to one user.
func (s *SessionService) GetUserSessions(userID string, limit int) ([]models.Companion, error) {
	return s.recentCompanions(s.DB.Where("user_id = ?", userID), limit)
}

func (s *SessionService) recentCompanions(query *gorm.DB, limit int) ([]models.Companion, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var entries []models.SessionHistory
	err := query.Preload("Companion").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	// Entries whose companion row is gone are dropped from the result
	companions := make([]models.Companion, 0, len(entries))
	for _, entry := range entries {
		if entry.Companion.ID == "" {
			continue
		}
		companions = append(companions, entry.Companion)
	}
	return companions, nil
}
