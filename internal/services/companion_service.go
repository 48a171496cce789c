package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hitakshi13/saas-app/internal/models"
)

const (
	DefaultListLimit = 10
	DefaultListPage  = 1
)

// CompanionFilter holds the optional listing filters. Subject and Topic
// are case-insensitive substring matches.
type CompanionFilter struct {
	Limit   int
	Page    int
	Subject string
	Topic   string
}

type CompanionService struct {
	DB *gorm.DB
}

func NewCompanionService(db *gorm.DB) *CompanionService {
	return &CompanionService{DB: db}
}

// GetAllCompanions returns one page of companions with the caller's
// bookmark status folded in. Anonymous callers (empty userID) always
// see bookmarked=false.
func (s *CompanionService) GetAllCompanions(filter CompanionFilter, userID string) ([]models.Companion, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	page := filter.Page
	if page <= 0 {
		page = DefaultListPage
	}

	query := s.DB.Model(&models.Companion{}).Preload("Bookmarks")

	// LOWER(...) LIKE keeps the match case-insensitive on every backend
	subject := containsPattern(filter.Subject)
	topic := containsPattern(filter.Topic)
	switch {
	case subject != "" && topic != "":
		query = query.
			Where("LOWER(subject) LIKE ?", subject).
			Where("LOWER(topic) LIKE ? OR LOWER(name) LIKE ?", topic, topic)
	case subject != "":
		query = query.Where("LOWER(subject) LIKE ?", subject)
	case topic != "":
		query = query.Where("LOWER(topic) LIKE ? OR LOWER(name) LIKE ?", topic, topic)
	}

	// Inclusive row range [(page-1)*limit, page*limit-1]
	query = query.Offset((page - 1) * limit).Limit(limit)

	var companions []models.Companion
	if err := query.Find(&companions).Error; err != nil {
		return nil, &QueryError{Err: err}
	}

	for i := range companions {
		companions[i].Bookmarked = bookmarkedBy(companions[i].Bookmarks, userID)
		companions[i].Bookmarks = nil
	}

	return companions, nil
}

// GetCompanion returns a single companion by ID. An empty result is a
// NotFoundError rather than an empty success.
func (s *CompanionService) GetCompanion(id string) (*models.Companion, error) {
	var companion models.Companion
	result := s.DB.Where("id = ?", id).First(&companion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "companion", ID: id}
		}
		return nil, &QueryError{Err: result.Error}
	}
	return &companion, nil
}

// GetUserCompanions returns every companion authored by userID,
// unfiltered and unpaginated.
func (s *CompanionService) GetUserCompanions(userID string) ([]models.Companion, error) {
	var companions []models.Companion
	if err := s.DB.Where("author = ?", userID).Find(&companions).Error; err != nil {
		return nil, &QueryError{Err: err}
	}
	return companions, nil
}

// CountUserCompanions counts companions authored by userID server-side.
func (s *CompanionService) CountUserCompanions(userID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Companion{}).Where("author = ?", userID).Count(&count).Error
	if err != nil {
		return 0, &QueryError{Err: err}
	}
	return count, nil
}

// CreateCompanion inserts a new companion authored by author.
func (s *CompanionService) CreateCompanion(req models.CreateCompanionRequest, author string) (*models.Companion, error) {
	if !models.ValidSubject(req.Subject) {
		return nil, errors.New("unknown subject: " + req.Subject)
	}
	if req.Duration <= 0 {
		return nil, errors.New("duration must be a positive number of minutes")
	}

	companion := models.Companion{
		Name:      req.Name,
		Subject:   req.Subject,
		Topic:     req.Topic,
		Voice:     req.Voice,
		Style:     req.Style,
		Duration:  req.Duration,
		Author:    author,
		CreatedAt: time.Now(),
	}

	if err := s.DB.Create(&companion).Error; err != nil {
		return nil, &WriteError{Err: err}
	}

	return &companion, nil
}

// containsPattern turns a raw filter value into a lowercased
// %substring% pattern, or "" when the filter is absent.
func containsPattern(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return "%" + strings.ToLower(value) + "%"
}

func bookmarkedBy(bookmarks []models.Bookmark, userID string) bool {
	if userID == "" {
		return false
	}
	for _, b := range bookmarks {
		if b.UserID == userID {
			return true
		}
	}
	return false
}
