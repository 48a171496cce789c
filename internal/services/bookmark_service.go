package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/hitakshi13/saas-app/internal/models"
)

// Revalidator marks cached renderings under a logical path stale after
// a write. The redis page cache implements it.
type Revalidator interface {
	Revalidate(ctx context.Context, path string) error
}

// Broadcaster pushes refresh signals to connected listing views.
type Broadcaster interface {
	Broadcast(msg models.Message)
}

type BookmarkService struct {
	DB    *gorm.DB
	Cache Revalidator
	Hub   Broadcaster
}

func NewBookmarkService(db *gorm.DB, cache Revalidator, hub Broadcaster) *BookmarkService {
	return &BookmarkService{DB: db, Cache: cache, Hub: hub}
}

// AddBookmark saves a companion as a favourite of the user. Callers
// without an identity are a silent no-op. The composite unique index
// rejects a second row for the same pair.
func (s *BookmarkService) AddBookmark(ctx context.Context, companionID, userID, path string) error {
	if userID == "" {
		return nil
	}

	bookmark := models.Bookmark{
		CompanionID: companionID,
		UserID:      userID,
	}

	if err := s.DB.Create(&bookmark).Error; err != nil {
		return &WriteError{Err: err}
	}

	s.afterWrite(ctx, "bookmark_updated", companionID, userID, path)
	return nil
}

// RemoveBookmark deletes the bookmark by its composite key. Removing a
// bookmark that does not exist is not an error.
func (s *BookmarkService) RemoveBookmark(ctx context.Context, companionID, userID, path string) error {
	if userID == "" {
		return nil
	}

	result := s.DB.Where("companion_id = ? AND user_id = ?", companionID, userID).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return &WriteError{Err: result.Error}
	}

	s.afterWrite(ctx, "bookmark_updated", companionID, userID, path)
	return nil
}

// GetBookmarkedCompanions returns every companion the user has
// bookmarked, projected through the bookmark rows.
func (s *BookmarkService) GetBookmarkedCompanions(userID string) ([]models.Companion, error) {
	var bookmarks []models.Bookmark
	err := s.DB.Preload("Companion").
		Where("user_id = ?", userID).
		Find(&bookmarks).Error
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	companions := make([]models.Companion, 0, len(bookmarks))
	for _, b := range bookmarks {
		if b.Companion.ID == "" {
			continue
		}
		b.Companion.Bookmarked = true
		companions = append(companions, b.Companion)
	}
	return companions, nil
}

// afterWrite revalidates the page path and notifies open views. Both
// steps follow the committed write and are not atomic with it; a stale
// cache entry also ages out by TTL.
func (s *BookmarkService) afterWrite(ctx context.Context, event, companionID, userID, path string) {
	if s.Cache != nil && path != "" {
		if err := s.Cache.Revalidate(ctx, path); err != nil {
			log.Printf("Failed to revalidate %s: %v", path, err)
		}
	}
	if s.Hub != nil {
		s.Hub.Broadcast(models.Message{
			Type: event,
			Content: map[string]string{
				"companionId": companionID,
				"userId":      userID,
			},
		})
	}
}
