package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hitakshi13/saas-app/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Setup in-memory database
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	// Migrate schema
	err = db.AutoMigrate(
		&models.User{},
		&models.Companion{},
		&models.Bookmark{},
		&models.SessionHistory{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	return db
}

func createCompanion(t *testing.T, db *gorm.DB, name, subject, topic string) models.Companion {
	t.Helper()

	companion := models.Companion{
		Name:     name,
		Subject:  subject,
		Topic:    topic,
		Duration: 30,
		Author:   "author-1",
	}
	if err := db.Create(&companion).Error; err != nil {
		t.Fatalf("Failed to create companion %s: %v", name, err)
	}
	return companion
}

func TestGetAllCompanionsFilters(t *testing.T) {
	db := setupTestDB(t)
	service := NewCompanionService(db)

	createCompanion(t, db, "Neura the Brainy Explorer", "science", "neural networks of the brain")
	createCompanion(t, db, "Countsy the Number Wizard", "maths", "derivatives and integrals")
	createCompanion(t, db, "Brainstorm Buddy", "history", "the industrial revolution")

	// Subject and topic together: subject must match AND topic-or-name
	// must match
	companions, err := service.GetAllCompanions(CompanionFilter{Subject: "science", Topic: "brain"}, "")
	if err != nil {
		t.Fatalf("Failed to list companions: %v", err)
	}
	if len(companions) != 1 || companions[0].Name != "Neura the Brainy Explorer" {
		t.Errorf("Expected only the science companion with a brain topic, got %+v", companions)
	}

	// Topic alone matches against topic OR name, case-insensitively
	companions, err = service.GetAllCompanions(CompanionFilter{Topic: "BRAIN"}, "")
	if err != nil {
		t.Fatalf("Failed to list companions: %v", err)
	}
	if len(companions) != 2 {
		t.Errorf("Expected 2 companions matching brain in topic or name, got %d", len(companions))
	}

	// Subject alone
	companions, err = service.GetAllCompanions(CompanionFilter{Subject: "maths"}, "")
	if err != nil {
		t.Fatalf("Failed to list companions: %v", err)
	}
	if len(companions) != 1 || companions[0].Subject != "maths" {
		t.Errorf("Expected only the maths companion, got %+v", companions)
	}

	// No filter returns everything
	companions, err = service.GetAllCompanions(CompanionFilter{}, "")
	if err != nil {
		t.Fatalf("Failed to list companions: %v", err)
	}
	if len(companions) != 3 {
		t.Errorf("Expected 3 companions, got %d", len(companions))
	}
}

func TestGetAllCompanionsPagination(t *testing.T) {
	db := setupTestDB(t)
	service := NewCompanionService(db)

	for i := 0; i < 25; i++ {
		createCompanion(t, db, "Companion", "coding", "go basics")
	}

	page1, err := service.GetAllCompanions(CompanionFilter{Limit: 10, Page: 1}, "")
	if err != nil {
		t.Fatalf("Failed to list page 1: %v", err)
	}
	if len(page1) != 10 {
		t.Errorf("Expected 10 companions on page 1, got %d", len(page1))
	}

	page2, err := service.GetAllCompanions(CompanionFilter{Limit: 10, Page: 2}, "")
	if err != nil {
		t.Fatalf("Failed to list page 2: %v", err)
	}
	if len(page2) != 10 {
		t.Errorf("Expected 10 companions on page 2, got %d", len(page2))
	}

	// Pages must not overlap
	seen := make(map[string]bool)
	for _, c := range page1 {
		seen[c.ID] = true
	}
	for _, c := range page2 {
		if seen[c.ID] {
			t.Errorf("Companion %s appears on both pages", c.ID)
		}
	}

	page3, err := service.GetAllCompanions(CompanionFilter{Limit: 10, Page: 3}, "")
	if err != nil {
		t.Fatalf("Failed to list page 3: %v", err)
	}
	if len(page3) != 5 {
		t.Errorf("Expected 5 companions on page 3, got %d", len(page3))
	}
}

func TestGetAllCompanionsBookmarkAnnotation(t *testing.T) {
	db := setupTestDB(t)
	service := NewCompanionService(db)
	bookmarks := NewBookmarkService(db, nil, nil)

	first := createCompanion(t, db, "Neura", "science", "the brain")
	createCompanion(t, db, "Countsy", "maths", "algebra")

	// No bookmarks yet: everything comes back false
	companions, err := service.GetAllCompanions(CompanionFilter{}, "user-1")
	if err != nil {
		t.Fatalf("Failed to list companions: %v", err)
	}
	for _, c := range companions {
		if c.Bookmarked {
			t.Errorf("Expected no bookmarks for companion %s", c.ID)
		}
	}

	if err := bookmarks.AddBookmark(context.Background(), first.ID, "user-1", "/"); err != nil {
		t.Fatalf("Failed to add bookmark: %v", err)
	}

	// The bookmarked companion flips to true, the rest stay false
	companions, err = service.GetAllCompanions(CompanionFilter{}, "user-1")
	if err != nil {
		t.Fatalf("Failed to list companions: %v", err)
	}
	for _, c := range companions {
		want := c.ID == first.ID
		if c.Bookmarked != want {
			t.Errorf("Companion %s: expected bookmarked=%v, got %v", c.ID, want, c.Bookmarked)
		}
	}

	// A different user sees false everywhere
	companions, _ = service.GetAllCompanions(CompanionFilter{}, "user-2")
	for _, c := range companions {
		if c.Bookmarked {
			t.Errorf("Expected no bookmarks for user-2 on companion %s", c.ID)
		}
	}

	// Anonymous callers always see false, whatever rows exist
	companions, _ = service.GetAllCompanions(CompanionFilter{}, "")
	for _, c := range companions {
		if c.Bookmarked {
			t.Errorf("Expected bookmarked=false for anonymous caller on companion %s", c.ID)
		}
	}
}

func TestGetCompanionNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewCompanionService(db)

	created := createCompanion(t, db, "Neura", "science", "the brain")

	companion, err := service.GetCompanion(created.ID)
	if err != nil {
		t.Fatalf("Failed to get companion: %v", err)
	}
	if companion.Name != "Neura" {
		t.Errorf("Expected companion Neura, got %s", companion.Name)
	}

	_, err = service.GetCompanion("00000000-0000-0000-0000-000000000000")
	if err == nil {
		t.Fatal("Expected an error for a missing companion, got nil")
	}
	if !IsNotFound(err) {
		t.Errorf("Expected a NotFoundError, got %T: %v", err, err)
	}
}

func TestGetUserCompanionsAndCount(t *testing.T) {
	db := setupTestDB(t)
	service := NewCompanionService(db)

	createCompanion(t, db, "Neura", "science", "the brain")
	createCompanion(t, db, "Countsy", "maths", "algebra")
	other := models.Companion{Name: "Historia", Subject: "history", Topic: "rome", Duration: 20, Author: "author-2"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("Failed to create companion: %v", err)
	}

	companions, err := service.GetUserCompanions("author-1")
	if err != nil {
		t.Fatalf("Failed to get user companions: %v", err)
	}
	if len(companions) != 2 {
		t.Errorf("Expected 2 companions for author-1, got %d", len(companions))
	}

	count, err := service.CountUserCompanions("author-1")
	if err != nil {
		t.Fatalf("Failed to count user companions: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}

func TestCreateCompanionValidation(t *testing.T) {
	db := setupTestDB(t)
	service := NewCompanionService(db)

	_, err := service.CreateCompanion(models.CreateCompanionRequest{
		Name: "Nowhere", Subject: "astrology", Topic: "stars", Duration: 10,
	}, "author-1")
	if err == nil {
		t.Error("Expected an error for an unknown subject")
	}

	_, err = service.CreateCompanion(models.CreateCompanionRequest{
		Name: "Neura", Subject: "science", Topic: "the brain", Duration: 0,
	}, "author-1")
	if err == nil {
		t.Error("Expected an error for a non-positive duration")
	}

	companion, err := service.CreateCompanion(models.CreateCompanionRequest{
		Name: "Neura", Subject: "science", Topic: "the brain", Duration: 30,
	}, "author-1")
	if err != nil {
		t.Fatalf("Failed to create companion: %v", err)
	}
	if companion.ID == "" {
		t.Error("Expected a server-assigned ID")
	}
	if companion.Author != "author-1" {
		t.Errorf("Expected author author-1, got %s", companion.Author)
	}
}
