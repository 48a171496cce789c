package services

import (
	"testing"

	"github.com/hitakshi13/saas-app/internal/identity"
	"github.com/hitakshi13/saas-app/internal/models"
)

func TestCanCreateCompanion(t *testing.T) {
	db := setupTestDB(t)
	companions := NewCompanionService(db)
	service := NewPermissionService(companions)

	author := "author-quota"
	for i := 0; i < 3; i++ {
		c := models.Companion{Name: "Companion", Subject: "coding", Topic: "go", Duration: 30, Author: author}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("Failed to create companion: %v", err)
		}
	}

	tests := []struct {
		name string
		id   identity.Identity
		want bool
	}{
		{
			name: "anonymous cannot create",
			id:   identity.Identity{},
			want: false,
		},
		{
			name: "pro plan is unlimited",
			id:   identity.Identity{UserID: author, Plan: PlanPro},
			want: true,
		},
		{
			name: "3-limit exhausted at 3 authored",
			id:   identity.Identity{UserID: author, Features: []string{FeatureThreeLimit}},
			want: false,
		},
		{
			name: "10-limit has room at 3 authored",
			id:   identity.Identity{UserID: author, Features: []string{FeatureTenLimit}},
			want: true,
		},
		{
			name: "unknown tier means zero quota",
			id:   identity.Identity{UserID: "author-without-plan"},
			want: false,
		},
		{
			name: "unknown tier fails closed even with no authored companions",
			id:   identity.Identity{UserID: "brand-new-author"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.CanCreateCompanion(tt.id)
			if err != nil {
				t.Fatalf("CanCreateCompanion failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIdentityHas(t *testing.T) {
	id := identity.Identity{
		UserID:   "user-1",
		Plan:     "pro",
		Features: []string{"3_companion_limit"},
	}

	if !id.Has(identity.Check{Plan: "pro"}) {
		t.Error("Expected plan check to pass")
	}
	if id.Has(identity.Check{Plan: "basic"}) {
		t.Error("Expected mismatched plan check to fail")
	}
	if !id.Has(identity.Check{Feature: "3_companion_limit"}) {
		t.Error("Expected feature check to pass")
	}
	if id.Has(identity.Check{Feature: "10_companion_limit"}) {
		t.Error("Expected missing feature check to fail")
	}
	if id.Has(identity.Check{}) {
		t.Error("Expected empty check to fail")
	}
}
