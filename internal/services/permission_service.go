package services

import (
	"github.com/hitakshi13/saas-app/internal/identity"
)

// Companion-count entitlements. An identity matching none of these has
// a limit of zero: unknown tier means no quota.
const (
	PlanPro           = "pro"
	FeatureThreeLimit = "3_companion_limit"
	FeatureTenLimit   = "10_companion_limit"
)

type PermissionService struct {
	Companions *CompanionService
}

func NewPermissionService(companions *CompanionService) *PermissionService {
	return &PermissionService{Companions: companions}
}

// CanCreateCompanion compares the caller's entitlement against their
// current authored-companion count. Pro is unlimited.
func (s *PermissionService) CanCreateCompanion(id identity.Identity) (bool, error) {
	if id.Anonymous() {
		return false, nil
	}

	if id.Has(identity.Check{Plan: PlanPro}) {
		return true, nil
	}

	var limit int64
	switch {
	case id.Has(identity.Check{Feature: FeatureThreeLimit}):
		limit = 3
	case id.Has(identity.Check{Feature: FeatureTenLimit}):
		limit = 10
	}
	if limit == 0 {
		return false, nil
	}

	count, err := s.Companions.CountUserCompanions(id.UserID)
	if err != nil {
		return false, err
	}

	return count < limit, nil
}
