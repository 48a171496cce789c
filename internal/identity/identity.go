package identity

import (
	"context"

	"github.com/hitakshi13/saas-app/internal/models"
)

// Identity is the caller resolved from the auth boundary. A zero
// Identity is an anonymous caller.
type Identity struct {
	UserID   string
	Username string
	Token    string
	Plan     string
	Features []string
}

// Check asks for a plan or a feature. Exactly one field is set.
type Check struct {
	Plan    string
	Feature string
}

// Anonymous reports whether no user is attached to this identity.
func (id Identity) Anonymous() bool {
	return id.UserID == ""
}

// Has reports whether the identity carries the requested plan or feature.
func (id Identity) Has(check Check) bool {
	if check.Plan != "" {
		return id.Plan == check.Plan
	}
	if check.Feature != "" {
		for _, f := range id.Features {
			if f == check.Feature {
				return true
			}
		}
	}
	return false
}

// FromClaims builds an identity from validated JWT claims.
func FromClaims(claims *models.Claims, token string) Identity {
	return Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Token:    token,
		Plan:     claims.Plan,
		Features: claims.Features,
	}
}

// Key type for context values
type contextKey string

const identityKey contextKey = "identity"

// ToContext adds the identity to the context.
func ToContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext extracts the identity from the context. Missing identity
// is an anonymous caller, not an error.
func FromContext(ctx context.Context) Identity {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Identity{}
	}
	return id
}
