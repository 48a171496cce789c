package middleware

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"github.com/hitakshi13/saas-app/internal/identity"
	"github.com/hitakshi13/saas-app/internal/models"
)

// RequireAuth checks for a valid JWT token and adds the caller identity
// to the request context. Requests without a valid token are rejected.
func RequireAuth(jwtSecretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := resolveIdentity(r, jwtSecretKey)
			if !ok || id.Anonymous() {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.ToContext(r.Context(), id)))
		})
	}
}

// OptionalAuth resolves the caller identity when a valid token is
// present and passes anonymous callers through. Listings use this so
// signed-in callers get bookmark annotations while everyone can read.
func OptionalAuth(jwtSecretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := resolveIdentity(r, jwtSecretKey)
			next.ServeHTTP(w, r.WithContext(identity.ToContext(r.Context(), id)))
		})
	}
}

func resolveIdentity(r *http.Request, jwtSecretKey []byte) (identity.Identity, bool) {
	authorizationHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return identity.Identity{}, false
	}

	tokenString := strings.TrimPrefix(authorizationHeader, "Bearer ")

	// Parse and validate the token
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecretKey, nil
	})

	if err != nil || !token.Valid {
		return identity.Identity{}, false
	}

	return identity.FromClaims(claims, tokenString), true
}
