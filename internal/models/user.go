package models

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	Username       string `gorm:"unique" json:"username"`
	Password       string `json:"password,omitempty" gorm:"-"`
	HashedPassword string `json:"-" gorm:"column:hashed_password"`
	Email          string `json:"email"`
	Plan           string `json:"plan"`
	Features       string `json:"features"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Claims for JWT authentication. Plan and features travel in the token
// so capability checks need no extra store round-trip.
type Claims struct {
	UserID   string   `json:"userId"`
	Username string   `json:"username"`
	Plan     string   `json:"plan,omitempty"`
	Features []string `json:"features,omitempty"`
	jwt.StandardClaims
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
