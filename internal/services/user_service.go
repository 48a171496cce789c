package services

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hitakshi13/saas-app/internal/models"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetUsers() ([]models.User, error)
	GetUserByUsername(username string) (models.User, error)
	CreateUser(user models.User) (models.User, error)
	UpdateUser(id string, user models.User) (models.User, error)
}

// userService implements the UserService interface
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB) UserService {
	return &userService{
		db: db,
	}
}

// GetUsers returns all users
func (s *userService) GetUsers() ([]models.User, error) {
	var users []models.User
	result := s.db.Select("id, username, email, plan, features").Find(&users) // Exclude password field
	return users, result.Error
}

// GetUserByUsername returns a user by username
func (s *userService) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	result := s.db.Where("username = ?", username).First(&user)
	return user, result.Error
}

// CreateUser creates a new user, hashing the plaintext password
func (s *userService) CreateUser(user models.User) (models.User, error) {
	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.HashedPassword = string(hashed)
		user.Password = ""
	}

	result := s.db.Create(&user)
	return user, result.Error
}

// UpdateUser updates an existing user
func (s *userService) UpdateUser(id string, user models.User) (models.User, error) {
	var existingUser models.User
	if err := s.db.Where("id = ?", id).First(&existingUser).Error; err != nil {
		return models.User{}, err
	}

	// Update allowed fields
	existingUser.Email = user.Email
	existingUser.Plan = user.Plan
	existingUser.Features = user.Features

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		existingUser.HashedPassword = string(hashed)
	}

	result := s.db.Save(&existingUser)
	return existingUser, result.Error
}
