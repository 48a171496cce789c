package db

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hitakshi13/saas-app/internal/config"
	"github.com/hitakshi13/saas-app/internal/models"
)

// Connect establishes a connection to the database
func Connect(config config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.URL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	// Create a default user if none exists
	createDefaultUser(db)

	return db, nil
}

// Migrate creates or updates the schema for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Companion{},
		&models.Bookmark{},
		&models.SessionHistory{},
	)
}

// ConnectRedis establishes a connection to Redis
func ConnectRedis(config config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test the connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	return client, nil
}

// createDefaultUser creates a demo user if no users exist
func createDefaultUser(db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("learnio-demo"), bcrypt.DefaultCost)
		db.Create(&models.User{
			Username:       "demo",
			HashedPassword: string(hashedPassword),
			Email:          "demo@learnio.local",
			Features:       "3_companion_limit",
		})
		log.Println("Created default demo user")
	}
}
