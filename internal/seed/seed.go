// Package seed provides database seeding utilities for development.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"adboard/internal/auth"
	"adboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers int
	NumAds   int
}

// Seeder populates the database with generated users and advertisements.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder for the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded rows.
func (s *Seeder) ClearAll() error {
	if err := s.db.Exec("DELETE FROM advertisements").Error; err != nil {
		return fmt.Errorf("failed to clear advertisements: %w", err)
	}
	if err := s.db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}

// Run creates the requested number of users and advertisements.
// Every generated account gets the password "password123".
func (s *Seeder) Run(opts Options) error {
	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	users := make([]models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		group := models.GroupUser
		if i == 0 {
			group = models.GroupAdmin
		}
		users = append(users, models.User{
			Username:     fmt.Sprintf("%s%d", gofakeit.Username(), i),
			PasswordHash: hash,
			Group:        group,
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	ads := make([]models.Ad, 0, opts.NumAds)
	for i := 0; i < opts.NumAds; i++ {
		owner := users[rand.Intn(len(users))]
		description := gofakeit.Sentence(12)
		ads = append(ads, models.Ad{
			Title:       gofakeit.ProductName(),
			Description: &description,
			Price:       gofakeit.Price(1, 5000),
			OwnerID:     owner.ID,
		})
	}
	if err := s.db.Create(&ads).Error; err != nil {
		return fmt.Errorf("failed to seed advertisements: %w", err)
	}

	log.Printf("Seeded %d users and %d advertisements", len(users), len(ads))
	return nil
}
