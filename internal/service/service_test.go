package service

import (
	"testing"
	"time"

	"adboard/internal/auth"
	"adboard/internal/models"
	"adboard/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Ad{}))
	return db
}

func newTestUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(repository.NewUserRepository(db), tokens), db
}

func newTestAdService(t *testing.T) (*AdService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAdService(repository.NewAdRepository(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, username string, group models.Group) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x", Group: group}
	require.NoError(t, db.Create(user).Error)
	return user
}
