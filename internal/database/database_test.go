package database

import (
	"testing"

	"adboard/internal/config"
	"adboard/internal/models"

	"github.com/stretchr/testify/assert"
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
	return db
}

func TestMigrateCreatesSchema(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Ad{}))

	// Running the migration again against an up-to-date schema is a no-op.
	require.NoError(t, Migrate(db))

	user := models.User{Username: "alice", PasswordHash: "x", Group: models.GroupUser}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Ad{Title: "bike", Price: 50, OwnerID: user.ID}).Error)
}

func TestConfigurePool(t *testing.T) {
	db := newTestDB(t)

	cfg := &config.Config{
		DBMaxOpenConns:           5,
		DBMaxIdleConns:           2,
		DBConnMaxLifetimeMinutes: 10,
	}
	require.NoError(t, configurePool(db, cfg))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 5, sqlDB.Stats().MaxOpenConnections)
}

func TestConfigurePoolZeroValuesLeaveDefaults(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, configurePool(db, &config.Config{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Unset limits keep the driver default of unlimited open connections.
	assert.Equal(t, 0, sqlDB.Stats().MaxOpenConnections)
}
