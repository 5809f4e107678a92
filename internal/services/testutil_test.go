// internal/services/testutil_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/curioshop/curios-backend/internal/config"
	"github.com/curioshop/curios-backend/internal/models"
)

// newTestDB opens a throwaway in-memory sqlite database. The named shared
// cache keeps all pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username string, isStaff, isMerchant bool) *models.User {
	t.Helper()

	user := &models.User{
		Username:   username,
		Email:      username + "@example.com",
		IsStaff:    isStaff,
		IsMerchant: isMerchant,
		IsActive:   true,
	}
	require.NoError(t, user.SetPassword("p4ssword!"))
	require.NoError(t, db.Create(user).Error)
	return user
}
