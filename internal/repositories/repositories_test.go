package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voidspace/posts-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep every query on the single in-memory database

	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.Like{}))
	return db
}
