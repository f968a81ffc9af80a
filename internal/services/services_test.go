package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voidspace/posts-backend/internal/models"
	"github.com/voidspace/posts-backend/internal/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServices(t *testing.T) (*PostService, *LikeService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.Like{}))

	postService := NewPostService(repositories.NewPostgresPostRepository(db))
	likeService := NewLikeService(repositories.NewPostgresLikeRepository(db), postService)
	return postService, likeService, db
}
