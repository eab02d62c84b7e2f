package services

import (
	"testing"
	"time"

	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps the memory database alive and shared across the
// test's queries.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.FollowRequest{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	))
	return db
}

// createUser inserts a fixture user
func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Fullname: username + " test",
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createPost inserts a fixture post at the given creation time
func createPost(t *testing.T, db *gorm.DB, authorID uint, published bool, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		ImageURL:   "media/posts/fixture.jpg",
		Published:  published,
		AuthorID:   authorID,
		CreatedAt:  createdAt,
		ModifiedAt: createdAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
