// Package testutil provides an in-memory store for repository and use-case tests.
package testutil

import (
	"testing"

	"videotube/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenTestDB returns a migrated SQLite database private to the calling test.
// A single connection serialises concurrent callers.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

// CreateUser inserts a user with the given username and returns its id.
func CreateUser(t *testing.T, db *gorm.DB, username string) string {
	t.Helper()

	user := &model.UserModel{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     username,
		Avatar:       "https://media.example.com/images/" + username + ".png",
		Password:     "$2a$10$hash",
		RefreshToken: "refresh-" + username,
	}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

// CreateVideo inserts a published video owned by ownerID and returns its id.
func CreateVideo(t *testing.T, db *gorm.DB, ownerID, title string) string {
	t.Helper()

	video := &model.VideoModel{
		OwnerID:     ownerID,
		Title:       title,
		Description: title + " description",
		VideoFile:   "https://media.example.com/videos/" + title + ".mp4",
		Thumbnail:   "https://media.example.com/images/" + title + ".png",
		Duration:    12.5,
		IsPublished: true,
	}
	require.NoError(t, db.Omit("Owner").Create(video).Error)
	return video.ID
}

// UnpublishVideo hides a video from everyone but its owner.
func UnpublishVideo(t *testing.T, db *gorm.DB, videoID string) {
	t.Helper()

	require.NoError(t, db.Model(&model.VideoModel{}).Where("id = ?", videoID).Update("is_published", false).Error)
}
