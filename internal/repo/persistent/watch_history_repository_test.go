package persistent

import (
	"context"
	"testing"

	"videotube/internal/entity"
	"videotube/internal/model"
	"videotube/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchHistoryRepository_AddIncrementsViews(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewWatchHistoryRepository(db)
	userID := testutil.CreateUser(t, db, "alice")
	videoID := testutil.CreateVideo(t, db, userID, "clip")

	for i := 0; i < 2; i++ {
		entry, err := repo.Add(context.Background(), userID, videoID)
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
	}

	var video model.VideoModel
	require.NoError(t, db.Where("id = ?", videoID).First(&video).Error)
	assert.Equal(t, int64(2), video.Views)

	history, total, err := repo.ListByUser(context.Background(), userID, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.NotNil(t, history[0].Video)
	assert.Equal(t, "clip", history[0].Video.Title)
}

func TestWatchHistoryRepository_AddUnknownVideo(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewWatchHistoryRepository(db)
	userID := testutil.CreateUser(t, db, "alice")

	_, err := repo.Add(context.Background(), userID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.WatchHistoryModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
