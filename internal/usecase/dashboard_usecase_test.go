package usecase

import (
	"context"
	"testing"

	"videotube/internal/entity"
	"videotube/internal/model"
	"videotube/internal/repo/persistent"
	"videotube/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardUseCase_ChannelStats(t *testing.T) {
	db := testutil.OpenTestDB(t)
	uc := NewDashboardUseCase(persistent.NewVideoRepository(db), persistent.NewSubscriptionRepository(db), testLogger())
	subscriptions := persistent.NewSubscriptionRepository(db)

	aliceID := testutil.CreateUser(t, db, "alice")
	bobID := testutil.CreateUser(t, db, "bob")
	carolID := testutil.CreateUser(t, db, "carol")

	first := testutil.CreateVideo(t, db, aliceID, "first")
	second := testutil.CreateVideo(t, db, aliceID, "second")
	testutil.CreateVideo(t, db, bobID, "elsewhere")
	require.NoError(t, db.Model(&model.VideoModel{}).Where("id = ?", first).
		Updates(map[string]interface{}{"views": 5, "likes": 2}).Error)
	require.NoError(t, db.Model(&model.VideoModel{}).Where("id = ?", second).
		Updates(map[string]interface{}{"views": 3, "likes": 1, "is_published": false}).Error)

	require.NoError(t, subscriptions.Create(context.Background(), bobID, aliceID))
	require.NoError(t, subscriptions.Create(context.Background(), carolID, aliceID))

	stats, err := uc.ChannelStats(context.Background(), aliceID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.VideosCount)
	assert.Len(t, stats.Videos, 2)
	assert.Equal(t, int64(8), stats.TotalViews)
	assert.Equal(t, int64(3), stats.TotalLikes)
	assert.Equal(t, int64(2), stats.SubscribersCount)

	stats, err = uc.ChannelStats(context.Background(), carolID)
	require.NoError(t, err)
	assert.Zero(t, stats.VideosCount)
	assert.NotNil(t, stats.Videos)
	assert.Zero(t, stats.SubscribersCount)
}

func TestDashboardUseCase_ChannelVideosIncludesUnpublished(t *testing.T) {
	db := testutil.OpenTestDB(t)
	uc := NewDashboardUseCase(persistent.NewVideoRepository(db), persistent.NewSubscriptionRepository(db), testLogger())

	aliceID := testutil.CreateUser(t, db, "alice")
	draft := testutil.CreateVideo(t, db, aliceID, "draft")
	testutil.CreateVideo(t, db, aliceID, "live")
	require.NoError(t, db.Model(&model.VideoModel{}).Where("id = ?", draft).Update("is_published", false).Error)

	page, err := uc.ChannelVideos(context.Background(), aliceID, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalDocs)
	assert.Len(t, page.Docs, 2)
}

func TestDashboardUseCase_StatsFollowViewsAndLikes(t *testing.T) {
	db := testutil.OpenTestDB(t)
	videos := persistent.NewVideoRepository(db)
	subscriptions := persistent.NewSubscriptionRepository(db)
	uc := NewDashboardUseCase(videos, subscriptions, testLogger())
	history := persistent.NewWatchHistoryRepository(db)
	likes := persistent.NewLikeRepository(db)

	channelID := testutil.CreateUser(t, db, "channel")
	aliceID := testutil.CreateUser(t, db, "alice")
	firstID := testutil.CreateVideo(t, db, channelID, "first")
	testutil.CreateVideo(t, db, channelID, "second")

	for i := 0; i < 3; i++ {
		_, err := history.Add(context.Background(), aliceID, firstID)
		require.NoError(t, err)
	}
	_, err := likes.Toggle(context.Background(), aliceID, entity.LikeTarget{Kind: entity.LikeTargetVideo, ID: firstID})
	require.NoError(t, err)
	require.NoError(t, subscriptions.Create(context.Background(), aliceID, channelID))

	stats, err := uc.ChannelStats(context.Background(), channelID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.VideosCount)
	assert.Equal(t, int64(3), stats.TotalViews)
	assert.Equal(t, int64(1), stats.TotalLikes)
	assert.Equal(t, int64(1), stats.SubscribersCount)

	page, err := uc.ChannelVideos(context.Background(), channelID, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Docs, 2)

	empty, err := uc.ChannelStats(context.Background(), aliceID)
	require.NoError(t, err)
	assert.NotNil(t, empty.Videos)
	assert.Zero(t, empty.VideosCount)
}
