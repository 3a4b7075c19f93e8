package usecase

import (
	"context"
	"testing"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/internal/testutil"
	"videotube/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPlaylistUseCase(db *gorm.DB) PlaylistUseCase {
	return NewPlaylistUseCase(
		persistent.NewPlaylistRepository(db),
		persistent.NewVideoRepository(db),
		persistent.NewUserRepository(db),
		testLogger(),
	)
}

func TestPlaylistUseCase_Create(t *testing.T) {
	db := testutil.OpenTestDB(t)
	uc := newPlaylistUseCase(db)
	aliceID := testutil.CreateUser(t, db, "alice")

	_, err := uc.Create(context.Background(), aliceID, "Mix", "")
	assertKind(t, err, apperror.KindBadRequest)

	playlist, err := uc.Create(context.Background(), aliceID, "Mix", "favourites")
	require.NoError(t, err)
	assert.Equal(t, aliceID, playlist.OwnerID)

	_, err = uc.Create(context.Background(), aliceID, "Mix", "again")
	assertKind(t, err, apperror.KindBadRequest)
}

func TestPlaylistUseCase_MembershipAndOwnership(t *testing.T) {
	db := testutil.OpenTestDB(t)
	uc := newPlaylistUseCase(db)
	aliceID := testutil.CreateUser(t, db, "alice")
	bobID := testutil.CreateUser(t, db, "bob")
	videoID := testutil.CreateVideo(t, db, bobID, "A")
	missing := "00000000-0000-0000-0000-000000000000"

	playlist, err := uc.Create(context.Background(), aliceID, "Mix", "favourites")
	require.NoError(t, err)

	_, err = uc.AddVideo(context.Background(), aliceID, missing, videoID)
	assertKind(t, err, apperror.KindNotFound)

	_, err = uc.AddVideo(context.Background(), aliceID, playlist.ID, missing)
	assertKind(t, err, apperror.KindNotFound)

	_, err = uc.AddVideo(context.Background(), bobID, playlist.ID, videoID)
	assertKind(t, err, apperror.KindForbidden)

	for i := 0; i < 2; i++ {
		got, err := uc.AddVideo(context.Background(), aliceID, playlist.ID, videoID)
		require.NoError(t, err)
		assert.Len(t, got.Videos, i+1)
	}

	got, err := uc.RemoveVideo(context.Background(), aliceID, playlist.ID, videoID)
	require.NoError(t, err)
	assert.Len(t, got.Videos, 1)

	_, err = uc.RemoveVideo(context.Background(), aliceID, playlist.ID, videoID)
	require.NoError(t, err)

	_, err = uc.RemoveVideo(context.Background(), aliceID, playlist.ID, videoID)
	assertKind(t, err, apperror.KindNotFound)
}

func TestPlaylistUseCase_UpdateDeleteAndList(t *testing.T) {
	db := testutil.OpenTestDB(t)
	uc := newPlaylistUseCase(db)
	aliceID := testutil.CreateUser(t, db, "alice")
	bobID := testutil.CreateUser(t, db, "bob")
	playlist, err := uc.Create(context.Background(), aliceID, "Mix", "favourites")
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), bobID, playlist.ID, "", "")
	assertKind(t, err, apperror.KindForbidden)

	_, err = uc.Update(context.Background(), aliceID, playlist.ID, "", "")
	assertKind(t, err, apperror.KindBadRequest)

	updated, err := uc.Update(context.Background(), aliceID, playlist.ID, "Road trip", "songs")
	require.NoError(t, err)
	assert.Equal(t, "Road trip", updated.Name)

	page, err := uc.ListByUser(context.Background(), aliceID, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Docs, 1)

	_, err = uc.ListByUser(context.Background(), "00000000-0000-0000-0000-000000000000", entity.PageRequest{Page: 1, Limit: 10})
	assertKind(t, err, apperror.KindNotFound)

	assertKind(t, uc.Delete(context.Background(), bobID, playlist.ID), apperror.KindForbidden)
	require.NoError(t, uc.Delete(context.Background(), aliceID, playlist.ID))

	_, err = uc.Get(context.Background(), playlist.ID)
	assertKind(t, err, apperror.KindNotFound)
}

func TestPlaylistUseCase_NameReusableAfterDelete(t *testing.T) {
	db := testutil.OpenTestDB(t)
	uc := newPlaylistUseCase(db)
	aliceID := testutil.CreateUser(t, db, "alice")

	first, err := uc.Create(context.Background(), aliceID, "Mix", "favourites")
	require.NoError(t, err)
	require.NoError(t, uc.Delete(context.Background(), aliceID, first.ID))

	second, err := uc.Create(context.Background(), aliceID, "Mix", "favourites again")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = uc.Create(context.Background(), aliceID, "Mix", "third")
	assertKind(t, err, apperror.KindBadRequest)
}

func TestPlaylistUseCase_UnpublishedVideos(t *testing.T) {
	db := testutil.OpenTestDB(t)
	uc := newPlaylistUseCase(db)
	aliceID := testutil.CreateUser(t, db, "alice")
	bobID := testutil.CreateUser(t, db, "bob")
	listed := testutil.CreateVideo(t, db, bobID, "Listed")
	draft := testutil.CreateVideo(t, db, bobID, "Draft")
	testutil.UnpublishVideo(t, db, draft)

	playlist, err := uc.Create(context.Background(), aliceID, "Mix", "favourites")
	require.NoError(t, err)

	_, err = uc.AddVideo(context.Background(), aliceID, playlist.ID, draft)
	assertKind(t, err, apperror.KindNotFound)

	_, err = uc.AddVideo(context.Background(), aliceID, playlist.ID, listed)
	require.NoError(t, err)

	testutil.UnpublishVideo(t, db, listed)
	got, err := uc.RemoveVideo(context.Background(), aliceID, playlist.ID, listed)
	require.NoError(t, err)
	assert.Empty(t, got.Videos)

	own, err := uc.Create(context.Background(), bobID, "Drafts", "work in progress")
	require.NoError(t, err)
	got, err = uc.AddVideo(context.Background(), bobID, own.ID, draft)
	require.NoError(t, err)
	assert.Len(t, got.Videos, 1)
}
