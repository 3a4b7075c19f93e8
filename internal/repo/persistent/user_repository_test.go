package persistent

import (
	"context"
	"testing"

	"videotube/internal/entity"
	"videotube/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(username string) *entity.User {
	return &entity.User{
		Username: username,
		Email:    username + "@example.com",
		FullName: "User " + username,
		Avatar:   "https://media.example.com/images/" + username + ".png",
		Password: "hash",
	}
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(context.Background(), newUser("alice")))

	dup := newUser("alice")
	dup.Email = "other@example.com"
	assert.ErrorIs(t, repo.Create(context.Background(), dup), ErrDuplicate)
}

func TestUserRepository_LookupAndUpdate(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewUserRepository(db)
	user := newUser("alice")
	require.NoError(t, repo.Create(context.Background(), user))

	byEmail, err := repo.GetByUsernameOrEmail(context.Background(), "", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	updated, err := repo.Update(context.Background(), user.ID, map[string]interface{}{"full_name": "Alice A."})
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", updated.FullName)

	exists, err := repo.Exists(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(context.Background(), user.ID))
	exists, err = repo.Exists(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Update(context.Background(), user.ID, map[string]interface{}{"full_name": "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_GetChannelProfile(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewUserRepository(db)
	subscriptions := NewSubscriptionRepository(db)
	channelID := testutil.CreateUser(t, db, "channel")
	aliceID := testutil.CreateUser(t, db, "alice")
	require.NoError(t, subscriptions.Create(context.Background(), aliceID, channelID))
	require.NoError(t, subscriptions.Create(context.Background(), channelID, aliceID))

	profile, err := repo.GetChannelProfile(context.Background(), "channel", aliceID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.SubscribersCount)
	assert.Equal(t, int64(1), profile.ChannelsSubscribedToCount)
	assert.True(t, profile.IsSubscribed)

	_, err = repo.GetChannelProfile(context.Background(), "missing", aliceID)
	assert.ErrorIs(t, err, ErrNotFound)
}
