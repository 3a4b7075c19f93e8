package persistent

import (
	"context"
	"sync"
	"testing"

	"videotube/internal/entity"
	"videotube/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_ToggleRoundTrip(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewSubscriptionRepository(db)
	aliceID := testutil.CreateUser(t, db, "alice")
	bobID := testutil.CreateUser(t, db, "bob")

	added, err := repo.Toggle(context.Background(), aliceID, bobID)
	require.NoError(t, err)
	assert.True(t, added)

	subscribed, err := repo.IsSubscribed(context.Background(), aliceID, bobID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	added, err = repo.Toggle(context.Background(), aliceID, bobID)
	require.NoError(t, err)
	assert.False(t, added)

	subscribed, err = repo.IsSubscribed(context.Background(), aliceID, bobID)
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestSubscriptionRepository_ConcurrentCreateOnlyOneSucceeds(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewSubscriptionRepository(db)
	aliceID := testutil.CreateUser(t, db, "alice")
	bobID := testutil.CreateUser(t, db, "bob")

	const attempts = 6
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), aliceID, bobID)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, ErrDuplicate)
	}
	assert.Equal(t, 1, successes)
}

func TestSubscriptionRepository_Lists(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewSubscriptionRepository(db)
	channelID := testutil.CreateUser(t, db, "channel")
	aliceID := testutil.CreateUser(t, db, "alice")
	bobID := testutil.CreateUser(t, db, "bob")
	require.NoError(t, repo.Create(context.Background(), aliceID, channelID))
	require.NoError(t, repo.Create(context.Background(), bobID, channelID))

	subscribers, total, err := repo.ListSubscribers(context.Background(), channelID, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	usernames := []string{subscribers[0].User.Username, subscribers[1].User.Username}
	assert.ElementsMatch(t, []string{"alice", "bob"}, usernames)

	channels, total, err := repo.ListSubscribedChannels(context.Background(), aliceID, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "channel", channels[0].User.Username)

	count, err := repo.CountSubscribers(context.Background(), channelID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
