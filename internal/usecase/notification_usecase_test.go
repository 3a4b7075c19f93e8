package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/internal/testutil"
	"videotube/pkg/apperror"
	"videotube/pkg/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryInbox struct {
	mu      sync.Mutex
	entries map[string][]*entity.Notification
	failFor string
}

func newMemoryInbox() *memoryInbox {
	return &memoryInbox{entries: make(map[string][]*entity.Notification)}
}

func (m *memoryInbox) Push(ctx context.Context, n *entity.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n.UserID == m.failFor {
		return errors.New("redis down")
	}
	m.entries[n.UserID] = append([]*entity.Notification{n}, m.entries[n.UserID]...)
	return nil
}

func (m *memoryInbox) List(ctx context.Context, userID string, page entity.PageRequest) ([]*entity.Notification, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.entries[userID]
	start := min(page.Offset(), len(all))
	end := min(start+page.Limit, len(all))
	return all[start:end], int64(len(all)), nil
}

func (m *memoryInbox) Subscribe(ctx context.Context, userID string) (<-chan []byte, func() error) {
	ch := make(chan []byte)
	return ch, func() error { close(ch); return nil }
}

func TestNotificationUseCase_FansOutToEverySubscriber(t *testing.T) {
	db := testutil.OpenTestDB(t)
	subscriptions := persistent.NewSubscriptionRepository(db)
	inbox := newMemoryInbox()
	uc := NewNotificationUseCase(inbox, subscriptions, persistent.NewUserRepository(db), testLogger())

	channelID := testutil.CreateUser(t, db, "channel")
	subscriberIDs := make([]string, 0, fanoutBatchSize+5)
	for i := 0; i < fanoutBatchSize+5; i++ {
		id := testutil.CreateUser(t, db, fmt.Sprintf("viewer%03d", i))
		require.NoError(t, subscriptions.Create(context.Background(), id, channelID))
		subscriberIDs = append(subscriberIDs, id)
	}
	inbox.failFor = subscriberIDs[3]

	sent, err := uc.HandleTask(context.Background(), queue.NotificationTask{
		Type:      queue.RoutingKeyVideoPublished,
		VideoID:   "video-1",
		ChannelID: channelID,
		Title:     "Launch",
	})

	require.NoError(t, err)
	assert.Equal(t, fanoutBatchSize+4, sent)
	got := inbox.entries[subscriberIDs[0]]
	require.Len(t, got, 1)
	assert.Equal(t, "video-1", got[0].VideoID)
	assert.Equal(t, `channel published "Launch"`, got[0].Message)
	assert.Empty(t, inbox.entries[channelID])
}

func TestNotificationUseCase_RejectsBadTasks(t *testing.T) {
	db := testutil.OpenTestDB(t)
	uc := NewNotificationUseCase(newMemoryInbox(), persistent.NewSubscriptionRepository(db), persistent.NewUserRepository(db), testLogger())

	_, err := uc.HandleTask(context.Background(), queue.NotificationTask{Type: "new_post", VideoID: "v", ChannelID: "c"})
	assert.Error(t, err)

	_, err = uc.HandleTask(context.Background(), queue.NotificationTask{Type: queue.RoutingKeyVideoPublished, ChannelID: "c"})
	assert.Error(t, err)

	withoutInbox := NewNotificationUseCase(nil, persistent.NewSubscriptionRepository(db), persistent.NewUserRepository(db), testLogger())
	_, err = withoutInbox.HandleTask(context.Background(), queue.NotificationTask{Type: queue.RoutingKeyVideoPublished, VideoID: "v", ChannelID: "c"})
	assert.Error(t, err)
}

func TestNotificationUseCase_List(t *testing.T) {
	db := testutil.OpenTestDB(t)
	inbox := newMemoryInbox()
	uc := NewNotificationUseCase(inbox, persistent.NewSubscriptionRepository(db), persistent.NewUserRepository(db), testLogger())

	for i := 0; i < 3; i++ {
		require.NoError(t, inbox.Push(context.Background(), &entity.Notification{UserID: "user-1", VideoID: fmt.Sprintf("video-%d", i)}))
	}

	page, err := uc.List(context.Background(), "user-1", entity.PageRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalDocs)
	require.Len(t, page.Docs, 2)
	assert.Equal(t, "video-2", page.Docs[0].VideoID)
	assert.True(t, page.HasNextPage)

	withoutInbox := NewNotificationUseCase(nil, persistent.NewSubscriptionRepository(db), persistent.NewUserRepository(db), testLogger())
	empty, err := withoutInbox.List(context.Background(), "user-1", entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, empty.Docs)
	assert.Empty(t, empty.Docs)

	_, _, err = withoutInbox.Stream(context.Background(), "user-1")
	assertKind(t, err, apperror.KindUnavailable)
}
