// Package inbox keeps per-user notification lists in Redis.
package inbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"videotube/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	// MaxEntries is how many notifications a user's inbox retains.
	MaxEntries = 100
	ttl        = 30 * 24 * time.Hour
)

type NotificationInbox interface {
	Push(ctx context.Context, notification *entity.Notification) error
	List(ctx context.Context, userID string, page entity.PageRequest) ([]*entity.Notification, int64, error)
	// Subscribe streams raw notification payloads for userID until ctx ends.
	Subscribe(ctx context.Context, userID string) (<-chan []byte, func() error)
}

type notificationInbox struct {
	client *redis.Client
}

func NewNotificationInbox(client *redis.Client) NotificationInbox {
	return &notificationInbox{client: client}
}

// Key is both the list key and the pub/sub channel of a user's inbox.
func Key(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

func (i *notificationInbox) Push(ctx context.Context, notification *entity.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := Key(notification.UserID)
	pipe := i.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, MaxEntries-1)
	pipe.Expire(ctx, key, ttl)
	pipe.Publish(ctx, key, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification in %s: %w", key, err)
	}
	return nil
}

// List returns one page of the inbox, newest first, skipping entries that no
// longer decode.
func (i *notificationInbox) List(ctx context.Context, userID string, page entity.PageRequest) ([]*entity.Notification, int64, error) {
	key := Key(userID)

	total, err := i.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	start := int64(page.Offset())
	raw, err := i.client.LRange(ctx, key, start, start+int64(page.Limit)-1).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]*entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notifications = append(notifications, &n)
	}
	return notifications, total, nil
}

func (i *notificationInbox) Subscribe(ctx context.Context, userID string) (<-chan []byte, func() error) {
	pubsub := i.client.Subscribe(ctx, Key(userID))
	out := make(chan []byte)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, pubsub.Close
}
