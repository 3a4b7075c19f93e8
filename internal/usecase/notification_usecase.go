package usecase

import (
	"context"
	"fmt"
	"time"

	"videotube/internal/entity"
	"videotube/internal/repo/inbox"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
	"videotube/pkg/metrics"
	"videotube/pkg/queue"
)

const fanoutBatchSize = 100

type NotificationUseCase interface {
	// HandleTask delivers one queued task and reports how many inboxes received it.
	HandleTask(ctx context.Context, task queue.NotificationTask) (int, error)
	List(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Notification], error)
	Stream(ctx context.Context, userID string) (<-chan []byte, func() error, error)
}

type notificationUseCase struct {
	inbox            inbox.NotificationInbox
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	logger           *logger.Logger
}

// NewNotificationUseCase accepts a nil inbox; listing then yields empty pages
// and delivery fails.
func NewNotificationUseCase(
	notificationInbox inbox.NotificationInbox,
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) NotificationUseCase {
	return &notificationUseCase{
		inbox:            notificationInbox,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *notificationUseCase) HandleTask(ctx context.Context, task queue.NotificationTask) (int, error) {
	switch task.Type {
	case entity.NotificationVideoPublished:
		return uc.handleVideoPublished(ctx, task)
	default:
		return 0, fmt.Errorf("unknown notification type %q", task.Type)
	}
}

func (uc *notificationUseCase) handleVideoPublished(ctx context.Context, task queue.NotificationTask) (int, error) {
	if task.VideoID == "" || task.ChannelID == "" {
		return 0, fmt.Errorf("invalid %s task: missing video_id or channel_id", task.Type)
	}
	if uc.inbox == nil {
		return 0, fmt.Errorf("notification inbox is not configured")
	}

	channelName := task.ChannelID
	if channel, err := uc.userRepo.GetByID(ctx, task.ChannelID); err == nil {
		channelName = channel.Username
	} else {
		uc.logger.Warn("[NOTIFICATION HANDLER] Failed to get channel %s: %v", task.ChannelID, err)
	}

	sent := 0
	page := entity.NewPageRequest(1, fanoutBatchSize, fanoutBatchSize)
	for {
		subscribers, total, err := uc.subscriptionRepo.ListSubscribers(ctx, task.ChannelID, page)
		if err != nil {
			return sent, fmt.Errorf("failed to list subscribers of %s: %w", task.ChannelID, err)
		}

		for _, sub := range subscribers {
			notification := &entity.Notification{
				UserID:    sub.User.ID,
				Type:      entity.NotificationVideoPublished,
				Title:     "New video",
				Message:   fmt.Sprintf("%s published %q", channelName, task.Title),
				VideoID:   task.VideoID,
				ChannelID: task.ChannelID,
				CreatedAt: time.Now().UTC(),
			}
			if err := uc.inbox.Push(ctx, notification); err != nil {
				metrics.NotificationsDelivered.WithLabelValues(task.Type, "error").Inc()
				uc.logger.Error("[NOTIFICATION HANDLER] Failed to notify %s: %v", sub.User.ID, err)
				continue
			}
			metrics.NotificationsDelivered.WithLabelValues(task.Type, "ok").Inc()
			sent++
		}

		if int64(page.Offset()+len(subscribers)) >= total || len(subscribers) == 0 {
			break
		}
		page.Page++
	}

	uc.logger.Info("[NOTIFICATION HANDLER] Video %s of channel %s delivered to %d subscribers", task.VideoID, task.ChannelID, sent)
	return sent, nil
}

func (uc *notificationUseCase) List(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Notification], error) {
	if uc.inbox == nil {
		return entity.NewPage[*entity.Notification](nil, 0, page), nil
	}

	notifications, total, err := uc.inbox.List(ctx, userID, page)
	if err != nil {
		uc.logger.Error("Failed to list notifications of %s: %v", userID, err)
		return nil, apperror.Internal("Failed to fetch notifications", err)
	}
	return entity.NewPage(notifications, total, page), nil
}

func (uc *notificationUseCase) Stream(ctx context.Context, userID string) (<-chan []byte, func() error, error) {
	if uc.inbox == nil {
		return nil, nil, apperror.Unavailable("Live notifications are unavailable")
	}
	messages, closeFn := uc.inbox.Subscribe(ctx, userID)
	return messages, closeFn, nil
}
