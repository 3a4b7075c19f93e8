package usecase

import (
	"context"
	"strings"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
	"videotube/pkg/metrics"
)

type SubscriptionUseCase interface {
	Toggle(ctx context.Context, actorID, channelID string) (*entity.ToggleResult, error)
	ListSubscribers(ctx context.Context, actorID, channelID string, page entity.PageRequest) (*entity.Page[*entity.SubscriptionView], error)
	ListSubscribedChannels(ctx context.Context, actorID, subscriberID string, page entity.PageRequest) (*entity.Page[*entity.SubscriptionView], error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	logger           *logger.Logger
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *subscriptionUseCase) Toggle(ctx context.Context, actorID, channelID string) (*entity.ToggleResult, error) {
	if err := uc.ensureUser(ctx, channelID, "Channel"); err != nil {
		return nil, err
	}
	if channelID == actorID {
		return nil, apperror.BadRequest("You cannot subscribe to your own channel")
	}

	added, err := uc.subscriptionRepo.Toggle(ctx, actorID, channelID)
	if err != nil {
		uc.logger.Error("Failed to toggle subscription %s -> %s: %v", actorID, channelID, err)
		return nil, apperror.Internal("Failed to toggle subscription", err)
	}

	metrics.RecordToggle("subscription", added)
	return &entity.ToggleResult{Added: added}, nil
}

// ListSubscribers is restricted to the channel owner.
func (uc *subscriptionUseCase) ListSubscribers(ctx context.Context, actorID, channelID string, page entity.PageRequest) (*entity.Page[*entity.SubscriptionView], error) {
	if err := uc.ensureUser(ctx, channelID, "Channel"); err != nil {
		return nil, err
	}
	if channelID != actorID {
		return nil, apperror.Forbidden("You are not allowed to view subscribers of this channel")
	}

	views, total, err := uc.subscriptionRepo.ListSubscribers(ctx, channelID, page)
	if err != nil {
		uc.logger.Error("Failed to list subscribers of %s: %v", channelID, err)
		return nil, apperror.Internal("Failed to list subscribers", err)
	}
	return entity.NewPage(views, total, page), nil
}

// ListSubscribedChannels is restricted to the subscriber themself.
func (uc *subscriptionUseCase) ListSubscribedChannels(ctx context.Context, actorID, subscriberID string, page entity.PageRequest) (*entity.Page[*entity.SubscriptionView], error) {
	if err := uc.ensureUser(ctx, subscriberID, "Subscriber"); err != nil {
		return nil, err
	}
	if subscriberID != actorID {
		return nil, apperror.Forbidden("You are not allowed to view subscribed channels of this user")
	}

	views, total, err := uc.subscriptionRepo.ListSubscribedChannels(ctx, subscriberID, page)
	if err != nil {
		uc.logger.Error("Failed to list channels subscribed by %s: %v", subscriberID, err)
		return nil, apperror.Internal("Failed to list subscribed channels", err)
	}
	return entity.NewPage(views, total, page), nil
}

func (uc *subscriptionUseCase) ensureUser(ctx context.Context, userID, resource string) error {
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return apperror.Internal("Failed to load "+strings.ToLower(resource), err)
	}
	if !exists {
		return apperror.NotFound(resource + " not found")
	}
	return nil
}
