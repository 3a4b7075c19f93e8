package usecase

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
)

type DashboardUseCase interface {
	ChannelStats(ctx context.Context, actorID string) (*entity.ChannelStats, error)
	ChannelVideos(ctx context.Context, actorID string, page entity.PageRequest) (*entity.Page[*entity.Video], error)
}

type dashboardUseCase struct {
	videoRepo        persistent.VideoRepository
	subscriptionRepo persistent.SubscriptionRepository
	logger           *logger.Logger
}

func NewDashboardUseCase(
	videoRepo persistent.VideoRepository,
	subscriptionRepo persistent.SubscriptionRepository,
	logger *logger.Logger,
) DashboardUseCase {
	return &dashboardUseCase{
		videoRepo:        videoRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *dashboardUseCase) ChannelStats(ctx context.Context, actorID string) (*entity.ChannelStats, error) {
	videos, err := uc.videoRepo.Stats(ctx, actorID)
	if err != nil {
		uc.logger.Error("Failed to load video stats of %s: %v", actorID, err)
		return nil, apperror.Internal("Failed to load channel stats", err)
	}

	subscribers, err := uc.subscriptionRepo.CountSubscribers(ctx, actorID)
	if err != nil {
		uc.logger.Error("Failed to count subscribers of %s: %v", actorID, err)
		return nil, apperror.Internal("Failed to load channel stats", err)
	}

	stats := &entity.ChannelStats{
		Videos:           videos,
		VideosCount:      len(videos),
		SubscribersCount: subscribers,
	}
	for _, v := range videos {
		stats.TotalViews += v.Views
		stats.TotalLikes += v.Likes
	}
	return stats, nil
}

// ChannelVideos lists all of the caller's videos, published or not, newest first.
func (uc *dashboardUseCase) ChannelVideos(ctx context.Context, actorID string, page entity.PageRequest) (*entity.Page[*entity.Video], error) {
	filter := entity.VideoFilter{OwnerID: actorID, SortBy: entity.SortByCreatedAt, SortDesc: true}
	videos, total, err := uc.videoRepo.List(ctx, filter, page)
	if err != nil {
		uc.logger.Error("Failed to list channel videos of %s: %v", actorID, err)
		return nil, apperror.Internal("Failed to list channel videos", err)
	}
	return entity.NewPage(videos, total, page), nil
}
