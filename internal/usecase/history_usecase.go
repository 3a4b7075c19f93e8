package usecase

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
)

type HistoryUseCase interface {
	Add(ctx context.Context, actorID, videoID string) (*entity.WatchHistory, error)
	List(ctx context.Context, actorID string, page entity.PageRequest) (*entity.Page[*entity.WatchHistory], error)
}

type historyUseCase struct {
	historyRepo persistent.WatchHistoryRepository
	videoRepo   persistent.VideoRepository
	logger      *logger.Logger
}

func NewHistoryUseCase(
	historyRepo persistent.WatchHistoryRepository,
	videoRepo persistent.VideoRepository,
	logger *logger.Logger,
) HistoryUseCase {
	return &historyUseCase{
		historyRepo: historyRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}
}

// Add records one view event; every call appends a new entry.
func (uc *historyUseCase) Add(ctx context.Context, actorID, videoID string) (*entity.WatchHistory, error) {
	if _, err := loadVisibleVideo(ctx, uc.videoRepo, actorID, videoID); err != nil {
		return nil, err
	}

	entry, err := uc.historyRepo.Add(ctx, actorID, videoID)
	if err != nil {
		return nil, lookupError(err, "Video")
	}
	return entry, nil
}

func (uc *historyUseCase) List(ctx context.Context, actorID string, page entity.PageRequest) (*entity.Page[*entity.WatchHistory], error) {
	history, total, err := uc.historyRepo.ListByUser(ctx, actorID, page)
	if err != nil {
		uc.logger.Error("Failed to list watch history of %s: %v", actorID, err)
		return nil, apperror.Internal("Failed to list watch history", err)
	}
	return entity.NewPage(history, total, page), nil
}
