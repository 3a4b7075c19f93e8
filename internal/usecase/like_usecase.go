package usecase

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
	"videotube/pkg/metrics"
)

type LikeUseCase interface {
	Toggle(ctx context.Context, actorID string, target entity.LikeTarget) (*entity.ToggleResult, error)
	ListLikedVideos(ctx context.Context, actorID string, page entity.PageRequest) (*entity.Page[*entity.LikedVideo], error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		logger:      logger,
	}
}

// Toggle flips the actor's like on an existing target.
func (uc *likeUseCase) Toggle(ctx context.Context, actorID string, target entity.LikeTarget) (*entity.ToggleResult, error) {
	if err := uc.ensureTarget(ctx, actorID, target); err != nil {
		return nil, err
	}

	added, err := uc.likeRepo.Toggle(ctx, actorID, target)
	if err != nil {
		uc.logger.Error("Failed to toggle %s like on %s: %v", target.Kind, target.ID, err)
		return nil, apperror.Internal("Failed to toggle like", err)
	}

	metrics.RecordToggle(string(target.Kind)+"_like", added)
	return &entity.ToggleResult{Added: added}, nil
}

func (uc *likeUseCase) ensureTarget(ctx context.Context, actorID string, target entity.LikeTarget) error {
	switch target.Kind {
	case entity.LikeTargetVideo:
		if _, err := loadVisibleVideo(ctx, uc.videoRepo, actorID, target.ID); err != nil {
			return err
		}
	case entity.LikeTargetComment:
		if _, err := uc.commentRepo.GetByID(ctx, target.ID); err != nil {
			return lookupError(err, "Comment")
		}
	case entity.LikeTargetTweet:
		if _, err := uc.tweetRepo.GetByID(ctx, target.ID); err != nil {
			return lookupError(err, "Tweet")
		}
	default:
		return apperror.BadRequest("Unknown like target")
	}
	return nil
}

func (uc *likeUseCase) ListLikedVideos(ctx context.Context, actorID string, page entity.PageRequest) (*entity.Page[*entity.LikedVideo], error) {
	liked, total, err := uc.likeRepo.ListLikedVideos(ctx, actorID, page)
	if err != nil {
		uc.logger.Error("Failed to list liked videos of %s: %v", actorID, err)
		return nil, apperror.Internal("Failed to list liked videos", err)
	}
	return entity.NewPage(liked, total, page), nil
}
