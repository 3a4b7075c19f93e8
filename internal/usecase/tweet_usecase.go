package usecase

import (
	"context"
	"errors"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
)

type TweetUseCase interface {
	Create(ctx context.Context, actorID, content string) (*entity.Tweet, error)
	ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Tweet], error)
	Update(ctx context.Context, actorID, tweetID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, actorID, tweetID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

func NewTweetUseCase(tweetRepo persistent.TweetRepository, userRepo persistent.UserRepository, logger *logger.Logger) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *tweetUseCase) Create(ctx context.Context, actorID, content string) (*entity.Tweet, error) {
	if blank(content) {
		return nil, apperror.BadRequest("Content is required")
	}

	tweet := &entity.Tweet{OwnerID: actorID, Content: content}
	if err := uc.tweetRepo.Create(ctx, tweet); err != nil {
		uc.logger.Error("Failed to create tweet for %s: %v", actorID, err)
		return nil, apperror.Internal("Failed to create tweet", err)
	}
	return tweet, nil
}

func (uc *tweetUseCase) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Tweet], error) {
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("Failed to load user", err)
	}
	if !exists {
		return nil, apperror.NotFound("User not found")
	}

	tweets, total, err := uc.tweetRepo.ListByOwner(ctx, userID, page)
	if err != nil {
		uc.logger.Error("Failed to list tweets of %s: %v", userID, err)
		return nil, apperror.Internal("Failed to list tweets", err)
	}
	return entity.NewPage(tweets, total, page), nil
}

func (uc *tweetUseCase) Update(ctx context.Context, actorID, tweetID, content string) (*entity.Tweet, error) {
	tweet, err := uc.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, lookupError(err, "Tweet")
	}
	if err := authorize(actorID, tweet, "You are not allowed to update this tweet"); err != nil {
		return nil, err
	}
	if blank(content) {
		return nil, apperror.BadRequest("Content is required")
	}

	updated, err := uc.tweetRepo.UpdateContent(ctx, tweetID, content)
	switch {
	case errors.Is(err, persistent.ErrNotFound):
		return nil, apperror.NotFound("Tweet not found")
	case err != nil:
		uc.logger.Error("Failed to update tweet %s: %v", tweetID, err)
		return nil, apperror.Internal("Failed to update tweet", err)
	}
	return updated, nil
}

func (uc *tweetUseCase) Delete(ctx context.Context, actorID, tweetID string) error {
	tweet, err := uc.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return lookupError(err, "Tweet")
	}
	if err := authorize(actorID, tweet, "You are not allowed to delete this tweet"); err != nil {
		return err
	}

	err = uc.tweetRepo.Delete(ctx, tweetID)
	switch {
	case errors.Is(err, persistent.ErrNotFound):
		return apperror.NotFound("Tweet not found")
	case err != nil:
		uc.logger.Error("Failed to delete tweet %s: %v", tweetID, err)
		return apperror.Internal("Failed to delete tweet", err)
	}
	return nil
}
