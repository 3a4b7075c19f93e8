package usecase

import (
	"context"
	"errors"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
)

type CommentUseCase interface {
	ListByVideo(ctx context.Context, actorID, videoID string, page entity.PageRequest) (*entity.Page[*entity.Comment], error)
	Add(ctx context.Context, actorID, videoID, content string) (*entity.Comment, error)
	Update(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, actorID, commentID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) ListByVideo(ctx context.Context, actorID, videoID string, page entity.PageRequest) (*entity.Page[*entity.Comment], error) {
	if _, err := loadVisibleVideo(ctx, uc.videoRepo, actorID, videoID); err != nil {
		return nil, err
	}

	comments, total, err := uc.commentRepo.ListByVideo(ctx, videoID, page)
	if err != nil {
		uc.logger.Error("Failed to list comments of video %s: %v", videoID, err)
		return nil, apperror.Internal("Failed to list comments", err)
	}
	return entity.NewPage(comments, total, page), nil
}

func (uc *commentUseCase) Add(ctx context.Context, actorID, videoID, content string) (*entity.Comment, error) {
	if _, err := loadVisibleVideo(ctx, uc.videoRepo, actorID, videoID); err != nil {
		return nil, err
	}
	if blank(content) {
		return nil, apperror.BadRequest("Content is required")
	}

	comment := &entity.Comment{VideoID: videoID, OwnerID: actorID, Content: content}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to create comment on video %s: %v", videoID, err)
		return nil, apperror.Internal("Failed to add comment", err)
	}
	return comment, nil
}

func (uc *commentUseCase) Update(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, lookupError(err, "Comment")
	}
	if err := authorize(actorID, comment, "You are not allowed to update this comment"); err != nil {
		return nil, err
	}
	if blank(content) {
		return nil, apperror.BadRequest("Content is required")
	}

	updated, err := uc.commentRepo.UpdateContent(ctx, commentID, content)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("Comment not found")
		}
		uc.logger.Error("Failed to update comment %s: %v", commentID, err)
		return nil, apperror.Internal("Failed to update comment", err)
	}
	return updated, nil
}

func (uc *commentUseCase) Delete(ctx context.Context, actorID, commentID string) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return lookupError(err, "Comment")
	}
	if err := authorize(actorID, comment, "You are not allowed to delete this comment"); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return apperror.NotFound("Comment not found")
		}
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return apperror.Internal("Failed to delete comment", err)
	}
	return nil
}
