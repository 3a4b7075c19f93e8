package usecase

import (
	"context"
	"errors"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
	"videotube/pkg/s3"
)

type VideoListParams struct {
	UserID   string
	Query    string
	SortBy   string
	SortType string
	Page     entity.PageRequest
}

type PublishVideoInput struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
	// Duration is used when the media store reports none.
	Duration float64
}

type UpdateVideoInput struct {
	Title       string
	Description string
}

type VideoUseCase interface {
	List(ctx context.Context, actorID string, params VideoListParams) (*entity.Page[*entity.Video], error)
	Publish(ctx context.Context, actorID string, input PublishVideoInput) (*entity.Video, error)
	Get(ctx context.Context, actorID, videoID string) (*entity.Video, error)
	Update(ctx context.Context, actorID, videoID string, input UpdateVideoInput) (*entity.Video, error)
	UpdateThumbnail(ctx context.Context, actorID, videoID, thumbnailPath string) (*entity.Video, error)
	TogglePublish(ctx context.Context, actorID, videoID string) (*entity.Video, error)
	Delete(ctx context.Context, actorID, videoID string) error
}

type videoUseCase struct {
	videoRepo persistent.VideoRepository
	userRepo  persistent.UserRepository
	media     MediaStore
	notifier  Notifier
	logger    *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	media MediaStore,
	notifier Notifier,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo: videoRepo,
		userRepo:  userRepo,
		media:     media,
		notifier:  notifier,
		logger:    logger,
	}
}

// List returns a page of a user's videos, the caller's own by default.
// Other users only see published videos.
func (uc *videoUseCase) List(ctx context.Context, actorID string, params VideoListParams) (*entity.Page[*entity.Video], error) {
	ownerID := params.UserID
	if ownerID == "" {
		ownerID = actorID
	}

	if ownerID != actorID {
		exists, err := uc.userRepo.Exists(ctx, ownerID)
		if err != nil {
			return nil, apperror.Internal("Failed to load user", err)
		}
		if !exists {
			return nil, apperror.NotFound("User not found")
		}
	}

	sortBy, desc := entity.ParseVideoSort(params.SortBy, params.SortType)
	filter := entity.VideoFilter{
		OwnerID:       ownerID,
		Query:         params.Query,
		PublishedOnly: ownerID != actorID,
		SortBy:        sortBy,
		SortDesc:      desc,
	}

	videos, total, err := uc.videoRepo.List(ctx, filter, params.Page)
	if err != nil {
		uc.logger.Error("Failed to list videos for %s: %v", ownerID, err)
		return nil, apperror.Internal("Failed to list videos", err)
	}
	return entity.NewPage(videos, total, params.Page), nil
}

func (uc *videoUseCase) Publish(ctx context.Context, actorID string, input PublishVideoInput) (*entity.Video, error) {
	defer removeFiles(input.VideoPath, input.ThumbnailPath)

	if blank(input.Title) || blank(input.Description) {
		return nil, apperror.BadRequest("Title and description are required")
	}
	if input.VideoPath == "" {
		return nil, apperror.BadRequest("Video file is required")
	}
	if input.ThumbnailPath == "" {
		return nil, apperror.BadRequest("Thumbnail is required")
	}

	videoFile, err := uc.media.Upload(ctx, input.VideoPath, s3.ResourceVideo)
	if err != nil {
		uc.logger.Error("Failed to upload video for %s: %v", actorID, err)
		return nil, apperror.Internal("Failed to upload video", err)
	}

	thumbnail, err := uc.media.Upload(ctx, input.ThumbnailPath, s3.ResourceImage)
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail for %s: %v", actorID, err)
		uc.discardMedia(ctx, videoFile.URL)
		return nil, apperror.Internal("Failed to upload thumbnail", err)
	}

	duration := videoFile.Duration
	if duration == 0 {
		duration = input.Duration
	}

	video := &entity.Video{
		OwnerID:     actorID,
		Title:       input.Title,
		Description: input.Description,
		VideoFile:   videoFile.URL,
		Thumbnail:   thumbnail.URL,
		Duration:    duration,
		IsPublished: true,
	}
	if err := uc.videoRepo.Create(ctx, video); err != nil {
		uc.logger.Error("Failed to create video for %s: %v", actorID, err)
		uc.discardMedia(ctx, videoFile.URL, thumbnail.URL)
		return nil, apperror.Internal("Failed to create video", err)
	}

	uc.logger.Info("Video %s published by %s", video.ID, actorID)
	uc.announce(ctx, video)
	return video, nil
}

// Get returns a video with its owner summary. Unpublished videos are only
// visible to their owner.
func (uc *videoUseCase) Get(ctx context.Context, actorID, videoID string) (*entity.Video, error) {
	return loadVisibleVideo(ctx, uc.videoRepo, actorID, videoID)
}

// Update changes title and/or description; a blank field keeps its value.
func (uc *videoUseCase) Update(ctx context.Context, actorID, videoID string, input UpdateVideoInput) (*entity.Video, error) {
	video, err := uc.loadOwned(ctx, actorID, videoID, "You are not allowed to update this video")
	if err != nil {
		return nil, err
	}

	if blank(input.Title) && blank(input.Description) {
		return nil, apperror.BadRequest("Title or description is required to update video")
	}
	if !blank(input.Title) {
		video.Title = input.Title
	}
	if !blank(input.Description) {
		video.Description = input.Description
	}

	return uc.save(ctx, video)
}

func (uc *videoUseCase) UpdateThumbnail(ctx context.Context, actorID, videoID, thumbnailPath string) (*entity.Video, error) {
	defer removeFiles(thumbnailPath)

	video, err := uc.loadOwned(ctx, actorID, videoID, "You are not allowed to update this video")
	if err != nil {
		return nil, err
	}
	if thumbnailPath == "" {
		return nil, apperror.BadRequest("Thumbnail is missing")
	}

	thumbnail, err := uc.media.Upload(ctx, thumbnailPath, s3.ResourceImage)
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail for video %s: %v", videoID, err)
		return nil, apperror.Internal("Failed to upload thumbnail", err)
	}

	previous := video.Thumbnail
	video.Thumbnail = thumbnail.URL
	updated, err := uc.save(ctx, video)
	if err != nil {
		uc.discardMedia(ctx, thumbnail.URL)
		return nil, err
	}
	uc.discardMedia(ctx, previous)
	return updated, nil
}

func (uc *videoUseCase) TogglePublish(ctx context.Context, actorID, videoID string) (*entity.Video, error) {
	video, err := uc.loadOwned(ctx, actorID, videoID, "You are not allowed to update this video")
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	updated, err := uc.save(ctx, video)
	if err != nil {
		return nil, err
	}
	if updated.IsPublished {
		uc.announce(ctx, updated)
	}
	return updated, nil
}

// Delete removes the video row, then its media objects on a best-effort basis.
func (uc *videoUseCase) Delete(ctx context.Context, actorID, videoID string) error {
	video, err := uc.loadOwned(ctx, actorID, videoID, "You are not allowed to delete this video")
	if err != nil {
		return err
	}

	if err := uc.videoRepo.Delete(ctx, videoID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return apperror.NotFound("Video not found")
		}
		uc.logger.Error("Failed to delete video %s: %v", videoID, err)
		return apperror.Internal("Failed to delete video", err)
	}

	uc.logger.Info("Video %s deleted by %s", videoID, actorID)
	uc.discardMedia(ctx, video.VideoFile, video.Thumbnail)
	return nil
}

func (uc *videoUseCase) loadOwned(ctx context.Context, actorID, videoID, forbidden string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, lookupError(err, "Video")
	}
	if err := authorize(actorID, video, forbidden); err != nil {
		return nil, err
	}
	return video, nil
}

func (uc *videoUseCase) save(ctx context.Context, video *entity.Video) (*entity.Video, error) {
	updated, err := uc.videoRepo.Update(ctx, video)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("Video not found")
		}
		uc.logger.Error("Failed to update video %s: %v", video.ID, err)
		return nil, apperror.Internal("Failed to update video", err)
	}
	return updated, nil
}

func (uc *videoUseCase) discardMedia(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := uc.media.Delete(ctx, url); err != nil {
			uc.logger.Warn("Failed to delete media %s: %v", url, err)
		}
	}
}

func (uc *videoUseCase) announce(ctx context.Context, video *entity.Video) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.PublishVideoPublished(ctx, video.ID, video.OwnerID, video.Title); err != nil {
		uc.logger.Warn("Failed to enqueue notification for video %s: %v", video.ID, err)
	}
}
