package usecase

import (
	"context"
	"errors"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/logger"
)

type PlaylistUseCase interface {
	Create(ctx context.Context, actorID, name, description string) (*entity.Playlist, error)
	ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Playlist], error)
	Get(ctx context.Context, playlistID string) (*entity.Playlist, error)
	Update(ctx context.Context, actorID, playlistID, name, description string) (*entity.Playlist, error)
	Delete(ctx context.Context, actorID, playlistID string) error
	AddVideo(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	userRepo     persistent.UserRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *playlistUseCase) Create(ctx context.Context, actorID, name, description string) (*entity.Playlist, error) {
	if blank(name) || blank(description) {
		return nil, apperror.BadRequest("Name and description are required")
	}

	playlist := &entity.Playlist{OwnerID: actorID, Name: name, Description: description}
	if err := uc.playlistRepo.Create(ctx, playlist); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, apperror.BadRequest("Playlist with this name already exists")
		}
		uc.logger.Error("Failed to create playlist for %s: %v", actorID, err)
		return nil, apperror.Internal("Failed to create playlist", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Playlist], error) {
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("Failed to load user", err)
	}
	if !exists {
		return nil, apperror.NotFound("User not found")
	}

	playlists, total, err := uc.playlistRepo.ListByOwner(ctx, userID, page)
	if err != nil {
		uc.logger.Error("Failed to list playlists of %s: %v", userID, err)
		return nil, apperror.Internal("Failed to list playlists", err)
	}
	return entity.NewPage(playlists, total, page), nil
}

func (uc *playlistUseCase) Get(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, lookupError(err, "Playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) Update(ctx context.Context, actorID, playlistID, name, description string) (*entity.Playlist, error) {
	if _, err := uc.loadOwned(ctx, actorID, playlistID, "You are not allowed to update this playlist"); err != nil {
		return nil, err
	}
	if blank(name) || blank(description) {
		return nil, apperror.BadRequest("Name and description are required")
	}

	updated, err := uc.playlistRepo.Update(ctx, playlistID, name, description)
	switch {
	case errors.Is(err, persistent.ErrDuplicate):
		return nil, apperror.BadRequest("Playlist with this name already exists")
	case errors.Is(err, persistent.ErrNotFound):
		return nil, apperror.NotFound("Playlist not found")
	case err != nil:
		uc.logger.Error("Failed to update playlist %s: %v", playlistID, err)
		return nil, apperror.Internal("Failed to update playlist", err)
	}
	return updated, nil
}

func (uc *playlistUseCase) Delete(ctx context.Context, actorID, playlistID string) error {
	if _, err := uc.loadOwned(ctx, actorID, playlistID, "You are not allowed to delete this playlist"); err != nil {
		return err
	}

	err := uc.playlistRepo.Delete(ctx, playlistID)
	switch {
	case errors.Is(err, persistent.ErrNotFound):
		return apperror.NotFound("Playlist not found")
	case err != nil:
		uc.logger.Error("Failed to delete playlist %s: %v", playlistID, err)
		return apperror.Internal("Failed to delete playlist", err)
	}
	return nil
}

// AddVideo appends a video; the same video may be added more than once.
func (uc *playlistUseCase) AddVideo(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error) {
	if err := uc.checkMembershipEdit(ctx, actorID, playlistID, videoID, "You are not allowed to add videos to this playlist", true); err != nil {
		return nil, err
	}

	err := uc.playlistRepo.AddVideo(ctx, playlistID, videoID)
	switch {
	case errors.Is(err, persistent.ErrDuplicate):
		return nil, apperror.Conflict("Playlist was modified concurrently, try again")
	case err != nil:
		uc.logger.Error("Failed to add video %s to playlist %s: %v", videoID, playlistID, err)
		return nil, apperror.Internal("Failed to add video to playlist", err)
	}
	return uc.Get(ctx, playlistID)
}

// RemoveVideo drops the first occurrence of the video from the playlist.
func (uc *playlistUseCase) RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error) {
	if err := uc.checkMembershipEdit(ctx, actorID, playlistID, videoID, "You are not allowed to remove videos from this playlist", false); err != nil {
		return nil, err
	}

	err := uc.playlistRepo.RemoveVideo(ctx, playlistID, videoID)
	switch {
	case errors.Is(err, persistent.ErrNotFound):
		return nil, apperror.NotFound("Video not found in playlist")
	case err != nil:
		uc.logger.Error("Failed to remove video %s from playlist %s: %v", videoID, playlistID, err)
		return nil, apperror.Internal("Failed to remove video from playlist", err)
	}
	return uc.Get(ctx, playlistID)
}

func (uc *playlistUseCase) loadOwned(ctx context.Context, actorID, playlistID, forbidden string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, lookupError(err, "Playlist")
	}
	if err := authorize(actorID, playlist, forbidden); err != nil {
		return nil, err
	}
	return playlist, nil
}

// checkMembershipEdit verifies that both playlist and video exist before
// checking that the actor owns the playlist. When visibleOnly is set the video
// must also be visible to the actor; removal skips that so owners can drop
// entries that were unpublished after being added.
func (uc *playlistUseCase) checkMembershipEdit(ctx context.Context, actorID, playlistID, videoID, forbidden string, visibleOnly bool) error {
	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return lookupError(err, "Playlist")
	}
	if visibleOnly {
		if _, err := loadVisibleVideo(ctx, uc.videoRepo, actorID, videoID); err != nil {
			return err
		}
	} else if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return lookupError(err, "Video")
	}
	return authorize(actorID, playlist, forbidden)
}
