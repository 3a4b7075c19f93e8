// Package usecase holds the resource services: input validation, ownership
// checks and the calls into the persistence layer.
package usecase

import (
	"context"
	"errors"
	"os"
	"strings"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/s3"
)

// MediaStore uploads local files to object storage. Upload removes the local
// file whether or not it succeeds.
type MediaStore interface {
	Upload(ctx context.Context, localPath string, resourceType s3.ResourceType) (*s3.UploadResult, error)
	Delete(ctx context.Context, fileURL string) error
}

// Notifier announces newly published videos to subscribers.
type Notifier interface {
	PublishVideoPublished(ctx context.Context, videoID, channelID, title string) error
}

type owned interface {
	OwnedBy() string
}

// authorize allows only the owner of resource to act on it.
func authorize(actorID string, resource owned, message string) error {
	if resource.OwnedBy() != actorID {
		return apperror.Forbidden(message)
	}
	return nil
}

// lookupError classifies a failed load of resource.
func lookupError(err error, resource string) error {
	if errors.Is(err, persistent.ErrNotFound) {
		return apperror.NotFound(resource + " not found")
	}
	return apperror.Internal("Failed to load "+strings.ToLower(resource), err)
}

// loadVisibleVideo loads a video the actor may see. Unpublished videos exist
// only for their owner.
func loadVisibleVideo(ctx context.Context, videos persistent.VideoRepository, actorID, videoID string) (*entity.Video, error) {
	video, err := videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, lookupError(err, "Video")
	}
	if !video.IsPublished && video.OwnerID != actorID {
		return nil, apperror.NotFound("Video not found")
	}
	return video, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// firstNonBlank returns the first value with visible content.
func firstNonBlank(values ...string) string {
	for _, v := range values {
		if !blank(v) {
			return v
		}
	}
	return ""
}

func removeFiles(paths ...string) {
	for _, p := range paths {
		if p != "" {
			os.Remove(p)
		}
	}
}
