package persistent

import (
	"context"
	"errors"
	"fmt"

	"videotube/internal/entity"
	"videotube/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	// Toggle removes the liker's like on target if present, otherwise adds
	// it, and reports whether it was added.
	Toggle(ctx context.Context, likerID string, target entity.LikeTarget) (bool, error)
	Create(ctx context.Context, likerID string, target entity.LikeTarget) error
	ListLikedVideos(ctx context.Context, likerID string, page entity.PageRequest) ([]*entity.LikedVideo, int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func targetColumn(kind entity.LikeTargetKind) (string, error) {
	switch kind {
	case entity.LikeTargetVideo:
		return "video_id", nil
	case entity.LikeTargetComment:
		return "comment_id", nil
	case entity.LikeTargetTweet:
		return "tweet_id", nil
	default:
		return "", fmt.Errorf("unknown like target %q", kind)
	}
}

func newLikeModel(likerID string, target entity.LikeTarget) *model.LikeModel {
	targetID := target.ID
	like := &model.LikeModel{LikedByID: likerID}
	switch target.Kind {
	case entity.LikeTargetVideo:
		like.VideoID = &targetID
	case entity.LikeTargetComment:
		like.CommentID = &targetID
	case entity.LikeTargetTweet:
		like.TweetID = &targetID
	}
	return like
}

// Toggle runs as one transaction: a conditional delete, then an insert when
// nothing was deleted. Video targets also adjust the video's like counter.
// A concurrent toggle that inserted first surfaces as a duplicate key and is
// reported as added.
func (r *likeRepository) Toggle(ctx context.Context, likerID string, target entity.LikeTarget) (bool, error) {
	column, err := targetColumn(target.Kind)
	if err != nil {
		return false, err
	}

	var added bool
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("liked_by_id = ? AND "+column+" = ?", likerID, target.ID).Delete(&model.LikeModel{})
		if result.Error != nil {
			return result.Error
		}

		delta := -1
		if result.RowsAffected == 0 {
			if err := tx.Omit("Video").Create(newLikeModel(likerID, target)).Error; err != nil {
				return err
			}
			delta = 1
			added = true
		}

		if target.Kind != entity.LikeTargetVideo {
			return nil
		}
		return tx.Model(&model.VideoModel{}).
			Where("id = ?", target.ID).
			UpdateColumn("likes", gorm.Expr("likes + ?", delta)).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return added, nil
}

// Create inserts a like without touching counters; ErrDuplicate when the
// pair already exists.
func (r *likeRepository) Create(ctx context.Context, likerID string, target entity.LikeTarget) error {
	if _, err := targetColumn(target.Kind); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Omit("Video").Create(newLikeModel(likerID, target)).Error)
}

func (r *likeRepository) ListLikedVideos(ctx context.Context, likerID string, page entity.PageRequest) ([]*entity.LikedVideo, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Joins("JOIN videos ON videos.id = likes.video_id AND videos.deleted_at IS NULL").
		Where("likes.liked_by_id = ?", likerID)

	var likeModels []model.LikeModel
	total, err := countAndFind(q, page, &likeModels, func(q *gorm.DB) *gorm.DB {
		return q.Select("likes.*").
			Preload("Video").
			Order("likes.created_at DESC").
			Order("likes.id")
	})
	if err != nil {
		return nil, 0, err
	}

	liked := make([]*entity.LikedVideo, len(likeModels))
	for i := range likeModels {
		liked[i] = ToLikedVideo(&likeModels[i])
	}
	return liked, total, nil
}
