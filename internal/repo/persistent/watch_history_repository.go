package persistent

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/model"

	"gorm.io/gorm"
)

type WatchHistoryRepository interface {
	Add(ctx context.Context, userID, videoID string) (*entity.WatchHistory, error)
	ListByUser(ctx context.Context, userID string, page entity.PageRequest) ([]*entity.WatchHistory, int64, error)
}

type watchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

// Add appends a view event and bumps the video's view counter in the same
// transaction.
func (r *watchHistoryRepository) Add(ctx context.Context, userID, videoID string) (*entity.WatchHistory, error) {
	entry := &model.WatchHistoryModel{UserID: userID, VideoID: videoID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.VideoModel{}).
			Where("id = ?", videoID).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Omit("Video").Create(entry).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return ToWatchHistoryEntity(entry), nil
}

// ListByUser pages through the user's history, newest first, skipping videos
// that no longer exist.
func (r *watchHistoryRepository) ListByUser(ctx context.Context, userID string, page entity.PageRequest) ([]*entity.WatchHistory, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.WatchHistoryModel{}).
		Joins("JOIN videos ON videos.id = watch_histories.video_id AND videos.deleted_at IS NULL").
		Where("watch_histories.user_id = ?", userID)

	var entries []model.WatchHistoryModel
	total, err := countAndFind(q, page, &entries, func(q *gorm.DB) *gorm.DB {
		return q.Select("watch_histories.*").
			Preload("Video").
			Order("watch_histories.watched_at DESC").
			Order("watch_histories.id")
	})
	if err != nil {
		return nil, 0, err
	}

	history := make([]*entity.WatchHistory, len(entries))
	for i := range entries {
		history[i] = ToWatchHistoryEntity(&entries[i])
	}
	return history, total, nil
}
