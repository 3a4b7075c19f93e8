package persistent

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, id string) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID string, page entity.PageRequest) ([]*entity.Playlist, int64, error)
	Update(ctx context.Context, id, name, description string) (*entity.Playlist, error)
	Delete(ctx context.Context, id string) error
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistModel := ToPlaylistModel(playlist)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(playlistModel).Error; err != nil {
		return translate(err)
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

// GetByID loads a playlist with its owner summary and live videos in order.
func (r *playlistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN videos ON videos.id = playlist_videos.video_id AND videos.deleted_at IS NULL").
				Select("playlist_videos.*").
				Order("playlist_videos.position")
		}).
		Preload("Videos.Video").
		Where("id = ?", id).
		First(&playlistModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID string, page entity.PageRequest) ([]*entity.Playlist, int64, error) {
	q := joinOwner(r.db.WithContext(ctx).Model(&model.PlaylistModel{}), "playlists.owner_id").
		Where("playlists.owner_id = ?", ownerID)

	var playlistModels []model.PlaylistModel
	total, err := countAndFind(q, page, &playlistModels, func(q *gorm.DB) *gorm.DB {
		return q.Select("playlists.*").
			Preload("Owner").
			Order("playlists.created_at DESC").
			Order("playlists.id")
	})
	if err != nil {
		return nil, 0, err
	}

	playlists := make([]*entity.Playlist, len(playlistModels))
	for i := range playlistModels {
		playlists[i] = ToPlaylistEntity(&playlistModels[i])
	}
	return playlists, total, nil
}

func (r *playlistRepository) Update(ctx context.Context, id, name, description string) (*entity.Playlist, error) {
	result := r.db.WithContext(ctx).Model(&model.PlaylistModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
	})
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *playlistRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.PlaylistModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AddVideo appends videoID to the end of the playlist. Concurrent appends
// racing for the same position surface as ErrDuplicate.
func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		err := tx.Model(&model.PlaylistVideoModel{}).
			Select("COALESCE(MAX(position), 0) + 1").
			Where("playlist_id = ?", playlistID).
			Scan(&next).Error
		if err != nil {
			return err
		}

		item := &model.PlaylistVideoModel{PlaylistID: playlistID, VideoID: videoID, Position: next}
		return tx.Omit("Video").Create(item).Error
	})
	return translate(err)
}

// RemoveVideo drops the first occurrence of videoID from the playlist.
func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.PlaylistVideoModel
		err := tx.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
			Order("position").
			First(&item).Error
		if err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	return translate(err)
}
