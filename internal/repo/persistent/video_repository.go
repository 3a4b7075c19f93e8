package persistent

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	Update(ctx context.Context, video *entity.Video) (*entity.Video, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) ([]*entity.Video, int64, error)
	Stats(ctx context.Context, ownerID string) ([]entity.VideoStat, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(videoModel).Error; err != nil {
		return translate(err)
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

// GetByID loads a video together with its owner summary.
func (r *videoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToVideoEntity(&videoModel), nil
}

// Update persists the mutable fields of video.
func (r *videoRepository) Update(ctx context.Context, video *entity.Video) (*entity.Video, error) {
	result := r.db.WithContext(ctx).Model(&model.VideoModel{}).Where("id = ?", video.ID).Updates(map[string]interface{}{
		"title":        video.Title,
		"description":  video.Description,
		"thumbnail":    video.Thumbnail,
		"is_published": video.IsPublished,
	})
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, video.ID)
}

func (r *videoRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VideoModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List filters, joins the owner, projects and paginates videos.
func (r *videoRepository) List(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) ([]*entity.Video, int64, error) {
	q := joinOwner(r.db.WithContext(ctx).Model(&model.VideoModel{}), "videos.owner_id")
	if filter.OwnerID != "" {
		q = q.Where("videos.owner_id = ?", filter.OwnerID)
	}
	if filter.PublishedOnly {
		q = q.Where("videos.is_published = ?", true)
	}
	if filter.Query != "" {
		pattern := containsPattern(filter.Query)
		q = q.Where(`(LOWER(videos.title) LIKE ? ESCAPE '\' OR LOWER(videos.description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = entity.SortByCreatedAt
	}

	var videoModels []model.VideoModel
	total, err := countAndFind(q, page, &videoModels, func(q *gorm.DB) *gorm.DB {
		return q.Select("videos.*").
			Preload("Owner").
			Order(clause.OrderByColumn{Column: clause.Column{Table: "videos", Name: string(sortBy)}, Desc: filter.SortDesc}).
			Order("videos.id")
	})
	if err != nil {
		return nil, 0, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, total, nil
}

func (r *videoRepository) Stats(ctx context.Context, ownerID string) ([]entity.VideoStat, error) {
	var videoModels []model.VideoModel
	err := r.db.WithContext(ctx).
		Select("id", "title", "views", "likes", "is_published").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}

	stats := make([]entity.VideoStat, len(videoModels))
	for i, v := range videoModels {
		stats[i] = entity.VideoStat{
			ID:          v.ID,
			Title:       v.Title,
			Views:       v.Views,
			Likes:       v.Likes,
			IsPublished: v.IsPublished,
		}
	}
	return stats, nil
}
