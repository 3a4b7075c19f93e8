package persistent

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id string) error
	ListByVideo(ctx context.Context, videoID string, page entity.PageRequest) ([]*entity.Comment, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(commentModel).Error; err != nil {
		return translate(err)
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id, content string) (*entity.Comment, error) {
	result := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByVideo returns a page of a video's comments, newest first, each with
// its owner and video summaries.
func (r *commentRepository) ListByVideo(ctx context.Context, videoID string, page entity.PageRequest) ([]*entity.Comment, int64, error) {
	q := joinOwner(r.db.WithContext(ctx).Model(&model.CommentModel{}), "comments.owner_id").
		Where("comments.video_id = ?", videoID)

	var commentModels []model.CommentModel
	total, err := countAndFind(q, page, &commentModels, func(q *gorm.DB) *gorm.DB {
		return q.Select("comments.*").
			Preload("Owner").
			Preload("Video").
			Order("comments.created_at DESC").
			Order("comments.id")
	})
	if err != nil {
		return nil, 0, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, total, nil
}
