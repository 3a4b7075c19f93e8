package persistent

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	GetByID(ctx context.Context, id string) (*entity.Tweet, error)
	ListByOwner(ctx context.Context, ownerID string, page entity.PageRequest) ([]*entity.Tweet, int64, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id string) error
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetModel := ToTweetModel(tweet)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(tweetModel).Error; err != nil {
		return translate(err)
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	var tweetModel model.TweetModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tweetModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID string, page entity.PageRequest) ([]*entity.Tweet, int64, error) {
	q := joinOwner(r.db.WithContext(ctx).Model(&model.TweetModel{}), "tweets.owner_id").
		Where("tweets.owner_id = ?", ownerID)

	var tweetModels []model.TweetModel
	total, err := countAndFind(q, page, &tweetModels, func(q *gorm.DB) *gorm.DB {
		return q.Select("tweets.*").
			Order("tweets.created_at DESC").
			Order("tweets.id")
	})
	if err != nil {
		return nil, 0, err
	}

	tweets := make([]*entity.Tweet, len(tweetModels))
	for i := range tweetModels {
		tweets[i] = ToTweetEntity(&tweetModels[i])
	}
	return tweets, total, nil
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id, content string) (*entity.Tweet, error) {
	result := r.db.WithContext(ctx).Model(&model.TweetModel{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *tweetRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TweetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
