package persistent

import (
	"context"
	"errors"

	"videotube/internal/entity"
	"videotube/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
	Create(ctx context.Context, subscriberID, channelID string) error
	ListSubscribers(ctx context.Context, channelID string, page entity.PageRequest) ([]*entity.SubscriptionView, int64, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string, page entity.PageRequest) ([]*entity.SubscriptionView, int64, error)
	CountSubscribers(ctx context.Context, channelID string) (int64, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
			Delete(&model.SubscriptionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		subscription := &model.SubscriptionModel{SubscriberID: subscriberID, ChannelID: channelID}
		if err := tx.Omit("Subscriber", "Channel").Create(subscription).Error; err != nil {
			return err
		}
		added = true
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return added, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, subscriberID, channelID string) error {
	subscription := &model.SubscriptionModel{SubscriberID: subscriberID, ChannelID: channelID}
	return translate(r.db.WithContext(ctx).Omit("Subscriber", "Channel").Create(subscription).Error)
}

// ListSubscribers pages through the users subscribed to channelID.
func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID string, page entity.PageRequest) ([]*entity.SubscriptionView, int64, error) {
	q := joinOwner(r.db.WithContext(ctx).Model(&model.SubscriptionModel{}), "subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID)
	return r.list(q, page, "Subscriber", func(m *model.SubscriptionModel) *model.UserModel { return &m.Subscriber })
}

// ListSubscribedChannels pages through the channels subscriberID follows.
func (r *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string, page entity.PageRequest) ([]*entity.SubscriptionView, int64, error) {
	q := joinOwner(r.db.WithContext(ctx).Model(&model.SubscriptionModel{}), "subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberID)
	return r.list(q, page, "Channel", func(m *model.SubscriptionModel) *model.UserModel { return &m.Channel })
}

func (r *subscriptionRepository) list(q *gorm.DB, page entity.PageRequest, preload string, other func(*model.SubscriptionModel) *model.UserModel) ([]*entity.SubscriptionView, int64, error) {
	var subscriptionModels []model.SubscriptionModel
	total, err := countAndFind(q, page, &subscriptionModels, func(q *gorm.DB) *gorm.DB {
		return q.Select("subscriptions.*").
			Preload(preload).
			Order("subscriptions.created_at DESC").
			Order("subscriptions.id")
	})
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.SubscriptionView, len(subscriptionModels))
	for i := range subscriptionModels {
		m := &subscriptionModels[i]
		views[i] = &entity.SubscriptionView{
			SubscriptionID: m.ID,
			User:           ToOwnerSummary(other(m)),
			SubscribedAt:   m.CreatedAt,
		}
	}
	return views, total, nil
}

func (r *subscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	var count int64
	err := joinOwner(r.db.WithContext(ctx).Model(&model.SubscriptionModel{}), "subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}
