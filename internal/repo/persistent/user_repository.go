package persistent

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	GetChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return translate(err)
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&userModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update writes the given columns and returns the refreshed user.
func (r *userRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.User, error) {
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) GetChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	db := r.db.WithContext(ctx)

	var channel model.UserModel
	if err := db.Where("username = ?", username).First(&channel).Error; err != nil {
		return nil, translate(err)
	}

	profile := &entity.ChannelProfile{
		ID:         channel.ID,
		Username:   channel.Username,
		FullName:   channel.FullName,
		Avatar:     channel.Avatar,
		CoverImage: channel.CoverImage,
	}

	subscribers := joinOwner(db.Model(&model.SubscriptionModel{}), "subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channel.ID)
	if err := subscribers.Count(&profile.SubscribersCount).Error; err != nil {
		return nil, err
	}

	subscribedTo := joinOwner(db.Model(&model.SubscriptionModel{}), "subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", channel.ID)
	if err := subscribedTo.Count(&profile.ChannelsSubscribedToCount).Error; err != nil {
		return nil, err
	}

	if viewerID != "" {
		var count int64
		err := db.Model(&model.SubscriptionModel{}).
			Where("subscriber_id = ? AND channel_id = ?", viewerID, channel.ID).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		profile.IsSubscribed = count > 0
	}

	return profile, nil
}
