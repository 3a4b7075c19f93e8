package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionModel struct {
	ID           string    `gorm:"type:uuid;primary_key"`
	SubscriberID string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair"`
	Subscriber   UserModel `gorm:"foreignKey:SubscriberID"`
	ChannelID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair;index"`
	Channel      UserModel `gorm:"foreignKey:ChannelID"`
	CreatedAt    time.Time
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
