package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel references exactly one of video, comment or tweet. Each
// (liker, target) pair is unique; NULL targets never collide.
type LikeModel struct {
	ID        string     `gorm:"type:uuid;primary_key"`
	LikedByID string     `gorm:"type:uuid;not null;uniqueIndex:idx_likes_liker_video;uniqueIndex:idx_likes_liker_comment;uniqueIndex:idx_likes_liker_tweet"`
	VideoID   *string    `gorm:"type:uuid;uniqueIndex:idx_likes_liker_video"`
	Video     VideoModel `gorm:"foreignKey:VideoID"`
	CommentID *string    `gorm:"type:uuid;uniqueIndex:idx_likes_liker_comment"`
	TweetID   *string    `gorm:"type:uuid;uniqueIndex:idx_likes_liker_tweet"`
	CreatedAt time.Time  `gorm:"index"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
