package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	OwnerID     string    `gorm:"type:uuid;not null;index"`
	Owner       UserModel `gorm:"foreignKey:OwnerID"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	VideoFile   string    `gorm:"type:varchar(500);not null"`
	Thumbnail   string    `gorm:"type:varchar(500);not null"`
	Duration    float64   `gorm:"not null;default:0"`
	Views       int64     `gorm:"not null;default:0"`
	Likes       int64     `gorm:"not null;default:0"`
	IsPublished bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
