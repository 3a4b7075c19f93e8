package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID           string         `gorm:"type:uuid;primary_key"`
	Username     string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_users_username,where:deleted_at IS NULL"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email,where:deleted_at IS NULL"`
	FullName     string         `gorm:"type:varchar(255);not null"`
	Avatar       string         `gorm:"type:varchar(500);not null"`
	CoverImage   string         `gorm:"type:varchar(500)"`
	Password     string         `gorm:"not null"`
	RefreshToken string         `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
