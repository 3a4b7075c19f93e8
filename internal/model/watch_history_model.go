package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WatchHistoryModel struct {
	ID        string     `gorm:"type:uuid;primary_key"`
	UserID    string     `gorm:"type:uuid;not null;index"`
	VideoID   string     `gorm:"type:uuid;not null;index"`
	Video     VideoModel `gorm:"foreignKey:VideoID"`
	WatchedAt time.Time  `gorm:"not null;index"`
}

func (WatchHistoryModel) TableName() string {
	return "watch_histories"
}

func (w *WatchHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.WatchedAt.IsZero() {
		w.WatchedAt = time.Now().UTC()
	}
	return nil
}
