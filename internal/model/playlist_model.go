package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string               `gorm:"type:uuid;primary_key"`
	OwnerID     string               `gorm:"type:uuid;not null;uniqueIndex:idx_playlists_owner_name,where:deleted_at IS NULL"`
	Owner       UserModel            `gorm:"foreignKey:OwnerID"`
	Name        string               `gorm:"type:varchar(255);not null;uniqueIndex:idx_playlists_owner_name,where:deleted_at IS NULL"`
	Description string               `gorm:"type:text;not null"`
	Videos      []PlaylistVideoModel `gorm:"foreignKey:PlaylistID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideoModel keeps playlist membership ordered by Position. The same
// video may appear more than once.
type PlaylistVideoModel struct {
	ID         string     `gorm:"type:uuid;primary_key"`
	PlaylistID string     `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_videos_position"`
	VideoID    string     `gorm:"type:uuid;not null;index"`
	Video      VideoModel `gorm:"foreignKey:VideoID"`
	Position   int        `gorm:"not null;uniqueIndex:idx_playlist_videos_position"`
	CreatedAt  time.Time
}

func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}

func (p *PlaylistVideoModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
