package entity

import "time"

type Playlist struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId"`
	Owner       *OwnerSummary   `json:"owner,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Videos      []PlaylistVideo `json:"videos,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p *Playlist) OwnedBy() string { return p.OwnerID }

type PlaylistVideo struct {
	Position  int    `json:"position"`
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	VideoFile string `json:"videoFile"`
	Thumbnail string `json:"thumbnail"`
}
