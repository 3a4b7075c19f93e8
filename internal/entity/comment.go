package entity

import "time"

type Comment struct {
	ID        string        `json:"id"`
	VideoID   string        `json:"videoId"`
	Video     *VideoSummary `json:"video,omitempty"`
	OwnerID   string        `json:"ownerId"`
	Owner     *OwnerSummary `json:"owner,omitempty"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (c *Comment) OwnedBy() string { return c.OwnerID }
