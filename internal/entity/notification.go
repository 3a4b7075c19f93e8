package entity

import "time"

const NotificationVideoPublished = "video_published"

// Notification is an inbox entry delivered to one subscriber.
type Notification struct {
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	VideoID   string    `json:"videoId,omitempty"`
	ChannelID string    `json:"channelId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
