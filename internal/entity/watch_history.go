package entity

import "time"

type WatchHistory struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	VideoID   string        `json:"videoId"`
	Video     *VideoSummary `json:"video,omitempty"`
	WatchedAt time.Time     `json:"watchedAt"`
}
