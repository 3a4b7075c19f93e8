package entity

import "time"

type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// LikeTarget names exactly one likeable resource.
type LikeTarget struct {
	Kind LikeTargetKind
	ID   string
}

type Like struct {
	ID        string    `json:"id"`
	LikedByID string    `json:"likedBy"`
	VideoID   *string   `json:"videoId,omitempty"`
	CommentID *string   `json:"commentId,omitempty"`
	TweetID   *string   `json:"tweetId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type LikedVideo struct {
	LikeID  string        `json:"likeId"`
	LikedAt time.Time     `json:"likedAt"`
	Video   *VideoSummary `json:"video"`
}

type ToggleResult struct {
	Added bool `json:"added"`
}
