package entity

import "time"

type Video struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"ownerId"`
	Owner       *OwnerSummary `json:"owner,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	VideoFile   string        `json:"videoFile"`
	Thumbnail   string        `json:"thumbnail"`
	Duration    float64       `json:"duration"`
	Views       int64         `json:"views"`
	Likes       int64         `json:"likes"`
	IsPublished bool          `json:"isPublished"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (v *Video) OwnedBy() string { return v.OwnerID }

// VideoSummary is the projection of a Video embedded in comments, likes and
// history entries: no owner reference and no timestamps.
type VideoSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoFile   string  `json:"videoFile"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    float64 `json:"duration"`
	Views       int64   `json:"views"`
}

type VideoSortField string

const (
	SortByCreatedAt VideoSortField = "created_at"
	SortByTitle     VideoSortField = "title"
	SortByViews     VideoSortField = "views"
	SortByDuration  VideoSortField = "duration"
	SortByLikes     VideoSortField = "likes"
)

var videoSortFields = map[string]VideoSortField{
	"createdAt":  SortByCreatedAt,
	"created_at": SortByCreatedAt,
	"_id":        SortByCreatedAt,
	"title":      SortByTitle,
	"views":      SortByViews,
	"duration":   SortByDuration,
	"likes":      SortByLikes,
}

// ParseVideoSort resolves client sort parameters, falling back to creation
// order ascending for anything unrecognised.
func ParseVideoSort(sortBy, sortType string) (VideoSortField, bool) {
	field, ok := videoSortFields[sortBy]
	if !ok {
		field = SortByCreatedAt
	}
	desc := sortType == "-1" || sortType == "desc" || sortType == "DESC"
	return field, desc
}

type VideoFilter struct {
	OwnerID       string
	Query         string
	PublishedOnly bool
	SortBy        VideoSortField
	SortDesc      bool
}
