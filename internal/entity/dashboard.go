package entity

type VideoStat struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	IsPublished bool   `json:"isPublished"`
}

type ChannelStats struct {
	Videos           []VideoStat `json:"videos"`
	VideosCount      int         `json:"videosCount"`
	TotalViews       int64       `json:"totalViews"`
	TotalLikes       int64       `json:"totalLikes"`
	SubscribersCount int64       `json:"subscribersCount"`
}
