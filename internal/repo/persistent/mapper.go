package persistent

import (
	"videotube/internal/entity"
	"videotube/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		Avatar:       m.Avatar,
		CoverImage:   m.CoverImage,
		Password:     m.Password,
		RefreshToken: m.RefreshToken,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:           e.ID,
		Username:     e.Username,
		Email:        e.Email,
		FullName:     e.FullName,
		Avatar:       e.Avatar,
		CoverImage:   e.CoverImage,
		Password:     e.Password,
		RefreshToken: e.RefreshToken,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToOwnerSummary projects a joined user; an unloaded association yields nil.
func ToOwnerSummary(m *model.UserModel) *entity.OwnerSummary {
	if m == nil || m.ID == "" {
		return nil
	}

	return &entity.OwnerSummary{
		ID:       m.ID,
		Username: m.Username,
		FullName: m.FullName,
		Avatar:   m.Avatar,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Owner:       ToOwnerSummary(&m.Owner),
		Title:       m.Title,
		Description: m.Description,
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Duration:    m.Duration,
		Views:       m.Views,
		Likes:       m.Likes,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		VideoFile:   e.VideoFile,
		Thumbnail:   e.Thumbnail,
		Duration:    e.Duration,
		Views:       e.Views,
		Likes:       e.Likes,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToVideoSummary(m *model.VideoModel) *entity.VideoSummary {
	if m == nil || m.ID == "" {
		return nil
	}

	return &entity.VideoSummary{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Duration:    m.Duration,
		Views:       m.Views,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		Video:     ToVideoSummary(&m.Video),
		OwnerID:   m.OwnerID,
		Owner:     ToOwnerSummary(&m.Owner),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		VideoID:   e.VideoID,
		OwnerID:   e.OwnerID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToLikedVideo(m *model.LikeModel) *entity.LikedVideo {
	if m == nil {
		return nil
	}

	return &entity.LikedVideo{
		LikeID:  m.ID,
		LikedAt: m.CreatedAt,
		Video:   ToVideoSummary(&m.Video),
	}
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}

	return &entity.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		CreatedAt:    m.CreatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}

	playlist := &entity.Playlist{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Owner:       ToOwnerSummary(&m.Owner),
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range m.Videos {
		item := &m.Videos[i]
		playlist.Videos = append(playlist.Videos, entity.PlaylistVideo{
			Position:  item.Position,
			VideoID:   item.VideoID,
			Title:     item.Video.Title,
			VideoFile: item.Video.VideoFile,
			Thumbnail: item.Video.Thumbnail,
		})
	}
	return playlist
}

func ToPlaylistModel(e *entity.Playlist) *model.PlaylistModel {
	if e == nil {
		return nil
	}

	return &model.PlaylistModel{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToTweetEntity(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTweetModel(e *entity.Tweet) *model.TweetModel {
	if e == nil {
		return nil
	}

	return &model.TweetModel{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToWatchHistoryEntity(m *model.WatchHistoryModel) *entity.WatchHistory {
	if m == nil {
		return nil
	}

	return &entity.WatchHistory{
		ID:        m.ID,
		UserID:    m.UserID,
		VideoID:   m.VideoID,
		Video:     ToVideoSummary(&m.Video),
		WatchedAt: m.WatchedAt,
	}
}
