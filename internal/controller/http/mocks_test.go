package http

import (
	"context"

	"videotube/internal/entity"
	"videotube/internal/usecase"
	"videotube/pkg/queue"

	"github.com/stretchr/testify/mock"
)

type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) List(ctx context.Context, actorID string, params usecase.VideoListParams) (*entity.Page[*entity.Video], error) {
	args := m.Called(ctx, actorID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Video]), args.Error(1)
}

func (m *MockVideoUseCase) Publish(ctx context.Context, actorID string, input usecase.PublishVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Get(ctx context.Context, actorID, videoID string) (*entity.Video, error) {
	args := m.Called(ctx, actorID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Update(ctx context.Context, actorID, videoID string, input usecase.UpdateVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, actorID, videoID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) UpdateThumbnail(ctx context.Context, actorID, videoID, thumbnailPath string) (*entity.Video, error) {
	args := m.Called(ctx, actorID, videoID, thumbnailPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) TogglePublish(ctx context.Context, actorID, videoID string) (*entity.Video, error) {
	args := m.Called(ctx, actorID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Delete(ctx context.Context, actorID, videoID string) error {
	args := m.Called(ctx, actorID, videoID)
	return args.Error(0)
}

var _ usecase.VideoUseCase = (*MockVideoUseCase)(nil)

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListByVideo(ctx context.Context, actorID, videoID string, page entity.PageRequest) (*entity.Page[*entity.Comment], error) {
	args := m.Called(ctx, actorID, videoID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Comment]), args.Error(1)
}

func (m *MockCommentUseCase) Add(ctx context.Context, actorID, videoID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, actorID, videoID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Update(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, actorID, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Delete(ctx context.Context, actorID, commentID string) error {
	args := m.Called(ctx, actorID, commentID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) Toggle(ctx context.Context, actorID string, target entity.LikeTarget) (*entity.ToggleResult, error) {
	args := m.Called(ctx, actorID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

func (m *MockLikeUseCase) ListLikedVideos(ctx context.Context, actorID string, page entity.PageRequest) (*entity.Page[*entity.LikedVideo], error) {
	args := m.Called(ctx, actorID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.LikedVideo]), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) Toggle(ctx context.Context, actorID, channelID string) (*entity.ToggleResult, error) {
	args := m.Called(ctx, actorID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribers(ctx context.Context, actorID, channelID string, page entity.PageRequest) (*entity.Page[*entity.SubscriptionView], error) {
	args := m.Called(ctx, actorID, channelID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.SubscriptionView]), args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribedChannels(ctx context.Context, actorID, subscriberID string, page entity.PageRequest) (*entity.Page[*entity.SubscriptionView], error) {
	args := m.Called(ctx, actorID, subscriberID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.SubscriptionView]), args.Error(1)
}

var _ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)

type MockPlaylistUseCase struct {
	mock.Mock
}

func (m *MockPlaylistUseCase) Create(ctx context.Context, actorID, name, description string) (*entity.Playlist, error) {
	args := m.Called(ctx, actorID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Playlist], error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Playlist]), args.Error(1)
}

func (m *MockPlaylistUseCase) Get(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) Update(ctx context.Context, actorID, playlistID, name, description string) (*entity.Playlist, error) {
	args := m.Called(ctx, actorID, playlistID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) Delete(ctx context.Context, actorID, playlistID string) error {
	args := m.Called(ctx, actorID, playlistID)
	return args.Error(0)
}

func (m *MockPlaylistUseCase) AddVideo(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error) {
	args := m.Called(ctx, actorID, playlistID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error) {
	args := m.Called(ctx, actorID, playlistID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

var _ usecase.PlaylistUseCase = (*MockPlaylistUseCase)(nil)

type MockTweetUseCase struct {
	mock.Mock
}

func (m *MockTweetUseCase) Create(ctx context.Context, actorID, content string) (*entity.Tweet, error) {
	args := m.Called(ctx, actorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Tweet], error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Tweet]), args.Error(1)
}

func (m *MockTweetUseCase) Update(ctx context.Context, actorID, tweetID, content string) (*entity.Tweet, error) {
	args := m.Called(ctx, actorID, tweetID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) Delete(ctx context.Context, actorID, tweetID string) error {
	args := m.Called(ctx, actorID, tweetID)
	return args.Error(0)
}

var _ usecase.TweetUseCase = (*MockTweetUseCase)(nil)

type MockHistoryUseCase struct {
	mock.Mock
}

func (m *MockHistoryUseCase) Add(ctx context.Context, actorID, videoID string) (*entity.WatchHistory, error) {
	args := m.Called(ctx, actorID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WatchHistory), args.Error(1)
}

func (m *MockHistoryUseCase) List(ctx context.Context, actorID string, page entity.PageRequest) (*entity.Page[*entity.WatchHistory], error) {
	args := m.Called(ctx, actorID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.WatchHistory]), args.Error(1)
}

var _ usecase.HistoryUseCase = (*MockHistoryUseCase)(nil)

type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) ChannelStats(ctx context.Context, actorID string) (*entity.ChannelStats, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelStats), args.Error(1)
}

func (m *MockDashboardUseCase) ChannelVideos(ctx context.Context, actorID string, page entity.PageRequest) (*entity.Page[*entity.Video], error) {
	args := m.Called(ctx, actorID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Video]), args.Error(1)
}

var _ usecase.DashboardUseCase = (*MockDashboardUseCase)(nil)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, username, email, password string) (*entity.User, *entity.AuthTokens, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(*entity.AuthTokens), args.Error(2)
}

func (m *MockUserUseCase) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserUseCase) RefreshTokens(ctx context.Context, refreshToken string) (*entity.AuthTokens, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthTokens), args.Error(1)
}

func (m *MockUserUseCase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserUseCase) GetCurrent(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateAccount(ctx context.Context, userID, fullName, email string) (*entity.User, error) {
	args := m.Called(ctx, userID, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateAvatar(ctx context.Context, userID, avatarPath string) (*entity.User, error) {
	args := m.Called(ctx, userID, avatarPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateCoverImage(ctx context.Context, userID, coverImagePath string) (*entity.User, error) {
	args := m.Called(ctx, userID, coverImagePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserUseCase) GetChannelProfile(ctx context.Context, viewerID, username string) (*entity.ChannelProfile, error) {
	args := m.Called(ctx, viewerID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockUserUseCase) PrincipalExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) HandleTask(ctx context.Context, task queue.NotificationTask) (int, error) {
	args := m.Called(ctx, task)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationUseCase) List(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Notification], error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Notification]), args.Error(1)
}

func (m *MockNotificationUseCase) Stream(ctx context.Context, userID string) (<-chan []byte, func() error, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(<-chan []byte), args.Get(1).(func() error), args.Error(2)
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)
