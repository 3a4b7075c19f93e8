package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"videotube/internal/entity"
	"videotube/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestToggleLike_StatusFollowsBranch(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, Pager{MaxLimit: 100}, testLogger())
	router := setupTestRouter()
	router.POST("/likes/toggle/v/:videoId", asUser("user-1", handler.ToggleVideoLike))

	target := entity.LikeTarget{Kind: entity.LikeTargetVideo, ID: "video-1"}
	mockUseCase.On("Toggle", mock.Anything, "user-1", target).Return(&entity.ToggleResult{Added: true}, nil).Once()
	mockUseCase.On("Toggle", mock.Anything, "user-1", target).Return(&entity.ToggleResult{Added: false}, nil).Once()

	w := serve(router, httptest.NewRequest("POST", "/likes/toggle/v/video-1", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Video liked", env.Message)
	assert.JSONEq(t, `{"added":true}`, string(env.Data))

	w = serve(router, httptest.NewRequest("POST", "/likes/toggle/v/video-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Video unliked", decode(t, w).Message)

	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_TargetKinds(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, Pager{MaxLimit: 100}, testLogger())
	router := setupTestRouter()
	router.POST("/likes/toggle/c/:commentId", asUser("user-1", handler.ToggleCommentLike))
	router.POST("/likes/toggle/t/:tweetId", asUser("user-1", handler.ToggleTweetLike))

	mockUseCase.On("Toggle", mock.Anything, "user-1", entity.LikeTarget{Kind: entity.LikeTargetComment, ID: "comment-1"}).
		Return(&entity.ToggleResult{Added: true}, nil)
	mockUseCase.On("Toggle", mock.Anything, "user-1", entity.LikeTarget{Kind: entity.LikeTargetTweet, ID: "tweet-1"}).
		Return(nil, apperror.NotFound("Tweet not found"))

	w := serve(router, httptest.NewRequest("POST", "/likes/toggle/c/comment-1", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Comment liked", decode(t, w).Message)

	w = serve(router, httptest.NewRequest("POST", "/likes/toggle/t/tweet-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tweet not found", decode(t, w).Message)

	mockUseCase.AssertExpectations(t)
}

func TestListLikedVideos(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, Pager{MaxLimit: 100}, testLogger())
	router := setupTestRouter()
	router.GET("/likes/videos", asUser("user-1", handler.ListLikedVideos))

	req := entity.PageRequest{Page: entity.DefaultPage, Limit: entity.DefaultPageSize}
	liked := []*entity.LikedVideo{{LikeID: "like-1", Video: &entity.VideoSummary{ID: "video-1", Title: "A"}}}
	mockUseCase.On("ListLikedVideos", mock.Anything, "user-1", req).Return(entity.NewPage(liked, 1, req), nil)

	w := serve(router, httptest.NewRequest("GET", "/likes/videos", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"likeId":"like-1"`)
	mockUseCase.AssertExpectations(t)
}
