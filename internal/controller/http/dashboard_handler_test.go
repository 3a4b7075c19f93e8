package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"videotube/internal/entity"
	"videotube/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardHandler_InternalHidesCause(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	handler := NewDashboardHandler(mockUseCase, Pager{MaxLimit: 100}, testLogger())
	router := setupTestRouter()
	router.GET("/dashboard/stats", asUser("user-1", handler.ChannelStats))
	router.GET("/dashboard/videos", asUser("user-1", handler.ChannelVideos))

	stats := &entity.ChannelStats{
		Videos:           []entity.VideoStat{{ID: "video-1", Title: "Intro", Views: 4, Likes: 1}},
		VideosCount:      1,
		TotalViews:       4,
		TotalLikes:       1,
		SubscribersCount: 2,
	}
	mockUseCase.On("ChannelStats", mock.Anything, "user-1").Return(stats, nil)
	req := entity.PageRequest{Page: 2, Limit: 5}
	mockUseCase.On("ChannelVideos", mock.Anything, "user-1", req).
		Return(nil, apperror.Internal("Failed to list channel videos", errors.New("connection reset")))

	w := serve(router, httptest.NewRequest("GET", "/dashboard/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Channel stats fetched successfully", decode(t, w).Message)
	assert.Contains(t, w.Body.String(), `"subscribersCount":2`)

	w = serve(router, httptest.NewRequest("GET", "/dashboard/videos?page=2&limit=5", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")

	mockUseCase.AssertExpectations(t)
}

func TestDashboardHandler(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	handler := NewDashboardHandler(mockUseCase, Pager{MaxLimit: 100}, testLogger())
	router := setupTestRouter()
	router.GET("/dashboard/stats", asUser("user-1", handler.ChannelStats))
	router.GET("/dashboard/videos", asUser("user-1", handler.ChannelVideos))

	stats := &entity.ChannelStats{Videos: []entity.VideoStat{{ID: "video-1", Views: 3}}, VideosCount: 1, TotalViews: 3}
	mockUseCase.On("ChannelStats", mock.Anything, "user-1").Return(stats, nil)
	req := entity.PageRequest{Page: 1, Limit: entity.DefaultPageSize}
	mockUseCase.On("ChannelVideos", mock.Anything, "user-1", req).Return(entity.NewPage([]*entity.Video{}, 0, req), nil)

	w := serve(router, httptest.NewRequest("GET", "/dashboard/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"totalViews":3`)

	w = serve(router, httptest.NewRequest("GET", "/dashboard/videos", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mockUseCase.AssertExpectations(t)
}
