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

func TestTweetHandler(t *testing.T) {
	mockUseCase := new(MockTweetUseCase)
	handler := NewTweetHandler(mockUseCase, Pager{MaxLimit: 100}, testLogger())
	router := setupTestRouter()
	router.POST("/tweets", asUser("user-1", handler.CreateTweet))
	router.GET("/tweets/user/:userId", asUser("user-1", handler.ListUserTweets))
	router.PATCH("/tweets/:tweetId", asUser("user-1", handler.UpdateTweet))
	router.DELETE("/tweets/:tweetId", asUser("user-1", handler.DeleteTweet))

	mockUseCase.On("Create", mock.Anything, "user-1", "hello").Return(&entity.Tweet{ID: "tweet-1", OwnerID: "user-1", Content: "hello"}, nil)
	mockUseCase.On("Update", mock.Anything, "user-1", "tweet-1", "edited").Return(&entity.Tweet{ID: "tweet-1", Content: "edited"}, nil)
	mockUseCase.On("Delete", mock.Anything, "user-1", "tweet-2").Return(apperror.NotFound("Tweet not found"))
	req := entity.PageRequest{Page: 1, Limit: entity.DefaultPageSize}
	mockUseCase.On("ListByUser", mock.Anything, "user-9", req).Return(nil, apperror.NotFound("User not found"))

	w := serve(router, jsonRequest(t, "POST", "/tweets", map[string]string{"content": "hello"}))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Tweet created", decode(t, w).Message)

	w = serve(router, jsonRequest(t, "POST", "/tweets", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(router, jsonRequest(t, "PATCH", "/tweets/tweet-1", map[string]string{"content": "edited"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tweet updated", decode(t, w).Message)

	w = serve(router, httptest.NewRequest("DELETE", "/tweets/tweet-2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, httptest.NewRequest("GET", "/tweets/user/user-9", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w).Message)

	mockUseCase.AssertExpectations(t)
}
