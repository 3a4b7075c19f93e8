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

func TestToggleSubscription(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, Pager{MaxLimit: 100}, testLogger())
	router := setupTestRouter()
	router.POST("/subscriptions/c/:channelId", asUser("user-1", handler.ToggleSubscription))

	mockUseCase.On("Toggle", mock.Anything, "user-1", "channel-1").Return(&entity.ToggleResult{Added: true}, nil).Once()
	mockUseCase.On("Toggle", mock.Anything, "user-1", "channel-1").Return(&entity.ToggleResult{Added: false}, nil).Once()
	mockUseCase.On("Toggle", mock.Anything, "user-1", "user-1").Return(nil, apperror.BadRequest("You cannot subscribe to your own channel"))

	w := serve(router, httptest.NewRequest("POST", "/subscriptions/c/channel-1", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Subscribed to channel", decode(t, w).Message)

	w = serve(router, httptest.NewRequest("POST", "/subscriptions/c/channel-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Unsubscribed from channel", decode(t, w).Message)

	w = serve(router, httptest.NewRequest("POST", "/subscriptions/c/user-1", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockUseCase.AssertExpectations(t)
}

func TestListSubscriptions(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, Pager{MaxLimit: 100}, testLogger())
	router := setupTestRouter()
	router.GET("/subscriptions/c/:channelId", asUser("user-1", handler.ListSubscribers))
	router.GET("/subscriptions/u/:subscriberId", asUser("user-1", handler.ListSubscribedChannels))

	req := entity.PageRequest{Page: 1, Limit: 5}
	views := []*entity.SubscriptionView{{SubscriptionID: "sub-1", User: &entity.OwnerSummary{ID: "user-2", Username: "bob"}}}
	mockUseCase.On("ListSubscribers", mock.Anything, "user-1", "user-1", req).Return(entity.NewPage(views, 1, req), nil)
	mockUseCase.On("ListSubscribedChannels", mock.Anything, "user-1", "user-2", req).
		Return(nil, apperror.Forbidden("You can only view your own subscriptions"))

	w := serve(router, httptest.NewRequest("GET", "/subscriptions/c/user-1?limit=5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"username":"bob"`)

	w = serve(router, httptest.NewRequest("GET", "/subscriptions/u/user-2?limit=5", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	mockUseCase.AssertExpectations(t)
}
