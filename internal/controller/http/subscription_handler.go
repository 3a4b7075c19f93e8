package http

import (
	"net/http"

	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	pager               Pager
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, pager Pager, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		pager:               pager,
		logger:              logger,
	}
}

// ToggleSubscription godoc
// @Summary      Subscribe or unsubscribe
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Success      200  {object}  response.Envelope{data=entity.ToggleResult}
// @Success      201  {object}  response.Envelope{data=entity.ToggleResult}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	result, err := h.subscriptionUseCase.Toggle(c.Request.Context(), currentUserID(c), c.Param("channelId"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	if result.Added {
		response.JSON(c, http.StatusCreated, result, "Subscribed to channel")
		return
	}
	response.JSON(c, http.StatusOK, result, "Unsubscribed from channel")
}

// ListSubscribers godoc
// @Summary      Subscribers of a channel
// @Description  Only the channel owner may list its subscribers.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.SubscriptionView]}
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	page, err := h.subscriptionUseCase.ListSubscribers(c.Request.Context(), currentUserID(c), c.Param("channelId"), h.pager.Page(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "Subscribers of the channel")
}

// ListSubscribedChannels godoc
// @Summary      Channels a user subscribed to
// @Description  Users may only list their own subscriptions.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        subscriberId path string true "Subscriber (user) ID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.SubscriptionView]}
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /subscriptions/u/{subscriberId} [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	page, err := h.subscriptionUseCase.ListSubscribedChannels(c.Request.Context(), currentUserID(c), c.Param("subscriberId"), h.pager.Page(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "Channels subscribed by the user")
}
