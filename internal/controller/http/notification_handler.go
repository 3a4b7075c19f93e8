package http

import (
	"net/http"
	"slices"
	"time"

	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const wsPingInterval = 30 * time.Second

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	pager               Pager
	upgrader            websocket.Upgrader
	logger              *logger.Logger
}

// NewNotificationHandler accepts WebSocket upgrades from allowedOrigins and
// from clients that send no Origin header.
func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, pager Pager, allowedOrigins []string, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		pager:               pager,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
		logger: logger,
	}
}

// ListNotifications godoc
// @Summary      Caller's notifications
// @Description  Newest first. Only the latest 100 notifications are kept.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Notification]}
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	page, err := h.notificationUseCase.List(c.Request.Context(), currentUserID(c), h.pager.Page(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "Notifications fetched successfully")
}

// StreamNotifications godoc
// @Summary      Live notifications
// @Description  Upgrades to a WebSocket and pushes each new notification as a JSON text frame.
// @Tags         notifications
// @Security     BearerAuth
// @Param        token query string false "Access token, for clients that cannot send headers"
// @Failure      503  {object}  response.ErrorEnvelope
// @Router       /notifications/ws [get]
func (h *NotificationHandler) StreamNotifications(c *gin.Context) {
	userID := currentUserID(c)
	ctx := c.Request.Context()

	messages, closeStream, err := h.notificationUseCase.Stream(ctx, userID)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	defer closeStream()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	h.logger.Info("WebSocket connected for user %s", userID)

	// the read loop only notices client closes
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			h.logger.Info("WebSocket disconnected for user %s", userID)
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case payload, ok := <-messages:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Warn("Failed to write WebSocket message: %v", err)
				return
			}
		}
	}
}
