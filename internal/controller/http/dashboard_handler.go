package http

import (
	"net/http"

	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	pager            Pager
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, pager Pager, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		pager:            pager,
		logger:           logger,
	}
}

// ChannelStats godoc
// @Summary      Channel statistics
// @Description  Per-video views and likes plus totals and the subscriber count of the caller's channel.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=entity.ChannelStats}
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) ChannelStats(c *gin.Context) {
	stats, err := h.dashboardUseCase.ChannelStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

// ChannelVideos godoc
// @Summary      Caller's videos
// @Description  All of the caller's videos including unpublished ones, newest first.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Video]}
// @Router       /dashboard/videos [get]
func (h *DashboardHandler) ChannelVideos(c *gin.Context) {
	page, err := h.dashboardUseCase.ChannelVideos(c.Request.Context(), currentUserID(c), h.pager.Page(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "Channel videos fetched successfully")
}
