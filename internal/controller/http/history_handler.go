package http

import (
	"net/http"

	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyUseCase usecase.HistoryUseCase
	pager          Pager
	logger         *logger.Logger
}

func NewHistoryHandler(historyUseCase usecase.HistoryUseCase, pager Pager, logger *logger.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyUseCase: historyUseCase,
		pager:          pager,
		logger:         logger,
	}
}

// AddToHistory godoc
// @Summary      Record a view
// @Description  Appends a watch-history entry for the caller and increments the video's view count.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      201  {object}  response.Envelope{data=entity.WatchHistory}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /history/{videoId} [post]
func (h *HistoryHandler) AddToHistory(c *gin.Context) {
	entry, err := h.historyUseCase.Add(c.Request.Context(), currentUserID(c), c.Param("videoId"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusCreated, entry, "Video added to history")
}

// ListHistory godoc
// @Summary      Caller's watch history
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.WatchHistory]}
// @Router       /history [get]
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	page, err := h.historyUseCase.List(c.Request.Context(), currentUserID(c), h.pager.Page(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "Watch history")
}
