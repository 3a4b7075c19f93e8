package http

import (
	"net/http"

	"videotube/internal/entity"
	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	pager       Pager
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, pager Pager, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		pager:       pager,
		logger:      logger,
	}
}

// ToggleVideoLike godoc
// @Summary      Like or unlike a video
// @Description  Adds the like when absent (201) and removes it when present (200). The video's like counter follows.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope{data=entity.ToggleResult}
// @Success      201  {object}  response.Envelope{data=entity.ToggleResult}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, entity.LikeTargetVideo, c.Param("videoId"), "Video")
}

// ToggleCommentLike godoc
// @Summary      Like or unlike a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  response.Envelope{data=entity.ToggleResult}
// @Success      201  {object}  response.Envelope{data=entity.ToggleResult}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, entity.LikeTargetComment, c.Param("commentId"), "Comment")
}

// ToggleTweetLike godoc
// @Summary      Like or unlike a tweet
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200  {object}  response.Envelope{data=entity.ToggleResult}
// @Success      201  {object}  response.Envelope{data=entity.ToggleResult}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, entity.LikeTargetTweet, c.Param("tweetId"), "Tweet")
}

func (h *LikeHandler) toggle(c *gin.Context, kind entity.LikeTargetKind, id, noun string) {
	result, err := h.likeUseCase.Toggle(c.Request.Context(), currentUserID(c), entity.LikeTarget{Kind: kind, ID: id})
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	if result.Added {
		response.JSON(c, http.StatusCreated, result, noun+" liked")
		return
	}
	response.JSON(c, http.StatusOK, result, noun+" unliked")
}

// ListLikedVideos godoc
// @Summary      Videos liked by the caller
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.LikedVideo]}
// @Router       /likes/videos [get]
func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	page, err := h.likeUseCase.ListLikedVideos(c.Request.Context(), currentUserID(c), h.pager.Page(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "Liked videos fetched successfully")
}
