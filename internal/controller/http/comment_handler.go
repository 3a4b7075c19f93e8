package http

import (
	"net/http"

	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	pager          Pager
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, pager Pager, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		pager:          pager,
		logger:         logger,
	}
}

// ContentRequest carries text content. Updates also accept newContent.
type ContentRequest struct {
	Content    string `form:"content" json:"content"`
	NewContent string `form:"newContent" json:"newContent"`
}

func (r ContentRequest) Text() string {
	return firstNonEmpty(r.Content, r.NewContent)
}

// ListComments godoc
// @Summary      List comments of a video
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Comment]}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /comments/{videoId} [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	page, err := h.commentUseCase.ListByVideo(c.Request.Context(), currentUserID(c), c.Param("videoId"), h.pager.Page(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "Comments retrieved successfully")
}

// AddComment godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        request body ContentRequest true "Comment"
// @Success      201  {object}  response.Envelope{data=entity.Comment}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /comments/{videoId} [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req ContentRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	comment, err := h.commentUseCase.Add(c.Request.Context(), currentUserID(c), c.Param("videoId"), req.Text())
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusCreated, comment, "Comment added")
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Param        request body ContentRequest true "New content"
// @Success      200  {object}  response.Envelope{data=entity.Comment}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /comments/c/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req ContentRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	comment, err := h.commentUseCase.Update(c.Request.Context(), currentUserID(c), c.Param("commentId"), req.Text())
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, comment, "Comment updated")
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /comments/c/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.Delete(c.Request.Context(), currentUserID(c), c.Param("commentId")); err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, nil, "Comment deleted")
}
