package http

import (
	"net/http"

	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	pager        Pager
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, pager Pager, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUseCase: tweetUseCase,
		pager:        pager,
		logger:       logger,
	}
}

type CreateTweetRequest struct {
	Content string `form:"content" json:"content" binding:"required,notblank"`
}

// CreateTweet godoc
// @Summary      Post a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTweetRequest true "Tweet"
// @Success      201  {object}  response.Envelope{data=entity.Tweet}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	var req CreateTweetRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	tweet, err := h.tweetUseCase.Create(c.Request.Context(), currentUserID(c), req.Content)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusCreated, tweet, "Tweet created")
}

// ListUserTweets godoc
// @Summary      Tweets of a user
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Tweet]}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /tweets/user/{userId} [get]
func (h *TweetHandler) ListUserTweets(c *gin.Context) {
	page, err := h.tweetUseCase.ListByUser(c.Request.Context(), c.Param("userId"), h.pager.Page(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "User tweets retrieved")
}

// UpdateTweet godoc
// @Summary      Edit a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Param        request body ContentRequest true "New content"
// @Success      200  {object}  response.Envelope{data=entity.Tweet}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /tweets/{tweetId} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	var req ContentRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	tweet, err := h.tweetUseCase.Update(c.Request.Context(), currentUserID(c), c.Param("tweetId"), req.Text())
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, tweet, "Tweet updated")
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /tweets/{tweetId} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	if err := h.tweetUseCase.Delete(c.Request.Context(), currentUserID(c), c.Param("tweetId")); err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, nil, "Tweet deleted")
}
