package http

import (
	"net/http"
	"strconv"

	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	uploads      Uploads
	pager        Pager
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, uploads Uploads, pager Pager, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		uploads:      uploads,
		pager:        pager,
		logger:       logger,
	}
}

type PublishVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Duration    string `form:"duration"`
}

type UpdateVideoRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

// ListVideos godoc
// @Summary      List videos
// @Description  Page through a user's videos, the caller's own by default. Other users' unpublished videos are hidden.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        userId query string false "Owner ID"
// @Param        query query string false "Case-insensitive title or description search"
// @Param        sortBy query string false "createdAt, title, views, duration or likes"
// @Param        sortType query string false "1/asc or -1/desc"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Video]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	ownerID, err := optionalID(c, "userId", "user")
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	page, err := h.videoUseCase.List(c.Request.Context(), currentUserID(c), usecase.VideoListParams{
		UserID:   ownerID,
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		Page:     h.pager.Page(c),
	})
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "All videos")
}

// PublishVideo godoc
// @Summary      Publish a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string true "Description"
// @Param        duration formData number false "Duration in seconds, used when storage reports none"
// @Param        videoFile formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  response.Envelope{data=entity.Video}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      500  {object}  response.ErrorEnvelope
// @Router       /videos [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	var req PublishVideoRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	paths, err := h.uploads.SaveAll(c, "videoFile", "thumbnail")
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	duration, _ := strconv.ParseFloat(req.Duration, 64)
	video, err := h.videoUseCase.Publish(c.Request.Context(), currentUserID(c), usecase.PublishVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		VideoPath:     paths[0],
		ThumbnailPath: paths[1],
		Duration:      duration,
	})
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusCreated, video, "Video published")
}

// GetVideo godoc
// @Summary      Get video by ID
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoUseCase.Get(c.Request.Context(), currentUserID(c), c.Param("videoId"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, video, "Video found by given Id")
}

// UpdateVideo godoc
// @Summary      Update title and description
// @Description  Only the owner can update a video.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        request body UpdateVideoRequest true "New details"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var req UpdateVideoRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	video, err := h.videoUseCase.Update(c.Request.Context(), currentUserID(c), c.Param("videoId"), usecase.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, video, "Video updated")
}

// UpdateThumbnail godoc
// @Summary      Replace thumbnail
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/thumbnail/{videoId} [patch]
func (h *VideoHandler) UpdateThumbnail(c *gin.Context) {
	path, err := h.uploads.Save(c, "thumbnail")
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	video, err := h.videoUseCase.UpdateThumbnail(c.Request.Context(), currentUserID(c), c.Param("videoId"), path)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, video, "Thumbnail updated")
}

// TogglePublish godoc
// @Summary      Toggle publish status
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/toggle/{videoId} [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	video, err := h.videoUseCase.TogglePublish(c.Request.Context(), currentUserID(c), c.Param("videoId"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	message := "Unpublished"
	if video.IsPublished {
		message = "Published"
	}
	response.JSON(c, http.StatusOK, video, message)
}

// DeleteVideo godoc
// @Summary      Delete video
// @Description  Only the owner can delete a video. Stored media is removed afterwards.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.videoUseCase.Delete(c.Request.Context(), currentUserID(c), c.Param("videoId")); err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, nil, "Video deleted")
}
