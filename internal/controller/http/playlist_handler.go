package http

import (
	"net/http"

	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	pager           Pager
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, pager Pager, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		pager:           pager,
		logger:          logger,
	}
}

type CreatePlaylistRequest struct {
	Name        string `form:"name" json:"name" binding:"required,notblank"`
	Description string `form:"description" json:"description" binding:"required,notblank"`
}

type UpdatePlaylistRequest struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePlaylistRequest true "Playlist"
// @Success      201  {object}  response.Envelope{data=entity.Playlist}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req CreatePlaylistRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	playlist, err := h.playlistUseCase.Create(c.Request.Context(), currentUserID(c), req.Name, req.Description)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusCreated, playlist, "Playlist created")
}

// ListUserPlaylists godoc
// @Summary      Playlists of a user
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Playlist]}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /playlists/user/{userId} [get]
func (h *PlaylistHandler) ListUserPlaylists(c *gin.Context) {
	page, err := h.playlistUseCase.ListByUser(c.Request.Context(), c.Param("userId"), h.pager.Page(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, page, "User playlists")
}

// GetPlaylist godoc
// @Summary      Get playlist with its videos
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  response.Envelope{data=entity.Playlist}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := h.playlistUseCase.Get(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, playlist, "Playlist")
}

// UpdatePlaylist godoc
// @Summary      Rename a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        request body UpdatePlaylistRequest true "New name and description"
// @Success      200  {object}  response.Envelope{data=entity.Playlist}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /playlists/{playlistId} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	var req UpdatePlaylistRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	playlist, err := h.playlistUseCase.Update(c.Request.Context(), currentUserID(c), c.Param("playlistId"), req.Name, req.Description)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, playlist, "Playlist updated")
}

// DeletePlaylist godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	if err := h.playlistUseCase.Delete(c.Request.Context(), currentUserID(c), c.Param("playlistId")); err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, nil, "Playlist deleted")
}

// AddVideo godoc
// @Summary      Append a video to a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  response.Envelope{data=entity.Playlist}
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /playlists/add/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlist, err := h.playlistUseCase.AddVideo(c.Request.Context(), currentUserID(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, playlist, "Video added to playlist")
}

// RemoveVideo godoc
// @Summary      Remove a video from a playlist
// @Description  Removes the first occurrence of the video.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  response.Envelope{data=entity.Playlist}
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /playlists/remove/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlist, err := h.playlistUseCase.RemoveVideo(c.Request.Context(), currentUserID(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, playlist, "Video removed from playlist")
}
