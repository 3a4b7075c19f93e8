package http

import (
	"net/http"
	"time"

	"videotube/internal/entity"
	"videotube/internal/usecase"
	"videotube/pkg/logger"
	"videotube/pkg/middleware"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls the token cookies set on login and refresh.
type CookieOptions struct {
	Secure        bool
	AccessMaxAge  time.Duration
	RefreshMaxAge time.Duration
}

type UserHandler struct {
	userUseCase usecase.UserUseCase
	uploads     Uploads
	cookies     CookieOptions
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, uploads Uploads, cookies CookieOptions, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		uploads:     uploads,
		cookies:     cookies,
		logger:      logger,
	}
}

type RegisterRequest struct {
	FullName string `form:"fullName" json:"fullName" binding:"required,notblank"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Username string `form:"username" json:"username" binding:"required,notblank"`
	Password string `form:"password" json:"password" binding:"required,notblank"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `form:"refreshToken" json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,notblank"`
	NewPassword string `json:"newPassword" binding:"required,notblank"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
}

type LoginResponse struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account. The avatar is required, the cover image optional.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName formData string true "Full name"
// @Param        email formData string true "Email"
// @Param        username formData string true "Username"
// @Param        password formData string true "Password"
// @Param        avatar formData file true "Avatar image"
// @Param        coverImage formData file false "Cover image"
// @Success      201  {object}  response.Envelope{data=entity.User}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Failure      500  {object}  response.ErrorEnvelope
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	paths, err := h.uploads.SaveAll(c, "avatar", "coverImage")
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
		AvatarPath:     paths[0],
		CoverImagePath: paths[1],
	})
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusCreated, user, "User registered successfully")
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate by username or email. Tokens are returned in the body and set as cookies.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  response.Envelope{data=LoginResponse}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	user, tokens, err := h.userUseCase.Login(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	h.setTokenCookies(c, tokens)
	response.JSON(c, http.StatusOK, LoginResponse{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "User logged in successfully")
}

// Logout godoc
// @Summary      Log out
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.userUseCase.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		fail(c, h.logger, err)
		return
	}

	h.clearTokenCookies(c)
	response.JSON(c, http.StatusOK, nil, "User logged out")
}

// RefreshToken godoc
// @Summary      Refresh tokens
// @Description  Rotate both tokens. The refresh token is read from the cookie or the body.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest false "Refresh token"
// @Success      200  {object}  response.Envelope{data=entity.AuthTokens}
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/refresh-token [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	token, _ := c.Cookie(middleware.RefreshTokenCookie)
	tokens, err := h.userUseCase.RefreshTokens(c.Request.Context(), firstNonEmpty(token, req.RefreshToken))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	h.setTokenCookies(c, tokens)
	response.JSON(c, http.StatusOK, tokens, "Access token refreshed")
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Old and new password"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /users/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	if err := h.userUseCase.ChangePassword(c.Request.Context(), currentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, nil, "Password changed successfully")
}

// CurrentUser godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=entity.User}
// @Router       /users/current-user [get]
func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, err := h.userUseCase.GetCurrent(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, user, "Current user fetched successfully")
}

// UpdateAccount godoc
// @Summary      Update account details
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateAccountRequest true "Account details"
// @Success      200  {object}  response.Envelope{data=entity.User}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /users/update-account [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := bind(c, &req); err != nil {
		fail(c, h.logger, err)
		return
	}

	user, err := h.userUseCase.UpdateAccount(c.Request.Context(), currentUserID(c), req.FullName, req.Email)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, user, "Account details updated successfully")
}

// UpdateAvatar godoc
// @Summary      Replace avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  response.Envelope{data=entity.User}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	path, err := h.uploads.Save(c, "avatar")
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	user, err := h.userUseCase.UpdateAvatar(c.Request.Context(), currentUserID(c), path)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, user, "Avatar updated successfully")
}

// UpdateCoverImage godoc
// @Summary      Replace cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        coverImage formData file true "Cover image"
// @Success      200  {object}  response.Envelope{data=entity.User}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	path, err := h.uploads.Save(c, "coverImage")
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	user, err := h.userUseCase.UpdateCoverImage(c.Request.Context(), currentUserID(c), path)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, user, "Cover image updated successfully")
}

// DeleteUser godoc
// @Summary      Delete account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Router       /users/delete-user [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUseCase.Delete(c.Request.Context(), currentUserID(c)); err != nil {
		fail(c, h.logger, err)
		return
	}

	h.clearTokenCookies(c)
	response.JSON(c, http.StatusOK, nil, "User deleted")
}

// ChannelProfile godoc
// @Summary      Channel profile
// @Description  Public profile of a channel with subscriber counts and whether the caller is subscribed.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      200  {object}  response.Envelope{data=entity.ChannelProfile}
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /users/channel/{username} [get]
func (h *UserHandler) ChannelProfile(c *gin.Context) {
	profile, err := h.userUseCase.GetChannelProfile(c.Request.Context(), currentUserID(c), c.Param("username"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusOK, profile, "User channel fetched successfully")
}

func (h *UserHandler) setTokenCookies(c *gin.Context, tokens *entity.AuthTokens) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, tokens.AccessToken, int(h.cookies.AccessMaxAge.Seconds()), "/", "", h.cookies.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, tokens.RefreshToken, int(h.cookies.RefreshMaxAge.Seconds()), "/", "", h.cookies.Secure, true)
}

func (h *UserHandler) clearTokenCookies(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
}
