package usecase

import (
	"context"
	"errors"
	"strings"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/apperror"
	"videotube/pkg/jwt"
	"videotube/pkg/logger"
	"videotube/pkg/s3"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	FullName       string
	Email          string
	Username       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, username, email, password string) (*entity.User, *entity.AuthTokens, error)
	Logout(ctx context.Context, userID string) error
	RefreshTokens(ctx context.Context, refreshToken string) (*entity.AuthTokens, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	GetCurrent(ctx context.Context, userID string) (*entity.User, error)
	UpdateAccount(ctx context.Context, userID, fullName, email string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID, avatarPath string) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID, coverImagePath string) (*entity.User, error)
	Delete(ctx context.Context, userID string) error
	GetChannelProfile(ctx context.Context, viewerID, username string) (*entity.ChannelProfile, error)
	PrincipalExists(ctx context.Context, userID string) (bool, error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	media      MediaStore
	logger     *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	media MediaStore,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		media:      media,
		logger:     logger,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	defer removeFiles(input.AvatarPath, input.CoverImagePath)

	if blank(input.FullName) || blank(input.Email) || blank(input.Username) || blank(input.Password) {
		return nil, apperror.BadRequest("All fields are required")
	}
	if input.AvatarPath == "" {
		return nil, apperror.BadRequest("Avatar file is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, apperror.Internal("Failed to process registration", err)
	}

	avatar, err := uc.media.Upload(ctx, input.AvatarPath, s3.ResourceImage)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, apperror.Internal("Failed to upload avatar", err)
	}

	var coverImage string
	if input.CoverImagePath != "" {
		cover, err := uc.media.Upload(ctx, input.CoverImagePath, s3.ResourceImage)
		if err != nil {
			uc.logger.Error("Failed to upload cover image: %v", err)
			uc.discardMedia(ctx, avatar.URL)
			return nil, apperror.Internal("Failed to upload cover image", err)
		}
		coverImage = cover.URL
	}

	user := &entity.User{
		Username:   strings.ToLower(strings.TrimSpace(input.Username)),
		Email:      strings.TrimSpace(input.Email),
		FullName:   strings.TrimSpace(input.FullName),
		Avatar:     avatar.URL,
		CoverImage: coverImage,
		Password:   string(hashedPassword),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.discardMedia(ctx, avatar.URL, coverImage)
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, apperror.Conflict("User with email or username already exists")
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, apperror.Internal("Failed to create user", err)
	}

	uc.logger.Info("User %s registered", user.ID)
	return user, nil
}

func (uc *userUseCase) Login(ctx context.Context, username, email, password string) (*entity.User, *entity.AuthTokens, error) {
	if blank(username) && blank(email) {
		return nil, nil, apperror.BadRequest("Username or email is required")
	}
	if blank(password) {
		return nil, nil, apperror.BadRequest("Password is required")
	}

	user, err := uc.userRepo.GetByUsernameOrEmail(ctx, strings.ToLower(strings.TrimSpace(username)), strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, nil, apperror.NotFound("User does not exist")
		}
		return nil, nil, apperror.Internal("Failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperror.Unauthenticated("Invalid user credentials")
	}

	tokens, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (uc *userUseCase) Logout(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.Update(ctx, userID, map[string]interface{}{"refresh_token": ""}); err != nil {
		return uc.updateError(err, userID)
	}
	return nil
}

// RefreshTokens rotates both tokens. The presented refresh token must be the
// one currently stored for the user.
func (uc *userUseCase) RefreshTokens(ctx context.Context, refreshToken string) (*entity.AuthTokens, error) {
	if blank(refreshToken) {
		return nil, apperror.Unauthenticated("Unauthorized request")
	}

	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthenticated("Invalid refresh token")
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.Unauthenticated("Invalid refresh token")
		}
		return nil, apperror.Internal("Failed to load user", err)
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperror.Unauthenticated("Refresh token is expired or used")
	}

	return uc.issueTokens(ctx, user)
}

func (uc *userUseCase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return lookupError(err, "User")
	}
	if blank(oldPassword) || blank(newPassword) {
		return apperror.BadRequest("Old and new password are required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return apperror.BadRequest("Invalid old password")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return apperror.Internal("Failed to change password", err)
	}

	if _, err := uc.userRepo.Update(ctx, userID, map[string]interface{}{"password": string(hashedPassword)}); err != nil {
		return uc.updateError(err, userID)
	}
	return nil
}

func (uc *userUseCase) GetCurrent(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "User")
	}
	return user, nil
}

func (uc *userUseCase) UpdateAccount(ctx context.Context, userID, fullName, email string) (*entity.User, error) {
	if blank(fullName) || blank(email) {
		return nil, apperror.BadRequest("Full name and email are required")
	}

	user, err := uc.userRepo.Update(ctx, userID, map[string]interface{}{
		"full_name": strings.TrimSpace(fullName),
		"email":     strings.TrimSpace(email),
	})
	if err != nil {
		return nil, uc.updateError(err, userID)
	}
	return user, nil
}

func (uc *userUseCase) UpdateAvatar(ctx context.Context, userID, avatarPath string) (*entity.User, error) {
	return uc.replaceImage(ctx, userID, avatarPath, "avatar", "Avatar file is missing")
}

func (uc *userUseCase) UpdateCoverImage(ctx context.Context, userID, coverImagePath string) (*entity.User, error) {
	return uc.replaceImage(ctx, userID, coverImagePath, "cover_image", "Cover image file is missing")
}

func (uc *userUseCase) replaceImage(ctx context.Context, userID, localPath, column, missing string) (*entity.User, error) {
	defer removeFiles(localPath)

	current, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "User")
	}
	if localPath == "" {
		return nil, apperror.BadRequest(missing)
	}

	image, err := uc.media.Upload(ctx, localPath, s3.ResourceImage)
	if err != nil {
		uc.logger.Error("Failed to upload %s for %s: %v", column, userID, err)
		return nil, apperror.Internal("Failed to upload image", err)
	}

	user, err := uc.userRepo.Update(ctx, userID, map[string]interface{}{column: image.URL})
	if err != nil {
		uc.discardMedia(ctx, image.URL)
		return nil, uc.updateError(err, userID)
	}

	previous := current.Avatar
	if column == "cover_image" {
		previous = current.CoverImage
	}
	uc.discardMedia(ctx, previous)
	return user, nil
}

func (uc *userUseCase) Delete(ctx context.Context, userID string) error {
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		uc.logger.Error("Failed to delete user %s: %v", userID, err)
		return apperror.Internal("Failed to delete user", err)
	}
	uc.logger.Info("User %s deleted", userID)
	return nil
}

func (uc *userUseCase) GetChannelProfile(ctx context.Context, viewerID, username string) (*entity.ChannelProfile, error) {
	if blank(username) {
		return nil, apperror.BadRequest("Username is missing")
	}

	profile, err := uc.userRepo.GetChannelProfile(ctx, strings.ToLower(strings.TrimSpace(username)), viewerID)
	if err != nil {
		return nil, lookupError(err, "Channel")
	}
	return profile, nil
}

func (uc *userUseCase) PrincipalExists(ctx context.Context, userID string) (bool, error) {
	return uc.userRepo.Exists(ctx, userID)
}

func (uc *userUseCase) issueTokens(ctx context.Context, user *entity.User) (*entity.AuthTokens, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return nil, apperror.Internal("Failed to generate tokens", err)
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return nil, apperror.Internal("Failed to generate tokens", err)
	}

	if _, err := uc.userRepo.Update(ctx, user.ID, map[string]interface{}{"refresh_token": refreshToken}); err != nil {
		return nil, uc.updateError(err, user.ID)
	}
	return &entity.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (uc *userUseCase) updateError(err error, userID string) error {
	switch {
	case errors.Is(err, persistent.ErrNotFound):
		return apperror.NotFound("User not found")
	case errors.Is(err, persistent.ErrDuplicate):
		return apperror.Conflict("Email is already in use")
	default:
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return apperror.Internal("Failed to update user", err)
	}
}

func (uc *userUseCase) discardMedia(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := uc.media.Delete(ctx, url); err != nil {
			uc.logger.Warn("Failed to delete media %s: %v", url, err)
		}
	}
}
