package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestNewService(t *testing.T) {
	service := newTestService()

	assert.NotNil(t, service)
	assert.Equal(t, []byte("access-secret"), service.accessSecret)
	assert.Equal(t, []byte("refresh-secret"), service.refreshSecret)
	assert.Equal(t, 24*time.Hour, service.RefreshTTL())
}

func TestGenerateAccessToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123", "alice")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateAccessToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123", "alice")
	assert.NoError(t, err)

	claims, err := service.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}

func TestValidateRefreshToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateRefreshToken("user-456")
	assert.NoError(t, err)

	claims, err := service.ValidateRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestValidate_TokenTypesAreNotInterchangeable(t *testing.T) {
	service := NewService("shared", "shared", time.Hour, time.Hour)

	refresh, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	_, err = service.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestValidateAccessToken_InvalidToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateAccessToken("invalid-token")
	assert.Error(t, err)

	_, err = service.ValidateAccessToken("")
	assert.Error(t, err)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1", "r1", time.Hour, time.Hour)
	service2 := NewService("secret-key-2", "r2", time.Hour, time.Hour)

	token, err := service1.GenerateAccessToken("user-123", "alice")
	assert.NoError(t, err)

	_, err = service2.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	service := NewService("access-secret", "refresh-secret", -time.Minute, time.Hour)

	token, err := service.GenerateAccessToken("user-123", "alice")
	assert.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.Error(t, err)
}
