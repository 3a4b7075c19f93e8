package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"videotube/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPrincipals struct {
	exists bool
	err    error
}

func (s stubPrincipals) PrincipalExists(ctx context.Context, userID string) (bool, error) {
	return s.exists, s.err
}

func setupTestRouter(jwtService *jwt.Service, principals PrincipalChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(jwtService, principals))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
	})
	return router
}

func newJWT() *jwt.Service {
	return jwt.NewService("test-access", "test-refresh", time.Hour, time.Hour)
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	jwtService := newJWT()
	token, _ := jwtService.GenerateAccessToken("user-123", "alice")
	router := setupTestRouter(jwtService, stubPrincipals{exists: true})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	jwtService := newJWT()
	token, _ := jwtService.GenerateAccessToken("user-123", "alice")
	router := setupTestRouter(jwtService, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_NoCredential(t *testing.T) {
	router := setupTestRouter(newJWT(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAuthMiddleware_InvalidFormat(t *testing.T) {
	router := setupTestRouter(newJWT(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupTestRouter(newJWT(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	jwtService := newJWT()
	refresh, _ := jwtService.GenerateRefreshToken("user-123")
	router := setupTestRouter(jwtService, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_DeletedPrincipal(t *testing.T) {
	jwtService := newJWT()
	token, _ := jwtService.GenerateAccessToken("user-123", "alice")
	router := setupTestRouter(jwtService, stubPrincipals{exists: false})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_PrincipalLookupFails(t *testing.T) {
	jwtService := newJWT()
	token, _ := jwtService.GenerateAccessToken("user-123", "alice")
	router := setupTestRouter(jwtService, stubPrincipals{err: errors.New("db down")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRateLimitMiddleware_NilClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(nil, 1, time.Minute))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitKey_PrefersPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/videos", nil)
	c.Request.RemoteAddr = "10.0.0.7:5555"

	assert.Equal(t, "rate_limit:/api/v1/videos:10.0.0.7", rateLimitKey(c, "/api/v1/videos"))

	c.Set(ContextUserID, "user-1")
	assert.Equal(t, "rate_limit:/api/v1/videos:user:user-1", rateLimitKey(c, "/api/v1/videos"))
}

func TestAuthMiddleware_QueryTokenOnlyOnWebSocketUpgrade(t *testing.T) {
	jwtService := newJWT()
	token, _ := jwtService.GenerateAccessToken("user-123", "alice")
	router := setupTestRouter(jwtService, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test?token="+token, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/test?token="+token, nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}
