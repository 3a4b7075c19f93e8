package middleware

import (
	"context"
	"strings"

	"videotube/pkg/apperror"
	"videotube/pkg/jwt"
	"videotube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	// WebSocketTokenParam carries the access token on WebSocket upgrades only.
	WebSocketTokenParam = "token"

	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// PrincipalChecker confirms that the subject of a valid token still exists.
type PrincipalChecker interface {
	PrincipalExists(ctx context.Context, userID string) (bool, error)
}

// AuthMiddleware resolves the bearer credential from the accessToken cookie,
// the Authorization header or, on WebSocket upgrades, the token query
// parameter, and stores the principal on the context.
// principals may be nil, in which case token validity alone is enough.
func AuthMiddleware(jwtService *jwt.Service, principals PrincipalChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			response.AbortWithError(c, apperror.Unauthenticated("Unauthorized request"))
			return
		}

		claims, err := jwtService.ValidateAccessToken(token)
		if err != nil {
			response.AbortWithError(c, apperror.Unauthenticated("Invalid access token"))
			return
		}

		if principals != nil {
			exists, err := principals.PrincipalExists(c.Request.Context(), claims.UserID)
			if err != nil {
				response.AbortWithError(c, apperror.Internal("Failed to verify access token", err))
				return
			}
			if !exists {
				response.AbortWithError(c, apperror.Unauthenticated("Invalid access token"))
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie, true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		// browsers cannot set headers on a WebSocket handshake
		if websocket.IsWebSocketUpgrade(c.Request) {
			if token := c.Query(WebSocketTokenParam); token != "" {
				return token, true
			}
		}
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
