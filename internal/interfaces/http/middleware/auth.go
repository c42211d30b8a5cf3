package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"corpsbank/internal/infrastructure/auth"
	"corpsbank/internal/shared/logger"
	"corpsbank/internal/shared/utils"
)

// AdminAuthMiddleware gates the administrative routes behind the session
// token issued at login.
type AdminAuthMiddleware struct {
	sessions   *auth.SessionService
	cookieName string
	logger     logger.Interface
}

func NewAdminAuthMiddleware(sessions *auth.SessionService, cookieName string, log logger.Interface) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     log,
	}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(m.cookieName)

		// Fallback to Authorization header for non-browser clients
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing session token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}

			token = parts[1]
		}

		claims, err := m.sessions.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify session token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set("admin_user", claims.Username)
		c.Next()
	}
}
