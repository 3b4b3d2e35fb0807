package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"impactio/internal/models"
)

// SessionCookie carries the token for browser clients.
const SessionCookie = "session"

type Authenticator interface {
	Authenticate(token string) (*models.Session, error)
}

// список публичных эндпоинтов, которые не требуют токена
func isPublicPath(path string) bool {
	switch path {
	case "/login", "/healthz", "/metrics":
		return true
	}
	return strings.HasPrefix(path, "/swagger")
}

// tokenFromRequest: сначала Authorization: Bearer, потом cookie
func tokenFromRequest(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if v, err := c.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(v)
	}
	return ""
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// AuthMiddleware resolves the session for every non-public request.
// Browsers without a session are redirected to loginPath, API clients get 401.
func AuthMiddleware(auth Authenticator, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			deny(c, loginPath, "Missing or invalid credentials")
			return
		}
		sess, err := auth.Authenticate(tokenStr)
		if err != nil || !sess.Valid() {
			zap.L().Debug("auth: token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			deny(c, loginPath, "Invalid or expired token")
			return
		}

		SetSession(c, sess)
		c.Next()
	}
}

func deny(c *gin.Context, loginPath, msg string) {
	if wantsHTML(c) && loginPath != "" {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
