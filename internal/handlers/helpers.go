package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"impactio/internal/export"
	"impactio/internal/middleware"
	"impactio/internal/models"
	"impactio/internal/services"
)

// requireSession достаёт сессию, положенную AuthMiddleware; без неё отвечает 401
func requireSession(c *gin.Context) (*models.Session, bool) {
	sess := middleware.SessionFrom(c)
	if !sess.Valid() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return sess, true
}

// statusFor maps service errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case eris.Is(err, services.ErrNoSession),
		eris.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case eris.Is(err, export.ErrUnknownFormat),
		eris.Is(err, services.ErrInvalidRecipient):
		return http.StatusBadRequest
	case eris.Is(err, services.ErrMailerDisabled),
		eris.Is(err, services.ErrNotifierDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, op string, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("op", op), zap.Error(err))
		msg = "Internal server error"
	} else if cause := eris.Cause(err); cause != nil {
		msg = cause.Error()
	}
	_ = c.Error(err)
	c.JSON(code, gin.H{"error": msg})
}
