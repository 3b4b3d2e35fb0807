package middleware

import (
	"github.com/gin-gonic/gin"

	"impactio/internal/models"
)

const sessionKey = "session"

func SetSession(c *gin.Context, sess *models.Session) {
	c.Set(sessionKey, sess)
	c.Set("user_id", sess.UserID)
}

// SessionFrom returns the session placed by AuthMiddleware, or nil.
func SessionFrom(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}
