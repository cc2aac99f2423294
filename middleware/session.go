package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "verve_session"

// VisitorSessionMiddleware assigns every visitor an opaque session id
// cookie. Cart, wishlist and view state are all keyed by it.
func VisitorSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.Must(uuid.NewV7()).String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sessionID, 30*24*60*60, "/", "", false, true)
		}
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// GetSessionIDFromContext returns the visitor session id.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("sessionID")
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}
