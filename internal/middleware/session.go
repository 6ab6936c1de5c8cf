// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the opaque cart session token the client persists
// locally. The token is created once and never rotated.
const SessionHeader = "X-Cart-Session"

// CartSession resolves the caller's cart session. If the header is missing
// a fresh token is minted and echoed back so the client can store it.
// Resolution is idempotent and never errors.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set("cart_session", sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

func GetCartSession(c *gin.Context) string {
	if v, exists := c.Get("cart_session"); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
