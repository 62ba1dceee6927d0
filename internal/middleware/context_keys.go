package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's ID. A typed key avoids
// collisions with other context values.
const userIDKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user ID set by AuthMiddleware.
// The second return value reports whether an ID was present.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		id, ok := v.(string)
		return id, ok && id != ""
	}
	// Fall back to the request context, which AuthMiddleware also populates.
	if v := c.Request.Context().Value(userIDKey); v != nil {
		id, ok := v.(string)
		return id, ok && id != ""
	}
	return "", false
}
