package middleware

import "github.com/gin-gonic/gin"

// usernameCtxKey is the key under which the authenticated username is stored
// in the request context.
const usernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username set by
// AuthMiddleware. The second return value reports whether it was present.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(usernameCtxKey)
	if val == nil {
		return "", false
	}
	username, ok := val.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
