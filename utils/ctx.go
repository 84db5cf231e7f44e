package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the account id the auth middleware stored on the
// request context. 0 means unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
