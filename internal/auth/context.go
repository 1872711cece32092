package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "auth_user_id"
	CtxUsername = "auth_username"
)

// UserID returns the id of the authenticated admin, set by RequireAuth.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// Username returns the username of the authenticated admin.
func Username(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUsername))
}
