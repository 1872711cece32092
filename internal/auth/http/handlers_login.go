package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/api/http/respond"
	"github.com/nexus-blend/showcase-api/internal/auth"
	"github.com/nexus-blend/showcase-api/internal/logging"
)

// Login exchanges username/password for a signed access token.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadBody(c)
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		respond.Message(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	res, err := h.authService.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		respond.Error(c, "login", err)
		return
	}

	logging.FromContext(c.Request.Context()).Infof("login", "user=%s", res.User.Username)
	c.JSON(http.StatusOK, res)
}

// Me returns the identity carried by the caller's token.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": auth.UserID(c), "username": auth.Username(c)}})
}
