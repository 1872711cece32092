package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/auth/middleware"
)

// Register attaches auth routes. public wraps routes reachable without a
// token, e.g. with a rate limiter.
func (h *Handler) Register(rg *gin.RouterGroup, public ...gin.HandlerFunc) {
	rg.POST("/login", append(public, h.Login)...)
	rg.GET("/me", middleware.RequireAuth(h.authService), h.Me)
}
