package http

import "github.com/nexus-blend/showcase-api/internal/auth/service"

// Handler bundles the dependencies for auth HTTP endpoints.
type Handler struct {
	authService *service.AuthService
}

func New(authService *service.AuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
