package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/content/service"
)

// Handler bundles the dependencies for content HTTP endpoints.
type Handler struct {
	content     *service.ContentService
	requireAuth gin.HandlerFunc
}

func New(content *service.ContentService, requireAuth gin.HandlerFunc) *Handler {
	return &Handler{content: content, requireAuth: requireAuth}
}

// resource serves one content kind over a service Collection.
type resource[T any, In service.Input[T]] struct {
	coll *service.Collection[T, In]
}
