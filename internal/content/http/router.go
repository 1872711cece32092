package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/content/domain"
	"github.com/nexus-blend/showcase-api/internal/content/service"
)

// Register attaches every content route under api. publicWrite wraps the
// only unauthenticated write, the contact form.
func (h *Handler) Register(api *gin.RouterGroup, publicWrite ...gin.HandlerFunc) {
	registerManaged(api, h.content.Projects, h.requireAuth)
	registerManaged(api, h.content.Services, h.requireAuth)
	registerManaged(api, h.content.Team, h.requireAuth)
	registerManaged(api, h.content.Testimonials, h.requireAuth)

	contacts := resource[domain.ContactSubmission, domain.ContactInput]{coll: h.content.Contacts}
	rg := api.Group("/" + string(h.content.Contacts.Kind()))
	rg.POST("", append(publicWrite, contacts.create)...)
	rg.GET("", h.requireAuth, contacts.list)
	rg.GET("/:id", h.requireAuth, contacts.get)
	rg.DELETE("/:id", h.requireAuth, contacts.delete)
}

// registerManaged wires the admin-managed CRUD set: public reads, token
// guarded writes.
func registerManaged[T any, In service.Input[T]](api *gin.RouterGroup, coll *service.Collection[T, In], requireAuth gin.HandlerFunc) {
	r := resource[T, In]{coll: coll}
	rg := api.Group("/" + string(coll.Kind()))

	rg.GET("", r.list)
	rg.GET("/:id", r.get)
	rg.POST("", requireAuth, r.create)
	rg.PUT("/:id", requireAuth, r.update)
	rg.DELETE("/:id", requireAuth, r.delete)
}
