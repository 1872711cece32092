package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/api/http/respond"
	"github.com/nexus-blend/showcase-api/internal/content/domain"
)

func (r resource[T, In]) list(c *gin.Context) {
	c.JSON(http.StatusOK, r.coll.List(c.Request.Context()))
}

func (r resource[T, In]) get(c *gin.Context) {
	rec, err := r.coll.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, r.op("get"), err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (r resource[T, In]) create(c *gin.Context) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.BadBody(c)
		return
	}

	rec, err := r.coll.Create(c.Request.Context(), in)
	if err != nil {
		respond.Error(c, r.op("create"), err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (r resource[T, In]) update(c *gin.Context) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.BadBody(c)
		return
	}

	rec, err := r.coll.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respond.Error(c, r.op("update"), err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (r resource[T, In]) delete(c *gin.Context) {
	id := c.Param("id")
	if !r.coll.Delete(c.Request.Context(), id) {
		respond.Error(c, r.op("delete"), fmt.Errorf("%s %q: %w", r.coll.Kind(), id, domain.ErrNotFound))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s %s deleted", r.coll.Kind(), id)})
}

func (r resource[T, In]) op(action string) string {
	return action + "_" + string(r.coll.Kind())
}
