package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/rid", func(c *gin.Context) {
		c.String(http.StatusOK, logging.RequestID(c.Request.Context()))
	})

	t.Run("echoes incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rid", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(HeaderRequestID))
		assert.Equal(t, "abc-123", rr.Body.String())
	})

	t.Run("generates id when absent", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rid", nil))

		rid := rr.Header().Get(HeaderRequestID)
		assert.Len(t, rid, 32)
		assert.Equal(t, rid, rr.Body.String())
	})
}
