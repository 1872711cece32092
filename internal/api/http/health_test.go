package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/content/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounts map[domain.Kind]int

func (f fixedCounts) Counts() map[domain.Kind]int { return f }

type fixedStatus string

func (f fixedStatus) Status(context.Context) string { return string(f) }

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewHealthHandler("test-service", "1.0.0", fixedCounts{domain.KindProjects: 9}, fixedStatus("disabled"))
	handler.RegisterRoutes(router)

	for _, path := range []string{"/health", "/healthz"} {
		req, err := http.NewRequest("GET", path, nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "test-service", response.Service)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "disabled", response.Events)
		assert.Equal(t, 9, response.Records[domain.KindProjects])
	}
}

func TestHealthCheckWithoutDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHealthHandler("svc", "2.0.0", nil, nil).RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "records")
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true

	handler := NewHealthHandler("test-service", "1.0.0", nil, nil)
	handler.RegisterRoutes(router)

	req, err := http.NewRequest("POST", "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
