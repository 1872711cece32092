package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/content/domain"
)

type HealthResponse struct {
	Status    string              `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
	Service   string              `json:"service"`
	Version   string              `json:"version"`
	Events    string              `json:"events,omitempty"`
	Records   map[domain.Kind]int `json:"records,omitempty"`
}

// RecordCounter reports stored records per content kind.
type RecordCounter interface {
	Counts() map[domain.Kind]int
}

// StatusReporter reports the state of an optional dependency.
type StatusReporter interface {
	Status(ctx context.Context) string
}

type HealthHandler struct {
	serviceName string
	version     string
	records     RecordCounter
	events      StatusReporter
}

// NewHealthHandler builds the health endpoint. records and events may be nil.
func NewHealthHandler(serviceName, version string, records RecordCounter, events StatusReporter) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		records:     records,
		events:      events,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
	}
	if h.events != nil {
		resp.Events = h.events.Status(c.Request.Context())
	}
	if h.records != nil {
		resp.Records = h.records.Counts()
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
