package events

import (
	"context"
	"time"

	"github.com/nexus-blend/showcase-api/internal/content/domain"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event announces a committed change to one content record.
type Event struct {
	Kind   domain.Kind `json:"kind"`
	Action Action      `json:"action"`
	ID     string      `json:"id"`
	At     time.Time   `json:"at"`
}

// Publisher fans content events out to interested listeners.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	// Status is "up", "down" or "disabled".
	Status(ctx context.Context) string
}

// NopPublisher drops every event. Used when no event bus is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Status(context.Context) string { return "disabled" }
