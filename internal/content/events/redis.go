package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nexus-blend/showcase-api/internal/content/domain"
	"github.com/redis/go-redis/v9"
)

const channelPrefix = "nexus:events:" // Pub/Sub channel per kind: nexus:events:{kind}

// RedisPublisher publishes events on a Redis Pub/Sub channel per kind.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, Channel(e.Kind), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", e.Kind, err)
	}
	return nil
}

func (p *RedisPublisher) Status(ctx context.Context) string {
	pingCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := p.client.Ping(pingCtx).Err(); err != nil {
		return "down"
	}
	return "up"
}

// Channel returns the Pub/Sub channel carrying events of kind.
func Channel(kind domain.Kind) string {
	return fmt.Sprintf("%s%s", channelPrefix, kind)
}
