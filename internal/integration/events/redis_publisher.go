// Package events publishes user-facing notification events to Redis.
// Subscribers (web clients, the CLI) surface them as toasts.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
)

const channelPrefix = "notifications:"

// redisPublisher implements the adapter.EventPublisher interface on top of
// Redis pub/sub. Publishing is fire-and-forget: a failed publish is logged
// and never propagated to the caller.
type redisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a new Redis-backed event publisher.
func NewRedisPublisher(client *redis.Client) adapter.EventPublisher {
	return &redisPublisher{
		client: client,
	}
}

// Publish sends the event to the user's notification channel.
func (p *redisPublisher) Publish(ctx context.Context, userID uuid.UUID, event adapter.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal notification event", "error", err, "user_id", userID)
		return
	}

	channel := channelPrefix + userID.String()
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		slog.Warn("Failed to publish notification event", "error", err, "channel", channel)
	}
}
