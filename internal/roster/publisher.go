// Package roster publishes activity membership changes for other instances and consumers.
package roster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	channelPrefix  = "activities:"
	publishTimeout = 5 * time.Second
)

// Event types.
const (
	EventSignedUp     = "signed_up"
	EventUnregistered = "unregistered"
)

// Event is one committed membership change.
type Event struct {
	Type     string    `json:"event"`
	Activity string    `json:"activity"`
	Email    string    `json:"email"`
	At       time.Time `json:"at"`
}

// Publisher is notified after a signup or unregister has been committed.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Channel returns the Redis channel for an activity's roster events.
func Channel(activity string) string {
	return channelPrefix + activity
}

// NopPublisher drops events. Used when Redis is not configured.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, Event) error { return nil }

// RedisPublisher implements Publisher using Redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisPublisher creates a Redis-backed roster publisher.
func NewRedisPublisher(client *redis.Client, logger *zap.Logger) *RedisPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPublisher{client: client, logger: logger}
}

// Publish sends ev to the activity's channel.
func (r *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	body, err := encode(ev)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := r.client.Publish(ctx, Channel(ev.Activity), body).Err(); err != nil {
		return err
	}
	r.logger.Debug("roster event published", zap.String("event", ev.Type), zap.String("activity", ev.Activity))
	return nil
}

func encode(ev Event) ([]byte, error) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	return json.Marshal(ev)
}
