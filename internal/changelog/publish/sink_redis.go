package publish

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSink delivers messages over Redis pub/sub. This is the production
// sink for browser-facing realtime subscribers.
type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

// envelope is the wire shape subscribers receive: the event names the
// frontend binds to plus the already-rendered record payload.
type envelope struct {
	Events  []string        `json:"events"`
	Payload json.RawMessage `json:"payload"`
}

func (s *RedisSink) Publish(ctx context.Context, channel string, events []string, payload []byte) error {
	msg, err := json.Marshal(envelope{Events: events, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := s.client.Publish(ctx, channel, msg).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	return nil
}
