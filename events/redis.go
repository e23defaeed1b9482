package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisPublisher publishes JSON messages over Redis pub/sub, one channel
// per topic.
type RedisPublisher struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedisPublisher(client *redis.Client, log zerolog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, log: log.With().Str("component", "events").Logger()}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic Topic, payload interface{}) error {
	msg := NewMessage(topic, payload)
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", topic, err)
	}
	receivers, err := p.client.Publish(ctx, string(topic), body).Result()
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	p.log.Debug().Str("topic", string(topic)).Str("message_id", msg.ID).Int64("receivers", receivers).Msg("event published")
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
