package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultStream is the Redis stream report events are appended to.
const DefaultStream = "report-events"

// RedisStreamPublisher appends messages to a Redis stream with XADD.
type RedisStreamPublisher struct {
	client *redis.Client
	stream string
}

// NewRedisStreamPublisher connects to Redis at url (redis://host:port/db).
func NewRedisStreamPublisher(ctx context.Context, url, stream string) (*RedisStreamPublisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if stream == "" {
		stream = DefaultStream
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	slog.Info("redis notifier connected", "stream", stream)

	return &RedisStreamPublisher{client: client, stream: stream}, nil
}

// Publish implements Publisher.
func (p *RedisStreamPublisher) Publish(ctx context.Context, msg Message) error {
	payload, err := msg.encode()
	if err != nil {
		return err
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"event_id":  msg.EventID,
			"type":      msg.Type,
			"report_id": msg.ReportID,
			"payload":   string(payload),
			"at":        msg.At.UTC().Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}

// Close implements Publisher.
func (p *RedisStreamPublisher) Close() error {
	return p.client.Close()
}
