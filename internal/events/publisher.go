// Package events announces order lifecycle changes to other processes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-flowershop/internal/config"
	errx "go-flowershop/internal/core/error"
	"go-flowershop/internal/models"
	logx "go-flowershop/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type Kind string

const (
	OrderCreated       Kind = "order.created"
	OrderStatusChanged Kind = "order.status_changed"
	OrderDeleted       Kind = "order.deleted"
)

type OrderEvent struct {
	Kind      Kind               `json:"kind"`
	OrderID   string             `json:"order_id"`
	SessionID string             `json:"session_id,omitempty"`
	Status    models.OrderStatus `json:"status,omitempty"`
	Total     string             `json:"total,omitempty"`
	At        time.Time          `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, OrderEvent) error { return nil }

// redisPublisher is the slice of redis.Cmdable the feed needs.
type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher pushes events as JSON onto a Redis pub/sub channel.
type RedisPublisher struct {
	rdb     redisPublisher
	channel string
}

var (
	_ Publisher = Nop{}
	_ Publisher = (*RedisPublisher)(nil)
)

func NewRedisPublisher(rdb redisPublisher, channel string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event OrderEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.rdb.Publish(ctx, p.channel, b).Err(); err != nil {
		logx.Error().Err(err).Str("channel", p.channel).Str("kind", string(event.Kind)).Msg("failed to publish order event")
		return errx.WrapRedis(err)
	}
	return nil
}

// NewRedisClient dials and pings the configured Redis server.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	opts.DialTimeout = cfg.DialTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errx.WrapRedis(err)
	}
	return client, nil
}
