package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	errx "go-flowershop/internal/core/error"
	"go-flowershop/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	channel string
	payload []byte
	err     error
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.payload, _ = message.([]byte)
	cmd := redis.NewIntCmd(ctx, "publish", channel, message)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestRedisPublisherSendsJSON(t *testing.T) {
	fake := &fakeRedis{}
	pub := NewRedisPublisher(fake, "flowershop:orders")

	err := pub.Publish(context.Background(), OrderEvent{
		Kind:    OrderCreated,
		OrderID: "ORD-004",
		Status:  models.OrderStatusPending,
		Total:   "25",
	})
	require.NoError(t, err)
	assert.Equal(t, "flowershop:orders", fake.channel)

	var got OrderEvent
	require.NoError(t, json.Unmarshal(fake.payload, &got))
	assert.Equal(t, OrderCreated, got.Kind)
	assert.Equal(t, "ORD-004", got.OrderID)
	assert.False(t, got.At.IsZero())
}

func TestRedisPublisherWrapsFailures(t *testing.T) {
	boom := errors.New("connection refused")
	pub := NewRedisPublisher(&fakeRedis{err: boom}, "c")

	err := pub.Publish(context.Background(), OrderEvent{Kind: OrderDeleted, OrderID: "ORD-001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var appErr *errx.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errx.RedisErrorMessage, appErr.Message)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(context.Background(), OrderEvent{}))
}
