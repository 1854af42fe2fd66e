package realtime

import (
	"context"
	"errors"
	"sync"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fittrack-api/pkg/logger"
)

const RedisRoomChannel = "fittrack:realtime:rooms"

// RoomEvent is a frame addressed to every member of a room, optionally
// skipping the connection that caused it.
type RoomEvent struct {
	RoomId         string          `json:"roomId"`
	Event          string          `json:"event"`
	Data           json.RawMessage `json:"data"`
	ExceptClientId string          `json:"exceptClientId,omitempty"`
}

type DeliverFunc func(event *RoomEvent)

type Broker interface {
	Start(ctx context.Context, deliver DeliverFunc) error
	Publish(ctx context.Context, event *RoomEvent) error
	Close() error
}

type localBroker struct {
	mu      sync.RWMutex
	deliver DeliverFunc
}

// NewLocalBroker delivers room events synchronously inside this process.
func NewLocalBroker() Broker {
	return &localBroker{}
}

func (b *localBroker) Start(_ context.Context, deliver DeliverFunc) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.deliver = deliver
	return nil
}

func (b *localBroker) Publish(_ context.Context, event *RoomEvent) error {
	b.mu.RLock()
	deliver := b.deliver
	b.mu.RUnlock()

	if deliver != nil {
		deliver(event)
	}
	return nil
}

func (b *localBroker) Close() error {
	return nil
}

type redisBroker struct {
	redisClient *redis.Client
	channel     string

	pubsub *redis.PubSub
	done   chan struct{}
}

// NewRedisBroker fans room events out through a Redis channel so that every
// instance delivers to the members connected to it. The broker owns
// redisClient and closes it on Close.
func NewRedisBroker(redisClient *redis.Client) Broker {
	return &redisBroker{
		redisClient: redisClient,
		channel:     RedisRoomChannel,
		done:        make(chan struct{}),
	}
}

func (b *redisBroker) Start(ctx context.Context, deliver DeliverFunc) error {
	b.pubsub = b.redisClient.Subscribe(ctx, b.channel)

	// Wait for the subscription to be confirmed before anything is published.
	_, err := b.pubsub.Receive(ctx)
	if err != nil {
		_ = b.pubsub.Close()
		b.pubsub = nil
		return err
	}

	log := logger.FromContext(ctx)
	go func() {
		defer close(b.done)
		for msg := range b.pubsub.Channel() {
			var event RoomEvent
			err := json.Unmarshal([]byte(msg.Payload), &event)
			if err != nil {
				log.Warnw("malformed room event on redis channel", zap.Error(err))
				continue
			}

			deliver(&event)
		}
	}()

	return nil
}

func (b *redisBroker) Publish(ctx context.Context, event *RoomEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return b.redisClient.Publish(ctx, b.channel, payload).Err()
}

func (b *redisBroker) Close() error {
	var errs []error
	if b.pubsub != nil {
		err := b.pubsub.Close()
		if err != nil {
			errs = append(errs, err)
		}
		<-b.done
	}

	err := b.redisClient.Close()
	if err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
