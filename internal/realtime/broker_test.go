//go:build unit

package realtime

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack-api/internal/thread"
)

func TestLocalBroker(t *testing.T) {
	broker := NewLocalBroker()

	t.Run("publish before start should be dropped", func(t *testing.T) {
		err := broker.Publish(context.Background(), &RoomEvent{RoomId: TestRoomId})

		assert.NoError(t, err)
	})

	t.Run("should deliver synchronously after start", func(t *testing.T) {
		var delivered []*RoomEvent
		require.NoError(t, broker.Start(context.Background(), func(event *RoomEvent) {
			delivered = append(delivered, event)
		}))

		event := &RoomEvent{RoomId: TestRoomId, Event: EventMessageDeleted}
		require.NoError(t, broker.Publish(context.Background(), event))

		assert.Equal(t, []*RoomEvent{event}, delivered)
		assert.NoError(t, broker.Close())
	})
}

func TestRedisBroker(t *testing.T) {
	t.Run("should fan out room events across gateways", func(t *testing.T) {
		server, _ := newTestRedis(t)
		repository := newMemoryThreadRepository(newTestThread(TestRoomId))
		first := newRedisGateway(t, repository, server)
		second := newRedisGateway(t, repository, server)

		connA := connect(t, first, "client-a")
		connB := connect(t, second, "client-b")
		joinRoom(t, connA, TestRoomId)
		joinRoom(t, connB, TestRoomId)

		connA.send(t, EventSendMessage, &TestSendMessagePayload)

		assert.Equal(t, EventNewMessage, connA.next(t).Event)

		received := connB.next(t)
		require.Equal(t, EventMessageReceived, received.Event)
		var data MessageData
		decodeData(t, received, &data)
		assert.Equal(t, TestText, data.Message.Message)

		connA.send(t, EventDeleteMessage, &DeleteMessagePayload{RoomId: TestRoomId, MessageId: data.Message.Id})

		assert.Equal(t, EventMessageDeleted, connA.next(t).Event)
		assert.Equal(t, EventMessageDeleted, connB.next(t).Event)
	})

	t.Run("when redis is unreachable start should fail", func(t *testing.T) {
		server, redisClient := newTestRedis(t)
		server.Close()

		_, err := NewGateway(context.Background(), thread.NewService(newMemoryThreadRepository(), nil), NewRedisBroker(redisClient))

		assert.Error(t, err)
	})

	t.Run("close without start should release the client", func(t *testing.T) {
		server, _ := newTestRedis(t)
		redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})

		assert.NoError(t, NewRedisBroker(redisClient).Close())
		assert.ErrorIs(t, redisClient.Ping(context.Background()).Err(), redis.ErrClosed)
	})

	t.Run("close should stop the subscription and release the client", func(t *testing.T) {
		server, _ := newTestRedis(t)
		redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})
		broker := NewRedisBroker(redisClient)
		require.NoError(t, broker.Start(context.Background(), func(*RoomEvent) {}))

		assert.NoError(t, broker.Close())
		assert.ErrorIs(t, redisClient.Ping(context.Background()).Err(), redis.ErrClosed)
	})
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = redisClient.Close()
	})

	return server, redisClient
}

// newRedisGateway gives each gateway its own client, as separate instances
// would have.
func newRedisGateway(t *testing.T, repository thread.Repository, server *miniredis.Miniredis) *Gateway {
	redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})
	gateway, err := NewGateway(context.Background(), thread.NewService(repository, nil), NewRedisBroker(redisClient))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = gateway.Close()
	})

	return gateway
}
