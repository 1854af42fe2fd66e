//go:build unit

package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"fittrack-api/internal/thread"
	"fittrack-api/pkg/cerror"
)

const (
	TestRoomId   = "room_1"
	TestText     = "Morning run done"
	eventTimeout = 2 * time.Second
)

var TestSendMessagePayload = SendMessagePayload{
	RoomId:     TestRoomId,
	SenderId:   "user-1",
	SenderName: "alice",
	SenderRole: "member",
	Message:    TestText,
}

var errConnClosed = errors.New("connection closed")

// fakeConn feeds frames to the gateway and records what it writes back.
type fakeConn struct {
	incoming  chan []byte
	outgoing  chan Envelope
	closed    chan struct{}
	closeOnce sync.Once
	stalled   chan struct{}
	stallOnce sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		incoming: make(chan []byte, 16),
		outgoing: make(chan Envelope, 16),
		closed:   make(chan struct{}),
		stalled:  make(chan struct{}),
	}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case frame := <-c.incoming:
		return 1, frame, nil
	case <-c.closed:
		return 0, nil, errConnClosed
	}
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	select {
	case <-c.stalled:
		<-c.closed
		return errConnClosed
	default:
	}

	var envelope Envelope
	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return err
	}

	select {
	case c.outgoing <- envelope:
		return nil
	case <-c.closed:
		return errConnClosed
	}
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
	return nil
}

// stall makes the peer stop reading: every later write blocks until the
// connection is closed.
func (c *fakeConn) stall() {
	c.stallOnce.Do(func() {
		close(c.stalled)
	})
}

func (c *fakeConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *fakeConn) send(t *testing.T, event string, data interface{}) {
	frame, err := encodeEnvelope(event, data)
	require.NoError(t, err)

	c.incoming <- frame
}

func (c *fakeConn) next(t *testing.T) Envelope {
	select {
	case envelope := <-c.outgoing:
		return envelope
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for socket event")
		return Envelope{}
	}
}

func (c *fakeConn) assertSilent(t *testing.T) {
	select {
	case envelope := <-c.outgoing:
		t.Fatalf("unexpected socket event %q", envelope.Event)
	default:
	}
}

func decodeData(t *testing.T, envelope Envelope, target interface{}) {
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

// connect serves conn on the gateway and waits until it is registered.
func connect(t *testing.T, gateway *Gateway, clientId string) *fakeConn {
	conn := newFakeConn()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = gateway.Serve(context.Background(), clientId, conn)
	}()
	t.Cleanup(func() {
		_ = conn.Close()
		<-done
	})

	require.Eventually(t, func() bool {
		gateway.mu.RLock()
		defer gateway.mu.RUnlock()
		_, ok := gateway.clients[clientId]
		return ok
	}, eventTimeout, 5*time.Millisecond)

	return conn
}

func joinRoom(t *testing.T, conn *fakeConn, roomId string) {
	conn.send(t, EventJoinThread, roomId)
	envelope := conn.next(t)
	require.Equal(t, EventJoinedThread, envelope.Event)
}

// memoryThreadRepository keeps threads in a map behind a mutex. Each call is
// atomic like a single document update.
type memoryThreadRepository struct {
	mu      sync.Mutex
	threads map[string]*thread.Thread
}

func newMemoryThreadRepository(threads ...*thread.Thread) *memoryThreadRepository {
	repository := &memoryThreadRepository{threads: make(map[string]*thread.Thread)}
	for _, t := range threads {
		repository.threads[t.RoomId] = t
	}

	return repository
}

func newTestThread(roomId string) *thread.Thread {
	return &thread.Thread{
		Id:     "thread-" + roomId,
		RoomId: roomId,
		UserId: "user-1",
		Title:  "Running club",
		Type:   thread.TypeWorkout,
		Messages: []thread.Message{
			thread.NewMessage(TestSendMessagePayload.Sender(), "first message of the room", time.UnixMilli(1700000000000)),
		},
	}
}

func (r *memoryThreadRepository) InsertThread(_ context.Context, t *thread.Thread) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.threads[t.RoomId] = t
	return nil
}

func (r *memoryThreadRepository) FindThreadWithId(_ context.Context, threadId string) (*thread.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.threads {
		if t.Id == threadId {
			return r.copyOf(t), nil
		}
	}
	return nil, cerror.NotFound("Thread not found")
}

func (r *memoryThreadRepository) FindThreadWithRoomId(_ context.Context, roomId string) (*thread.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.threads[roomId]
	if !ok {
		return nil, cerror.NotFound("Thread not found")
	}
	return r.copyOf(t), nil
}

func (r *memoryThreadRepository) FindAllThreads(_ context.Context) ([]*thread.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	threads := make([]*thread.Thread, 0, len(r.threads))
	for _, t := range r.threads {
		threads = append(threads, r.copyOf(t))
	}
	return threads, nil
}

func (r *memoryThreadRepository) AppendMessage(_ context.Context, roomId string, message *thread.Message, updatedAt int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.threads[roomId]
	if !ok {
		return cerror.NotFound("Thread not found")
	}
	t.Messages = append(t.Messages, *message)
	t.UpdatedAt = updatedAt
	return nil
}

func (r *memoryThreadRepository) MarkMessageDeleted(_ context.Context, roomId, messageId string, updatedAt int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.threads[roomId]
	if !ok {
		return cerror.NotFound("Message not found")
	}
	for i := range t.Messages {
		if t.Messages[i].Id == messageId {
			t.Messages[i].IsDeleted = true
			t.Messages[i].Message = thread.Tombstone
			t.UpdatedAt = updatedAt
			return nil
		}
	}
	return cerror.NotFound("Message not found")
}

func (r *memoryThreadRepository) DeleteThreadWithId(_ context.Context, threadId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for roomId, t := range r.threads {
		if t.Id == threadId {
			delete(r.threads, roomId)
			return nil
		}
	}
	return cerror.NotFound("Thread not found")
}

func (r *memoryThreadRepository) EnsureIndexes(_ context.Context) error {
	return nil
}

func (r *memoryThreadRepository) copyOf(t *thread.Thread) *thread.Thread {
	c := *t
	c.Messages = append([]thread.Message(nil), t.Messages...)
	return &c
}

func newTestGateway(t *testing.T, repository thread.Repository) *Gateway {
	gateway, err := NewGateway(context.Background(), thread.NewService(repository, nil), NewLocalBroker())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = gateway.Close()
	})

	return gateway
}
