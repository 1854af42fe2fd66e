package realtime

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

const (
	outboundQueueSize = 64
	writeTimeout      = 10 * time.Second
)

var (
	ErrClientClosed     = errors.New("socket client is closed")
	ErrOutboundOverflow = errors.New("socket client outbound queue is full")
)

// Conn is the part of a websocket connection the gateway needs.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// deadlineConn is implemented by *websocket.Conn.
type deadlineConn interface {
	SetWriteDeadline(t time.Time) error
}

// Client queues outbound frames and writes them from its own goroutine, so a
// peer that stops reading only ever stalls itself. A full queue or a failed
// write closes the connection.
type Client struct {
	Id string

	conn      Conn
	outbound  chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient wraps conn. An empty id gets a random one.
func NewClient(id string, conn Conn) *Client {
	if id == "" {
		id = uuid.New().String()
	}

	return &Client{
		Id:       id,
		conn:     conn,
		outbound: make(chan []byte, outboundQueueSize),
		done:     make(chan struct{}),
	}
}

func (c *Client) Emit(event string, data interface{}) error {
	frame, err := encodeEnvelope(event, data)
	if err != nil {
		return err
	}

	return c.write(frame)
}

// write never blocks.
func (c *Client) write(frame []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.outbound <- frame:
		return nil
	case <-c.done:
		return ErrClientClosed
	default:
		_ = c.Close()
		return ErrOutboundOverflow
	}
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case frame := <-c.outbound:
			if deadline, ok := c.conn.(deadlineConn); ok {
				_ = deadline.SetWriteDeadline(time.Now().Add(writeTimeout))
			}

			err := c.conn.WriteMessage(websocket.TextMessage, frame)
			if err != nil {
				_ = c.Close()
				return
			}
		}
	}
}

// Close stops the writer and closes the connection, which ends its read loop.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})

	return err
}
