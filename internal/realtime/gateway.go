package realtime

import (
	"context"
	"errors"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fittrack-api/internal/thread"
	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/logger"
	"fittrack-api/pkg/server"
)

var ErrGatewayClosed = errors.New("realtime gateway is closed")

// Gateway owns every live connection and its room memberships. It is built
// once at startup and closed at shutdown.
type Gateway struct {
	threadService thread.Service
	broker        Broker

	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client
	closed  bool
}

func NewGateway(ctx context.Context, threadService thread.Service, broker Broker) (*Gateway, error) {
	gateway := &Gateway{
		threadService: threadService,
		broker:        broker,
		clients:       make(map[string]*Client),
		rooms:         make(map[string]map[string]*Client),
	}

	err := broker.Start(ctx, gateway.deliver)
	if err != nil {
		return nil, err
	}

	return gateway, nil
}

// Serve runs the read loop of one connection until it fails or the gateway
// closes it. Events are handled in the order they are received.
func (g *Gateway) Serve(ctx context.Context, clientId string, conn Conn) error {
	client := NewClient(clientId, conn)
	err := g.register(client)
	if err != nil {
		_ = conn.Close()
		return err
	}
	go client.writeLoop()
	defer func() {
		g.unregister(client)
		_ = client.Close()
	}()

	log := logger.FromContext(ctx).With(zap.String("clientId", client.Id))
	ctx = logger.InjectContext(ctx, log)

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			log.Debugw("socket connection closed", zap.Error(err))
			return nil
		}

		g.dispatch(ctx, client, frame)
	}
}

func (g *Gateway) dispatch(ctx context.Context, client *Client, frame []byte) {
	log := logger.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("socket event handler panicked", zap.Any("panic", r))
			g.emitError(ctx, client, ErrInternal)
		}
	}()

	var envelope Envelope
	err := json.Unmarshal(frame, &envelope)
	if err != nil || envelope.Event == "" {
		g.emitError(ctx, client, ErrMalformedEvent)
		return
	}

	switch envelope.Event {
	case EventJoinThread:
		g.handleJoinThread(ctx, client, envelope.Data)
	case EventSendMessage:
		g.handleSendMessage(ctx, client, envelope.Data)
	case EventDeleteMessage:
		g.handleDeleteMessage(ctx, client, envelope.Data)
	default:
		g.emitError(ctx, client, ErrUnknownEvent)
	}
}

func (g *Gateway) handleJoinThread(ctx context.Context, client *Client, data json.RawMessage) {
	var roomId string
	err := json.Unmarshal(data, &roomId)
	if err != nil || roomId == "" {
		g.emitError(ctx, client, ErrMalformedEvent)
		return
	}

	found, err := g.threadService.GetThreadWithRoomId(ctx, roomId)
	if err != nil {
		g.failEvent(ctx, client, EventJoinThread, err, ErrFailedToJoinThread)
		return
	}

	g.join(roomId, client)

	g.emit(ctx, client, EventJoinedThread, &JoinedThreadData{
		RoomId:   found.RoomId,
		Messages: found.Messages,
	})
}

func (g *Gateway) handleSendMessage(ctx context.Context, client *Client, data json.RawMessage) {
	var payload SendMessagePayload
	if !g.decodePayload(ctx, client, data, &payload) {
		return
	}

	message, err := g.threadService.PostMessage(ctx, payload.RoomId, payload.Sender(), payload.Message)
	if err != nil {
		g.failEvent(ctx, client, EventSendMessage, err, ErrFailedToSendMessage)
		return
	}

	messageData := &MessageData{RoomId: payload.RoomId, Message: message}
	err = g.publish(ctx, payload.RoomId, EventMessageReceived, messageData, client.Id)
	if err != nil {
		g.failEvent(ctx, client, EventSendMessage, err, ErrFailedToSendMessage)
		return
	}

	g.emit(ctx, client, EventNewMessage, messageData)
}

func (g *Gateway) handleDeleteMessage(ctx context.Context, client *Client, data json.RawMessage) {
	var payload DeleteMessagePayload
	if !g.decodePayload(ctx, client, data, &payload) {
		return
	}

	err := g.threadService.DeleteMessage(ctx, payload.RoomId, payload.MessageId)
	if err != nil {
		g.failEvent(ctx, client, EventDeleteMessage, err, ErrFailedToDeleteMessage)
		return
	}

	err = g.publish(ctx, payload.RoomId, EventMessageDeleted, &MessageDeletedData{
		RoomId:    payload.RoomId,
		MessageId: payload.MessageId,
	}, "")
	if err != nil {
		g.failEvent(ctx, client, EventDeleteMessage, err, ErrFailedToDeleteMessage)
	}
}

func (g *Gateway) decodePayload(ctx context.Context, client *Client, data json.RawMessage, payload interface{}) bool {
	err := json.Unmarshal(data, payload)
	if err != nil {
		g.emitError(ctx, client, ErrMalformedEvent)
		return false
	}

	err = server.ValidatePayload(payload)
	if err != nil {
		g.emitError(ctx, client, cerror.From(err).Message)
		return false
	}

	return true
}

func (g *Gateway) failEvent(ctx context.Context, client *Client, event string, err error, fallback string) {
	message := fallback
	if cerror.HasStatus(err, fiber.StatusNotFound) {
		message = cerror.From(err).Message
	}

	logger.FromContext(ctx).Errorw(
		"socket event failed",
		zap.String("eventName", event),
		zap.Error(err),
	)
	g.emitError(ctx, client, message)
}

func (g *Gateway) emitError(ctx context.Context, client *Client, message string) {
	g.emit(ctx, client, EventError, &ErrorData{Message: message})
}

func (g *Gateway) emit(ctx context.Context, client *Client, event string, data interface{}) {
	err := client.Emit(event, data)
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"failed to write socket event",
			zap.String("eventName", event),
			zap.Error(err),
		)
	}
}

func (g *Gateway) publish(ctx context.Context, roomId, event string, data interface{}, exceptClientId string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return g.broker.Publish(ctx, &RoomEvent{
		RoomId:         roomId,
		Event:          event,
		Data:           raw,
		ExceptClientId: exceptClientId,
	})
}

// deliver writes a room event to the members connected to this instance.
func (g *Gateway) deliver(event *RoomEvent) {
	frame, err := json.Marshal(&Envelope{Event: event.Event, Data: event.Data})
	if err != nil {
		return
	}

	g.mu.RLock()
	members := make([]*Client, 0, len(g.rooms[event.RoomId]))
	for id, client := range g.rooms[event.RoomId] {
		if id != event.ExceptClientId {
			members = append(members, client)
		}
	}
	g.mu.RUnlock()

	for _, member := range members {
		err = member.write(frame)
		if errors.Is(err, ErrOutboundOverflow) {
			g.unregister(member)
		}
	}
}

func (g *Gateway) register(client *Client) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrGatewayClosed
	}

	g.clients[client.Id] = client
	return nil
}

func (g *Gateway) unregister(client *Client) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.clients, client.Id)
	for roomId, members := range g.rooms {
		delete(members, client.Id)
		if len(members) == 0 {
			delete(g.rooms, roomId)
		}
	}
}

func (g *Gateway) join(roomId string, client *Client) {
	g.mu.Lock()
	defer g.mu.Unlock()

	members, ok := g.rooms[roomId]
	if !ok {
		members = make(map[string]*Client)
		g.rooms[roomId] = members
	}
	members[client.Id] = client
}

// RoomSize reports how many local connections joined roomId.
func (g *Gateway) RoomSize(roomId string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.rooms[roomId])
}

// Close stops the broker and drops every connection. Serve returns for each
// of them once their read fails.
func (g *Gateway) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	clients := make([]*Client, 0, len(g.clients))
	for _, client := range g.clients {
		clients = append(clients, client)
	}
	g.mu.Unlock()

	for _, client := range clients {
		_ = client.Close()
	}

	return g.broker.Close()
}
