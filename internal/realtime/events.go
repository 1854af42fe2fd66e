package realtime

import (
	"github.com/goccy/go-json"

	"fittrack-api/internal/thread"
)

// Client -> server.
const (
	EventJoinThread    = "joinThread"
	EventSendMessage   = "sendMessage"
	EventDeleteMessage = "deleteMessage"
)

// Server -> client.
const (
	EventJoinedThread    = "joinedThread"
	EventNewMessage      = "newMessage"
	EventMessageReceived = "messageReceived"
	EventMessageDeleted  = "messageDeleted"
	EventError           = "error"
)

const (
	ErrThreadNotFound        = "Thread not found"
	ErrFailedToJoinThread    = "Failed to join thread"
	ErrFailedToSendMessage   = "Failed to send message"
	ErrFailedToDeleteMessage = "Failed to delete message"
	ErrMalformedEvent        = "Malformed event"
	ErrUnknownEvent          = "Unknown event"
	ErrInternal              = "Internal server error"
)

// Envelope is the frame exchanged over the socket in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type SendMessagePayload struct {
	RoomId          string `json:"roomId" validate:"required"`
	SenderId        string `json:"senderId" validate:"required"`
	SenderName      string `json:"senderName" validate:"required"`
	SenderRole      string `json:"senderRole" validate:"required,oneof=member admin"`
	SenderAvatarUrl string `json:"senderAvatarUrl"`
	Message         string `json:"message" validate:"required"`
}

func (p *SendMessagePayload) Sender() thread.Sender {
	return thread.Sender{
		SenderId:        p.SenderId,
		SenderName:      p.SenderName,
		SenderRole:      p.SenderRole,
		SenderAvatarUrl: p.SenderAvatarUrl,
	}
}

type DeleteMessagePayload struct {
	RoomId    string `json:"roomId" validate:"required"`
	MessageId string `json:"messageId" validate:"required"`
}

type JoinedThreadData struct {
	RoomId   string           `json:"roomId"`
	Messages []thread.Message `json:"messages"`
}

type MessageData struct {
	RoomId  string          `json:"roomId"`
	Message *thread.Message `json:"message"`
}

type MessageDeletedData struct {
	RoomId    string `json:"roomId"`
	MessageId string `json:"messageId"`
}

type ErrorData struct {
	Message string `json:"message"`
}

func encodeEnvelope(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(&Envelope{Event: event, Data: raw})
}
