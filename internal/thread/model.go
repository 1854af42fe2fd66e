package thread

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tombstone replaces the text of a deleted message.
const Tombstone = "This message has been deleted"

const (
	TypeGeneral   = "general"
	TypeNutrition = "nutrition"
	TypeWorkout   = "workout"
	TypeLifestyle = "lifestyle"
	TypeOther     = "other"
)

type Thread struct {
	Id        string    `bson:"_id" json:"_id"`
	RoomId    string    `bson:"roomId" json:"roomId"`
	UserId    string    `bson:"userId" json:"userId"`
	AvatarUrl string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Title     string    `bson:"title" json:"title"`
	Type      string    `bson:"type" json:"type"`
	Messages  []Message `bson:"messages" json:"messages"`
	CreatedAt int64     `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Sender is copied into every message when it is written. Later profile
// changes do not touch messages that were already sent.
type Sender struct {
	SenderId        string `bson:"senderId" json:"senderId"`
	SenderName      string `bson:"senderName" json:"senderName"`
	SenderRole      string `bson:"senderRole" json:"senderRole"`
	SenderAvatarUrl string `bson:"senderAvatarUrl,omitempty" json:"senderAvatarUrl,omitempty"`
}

type Message struct {
	Id        string `bson:"_id" json:"_id"`
	Sender    `bson:",inline"`
	Message   string `bson:"message" json:"message"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
	IsRead    bool   `bson:"isRead" json:"isRead"`
	IsDeleted bool   `bson:"isDeleted" json:"isDeleted"`
}

func NewMessage(sender Sender, text string, now time.Time) Message {
	return Message{
		Id:        uuid.New().String(),
		Sender:    sender,
		Message:   text,
		Timestamp: now.UnixMilli(),
		IsRead:    false,
		IsDeleted: false,
	}
}

func NewRoomId(userId string, now time.Time) string {
	return fmt.Sprintf("room_%s_%d", userId, now.UnixMilli())
}

type CreateThreadPayload struct {
	Title   string `json:"title" validate:"required,min=2,max=200"`
	Type    string `json:"type" validate:"required,oneof=general nutrition workout lifestyle other"`
	Message string `json:"message" validate:"required,min=10"`
}
