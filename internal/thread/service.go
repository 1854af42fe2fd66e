package thread

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fittrack-api/internal/account"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=thread

type Service interface {
	CreateThread(ctx context.Context, userId string, payload *CreateThreadPayload) (*Thread, error)
	ListThreads(ctx context.Context) ([]*Thread, error)
	DeleteThread(ctx context.Context, threadId string) error
	GetThreadWithRoomId(ctx context.Context, roomId string) (*Thread, error)
	PostMessage(ctx context.Context, roomId string, sender Sender, text string) (*Message, error)
	DeleteMessage(ctx context.Context, roomId, messageId string) error
}

type service struct {
	threadRepository Repository
	directory        account.Directory
	now              func() time.Time
}

func NewService(threadRepository Repository, directory account.Directory) Service {
	return &service{
		threadRepository: threadRepository,
		directory:        directory,
		now:              time.Now,
	}
}

func (s *service) CreateThread(ctx context.Context, userId string, payload *CreateThreadPayload) (*Thread, error) {
	entry, err := s.directory.FindAccountWithId(ctx, userId)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sender := Sender{
		SenderId:        entry.Account.Id,
		SenderName:      entry.Account.DisplayName,
		SenderRole:      entry.Account.Role,
		SenderAvatarUrl: entry.Account.Avatar,
	}
	if sender.SenderRole == "" {
		sender.SenderRole = entry.Kind.Role()
	}

	thread := &Thread{
		Id:        uuid.New().String(),
		RoomId:    NewRoomId(userId, now),
		UserId:    userId,
		AvatarUrl: entry.Account.Avatar,
		Title:     payload.Title,
		Type:      payload.Type,
		Messages:  []Message{NewMessage(sender, payload.Message, now)},
		CreatedAt: now.UnixMilli(),
	}

	err = s.threadRepository.InsertThread(ctx, thread)
	if err != nil {
		return nil, err
	}

	return thread, nil
}

func (s *service) ListThreads(ctx context.Context) ([]*Thread, error) {
	return s.threadRepository.FindAllThreads(ctx)
}

func (s *service) DeleteThread(ctx context.Context, threadId string) error {
	return s.threadRepository.DeleteThreadWithId(ctx, threadId)
}

func (s *service) GetThreadWithRoomId(ctx context.Context, roomId string) (*Thread, error) {
	return s.threadRepository.FindThreadWithRoomId(ctx, roomId)
}

// PostMessage only returns once the message is persisted; callers broadcast
// after that.
func (s *service) PostMessage(ctx context.Context, roomId string, sender Sender, text string) (*Message, error) {
	_, err := s.threadRepository.FindThreadWithRoomId(ctx, roomId)
	if err != nil {
		return nil, err
	}

	now := s.now()
	message := NewMessage(sender, text, now)
	err = s.threadRepository.AppendMessage(ctx, roomId, &message, now.UnixMilli())
	if err != nil {
		return nil, err
	}

	return &message, nil
}

func (s *service) DeleteMessage(ctx context.Context, roomId, messageId string) error {
	return s.threadRepository.MarkMessageDeleted(ctx, roomId, messageId, s.now().UnixMilli())
}
