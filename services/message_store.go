//go:generate go run go.uber.org/mock/mockgen -source=message_store.go -destination=../mocks/mock_message_store.go -package=mocks
package services

import (
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/moderation"
	"chat-core/repositories"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// IMessageStore owns the append-only ordered log of each chat.
type IMessageStore interface {
	AppendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	GetMessage(messageID uuid.UUID) (domain.Message, error)
	ListMessages(cmd domain.ListMessagesCommand) ([]domain.Message, *string, error)
}

type MessageStore struct {
	messages  repositories.IMessageRepository
	chats     IChatRegistry
	moderator *moderation.Moderator
	log       *slog.Logger
}

func NewMessageStore(messages repositories.IMessageRepository, chats IChatRegistry,
	moderator *moderation.Moderator, log *slog.Logger) IMessageStore {
	return &MessageStore{messages: messages, chats: chats, moderator: moderator, log: log}
}

// AppendMessage gates the sender against the chat membership, refuses
// empty content, censors text, and appends under the chat's atomic
// sequence. The message is immutable from here on.
func (s *MessageStore) AppendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return domain.Message{}, err
	}

	chat, err := s.chats.GetChat(cmd.ChatID)
	if err != nil {
		return domain.Message{}, err
	}
	if !chat.HasParticipant(cmd.SenderID) {
		return domain.Message{}, fmt.Errorf("%w: %s in chat %s", errors.ErrNotParticipant, cmd.SenderID, cmd.ChatID)
	}
	if cmd.Content.Empty() {
		return domain.Message{}, fmt.Errorf("%w: chat %s", errors.ErrEmptyContent, cmd.ChatID)
	}

	content := cmd.Content
	if s.moderator != nil && content.Text != "" {
		content.Text = s.moderator.Censor(content.Text)
	}

	message := domain.Message{
		ID:        uuid.New(),
		ChatID:    cmd.ChatID,
		SenderID:  cmd.SenderID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	return s.messages.AppendMessage(message)
}

func (s *MessageStore) GetMessage(messageID uuid.UUID) (domain.Message, error) {
	return s.messages.GetMessage(messageID)
}

// ListMessages pages through one chat in sequence order. The caller
// must be a participant of the chat it reads.
func (s *MessageStore) ListMessages(cmd domain.ListMessagesCommand) ([]domain.Message, *string, error) {
	member, err := s.chats.IsParticipant(cmd.ChatID, cmd.CallerID)
	if err != nil {
		return nil, nil, err
	}
	if !member {
		return nil, nil, fmt.Errorf("%w: %s in chat %s", errors.ErrNotParticipant, cmd.CallerID, cmd.ChatID)
	}
	return s.messages.ListMessages(cmd.ChatID, cmd.Cursor, cmd.Limit, cmd.Descending)
}
