//go:generate go run go.uber.org/mock/mockgen -source=chat_registry.go -destination=../mocks/mock_chat_registry.go -package=mocks
package services

import (
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/repositories"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

// IChatRegistry owns chat entities and membership. IsParticipant is the
// authorization gate every other component consults before accepting an
// action scoped to a chat.
type IChatRegistry interface {
	CreateChat(cmd domain.CreateChatCommand) (domain.Chat, error)
	GetChat(chatID uuid.UUID) (domain.Chat, error)
	IsParticipant(chatID uuid.UUID, userID string) (bool, error)
}

type ChatRegistry struct {
	chats repositories.IChatRepository
}

func NewChatRegistry(chats repositories.IChatRepository) IChatRegistry {
	return &ChatRegistry{chats: chats}
}

// CreateChat validates the request and persists the conversation.
// Creating a private chat for a pair that already has one returns the
// existing chat instead of failing; callers can treat the call as
// idempotent.
func (s *ChatRegistry) CreateChat(cmd domain.CreateChatCommand) (domain.Chat, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Chat{}, fmt.Errorf("%w: %v", errors.ErrInvalidParticipants, err)
	}
	if !lo.Contains(cmd.ParticipantIDs, cmd.CreatorID) {
		return domain.Chat{}, fmt.Errorf("%w: creator %s is not among the participants", errors.ErrInvalidParticipants, cmd.CreatorID)
	}
	if cmd.Kind == domain.ChatKindPrivate && len(cmd.ParticipantIDs) != 2 {
		return domain.Chat{}, fmt.Errorf("%w: a private chat needs exactly 2 participants, got %d", errors.ErrInvalidParticipants, len(cmd.ParticipantIDs))
	}

	if cmd.Kind == domain.ChatKindPrivate {
		if existing, err := s.chats.FindPrivateChat(cmd.ParticipantIDs[0], cmd.ParticipantIDs[1]); err == nil {
			return existing, nil
		}
	}

	now := time.Now().UTC()
	chat := domain.Chat{
		ID:           uuid.New(),
		Kind:         cmd.Kind,
		Participants: cmd.ParticipantIDs,
		GroupName:    cmd.GroupName,
		GroupAvatar:  cmd.GroupAvatar,
		CreatedBy:    cmd.CreatorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.chats.CreateChat(chat)
	if err == nil {
		return chat, nil
	}
	// Lost a race for the same private pair: hand back the winner.
	if stderrors.Is(err, errors.ErrDuplicateChat) {
		return s.chats.FindPrivateChat(cmd.ParticipantIDs[0], cmd.ParticipantIDs[1])
	}
	return domain.Chat{}, err
}

func (s *ChatRegistry) GetChat(chatID uuid.UUID) (domain.Chat, error) {
	return s.chats.GetChat(chatID)
}

func (s *ChatRegistry) IsParticipant(chatID uuid.UUID, userID string) (bool, error) {
	chat, err := s.chats.GetChat(chatID)
	if err != nil {
		return false, err
	}
	return chat.HasParticipant(userID), nil
}
