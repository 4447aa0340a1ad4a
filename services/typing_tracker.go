//go:generate go run go.uber.org/mock/mockgen -source=typing_tracker.go -destination=../mocks/mock_typing_tracker.go -package=mocks
package services

import (
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/repositories"
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ITypingTracker owns the ephemeral composing indicators. A record is
// only ever reported as typing while it is younger than the freshness
// window, so a vanished client goes quiet on its own.
type ITypingTracker interface {
	SetTyping(ctx context.Context, chatID uuid.UUID, userID string, isTyping bool) (domain.TypingStatus, error)
	IsCurrentlyTyping(chatID uuid.UUID, userID string) (bool, error)
	ListTypingUsers(chatID uuid.UUID) ([]string, error)
}

type TypingTracker struct {
	typing repositories.ITypingRepository
	chats  IChatRegistry
	window time.Duration
}

func NewTypingTracker(typing repositories.ITypingRepository, chats IChatRegistry, window time.Duration) ITypingTracker {
	return &TypingTracker{typing: typing, chats: chats, window: window}
}

// SetTyping upserts the (chat, user) record with the current timestamp.
// The record carries the freshness window as storage TTL so stale rows
// are reclaimed without a janitor.
func (t *TypingTracker) SetTyping(ctx context.Context, chatID uuid.UUID, userID string, isTyping bool) (domain.TypingStatus, error) {
	if err := ctx.Err(); err != nil {
		return domain.TypingStatus{}, err
	}
	member, err := t.chats.IsParticipant(chatID, userID)
	if err != nil {
		return domain.TypingStatus{}, err
	}
	if !member {
		return domain.TypingStatus{}, fmt.Errorf("%w: %s in chat %s", errors.ErrNotParticipant, userID, chatID)
	}

	status := domain.TypingStatus{
		ChatID:    chatID,
		UserID:    userID,
		IsTyping:  isTyping,
		UpdatedAt: time.Now().UTC(),
	}
	if err = t.typing.UpsertTyping(status, t.window); err != nil {
		return domain.TypingStatus{}, err
	}
	return status, nil
}

// IsCurrentlyTyping is decided at query time: the latest record must
// say typing AND be younger than the window. A missing record simply
// means not typing.
func (t *TypingTracker) IsCurrentlyTyping(chatID uuid.UUID, userID string) (bool, error) {
	status, err := t.typing.GetTyping(chatID, userID)
	if stderrors.Is(err, errors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return status.FreshAt(time.Now().UTC(), t.window), nil
}

func (t *TypingTracker) ListTypingUsers(chatID uuid.UUID) ([]string, error) {
	statuses, err := t.typing.ListTyping(chatID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return lo.FilterMap(statuses, func(s domain.TypingStatus, _ int) (string, bool) {
		return s.UserID, s.FreshAt(now, t.window)
	}), nil
}
