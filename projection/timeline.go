// Package projection builds local timelines from observed notifications.
// Handles ordering and deduplication. Does not emit notifications or
// interact with transports directly.
package projection

import (
	"chat-core/domain"
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Timeline keeps an in-memory per-chat view of delivered messages.
// The fan-out emits one notification per recipient, so the same
// message arrives several times; the seen set collapses them.
type Timeline struct {
	mu       sync.Mutex
	messages map[uuid.UUID][]domain.Message
	seen     map[uuid.UUID]struct{}
}

func NewTimeline() *Timeline {
	return &Timeline{
		messages: make(map[uuid.UUID][]domain.Message),
		seen:     make(map[uuid.UUID]struct{}),
	}
}

func (t *Timeline) Push(_ context.Context, n domain.Notification) error {
	if n.Kind != domain.KindNewMessage {
		return nil
	}
	message, ok := n.Payload.(domain.Message)
	if !ok {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, dup := t.seen[message.ID]; dup {
		return nil
	}
	t.seen[message.ID] = struct{}{}

	entries := append(t.messages[message.ChatID], message)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Seq < entries[j].Seq })
	t.messages[message.ChatID] = entries
	return nil
}

// MessagesFor returns a copy of the chat's timeline in sequence order.
func (t *Timeline) MessagesFor(chatID uuid.UUID) []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.messages[chatID]
	out := make([]domain.Message, len(entries))
	copy(out, entries)
	return out
}
