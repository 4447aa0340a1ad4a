package domain

import (
	"time"

	"github.com/google/uuid"
)

// TypingStatus is the ephemeral "user is composing" signal for one
// (chat, user) pair. At most one live record exists per pair; newer
// events supersede older ones.
type TypingStatus struct {
	ChatID    uuid.UUID
	UserID    string
	IsTyping  bool
	UpdatedAt time.Time
}

// FreshAt reports whether the record still counts as typing at the
// given instant. A record older than the window is stale even if it
// was never cleared, so a client that disconnected mid-composition
// stops showing as typing without any further event.
func (t TypingStatus) FreshAt(now time.Time, window time.Duration) bool {
	return t.IsTyping && now.Sub(t.UpdatedAt) <= window
}
