package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DeliveryState is the per-recipient receipt lifecycle of a message.
// The order Sent < Delivered < Seen is total; a record never moves
// backwards and Seen is terminal.
type DeliveryState int

const (
	StateSent DeliveryState = iota
	StateDelivered
	StateSeen
)

func (s DeliveryState) String() string {
	switch s {
	case StateSent:
		return "sent"
	case StateDelivered:
		return "delivered"
	case StateSeen:
		return "seen"
	default:
		return fmt.Sprintf("DeliveryState(%d)", int(s))
	}
}

// CanAdvanceTo reports whether next is a legal forward transition.
// Equal states are not an advance; the caller decides whether equality
// is a no-op or an error.
func (s DeliveryState) CanAdvanceTo(next DeliveryState) bool {
	return next > s && next <= StateSeen
}

// DeliveryStatus tracks one (message, recipient) pair. Exactly one
// record exists per pair, created at send time in StateSent.
type DeliveryStatus struct {
	ID          uuid.UUID
	MessageID   uuid.UUID
	RecipientID string
	State       DeliveryState
	UpdatedAt   time.Time
}

// StatusSummary is the message-level aggregate over all recipients
// tracked at send time. Recipients added to the chat afterwards are
// not part of the set.
type StatusSummary struct {
	MessageID uuid.UUID
	Total     int
	Delivered int
	Seen      int
}

func (s StatusSummary) AllDelivered() bool {
	return s.Total > 0 && s.Delivered == s.Total
}

func (s StatusSummary) AllSeen() bool {
	return s.Total > 0 && s.Seen == s.Total
}
