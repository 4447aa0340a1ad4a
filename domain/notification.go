package domain

import "github.com/google/uuid"

type NotificationKind string

const (
	KindNewMessage   NotificationKind = "newMessage"
	KindStatusUpdate NotificationKind = "statusUpdate"
	KindTypingUpdate NotificationKind = "typingUpdate"
)

// Notification is the unit handed to the external dispatcher: one
// target user, one kind, one payload. Delivery to a live connection
// (or queueing for offline users) is not this subsystem's concern,
// and is at-most-once; clients reconcile by re-fetching state.
type Notification struct {
	TargetUserID string
	Kind         NotificationKind
	Payload      any
}

// StatusUpdatePayload describes one advanced record plus the aggregate
// view of the message it belongs to, pushed back to the sender.
type StatusUpdatePayload struct {
	Status  DeliveryStatus
	Summary StatusSummary
}

type TypingUpdatePayload struct {
	ChatID   uuid.UUID
	UserID   string
	IsTyping bool
}
