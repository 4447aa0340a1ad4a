package domain

import (
	"github.com/google/uuid"
)

// CreateChatCommand is the inbound request to open a conversation.
// CreatorID must itself appear in ParticipantIDs.
type CreateChatCommand struct {
	Kind           ChatKind `validate:"required,oneof=private group"`
	CreatorID      string   `validate:"required"`
	ParticipantIDs []string `validate:"required,min=2,unique,dive,required"`
	GroupName      string
	GroupAvatar    string
}

type SendMessageCommand struct {
	ChatID   uuid.UUID `validate:"required"`
	SenderID string    `validate:"required"`
	Content  Content
}

// ListMessagesCommand pages through one chat's log. Cursor is opaque,
// issued by a previous call; nil starts from the newest (descending)
// or oldest (ascending) position.
type ListMessagesCommand struct {
	ChatID     uuid.UUID
	CallerID   string
	Cursor     *string
	Limit      int
	Descending bool
}
