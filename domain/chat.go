// Package domain contains core concepts of the chat system.
// This file defines Chat entities and membership invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ChatKind string

const (
	ChatKindPrivate ChatKind = "private"
	ChatKindGroup   ChatKind = "group"
)

// Chat is a conversation container, private (exactly 2 participants)
// or group (N participants). Private membership is immutable.
type Chat struct {
	ID           uuid.UUID
	Kind         ChatKind
	Participants []string
	GroupName    string
	GroupAvatar  string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c Chat) HasParticipant(userID string) bool {
	return lo.Contains(c.Participants, userID)
}

// RecipientsOf returns every participant except the given sender.
// This is the fan-out target set for messages and typing events.
func (c Chat) RecipientsOf(senderID string) []string {
	return lo.Filter(c.Participants, func(id string, _ int) bool {
		return id != senderID
	})
}
