// Package domain contains core concepts of the chat system.
// This file defines Message entities and their content rules.
// Messages are immutable once appended; delivery state lives elsewhere.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileRef points at an uploaded attachment. The blob itself is stored
// by an external service; only the reference travels with the message.
type FileRef struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
}

// Content holds exactly one kind of payload, or text combined with an
// attachment. An all-empty content is rejected at append time.
type Content struct {
	Text  string   `json:"text,omitempty"`
	Image string   `json:"image,omitempty"`
	File  *FileRef `json:"file,omitempty"`
}

func (c Content) Empty() bool {
	return c.Text == "" && c.Image == "" && c.File == nil
}

// Message represents an immutable chat event. Seq is assigned atomically
// at append time and is strictly increasing within one chat.
type Message struct {
	ID        uuid.UUID
	ChatID    uuid.UUID
	Seq       uint64
	SenderID  string
	Content   Content
	CreatedAt time.Time
}
