package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChat_RecipientsOf(t *testing.T) {
	req := require.New(t)
	chat := Chat{
		Kind:         ChatKindGroup,
		Participants: []string{"alice", "bob", "clara"},
	}

	req.ElementsMatch([]string{"bob", "clara"}, chat.RecipientsOf("alice"))
	req.True(chat.HasParticipant("bob"))
	req.False(chat.HasParticipant("mallory"))

	// A non-member sender excludes nobody
	req.Len(chat.RecipientsOf("mallory"), 3)
}

func TestContent_Empty(t *testing.T) {
	req := require.New(t)

	req.True(Content{}.Empty())
	req.False(Content{Text: "hi"}.Empty())
	req.False(Content{Image: "https://cdn/img.png"}.Empty())
	req.False(Content{File: &FileRef{URL: "https://cdn/doc.pdf", Name: "doc.pdf", MimeType: "application/pdf"}}.Empty())
	req.False(Content{Text: "see attached", File: &FileRef{URL: "https://cdn/doc.pdf"}}.Empty())
}
