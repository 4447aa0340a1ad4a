package services

import (
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/moderation"
	"chat-core/repositories"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newUUID() uuid.UUID { return uuid.New() }

type messageStoreFixture struct {
	registry IChatRegistry
	store    IMessageStore
}

func newMessageStoreFixture(t *testing.T, moderator *moderation.Moderator) messageStoreFixture {
	t.Helper()
	db := openTestDB(t)
	registry := NewChatRegistry(repositories.NewChatRepository(db))
	messages := repositories.NewMessageRepository(db, slog.Default(), nil)
	t.Cleanup(func() { _ = messages.Close() })
	return messageStoreFixture{
		registry: registry,
		store:    NewMessageStore(messages, registry, moderator, slog.Default()),
	}
}

func (f messageStoreFixture) createGroup(t *testing.T, participants ...string) domain.Chat {
	t.Helper()
	chat, err := f.registry.CreateChat(domain.CreateChatCommand{
		Kind:           domain.ChatKindGroup,
		CreatorID:      participants[0],
		ParticipantIDs: participants,
	})
	require.NoError(t, err)
	return chat
}

func TestMessageStore_AppendAndList(t *testing.T) {
	req := require.New(t)
	fixture := newMessageStoreFixture(t, nil)
	chat := fixture.createGroup(t, "alice", "bob")

	message, err := fixture.store.AppendMessage(context.Background(), domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
		Content:  domain.Content{Text: "hi"},
	})
	req.NoError(err)
	req.Equal("hi", message.Content.Text)
	req.Equal(chat.ID, message.ChatID)

	listed, _, err := fixture.store.ListMessages(domain.ListMessagesCommand{
		ChatID:   chat.ID,
		CallerID: "bob",
		Limit:    10,
	})
	req.NoError(err)
	req.Len(listed, 1)
	req.Equal(message.ID, listed[0].ID)
}

func TestMessageStore_AppendRejectsOutsiders(t *testing.T) {
	req := require.New(t)
	fixture := newMessageStoreFixture(t, nil)
	chat := fixture.createGroup(t, "alice", "bob")

	_, err := fixture.store.AppendMessage(context.Background(), domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "mallory",
		Content:  domain.Content{Text: "let me in"},
	})
	req.ErrorIs(err, errors.ErrNotParticipant)

	_, err = fixture.store.AppendMessage(context.Background(), domain.SendMessageCommand{
		ChatID:   newUUID(),
		SenderID: "alice",
		Content:  domain.Content{Text: "hi"},
	})
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestMessageStore_AppendRejectsEmptyContent(t *testing.T) {
	req := require.New(t)
	fixture := newMessageStoreFixture(t, nil)
	chat := fixture.createGroup(t, "alice", "bob")

	_, err := fixture.store.AppendMessage(context.Background(), domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
	})
	req.ErrorIs(err, errors.ErrEmptyContent)
}

func TestMessageStore_AppendAcceptsAttachmentOnly(t *testing.T) {
	req := require.New(t)
	fixture := newMessageStoreFixture(t, nil)
	chat := fixture.createGroup(t, "alice", "bob")

	message, err := fixture.store.AppendMessage(context.Background(), domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
		Content: domain.Content{
			File: &domain.FileRef{URL: "https://cdn/report.pdf", Name: "report.pdf", MimeType: "application/pdf"},
		},
	})
	req.NoError(err)
	req.NotNil(message.Content.File)
	req.Empty(message.Content.Text)
}

func TestMessageStore_AppendCensorsText(t *testing.T) {
	req := require.New(t)
	moderator, err := moderation.NewModerator([]string{"idiot"}, '*')
	req.NoError(err)
	fixture := newMessageStoreFixture(t, moderator)
	chat := fixture.createGroup(t, "alice", "bob")

	message, err := fixture.store.AppendMessage(context.Background(), domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
		Content:  domain.Content{Text: "you idiot"},
	})
	req.NoError(err)
	req.Equal("you *****", message.Content.Text)
}

func TestMessageStore_ListGatesOnMembership(t *testing.T) {
	req := require.New(t)
	fixture := newMessageStoreFixture(t, nil)
	chat := fixture.createGroup(t, "alice", "bob")

	_, _, err := fixture.store.ListMessages(domain.ListMessagesCommand{
		ChatID:   chat.ID,
		CallerID: "mallory",
		Limit:    10,
	})
	req.ErrorIs(err, errors.ErrNotParticipant)
}

func TestMessageStore_AppendHonorsCancelledContext(t *testing.T) {
	req := require.New(t)
	fixture := newMessageStoreFixture(t, nil)
	chat := fixture.createGroup(t, "alice", "bob")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := fixture.store.AppendMessage(ctx, domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
		Content:  domain.Content{Text: "hi"},
	})
	req.ErrorIs(err, context.Canceled)
}
