package search

import (
	"chat-core/domain"
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewIndex(writer, slog.Default())
}

func pushMessage(t *testing.T, index *Index, message domain.Message) {
	t.Helper()
	require.NoError(t, index.Push(context.Background(), domain.Notification{
		TargetUserID: "bob",
		Kind:         domain.KindNewMessage,
		Payload:      message,
	}))
}

func TestIndex_SearchByContent(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	chatID := uuid.New()
	messageID := uuid.New()

	pushMessage(t, index, domain.Message{ID: messageID, ChatID: chatID, Seq: 1,
		SenderID: "alice", Content: domain.Content{Text: "deploying the new gateway tonight"}})
	pushMessage(t, index, domain.Message{ID: uuid.New(), ChatID: chatID, Seq: 2,
		SenderID: "bob", Content: domain.Content{Text: "sounds good"}})

	hits, err := index.Search(context.Background(), chatID, "gateway", 10)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(messageID, hits[0].MessageID)
	req.Equal("alice", hits[0].SenderID)
	req.Contains(hits[0].Content, "gateway")
}

func TestIndex_SearchIsChatScoped(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	chatA := uuid.New()
	chatB := uuid.New()

	pushMessage(t, index, domain.Message{ID: uuid.New(), ChatID: chatA, Seq: 1,
		SenderID: "alice", Content: domain.Content{Text: "secret plan"}})
	pushMessage(t, index, domain.Message{ID: uuid.New(), ChatID: chatB, Seq: 1,
		SenderID: "clara", Content: domain.Content{Text: "secret recipe"}})

	hits, err := index.Search(context.Background(), chatA, "secret", 10)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(chatA, hits[0].ChatID)
}

func TestIndex_DuplicateFanoutCopiesIndexOnce(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	chatID := uuid.New()

	message := domain.Message{ID: uuid.New(), ChatID: chatID, Seq: 1,
		SenderID: "alice", Content: domain.Content{Text: "standup moved to noon"}}
	pushMessage(t, index, message)
	pushMessage(t, index, message)

	hits, err := index.Search(context.Background(), chatID, "standup", 10)
	req.NoError(err)
	req.Len(hits, 1)
}

func TestIndex_IgnoresNonTextAndOtherKinds(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	chatID := uuid.New()
	ctx := context.Background()

	req.NoError(index.Push(ctx, domain.Notification{Kind: domain.KindTypingUpdate,
		Payload: domain.TypingUpdatePayload{ChatID: chatID, UserID: "alice", IsTyping: true}}))
	req.NoError(index.Push(ctx, domain.Notification{Kind: domain.KindNewMessage,
		Payload: domain.Message{ID: uuid.New(), ChatID: chatID, Seq: 1, SenderID: "alice",
			Content: domain.Content{File: &domain.FileRef{URL: "https://cdn/x.pdf", Name: "x.pdf"}}}}))

	hits, err := index.Search(ctx, chatID, "anything", 10)
	req.NoError(err)
	req.Empty(hits)
}
