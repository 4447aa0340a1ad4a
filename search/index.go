// Package search maintains a full-text index over message content and
// answers chat-scoped queries. Indexing is fed by the notification
// fan-out; the badger log stays the source of truth.
package search

import (
	"chat-core/domain"
	"context"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

type Hit struct {
	MessageID uuid.UUID
	ChatID    uuid.UUID
	SenderID  string
	Content   string
}

// Index wraps a bluge writer. Push is idempotent per message ID, so
// the duplicate copies produced by per-recipient fan-out collapse
// into a single document.
type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIndex(writer *bluge.Writer, log *slog.Logger) *Index {
	return &Index{writer: writer, log: log}
}

// Push indexes text-bearing new message notifications and ignores
// everything else.
func (i *Index) Push(_ context.Context, n domain.Notification) error {
	if n.Kind != domain.KindNewMessage {
		return nil
	}
	message, ok := n.Payload.(domain.Message)
	if !ok || message.Content.Text == "" {
		return nil
	}

	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField("chat", message.ChatID.String()).StoreValue()).
		AddField(bluge.NewKeywordField("sender", message.SenderID).StoreValue()).
		AddField(bluge.NewKeywordField("seq", strconv.FormatUint(message.Seq, 10)).StoreValue()).
		AddField(bluge.NewTextField("content", message.Content.Text).StoreValue())

	return i.writer.Update(doc.ID(), doc)
}

// Search matches the query against message content within one chat.
// Results come back in relevance order.
func (i *Index) Search(ctx context.Context, chatID uuid.UUID, query string, limit int) ([]Hit, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(chatID.String()).SetField("chat")).
		AddMust(bluge.NewMatchQuery(query).SetField("content"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, err
	}

	var hits []Hit
	match, err := iterator.Next()
	for err == nil && match != nil {
		var hit Hit
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.MessageID, _ = uuid.Parse(string(value))
			case "chat":
				hit.ChatID, _ = uuid.Parse(string(value))
			case "sender":
				hit.SenderID = string(value)
			case "content":
				hit.Content = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}
