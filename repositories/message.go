//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-core/domain"
	"chat-core/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// seqBandwidth is how many sequence numbers each lease reserves.
// Unused numbers leak as gaps on restart, which is fine: the order
// contract is strictly increasing, not dense.
const seqBandwidth = 64

type IMessageRepository interface {
	AppendMessage(message domain.Message) (domain.Message, error)
	GetMessage(id uuid.UUID) (domain.Message, error)
	ListMessages(chatID uuid.UUID, cursor *string, limit int, descending bool) ([]domain.Message, *string, error)
	Close() error
}

type MessageRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitDefault *int

	mu        sync.Mutex
	sequences map[uuid.UUID]*badger.Sequence
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitDefault *int) *MessageRepository {
	return &MessageRepository{
		db:           db,
		log:          log,
		limitDefault: limitDefault,
		sequences:    make(map[uuid.UUID]*badger.Sequence),
	}
}

type messageRecord struct {
	ID        string         `json:"id"`
	ChatID    string         `json:"chat_id"`
	Seq       uint64         `json:"seq"`
	SenderID  string         `json:"sender_id"`
	Content   domain.Content `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
}

// Message keys are "msg:{chat_id}:{seq_padded}" with 20-digit zero
// padding so lexicographic key order equals sequence order. The cursor
// returned to callers is exactly the padded suffix of the last key.
func messageKey(chatID uuid.UUID, seq uint64) []byte {
	return []byte(fmt.Sprintf("msg:%s:%020d", chatID, seq))
}

func messageIndexKey(id uuid.UUID) []byte {
	return []byte("idx:msg:" + id.String())
}

// seqFor hands out the per-chat badger sequence, creating it lazily.
// Sequence.Next is safe under concurrent appends and never hands the
// same value out twice, which carries the per-chat total order.
func (m *MessageRepository) seqFor(chatID uuid.UUID) (*badger.Sequence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if seq, ok := m.sequences[chatID]; ok {
		return seq, nil
	}
	seq, err := m.db.GetSequence([]byte("seq:chat:"+chatID.String()), seqBandwidth)
	if err != nil {
		return nil, fmt.Errorf("sequence init failed for chat %s: %w", chatID, err)
	}
	m.sequences[chatID] = seq
	return seq, nil
}

// AppendMessage assigns the next per-chat sequence number and persists
// the message plus its id index in one transaction.
func (m *MessageRepository) AppendMessage(message domain.Message) (domain.Message, error) {
	seq, err := m.seqFor(message.ChatID)
	if err != nil {
		return domain.Message{}, err
	}
	next, err := seq.Next()
	if err != nil {
		return domain.Message{}, err
	}
	message.Seq = next

	key := messageKey(message.ChatID, message.Seq)
	data, err := json.Marshal(fromMessage(message))
	if err != nil {
		return domain.Message{}, err
	}

	err = m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(messageIndexKey(message.ID), key)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// GetMessage resolves the id index to the primary key, then the record.
func (m *MessageRepository) GetMessage(id uuid.UUID) (domain.Message, error) {
	var record messageRecord
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(messageIndexKey(id))
		if err != nil {
			return err
		}
		primaryKey, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err = txn.Get(primaryKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, fmt.Errorf("%w: message %s", errors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Message{}, err
	}
	return toMessage(record)
}

// ListMessages pages through one chat's log by prefix scan. The padded
// sequence in the key keeps iteration in chat order both ways; a cursor
// restarts the scan just past the row it was issued for.
func (m *MessageRepository) ListMessages(chatID uuid.UUID, cursor *string, limit int, descending bool) ([]domain.Message, *string, error) {
	if limit <= 0 {
		if m.limitDefault == nil {
			return nil, nil, fmt.Errorf("no page size requested and no default configured")
		}
		limit = *m.limitDefault
	}

	prefixStr := fmt.Sprintf("msg:%s:", chatID)
	prefix := []byte(prefixStr)

	var rawValues [][]byte
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = descending
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch {
		case cursor != nil:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		case descending:
			// Past the last possible sequence, then walk backwards
			seekKey = append([]byte(prefixStr), []byte("99999999999999999999")...)
		default:
			seekKey = prefix
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if len(rawValues) == limit {
				m.log.Debug(fmt.Sprintf("Page limit of %d messages reached", limit))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			err := item.Value(func(value []byte) error {
				rawValues = append(rawValues, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if len(rawValues) == 0 {
		return nil, nil, nil
	}

	messages := make([]domain.Message, 0, len(rawValues))
	for _, raw := range rawValues {
		var record messageRecord
		if err = json.Unmarshal(raw, &record); err != nil {
			return nil, nil, err
		}
		message, err := toMessage(record)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	return messages, &lastKey, nil
}

// Close releases the leased sequence ranges back to the store.
func (m *MessageRepository) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for chatID, seq := range m.sequences {
		if err := seq.Release(); err != nil {
			m.log.Warn("Failed to release chat sequence", "chat", chatID, "error", err)
		}
	}
	m.sequences = make(map[uuid.UUID]*badger.Sequence)
	return nil
}

func fromMessage(message domain.Message) messageRecord {
	return messageRecord{
		ID:        message.ID.String(),
		ChatID:    message.ChatID.String(),
		Seq:       message.Seq,
		SenderID:  message.SenderID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}

func toMessage(record messageRecord) (domain.Message, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.Message{}, err
	}
	chatID, err := uuid.Parse(record.ChatID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        id,
		ChatID:    chatID,
		Seq:       record.Seq,
		SenderID:  record.SenderID,
		Content:   record.Content,
		CreatedAt: record.CreatedAt,
	}, nil
}
