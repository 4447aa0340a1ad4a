//go:generate go run go.uber.org/mock/mockgen -source=typing.go -destination=../mocks/mock_typing_repository.go -package=mocks
package repositories

import (
	"chat-core/domain"
	"chat-core/errors"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ITypingRepository interface {
	UpsertTyping(status domain.TypingStatus, ttl time.Duration) error
	GetTyping(chatID uuid.UUID, userID string) (domain.TypingStatus, error)
	ListTyping(chatID uuid.UUID) ([]domain.TypingStatus, error)
}

type TypingRepository struct {
	db *badger.DB
}

func NewTypingRepository(db *badger.DB) ITypingRepository {
	return &TypingRepository{db: db}
}

type typingRecord struct {
	ChatID    string    `json:"chat_id"`
	UserID    string    `json:"user_id"`
	IsTyping  bool      `json:"is_typing"`
	UpdatedAt time.Time `json:"updated_at"`
}

func typingKey(chatID uuid.UUID, userID string) []byte {
	return []byte(fmt.Sprintf("typing:%s:%s", chatID, userID))
}

// UpsertTyping replaces the single live record of a (chat, user) pair.
// The TTL lets badger reclaim stale rows on its own; freshness at read
// time is still decided against the record timestamp.
func (r TypingRepository) UpsertTyping(status domain.TypingStatus, ttl time.Duration) error {
	data, err := json.Marshal(fromTyping(status))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(typingKey(status.ChatID, status.UserID), data)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
}

func (r TypingRepository) GetTyping(chatID uuid.UUID, userID string) (domain.TypingStatus, error) {
	var record typingRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(typingKey(chatID, userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.TypingStatus{}, fmt.Errorf("%w: typing %s/%s", errors.ErrNotFound, chatID, userID)
	}
	if err != nil {
		return domain.TypingStatus{}, err
	}
	return toTyping(record)
}

func (r TypingRepository) ListTyping(chatID uuid.UUID) ([]domain.TypingStatus, error) {
	var statuses []domain.TypingStatus
	prefix := []byte(fmt.Sprintf("typing:%s:", chatID))

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record typingRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				status, err := toTyping(record)
				if err != nil {
					return err
				}
				statuses = append(statuses, status)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func fromTyping(status domain.TypingStatus) typingRecord {
	return typingRecord{
		ChatID:    status.ChatID.String(),
		UserID:    status.UserID,
		IsTyping:  status.IsTyping,
		UpdatedAt: status.UpdatedAt,
	}
}

func toTyping(record typingRecord) (domain.TypingStatus, error) {
	chatID, err := uuid.Parse(record.ChatID)
	if err != nil {
		return domain.TypingStatus{}, err
	}
	return domain.TypingStatus{
		ChatID:    chatID,
		UserID:    record.UserID,
		IsTyping:  record.IsTyping,
		UpdatedAt: record.UpdatedAt,
	}, nil
}
