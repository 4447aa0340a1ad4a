//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
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

type IChatRepository interface {
	CreateChat(chat domain.Chat) error
	GetChat(id uuid.UUID) (domain.Chat, error)
	FindPrivateChat(userA, userB string) (domain.Chat, error)
}

type ChatRepository struct {
	db *badger.DB
}

func NewChatRepository(db *badger.DB) IChatRepository {
	return &ChatRepository{db: db}
}

type chatRecord struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Participants []string  `json:"participants"`
	GroupName    string    `json:"group_name,omitempty"`
	GroupAvatar  string    `json:"group_avatar,omitempty"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func chatKey(id uuid.UUID) []byte {
	return []byte("chat:" + id.String())
}

// privatePairKey indexes a private chat under its canonical user pair so
// duplicate creation can be detected with a single point lookup.
func privatePairKey(userA, userB string) []byte {
	if userB < userA {
		userA, userB = userB, userA
	}
	return []byte(fmt.Sprintf("chat:private:%s:%s", userA, userB))
}

// CreateChat persists the chat and, for private chats, its pair index
// in one transaction. The pair index is read inside the same
// transaction, so two racing creates for the same pair conflict at
// commit time instead of both succeeding.
func (r ChatRepository) CreateChat(chat domain.Chat) error {
	data, err := json.Marshal(fromChat(chat))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if chat.Kind == domain.ChatKindPrivate {
			pairKey := privatePairKey(chat.Participants[0], chat.Participants[1])
			if _, err := txn.Get(pairKey); err == nil {
				return errors.ErrDuplicateChat
			}
			if err := txn.Set(pairKey, []byte(chat.ID.String())); err != nil {
				return err
			}
		}
		return txn.Set(chatKey(chat.ID), data)
	})
	// A create/create race on the same pair loses the SSI conflict; to
	// the caller that is the same situation as a pre-existing pair.
	if err == badger.ErrConflict && chat.Kind == domain.ChatKindPrivate {
		return errors.ErrDuplicateChat
	}
	return err
}

func (r ChatRepository) GetChat(id uuid.UUID) (domain.Chat, error) {
	var record chatRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chatKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Chat{}, fmt.Errorf("%w: chat %s", errors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Chat{}, err
	}
	return toChat(record)
}

// FindPrivateChat resolves the canonical pair index to the chat itself.
func (r ChatRepository) FindPrivateChat(userA, userB string) (domain.Chat, error) {
	var rawID []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(privatePairKey(userA, userB))
		if err != nil {
			return err
		}
		rawID, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return domain.Chat{}, fmt.Errorf("%w: private chat %s/%s", errors.ErrNotFound, userA, userB)
	}
	if err != nil {
		return domain.Chat{}, err
	}

	id, err := uuid.Parse(string(rawID))
	if err != nil {
		return domain.Chat{}, err
	}
	return r.GetChat(id)
}

func fromChat(chat domain.Chat) chatRecord {
	return chatRecord{
		ID:           chat.ID.String(),
		Kind:         string(chat.Kind),
		Participants: chat.Participants,
		GroupName:    chat.GroupName,
		GroupAvatar:  chat.GroupAvatar,
		CreatedBy:    chat.CreatedBy,
		CreatedAt:    chat.CreatedAt,
		UpdatedAt:    chat.UpdatedAt,
	}
}

func toChat(record chatRecord) (domain.Chat, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.Chat{}, err
	}
	return domain.Chat{
		ID:           id,
		Kind:         domain.ChatKind(record.Kind),
		Participants: record.Participants,
		GroupName:    record.GroupName,
		GroupAvatar:  record.GroupAvatar,
		CreatedBy:    record.CreatedBy,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}, nil
}
