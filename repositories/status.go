//go:generate go run go.uber.org/mock/mockgen -source=status.go -destination=../mocks/mock_status_repository.go -package=mocks
package repositories

import (
	"chat-core/domain"
	"chat-core/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IStatusRepository interface {
	InitStatuses(statuses []domain.DeliveryStatus) error
	GetStatus(messageID uuid.UUID, recipientID string) (domain.DeliveryStatus, error)
	AdvanceStatus(messageID uuid.UUID, recipientID string, next domain.DeliveryState, at time.Time) (domain.DeliveryStatus, error)
	ListStatuses(messageID uuid.UUID) ([]domain.DeliveryStatus, error)
}

type StatusRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewStatusRepository(db *badger.DB, log *slog.Logger) IStatusRepository {
	return &StatusRepository{db: db, log: log}
}

type statusRecord struct {
	ID          string    `json:"id"`
	MessageID   string    `json:"message_id"`
	RecipientID string    `json:"recipient_id"`
	State       int       `json:"state"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func statusKey(messageID uuid.UUID, recipientID string) []byte {
	return []byte(fmt.Sprintf("status:%s:%s", messageID, recipientID))
}

// InitStatuses creates the per-recipient records of a freshly sent
// message in one transaction. An already existing pair is left alone,
// preserving the one-record-per-pair invariant under replays.
func (r StatusRepository) InitStatuses(statuses []domain.DeliveryStatus) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, status := range statuses {
			key := statusKey(status.MessageID, status.RecipientID)
			if _, err := txn.Get(key); err == nil {
				r.log.Debug("Status record already exists, keeping it",
					"message", status.MessageID, "recipient", status.RecipientID)
				continue
			}
			data, err := json.Marshal(fromStatus(status))
			if err != nil {
				return err
			}
			if err = txn.Set(key, data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r StatusRepository) GetStatus(messageID uuid.UUID, recipientID string) (domain.DeliveryStatus, error) {
	var record statusRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(statusKey(messageID, recipientID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.DeliveryStatus{}, fmt.Errorf("%w: status %s/%s", errors.ErrNotFound, messageID, recipientID)
	}
	if err != nil {
		return domain.DeliveryStatus{}, err
	}
	return toStatus(record)
}

// AdvanceStatus is the transactional guard of the state machine: read
// the current record, validate the transition, write the new state.
// Two concurrent calls for the same pair conflict at commit; the loser
// is retried once against the fresh state, so an out-of-order result
// can never be committed. Advancing to the current state is a no-op
// success, which makes client retries harmless.
func (r StatusRepository) AdvanceStatus(messageID uuid.UUID, recipientID string, next domain.DeliveryState, at time.Time) (domain.DeliveryStatus, error) {
	var updated domain.DeliveryStatus

	attempt := func() error {
		return r.db.Update(func(txn *badger.Txn) error {
			key := statusKey(messageID, recipientID)
			item, err := txn.Get(key)
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: status %s/%s", errors.ErrNotFound, messageID, recipientID)
			}
			if err != nil {
				return err
			}

			var record statusRecord
			if err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			current, err := toStatus(record)
			if err != nil {
				return err
			}

			if next == current.State {
				updated = current
				return nil
			}
			if !current.State.CanAdvanceTo(next) {
				return fmt.Errorf("%w: %s -> %s", errors.ErrInvalidTransition, current.State, next)
			}

			current.State = next
			current.UpdatedAt = at
			data, err := json.Marshal(fromStatus(current))
			if err != nil {
				return err
			}
			if err = txn.Set(key, data); err != nil {
				return err
			}
			updated = current
			return nil
		})
	}

	err := attempt()
	if err == badger.ErrConflict {
		r.log.Debug("Status advance conflicted, retrying once",
			"message", messageID, "recipient", recipientID)
		err = attempt()
	}
	if err != nil {
		return domain.DeliveryStatus{}, err
	}
	return updated, nil
}

// ListStatuses scans every record of one message for aggregation.
func (r StatusRepository) ListStatuses(messageID uuid.UUID) ([]domain.DeliveryStatus, error) {
	var statuses []domain.DeliveryStatus
	prefix := []byte(fmt.Sprintf("status:%s:", messageID))

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record statusRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				status, err := toStatus(record)
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

func fromStatus(status domain.DeliveryStatus) statusRecord {
	return statusRecord{
		ID:          status.ID.String(),
		MessageID:   status.MessageID.String(),
		RecipientID: status.RecipientID,
		State:       int(status.State),
		UpdatedAt:   status.UpdatedAt,
	}
}

func toStatus(record statusRecord) (domain.DeliveryStatus, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.DeliveryStatus{}, err
	}
	messageID, err := uuid.Parse(record.MessageID)
	if err != nil {
		return domain.DeliveryStatus{}, err
	}
	return domain.DeliveryStatus{
		ID:          id,
		MessageID:   messageID,
		RecipientID: record.RecipientID,
		State:       domain.DeliveryState(record.State),
		UpdatedAt:   record.UpdatedAt,
	}, nil
}
