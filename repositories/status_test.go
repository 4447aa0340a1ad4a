package repositories

import (
	"chat-core/domain"
	"chat-core/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func initTestStatuses(t *testing.T, repository IStatusRepository, messageID uuid.UUID, recipients ...string) {
	t.Helper()
	statuses := make([]domain.DeliveryStatus, 0, len(recipients))
	for _, recipient := range recipients {
		statuses = append(statuses, domain.DeliveryStatus{
			ID:          uuid.New(),
			MessageID:   messageID,
			RecipientID: recipient,
			State:       domain.StateSent,
			UpdatedAt:   time.Now().UTC(),
		})
	}
	require.NoError(t, repository.InitStatuses(statuses))
}

func TestStatusRepository_InitCreatesOneRecordPerRecipient(t *testing.T) {
	req := require.New(t)
	repository := NewStatusRepository(openTestDB(t), slog.Default())

	messageID := uuid.New()
	initTestStatuses(t, repository, messageID, "bob", "clara")

	statuses, err := repository.ListStatuses(messageID)
	req.NoError(err)
	req.Len(statuses, 2)
	for _, status := range statuses {
		req.Equal(domain.StateSent, status.State)
	}
}

func TestStatusRepository_InitIsReplaySafe(t *testing.T) {
	req := require.New(t)
	repository := NewStatusRepository(openTestDB(t), slog.Default())

	messageID := uuid.New()
	initTestStatuses(t, repository, messageID, "bob")

	// Advance, then replay the init: the seen record must survive
	_, err := repository.AdvanceStatus(messageID, "bob", domain.StateSeen, time.Now().UTC())
	req.NoError(err)
	initTestStatuses(t, repository, messageID, "bob")

	status, err := repository.GetStatus(messageID, "bob")
	req.NoError(err)
	req.Equal(domain.StateSeen, status.State)
}

func TestStatusRepository_AdvanceIsMonotonic(t *testing.T) {
	req := require.New(t)
	repository := NewStatusRepository(openTestDB(t), slog.Default())

	messageID := uuid.New()
	initTestStatuses(t, repository, messageID, "bob")

	status, err := repository.AdvanceStatus(messageID, "bob", domain.StateDelivered, time.Now().UTC())
	req.NoError(err)
	req.Equal(domain.StateDelivered, status.State)

	status, err = repository.AdvanceStatus(messageID, "bob", domain.StateSeen, time.Now().UTC())
	req.NoError(err)
	req.Equal(domain.StateSeen, status.State)

	// Regression after seen is rejected
	_, err = repository.AdvanceStatus(messageID, "bob", domain.StateDelivered, time.Now().UTC())
	req.ErrorIs(err, errors.ErrInvalidTransition)
	_, err = repository.AdvanceStatus(messageID, "bob", domain.StateSent, time.Now().UTC())
	req.ErrorIs(err, errors.ErrInvalidTransition)
}

func TestStatusRepository_AdvanceToCurrentStateIsNoOp(t *testing.T) {
	req := require.New(t)
	repository := NewStatusRepository(openTestDB(t), slog.Default())

	messageID := uuid.New()
	initTestStatuses(t, repository, messageID, "bob")

	first, err := repository.AdvanceStatus(messageID, "bob", domain.StateDelivered, time.Now().UTC())
	req.NoError(err)

	// Retrying the same advance succeeds without touching the record
	second, err := repository.AdvanceStatus(messageID, "bob", domain.StateDelivered, time.Now().UTC().Add(time.Hour))
	req.NoError(err)
	req.Equal(first.UpdatedAt, second.UpdatedAt)
	req.Equal(domain.StateDelivered, second.State)
}

func TestStatusRepository_DirectSentToSeenJump(t *testing.T) {
	req := require.New(t)
	repository := NewStatusRepository(openTestDB(t), slog.Default())

	messageID := uuid.New()
	initTestStatuses(t, repository, messageID, "bob")

	status, err := repository.AdvanceStatus(messageID, "bob", domain.StateSeen, time.Now().UTC())
	req.NoError(err)
	req.Equal(domain.StateSeen, status.State)
}

func TestStatusRepository_AdvanceUnknownPair(t *testing.T) {
	req := require.New(t)
	repository := NewStatusRepository(openTestDB(t), slog.Default())

	// Recipient was never part of the fan-out
	_, err := repository.AdvanceStatus(uuid.New(), "mallory", domain.StateSeen, time.Now().UTC())
	req.ErrorIs(err, errors.ErrNotFound)
}
