package services

import (
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/repositories"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDeliveryTracker(t *testing.T) IDeliveryTracker {
	t.Helper()
	return NewDeliveryTracker(repositories.NewStatusRepository(openTestDB(t), slog.Default()), slog.Default())
}

func TestDeliveryTracker_InitCreatesSentRecords(t *testing.T) {
	req := require.New(t)
	tracker := newTestDeliveryTracker(t)
	messageID := newUUID()

	statuses, err := tracker.InitStatuses(context.Background(), messageID, []string{"bob", "clara"})
	req.NoError(err)
	req.Len(statuses, 2)
	for _, status := range statuses {
		req.Equal(domain.StateSent, status.State)
		req.Equal(messageID, status.MessageID)
	}
}

func TestDeliveryTracker_AdvanceAndAggregate(t *testing.T) {
	req := require.New(t)
	tracker := newTestDeliveryTracker(t)
	messageID := newUUID()
	ctx := context.Background()

	_, err := tracker.InitStatuses(ctx, messageID, []string{"bob", "clara"})
	req.NoError(err)

	status, err := tracker.AdvanceStatus(ctx, messageID, "bob", domain.StateDelivered)
	req.NoError(err)
	req.Equal(domain.StateDelivered, status.State)

	summary, err := tracker.AggregateStatus(messageID)
	req.NoError(err)
	req.Equal(domain.StatusSummary{MessageID: messageID, Total: 2, Delivered: 1, Seen: 0}, summary)
	req.False(summary.AllDelivered())

	_, err = tracker.AdvanceStatus(ctx, messageID, "clara", domain.StateSeen)
	req.NoError(err)

	summary, err = tracker.AggregateStatus(messageID)
	req.NoError(err)
	req.Equal(2, summary.Delivered)
	req.Equal(1, summary.Seen)
	req.True(summary.AllDelivered())
	req.False(summary.AllSeen())
}

func TestDeliveryTracker_AdvanceRejectsRegression(t *testing.T) {
	req := require.New(t)
	tracker := newTestDeliveryTracker(t)
	messageID := newUUID()
	ctx := context.Background()

	_, err := tracker.InitStatuses(ctx, messageID, []string{"bob"})
	req.NoError(err)

	_, err = tracker.AdvanceStatus(ctx, messageID, "bob", domain.StateSeen)
	req.NoError(err)

	_, err = tracker.AdvanceStatus(ctx, messageID, "bob", domain.StateDelivered)
	req.ErrorIs(err, errors.ErrInvalidTransition)
}

func TestDeliveryTracker_AdvanceUnknownRecipient(t *testing.T) {
	req := require.New(t)
	tracker := newTestDeliveryTracker(t)
	messageID := newUUID()
	ctx := context.Background()

	_, err := tracker.InitStatuses(ctx, messageID, []string{"bob"})
	req.NoError(err)

	// clara joined the group after the send: no record for her
	_, err = tracker.AdvanceStatus(ctx, messageID, "clara", domain.StateSeen)
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestDeliveryTracker_AggregateUnknownMessageIsEmpty(t *testing.T) {
	req := require.New(t)
	tracker := newTestDeliveryTracker(t)

	summary, err := tracker.AggregateStatus(newUUID())
	req.NoError(err)
	req.Zero(summary.Total)
}
