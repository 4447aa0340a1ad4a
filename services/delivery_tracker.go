//go:generate go run go.uber.org/mock/mockgen -source=delivery_tracker.go -destination=../mocks/mock_delivery_tracker.go -package=mocks
package services

import (
	"chat-core/domain"
	"chat-core/repositories"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// IDeliveryTracker owns the per-(message, recipient) receipt records
// and enforces the monotonic sent < delivered < seen machine.
type IDeliveryTracker interface {
	InitStatuses(ctx context.Context, messageID uuid.UUID, recipientIDs []string) ([]domain.DeliveryStatus, error)
	AdvanceStatus(ctx context.Context, messageID uuid.UUID, recipientID string, next domain.DeliveryState) (domain.DeliveryStatus, error)
	AggregateStatus(messageID uuid.UUID) (domain.StatusSummary, error)
}

type DeliveryTracker struct {
	statuses repositories.IStatusRepository
	log      *slog.Logger
}

func NewDeliveryTracker(statuses repositories.IStatusRepository, log *slog.Logger) IDeliveryTracker {
	return &DeliveryTracker{statuses: statuses, log: log}
}

// InitStatuses snapshots the recipient set of a freshly appended
// message: one sent record per recipient. Members added to the chat
// later are deliberately not tracked for this message.
func (t *DeliveryTracker) InitStatuses(ctx context.Context, messageID uuid.UUID, recipientIDs []string) ([]domain.DeliveryStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	statuses := lo.Map(recipientIDs, func(recipientID string, _ int) domain.DeliveryStatus {
		return domain.DeliveryStatus{
			ID:          uuid.New(),
			MessageID:   messageID,
			RecipientID: recipientID,
			State:       domain.StateSent,
			UpdatedAt:   now,
		}
	})
	if err := t.statuses.InitStatuses(statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// AdvanceStatus moves one pair forward. Regressions surface as
// ErrInvalidTransition, an unknown pair as ErrNotFound, and advancing
// to the current state is a no-op success.
func (t *DeliveryTracker) AdvanceStatus(ctx context.Context, messageID uuid.UUID, recipientID string, next domain.DeliveryState) (domain.DeliveryStatus, error) {
	if err := ctx.Err(); err != nil {
		return domain.DeliveryStatus{}, err
	}
	return t.statuses.AdvanceStatus(messageID, recipientID, next, time.Now().UTC())
}

// AggregateStatus derives the message-level view over all tracked
// recipients. Read-only; tolerates partial recipient sets.
func (t *DeliveryTracker) AggregateStatus(messageID uuid.UUID) (domain.StatusSummary, error) {
	statuses, err := t.statuses.ListStatuses(messageID)
	if err != nil {
		return domain.StatusSummary{}, err
	}
	return domain.StatusSummary{
		MessageID: messageID,
		Total:     len(statuses),
		Delivered: lo.CountBy(statuses, func(s domain.DeliveryStatus) bool {
			return s.State >= domain.StateDelivered
		}),
		Seen: lo.CountBy(statuses, func(s domain.DeliveryStatus) bool {
			return s.State == domain.StateSeen
		}),
	}, nil
}
