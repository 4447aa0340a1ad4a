package workers

import (
	"chat-core/contract"
	"chat-core/domain"
	"context"
	"log/slog"
	"time"
)

// NotificationFanout broadcasts notifications to in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding
// delivery, ordering, durability, or retries. NotificationFanout is
// not a message broker.
//
// Permanent sinks (projections, search index) receive every
// notification. The per-user sink, resolved through the registry,
// receives only what targets that user; offline users are skipped.
//
// NotificationFanout is safe for concurrent use by multiple goroutines.
type NotificationFanout struct {
	log            *slog.Logger
	Notifications  chan domain.Notification
	registry       contract.IRegistry
	permanentSinks []contract.NotificationSink
	sinkTimeout    time.Duration
}

func NewNotificationFanout(log *slog.Logger, notifications chan domain.Notification,
	registry contract.IRegistry, sinkTimeout time.Duration) *NotificationFanout {
	return &NotificationFanout{
		log:           log,
		Notifications: notifications,
		registry:      registry,
		sinkTimeout:   sinkTimeout,
	}
}

func (w *NotificationFanout) Add(sinks ...contract.NotificationSink) *NotificationFanout {
	w.permanentSinks = append(w.permanentSinks, sinks...)
	return w
}

func (w *NotificationFanout) Run(ctx context.Context) error {
	for {
		select {
		case n := <-w.Notifications:
			w.Fanout(n)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping notification fanout")
			return nil
		}
	}
}

// Fanout pushes one notification to every permanent sink and to the
// target user's live connection when there is one. Each push runs in
// its own goroutine under a bounded timeout so a slow sink cannot
// stall the others.
func (w *NotificationFanout) Fanout(n domain.Notification) {
	sinks := make([]contract.NotificationSink, 0, len(w.permanentSinks)+1)
	sinks = append(sinks, w.permanentSinks...)
	if live, ok := w.registry.SinkFor(n.TargetUserID); ok {
		sinks = append(sinks, live)
	}

	for _, s := range sinks {
		go func(s contract.NotificationSink) {
			ctx, cancel := context.WithTimeout(context.Background(), w.sinkTimeout)
			defer cancel()
			if err := s.Push(ctx, n); err != nil {
				w.log.Warn("Sink push failed", "target", n.TargetUserID, "kind", n.Kind, "error", err)
			}
		}(s)
	}
}
