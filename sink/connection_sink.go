package sink

import (
	"chat-core/contract"
	"chat-core/domain"
	"context"
)

// ConnectionSink bridges the fan-out worker and one live connection.
// The transport handler drains Notifications and writes them to the
// wire; the sink itself never blocks the fan-out path.
type ConnectionSink struct {
	Notifications chan domain.Notification
}

var _ contract.NotificationSink = (*ConnectionSink)(nil)

func NewConnectionSink(bufferSize int) *ConnectionSink {
	return &ConnectionSink{Notifications: make(chan domain.Notification, bufferSize)}
}

// Push hands the notification to the connection's channel.
// A full buffer means the client is too slow: the notification is
// dropped rather than stalling delivery to everyone else.
func (s *ConnectionSink) Push(ctx context.Context, n domain.Notification) error {
	select {
	case s.Notifications <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
