// Package runtime wires the delivery core together: it coordinates the
// services, the notification fan-out, and supervised background
// workers without containing domain rules itself.
package runtime

import (
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/runtime/workers"
	"chat-core/search"
	"chat-core/services"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Coordinator handles the lifecycle and coordination of one chat
// session backend. Every externally triggered operation enters here,
// is delegated to the owning service, and fans its notifications out
// through the supervised pipeline.
type Coordinator struct {
	mu             sync.Mutex
	log            *slog.Logger
	chats          services.IChatRegistry
	messages       services.IMessageStore
	deliveries     services.IDeliveryTracker
	typing         services.ITypingTracker
	index          *search.Index
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	notifications  chan domain.Notification
	permanentSinks []contract.NotificationSink
	sinkTimeout    time.Duration
	metricInterval time.Duration
}

func NewCoordinator(
	log *slog.Logger,
	chats services.IChatRegistry,
	messages services.IMessageStore,
	deliveries services.IDeliveryTracker,
	typing services.ITypingTracker,
	index *search.Index,
	supervisor contract.ISupervisor,
	registry contract.IRegistry,
	bufferSize int,
	sinkTimeout time.Duration,
	metricInterval time.Duration,
) *Coordinator {
	return &Coordinator{
		log:            log,
		chats:          chats,
		messages:       messages,
		deliveries:     deliveries,
		typing:         typing,
		index:          index,
		supervisor:     supervisor,
		registry:       registry,
		notifications:  make(chan domain.Notification, bufferSize),
		sinkTimeout:    sinkTimeout,
		metricInterval: metricInterval,
	}
}

func (c *Coordinator) Add(sinks ...contract.NotificationSink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.permanentSinks = append(c.permanentSinks, sinks...)
}

func (c *Coordinator) CreateChat(cmd domain.CreateChatCommand) (domain.Chat, error) {
	return c.chats.CreateChat(cmd)
}

func (c *Coordinator) GetChat(chatID uuid.UUID) (domain.Chat, error) {
	return c.chats.GetChat(chatID)
}

// SendMessage appends the message, snapshots one sent record per
// recipient, then queues a newMessage notification for each recipient
// and an echo for the sender carrying the assigned sequence. The
// produced notifications are also returned so callers can reconcile
// what was dispatched.
func (c *Coordinator) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, []domain.Notification, error) {
	message, err := c.messages.AppendMessage(ctx, cmd)
	if err != nil {
		return domain.Message{}, nil, err
	}

	chat, err := c.chats.GetChat(message.ChatID)
	if err != nil {
		return domain.Message{}, nil, err
	}
	recipients := chat.RecipientsOf(message.SenderID)

	if _, err = c.deliveries.InitStatuses(ctx, message.ID, recipients); err != nil {
		return domain.Message{}, nil, err
	}

	notifications := make([]domain.Notification, 0, len(recipients)+1)
	for _, recipientID := range recipients {
		notifications = append(notifications, domain.Notification{
			TargetUserID: recipientID,
			Kind:         domain.KindNewMessage,
			Payload:      message,
		})
	}
	notifications = append(notifications, domain.Notification{
		TargetUserID: message.SenderID,
		Kind:         domain.KindNewMessage,
		Payload:      message,
	})
	for _, n := range notifications {
		c.Dispatch(n)
	}
	return message, notifications, nil
}

// MarkDelivered records the transport-level receipt for one recipient
// and pushes the refreshed aggregate back to the message's sender.
func (c *Coordinator) MarkDelivered(ctx context.Context, messageID uuid.UUID, recipientID string) (domain.DeliveryStatus, domain.Notification, error) {
	return c.advance(ctx, messageID, recipientID, domain.StateDelivered)
}

// MarkSeen records that the recipient viewed the message. Jumping
// straight from sent is legal; the delivered step is implied.
func (c *Coordinator) MarkSeen(ctx context.Context, messageID uuid.UUID, recipientID string) (domain.DeliveryStatus, domain.Notification, error) {
	return c.advance(ctx, messageID, recipientID, domain.StateSeen)
}

func (c *Coordinator) advance(ctx context.Context, messageID uuid.UUID, recipientID string, next domain.DeliveryState) (domain.DeliveryStatus, domain.Notification, error) {
	status, err := c.deliveries.AdvanceStatus(ctx, messageID, recipientID, next)
	if err != nil {
		return domain.DeliveryStatus{}, domain.Notification{}, err
	}

	summary, err := c.deliveries.AggregateStatus(messageID)
	if err != nil {
		return domain.DeliveryStatus{}, domain.Notification{}, err
	}
	message, err := c.messages.GetMessage(messageID)
	if err != nil {
		return domain.DeliveryStatus{}, domain.Notification{}, err
	}

	notification := domain.Notification{
		TargetUserID: message.SenderID,
		Kind:         domain.KindStatusUpdate,
		Payload:      domain.StatusUpdatePayload{Status: status, Summary: summary},
	}
	c.Dispatch(notification)
	return status, notification, nil
}

func (c *Coordinator) AggregateStatus(messageID uuid.UUID) (domain.StatusSummary, error) {
	return c.deliveries.AggregateStatus(messageID)
}

// UpdateTyping refreshes the composing indicator and tells the other
// participants. Typing updates are ephemeral; nothing is replayed for
// users who connect later.
func (c *Coordinator) UpdateTyping(ctx context.Context, chatID uuid.UUID, userID string, isTyping bool) ([]domain.Notification, error) {
	status, err := c.typing.SetTyping(ctx, chatID, userID, isTyping)
	if err != nil {
		return nil, err
	}

	chat, err := c.chats.GetChat(chatID)
	if err != nil {
		return nil, err
	}
	others := chat.RecipientsOf(userID)
	notifications := make([]domain.Notification, 0, len(others))
	for _, other := range others {
		notifications = append(notifications, domain.Notification{
			TargetUserID: other,
			Kind:         domain.KindTypingUpdate,
			Payload: domain.TypingUpdatePayload{
				ChatID:   chatID,
				UserID:   userID,
				IsTyping: status.IsTyping,
			},
		})
	}
	for _, n := range notifications {
		c.Dispatch(n)
	}
	return notifications, nil
}

func (c *Coordinator) ListTypingUsers(chatID uuid.UUID) ([]string, error) {
	return c.typing.ListTypingUsers(chatID)
}

func (c *Coordinator) ListMessages(cmd domain.ListMessagesCommand) ([]domain.Message, *string, error) {
	return c.messages.ListMessages(cmd)
}

// SearchMessages runs a full-text query over one chat's history.
// Callers must be participants, same as for listing.
func (c *Coordinator) SearchMessages(ctx context.Context, chatID uuid.UUID, callerID, query string, limit int) ([]search.Hit, error) {
	member, err := c.chats.IsParticipant(chatID, callerID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: %s in chat %s", errors.ErrNotParticipant, callerID, chatID)
	}
	if c.index == nil {
		return nil, nil
	}
	return c.index.Search(ctx, chatID, query, limit)
}

// Connect registers a user's live connection for notification pushes.
func (c *Coordinator) Connect(userID string, sink contract.NotificationSink) {
	c.registry.Subscribe(userID, sink)
}

// Disconnect drops the user's connection. Pending notifications for
// them are lost; clients reconcile by re-fetching state.
func (c *Coordinator) Disconnect(userID string) {
	c.registry.Unsubscribe(userID)
}

// Dispatch queues a notification for fan-out without ever blocking
// the caller. A full queue drops the notification, which the
// at-most-once contract allows.
func (c *Coordinator) Dispatch(n domain.Notification) {
	select {
	case c.notifications <- n:
	default:
		c.log.Warn("Notification channel full, dropping", "target", n.TargetUserID, "kind", n.Kind)
	}
}

// Start prepares the pipeline and hands every worker to the
// supervisor, then blocks until the context is canceled or Stop is
// called.
func (c *Coordinator) Start(ctx context.Context) error {
	fanout := c.prepareFanout()
	health := workers.NewHealthMonitoringWorker(c.log, c.metricInterval,
		func() int { return len(c.notifications) })

	c.mu.Lock()
	c.supervisor.Add(fanout)
	c.supervisor.Add(health)
	c.mu.Unlock()

	c.log.Info("Starting coordinator and all supervised workers")
	c.supervisor.Run(ctx)
	return nil
}

// prepareFanout assembles the fanout worker over the permanent sinks.
// The search index, when present, rides the same pipeline as any
// other sink.
func (c *Coordinator) prepareFanout() contract.Worker {
	c.mu.Lock()
	sinks := make([]contract.NotificationSink, len(c.permanentSinks))
	copy(sinks, c.permanentSinks)
	c.mu.Unlock()

	if c.index != nil {
		sinks = append(sinks, c.index)
	}
	return workers.NewNotificationFanout(c.log, c.notifications, c.registry, c.sinkTimeout).Add(sinks...)
}

// Stop initiates a graceful shutdown. The supervised context is
// canceled and Start returns once every worker has drained.
func (c *Coordinator) Stop() {
	c.log.Info("Requesting coordinator shutdown")
	c.supervisor.Stop()
}
