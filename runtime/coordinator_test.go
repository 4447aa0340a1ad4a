package runtime

import (
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/repositories"
	"chat-core/runtime/workers"
	"chat-core/search"
	"chat-core/services"
	"chat-core/sink"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

type coordinatorFixture struct {
	coordinator *Coordinator
	registry    *Registry
}

func newCoordinatorFixture(t *testing.T) coordinatorFixture {
	t.Helper()
	log := slog.Default()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })

	messageRepository := repositories.NewMessageRepository(db, log, nil)
	t.Cleanup(func() { _ = messageRepository.Close() })

	chats := services.NewChatRegistry(repositories.NewChatRepository(db))
	messages := services.NewMessageStore(messageRepository, chats, nil, log)
	deliveries := services.NewDeliveryTracker(repositories.NewStatusRepository(db, log), log)
	typing := services.NewTypingTracker(repositories.NewTypingRepository(db), chats, 5*time.Second)

	registry := NewRegistry()
	coordinator := NewCoordinator(
		log, chats, messages, deliveries, typing,
		search.NewIndex(writer, log),
		workers.NewSupervisor(log, 50*time.Millisecond),
		registry,
		64, time.Second, time.Minute,
	)

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	go func() {
		close(started)
		_ = coordinator.Start(ctx)
	}()
	<-started
	t.Cleanup(func() {
		cancel()
		coordinator.Stop()
	})

	return coordinatorFixture{coordinator: coordinator, registry: registry}
}

func (f coordinatorFixture) createGroup(t *testing.T, participants ...string) domain.Chat {
	t.Helper()
	chat, err := f.coordinator.CreateChat(domain.CreateChatCommand{
		Kind:           domain.ChatKindGroup,
		CreatorID:      participants[0],
		ParticipantIDs: participants,
	})
	require.NoError(t, err)
	return chat
}

func (f coordinatorFixture) connect(userID string) *sink.ConnectionSink {
	connection := sink.NewConnectionSink(16)
	f.coordinator.Connect(userID, connection)
	return connection
}

func awaitNotification(t *testing.T, connection *sink.ConnectionSink, kind domain.NotificationKind) domain.Notification {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case n := <-connection.Notifications:
			if n.Kind == kind {
				return n
			}
		case <-deadline:
			t.Fatalf("no %s notification arrived in time", kind)
		}
	}
}

func TestCoordinator_SendMessageTracksEveryRecipient(t *testing.T) {
	req := require.New(t)
	fixture := newCoordinatorFixture(t)
	chat := fixture.createGroup(t, "alice", "bob", "clara")

	bob := fixture.connect("bob")
	clara := fixture.connect("clara")

	message, notifications, err := fixture.coordinator.SendMessage(context.Background(), domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
		Content:  domain.Content{Text: "release is out"},
	})
	req.NoError(err)
	// One notification per recipient plus the sender echo
	req.Len(notifications, 3)

	// One sent record per recipient, none for the sender
	summary, err := fixture.coordinator.AggregateStatus(message.ID)
	req.NoError(err)
	req.Equal(2, summary.Total)
	req.Zero(summary.Delivered)

	// Both connected recipients receive the message push
	for _, connection := range []*sink.ConnectionSink{bob, clara} {
		n := awaitNotification(t, connection, domain.KindNewMessage)
		pushed, ok := n.Payload.(domain.Message)
		req.True(ok)
		req.Equal(message.ID, pushed.ID)
	}
}

func TestCoordinator_MarkSeenNotifiesSender(t *testing.T) {
	req := require.New(t)
	fixture := newCoordinatorFixture(t)
	chat := fixture.createGroup(t, "alice", "bob")

	alice := fixture.connect("alice")

	message, _, err := fixture.coordinator.SendMessage(context.Background(), domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
		Content:  domain.Content{Text: "ping"},
	})
	req.NoError(err)

	// Seen straight from sent: the delivered step is implied
	status, produced, err := fixture.coordinator.MarkSeen(context.Background(), message.ID, "bob")
	req.NoError(err)
	req.Equal(domain.StateSeen, status.State)
	req.Equal("alice", produced.TargetUserID)

	n := awaitNotification(t, alice, domain.KindStatusUpdate)
	payload, ok := n.Payload.(domain.StatusUpdatePayload)
	req.True(ok)
	req.Equal("bob", payload.Status.RecipientID)
	req.Equal(1, payload.Summary.Seen)
	req.True(payload.Summary.AllSeen())
}

func TestCoordinator_DeliveredAfterSeenIsRejected(t *testing.T) {
	req := require.New(t)
	fixture := newCoordinatorFixture(t)
	chat := fixture.createGroup(t, "alice", "bob")
	ctx := context.Background()

	message, _, err := fixture.coordinator.SendMessage(ctx, domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
		Content:  domain.Content{Text: "ping"},
	})
	req.NoError(err)

	_, _, err = fixture.coordinator.MarkSeen(ctx, message.ID, "bob")
	req.NoError(err)

	_, _, err = fixture.coordinator.MarkDelivered(ctx, message.ID, "bob")
	req.ErrorIs(err, errors.ErrInvalidTransition)
}

func TestCoordinator_TypingUpdateReachesOthersOnly(t *testing.T) {
	req := require.New(t)
	fixture := newCoordinatorFixture(t)
	chat := fixture.createGroup(t, "alice", "bob")

	bob := fixture.connect("bob")

	produced, err := fixture.coordinator.UpdateTyping(context.Background(), chat.ID, "alice", true)
	req.NoError(err)
	req.Len(produced, 1)

	n := awaitNotification(t, bob, domain.KindTypingUpdate)
	payload, ok := n.Payload.(domain.TypingUpdatePayload)
	req.True(ok)
	req.Equal("alice", payload.UserID)
	req.True(payload.IsTyping)

	typingUsers, err := fixture.coordinator.ListTypingUsers(chat.ID)
	req.NoError(err)
	req.Equal([]string{"alice"}, typingUsers)
}

func TestCoordinator_SearchIsMembershipGated(t *testing.T) {
	req := require.New(t)
	fixture := newCoordinatorFixture(t)
	chat := fixture.createGroup(t, "alice", "bob")
	ctx := context.Background()

	message, _, err := fixture.coordinator.SendMessage(ctx, domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
		Content:  domain.Content{Text: "rollout plan attached"},
	})
	req.NoError(err)

	_, err = fixture.coordinator.SearchMessages(ctx, chat.ID, "mallory", "rollout", 10)
	req.ErrorIs(err, errors.ErrNotParticipant)

	// The index is fed asynchronously through the fanout
	req.Eventually(func() bool {
		hits, err := fixture.coordinator.SearchMessages(ctx, chat.ID, "bob", "rollout", 10)
		return err == nil && len(hits) == 1 && hits[0].MessageID == message.ID
	}, 2*time.Second, 50*time.Millisecond)
}

func TestCoordinator_DisconnectStopsPushes(t *testing.T) {
	req := require.New(t)
	fixture := newCoordinatorFixture(t)
	chat := fixture.createGroup(t, "alice", "bob")

	bob := fixture.connect("bob")
	fixture.coordinator.Disconnect("bob")

	_, _, err := fixture.coordinator.SendMessage(context.Background(), domain.SendMessageCommand{
		ChatID:   chat.ID,
		SenderID: "alice",
		Content:  domain.Content{Text: "anyone there"},
	})
	req.NoError(err)

	select {
	case n := <-bob.Notifications:
		t.Fatalf("disconnected user received %s", n.Kind)
	case <-time.After(200 * time.Millisecond):
	}
}
