package runtime

import (
	"chat-core/sink"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_SubscribeAndResolve(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	_, ok := registry.SinkFor("alice")
	req.False(ok)

	connection := sink.NewConnectionSink(4)
	registry.Subscribe("alice", connection)

	resolved, ok := registry.SinkFor("alice")
	req.True(ok)
	req.Equal(connection, resolved)
}

func TestRegistry_ReconnectReplacesSink(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	stale := sink.NewConnectionSink(4)
	fresh := sink.NewConnectionSink(4)
	registry.Subscribe("alice", stale)
	registry.Subscribe("alice", fresh)

	resolved, ok := registry.SinkFor("alice")
	req.True(ok)
	req.Equal(fresh, resolved)
}

func TestRegistry_Unsubscribe(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.Subscribe("alice", sink.NewConnectionSink(4))
	registry.Unsubscribe("alice")

	_, ok := registry.SinkFor("alice")
	req.False(ok)

	// Unsubscribing an unknown user is a no-op
	registry.Unsubscribe("bob")
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()
	done := make(chan struct{})

	go func() {
		for i := 0; i < 100; i++ {
			registry.Subscribe("alice", sink.NewConnectionSink(1))
			registry.Unsubscribe("alice")
		}
		close(done)
	}()
	for i := 0; i < 100; i++ {
		if s, ok := registry.SinkFor("alice"); ok && s == nil {
			t.Fatal("registered sink must never be nil")
		}
	}
	<-done
}
