package runtime

import (
	"chat-core/contract"
	"sync"
)

// Registry is the in-process directory of live connections.
// One sink per user, whatever the number of chats they belong to.
// Chat membership is durable state and lives in the chat registry
// service, never here.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]contract.NotificationSink
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]contract.NotificationSink)}
}

// SinkFor resolves a user to their live connection.
// A missing entry means the user is offline, not an error.
func (r *Registry) SinkFor(userID string) (contract.NotificationSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sink, ok := r.sessions[userID]
	return sink, ok
}

// Subscribe registers a user's active connection.
// A reconnect simply replaces the previous sink.
func (r *Registry) Subscribe(userID string, sink contract.NotificationSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[userID] = sink
}

// Unsubscribe drops the user's connection from the directory.
func (r *Registry) Unsubscribe(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
}
