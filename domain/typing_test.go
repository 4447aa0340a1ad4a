package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTypingStatus_FreshAt(t *testing.T) {
	req := require.New(t)
	window := 5 * time.Second
	now := time.Now().UTC()

	ts := TypingStatus{UserID: "alice", IsTyping: true, UpdatedAt: now}

	// Within the window the signal holds
	req.True(ts.FreshAt(now.Add(window), window))

	// One instant past the window it is stale, no event required
	req.False(ts.FreshAt(now.Add(window+time.Nanosecond), window))

	// An explicit stop is never fresh
	ts.IsTyping = false
	req.False(ts.FreshAt(now, window))
}
