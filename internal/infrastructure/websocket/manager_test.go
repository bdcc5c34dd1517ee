package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStartedManager(t *testing.T) *Manager {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := NewManager()
	m.Start(ctx)
	return m
}

func TestNotifyStorageChangedReachesClients(t *testing.T) {
	m := newStartedManager(t)

	client := &Client{ID: "view-1", Send: make(chan []byte, 4)}
	m.Register <- client

	m.NotifyStorageChanged("reviews")

	select {
	case raw := <-client.Send:
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, "storage_changed", event.Type)
		assert.Equal(t, "reviews", event.Key)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestRegisterUnregister(t *testing.T) {
	m := newStartedManager(t)

	client := &Client{ID: "view-1", Send: make(chan []byte, 4)}
	m.Register <- client
	assert.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	m.Unregister <- client
	assert.Eventually(t, func() bool { return m.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	// The manager closes the send channel on unregister.
	select {
	case _, ok := <-client.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestSlowClientIsEvicted(t *testing.T) {
	m := newStartedManager(t)

	// Nobody drains this channel, so the broadcast cannot queue on it.
	slow := &Client{ID: "slow", Send: make(chan []byte)}
	fast := &Client{ID: "fast", Send: make(chan []byte, 4)}
	m.Register <- slow
	m.Register <- fast

	m.NotifyStorageChanged("support_tickets")

	select {
	case raw := <-fast.Send:
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, "support_tickets", event.Key)
	case <-time.After(time.Second):
		t.Fatal("no event delivered to the healthy client")
	}

	assert.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	select {
	case _, ok := <-slow.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("evicted client's send channel was not closed")
	}
}
