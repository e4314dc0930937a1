package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A client that stops draining its buffer is dropped during the broadcast
// itself, so one stalled connection never blocks the hub's event loop or
// anyone else's updates.
func TestHubDropsStalledClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	stalled := &Client{RoundID: "round-1", Send: make(chan []byte, 1)}
	healthy := &Client{RoundID: "round-1", Send: make(chan []byte, 16)}
	hub.Register(stalled)
	hub.Register(healthy)

	hub.BroadcastToRound("round-1", []byte("first"))
	hub.BroadcastToRound("round-1", []byte("second"))

	// The healthy client keeps receiving; the loop did not stall on the
	// stalled one.
	assert.Equal(t, "first", string(<-healthy.Send))
	assert.Equal(t, "second", string(<-healthy.Send))

	// The stalled client's buffered message is still readable, after which
	// its channel is closed instead of queueing more.
	assert.Equal(t, "first", string(<-stalled.Send))
	_, open := <-stalled.Send
	assert.False(t, open, "a stalled client's send channel is closed")
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{RoundID: "round-1", Send: make(chan []byte, 1)}
	hub.Register(client)
	hub.Unregister(client)

	_, open := <-client.Send
	assert.False(t, open)

	// Broadcasting to the emptied round is a no-op, not a panic.
	hub.BroadcastToRound("round-1", []byte("late"))
}
