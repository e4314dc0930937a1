// Package websocket implements the hub that pushes live scorecard updates.
// When any player in a group enters a score, everyone else watching the same
// round sees the recomputed results — totals, match status, skins — without
// polling: the scores handler recomputes through the engine and hands the
// JSON to the hub, which fans it out to every connection on that round.
package websocket

import "sync"

// Client is one connected viewer of one round.
type Client struct {
	RoundID string      // which round this client is watching
	Send    chan []byte // outgoing messages; the hub writes, the connection's writer goroutine drains
}

// Message is a payload addressed to everyone watching a round.
type Message struct {
	RoundID string
	Data    []byte // JSON-encoded round results
}

// Hub tracks the active connections grouped by round ID. It runs in its own
// goroutine and funnels registration, unregistration, and broadcasts through
// channels so the clients map is only ever modified from one goroutine.
type Hub struct {
	// clients is roundID -> set of connected clients. A map[*Client]bool
	// stands in for a set, the usual Go idiom.
	clients map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client

	// mu guards reads of the clients map from the broadcast path while the
	// main loop holds the write side.
	mu sync.RWMutex
}

// NewHub creates a hub. The broadcast channel is buffered so a burst of
// score entries doesn't block the handlers feeding it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run is the hub's event loop; call it in a goroutine ("go hub.Run()").
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.RoundID] == nil {
				h.clients[client.RoundID] = make(map[*Client]bool)
			}
			h.clients[client.RoundID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.drop(client)

		case msg := <-h.broadcast:
			h.mu.RLock()
			clients := h.clients[msg.RoundID]
			h.mu.RUnlock()

			for client := range clients {
				select {
				case client.Send <- msg.Data:
				default:
					// The client's buffer is full — it has stopped
					// draining. Drop it in place; a send to h.unregister
					// from here would be a self-send the loop never
					// receives.
					h.drop(client)
				}
			}
		}
	}
}

// drop removes a client from its round's set and closes its Send channel,
// which signals the connection's writer goroutine to stop.
func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clients[client.RoundID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.Send)
			if len(clients) == 0 {
				delete(h.clients, client.RoundID)
			}
		}
	}
}

// BroadcastToRound sends data to everyone watching the given round.
func (h *Hub) BroadcastToRound(roundID string, data []byte) {
	h.broadcast <- &Message{RoundID: roundID, Data: data}
}

// Register adds a client to the hub when its connection opens.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client when its connection closes.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}
