package core

import "context"

// Hub owns the registry of connected sessions and fans mutation events out
// to every one of them. A single goroutine (Run) owns the registry, so the
// map needs no locking.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
}

// NewHub creates a hub. Call Run before registering clients.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 16),
	}
}

// Run processes registry changes and broadcast traffic until ctx is
// cancelled. Fan-out never waits on a client: a session whose event buffer
// is full misses the event rather than stalling the mutation path.
func (h *Hub) Run(ctx context.Context) {
	clients := make(map[*Client]struct{})

	for {
		select {
		case c := <-h.register:
			clients[c] = struct{}{}
		case c := <-h.unregister:
			if _, ok := clients[c]; ok {
				delete(clients, c)
				close(c.Events)
			}
		case ev := <-h.broadcast:
			for c := range clients {
				select {
				case c.Events <- ev:
				default:
					// Drop if slow consumer.
				}
			}
		case <-ctx.Done():
			for c := range clients {
				delete(clients, c)
				close(c.Events)
			}
			return
		}
	}
}

// RegisterClient adds a session to the fan-out set.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient removes a session and closes its event channel.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Broadcast queues ev for delivery to every connected session. Fire and
// forget: the caller gets no delivery confirmation.
func (h *Hub) Broadcast(ev Event) {
	h.broadcast <- ev
}
