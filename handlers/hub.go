// Package handlers hub.go
//
// The hub is the session manager between websocket clients and the
// simulation engine: it delivers typed intents in and fans events and
// state frames out. It implements game.EventSink.
package handlers

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/4cecoder/arena/game"
)

type Hub struct {
	engine *game.Engine

	// Mutex protects the clients map: sessions register from their own
	// connection goroutines while the engine broadcasts from its loop.
	mu      sync.Mutex
	clients map[string]*Client
}

// NewHub creates a hub. The engine may be nil at construction time:
// the hub is the engine's event sink, so the two are built in sequence
// and wired with SetEngine before any connection is served.
func NewHub(engine *game.Engine) *Hub {
	return &Hub{
		engine:  engine,
		clients: make(map[string]*Client),
	}
}

// SetEngine installs the engine intents are posted to.
func (h *Hub) SetEngine(engine *game.Engine) { h.engine = engine }

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
	log.Printf("registered client %s", c.ID)
}

// unregister removes c and closes its send channel. The close happens
// under the mutex, so no sender can reach a closed channel: Broadcast
// and SendTo both hold the mutex across their sends. A second call for
// the same client is a no-op.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.ID] != c {
		return
	}
	delete(h.clients, c.ID)
	close(c.out)
	log.Printf("unregistered client %s", c.ID)
}

// Broadcast sends v to every connected session.
func (h *Hub) Broadcast(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("marshal broadcast: %v", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		c.send(data)
	}
}

// SendTo sends v to one session; unknown ids are dropped. The send
// stays under the mutex so it cannot race a concurrent unregister
// closing the channel.
func (h *Hub) SendTo(sessionID string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("marshal send: %v", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if c := h.clients[sessionID]; c != nil {
		c.send(data)
	}
}
