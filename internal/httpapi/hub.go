package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/pdrpinto/npuzzle/internal/driver"
	"github.com/pdrpinto/npuzzle/internal/obslog"
)

// Hub fans auto-solve Events out to every connected WebSocket client. It
// repurposes the teacher's ExpandTask/RelaxProposal channel pair
// (pdrpinto-astar/worker.go) from "propose a relaxed edge to the
// orchestrator" into "broadcast a driver step to every subscriber" — the
// same single-writer, many-reader channel shape, a different payload.
type Hub struct {
	upgrader websocket.Upgrader

	register   chan *client
	unregister chan *client
	broadcast  chan driver.Event

	mu      sync.Mutex
	clients map[*client]bool

	log zerolog.Logger
}

type client struct {
	conn *websocket.Conn
	send chan driver.Event
}

// NewHub returns a Hub with its channels ready; call run to start its
// broadcast loop.
func NewHub() *Hub {
	return &Hub{
		upgrader:   websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan driver.Event, 64),
		clients:    make(map[*client]bool),
		log:        obslog.For("hub"),
	}
}

// run is the Hub's single writer goroutine: it owns the clients map so
// register/unregister/broadcast never race, mirroring the orchestrator
// goroutine that owned the teacher's openSet/closedSet.
func (h *Hub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
		case ev := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- ev:
				default:
					// slow consumer; drop rather than block the whole hub
				}
			}
			h.mu.Unlock()
		}
	}
}

// broadcastEvents drains a driver run's event channel onto the hub until it
// closes, which happens when the run itself finishes.
func (h *Hub) broadcastEvents(events <-chan driver.Event) {
	for ev := range events {
		h.broadcast <- ev
	}
}

// ServeWS upgrades the request and registers the connection as a
// broadcast subscriber until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade")
		return
	}

	c := &client{conn: conn, send: make(chan driver.Event, 16)}
	h.register <- c

	go h.readLoop(c)
	h.writeLoop(c)
}

// readLoop only exists to detect client disconnects (the server never
// expects inbound messages on this socket).
func (h *Hub) readLoop(c *client) {
	defer func() {
		h.unregister <- c
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	for ev := range c.send {
		if err := c.conn.WriteJSON(eventEnvelope(ev)); err != nil {
			return
		}
	}
}

func eventEnvelope(ev driver.Event) map[string]any {
	raw, _ := json.Marshal(ev)
	var m map[string]any
	_ = json.Unmarshal(raw, &m)
	eventName := "solver_update"
	if ev.Solved || ev.Message != "" {
		eventName = "solver_complete"
	}
	m["event"] = eventName
	return m
}
