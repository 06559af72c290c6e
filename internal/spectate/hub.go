// Package spectate streams game frames to websocket viewers.
package spectate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Frames queued per client before it is dropped as too slow.
	clientBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Viewers are read-only.
		return true
	},
}

// Frame is one message sent to viewers.
type Frame struct {
	Event string `json:"event"`
	Seq   uint64 `json:"seq"`
	Data  any    `json:"data,omitempty"`
}

// Client is a connected viewer.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of viewers and fans frames out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	logger     *log.Logger

	seq     atomic.Uint64
	count   atomic.Int64
	mu      sync.RWMutex
	latest  []byte
	dropped atomic.Uint64
}

// NewHub creates a hub. A nil logger discards.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run is the hub event loop. It returns when ctx is done, after
// disconnecting every viewer.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.unregisterClient(client)
			}
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Publish marshals v into a frame and queues it for every viewer.
// It never blocks; frames are dropped when the hub is busy or stopped.
func (h *Hub) Publish(event string, v any) error {
	data, err := json.Marshal(Frame{Event: event, Seq: h.seq.Add(1), Data: v})
	if err != nil {
		return err
	}
	h.Broadcast(data)
	return nil
}

// Broadcast queues a raw message for every viewer without blocking.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	h.latest = data
	h.mu.Unlock()

	select {
	case h.broadcast <- data:
	default:
		h.dropped.Add(1)
	}
}

// Latest returns the most recent message, nil before the first one.
func (h *Hub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Dropped returns how many frames were skipped because the hub was busy.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// ServeWS upgrades the request and registers the viewer.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, clientBuffer),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}

// registerClient adds a viewer. Runs on the hub goroutine.
func (h *Hub) registerClient(client *Client) {
	h.clients[client] = true
	h.count.Store(int64(len(h.clients)))

	h.logger.Info("viewer connected", "remote", client.conn.RemoteAddr().String(), "viewers", len(h.clients))

	// New viewers start from the latest frame.
	if latest := h.Latest(); latest != nil {
		client.send <- latest
	}
}

// unregisterClient removes a viewer. Runs on the hub goroutine.
func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.count.Store(int64(len(h.clients)))

	h.logger.Info("viewer disconnected", "remote", client.conn.RemoteAddr().String(), "viewers", len(h.clients))
}

// broadcastMessage sends a message to every viewer, dropping slow ones.
func (h *Hub) broadcastMessage(message []byte) {
	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			h.logger.Warn("dropping slow viewer", "remote", client.conn.RemoteAddr().String())
			h.unregisterClient(client)
		}
	}
}

// readPump drains the connection so control frames are processed.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket error", "err", err)
			}
			return
		}
	}
}

// writePump sends queued frames, one websocket message each.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
