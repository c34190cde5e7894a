// Package stream exposes a running driver's trajectory to external
// consumers over a websocket (spec §6.4a). It is a Trajectory Consumer
// transport only — it knows nothing about pathway kinetics or the driver's
// internals, only how to fan a channel of snapshot.Snapshot values out to
// any number of connected clients as one JSON message per sample.
//
// The client registry / broadcast-channel / per-connection pump shape
// follows a clients map guarded by a mutex, fed by a single broadcast
// channel; the concrete connection handling — upgrader, ping/pong
// liveness, write deadlines — follows niceyeti-tabular's gorilla/websocket
// client.
package stream

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/GoCodeAlone/pathwaysim/internal/snapshot"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans out snapshots published on its Publish channel to every
// connected websocket client. The zero value is not usable; build one
// with NewHub.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]bool

	Publish chan snapshot.Snapshot

	register   chan *client
	unregister chan *client
	stop       chan struct{}
}

type client struct {
	conn *websocket.Conn
	send chan snapshot.Snapshot
}

// NewHub returns a Hub ready to Run. bufferSize bounds how many pending
// snapshots may queue for the broadcast loop before Publish blocks.
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Hub{
		clients:    make(map[*client]bool),
		Publish:    make(chan snapshot.Snapshot, bufferSize),
		register:   make(chan *client),
		unregister: make(chan *client),
		stop:       make(chan struct{}),
	}
}

// Run drives the broadcast loop until Stop is called. Call it in its own
// goroutine; it is the single writer of h.clients.
func (h *Hub) Run() {
	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
			}
			h.clients = make(map[*client]bool)
			h.mu.Unlock()
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
		case s := <-h.Publish:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- s:
				default:
					// Client is too slow to keep up; drop the sample rather
					// than block the whole hub on one laggy connection.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Stop shuts the hub down and closes every connected client's send queue.
func (h *Hub) Stop() {
	close(h.stop)
}

// ClientCount reports how many websocket clients are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades r to a websocket connection and registers it with the
// hub as a trajectory consumer. It returns once the connection closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("stream: upgrade: %w", err)
	}

	c := &client{conn: conn, send: make(chan snapshot.Snapshot, 16)}
	h.register <- c

	done := make(chan struct{})
	go c.writePump(done)
	c.readPump()
	h.unregister <- c
	<-done
	return nil
}

// writePump serializes writes to the connection: outgoing snapshots plus
// periodic pings, matching the single-writer-per-connection requirement
// gorilla/websocket imposes on *websocket.Conn.
func (c *client) writePump(done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		close(done)
	}()
	for {
		select {
		case s, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(s); err != nil {
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

// readPump keeps the connection's read deadline alive via pong handling
// and discards any inbound client messages; this transport is a one-way
// snapshot feed and defines no client→server protocol.
func (c *client) readPump() {
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// RunProducer reads from trajectory and publishes each sample to the hub
// until trajectory is closed or stop fires. It is the "single producer
// goroutine per driver instance" spec §5 describes: the driver still
// ticks synchronously on its own goroutine and only hands finished
// snapshots off across this channel.
func RunProducer(h *Hub, trajectory <-chan snapshot.Snapshot, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case s, ok := <-trajectory:
			if !ok {
				return
			}
			select {
			case h.Publish <- s:
			case <-stop:
				return
			}
		}
	}
}

// Logf is the package's one logging seam, matching the corpus-wide
// preference for stdlib log.Printf over a third-party logger.
func Logf(format string, args ...interface{}) {
	log.Printf("stream: "+format, args...)
}
