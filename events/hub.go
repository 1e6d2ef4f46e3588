package events

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS already filters browser origins at the gin layer
		return true
	},
}

// client is one connected storefront tab, parked in the room of its session.
type client struct {
	conn *websocket.Conn
	room string
	send chan []byte
	hub  *Hub
}

// Hub fans bus events out to websocket clients, one room per session id.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]bool

	register   chan *client
	unregister chan *client
	broadcast  chan roomMessage
}

type roomMessage struct {
	room string
	data []byte
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*client]bool),
		register:   make(chan *client, 10),
		unregister: make(chan *client, 10),
		broadcast:  make(chan roomMessage, 100),
	}
}

// Run owns the room table; must run in its own goroutine.
func (h *Hub) Run() {
	log.Println("🔌 storefront event hub started")
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.room] == nil {
				h.rooms[c.room] = make(map[*client]bool)
			}
			h.rooms[c.room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[c.room]; ok {
				if clients[c] {
					delete(clients, c)
					close(c.send)
					if len(clients) == 0 {
						delete(h.rooms, c.room)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for c := range h.rooms[msg.room] {
				select {
				case c.send <- msg.data:
				default: // slow client, drop the frame
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Forward bridges a bus to the hub: each event is serialized once and sent to
// the room of the session it belongs to. Must run in its own goroutine.
func (h *Hub) Forward(bus *Bus) {
	ch, cancel := bus.Subscribe()
	defer cancel()
	for ev := range ch {
		data, err := json.Marshal(ev)
		if err != nil {
			log.Printf("[events.forward] marshal failed: %v", err)
			continue
		}
		h.broadcast <- roomMessage{room: ev.SessionID, data: data}
	}
}

// Serve upgrades the request and parks the connection in the session's room.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, sessionID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &client{conn: conn, room: sessionID, send: make(chan []byte, 16)}
	c.hub = h
	h.register <- c

	go c.writePump()
	go c.readPump()
	return nil
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		// Clients only listen; reads exist to notice pongs and disconnects.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
