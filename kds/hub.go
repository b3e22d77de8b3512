package kds

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/food-delivery/events"
	"github.com/yeremiapane/food-delivery/utils"
)

const (
	writeWait = 5 * time.Second
	// sendBuffer is how many events a display may fall behind before it is dropped
	sendBuffer = 64
)

type Message struct {
	Event events.Type  `json:"event"`
	Data  events.Event `json:"data"`
}

type client struct {
	conn         *websocket.Conn
	restaurantID uint
	send         chan []byte
}

// Hub holds the kitchen display connections. A connection registered with a
// restaurant id only receives that restaurant's orders; zero means all.
// Each connection has its own writer goroutine, so Publish never blocks on a
// socket.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*client)}
}

func (h *Hub) Register(conn *websocket.Conn, restaurantID uint) {
	c := &client{conn: conn, restaurantID: restaurantID, send: make(chan []byte, sendBuffer)}
	h.add(c)
	go c.writePump()
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.conn] = c
}

// Unregister stops the connection's writer, which then closes the socket.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(conn)
}

func (h *Hub) removeLocked(conn *websocket.Conn) {
	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(c.send)
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish implements events.Publisher. It only queues the message; a display
// whose queue is full is dropped and never delays the caller.
func (h *Hub) Publish(_ context.Context, ev events.Event) error {
	data, err := json.Marshal(Message{Event: ev.Type, Data: ev})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, c := range h.clients {
		if c.restaurantID != 0 && c.restaurantID != ev.RestaurantID {
			continue
		}
		select {
		case c.send <- data:
		default:
			utils.ErrorLogger.WithFields(logrus.Fields{
				"remote": conn.RemoteAddr().String(),
				"event":  ev.Type,
			}).Error("dropping kitchen display client: send queue full")
			h.removeLocked(conn)
		}
	}
	return nil
}

// Close disconnects every client with a going-away close frame.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		h.removeLocked(conn)
	}
}

// writePump owns all writes to the socket. When send is closed it sends a
// close frame and closes the connection.
func (c *client) writePump() {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.WithFields(logrus.Fields{
				"remote": c.conn.RemoteAddr().String(),
			}).WithError(err).Error("kitchen display write failed")
			// the read loop sees the closed socket and unregisters
			c.conn.Close()
			for range c.send {
			}
			return
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}
