// Package notify pushes storefront events to connected clients over
// websockets: toast notifications, cart badge updates, and order placement
// confirmations. Rooms are keyed by session id so one browser's events
// never leak to another.
package notify

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn      *websocket.Conn
	Send      chan []byte
	SessionID string
}

type broadcastMsg struct {
	SessionID string
	Data      []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
			}
			h.rooms = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.SessionID] == nil {
				h.rooms[c.SessionID] = make(map[*Client]bool)
			}
			h.rooms[c.SessionID][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.SessionID]; conns != nil {
				if conns[c] {
					delete(conns, c)
					close(c.Send)
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.SessionID] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.SessionID], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop closes every client connection and ends Run.
func (h *Hub) Stop() {
	close(h.done)
}

// Payload is one outbound notification.
type Payload struct {
	Kind      string `json:"kind"`               // "toast", "cart", "order"
	Type      string `json:"type,omitempty"`     // toast severity: success, info, error
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	Duration  int    `json:"duration,omitempty"` // toast auto-dismiss, ms
	Count     int    `json:"count,omitempty"`
	Subtotal  int    `json:"subtotal,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func (h *Hub) send(sessionID string, p Payload) {
	p.Timestamp = time.Now().Unix()
	data, err := json.Marshal(p)
	if err != nil {
		log.Println("notify: marshal failed:", err)
		return
	}
	select {
	case h.broadcast <- broadcastMsg{SessionID: sessionID, Data: data}:
	default:
		log.Printf("notify: broadcast queue full, dropping %s for session %s", p.Kind, sessionID)
	}
}

// Toast pushes an auto-dismissing notification.
func (h *Hub) Toast(sessionID, toastType, title, message string, duration time.Duration) {
	h.send(sessionID, Payload{
		Kind:     "toast",
		Type:     toastType,
		Title:    title,
		Message:  message,
		Duration: int(duration / time.Millisecond),
	})
}

// CartChanged pushes the new badge count and subtotal.
func (h *Hub) CartChanged(sessionID string, count, subtotal int) {
	h.send(sessionID, Payload{Kind: "cart", Count: count, Subtotal: subtotal})
}

// OrderPlaced pushes a placement confirmation.
func (h *Hub) OrderPlaced(sessionID, orderID string) {
	h.send(sessionID, Payload{Kind: "order", OrderID: orderID})
}
