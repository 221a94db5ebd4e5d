package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a connected WebSocket client
type Client struct {
	Hub   *Hub
	Email string
	Role  string
	Conn  *websocket.Conn
	Send  chan []byte
	mu    sync.Mutex
}

// Hub manages all WebSocket connections. Clients are keyed by email so
// booking updates can be steered to the customer, the assigned
// decorator and every watching admin.
type Hub struct {
	// Registered clients by email. One connection per email; a newer
	// connection replaces the older one.
	Clients map[string]*Client

	// Broadcast channel for messages to all clients
	Broadcast chan *Message

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// Message is one push frame sent to clients
type Message struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[string]*Client),
		Broadcast:  make(chan *Message),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if old, ok := h.Clients[client.Email]; ok {
				close(old.Send)
			}
			h.Clients[client.Email] = client
			h.mu.Unlock()
			log.Printf("🔌 Client registered: %s (%s)", client.Email, client.Role)

		case client := <-h.Unregister:
			h.mu.Lock()
			if current, ok := h.Clients[client.Email]; ok && current == client {
				delete(h.Clients, client.Email)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("🔌 Client unregistered: %s", client.Email)

		case message := <-h.Broadcast:
			h.broadcastMessage(message)
		}
	}
}

// broadcastMessage sends a message to all connected clients
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Error marshaling message: %v", err)
		return
	}

	for email, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
			log.Printf("⚠️ %s's send buffer is full, dropping frame", email)
		}
	}
}

// SendToEmail sends a message to a specific connected user. Offline
// users simply miss the push and catch up on their next fetch.
func (h *Hub) SendToEmail(email string, message *Message) {
	h.mu.RLock()
	client, exists := h.Clients[email]
	h.mu.RUnlock()

	if !exists {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Error marshaling message: %v", err)
		return
	}

	select {
	case client.Send <- data:
	default:
		log.Printf("⚠️ %s's send buffer is full", email)
	}
}

// sendToRole pushes to every connected client with the given role
func (h *Hub) sendToRole(role string, message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Error marshaling message: %v", err)
		return
	}

	for _, client := range h.Clients {
		if client.Role != role {
			continue
		}
		select {
		case client.Send <- data:
		default:
		}
	}
}

// IsConnected checks if a user is currently connected
func (h *Hub) IsConnected(email string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.Clients[email]
	return exists
}
