package ws

import (
	"encoding/json"
	"sync"
	"time"

	"travel-agency-server/logger"
)

// Event is a dashboard notification pushed to connected admin clients
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	EventBookingCreated = "booking_created"
	EventEnquiryCreated = "enquiry_created"
)

// Hub manages the admin dashboard WebSocket connections
type Hub struct {
	Clients    map[uint]*Client
	Broadcast  chan *Event
	Register   chan *Client
	Unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[uint]*Client),
		Broadcast:  make(chan *Event, 64),
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
			h.Clients[client.UserID] = client
			h.mu.Unlock()
			logger.InfoLogger.Infof("🔌 Dashboard client connected: user %d", client.UserID)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client.UserID]; ok {
				delete(h.Clients, client.UserID)
				close(client.Send)
			}
			h.mu.Unlock()
			logger.InfoLogger.Infof("🔌 Dashboard client disconnected: user %d", client.UserID)

		case event := <-h.Broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Publish queues an event for all connected dashboard clients. Non-blocking:
// if the hub is saturated the event is dropped rather than stalling a request.
func (h *Hub) Publish(eventType string, data interface{}) {
	event := &Event{Type: eventType, Data: data, Timestamp: time.Now()}
	select {
	case h.Broadcast <- event:
	default:
		logger.ErrorLogger.Errorf("Dashboard event channel full, dropping %s event", eventType)
	}
}

func (h *Hub) broadcastEvent(event *Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to marshal dashboard event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.Clients {
		select {
		case client.Send <- payload:
		default:
			// Slow client, skip this event for it
		}
	}
}
