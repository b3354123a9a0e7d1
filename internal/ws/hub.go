package ws

import (
	"log"
	"strings"
	"sync"
)

// Hub routes notification payloads to the clients subscribed to an email
// address. A client subscribes once, at upgrade time.
type Hub struct {
	subscribers map[string]map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	deliver     chan delivery
	mutex       sync.RWMutex
	logger      *log.Logger
}

type delivery struct {
	email   string
	payload []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[*Client]bool),
		register:    make(chan *Client, 128),
		unregister:  make(chan *Client, 128),
		deliver:     make(chan delivery, 1024),
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.subscribers[client.email]
			if !ok {
				set = make(map[*Client]bool)
				h.subscribers[client.email] = set
			}
			set[client] = true
			total := len(set)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | email=%s subscribers=%d", client.email, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if set, ok := h.subscribers[client.email]; ok {
				if _, exists := set[client]; exists {
					delete(set, client)
					close(client.send)
				}
				if len(set) == 0 {
					delete(h.subscribers, client.email)
				}
			}
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | email=%s", client.email)
			}

		case d := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.subscribers[d.email]))
			for c := range h.subscribers[d.email] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- d.payload:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send queues a payload for every client subscribed to the email. Dropped
// when the hub buffer is full.
func (h *Hub) Send(email string, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.deliver <- delivery{email: normalizeEmail(email), payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS delivery dropped | reason=buffer_full")
		}
	}
}

func (h *Hub) SubscriberCount(email string) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.subscribers[normalizeEmail(email)])
}
