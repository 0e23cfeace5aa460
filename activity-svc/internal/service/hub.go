package service

import (
	"encoding/json"
	"sync"
	"time"

	"rik-restaurant/activity-svc/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// FirehoseIdentity subscribes a client to every event.
const FirehoseIdentity = ""

const writeWait = 10 * time.Second

type Client struct {
	Identity string
	Conn     *websocket.Conn

	mu sync.Mutex
}

func (c *Client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(messageType, data)
}

func (c *Client) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.Identity] == nil {
		h.clients[c.Identity] = make(map[*Client]struct{})
	}
	h.clients[c.Identity][c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set := h.clients[c.Identity]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Identity)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// Broadcast sends the event to the firehose and to the event's own identity.
func (h *Hub) Broadcast(event domain.Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode event for broadcast")
		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0)
	for c := range h.clients[FirehoseIdentity] {
		targets = append(targets, c)
	}
	if event.Identity != FirehoseIdentity {
		for c := range h.clients[event.Identity] {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			log.Debug().Err(err).Str("identity", c.Identity).Msg("dropping websocket client")
			h.Unregister(c)
		}
	}
}
