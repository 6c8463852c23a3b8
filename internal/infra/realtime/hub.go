package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

// Subscription tracks one funnel filter set being watched live. The
// token is the subscriber's; the refresh worker reuses it so refreshes
// run with the same authority as the viewer.
type Subscription struct {
	Key    string
	Filter usecase.FunnelFilter
	Token  string
}

// Hub fans refreshed funnel reports out to websocket clients grouped by
// filter key.
type Hub struct {
	mu      sync.RWMutex
	topics  map[string]map[*Client]struct{}
	filters map[string]Subscription
}

func NewHub() *Hub {
	return &Hub{
		topics:  make(map[string]map[*Client]struct{}),
		filters: make(map[string]Subscription),
	}
}

func (h *Hub) Subscribe(c *Client, sub Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[sub.Key] == nil {
		h.topics[sub.Key] = make(map[*Client]struct{})
	}
	h.topics[sub.Key][c] = struct{}{}
	h.filters[sub.Key] = sub
	c.topic = sub.Key
	slog.Info("funnel live subscribed", slog.String("clientId", c.id), slog.String("topic", sub.Key))
}

func (h *Hub) Detach(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(c)
}

func (h *Hub) detachLocked(c *Client) {
	if c == nil {
		return
	}
	if subs, ok := h.topics[c.topic]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.topics, c.topic)
			delete(h.filters, c.topic)
		}
	}
	c.close()
	slog.Info("funnel live detached", slog.String("clientId", c.id), slog.String("topic", c.topic))
}

// DropTopic disconnects every subscriber of a filter key. Used when the
// subscription's token stops being accepted by the backend.
func (h *Hub) DropTopic(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.topics[key] {
		c.close()
	}
	delete(h.topics, key)
	delete(h.filters, key)
}

// ActiveSubscriptions snapshots the filter sets with live viewers.
func (h *Hub) ActiveSubscriptions() []Subscription {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subs := make([]Subscription, 0, len(h.filters))
	for _, sub := range h.filters {
		subs = append(subs, sub)
	}
	return subs
}

// Broadcast sends a payload to every client watching the key. Slow
// clients are detached rather than blocking the broadcast.
func (h *Hub) Broadcast(key string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("funnel broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.topics[key]))
	for c := range h.topics[key] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			slog.Warn("funnel live client too slow, detaching", slog.String("clientId", c.id))
			h.Detach(c)
		}
	}
}

// ClientCount reports connected clients across all topics.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, subs := range h.topics {
		n += len(subs)
	}
	return n
}
