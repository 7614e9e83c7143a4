// Package notifier is the in-process notification sink: a bounded feed of recent
// notifications plus live subscribers for server-sent events.
package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/pkg/clock"

	"github.com/google/uuid"
)

const subscriberBuffer = 16

// Notification is an event accepted by the hub.
type Notification struct {
	ID uuid.UUID
	notification.Event
	ExpiresAt time.Time
}

type Hub struct {
	mu          sync.RWMutex
	feed        []Notification
	subscribers map[uuid.UUID]chan Notification
	capacity    int
	ttl         time.Duration
	clock       clock.Clock
	logger      *slog.Logger
}

func NewHub(capacity int, ttl time.Duration, clock clock.Clock, logger *slog.Logger) *Hub {
	if capacity <= 0 {
		capacity = 1
	}
	return &Hub{
		subscribers: make(map[uuid.UUID]chan Notification),
		capacity:    capacity,
		ttl:         ttl,
		clock:       clock,
		logger:      logger,
	}
}

// Publish never blocks: a subscriber whose buffer is full misses the notification.
func (h *Hub) Publish(_ context.Context, events ...notification.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.clock.Now()
	for _, e := range events {
		if e.OccurredAt.IsZero() {
			e.OccurredAt = now
		}
		n := Notification{ID: uuid.New(), Event: e, ExpiresAt: now.Add(h.ttl)}

		h.feed = append(h.feed, n)
		if over := len(h.feed) - h.capacity; over > 0 {
			h.feed = append([]Notification(nil), h.feed[over:]...)
		}

		for id, ch := range h.subscribers {
			select {
			case ch <- n:
			default:
				h.logger.Warn("notification subscriber lagging, dropping", "subscriber_id", id, "notification_id", n.ID)
			}
		}

		h.logger.Debug("notification published", "kind", e.Kind, "title", e.Title)
	}
}

// Active returns notifications that are neither dismissed nor past their display time, oldest first.
func (h *Hub) Active() []Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()

	now := h.clock.Now()
	out := make([]Notification, 0, len(h.feed))
	for _, n := range h.feed {
		if now.Before(n.ExpiresAt) {
			out = append(out, n)
		}
	}
	return out
}

// Dismiss removes a notification from the feed. It reports whether it was present.
func (h *Hub) Dismiss(id uuid.UUID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, n := range h.feed {
		if n.ID == id {
			h.feed = append(h.feed[:i:i], h.feed[i+1:]...)
			return true
		}
	}
	return false
}

// Subscribe registers a live listener. The returned cancel func closes the channel.
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New()
	ch := make(chan Notification, subscriberBuffer)
	h.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, id)
			close(ch)
		})
	}
}
