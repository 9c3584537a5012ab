// Package hub fans rendered fragments out to every open live page.
package hub

import (
	"context"
	"log/slog"
)

// Subscriber is one open page. The hub sends fragments on Send and closes it
// when the subscriber is removed.
type Subscriber struct {
	Send chan []byte
}

// Hub maintains the set of active subscribers and broadcasts to them. All
// state is owned by the Run goroutine.
type Hub struct {
	subscribers map[*Subscriber]bool

	broadcast  chan []byte
	register   chan *Subscriber
	unregister chan *Subscriber
	done       chan struct{}
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		broadcast:   make(chan []byte),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		done:        make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is canceled, then
// closes every subscriber.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for s := range h.subscribers {
			close(s.Send)
		}
		h.subscribers = nil
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-h.register:
			h.subscribers[s] = true
			slog.Debug("Live page registered", "total_subscribers", len(h.subscribers))

		case s := <-h.unregister:
			if _, ok := h.subscribers[s]; ok {
				delete(h.subscribers, s)
				close(s.Send)
				slog.Debug("Live page unregistered", "total_subscribers", len(h.subscribers))
			}

		case message := <-h.broadcast:
			slog.Debug("Broadcasting fragment", "recipient_count", len(h.subscribers))
			for s := range h.subscribers {
				// A full buffer means the page is stuck; drop it.
				select {
				case s.Send <- message:
				default:
					close(s.Send)
					delete(h.subscribers, s)
					slog.Warn("Unregistering slow live page", "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}

// Subscribe registers a new subscriber. It returns nil once the hub has
// stopped.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{Send: make(chan []byte, 8)}
	select {
	case h.register <- s:
		return s
	case <-h.done:
		return nil
	}
}

// Unsubscribe removes s. It is a no-op for a removed subscriber or a
// stopped hub.
func (h *Hub) Unsubscribe(s *Subscriber) {
	if s == nil {
		return
	}
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Broadcast sends message to every subscriber. It reports false when the
// hub has stopped.
func (h *Hub) Broadcast(message []byte) bool {
	select {
	case h.broadcast <- message:
		return true
	case <-h.done:
		return false
	}
}
