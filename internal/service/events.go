package service

import (
	"sync"

	"todolist/internal/models"
)

// subscriberBuffer bounds how far a slow websocket consumer may lag before
// events are dropped for it.
const subscriberBuffer = 16

// EventHub fans created todos out to per-user subscribers. Publishing never
// blocks: a subscriber with a full buffer misses the event.
type EventHub struct {
	mu     sync.Mutex
	closed bool
	subs   map[int]map[chan models.Todo]struct{}
}

func NewEventHub() *EventHub {
	return &EventHub{subs: make(map[int]map[chan models.Todo]struct{})}
}

// Subscribe registers interest in todos created by userID. The returned cancel
// function must be called to release the subscription; it closes the channel.
func (h *EventHub) Subscribe(userID int) (<-chan models.Todo, func()) {
	ch := make(chan models.Todo, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan models.Todo]struct{})
	}
	h.subs[userID][ch] = struct{}{}

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[userID][ch]; !ok {
			return
		}
		delete(h.subs[userID], ch)
		if len(h.subs[userID]) == 0 {
			delete(h.subs, userID)
		}
		close(ch)
	}
	return ch, cancel
}

// Publish delivers t to every subscriber of its owner.
func (h *EventHub) Publish(t models.Todo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for ch := range h.subs[t.UserID] {
		select {
		case ch <- t:
		default:
			// subscriber is not keeping up; drop rather than block the request
		}
	}
}

// Close shuts the hub down and closes all subscriber channels. Used on
// graceful shutdown.
func (h *EventHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, chans := range h.subs {
		for ch := range chans {
			close(ch)
		}
	}
	h.subs = make(map[int]map[chan models.Todo]struct{})
}
