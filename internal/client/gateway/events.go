package gateway

import "sync"

// Hub fans auth-state changes out to subscribers. Callbacks run
// synchronously in the publisher's goroutine, outside the lock, so a
// callback may unsubscribe itself.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]AuthStateFunc
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]AuthStateFunc)}
}

// Subscribe registers fn and returns its unsubscribe function.
// Calling unsubscribe more than once is harmless.
func (h *Hub) Subscribe(fn AuthStateFunc) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

func (h *Hub) Publish(event AuthEvent, session *Session) {
	h.mu.Lock()
	fns := make([]AuthStateFunc, 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(event, session)
	}
}

// subscribers returns the number of registered callbacks.
func (h *Hub) subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
