package store

import (
	"sync"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
)

// pendingEvents tracks auth events the store's own calls are about to cause.
// Each expectation swallows at most one matching event and is dropped when
// the call returns, whether or not the event arrived.
type pendingEvents struct {
	mu      sync.Mutex
	entries []*pendingEvent
}

type pendingEvent struct {
	event gateway.AuthEvent
	seen  bool
}

func (p *pendingEvents) expect(event gateway.AuthEvent) (release func()) {
	e := &pendingEvent{event: event}
	p.mu.Lock()
	p.entries = append(p.entries, e)
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, x := range p.entries {
			if x == e {
				p.entries = append(p.entries[:i], p.entries[i+1:]...)
				return
			}
		}
	}
}

// consume reports whether event was expected, marking the expectation used.
func (p *pendingEvents) consume(event gateway.AuthEvent) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.entries {
		if !e.seen && e.event == event {
			e.seen = true
			return true
		}
	}
	return false
}
