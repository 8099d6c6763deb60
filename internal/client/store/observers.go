package store

import "sync"

// observers is a set of snapshot callbacks.
type observers[S any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(S)
}

func (o *observers[S]) subscribe(fn func(S)) func() {
	o.mu.Lock()
	if o.fns == nil {
		o.fns = make(map[int]func(S))
	}
	id := o.next
	o.next++
	o.fns[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.fns, id)
		o.mu.Unlock()
	}
}

func (o *observers[S]) notify(s S) {
	o.mu.Lock()
	fns := make([]func(S), 0, len(o.fns))
	for _, fn := range o.fns {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
