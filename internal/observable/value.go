// Package observable provides a push-based value container. Subscribers are
// called synchronously with every published value, in publication order, and
// never see a value that was not the complete result of a Set or Update.
package observable

import "sync"

// Value holds a T and notifies subscribers on every change.
//
// Publication is serialized: if a subscriber (or another goroutine) sets the
// value while a publication is running, the new value is queued and delivered
// after the current round finishes.
type Value[T any] struct {
	mu         sync.Mutex
	current    T
	nextID     int
	subs       map[int]func(T)
	order      []int
	pending    []T
	publishing bool
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{current: initial, subs: map[int]func(T){}}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Set replaces the value and publishes it.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	o.current = v
	o.publishLocked(v)
}

// Update replaces the value with fn(current) atomically and publishes it.
func (o *Value[T]) Update(fn func(T) T) {
	o.mu.Lock()
	v := fn(o.current)
	o.current = v
	o.publishLocked(v)
}

// Subscribe registers fn and calls it immediately with the current value.
// The returned function removes the subscription; calling it twice is safe.
func (o *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	o.order = append(o.order, id)
	v := o.current
	o.mu.Unlock()

	fn(v)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.subs, id)
			for i, sid := range o.order {
				if sid == id {
					o.order = append(o.order[:i], o.order[i+1:]...)
					break
				}
			}
		})
	}
}

// publishLocked must be called with o.mu held; it releases it.
func (o *Value[T]) publishLocked(v T) {
	o.pending = append(o.pending, v)
	if o.publishing {
		o.mu.Unlock()
		return
	}
	o.publishing = true

	for len(o.pending) > 0 {
		next := o.pending[0]
		o.pending = o.pending[1:]
		fns := make([]func(T), 0, len(o.order))
		for _, id := range o.order {
			fns = append(fns, o.subs[id])
		}
		o.mu.Unlock()
		for _, fn := range fns {
			fn(next)
		}
		o.mu.Lock()
	}

	o.publishing = false
	o.mu.Unlock()
}
