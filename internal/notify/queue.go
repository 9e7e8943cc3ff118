package notify

import (
	"time"

	"github.com/dmitrijs2005/dutch/internal/observable"
	"github.com/google/uuid"
)

// Toast is a notification held by a Queue until it expires or is removed.
type Toast struct {
	ID       string
	Message  string
	Severity Severity
}

// Queue keeps the list of visible toasts. Toasts added with a positive TTL are
// removed automatically once it elapses.
type Queue struct {
	items     *observable.Value[[]Toast]
	ttl       time.Duration
	afterFunc func(d time.Duration, f func())
}

func NewQueue(ttl time.Duration) *Queue {
	return &Queue{
		items: observable.New([]Toast{}),
		ttl:   ttl,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Notify adds a toast using the queue's default TTL.
func (q *Queue) Notify(message string, severity Severity) {
	q.Add(message, severity, q.ttl)
}

// Add appends a toast and returns its id. A ttl of zero keeps it until Remove.
func (q *Queue) Add(message string, severity Severity, ttl time.Duration) string {
	id := uuid.NewString()
	q.items.Update(func(cur []Toast) []Toast {
		next := make([]Toast, 0, len(cur)+1)
		next = append(next, cur...)
		return append(next, Toast{ID: id, Message: message, Severity: severity})
	})
	if ttl > 0 {
		q.afterFunc(ttl, func() { q.Remove(id) })
	}
	return id
}

func (q *Queue) Remove(id string) {
	q.items.Update(func(cur []Toast) []Toast {
		next := make([]Toast, 0, len(cur))
		for _, t := range cur {
			if t.ID != id {
				next = append(next, t)
			}
		}
		return next
	})
}

// Items returns the visible toasts, oldest first.
func (q *Queue) Items() []Toast {
	return q.items.Get()
}

func (q *Queue) Subscribe(fn func([]Toast)) (unsubscribe func()) {
	return q.items.Subscribe(fn)
}
