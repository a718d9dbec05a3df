// Package loop serialises work from timer goroutines onto the frame loop.
package loop

import "sync"

// Queue is a FIFO of closures. Any goroutine may Post; only the loop Drains.
type Queue struct {
	mu     sync.Mutex
	items  []func()
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post appends f. It reports false once the queue is closed.
func (q *Queue) Post(f func()) bool {
	if q == nil || f == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, f)
	return true
}

// Dispatch is Post without the result, for use as a dispatcher func.
func (q *Queue) Dispatch(f func()) {
	q.Post(f)
}

// Drain runs every closure posted before the call, in order, on the calling
// goroutine. Closures posted while draining run on the next Drain.
func (q *Queue) Drain() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()

	for _, f := range items {
		f()
	}
	return len(items)
}

// Len returns the number of pending closures.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close drops pending closures and rejects further posts.
func (q *Queue) Close() {
	if q == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.items = nil
}
