package scheduler

import (
	"sync"
	"sync/atomic"
)

// Queue batches deferred work until the host loop flushes it. Schedule may
// be called any number of times within one tick; the work runs on the next
// Flush, in scheduling order.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	ready   chan struct{}
	flushes uint64
}

func NewQueue() *Queue {
	return &Queue{
		pending: make([]func(), 0),
		ready:   make(chan struct{}, 1),
	}
}

// Ready fires once whenever the queue goes from empty to non-empty.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

func (q *Queue) Schedule(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	first := len(q.pending) == 1
	q.mu.Unlock()
	if first {
		q.signalReady()
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs queued work until the queue is empty. Work scheduled while a
// flush is running is picked up by the same flush, after everything that
// was already queued.
func (q *Queue) Flush() int {
	ran := 0
	for {
		batch := q.take()
		if len(batch) == 0 {
			break
		}
		for _, fn := range batch {
			fn()
			ran++
		}
	}
	if ran > 0 {
		atomic.AddUint64(&q.flushes, 1)
	}
	q.drainReady()
	return ran
}

// Flushes counts flushes that ran at least one task.
func (q *Queue) Flushes() uint64 {
	return atomic.LoadUint64(&q.flushes)
}

func (q *Queue) take() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	batch := q.pending
	q.pending = make([]func(), 0)
	return batch
}

func (q *Queue) signalReady() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *Queue) drainReady() {
	select {
	case <-q.ready:
	default:
	}
}
