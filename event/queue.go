package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-maze/parameter"
)

// Queue is a lock-free MPSC ring buffer for session events
// Push may be called from any goroutine; Drain belongs to the frame loop.
// Published flags keep the consumer off partially written slots.
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
	dropped   atomic.Uint64
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push claims a slot with CAS and publishes ev into it
func (q *Queue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // After the write

		// Oldest unread event is overwritten
		head := q.head.Load()
		if next-head > parameter.EventQueueSize {
			if q.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				q.dropped.Add(next - parameter.EventQueueSize - head)
			}
		}
		return
	}
}

// Drain appends pending events to dst in FIFO order and advances the read index
// Stops at the first slot whose writer has not yet published
func (q *Queue) Drain(dst []GameEvent) []GameEvent {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail == head {
		return dst
	}

	avail := min(tail-head, parameter.EventQueueSize)
	from := tail - avail

	var n uint64
	for ; n < avail; n++ {
		idx := (from + n) & parameter.EventBufferMask
		if !q.published[idx].Load() {
			break
		}
		dst = append(dst, q.events[idx])
		q.published[idx].Store(false)
	}

	// Producers only move head forward on overflow; never move it back
	next := from + n
	for {
		cur := q.head.Load()
		if cur >= next || q.head.CompareAndSwap(cur, next) {
			return dst
		}
	}
}

// Len returns the approximate pending event count
func (q *Queue) Len() int {
	head, tail := q.head.Load(), q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}

// Dropped returns how many events were overwritten before being drained
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
