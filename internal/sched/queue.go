// Package sched provides a virtual-time task queue for deferred game events.
//
// Nothing here runs on its own goroutine. The owner advances the queue to
// the current frame time and due tasks run synchronously, in order, on the
// caller's goroutine. That keeps presentation timers (flashes, level-up
// delays) deterministic and lets a session cancel everything it scheduled
// in one call.
package sched

import (
	"container/heap"
	"time"
)

// Task is a handle to one scheduled callback.
type Task struct {
	at        time.Duration
	seq       uint64
	fn        func()
	index     int // position in the heap, -1 once removed
	cancelled bool
	done      bool
}

// At returns the virtual time the task is due.
func (t *Task) At() time.Duration {
	return t.at
}

// Cancel prevents the task from running.
// Returns false if the task already ran or was already cancelled.
func (t *Task) Cancel() bool {
	if t == nil || t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	t.fn = nil
	return true
}

// Pending reports whether the task will still run.
func (t *Task) Pending() bool {
	return t != nil && !t.done && !t.cancelled
}

// Queue orders tasks by due time, then by insertion order.
// A Queue is not safe for concurrent use.
type Queue struct {
	now   time.Duration
	seq   uint64
	tasks taskHeap
}

// New creates an empty queue at virtual time zero.
func New() *Queue {
	return &Queue{}
}

// Now returns the queue's current virtual time.
// Inside a running callback this is the callback's own due time.
func (q *Queue) Now() time.Duration {
	return q.now
}

// At schedules fn to run once virtual time reaches at.
// A time in the past runs on the next Advance.
func (q *Queue) At(at time.Duration, fn func()) *Task {
	q.seq++
	t := &Task{at: at, seq: q.seq, fn: fn}
	heap.Push(&q.tasks, t)
	return t
}

// After schedules fn to run d after the current virtual time.
func (q *Queue) After(d time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	return q.At(q.now+d, fn)
}

// Advance moves virtual time forward to now and runs every task due at or
// before it. Tasks scheduled by callbacks that fall due within the window
// run in the same call. Time never moves backwards.
// Returns the number of callbacks that ran.
func (q *Queue) Advance(now time.Duration) int {
	if now < q.now {
		now = q.now
	}

	ran := 0
	for q.tasks.Len() > 0 {
		next := q.tasks[0]
		if next.at > now {
			break
		}
		heap.Pop(&q.tasks)
		if next.cancelled {
			continue
		}
		if next.at > q.now {
			q.now = next.at
		}
		fn := next.fn
		next.fn = nil
		next.done = true
		fn()
		ran++
	}

	q.now = now
	return ran
}

// CancelAll cancels every pending task and empties the queue.
// Returns the number of tasks that were cancelled.
func (q *Queue) CancelAll() int {
	n := 0
	for _, t := range q.tasks {
		if t.Cancel() {
			n++
		}
		t.index = -1
	}
	q.tasks = q.tasks[:0]
	return n
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	n := 0
	for _, t := range q.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// taskHeap implements heap.Interface ordered by (at, seq).
type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*Task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
