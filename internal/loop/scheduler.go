package loop

import (
	"container/heap"
	"sync"
	"time"
)

// Scheduler runs timers against a virtual clock that only moves when
// Advance is called.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	queue  timerHeap
	active map[uint64]*Timer

	mu     sync.Mutex
	posted []func()
}

func NewScheduler() *Scheduler {
	return &Scheduler{active: make(map[uint64]*Timer)}
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	id       uint64
	due      time.Duration
	interval time.Duration
	fn       func()
	s        *Scheduler
	stopped  bool
	index    int
}

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.add(d, 0, fn)
}

// Every runs fn each interval until stopped.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(d, interval time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{id: s.seq, due: s.now + d, interval: interval, fn: fn, s: s}
	heap.Push(&s.queue, t)
	s.active[t.id] = t
	return t
}

// Stop cancels the timer. It reports whether the timer was still pending.
// Stopping a nil or already stopped timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	delete(t.s.active, t.id)
	if t.index >= 0 && t.index < len(t.s.queue) && t.s.queue[t.index] == t {
		heap.Remove(&t.s.queue, t.index)
	}
	return true
}

func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Post queues fn to run on the loop goroutine during the next Advance. It is
// safe to call from any goroutine.
func (s *Scheduler) Post(fn func()) {
	s.mu.Lock()
	s.posted = append(s.posted, fn)
	s.mu.Unlock()
}

// Advance moves the clock forward by d, running posted work first and then
// every timer that falls due, in due order.
func (s *Scheduler) Advance(d time.Duration) {
	s.drainPosted()
	if d < 0 {
		d = 0
	}
	target := s.now + d
	for len(s.queue) > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*Timer)
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
			heap.Push(&s.queue, t)
		} else {
			t.stopped = true
			delete(s.active, t.id)
		}
		t.fn()
		s.drainPosted()
	}
	s.now = target
}

func (s *Scheduler) drainPosted() {
	for {
		s.mu.Lock()
		batch := s.posted
		s.posted = nil
		s.mu.Unlock()
		if len(batch) == 0 {
			return
		}
		for _, fn := range batch {
			fn()
		}
	}
}

// Backlog counts posted work not yet drained.
func (s *Scheduler) Backlog() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posted)
}

// Now is the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending counts live timers.
func (s *Scheduler) Pending() int {
	return len(s.active)
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due == h[j].due {
		return h[i].id < h[j].id
	}
	return h[i].due < h[j].due
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
