package timer

import (
	"sync"
	"time"
)

// Manual is a deterministic Scheduler for tests and simulations. Time only
// moves when Advance is called and callbacks run on the goroutine calling
// Advance, in due order.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks map[uint64]*task
}

type task struct {
	id    uint64
	due   time.Duration
	every time.Duration
	fn    func()
}

// NewManual constructs a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{
		tasks: make(map[uint64]*task),
	}
}

// Every implements the Scheduler interface.
func (m *Manual) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		panic("timer: non-positive interval for Every")
	}
	return m.schedule(d, d, fn)
}

// After implements the Scheduler interface.
func (m *Manual) After(d time.Duration, fn func()) Handle {
	return m.schedule(d, 0, fn)
}

// Advance moves time forward by d, running every callback that comes due
// on the way. Callbacks scheduled while advancing also run if they come due
// before the new time.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()

		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}

		m.now = next.due
		switch {
		case next.every > 0:
			next.due += next.every
		default:
			delete(m.tasks, next.id)
		}
		fn := next.fn

		m.mu.Unlock()

		fn()
	}
}

// Now returns how much time has been advanced since construction.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Live returns the number of callbacks that are still scheduled.
func (m *Manual) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.tasks)
}

// nextDue finds the earliest task due at or before target. Ties are broken
// by scheduling order.
func (m *Manual) nextDue(target time.Duration) *task {
	var next *task
	for _, t := range m.tasks {
		if t.due > target {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.id < next.id) {
			next = t
		}
	}
	return next
}

func (m *Manual) schedule(d time.Duration, every time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := task{
		id:    m.seq,
		due:   m.now + d,
		every: every,
		fn:    fn,
	}
	m.tasks[t.id] = &t

	return manualHandle{m: m, id: t.id}
}

type manualHandle struct {
	m  *Manual
	id uint64
}

// Stop implements the Handle interface.
func (h manualHandle) Stop() {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()

	delete(h.m.tasks, h.id)
}
