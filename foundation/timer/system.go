package timer

import (
	"sync"
	"time"
)

// System is a Scheduler backed by the runtime timers.
type System struct {
	mu   sync.Mutex
	live map[*systemHandle]struct{}
	wg   sync.WaitGroup
}

// NewSystem constructs a scheduler backed by the runtime timers.
func NewSystem() *System {
	return &System{
		live: make(map[*systemHandle]struct{}),
	}
}

// Every implements the Scheduler interface.
func (s *System) Every(d time.Duration, fn func()) Handle {
	h := s.track()
	ticker := time.NewTicker(d)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:

				// A tick may be ready at the same time the handle
				// was stopped. Stopped always wins.
				select {
				case <-h.shut:
					return
				default:
				}
				fn()

			case <-h.shut:
				return
			}
		}
	}()

	return h
}

// After implements the Scheduler interface.
func (s *System) After(d time.Duration, fn func()) Handle {
	h := s.track()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		t := time.NewTimer(d)
		defer t.Stop()

		select {
		case <-t.C:
			s.untrack(h)
			fn()

		case <-h.shut:
		}
	}()

	return h
}

// Live returns the number of callbacks that have not been stopped or
// completed.
func (s *System) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.live)
}

// Shutdown stops every live handle and waits for the scheduler goroutines
// to return. Callbacks that are already running are allowed to finish.
func (s *System) Shutdown() {
	s.mu.Lock()
	handles := make([]*systemHandle, 0, len(s.live))
	for h := range s.live {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		h.Stop()
	}

	s.wg.Wait()
}

func (s *System) track() *systemHandle {
	h := systemHandle{
		shut: make(chan struct{}),
		sys:  s,
	}

	s.mu.Lock()
	s.live[&h] = struct{}{}
	s.mu.Unlock()

	return &h
}

func (s *System) untrack(h *systemHandle) {
	s.mu.Lock()
	delete(s.live, h)
	s.mu.Unlock()
}

// =============================================================================

type systemHandle struct {
	shut chan struct{}
	once sync.Once
	sys  *System
}

// Stop implements the Handle interface.
func (h *systemHandle) Stop() {
	h.once.Do(func() {
		close(h.shut)
		h.sys.untrack(h)
	})
}
