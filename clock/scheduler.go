package clock

import "sync"

// FrameID identifies a pending frame callback. The zero value never refers
// to a pending callback.
type FrameID uint64

// Scheduler hands out one-shot callbacks that run on the next display frame.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameScheduler collects frame callbacks and runs them when the owning
// loop calls Step, once per display refresh.
//
// Callbacks requested while a step is running are deferred to the following
// step, so a self-rescheduling callback runs exactly once per frame.
type FrameScheduler struct {
	mu      sync.Mutex
	nextID  FrameID
	pending map[FrameID]func()
	order   []FrameID
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		pending: make(map[FrameID]func()),
	}
}

// RequestFrame queues fn for the next Step and returns its handle.
func (s *FrameScheduler) RequestFrame(fn func()) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.order = append(s.order, id)
	return id
}

// CancelFrame drops a pending callback. Cancelling an unknown, already run
// or zero id is a no-op.
func (s *FrameScheduler) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

// Step runs every callback that was pending when Step was called, in request
// order, and reports how many ran. A callback cancelled by an earlier
// callback in the same step does not run.
func (s *FrameScheduler) Step() int {
	s.mu.Lock()
	batch := s.order
	s.order = nil
	s.mu.Unlock()

	ran := 0
	for _, id := range batch {
		s.mu.Lock()
		fn, ok := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()

		if !ok {
			continue
		}
		fn()
		ran++
	}
	return ran
}

// Pending reports how many callbacks are waiting for the next Step.
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
