package store

import "sync"

// subscriber guards one notification channel against send-after-close.
type subscriber struct {
	ch     chan Event
	mu     sync.Mutex
	closed bool
}

// trySend delivers ev without blocking and reports whether it was accepted.
func (s *subscriber) trySend(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}

	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
