package ws

import "sync"

// Subscription is a cancellable handle on one topic. Receivers read
// whole snapshots from C; Close detaches the handle and closes C.
type Subscription struct {
	topic  string
	ch     chan []byte
	mgr    *Manager
	mu     sync.Mutex
	closed bool
}

func (s *Subscription) Topic() string { return s.topic }

// C yields snapshots in publish order. Only the newest matters, so a
// slow reader may miss intermediate ones.
func (s *Subscription) C() <-chan []byte { return s.ch }

// Close is idempotent.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.ch)
	s.mu.Unlock()

	s.mgr.unsubscribe(s)
}

func (s *Subscription) deliver(payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.ch <- payload:
			return
		default:
		}
		// buffer full: drop the stalest snapshot
		select {
		case <-s.ch:
		default:
		}
	}
}
