package audit

import (
	"context"
	"sync"

	id "veripay/pkg/domain"
)

// InMemoryStore keeps audit events in memory, ordered by insertion. Suitable
// for tests and single-process deployments.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListBySeller(_ context.Context, sellerID id.SellerID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, event := range s.events {
		if event.SellerID == sellerID {
			out = append(out, event)
		}
	}
	return out, nil
}
