package tracker

import (
	"context"
	"sync"

	"veripay/internal/compliance/models"
	id "veripay/pkg/domain"
	"veripay/pkg/platform/sentinel"
	"veripay/pkg/requestcontext"
)

// InMemoryStore keeps pending info requests in memory. Safe for concurrent
// use; suitable for tests and local development.
type InMemoryStore struct {
	mu       sync.RWMutex
	requests map[id.RequestID]*models.PendingInfoRequest
	// insertion order per seller so listings stay stable
	order []id.RequestID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		requests: make(map[id.RequestID]*models.PendingInfoRequest),
	}
}

func (s *InMemoryStore) Create(_ context.Context, req *models.PendingInfoRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.requests {
		if existing.SellerID == req.SellerID &&
			existing.FieldNeeded == req.FieldNeeded &&
			existing.IsOutstanding() {
			return sentinel.ErrConflict
		}
	}
	clone := *req
	s.requests[req.ID] = &clone
	s.order = append(s.order, req.ID)
	return nil
}

func (s *InMemoryStore) Outstanding(_ context.Context, sellerID id.SellerID) ([]*models.PendingInfoRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PendingInfoRequest
	for _, reqID := range s.order {
		req := s.requests[reqID]
		if req.SellerID == sellerID && req.IsOutstanding() {
			clone := *req
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *InMemoryStore) MarkProvided(ctx context.Context, sellerID id.SellerID, field models.ComplianceField) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := requestcontext.Now(ctx)
	transitioned := 0
	for _, req := range s.requests {
		if req.SellerID != sellerID || req.FieldNeeded != field {
			continue
		}
		if err := req.MarkProvided(now); err == nil {
			transitioned++
		}
	}
	return transitioned, nil
}

// All returns every request regardless of state. Test helper: lets suites
// assert the audit-trail invariant that rows transition but never disappear.
func (s *InMemoryStore) All() []*models.PendingInfoRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.PendingInfoRequest, 0, len(s.order))
	for _, reqID := range s.order {
		clone := *s.requests[reqID]
		out = append(out, &clone)
	}
	return out
}
