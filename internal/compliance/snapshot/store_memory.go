package snapshot

import (
	"context"
	"sync"

	"veripay/internal/compliance/models"
	id "veripay/pkg/domain"
	"veripay/pkg/platform/sentinel"
)

// InMemoryStore keeps snapshot chains in memory, keyed by seller.
type InMemoryStore struct {
	mu        sync.RWMutex
	snapshots map[id.SellerID][]*models.ComplianceInfo
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		snapshots: make(map[id.SellerID][]*models.ComplianceInfo),
	}
}

func (s *InMemoryStore) Append(_ context.Context, info *models.ComplianceInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.snapshots[info.SellerID] {
		if existing.Version == info.Version {
			return sentinel.ErrConflict
		}
	}
	clone := *info
	s.snapshots[info.SellerID] = append(s.snapshots[info.SellerID], &clone)
	return nil
}

func (s *InMemoryStore) Current(_ context.Context, sellerID id.SellerID) (*models.ComplianceInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chain := s.snapshots[sellerID]
	if len(chain) == 0 {
		return nil, sentinel.ErrNotFound
	}
	current := chain[0]
	for _, candidate := range chain[1:] {
		if candidate.Version > current.Version {
			current = candidate
		}
	}
	clone := *current
	return &clone, nil
}

func (s *InMemoryStore) History(_ context.Context, sellerID id.SellerID) ([]*models.ComplianceInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chain := s.snapshots[sellerID]
	out := make([]*models.ComplianceInfo, 0, len(chain))
	for _, info := range chain {
		clone := *info
		out = append(out, &clone)
	}
	return out, nil
}
