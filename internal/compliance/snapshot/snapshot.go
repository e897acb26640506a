// Package snapshot owns the append-only versioning of seller compliance
// info. Every update writes a new immutable version; nothing is mutated in
// place, so history stays queryable and concurrent writers cannot corrupt
// the record.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"veripay/internal/compliance/models"
	id "veripay/pkg/domain"
	"veripay/pkg/platform/sentinel"
	"veripay/pkg/requestcontext"
)

// Store is the persistence contract for compliance info snapshots.
type Store interface {
	// Append persists a new snapshot version. Returns sentinel.ErrConflict
	// when the (seller, version) pair already exists, which signals a lost
	// race with a concurrent writer.
	Append(ctx context.Context, info *models.ComplianceInfo) error

	// Current returns the highest version for a seller, or
	// sentinel.ErrNotFound when the seller has no snapshot yet.
	Current(ctx context.Context, sellerID id.SellerID) (*models.ComplianceInfo, error)

	// History returns all versions for a seller, oldest first.
	History(ctx context.Context, sellerID id.SellerID) ([]*models.ComplianceInfo, error)
}

// maxAppendRetries bounds how often an update is replayed after losing a
// version race. Two concurrent submissions then settle as two snapshots.
const maxAppendRetries = 3

// Service provides the dup-and-save update flow over the store.
type Service struct {
	store Store
}

func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}
	return &Service{store: store}, nil
}

// Current returns the seller's authoritative snapshot.
func (s *Service) Current(ctx context.Context, sellerID id.SellerID) (*models.ComplianceInfo, error) {
	return s.store.Current(ctx, sellerID)
}

// History returns the full version chain, oldest first.
func (s *Service) History(ctx context.Context, sellerID id.SellerID) ([]*models.ComplianceInfo, error) {
	return s.store.History(ctx, sellerID)
}

// Update clones the current snapshot, applies mutate to the clone, and
// appends it as the next version. When no snapshot exists yet, a fresh
// version 1 is seeded from the given context. Lost version races are
// replayed against the refreshed current version.
func (s *Service) Update(ctx context.Context, sctx models.SellerContext, mutate func(*models.ComplianceInfo)) (*models.ComplianceInfo, error) {
	now := requestcontext.Now(ctx)

	for attempt := 0; attempt < maxAppendRetries; attempt++ {
		current, err := s.store.Current(ctx, sctx.SellerID)
		var next *models.ComplianceInfo
		switch {
		case err == nil:
			next = current.NextVersion(now)
		case errors.Is(err, sentinel.ErrNotFound):
			next = &models.ComplianceInfo{
				ID:          id.NewSnapshotID(),
				SellerID:    sctx.SellerID,
				Version:     1,
				CountryCode: sctx.CountryCode,
				EntityType:  sctx.EntityType,
				CreatedAt:   now,
			}
		default:
			return nil, fmt.Errorf("load current snapshot: %w", err)
		}

		mutate(next)

		err = s.store.Append(ctx, next)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, sentinel.ErrConflict) {
			return nil, fmt.Errorf("append snapshot: %w", err)
		}
		// Lost the version race; reload and replay.
	}
	return nil, fmt.Errorf("append snapshot: %w", sentinel.ErrConflict)
}
