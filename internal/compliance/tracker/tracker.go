// Package tracker owns pending information requests: which compliance fields
// are still outstanding per seller, and their requested -> provided lifecycle.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"veripay/internal/audit"
	"veripay/internal/compliance/metrics"
	"veripay/internal/compliance/models"
	id "veripay/pkg/domain"
	"veripay/pkg/platform/sentinel"
	"veripay/pkg/requestcontext"
)

// Store is the persistence contract for pending info requests. Rows are
// never deleted, only transitioned, so the table doubles as an audit trail.
type Store interface {
	// Create persists a request. Returns sentinel.ErrConflict when an
	// outstanding request for the same seller and field already exists.
	Create(ctx context.Context, req *models.PendingInfoRequest) error

	// Outstanding lists requests in state requested for one seller.
	Outstanding(ctx context.Context, sellerID id.SellerID) ([]*models.PendingInfoRequest, error)

	// MarkProvided transitions all outstanding requests for the seller and
	// field to provided and returns how many rows changed. Zero is not an
	// error: the transition is idempotent.
	MarkProvided(ctx context.Context, sellerID id.SellerID, field models.ComplianceField) (int, error)
}

// Service wraps the store with audit emission and metrics. It is the only
// writer of request state transitions.
type Service struct {
	store   Store
	auditor *audit.Publisher
	metrics *metrics.Metrics
}

func NewService(store Store, auditor *audit.Publisher, metrics *metrics.Metrics) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("tracker store is required")
	}
	return &Service{store: store, auditor: auditor, metrics: metrics}, nil
}

// Request opens a pending request for a field unless one is already
// outstanding; duplicates are silently collapsed onto the existing request.
func (s *Service) Request(ctx context.Context, sellerID id.SellerID, field models.ComplianceField) error {
	req := models.NewPendingInfoRequest(sellerID, field, requestcontext.Now(ctx))
	if err := s.store.Create(ctx, req); err != nil {
		if isConflict(err) {
			return nil
		}
		return fmt.Errorf("create pending request: %w", err)
	}
	_ = s.auditor.Emit(ctx, audit.Event{
		SellerID: sellerID,
		Action:   audit.ActionRequestCreated,
		Field:    string(field),
	})
	return nil
}

// Outstanding lists a seller's unresolved requests.
func (s *Service) Outstanding(ctx context.Context, sellerID id.SellerID) ([]*models.PendingInfoRequest, error) {
	return s.store.Outstanding(ctx, sellerID)
}

// HasOutstanding reports whether a specific field is still awaited.
func (s *Service) HasOutstanding(ctx context.Context, sellerID id.SellerID, field models.ComplianceField) (bool, error) {
	requests, err := s.store.Outstanding(ctx, sellerID)
	if err != nil {
		return false, err
	}
	for _, req := range requests {
		if req.FieldNeeded == field {
			return true, nil
		}
	}
	return false, nil
}

// MarkProvided resolves all outstanding requests for one seller and field.
// Idempotent: a second call finds nothing to transition and succeeds.
// Requests for other sellers or other fields are never touched.
func (s *Service) MarkProvided(ctx context.Context, sellerID id.SellerID, field models.ComplianceField) error {
	transitioned, err := s.store.MarkProvided(ctx, sellerID, field)
	if err != nil {
		return fmt.Errorf("mark provided: %w", err)
	}
	if transitioned == 0 {
		return nil
	}
	s.metrics.IncrementProvided(string(field))
	_ = s.auditor.Emit(ctx, audit.Event{
		SellerID: sellerID,
		Action:   audit.ActionDocumentProvided,
		Field:    string(field),
	})
	return nil
}

func isConflict(err error) bool {
	return errors.Is(err, sentinel.ErrConflict)
}
