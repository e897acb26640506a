package models

import (
	"time"

	id "veripay/pkg/domain"
	"veripay/pkg/platform/sentinel"
)

// RequestState is the lifecycle state of a pending information request.
// Requests transition requested -> provided and are never deleted, so the
// table doubles as an audit trail.
type RequestState string

const (
	RequestStateRequested RequestState = "requested"
	RequestStateProvided  RequestState = "provided"
)

// PendingInfoRequest tracks one outstanding compliance requirement for one
// seller. Invariant: at most one request in state requested per seller+field.
type PendingInfoRequest struct {
	ID          id.RequestID
	SellerID    id.SellerID
	FieldNeeded ComplianceField
	State       RequestState
	RequestedAt time.Time
	ProvidedAt  *time.Time
}

// NewPendingInfoRequest builds a request in the requested state.
func NewPendingInfoRequest(sellerID id.SellerID, field ComplianceField, now time.Time) *PendingInfoRequest {
	return &PendingInfoRequest{
		ID:          id.NewRequestID(),
		SellerID:    sellerID,
		FieldNeeded: field,
		State:       RequestStateRequested,
		RequestedAt: now,
	}
}

// MarkProvided transitions the request to provided. Calling it on an already
// provided request returns ErrInvalidState so stores can treat the second
// call as a no-op.
func (r *PendingInfoRequest) MarkProvided(now time.Time) error {
	if r.State == RequestStateProvided {
		return sentinel.ErrInvalidState
	}
	r.State = RequestStateProvided
	providedAt := now
	r.ProvidedAt = &providedAt
	return nil
}

// IsOutstanding reports whether the request still awaits a document.
func (r *PendingInfoRequest) IsOutstanding() bool {
	return r.State == RequestStateRequested
}
