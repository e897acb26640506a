package audit

import (
	"context"
	"time"

	id "veripay/pkg/domain"
)

// Store is the append-only persistence contract for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySeller(ctx context.Context, sellerID id.SellerID) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily. A nil
// Publisher drops events, letting callers wire auditing optionally.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if p == nil || p.store == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return p.store.Append(ctx, event)
}

func (p *Publisher) List(ctx context.Context, sellerID id.SellerID) ([]Event, error) {
	if p == nil || p.store == nil {
		return nil, nil
	}
	return p.store.ListBySeller(ctx, sellerID)
}
