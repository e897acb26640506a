package tracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"veripay/internal/compliance/models"
	id "veripay/pkg/domain"
	"veripay/pkg/platform/sentinel"
	"veripay/pkg/requestcontext"
)

// PostgresStore persists pending info requests in PostgreSQL. A partial
// unique index on (seller_id, field_needed) WHERE state = 'requested'
// enforces the at-most-one-outstanding invariant under concurrency; see
// internal/platform/postgres/schema.sql.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, req *models.PendingInfoRequest) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pending_info_requests (id, seller_id, field_needed, state, requested_at)
		VALUES ($1, $2, $3, $4, $5)`,
		req.ID.String(), req.SellerID.String(), string(req.FieldNeeded), string(req.State), req.RequestedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert pending request: %w", err)
	}
	return nil
}

func (s *PostgresStore) Outstanding(ctx context.Context, sellerID id.SellerID) ([]*models.PendingInfoRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, field_needed, requested_at
		FROM pending_info_requests
		WHERE seller_id = $1 AND state = 'requested'
		ORDER BY requested_at`,
		sellerID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list outstanding requests: %w", err)
	}
	defer rows.Close()

	var out []*models.PendingInfoRequest
	for rows.Next() {
		var (
			rawID, rawField string
			req             models.PendingInfoRequest
		)
		if err := rows.Scan(&rawID, &rawField, &req.RequestedAt); err != nil {
			return nil, fmt.Errorf("scan pending request: %w", err)
		}
		reqID, err := id.ParseRequestID(rawID)
		if err != nil {
			return nil, fmt.Errorf("corrupt request id %q: %w", rawID, err)
		}
		req.ID = reqID
		req.SellerID = sellerID
		req.FieldNeeded = models.ComplianceField(rawField)
		req.State = models.RequestStateRequested
		out = append(out, &req)
	}
	return out, rows.Err()
}

func (s *PostgresStore) MarkProvided(ctx context.Context, sellerID id.SellerID, field models.ComplianceField) (int, error) {
	// Scoped strictly by seller and field; the state predicate makes the
	// update idempotent and safe under concurrent invocation.
	result, err := s.db.ExecContext(ctx, `
		UPDATE pending_info_requests
		SET state = 'provided', provided_at = $3
		WHERE seller_id = $1 AND field_needed = $2 AND state = 'requested'`,
		sellerID.String(), string(field), requestcontext.Now(ctx),
	)
	if err != nil {
		return 0, fmt.Errorf("mark provided: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(affected), nil
}
