package audit

import (
	"context"
	"database/sql"
	"fmt"

	id "veripay/pkg/domain"
)

// PostgresStore persists audit events in PostgreSQL. Events are append-only;
// there is no update or delete path.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO compliance_audit_events (occurred_at, seller_id, action, field, detail)
		VALUES ($1, $2, $3, $4, $5)`,
		event.Timestamp, event.SellerID.String(), string(event.Action), event.Field, event.Detail,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListBySeller(ctx context.Context, sellerID id.SellerID) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT occurred_at, action, field, detail
		FROM compliance_audit_events
		WHERE seller_id = $1
		ORDER BY occurred_at`,
		sellerID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		event := Event{SellerID: sellerID}
		var action string
		if err := rows.Scan(&event.Timestamp, &action, &event.Field, &event.Detail); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Action = Action(action)
		events = append(events, event)
	}
	return events, rows.Err()
}
