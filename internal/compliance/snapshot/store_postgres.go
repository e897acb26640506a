package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"veripay/internal/compliance/models"
	id "veripay/pkg/domain"
	"veripay/pkg/platform/sentinel"
)

// PostgresStore persists snapshot chains in PostgreSQL. A UNIQUE
// (seller_id, version) constraint turns version races into ErrConflict so
// the service can replay the update.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, info *models.ComplianceInfo) error {
	var previousID any
	if info.PreviousID != nil {
		previousID = info.PreviousID.String()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO compliance_info_snapshots (
			id, seller_id, version, previous_id, country_code, entity_type,
			individual_tax_id, business_vat_id, identity_document_id,
			additional_document_id, company_document_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		info.ID.String(), info.SellerID.String(), info.Version, previousID,
		info.CountryCode, string(info.EntityType),
		info.IndividualTaxID, info.BusinessVatID, info.IdentityDocumentID,
		info.AdditionalDocumentID, info.CompanyDocumentID, info.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Current(ctx context.Context, sellerID id.SellerID) (*models.ComplianceInfo, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, version, previous_id, country_code, entity_type,
		       individual_tax_id, business_vat_id, identity_document_id,
		       additional_document_id, company_document_id, created_at
		FROM compliance_info_snapshots
		WHERE seller_id = $1
		ORDER BY version DESC
		LIMIT 1`,
		sellerID.String(),
	)
	info, err := scanSnapshot(row, sellerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return info, err
}

func (s *PostgresStore) History(ctx context.Context, sellerID id.SellerID) ([]*models.ComplianceInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, version, previous_id, country_code, entity_type,
		       individual_tax_id, business_vat_id, identity_document_id,
		       additional_document_id, company_document_id, created_at
		FROM compliance_info_snapshots
		WHERE seller_id = $1
		ORDER BY version`,
		sellerID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []*models.ComplianceInfo
	for rows.Next() {
		info, err := scanSnapshot(rows, sellerID)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner, sellerID id.SellerID) (*models.ComplianceInfo, error) {
	var (
		rawID, rawEntityType string
		rawPrevious          sql.NullString
		info                 models.ComplianceInfo
	)
	err := row.Scan(
		&rawID, &info.Version, &rawPrevious, &info.CountryCode, &rawEntityType,
		&info.IndividualTaxID, &info.BusinessVatID, &info.IdentityDocumentID,
		&info.AdditionalDocumentID, &info.CompanyDocumentID, &info.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}
	snapshotID, err := parseSnapshotID(rawID)
	if err != nil {
		return nil, err
	}
	info.ID = snapshotID
	info.SellerID = sellerID
	info.EntityType = models.EntityType(rawEntityType)
	if rawPrevious.Valid {
		prevID, err := parseSnapshotID(rawPrevious.String)
		if err != nil {
			return nil, err
		}
		info.PreviousID = &prevID
	}
	return &info, nil
}

func parseSnapshotID(raw string) (id.SnapshotID, error) {
	parsed, err := id.ParseSnapshotID(raw)
	if err != nil {
		return id.SnapshotID{}, fmt.Errorf("corrupt snapshot id %q: %w", raw, err)
	}
	return parsed, nil
}
