package models

import (
	"time"

	id "veripay/pkg/domain"
)

// ComplianceInfo is one immutable snapshot of a seller's compliance data.
// Updates never mutate in place: each write clones the current version, bumps
// Version, and links back via PreviousID, so history stays queryable for
// audit and concurrent writers produce two snapshots instead of a corrupted
// merge. The highest version is authoritative.
type ComplianceInfo struct {
	ID         id.SnapshotID
	SellerID   id.SellerID
	Version    int
	PreviousID *id.SnapshotID

	CountryCode string
	EntityType  EntityType

	IndividualTaxID      string
	BusinessVatID        string
	IdentityDocumentID   string
	AdditionalDocumentID string
	CompanyDocumentID    string

	CreatedAt time.Time
}

// NextVersion clones the snapshot as the successor version. The caller
// mutates the clone and appends it; the receiver is left untouched.
func (c *ComplianceInfo) NextVersion(now time.Time) *ComplianceInfo {
	next := *c
	prevID := c.ID
	next.ID = id.NewSnapshotID()
	next.PreviousID = &prevID
	next.Version = c.Version + 1
	next.CreatedAt = now
	return &next
}

// SetDocumentRef records an uploaded document reference for one of the
// snapshot-persisted fields. Unknown fields are ignored; the router
// guarantees only snapshot fields reach here.
func (c *ComplianceInfo) SetDocumentRef(field ComplianceField, ref string) {
	switch field {
	case FieldStripeIdentityDocumentID:
		c.IdentityDocumentID = ref
	case FieldStripeAdditionalDocumentID:
		c.AdditionalDocumentID = ref
	case FieldStripeCompanyDocumentID:
		c.CompanyDocumentID = ref
	}
}
