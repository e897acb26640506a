// Package domain holds shared identifier types. Each ID is a distinct type
// over uuid.UUID so the compiler rejects cross-entity mixups. Construct via
// the Parse helpers at trust boundaries; direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "veripay/pkg/domain-errors"
)

// SellerID identifies an account holder subject to payout compliance.
type SellerID uuid.UUID

// RequestID identifies a pending information request.
type RequestID uuid.UUID

// SnapshotID identifies a compliance info snapshot version.
type SnapshotID uuid.UUID

func (id SellerID) String() string   { return uuid.UUID(id).String() }
func (id RequestID) String() string  { return uuid.UUID(id).String() }
func (id SnapshotID) String() string { return uuid.UUID(id).String() }

func (id SellerID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders IDs in canonical UUID form for JSON payloads.
func (id SellerID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id RequestID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id SnapshotID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *SellerID) UnmarshalText(b []byte) error {
	parsed, err := ParseSellerID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *RequestID) UnmarshalText(b []byte) error {
	parsed, err := ParseRequestID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *SnapshotID) UnmarshalText(b []byte) error {
	parsed, err := ParseSnapshotID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// NewRequestID mints a fresh request ID.
func NewRequestID() RequestID { return RequestID(uuid.New()) }

// NewSnapshotID mints a fresh snapshot ID.
func NewSnapshotID() SnapshotID { return SnapshotID(uuid.New()) }

// ParseSellerID validates and converts an external string into a SellerID.
// IDs must be valid, non-nil UUIDs.
func ParseSellerID(s string) (SellerID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return SellerID{}, err
	}
	return SellerID(parsed), nil
}

// ParseRequestID validates and converts an external string into a RequestID.
func ParseRequestID(s string) (RequestID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return RequestID{}, err
	}
	return RequestID(parsed), nil
}

// ParseSnapshotID validates and converts an external string into a SnapshotID.
func ParseSnapshotID(s string) (SnapshotID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return SnapshotID{}, err
	}
	return SnapshotID(parsed), nil
}

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil UUID")
	}
	return parsed, nil
}
