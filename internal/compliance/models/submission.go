package models

import id "veripay/pkg/domain"

// EntityType distinguishes how a seller is registered for payouts.
type EntityType string

const (
	EntityTypeIndividual EntityType = "individual"
	EntityTypeBusiness   EntityType = "business"
)

// CountryARE is the jurisdiction whose company identity documents route to a
// dedicated upstream license bucket instead of the business entity record.
const CountryARE = "AE"

// SellerContext is the compliance context the router needs to classify a
// submission: who the seller is upstream and where they are registered.
// Passed in explicitly rather than read from ambient configuration.
type SellerContext struct {
	SellerID    id.SellerID
	AccountID   string // connected account identifier at the payment processor
	CountryCode string // ISO 3166-1 alpha-2
	EntityType  EntityType
}

// Submission is the ephemeral input for one verification attempt: either a
// raw document plus a declared intent, or a raw textual value (tax ID paths).
// Constructed per request, consumed once, never persisted.
type Submission struct {
	Document []byte
	Filename string
	Intent   SubmissionIntent
}

// HasDocument reports whether a file payload was supplied.
func (s Submission) HasDocument() bool {
	return len(s.Document) > 0
}

// Outcome is the uniform result surfaced to callers. Never persisted.
type Outcome struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OK is the successful outcome.
func OK() Outcome {
	return Outcome{Success: true}
}

// Failure wraps a user-facing message in an unsuccessful outcome.
func Failure(message string) Outcome {
	return Outcome{Success: false, Error: message}
}
