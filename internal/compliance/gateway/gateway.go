// Package gateway is the boundary to the payment processor's compliance and
// identity API. The core only depends on the Gateway interface; the HTTP
// client, the cache decorator, and test doubles are interchangeable.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"veripay/internal/compliance/models"
	"veripay/pkg/platform/sentinel"
)

// ErrUploadRejected reports that the processor could not parse the uploaded
// file (wrong format, corrupt image). Surfaced to the user as a resubmission
// prompt; no local state is mutated.
var ErrUploadRejected = errors.New("document upload rejected")

// ErrNoPerson reports an account with no person records where a person-level
// document was to be attached.
var ErrNoPerson = fmt.Errorf("no person on file for account: %w", sentinel.ErrNotFound)

// ErrAmbiguousPerson reports an account where the person of interest cannot
// be determined. We surface this instead of guessing which record to update.
var ErrAmbiguousPerson = fmt.Errorf("multiple candidate persons on account: %w", sentinel.ErrAmbiguous)

// UploadInput is the raw file payload for UploadDocument.
type UploadInput struct {
	Purpose  models.UploadPurpose
	Filename string
	Content  []byte
}

// Gateway is the contract to the processor's compliance API. All calls are
// synchronous, bounded by the context deadline, and never retried: a failed
// upstream call is reported immediately so the user can resubmit.
type Gateway interface {
	// UploadDocument stores the raw file upstream and returns its reference.
	// Returns ErrUploadRejected for unparseable files.
	UploadDocument(ctx context.Context, accountID string, in UploadInput) (string, error)

	// UpdateAccountDocument attaches file references under an account-level
	// documents bucket (files-array wire shape).
	UpdateAccountDocument(ctx context.Context, accountID, bucket string, fileRefs []string) error

	// UpdateAccountEntityDocument attaches a front-of-document reference to
	// the business entity verification record.
	UpdateAccountEntityDocument(ctx context.Context, accountID, front string) error

	// UpdatePersonDocument attaches a file reference to a person record
	// under the given bucket, in the given wire shape.
	UpdatePersonDocument(ctx context.Context, accountID, personID, bucket string, shape models.WireShape, fileRef string) error

	// UpdateBusinessTaxID records the business VAT/tax ID on the account.
	UpdateBusinessTaxID(ctx context.Context, accountID, taxID string) error

	// MostRecentPerson resolves the most recently added person on the
	// account. Returns ErrNoPerson or ErrAmbiguousPerson when the person of
	// interest cannot be determined.
	MostRecentPerson(ctx context.Context, accountID string) (string, error)

	// CreateVerificationSession mints a hosted verification session and
	// returns its URL.
	CreateVerificationSession(ctx context.Context, accountID, returnURL string) (string, error)

	// FetchOutstandingRequirements lists the requirement names still due on
	// the account.
	FetchOutstandingRequirements(ctx context.Context, accountID string) ([]string, error)
}

// RequirementProofOfLiveness is the upstream requirement name that tracks
// the hosted enhanced identity verification.
const RequirementProofOfLiveness = "individual.verification.proof_of_liveness"
