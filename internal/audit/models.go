package audit

import (
	"time"

	id "veripay/pkg/domain"
)

// Action labels what happened to a compliance request or document.
type Action string

const (
	ActionRequestCreated         Action = "request_created"
	ActionDocumentProvided       Action = "document_provided"
	ActionTaxIDProvided          Action = "tax_id_provided"
	ActionVerificationLinkIssued Action = "verification_link_issued"
	ActionVerificationReconciled Action = "verification_reconciled"
)

// Event is emitted from domain logic to capture key compliance actions. Keep
// it transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	SellerID  id.SellerID
	Action    Action
	Field     string
	Detail    string
}
