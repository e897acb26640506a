package handler

import (
	"time"

	"veripay/internal/compliance/models"
	id "veripay/pkg/domain"
)

// taxIDRequest is the JSON body for POST /compliance/tax-id.
type taxIDRequest struct {
	TaxID string `json:"tax_id" validate:"required,min=4,max=32"`
}

// verificationLinkResponse is the body for POST /compliance/verify-identity.
type verificationLinkResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// reconcileResponse is the body for GET /compliance/verify-identity.
type reconcileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// pendingRequestView is one outstanding requirement in the requests listing.
type pendingRequestView struct {
	ID          id.RequestID `json:"id"`
	Field       string       `json:"field"`
	RequestedAt time.Time    `json:"requested_at"`
}

// requestsResponse is the body for GET /compliance/requests.
type requestsResponse struct {
	Requests       []pendingRequestView `json:"requests"`
	RequiredFields []string             `json:"required_fields"`
}

func toRequestViews(requests []*models.PendingInfoRequest) []pendingRequestView {
	views := make([]pendingRequestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, pendingRequestView{
			ID:          req.ID,
			Field:       string(req.FieldNeeded),
			RequestedAt: req.RequestedAt,
		})
	}
	return views
}
