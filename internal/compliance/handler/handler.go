// Package handler exposes the compliance endpoints. Handlers stay thin:
// authentication and decoding at the edge, everything else delegated to the
// orchestrator.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"veripay/internal/compliance/models"
	"veripay/internal/platform/middleware"
	dErrors "veripay/pkg/domain-errors"
	"veripay/pkg/platform/httputil"
)

// maxDocumentSize bounds multipart uploads.
const maxDocumentSize = 16 << 20

// Orchestrator is the service contract the handlers delegate to.
type Orchestrator interface {
	SubmitDocument(ctx context.Context, sctx models.SellerContext, sub models.Submission) models.Outcome
	SubmitTaxID(ctx context.Context, sctx models.SellerContext, value string) models.Outcome
	RequestVerificationLink(ctx context.Context, sctx models.SellerContext) (string, models.Outcome)
	ReconcileEnhancedVerification(ctx context.Context, sctx models.SellerContext) (string, models.Outcome)
	Outstanding(ctx context.Context, sctx models.SellerContext) ([]*models.PendingInfoRequest, error)
	RequiredFields(sctx models.SellerContext) []models.ComplianceField
}

// Handler handles compliance endpoints.
type Handler struct {
	logger       *slog.Logger
	orchestrator Orchestrator
	validate     *validator.Validate
	tokens       middleware.TokenValidator
}

// New creates a compliance Handler.
func New(orchestrator Orchestrator, tokens middleware.TokenValidator, logger *slog.Logger) *Handler {
	return &Handler{
		logger:       logger,
		orchestrator: orchestrator,
		validate:     validator.New(),
		tokens:       tokens,
	}
}

// Register mounts the compliance routes. All endpoints require a seller
// token.
func (h *Handler) Register(r chi.Router) {
	complianceRouter := chi.NewRouter()
	complianceRouter.Use(middleware.Timeout(60 * time.Second))
	complianceRouter.Use(middleware.RequireSeller(h.tokens, h.logger))
	complianceRouter.Post("/documents", h.handleSubmitDocument)
	complianceRouter.Post("/tax-id", h.handleSubmitTaxID)
	complianceRouter.Post("/verify-identity", h.handleRequestVerificationLink)
	complianceRouter.Get("/verify-identity", h.handleReconcileVerification)
	complianceRouter.Get("/requests", h.handleListRequests)

	r.Mount("/compliance", complianceRouter)
}

func (h *Handler) sellerContext(w http.ResponseWriter, r *http.Request) (models.SellerContext, bool) {
	sctx, ok := middleware.GetSellerContext(r.Context())
	if !ok {
		// Unreachable behind RequireSeller unless the route wiring regresses.
		h.logger.ErrorContext(r.Context(), "seller context missing despite auth middleware",
			"request_id", middleware.GetRequestID(r.Context()))
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return models.SellerContext{}, false
	}
	return sctx, true
}

// handleSubmitDocument accepts a multipart form with an optional "file" part
// and one optional intent flag. A missing file is passed through so the
// orchestrator can answer with the intent-specific prompt.
func (h *Handler) handleSubmitDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sctx, ok := h.sellerContext(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		h.logger.WarnContext(ctx, "invalid multipart form",
			"request_id", middleware.GetRequestID(ctx), "error", err)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid multipart form"))
		return
	}

	intent, err := models.IntentFromFlags(intentFlagsFromForm(r))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	sub := models.Submission{Intent: intent}
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		// Read one byte past the limit so oversized uploads are rejected
		// rather than truncated into a corrupt document.
		content, err := io.ReadAll(io.LimitReader(file, maxDocumentSize+1))
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "unreadable file upload"))
			return
		}
		if len(content) > maxDocumentSize {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "file exceeds the 16 MiB upload limit"))
			return
		}
		sub.Document = content
		sub.Filename = header.Filename
	}

	outcome := h.orchestrator.SubmitDocument(ctx, sctx, sub)
	httputil.WriteJSON(w, http.StatusOK, outcome)
}

func intentFlagsFromForm(r *http.Request) models.IntentFlags {
	isSet := func(name string) bool {
		v := r.FormValue(name)
		return v == "true" || v == "1"
	}
	return models.IntentFlags{
		CompanyID:                       isSet("is_company_id"),
		AdditionalID:                    isSet("is_additional_id"),
		Passport:                        isSet("is_passport"),
		Visa:                            isSet("is_visa"),
		PowerOfAttorney:                 isSet("is_power_of_attorney"),
		MemorandumOfAssociation:         isSet("is_memorandum_of_association"),
		BankStatement:                   isSet("is_bank_statement"),
		ProofOfRegistration:             isSet("is_proof_of_registration"),
		CompanyRegistrationVerification: isSet("is_company_registration_verification"),
	}
}

func (h *Handler) handleSubmitTaxID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sctx, ok := h.sellerContext(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[taxIDRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "tax_id must be between 4 and 32 characters"))
		return
	}

	outcome := h.orchestrator.SubmitTaxID(ctx, sctx, req.TaxID)
	httputil.WriteJSON(w, http.StatusOK, outcome)
}

func (h *Handler) handleRequestVerificationLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sctx, ok := h.sellerContext(w, r)
	if !ok {
		return
	}

	url, outcome := h.orchestrator.RequestVerificationLink(ctx, sctx)
	httputil.WriteJSON(w, http.StatusOK, verificationLinkResponse{
		Success: outcome.Success,
		URL:     url,
		Error:   outcome.Error,
	})
}

func (h *Handler) handleReconcileVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sctx, ok := h.sellerContext(w, r)
	if !ok {
		return
	}

	message, outcome := h.orchestrator.ReconcileEnhancedVerification(ctx, sctx)
	httputil.WriteJSON(w, http.StatusOK, reconcileResponse{
		Success: outcome.Success,
		Message: message,
	})
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sctx, ok := h.sellerContext(w, r)
	if !ok {
		return
	}

	outstanding, err := h.orchestrator.Outstanding(ctx, sctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list pending requests",
			"request_id", middleware.GetRequestID(ctx), "error", err)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to list requests"))
		return
	}

	required := h.orchestrator.RequiredFields(sctx)
	fields := make([]string, 0, len(required))
	for _, field := range required {
		fields = append(fields, string(field))
	}

	httputil.WriteJSON(w, http.StatusOK, requestsResponse{
		Requests:       toRequestViews(outstanding),
		RequiredFields: fields,
	})
}
