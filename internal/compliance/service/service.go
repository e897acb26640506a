// Package service is the top-level entry point for compliance submissions.
// It mediates between inbound submissions and the verification gateway,
// keeping the pending-request tracker and compliance snapshots consistent
// with what the processor has accepted.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"veripay/internal/audit"
	"veripay/internal/compliance/gateway"
	"veripay/internal/compliance/metrics"
	"veripay/internal/compliance/models"
	"veripay/internal/compliance/registry"
	"veripay/internal/compliance/router"
	"veripay/internal/compliance/snapshot"
	"veripay/internal/compliance/tracker"
	"veripay/internal/notify"
)

// User-facing result messages. These are contract: the web client renders
// them verbatim.
const (
	msgParseFailure           = "We weren't able to parse your document. Please upload it as a JPEG or PNG file."
	msgSubmitFailure          = "We weren't able to submit your document. Please try again."
	msgVerificationIncomplete = "We weren't able to complete your identity verification. Please try again."
	msgVerificationComplete   = "Thanks! You're all set."
	msgNoVerificationDue      = "No identity verification is currently required."
	msgInvalidTaxID           = "Please enter a valid tax ID."
)

const defaultGatewayTimeout = 30 * time.Second

// ssnPattern accepts nine digits with optional dashes in the standard
// grouping.
var ssnPattern = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)

// Service orchestrates document and tax-ID submissions end to end. Side
// effects are strictly ordered: local state is only mutated after the
// upstream call chain has succeeded.
type Service struct {
	gateway   gateway.Gateway
	tracker   *tracker.Service
	snapshots *snapshot.Service
	auditor   *audit.Publisher
	notifier  *notify.Notifier
	logger    *slog.Logger
	metrics   *metrics.Metrics

	gatewayTimeout time.Duration
	returnURL      string
}

// Option configures the Service.
type Option func(*Service)

// WithGatewayTimeout bounds each gateway call. Zero keeps the default.
func WithGatewayTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.gatewayTimeout = d
		}
	}
}

// WithNotifier sets the fire-and-forget notification publisher.
func WithNotifier(n *notify.Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithReturnURL sets where hosted verification sessions send the seller
// back to.
func WithReturnURL(url string) Option {
	return func(s *Service) {
		s.returnURL = url
	}
}

func NewService(gw gateway.Gateway, tr *tracker.Service, snaps *snapshot.Service, auditor *audit.Publisher, logger *slog.Logger, opts ...Option) (*Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("verification gateway is required")
	}
	if tr == nil {
		return nil, fmt.Errorf("pending request tracker is required")
	}
	if snaps == nil {
		return nil, fmt.Errorf("snapshot service is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		gateway:        gw,
		tracker:        tr,
		snapshots:      snaps,
		auditor:        auditor,
		logger:         logger,
		gatewayTimeout: defaultGatewayTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SubmitDocument processes one document submission end to end: classify,
// upload, attach upstream, then reconcile local state. Every failure is
// converted to an unsuccessful Outcome; nothing escapes as an error.
func (s *Service) SubmitDocument(ctx context.Context, sctx models.SellerContext, sub models.Submission) models.Outcome {
	start := time.Now()
	outcome := s.submitDocument(ctx, sctx, sub)
	s.metrics.ObserveSubmitLatency(time.Since(start))
	result := "success"
	if !outcome.Success {
		result = "failure"
	}
	s.metrics.IncrementSubmission(string(sub.Intent), result)
	return outcome
}

func (s *Service) submitDocument(ctx context.Context, sctx models.SellerContext, sub models.Submission) models.Outcome {
	route, err := router.Classify(sub, sctx)
	if err != nil {
		var missing *router.MissingDocumentError
		if errors.As(err, &missing) {
			return models.Failure(missing.Prompt)
		}
		s.logger.ErrorContext(ctx, "classification failed", "seller_id", sctx.SellerID, "error", err)
		return models.Failure(msgSubmitFailure)
	}

	ref, err := s.uploadDocument(ctx, sctx, route, sub)
	if err != nil {
		if errors.Is(err, gateway.ErrUploadRejected) {
			return models.Failure(msgParseFailure)
		}
		s.logger.ErrorContext(ctx, "document upload failed", "seller_id", sctx.SellerID, "error", err)
		return models.Failure(msgSubmitFailure)
	}

	if err := s.attachDocument(ctx, sctx, route, ref); err != nil {
		// The uploaded reference is abandoned; cleanup happens out-of-band.
		s.logger.ErrorContext(ctx, "document attach failed",
			"seller_id", sctx.SellerID, "field", route.Field, "error", err)
		return models.Failure(msgSubmitFailure)
	}

	// Upstream has accepted the document. Local reconciliation failures are
	// logged, not surfaced: resubmitting now would duplicate the upstream
	// document.
	if err := s.tracker.MarkProvided(ctx, sctx.SellerID, route.Field); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve pending request",
			"seller_id", sctx.SellerID, "field", route.Field, "error", err)
	}

	if route.Field.PersistsToSnapshot() {
		_, err := s.snapshots.Update(ctx, sctx, func(info *models.ComplianceInfo) {
			info.SetDocumentRef(route.Field, ref)
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to snapshot document reference",
				"seller_id", sctx.SellerID, "field", route.Field, "error", err)
		}
	}

	s.notifier.Emit(ctx, notify.Message{
		SellerID: sctx.SellerID,
		Kind:     notify.KindDocumentReceived,
		Body:     "Your verification document was received.",
	})
	return models.OK()
}

func (s *Service) uploadDocument(ctx context.Context, sctx models.SellerContext, route router.Route, sub models.Submission) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	start := time.Now()
	ref, err := s.gateway.UploadDocument(ctx, sctx.AccountID, gateway.UploadInput{
		Purpose:  route.Purpose,
		Filename: sub.Filename,
		Content:  sub.Document,
	})
	s.metrics.ObserveGatewayLatency("upload", time.Since(start))
	return ref, err
}

// attachDocument issues the account or person update for the classified
// target, carrying the uploaded file reference.
func (s *Service) attachDocument(ctx context.Context, sctx models.SellerContext, route router.Route, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		s.metrics.ObserveGatewayLatency("update", time.Since(start))
	}()

	switch route.Target.Kind {
	case models.TargetAccountDocument:
		return s.gateway.UpdateAccountDocument(ctx, sctx.AccountID, route.Target.Bucket, []string{ref})
	case models.TargetCompanyEntity:
		return s.gateway.UpdateAccountEntityDocument(ctx, sctx.AccountID, ref)
	case models.TargetAccountPerson:
		personID, err := s.gateway.MostRecentPerson(ctx, sctx.AccountID)
		if err != nil {
			return fmt.Errorf("resolve person: %w", err)
		}
		return s.gateway.UpdatePersonDocument(ctx, sctx.AccountID, personID, route.Target.Bucket, route.Target.Shape, ref)
	default:
		return fmt.Errorf("unknown verification target %q", route.Target.Kind)
	}
}

// SubmitTaxID processes the textual tax-ID path. Individuals record their
// tax ID locally only; businesses additionally push the VAT ID to the
// processor before any local state changes.
func (s *Service) SubmitTaxID(ctx context.Context, sctx models.SellerContext, value string) models.Outcome {
	value = strings.TrimSpace(value)

	field := models.FieldIndividualTaxID
	if sctx.EntityType == models.EntityTypeBusiness {
		field = models.FieldBusinessVatIDNumber
	}
	if !validTaxID(field, value) {
		return models.Failure(msgInvalidTaxID)
	}

	if field == models.FieldBusinessVatIDNumber {
		gctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
		start := time.Now()
		err := s.gateway.UpdateBusinessTaxID(gctx, sctx.AccountID, value)
		s.metrics.ObserveGatewayLatency("update", time.Since(start))
		cancel()
		if err != nil {
			s.logger.ErrorContext(ctx, "vat id update failed", "seller_id", sctx.SellerID, "error", err)
			return models.Failure(msgSubmitFailure)
		}
	}

	_, err := s.snapshots.Update(ctx, sctx, func(info *models.ComplianceInfo) {
		if field == models.FieldBusinessVatIDNumber {
			info.BusinessVatID = value
		} else {
			info.IndividualTaxID = value
		}
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to snapshot tax id", "seller_id", sctx.SellerID, "error", err)
		return models.Failure(msgSubmitFailure)
	}

	if err := s.tracker.MarkProvided(ctx, sctx.SellerID, field); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve pending request",
			"seller_id", sctx.SellerID, "field", field, "error", err)
	}
	_ = s.auditor.Emit(ctx, audit.Event{
		SellerID: sctx.SellerID,
		Action:   audit.ActionTaxIDProvided,
		Field:    string(field),
	})

	s.notifier.Emit(ctx, notify.Message{
		SellerID: sctx.SellerID,
		Kind:     notify.KindTaxIDReceived,
		Body:     "Your tax information was received.",
	})
	return models.OK()
}

func validTaxID(field models.ComplianceField, value string) bool {
	if field == models.FieldIndividualTaxID {
		return ssnPattern.MatchString(value)
	}
	return len(value) >= 4 && len(value) <= 32
}

// RequestVerificationLink mints a hosted verification session URL for the
// enhanced identity flow. Requires an outstanding enhanced-verification
// request; mutates no local state. The pending request is resolved later by
// ReconcileEnhancedVerification.
func (s *Service) RequestVerificationLink(ctx context.Context, sctx models.SellerContext) (string, models.Outcome) {
	outstanding, err := s.tracker.HasOutstanding(ctx, sctx.SellerID, models.FieldEnhancedIdentityVerification)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read pending requests", "seller_id", sctx.SellerID, "error", err)
		return "", models.Failure(msgSubmitFailure)
	}
	if !outstanding {
		return "", models.Failure(msgNoVerificationDue)
	}

	gctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()
	start := time.Now()
	url, err := s.gateway.CreateVerificationSession(gctx, sctx.AccountID, s.returnURL)
	s.metrics.ObserveGatewayLatency("session", time.Since(start))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create verification session", "seller_id", sctx.SellerID, "error", err)
		return "", models.Failure(msgVerificationIncomplete)
	}

	_ = s.auditor.Emit(ctx, audit.Event{
		SellerID: sctx.SellerID,
		Action:   audit.ActionVerificationLinkIssued,
		Field:    string(models.FieldEnhancedIdentityVerification),
	})
	return url, models.OK()
}

// ReconcileEnhancedVerification checks whether the hosted verification has
// completed upstream and resolves the local pending request when it has.
// Idempotent: safe to run from both the return redirect and a webhook.
// Returns the user-facing status message alongside the outcome.
func (s *Service) ReconcileEnhancedVerification(ctx context.Context, sctx models.SellerContext) (string, models.Outcome) {
	gctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	var (
		requirements []string
		outstanding  bool
	)
	g, fetchCtx := errgroup.WithContext(gctx)
	g.Go(func() error {
		start := time.Now()
		reqs, err := s.gateway.FetchOutstandingRequirements(fetchCtx, sctx.AccountID)
		s.metrics.ObserveGatewayLatency("requirements", time.Since(start))
		requirements = reqs
		return err
	})
	g.Go(func() error {
		has, err := s.tracker.HasOutstanding(fetchCtx, sctx.SellerID, models.FieldEnhancedIdentityVerification)
		outstanding = has
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "verification reconcile failed", "seller_id", sctx.SellerID, "error", err)
		return msgVerificationIncomplete, models.Failure(msgVerificationIncomplete)
	}

	for _, name := range requirements {
		if name == gateway.RequirementProofOfLiveness {
			// Upstream still wants liveness. Make sure the local tracker
			// agrees, so the seller keeps seeing the request.
			if !outstanding {
				if err := s.tracker.Request(ctx, sctx.SellerID, models.FieldEnhancedIdentityVerification); err != nil {
					s.logger.ErrorContext(ctx, "failed to open pending request",
						"seller_id", sctx.SellerID, "field", models.FieldEnhancedIdentityVerification, "error", err)
				}
			}
			return msgVerificationIncomplete, models.Failure(msgVerificationIncomplete)
		}
	}

	if outstanding {
		if err := s.tracker.MarkProvided(ctx, sctx.SellerID, models.FieldEnhancedIdentityVerification); err != nil {
			s.logger.ErrorContext(ctx, "failed to resolve pending request",
				"seller_id", sctx.SellerID, "field", models.FieldEnhancedIdentityVerification, "error", err)
			return msgVerificationIncomplete, models.Failure(msgVerificationIncomplete)
		}
		_ = s.auditor.Emit(ctx, audit.Event{
			SellerID: sctx.SellerID,
			Action:   audit.ActionVerificationReconciled,
			Field:    string(models.FieldEnhancedIdentityVerification),
		})
		s.notifier.Emit(ctx, notify.Message{
			SellerID: sctx.SellerID,
			Kind:     notify.KindVerificationComplete,
			Body:     msgVerificationComplete,
		})
	}
	return msgVerificationComplete, models.OK()
}

// Outstanding lists the seller's unresolved information requests.
func (s *Service) Outstanding(ctx context.Context, sctx models.SellerContext) ([]*models.PendingInfoRequest, error) {
	return s.tracker.Outstanding(ctx, sctx.SellerID)
}

// RequiredFields resolves the jurisdictional requirement set for a seller.
func (s *Service) RequiredFields(sctx models.SellerContext) []models.ComplianceField {
	return registry.RequirementsFor(sctx.CountryCode, sctx.EntityType)
}
