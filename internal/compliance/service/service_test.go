package service

//go:generate mockgen -source=../gateway/gateway.go -destination=../gateway/mocks/mocks.go -package=mocks Gateway

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"veripay/internal/audit"
	"veripay/internal/compliance/gateway"
	"veripay/internal/compliance/gateway/mocks"
	"veripay/internal/compliance/models"
	"veripay/internal/compliance/snapshot"
	"veripay/internal/compliance/tracker"
	id "veripay/pkg/domain"
)

type OrchestratorSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	gateway   *mocks.MockGateway
	tracker   *tracker.Service
	snapshots *snapshot.Service
	auditLog  *audit.InMemoryStore
	service   *Service
	ctx       context.Context
	seller    models.SellerContext
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorSuite))
}

func (s *OrchestratorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = mocks.NewMockGateway(s.ctrl)
	s.auditLog = audit.NewInMemoryStore()
	s.ctx = context.Background()

	var err error
	s.tracker, err = tracker.NewService(tracker.NewInMemoryStore(), audit.NewPublisher(s.auditLog), nil)
	s.Require().NoError(err)
	s.snapshots, err = snapshot.NewService(snapshot.NewInMemoryStore())
	s.Require().NoError(err)

	s.service, err = NewService(s.gateway, s.tracker, s.snapshots, audit.NewPublisher(s.auditLog), slog.Default(),
		WithReturnURL("https://app.example.com/verify/return"))
	s.Require().NoError(err)

	s.seller = models.SellerContext{
		SellerID:    id.SellerID(uuid.New()),
		AccountID:   "acct_1",
		CountryCode: "US",
		EntityType:  models.EntityTypeIndividual,
	}
}

func (s *OrchestratorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorSuite) submission(intent models.SubmissionIntent, doc []byte) models.Submission {
	return models.Submission{Document: doc, Filename: "document.png", Intent: intent}
}

func (s *OrchestratorSuite) TestSubmitDocument_IdentityDocument() {
	s.Require().NoError(s.tracker.Request(s.ctx, s.seller.SellerID, models.FieldStripeIdentityDocumentID))

	s.gateway.EXPECT().
		UploadDocument(gomock.Any(), "acct_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in gateway.UploadInput) (string, error) {
			s.Equal(models.PurposeIdentityDocument, in.Purpose)
			return "file_1", nil
		})
	s.gateway.EXPECT().MostRecentPerson(gomock.Any(), "acct_1").Return("person_1", nil)
	s.gateway.EXPECT().
		UpdatePersonDocument(gomock.Any(), "acct_1", "person_1", models.BucketVerificationDocument, models.ShapeFront, "file_1").
		Return(nil)

	outcome := s.service.SubmitDocument(s.ctx, s.seller, s.submission(models.IntentIdentityDocument, []byte{1}))
	s.True(outcome.Success)
	s.Empty(outcome.Error)

	has, err := s.tracker.HasOutstanding(s.ctx, s.seller.SellerID, models.FieldStripeIdentityDocumentID)
	s.Require().NoError(err)
	s.False(has, "pending request resolved after upstream success")

	current, err := s.snapshots.Current(s.ctx, s.seller.SellerID)
	s.Require().NoError(err)
	s.Equal("file_1", current.IdentityDocumentID)
}

func (s *OrchestratorSuite) TestSubmitDocument_MissingFile() {
	// No gateway expectations: classification fails before any upstream call.
	outcome := s.service.SubmitDocument(s.ctx, s.seller, s.submission(models.IntentPassport, nil))
	s.False(outcome.Success)
	s.Equal("Please select a passport document, then submit.", outcome.Error)
}

func (s *OrchestratorSuite) TestSubmitDocument_MissingFileDefaultPrompt() {
	outcome := s.service.SubmitDocument(s.ctx, s.seller, s.submission(models.IntentIdentityDocument, nil))
	s.False(outcome.Success)
	s.Equal("Please select a government-issued photo ID, then submit.", outcome.Error)
}

func (s *OrchestratorSuite) TestSubmitDocument_UploadRejected() {
	s.Require().NoError(s.tracker.Request(s.ctx, s.seller.SellerID, models.FieldStripeIdentityDocumentID))

	s.gateway.EXPECT().
		UploadDocument(gomock.Any(), "acct_1", gomock.Any()).
		Return("", gateway.ErrUploadRejected)

	outcome := s.service.SubmitDocument(s.ctx, s.seller, s.submission(models.IntentIdentityDocument, []byte{1}))
	s.False(outcome.Success)
	s.Equal("We weren't able to parse your document. Please upload it as a JPEG or PNG file.", outcome.Error)

	has, err := s.tracker.HasOutstanding(s.ctx, s.seller.SellerID, models.FieldStripeIdentityDocumentID)
	s.Require().NoError(err)
	s.True(has, "tracker untouched on upload rejection")
}

func (s *OrchestratorSuite) TestSubmitDocument_AttachFailureLeavesStateUntouched() {
	s.Require().NoError(s.tracker.Request(s.ctx, s.seller.SellerID, models.FieldStripeIdentityDocumentID))

	s.gateway.EXPECT().UploadDocument(gomock.Any(), "acct_1", gomock.Any()).Return("file_1", nil)
	s.gateway.EXPECT().MostRecentPerson(gomock.Any(), "acct_1").Return("", gateway.ErrAmbiguousPerson)

	outcome := s.service.SubmitDocument(s.ctx, s.seller, s.submission(models.IntentIdentityDocument, []byte{1}))
	s.False(outcome.Success)

	has, err := s.tracker.HasOutstanding(s.ctx, s.seller.SellerID, models.FieldStripeIdentityDocumentID)
	s.Require().NoError(err)
	s.True(has)

	_, err = s.snapshots.Current(s.ctx, s.seller.SellerID)
	s.Error(err, "no snapshot written when the attach fails")
}

func (s *OrchestratorSuite) TestSubmitDocument_CompanyRouting() {
	s.Run("UAE company license goes to the account documents bucket", func() {
		uae := s.seller
		uae.CountryCode = models.CountryARE
		uae.EntityType = models.EntityTypeBusiness

		s.gateway.EXPECT().
			UploadDocument(gomock.Any(), "acct_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, in gateway.UploadInput) (string, error) {
				s.Equal(models.PurposeAccountRequirement, in.Purpose)
				return "file_2", nil
			})
		s.gateway.EXPECT().
			UpdateAccountDocument(gomock.Any(), "acct_1", models.BucketCompanyLicense, []string{"file_2"}).
			Return(nil)

		outcome := s.service.SubmitDocument(s.ctx, uae, s.submission(models.IntentCompanyID, []byte{1}))
		s.True(outcome.Success)
	})

	s.Run("elsewhere the business entity record is updated front-only", func() {
		de := s.seller
		de.CountryCode = "DE"
		de.EntityType = models.EntityTypeBusiness

		s.gateway.EXPECT().UploadDocument(gomock.Any(), "acct_1", gomock.Any()).Return("file_3", nil)
		s.gateway.EXPECT().UpdateAccountEntityDocument(gomock.Any(), "acct_1", "file_3").Return(nil)

		outcome := s.service.SubmitDocument(s.ctx, de, s.submission(models.IntentCompanyID, []byte{1}))
		s.True(outcome.Success)

		current, err := s.snapshots.Current(s.ctx, de.SellerID)
		s.Require().NoError(err)
		s.Equal("file_3", current.CompanyDocumentID)
	})
}

func (s *OrchestratorSuite) TestSubmitDocument_AccountRequirementDocuments() {
	s.gateway.EXPECT().
		UploadDocument(gomock.Any(), "acct_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in gateway.UploadInput) (string, error) {
			s.Equal(models.PurposeAccountRequirement, in.Purpose)
			return "file_4", nil
		})
	s.gateway.EXPECT().MostRecentPerson(gomock.Any(), "acct_1").Return("person_1", nil)
	s.gateway.EXPECT().
		UpdatePersonDocument(gomock.Any(), "acct_1", "person_1", models.BucketPassport, models.ShapeFiles, "file_4").
		Return(nil)

	outcome := s.service.SubmitDocument(s.ctx, s.seller, s.submission(models.IntentPassport, []byte{1}))
	s.True(outcome.Success)

	// Passport references are not part of the snapshot record.
	_, err := s.snapshots.Current(s.ctx, s.seller.SellerID)
	s.Error(err)
}

func (s *OrchestratorSuite) TestSubmitTaxID() {
	s.Run("individual tax id is recorded locally only", func() {
		s.Require().NoError(s.tracker.Request(s.ctx, s.seller.SellerID, models.FieldIndividualTaxID))

		outcome := s.service.SubmitTaxID(s.ctx, s.seller, "123-45-6789")
		s.True(outcome.Success)

		current, err := s.snapshots.Current(s.ctx, s.seller.SellerID)
		s.Require().NoError(err)
		s.Equal("123-45-6789", current.IndividualTaxID)

		has, err := s.tracker.HasOutstanding(s.ctx, s.seller.SellerID, models.FieldIndividualTaxID)
		s.Require().NoError(err)
		s.False(has)
	})

	s.Run("malformed individual tax id is rejected before any state change", func() {
		other := s.seller
		other.SellerID = id.SellerID(uuid.New())

		outcome := s.service.SubmitTaxID(s.ctx, other, "12-345")
		s.False(outcome.Success)
		s.Equal("Please enter a valid tax ID.", outcome.Error)

		_, err := s.snapshots.Current(s.ctx, other.SellerID)
		s.Error(err)
	})

	s.Run("business vat id updates the processor first", func() {
		biz := s.seller
		biz.SellerID = id.SellerID(uuid.New())
		biz.EntityType = models.EntityTypeBusiness

		s.gateway.EXPECT().UpdateBusinessTaxID(gomock.Any(), "acct_1", "DE811907980").Return(nil)

		outcome := s.service.SubmitTaxID(s.ctx, biz, "DE811907980")
		s.True(outcome.Success)

		current, err := s.snapshots.Current(s.ctx, biz.SellerID)
		s.Require().NoError(err)
		s.Equal("DE811907980", current.BusinessVatID)
	})

	s.Run("failed vat update leaves no local state", func() {
		biz := s.seller
		biz.SellerID = id.SellerID(uuid.New())
		biz.EntityType = models.EntityTypeBusiness

		s.gateway.EXPECT().UpdateBusinessTaxID(gomock.Any(), "acct_1", "DE811907980").
			Return(errors.New("processor unavailable"))

		outcome := s.service.SubmitTaxID(s.ctx, biz, "DE811907980")
		s.False(outcome.Success)

		_, err := s.snapshots.Current(s.ctx, biz.SellerID)
		s.Error(err)
	})
}

func (s *OrchestratorSuite) TestEnhancedVerificationFlow() {
	s.Require().NoError(s.tracker.Request(s.ctx, s.seller.SellerID, models.FieldEnhancedIdentityVerification))

	s.Run("mints a session link without mutating the tracker", func() {
		s.gateway.EXPECT().
			CreateVerificationSession(gomock.Any(), "acct_1", "https://app.example.com/verify/return").
			Return("https://verify.example.com/session/abc", nil)

		url, outcome := s.service.RequestVerificationLink(s.ctx, s.seller)
		s.True(outcome.Success)
		s.Equal("https://verify.example.com/session/abc", url)

		has, err := s.tracker.HasOutstanding(s.ctx, s.seller.SellerID, models.FieldEnhancedIdentityVerification)
		s.Require().NoError(err)
		s.True(has)
	})

	s.Run("reconcile reports retry while the requirement is still due", func() {
		s.gateway.EXPECT().
			FetchOutstandingRequirements(gomock.Any(), "acct_1").
			Return([]string{gateway.RequirementProofOfLiveness}, nil)

		msg, outcome := s.service.ReconcileEnhancedVerification(s.ctx, s.seller)
		s.False(outcome.Success)
		s.Equal("We weren't able to complete your identity verification. Please try again.", msg)
	})

	s.Run("reconcile resolves the request once the requirement clears", func() {
		s.gateway.EXPECT().
			FetchOutstandingRequirements(gomock.Any(), "acct_1").
			Return(nil, nil)

		msg, outcome := s.service.ReconcileEnhancedVerification(s.ctx, s.seller)
		s.True(outcome.Success)
		s.Equal("Thanks! You're all set.", msg)

		has, err := s.tracker.HasOutstanding(s.ctx, s.seller.SellerID, models.FieldEnhancedIdentityVerification)
		s.Require().NoError(err)
		s.False(has)
	})

	s.Run("reconcile is idempotent", func() {
		s.gateway.EXPECT().
			FetchOutstandingRequirements(gomock.Any(), "acct_1").
			Return(nil, nil)

		_, outcome := s.service.ReconcileEnhancedVerification(s.ctx, s.seller)
		s.True(outcome.Success)
	})

	s.Run("link request fails once nothing is outstanding", func() {
		url, outcome := s.service.RequestVerificationLink(s.ctx, s.seller)
		s.False(outcome.Success)
		s.Empty(url)
	})

	s.Run("reconcile reopens the request when upstream still wants liveness", func() {
		s.gateway.EXPECT().
			FetchOutstandingRequirements(gomock.Any(), "acct_1").
			Return([]string{gateway.RequirementProofOfLiveness}, nil)

		_, outcome := s.service.ReconcileEnhancedVerification(s.ctx, s.seller)
		s.False(outcome.Success)

		has, err := s.tracker.HasOutstanding(s.ctx, s.seller.SellerID, models.FieldEnhancedIdentityVerification)
		s.Require().NoError(err)
		s.True(has)
	})
}
