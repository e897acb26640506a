package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Orchestrator

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"veripay/internal/auth"
	"veripay/internal/compliance/handler/mocks"
	"veripay/internal/compliance/models"
	"veripay/internal/platform/middleware"
	id "veripay/pkg/domain"
)

type HandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	orchestrator *mocks.MockOrchestrator
	tokens       *auth.TokenService
	router       chi.Router
	sellerID     uuid.UUID
	token        string
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orchestrator = mocks.NewMockOrchestrator(s.ctrl)
	s.tokens = auth.NewTokenService("test-signing-key", "veripay", "veripay-api")
	s.sellerID = uuid.New()

	var err error
	s.token, err = s.tokens.GenerateSellerToken(s.sellerID, "acct_1", "US", "individual", time.Hour)
	s.Require().NoError(err)

	logger := testLogger()
	h := New(s.orchestrator, s.tokens, logger)
	s.router = chi.NewRouter()
	s.router.Use(middleware.RequestID)
	h.Register(s.router)
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) do(req *http.Request, authorize bool) *httptest.ResponseRecorder {
	if authorize {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) expectedSeller() models.SellerContext {
	parsed, err := id.ParseSellerID(s.sellerID.String())
	s.Require().NoError(err)
	return models.SellerContext{
		SellerID:    parsed,
		AccountID:   "acct_1",
		CountryCode: "US",
		EntityType:  models.EntityTypeIndividual,
	}
}

func multipartBody(s *HandlerSuite, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		s.Require().NoError(writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		s.Require().NoError(err)
		_, err = part.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())
	return &body, writer.FormDataContentType()
}

func (s *HandlerSuite) TestSubmitDocument() {
	s.Run("rejects missing token", func() {
		req := httptest.NewRequest(http.MethodPost, "/compliance/documents", nil)
		rec := s.do(req, false)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("forwards the file and declared intent", func() {
		s.orchestrator.EXPECT().
			SubmitDocument(gomock.Any(), s.expectedSeller(), models.Submission{
				Document: []byte("passport bytes"),
				Filename: "passport.png",
				Intent:   models.IntentPassport,
			}).
			Return(models.OK())

		body, contentType := multipartBody(s, map[string]string{"is_passport": "true"}, "passport.png", []byte("passport bytes"))
		req := httptest.NewRequest(http.MethodPost, "/compliance/documents", body)
		req.Header.Set("Content-Type", contentType)

		rec := s.do(req, true)
		s.Equal(http.StatusOK, rec.Code)

		var outcome models.Outcome
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &outcome))
		s.True(outcome.Success)
	})

	s.Run("passes a missing file through for the prompt", func() {
		s.orchestrator.EXPECT().
			SubmitDocument(gomock.Any(), s.expectedSeller(), models.Submission{Intent: models.IntentVisa}).
			Return(models.Failure("Please select a visa document, then submit."))

		body, contentType := multipartBody(s, map[string]string{"is_visa": "1"}, "", nil)
		req := httptest.NewRequest(http.MethodPost, "/compliance/documents", body)
		req.Header.Set("Content-Type", contentType)

		rec := s.do(req, true)
		s.Equal(http.StatusOK, rec.Code)

		var outcome models.Outcome
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &outcome))
		s.False(outcome.Success)
		s.Equal("Please select a visa document, then submit.", outcome.Error)
	})

	s.Run("rejects an oversized file instead of truncating it", func() {
		oversized := bytes.Repeat([]byte{0xAB}, 16<<20+1024)
		body, contentType := multipartBody(s, map[string]string{"is_passport": "true"}, "huge.png", oversized)
		req := httptest.NewRequest(http.MethodPost, "/compliance/documents", body)
		req.Header.Set("Content-Type", contentType)

		rec := s.do(req, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects conflicting intent flags without calling the service", func() {
		body, contentType := multipartBody(s, map[string]string{"is_passport": "true", "is_visa": "true"}, "doc.png", []byte{1})
		req := httptest.NewRequest(http.MethodPost, "/compliance/documents", body)
		req.Header.Set("Content-Type", contentType)

		rec := s.do(req, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestSubmitTaxID() {
	s.Run("forwards a valid tax id", func() {
		s.orchestrator.EXPECT().
			SubmitTaxID(gomock.Any(), s.expectedSeller(), "123-45-6789").
			Return(models.OK())

		req := httptest.NewRequest(http.MethodPost, "/compliance/tax-id", strings.NewReader(`{"tax_id":"123-45-6789"}`))
		rec := s.do(req, true)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("rejects an empty tax id before the service", func() {
		req := httptest.NewRequest(http.MethodPost, "/compliance/tax-id", strings.NewReader(`{"tax_id":""}`))
		rec := s.do(req, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects a malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/compliance/tax-id", strings.NewReader(`{`))
		rec := s.do(req, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestVerifyIdentity() {
	s.Run("mints a verification link", func() {
		s.orchestrator.EXPECT().
			RequestVerificationLink(gomock.Any(), s.expectedSeller()).
			Return("https://verify.example.com/session/abc", models.OK())

		req := httptest.NewRequest(http.MethodPost, "/compliance/verify-identity", nil)
		rec := s.do(req, true)
		s.Equal(http.StatusOK, rec.Code)

		var resp verificationLinkResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.True(resp.Success)
		s.Equal("https://verify.example.com/session/abc", resp.URL)
	})

	s.Run("reconciles on return", func() {
		s.orchestrator.EXPECT().
			ReconcileEnhancedVerification(gomock.Any(), s.expectedSeller()).
			Return("Thanks! You're all set.", models.OK())

		req := httptest.NewRequest(http.MethodGet, "/compliance/verify-identity", nil)
		rec := s.do(req, true)
		s.Equal(http.StatusOK, rec.Code)

		var resp reconcileResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.True(resp.Success)
		s.Equal("Thanks! You're all set.", resp.Message)
	})
}

func (s *HandlerSuite) TestListRequests() {
	seller := s.expectedSeller()
	pending := models.NewPendingInfoRequest(seller.SellerID, models.FieldPassport, time.Now().UTC())

	s.orchestrator.EXPECT().
		Outstanding(gomock.Any(), seller).
		Return([]*models.PendingInfoRequest{pending}, nil)
	s.orchestrator.EXPECT().
		RequiredFields(seller).
		Return([]models.ComplianceField{models.FieldIndividualTaxID, models.FieldStripeIdentityDocumentID})

	req := httptest.NewRequest(http.MethodGet, "/compliance/requests", nil)
	rec := s.do(req, true)
	s.Equal(http.StatusOK, rec.Code)

	var resp requestsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Requests, 1)
	s.Equal("passport", resp.Requests[0].Field)
	s.Equal([]string{"individual_tax_id", "stripe_identity_document_id"}, resp.RequiredFields)
}
