package snapshot

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"veripay/internal/compliance/models"
	id "veripay/pkg/domain"
	"veripay/pkg/platform/sentinel"
)

type SnapshotServiceSuite struct {
	suite.Suite
	store   *InMemoryStore
	service *Service
	ctx     context.Context
	sctx    models.SellerContext
}

func TestSnapshotServiceSuite(t *testing.T) {
	suite.Run(t, new(SnapshotServiceSuite))
}

func (s *SnapshotServiceSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
	s.sctx = models.SellerContext{
		SellerID:    id.SellerID(uuid.New()),
		AccountID:   "acct_123",
		CountryCode: "US",
		EntityType:  models.EntityTypeIndividual,
	}

	var err error
	s.service, err = NewService(s.store)
	s.Require().NoError(err)
}

func (s *SnapshotServiceSuite) TestUpdate() {
	s.Run("first update seeds version 1 from the seller context", func() {
		info, err := s.service.Update(s.ctx, s.sctx, func(c *models.ComplianceInfo) {
			c.IndividualTaxID = "123-45-6789"
		})
		s.Require().NoError(err)
		s.Equal(1, info.Version)
		s.Nil(info.PreviousID)
		s.Equal("US", info.CountryCode)
		s.Equal("123-45-6789", info.IndividualTaxID)
	})

	s.Run("subsequent updates append linked versions without mutating history", func() {
		info, err := s.service.Update(s.ctx, s.sctx, func(c *models.ComplianceInfo) {
			c.SetDocumentRef(models.FieldStripeIdentityDocumentID, "file_abc")
		})
		s.Require().NoError(err)
		s.Equal(2, info.Version)
		s.Require().NotNil(info.PreviousID)
		s.Equal("123-45-6789", info.IndividualTaxID, "carried forward from previous version")

		history, err := s.service.History(s.ctx, s.sctx.SellerID)
		s.Require().NoError(err)
		s.Require().Len(history, 2)
		s.Empty(history[0].IdentityDocumentID, "old version untouched")
		s.Equal("file_abc", history[1].IdentityDocumentID)
	})

	s.Run("current is the latest version", func() {
		current, err := s.service.Current(s.ctx, s.sctx.SellerID)
		s.Require().NoError(err)
		s.Equal(2, current.Version)
	})
}

func (s *SnapshotServiceSuite) TestCurrentUnknownSeller() {
	_, err := s.service.Current(s.ctx, id.SellerID(uuid.New()))
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

// TestConcurrentUpdates verifies concurrent updates settle as separate
// versions rather than a corrupted merge.
func (s *SnapshotServiceSuite) TestConcurrentUpdates() {
	const writers = 8
	done := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			_, err := s.service.Update(s.ctx, s.sctx, func(c *models.ComplianceInfo) {
				c.BusinessVatID = "VAT-" + string(rune('A'+i))
			})
			done <- err
		}(i)
	}

	succeeded := 0
	for j := 0; j < writers; j++ {
		if err := <-done; err == nil {
			succeeded++
		}
	}
	s.Positive(succeeded)

	history, err := s.service.History(s.ctx, s.sctx.SellerID)
	s.Require().NoError(err)
	s.Len(history, succeeded, "one snapshot per successful writer")

	seen := map[int]bool{}
	for _, info := range history {
		s.False(seen[info.Version], "versions are unique")
		seen[info.Version] = true
	}
}
