package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"veripay/internal/compliance/models"
	"veripay/pkg/testutil"
)

func TestRequirementsFor(t *testing.T) {
	testutil.Given(t, "a known jurisdiction", func(t *testing.T) {
		testutil.Then(t, "its field set is returned", func(t *testing.T) {
			fields := RequirementsFor("US", models.EntityTypeIndividual)
			assert.Equal(t, []models.ComplianceField{
				models.FieldIndividualTaxID,
				models.FieldStripeIdentityDocumentID,
			}, fields)
		})

		testutil.Then(t, "a UAE business requires formation and banking documents", func(t *testing.T) {
			fields := RequirementsFor(models.CountryARE, models.EntityTypeBusiness)
			assert.Contains(t, fields, models.FieldMemorandumOfAssociation)
			assert.Contains(t, fields, models.FieldBankAccountStatement)
		})
	})

	testutil.Given(t, "an unknown jurisdiction", func(t *testing.T) {
		testutil.Then(t, "individuals fall back to the individual default", func(t *testing.T) {
			fields := RequirementsFor("ZZ", models.EntityTypeIndividual)
			assert.Equal(t, []models.ComplianceField{models.FieldStripeIdentityDocumentID}, fields)
		})

		testutil.Then(t, "businesses fall back to the business default", func(t *testing.T) {
			fields := RequirementsFor("ZZ", models.EntityTypeBusiness)
			assert.Equal(t, []models.ComplianceField{
				models.FieldStripeCompanyDocumentID,
				models.FieldProofOfRegistration,
			}, fields)
		})
	})

	testutil.When(t, "the same lookup repeats", func(t *testing.T) {
		testutil.Then(t, "results are deterministic", func(t *testing.T) {
			first := RequirementsFor("SG", models.EntityTypeIndividual)
			second := RequirementsFor("SG", models.EntityTypeIndividual)
			assert.Equal(t, first, second)
		})

		testutil.Then(t, "the returned slice is a copy", func(t *testing.T) {
			fields := RequirementsFor("SG", models.EntityTypeIndividual)
			fields[0] = models.FieldVisa

			again := RequirementsFor("SG", models.EntityTypeIndividual)
			assert.Equal(t, models.FieldStripeIdentityDocumentID, again[0])
		})
	})
}
