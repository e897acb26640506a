// Package registry maps a seller's jurisdiction and entity type to the
// ordered set of compliance fields the platform requires before payouts.
// This is pure domain data - no I/O, no side effects.
package registry

import "veripay/internal/compliance/models"

// requirementKey identifies one jurisdiction-specific rule set.
type requirementKey struct {
	country    string
	entityType models.EntityType
}

// defaultIndividual is the fallback field set. Unknown jurisdictions resolve
// here rather than erroring: a seller in an unlisted country still owes a
// government-issued photo ID.
var defaultIndividual = []models.ComplianceField{
	models.FieldStripeIdentityDocumentID,
}

// defaultBusiness applies to business sellers in jurisdictions without a
// dedicated entry.
var defaultBusiness = []models.ComplianceField{
	models.FieldStripeCompanyDocumentID,
	models.FieldProofOfRegistration,
}

// requirements is the per-jurisdiction table. Adding a jurisdiction or
// document type is a single entry here.
var requirements = map[requirementKey][]models.ComplianceField{
	{"US", models.EntityTypeIndividual}: {
		models.FieldIndividualTaxID,
		models.FieldStripeIdentityDocumentID,
	},
	{"US", models.EntityTypeBusiness}: {
		models.FieldBusinessVatIDNumber,
		models.FieldStripeCompanyDocumentID,
		models.FieldCompanyRegistrationVerification,
	},
	{"GB", models.EntityTypeBusiness}: {
		models.FieldBusinessVatIDNumber,
		models.FieldStripeCompanyDocumentID,
		models.FieldProofOfRegistration,
	},
	{"DE", models.EntityTypeBusiness}: {
		models.FieldBusinessVatIDNumber,
		models.FieldStripeCompanyDocumentID,
		models.FieldProofOfRegistration,
	},
	{"FR", models.EntityTypeBusiness}: {
		models.FieldBusinessVatIDNumber,
		models.FieldStripeCompanyDocumentID,
		models.FieldProofOfRegistration,
	},
	// UAE company identity routes to the license bucket upstream; the full
	// requirement set also covers formation and banking documents.
	{models.CountryARE, models.EntityTypeBusiness}: {
		models.FieldStripeCompanyDocumentID,
		models.FieldMemorandumOfAssociation,
		models.FieldBankAccountStatement,
	},
	{models.CountryARE, models.EntityTypeIndividual}: {
		models.FieldStripeIdentityDocumentID,
		models.FieldVisa,
	},
	// Singapore sellers go through hosted enhanced identity verification in
	// addition to the document check.
	{"SG", models.EntityTypeIndividual}: {
		models.FieldStripeIdentityDocumentID,
		models.FieldEnhancedIdentityVerification,
	},
}

// RequirementsFor returns the ordered required fields for a jurisdiction and
// entity type. Never errors: unknown jurisdictions fall back to the entity
// type's default set. The returned slice is a copy.
func RequirementsFor(countryCode string, entityType models.EntityType) []models.ComplianceField {
	fields, ok := requirements[requirementKey{countryCode, entityType}]
	if !ok {
		switch entityType {
		case models.EntityTypeBusiness:
			fields = defaultBusiness
		default:
			fields = defaultIndividual
		}
	}
	out := make([]models.ComplianceField, len(fields))
	copy(out, fields)
	return out
}
