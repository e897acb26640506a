package models

import dErrors "veripay/pkg/domain-errors"

// ComplianceField names a category of verification data or document a seller
// can be asked for. Invariant: exactly one canonical field per real-world
// document concept; routing is a total function from submission intent to field.
type ComplianceField string

const (
	FieldIndividualTaxID                 ComplianceField = "individual_tax_id"
	FieldBusinessVatIDNumber             ComplianceField = "business_vat_id_number"
	FieldStripeIdentityDocumentID        ComplianceField = "stripe_identity_document_id"
	FieldStripeAdditionalDocumentID      ComplianceField = "stripe_additional_document_id"
	FieldStripeCompanyDocumentID         ComplianceField = "stripe_company_document_id"
	FieldPassport                        ComplianceField = "passport"
	FieldVisa                            ComplianceField = "visa"
	FieldPowerOfAttorney                 ComplianceField = "power_of_attorney"
	FieldMemorandumOfAssociation         ComplianceField = "memorandum_of_association"
	FieldProofOfRegistration             ComplianceField = "proof_of_registration"
	FieldCompanyRegistrationVerification ComplianceField = "company_registration_verification"
	FieldBankAccountStatement            ComplianceField = "bank_account_statement"
	FieldEnhancedIdentityVerification    ComplianceField = "stripe_enhanced_identity_verification"
)

// validFields is the single source of truth for the closed field set.
var validFields = map[ComplianceField]bool{
	FieldIndividualTaxID:                 true,
	FieldBusinessVatIDNumber:             true,
	FieldStripeIdentityDocumentID:        true,
	FieldStripeAdditionalDocumentID:      true,
	FieldStripeCompanyDocumentID:         true,
	FieldPassport:                        true,
	FieldVisa:                            true,
	FieldPowerOfAttorney:                 true,
	FieldMemorandumOfAssociation:         true,
	FieldProofOfRegistration:             true,
	FieldCompanyRegistrationVerification: true,
	FieldBankAccountStatement:            true,
	FieldEnhancedIdentityVerification:    true,
}

// IsValid checks the field against the closed set.
func (f ComplianceField) IsValid() bool {
	return validFields[f]
}

// ParseComplianceField constructs a ComplianceField from external input.
// Errors: CodeInvalidInput when the value is empty or outside the closed set.
func ParseComplianceField(s string) (ComplianceField, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "field cannot be empty")
	}
	f := ComplianceField(s)
	if !f.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown compliance field: "+s)
	}
	return f, nil
}

// snapshotFields are the document fields whose upstream references are also
// persisted onto the seller's compliance info snapshot after a successful
// update.
var snapshotFields = map[ComplianceField]bool{
	FieldStripeIdentityDocumentID:   true,
	FieldStripeAdditionalDocumentID: true,
	FieldStripeCompanyDocumentID:    true,
}

// PersistsToSnapshot reports whether a successful upload of this field is
// recorded on the compliance info snapshot.
func (f ComplianceField) PersistsToSnapshot() bool {
	return snapshotFields[f]
}
