package models

import dErrors "veripay/pkg/domain-errors"

// SubmissionIntent is the declared purpose of an uploaded document. The
// original submission shape carried one boolean flag per intent; the closed
// enum removes flag-combination ambiguity.
type SubmissionIntent string

const (
	// IntentIdentityDocument is the default when no intent flag is declared.
	IntentIdentityDocument                SubmissionIntent = "identity_document"
	IntentCompanyID                       SubmissionIntent = "company_id"
	IntentAdditionalID                    SubmissionIntent = "additional_id"
	IntentPassport                        SubmissionIntent = "passport"
	IntentVisa                            SubmissionIntent = "visa"
	IntentPowerOfAttorney                 SubmissionIntent = "power_of_attorney"
	IntentMemorandumOfAssociation         SubmissionIntent = "memorandum_of_association"
	IntentBankStatement                   SubmissionIntent = "bank_statement"
	IntentProofOfRegistration             SubmissionIntent = "proof_of_registration"
	IntentCompanyRegistrationVerification SubmissionIntent = "company_registration_verification"
)

var validIntents = map[SubmissionIntent]bool{
	IntentIdentityDocument:                true,
	IntentCompanyID:                       true,
	IntentAdditionalID:                    true,
	IntentPassport:                        true,
	IntentVisa:                            true,
	IntentPowerOfAttorney:                 true,
	IntentMemorandumOfAssociation:         true,
	IntentBankStatement:                   true,
	IntentProofOfRegistration:             true,
	IntentCompanyRegistrationVerification: true,
}

// IsValid checks the intent against the closed set.
func (i SubmissionIntent) IsValid() bool {
	return validIntents[i]
}

// IntentFlags mirrors the inbound wire shape: one boolean per declared intent.
// At most one flag may be set; none means a plain identity document.
type IntentFlags struct {
	CompanyID                       bool `json:"is_company_id"`
	AdditionalID                    bool `json:"is_additional_id"`
	Passport                        bool `json:"is_passport"`
	Visa                            bool `json:"is_visa"`
	PowerOfAttorney                 bool `json:"is_power_of_attorney"`
	MemorandumOfAssociation         bool `json:"is_memorandum_of_association"`
	BankStatement                   bool `json:"is_bank_statement"`
	ProofOfRegistration             bool `json:"is_proof_of_registration"`
	CompanyRegistrationVerification bool `json:"is_company_registration_verification"`
}

// IntentFromFlags collapses the flag set into the intent enum.
// Errors: CodeInvalidInput when more than one flag is set.
func IntentFromFlags(flags IntentFlags) (SubmissionIntent, error) {
	intent := IntentIdentityDocument
	set := 0
	if flags.CompanyID {
		intent = IntentCompanyID
		set++
	}
	if flags.AdditionalID {
		intent = IntentAdditionalID
		set++
	}
	if flags.Passport {
		intent = IntentPassport
		set++
	}
	if flags.Visa {
		intent = IntentVisa
		set++
	}
	if flags.PowerOfAttorney {
		intent = IntentPowerOfAttorney
		set++
	}
	if flags.MemorandumOfAssociation {
		intent = IntentMemorandumOfAssociation
		set++
	}
	if flags.BankStatement {
		intent = IntentBankStatement
		set++
	}
	if flags.ProofOfRegistration {
		intent = IntentProofOfRegistration
		set++
	}
	if flags.CompanyRegistrationVerification {
		intent = IntentCompanyRegistrationVerification
		set++
	}
	if set > 1 {
		return "", dErrors.New(dErrors.CodeInvalidInput, "at most one document intent may be declared")
	}
	return intent, nil
}
