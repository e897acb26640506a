// Package router classifies a compliance submission into its upstream
// verification target and the pending-request field it resolves. The mapping
// is a dispatch table keyed by the closed intent enum, so adding a document
// type is one table entry. Pure domain logic - no I/O, no side effects.
package router

import "veripay/internal/compliance/models"

// Route is the full classification result for one submission.
type Route struct {
	Target  models.VerificationTarget
	Field   models.ComplianceField
	Purpose models.UploadPurpose
}

// MissingDocumentError reports a submission with no file payload. Prompt is
// the intent-specific user-facing message.
type MissingDocumentError struct {
	Prompt string
}

func (e *MissingDocumentError) Error() string {
	return e.Prompt
}

// routeEntry is one row of the dispatch table. personLevel entries attach to
// the most recently added person on the connected account.
type routeEntry struct {
	target             models.VerificationTarget
	field              models.ComplianceField
	accountRequirement bool
	prompt             string
}

// routes maps every intent except company identity, which depends on the
// seller's jurisdiction and is handled in Classify.
var routes = map[models.SubmissionIntent]routeEntry{
	models.IntentIdentityDocument: {
		target: models.VerificationTarget{
			Kind:   models.TargetAccountPerson,
			Shape:  models.ShapeFront,
			Bucket: models.BucketVerificationDocument,
		},
		field:  models.FieldStripeIdentityDocumentID,
		prompt: "Please select a government-issued photo ID, then submit.",
	},
	models.IntentAdditionalID: {
		target: models.VerificationTarget{
			Kind:   models.TargetAccountPerson,
			Shape:  models.ShapeFront,
			Bucket: models.BucketAdditionalDocument,
		},
		field:  models.FieldStripeAdditionalDocumentID,
		prompt: "Please select a valid document for address verification, then submit.",
	},
	models.IntentPassport: {
		target: models.VerificationTarget{
			Kind:   models.TargetAccountPerson,
			Shape:  models.ShapeFiles,
			Bucket: models.BucketPassport,
		},
		field:              models.FieldPassport,
		accountRequirement: true,
		prompt:             "Please select a passport document, then submit.",
	},
	models.IntentVisa: {
		target: models.VerificationTarget{
			Kind:   models.TargetAccountPerson,
			Shape:  models.ShapeFiles,
			Bucket: models.BucketVisa,
		},
		field:              models.FieldVisa,
		accountRequirement: true,
		prompt:             "Please select a visa document, then submit.",
	},
	models.IntentPowerOfAttorney: {
		target: models.VerificationTarget{
			Kind:   models.TargetAccountPerson,
			Shape:  models.ShapeFiles,
			Bucket: models.BucketCompanyAuthorization,
		},
		field:              models.FieldPowerOfAttorney,
		accountRequirement: true,
		prompt:             "Please select a power of attorney document, then submit.",
	},
	models.IntentMemorandumOfAssociation: {
		target: models.VerificationTarget{
			Kind:   models.TargetAccountDocument,
			Shape:  models.ShapeFiles,
			Bucket: models.BucketMemorandumOfAssociation,
		},
		field:              models.FieldMemorandumOfAssociation,
		accountRequirement: true,
		prompt:             "Please select a memorandum of association document, then submit.",
	},
	models.IntentBankStatement: {
		target: models.VerificationTarget{
			Kind:   models.TargetAccountDocument,
			Shape:  models.ShapeFiles,
			Bucket: models.BucketBankAccountOwnership,
		},
		field:              models.FieldBankAccountStatement,
		accountRequirement: true,
		prompt:             "Please select a bank statement document, then submit.",
	},
	models.IntentProofOfRegistration: {
		target: models.VerificationTarget{
			Kind:   models.TargetAccountDocument,
			Shape:  models.ShapeFiles,
			Bucket: models.BucketProofOfRegistration,
		},
		field:              models.FieldProofOfRegistration,
		accountRequirement: true,
		prompt:             "Please select a proof of registration document, then submit.",
	},
	models.IntentCompanyRegistrationVerification: {
		target: models.VerificationTarget{
			Kind:   models.TargetAccountDocument,
			Shape:  models.ShapeFiles,
			Bucket: models.BucketCompanyRegistration,
		},
		field:              models.FieldCompanyRegistrationVerification,
		accountRequirement: true,
		prompt:             "Please select a company registration verification document, then submit.",
	},
}

const companyPrompt = "Please select a company registration document, then submit."

// Classify resolves a submission to its route. Total and deterministic over
// (intent, jurisdiction): the same inputs always yield the same route.
// Errors: *MissingDocumentError when no file payload is present; the prompt
// matches the declared intent.
func Classify(sub models.Submission, sctx models.SellerContext) (Route, error) {
	if !sub.HasDocument() {
		return Route{}, &MissingDocumentError{Prompt: Prompt(sub.Intent)}
	}

	if sub.Intent == models.IntentCompanyID {
		return classifyCompany(sctx), nil
	}

	entry, ok := routes[sub.Intent]
	if !ok {
		// Unrecognized intents behave as the default identity document.
		entry = routes[models.IntentIdentityDocument]
	}
	return Route{
		Target:  entry.target,
		Field:   entry.field,
		Purpose: purposeFor(entry.accountRequirement),
	}, nil
}

// classifyCompany resolves the jurisdiction-dependent company identity route.
// UAE company licenses go to the account documents bucket as a files array;
// everywhere else updates the business entity record front-only.
func classifyCompany(sctx models.SellerContext) Route {
	if sctx.CountryCode == models.CountryARE {
		return Route{
			Target: models.VerificationTarget{
				Kind:   models.TargetAccountDocument,
				Shape:  models.ShapeFiles,
				Bucket: models.BucketCompanyLicense,
			},
			Field:   models.FieldStripeCompanyDocumentID,
			Purpose: models.PurposeAccountRequirement,
		}
	}
	return Route{
		Target: models.VerificationTarget{
			Kind:  models.TargetCompanyEntity,
			Shape: models.ShapeFront,
		},
		Field:   models.FieldStripeCompanyDocumentID,
		Purpose: models.PurposeIdentityDocument,
	}
}

// Prompt returns the missing-document message for an intent.
func Prompt(intent models.SubmissionIntent) string {
	if intent == models.IntentCompanyID {
		return companyPrompt
	}
	if entry, ok := routes[intent]; ok {
		return entry.prompt
	}
	return routes[models.IntentIdentityDocument].prompt
}

func purposeFor(accountRequirement bool) models.UploadPurpose {
	if accountRequirement {
		return models.PurposeAccountRequirement
	}
	return models.PurposeIdentityDocument
}
