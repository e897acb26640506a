package models

// TargetKind identifies where upstream a document attaches.
type TargetKind string

const (
	// TargetAccountDocument attaches under the account-level documents object.
	TargetAccountDocument TargetKind = "account_document"
	// TargetAccountPerson attaches to a person record on the account.
	TargetAccountPerson TargetKind = "account_person"
	// TargetCompanyEntity attaches to the business entity verification record.
	TargetCompanyEntity TargetKind = "company_entity"
)

// WireShape is how the upstream update call references the uploaded file.
type WireShape string

const (
	// ShapeFront sends a single front-of-document reference.
	ShapeFront WireShape = "front"
	// ShapeFiles sends a files array.
	ShapeFiles WireShape = "files"
)

// UploadPurpose is the purpose flag on the raw file upload call.
type UploadPurpose string

const (
	PurposeIdentityDocument   UploadPurpose = "identity_document"
	PurposeAccountRequirement UploadPurpose = "account_requirement"
)

// Document buckets the processor exposes for account and person level
// attachments. Names are the processor's, not ours.
const (
	BucketCompanyLicense          = "company_license"
	BucketMemorandumOfAssociation = "company_memorandum_of_association"
	BucketBankAccountOwnership    = "bank_account_ownership_verification"
	BucketProofOfRegistration     = "proof_of_registration"
	BucketCompanyRegistration     = "company_registration_verification"
	BucketAdditionalDocument      = "additional_document"
	BucketPassport                = "passport"
	BucketVisa                    = "visa"
	BucketCompanyAuthorization    = "company_authorization"
	BucketVerificationDocument    = "verification.document"
)

// VerificationTarget is the derived routing decision for one submission:
// where the document goes, in what wire shape, and under which bucket.
// Computed by the router, never persisted.
type VerificationTarget struct {
	Kind   TargetKind
	Shape  WireShape
	Bucket string
}
