// Package s3model holds the request/response DTOs, enums, and sum
// types for the S3 operations this framework implements (spec section
// 3, component C6).
package s3model

import "time"

// Metadata is the case-insensitive x-amz-meta-* map from spec section 3.
type Metadata map[string]string

// StorageClass is a closed enum of S3 storage class values.
type StorageClass string

const (
	StorageClassStandard           StorageClass = "STANDARD"
	StorageClassReducedRedundancy  StorageClass = "REDUCED_REDUNDANCY"
	StorageClassStandardIA         StorageClass = "STANDARD_IA"
	StorageClassOneZoneIA          StorageClass = "ONEZONE_IA"
	StorageClassIntelligentTiering StorageClass = "INTELLIGENT_TIERING"
	StorageClassGlacier            StorageClass = "GLACIER"
	StorageClassDeepArchive        StorageClass = "DEEP_ARCHIVE"
	StorageClassGlacierIR          StorageClass = "GLACIER_IR"
)

// ChecksumAlgorithm enumerates the x-amz-checksum-* family (spec section 6).
type ChecksumAlgorithm string

const (
	ChecksumCRC32  ChecksumAlgorithm = "CRC32"
	ChecksumCRC32C ChecksumAlgorithm = "CRC32C"
	ChecksumSHA1   ChecksumAlgorithm = "SHA1"
	ChecksumSHA256 ChecksumAlgorithm = "SHA256"
)

// ObjectLockMode enumerates x-amz-object-lock-mode values.
type ObjectLockMode string

const (
	ObjectLockModeGovernance ObjectLockMode = "GOVERNANCE"
	ObjectLockModeCompliance ObjectLockMode = "COMPLIANCE"
)

// ObjectLockLegalHoldStatus enumerates legal hold states.
type ObjectLockLegalHoldStatus string

const (
	LegalHoldOn  ObjectLockLegalHoldStatus = "ON"
	LegalHoldOff ObjectLockLegalHoldStatus = "OFF"
)

// RequestPayer enumerates the x-amz-request-payer header values.
type RequestPayer string

const RequestPayerRequester RequestPayer = "requester"

// ServerSideEncryption enumerates x-amz-server-side-encryption values.
type ServerSideEncryption string

const (
	SSEAES256  ServerSideEncryption = "AES256"
	SSEKMS     ServerSideEncryption = "aws:kms"
)

// CommonObjectFields are the request headers shared by PutObject,
// CopyObject's destination metadata, and multipart initiation.
type CommonObjectFields struct {
	ContentType               string
	ContentEncoding           string
	ContentDisposition        string
	ContentLanguage           string
	CacheControl              string
	Expires                   *time.Time
	Metadata                  Metadata
	StorageClass              StorageClass
	ACL                       string
	ServerSideEncryption      ServerSideEncryption
	SSEKMSKeyID               string
	SSECustomerAlgorithm      string
	SSECustomerKey            string
	SSECustomerKeyMD5         string
	Tagging                   string
	WebsiteRedirectLocation   string
	RequestPayer              RequestPayer
	ObjectLockMode            ObjectLockMode
	ObjectLockRetainUntilDate *time.Time
	ObjectLockLegalHoldStatus ObjectLockLegalHoldStatus
	ExpectedBucketOwner       string
	ChecksumAlgorithm         ChecksumAlgorithm
	ChecksumSHA256            string
	ChecksumSHA1              string
	ChecksumCRC32             string
	ChecksumCRC32C            string
}

// CopySourceConditionals carries the x-amz-copy-source-if-* headers.
type CopySourceConditionals struct {
	IfMatch           string
	IfNoneMatch       string
	IfModifiedSince   *time.Time
	IfUnmodifiedSince *time.Time
}

// Owner is the XML <Owner> shape shared by ListBuckets and ACL responses.
type Owner struct {
	ID          string `xml:"ID"`
	DisplayName string `xml:"DisplayName,omitempty"`
}
