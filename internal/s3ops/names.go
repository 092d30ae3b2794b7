// Package s3ops is the operation manifest: one record per S3 operation
// naming its HTTP method, addressing level, subresource key (if any),
// and signing requirements, consulted by both the router and the
// server pipeline (component C7, spec section 4.5 and 9).
package s3ops

// Name identifies one of the ~90 S3 operations the router can resolve
// a request to.
type Name string

const (
	ListBuckets    Name = "ListBuckets"
	CreateBucket   Name = "CreateBucket"
	DeleteBucket   Name = "DeleteBucket"
	HeadBucket     Name = "HeadBucket"
	ListObjects    Name = "ListObjects"
	ListObjectsV2  Name = "ListObjectsV2"
	ListObjectVersions Name = "ListObjectVersions"
	GetBucketLocation  Name = "GetBucketLocation"

	PutObject          Name = "PutObject"
	GetObject          Name = "GetObject"
	HeadObject         Name = "HeadObject"
	DeleteObject       Name = "DeleteObject"
	DeleteObjects      Name = "DeleteObjects"
	CopyObject         Name = "CopyObject"
	GetObjectAttributes Name = "GetObjectAttributes"
	RestoreObject      Name = "RestoreObject"
	GetObjectTorrent   Name = "GetObjectTorrent"
	SelectObjectContent Name = "SelectObjectContent"

	CreateMultipartUpload  Name = "CreateMultipartUpload"
	UploadPart             Name = "UploadPart"
	UploadPartCopy         Name = "UploadPartCopy"
	CompleteMultipartUpload Name = "CompleteMultipartUpload"
	AbortMultipartUpload   Name = "AbortMultipartUpload"
	ListMultipartUploads   Name = "ListMultipartUploads"
	ListParts              Name = "ListParts"
	WriteGetObjectResponse Name = "WriteGetObjectResponse"

	GetBucketACL    Name = "GetBucketACL"
	PutBucketACL    Name = "PutBucketACL"
	GetBucketCORS   Name = "GetBucketCORS"
	PutBucketCORS   Name = "PutBucketCORS"
	DeleteBucketCORS Name = "DeleteBucketCORS"
	GetBucketTagging Name = "GetBucketTagging"
	PutBucketTagging Name = "PutBucketTagging"
	DeleteBucketTagging Name = "DeleteBucketTagging"
	GetObjectTagging Name = "GetObjectTagging"
	PutObjectTagging Name = "PutObjectTagging"
	DeleteObjectTagging Name = "DeleteObjectTagging"
	GetBucketVersioning Name = "GetBucketVersioning"
	PutBucketVersioning Name = "PutBucketVersioning"
	GetBucketEncryption Name = "GetBucketEncryption"
	PutBucketEncryption Name = "PutBucketEncryption"
	DeleteBucketEncryption Name = "DeleteBucketEncryption"
	GetBucketLifecycle Name = "GetBucketLifecycle"
	PutBucketLifecycle Name = "PutBucketLifecycle"
	DeleteBucketLifecycle Name = "DeleteBucketLifecycle"

	// Raw-passthrough bucket subresource operations (SPEC_FULL section 4.3):
	// routed and round-tripped, not semantically interpreted.
	GetBucketPolicy    Name = "GetBucketPolicy"
	PutBucketPolicy    Name = "PutBucketPolicy"
	DeleteBucketPolicy Name = "DeleteBucketPolicy"
	GetBucketPolicyStatus Name = "GetBucketPolicyStatus"
	GetBucketWebsite    Name = "GetBucketWebsite"
	PutBucketWebsite    Name = "PutBucketWebsite"
	DeleteBucketWebsite Name = "DeleteBucketWebsite"
	GetBucketReplication    Name = "GetBucketReplication"
	PutBucketReplication    Name = "PutBucketReplication"
	DeleteBucketReplication Name = "DeleteBucketReplication"
	GetBucketNotification    Name = "GetBucketNotification"
	PutBucketNotification    Name = "PutBucketNotification"
	GetBucketAccelerateConfiguration Name = "GetBucketAccelerateConfiguration"
	PutBucketAccelerateConfiguration Name = "PutBucketAccelerateConfiguration"
	GetBucketRequestPayment Name = "GetBucketRequestPayment"
	PutBucketRequestPayment Name = "PutBucketRequestPayment"
	GetBucketLogging Name = "GetBucketLogging"
	PutBucketLogging Name = "PutBucketLogging"
	GetBucketOwnershipControls Name = "GetBucketOwnershipControls"
	PutBucketOwnershipControls Name = "PutBucketOwnershipControls"
	DeleteBucketOwnershipControls Name = "DeleteBucketOwnershipControls"
	GetBucketAnalyticsConfiguration Name = "GetBucketAnalyticsConfiguration"
	PutBucketAnalyticsConfiguration Name = "PutBucketAnalyticsConfiguration"
	DeleteBucketAnalyticsConfiguration Name = "DeleteBucketAnalyticsConfiguration"
	GetBucketInventoryConfiguration Name = "GetBucketInventoryConfiguration"
	PutBucketInventoryConfiguration Name = "PutBucketInventoryConfiguration"
	DeleteBucketInventoryConfiguration Name = "DeleteBucketInventoryConfiguration"
	GetBucketMetricsConfiguration Name = "GetBucketMetricsConfiguration"
	PutBucketMetricsConfiguration Name = "PutBucketMetricsConfiguration"
	DeleteBucketMetricsConfiguration Name = "DeleteBucketMetricsConfiguration"
	GetBucketIntelligentTieringConfiguration Name = "GetBucketIntelligentTieringConfiguration"
	PutBucketIntelligentTieringConfiguration Name = "PutBucketIntelligentTieringConfiguration"
	DeleteBucketIntelligentTieringConfiguration Name = "DeleteBucketIntelligentTieringConfiguration"
	GetObjectLockConfiguration Name = "GetObjectLockConfiguration"
	PutObjectLockConfiguration Name = "PutObjectLockConfiguration"
	GetObjectLegalHold Name = "GetObjectLegalHold"
	PutObjectLegalHold Name = "PutObjectLegalHold"
	GetObjectRetention Name = "GetObjectRetention"
	PutObjectRetention Name = "PutObjectRetention"
	GetPublicAccessBlock Name = "GetPublicAccessBlock"
	PutPublicAccessBlock Name = "PutPublicAccessBlock"
	DeletePublicAccessBlock Name = "DeletePublicAccessBlock"
)
