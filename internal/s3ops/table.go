package s3ops

import "github.com/geckos3/geckos3/internal/s3path"

// Operation is one manifest record: HTTP method, the S3Path shape it
// expects, the subresource query key that selects it (empty string for
// operations with no subresource), and whether SigV4 must hash the
// body rather than accept UNSIGNED-PAYLOAD/streaming (spec section
// 4.5, 4.6).
type Operation struct {
	Name                      Name
	Method                    string
	Addressing                s3path.Kind
	Subresource               string
	SigningRequiresBodyDigest bool
}

// Table is the full operation manifest. Entries with a non-empty
// Subresource are matched by the router's ordered subresource-key scan
// (spec section 4.2, "first matching key wins"); entries with an empty
// Subresource are matched by method+addressing alone, after the
// special-cased multi-condition operations (ListObjectsV2 vs versions
// vs uploads, UploadPart vs UploadPartCopy, etc., spec section 4.2)
// have already been ruled out.
var Table = []Operation{
	{Name: ListBuckets, Method: "GET", Addressing: s3path.KindRoot},
	{Name: CreateBucket, Method: "PUT", Addressing: s3path.KindBucket},
	{Name: DeleteBucket, Method: "DELETE", Addressing: s3path.KindBucket},
	{Name: HeadBucket, Method: "HEAD", Addressing: s3path.KindBucket},
	{Name: ListObjects, Method: "GET", Addressing: s3path.KindBucket},
	{Name: ListObjectsV2, Method: "GET", Addressing: s3path.KindBucket, Subresource: "list-type"},
	{Name: ListObjectVersions, Method: "GET", Addressing: s3path.KindBucket, Subresource: "versions"},
	{Name: GetBucketLocation, Method: "GET", Addressing: s3path.KindBucket, Subresource: "location"},

	{Name: PutObject, Method: "PUT", Addressing: s3path.KindObject, SigningRequiresBodyDigest: false},
	{Name: GetObject, Method: "GET", Addressing: s3path.KindObject},
	{Name: HeadObject, Method: "HEAD", Addressing: s3path.KindObject},
	{Name: DeleteObject, Method: "DELETE", Addressing: s3path.KindObject},
	{Name: DeleteObjects, Method: "POST", Addressing: s3path.KindBucket, Subresource: "delete", SigningRequiresBodyDigest: true},
	{Name: CopyObject, Method: "PUT", Addressing: s3path.KindObject},
	{Name: GetObjectAttributes, Method: "GET", Addressing: s3path.KindObject, Subresource: "attributes"},
	{Name: RestoreObject, Method: "POST", Addressing: s3path.KindObject, Subresource: "restore", SigningRequiresBodyDigest: true},
	{Name: GetObjectTorrent, Method: "GET", Addressing: s3path.KindObject, Subresource: "torrent"},
	{Name: SelectObjectContent, Method: "POST", Addressing: s3path.KindObject, Subresource: "select", SigningRequiresBodyDigest: true},

	{Name: CreateMultipartUpload, Method: "POST", Addressing: s3path.KindObject, Subresource: "uploads"},
	{Name: UploadPart, Method: "PUT", Addressing: s3path.KindObject, Subresource: "uploadId"},
	{Name: UploadPartCopy, Method: "PUT", Addressing: s3path.KindObject, Subresource: "uploadId"},
	{Name: CompleteMultipartUpload, Method: "POST", Addressing: s3path.KindObject, Subresource: "uploadId", SigningRequiresBodyDigest: true},
	{Name: AbortMultipartUpload, Method: "DELETE", Addressing: s3path.KindObject, Subresource: "uploadId"},
	{Name: ListMultipartUploads, Method: "GET", Addressing: s3path.KindBucket, Subresource: "uploads"},
	{Name: ListParts, Method: "GET", Addressing: s3path.KindObject, Subresource: "uploadId"},
	{Name: WriteGetObjectResponse, Method: "POST", Addressing: s3path.KindRoot},

	{Name: GetBucketACL, Method: "GET", Addressing: s3path.KindBucket, Subresource: "acl"},
	{Name: PutBucketACL, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "acl", SigningRequiresBodyDigest: true},
	{Name: GetBucketCORS, Method: "GET", Addressing: s3path.KindBucket, Subresource: "cors"},
	{Name: PutBucketCORS, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "cors", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketCORS, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "cors"},
	{Name: GetBucketTagging, Method: "GET", Addressing: s3path.KindBucket, Subresource: "tagging"},
	{Name: PutBucketTagging, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "tagging", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketTagging, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "tagging"},
	{Name: GetObjectTagging, Method: "GET", Addressing: s3path.KindObject, Subresource: "tagging"},
	{Name: PutObjectTagging, Method: "PUT", Addressing: s3path.KindObject, Subresource: "tagging", SigningRequiresBodyDigest: true},
	{Name: DeleteObjectTagging, Method: "DELETE", Addressing: s3path.KindObject, Subresource: "tagging"},
	{Name: GetBucketVersioning, Method: "GET", Addressing: s3path.KindBucket, Subresource: "versioning"},
	{Name: PutBucketVersioning, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "versioning", SigningRequiresBodyDigest: true},
	{Name: GetBucketEncryption, Method: "GET", Addressing: s3path.KindBucket, Subresource: "encryption"},
	{Name: PutBucketEncryption, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "encryption", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketEncryption, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "encryption"},
	{Name: GetBucketLifecycle, Method: "GET", Addressing: s3path.KindBucket, Subresource: "lifecycle"},
	{Name: PutBucketLifecycle, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "lifecycle", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketLifecycle, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "lifecycle"},

	{Name: GetBucketPolicy, Method: "GET", Addressing: s3path.KindBucket, Subresource: "policy"},
	{Name: PutBucketPolicy, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "policy", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketPolicy, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "policy"},
	{Name: GetBucketPolicyStatus, Method: "GET", Addressing: s3path.KindBucket, Subresource: "policyStatus"},
	{Name: GetBucketWebsite, Method: "GET", Addressing: s3path.KindBucket, Subresource: "website"},
	{Name: PutBucketWebsite, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "website", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketWebsite, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "website"},
	{Name: GetBucketReplication, Method: "GET", Addressing: s3path.KindBucket, Subresource: "replication"},
	{Name: PutBucketReplication, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "replication", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketReplication, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "replication"},
	{Name: GetBucketNotification, Method: "GET", Addressing: s3path.KindBucket, Subresource: "notification"},
	{Name: PutBucketNotification, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "notification", SigningRequiresBodyDigest: true},
	{Name: GetBucketAccelerateConfiguration, Method: "GET", Addressing: s3path.KindBucket, Subresource: "accelerate"},
	{Name: PutBucketAccelerateConfiguration, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "accelerate", SigningRequiresBodyDigest: true},
	{Name: GetBucketRequestPayment, Method: "GET", Addressing: s3path.KindBucket, Subresource: "requestPayment"},
	{Name: PutBucketRequestPayment, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "requestPayment", SigningRequiresBodyDigest: true},
	{Name: GetBucketLogging, Method: "GET", Addressing: s3path.KindBucket, Subresource: "logging"},
	{Name: PutBucketLogging, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "logging", SigningRequiresBodyDigest: true},
	{Name: GetBucketOwnershipControls, Method: "GET", Addressing: s3path.KindBucket, Subresource: "ownershipControls"},
	{Name: PutBucketOwnershipControls, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "ownershipControls", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketOwnershipControls, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "ownershipControls"},
	{Name: GetBucketAnalyticsConfiguration, Method: "GET", Addressing: s3path.KindBucket, Subresource: "analytics"},
	{Name: PutBucketAnalyticsConfiguration, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "analytics", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketAnalyticsConfiguration, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "analytics"},
	{Name: GetBucketInventoryConfiguration, Method: "GET", Addressing: s3path.KindBucket, Subresource: "inventory"},
	{Name: PutBucketInventoryConfiguration, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "inventory", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketInventoryConfiguration, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "inventory"},
	{Name: GetBucketMetricsConfiguration, Method: "GET", Addressing: s3path.KindBucket, Subresource: "metrics"},
	{Name: PutBucketMetricsConfiguration, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "metrics", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketMetricsConfiguration, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "metrics"},
	{Name: GetBucketIntelligentTieringConfiguration, Method: "GET", Addressing: s3path.KindBucket, Subresource: "intelligent-tiering"},
	{Name: PutBucketIntelligentTieringConfiguration, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "intelligent-tiering", SigningRequiresBodyDigest: true},
	{Name: DeleteBucketIntelligentTieringConfiguration, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "intelligent-tiering"},
	{Name: GetObjectLockConfiguration, Method: "GET", Addressing: s3path.KindBucket, Subresource: "object-lock"},
	{Name: PutObjectLockConfiguration, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "object-lock", SigningRequiresBodyDigest: true},
	{Name: GetObjectLegalHold, Method: "GET", Addressing: s3path.KindObject, Subresource: "legal-hold"},
	{Name: PutObjectLegalHold, Method: "PUT", Addressing: s3path.KindObject, Subresource: "legal-hold", SigningRequiresBodyDigest: true},
	{Name: GetObjectRetention, Method: "GET", Addressing: s3path.KindObject, Subresource: "retention"},
	{Name: PutObjectRetention, Method: "PUT", Addressing: s3path.KindObject, Subresource: "retention", SigningRequiresBodyDigest: true},
	{Name: GetPublicAccessBlock, Method: "GET", Addressing: s3path.KindBucket, Subresource: "publicAccessBlock"},
	{Name: PutPublicAccessBlock, Method: "PUT", Addressing: s3path.KindBucket, Subresource: "publicAccessBlock", SigningRequiresBodyDigest: true},
	{Name: DeletePublicAccessBlock, Method: "DELETE", Addressing: s3path.KindBucket, Subresource: "publicAccessBlock"},
}

// ByMethodAndSubresource searches Table for the router's ordered scan.
func ByMethodAndSubresource(method, subresource string, addressing s3path.Kind) (Operation, bool) {
	for _, op := range Table {
		if op.Method == method && op.Subresource == subresource && op.Addressing == addressing {
			return op, true
		}
	}
	return Operation{}, false
}

// ByMethodNoSubresource finds the bare method+addressing operation used
// once every subresource key and special case has been ruled out.
func ByMethodNoSubresource(method string, addressing s3path.Kind) (Operation, bool) {
	for _, op := range Table {
		if op.Method == method && op.Subresource == "" && op.Addressing == addressing {
			return op, true
		}
	}
	return Operation{}, false
}

// Get looks up an operation by name.
func Get(name Name) (Operation, bool) {
	for _, op := range Table {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// SubresourceScanOrder is the ordered list of single-value subresource
// query keys the router tests in turn; first match wins (spec section
// 4.2). ListObjectsV2's "list-type" key is intentionally checked before
// the plain-list fallback via special-cased logic in internal/router,
// not through this list, because it additionally requires value "2".
var SubresourceScanOrder = []string{
	"acl", "cors", "encryption", "lifecycle", "policy", "tagging", "versioning",
	"website", "publicAccessBlock", "analytics", "inventory", "metrics",
	"intelligent-tiering", "replication", "requestPayment", "logging",
	"ownershipControls", "policyStatus", "notification", "accelerate",
	"object-lock", "legal-hold", "retention", "attributes", "torrent",
	"uploads", "uploadId", "versions", "delete", "restore", "location", "select",
}
