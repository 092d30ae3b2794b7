// Package s3service defines the host-implementable trait: one method
// per S3 operation, each taking a typed Input and returning a typed
// Output or an *s3errors.Error (component C10, spec section 4.7).
package s3service

import (
	"context"

	"github.com/geckos3/geckos3/internal/s3errors"
	"github.com/geckos3/geckos3/internal/s3model"
)

// Service is implemented by any S3-compatible backend. The framework
// may call into it from multiple goroutines concurrently on disjoint
// requests; implementations must be safe for concurrent use.
type Service interface {
	ListBuckets(ctx context.Context, in *s3model.ListBucketsInput) (*s3model.ListBucketsOutput, error)
	CreateBucket(ctx context.Context, in *s3model.CreateBucketInput) (*s3model.CreateBucketOutput, error)
	DeleteBucket(ctx context.Context, in *s3model.DeleteBucketInput) (*s3model.DeleteBucketOutput, error)
	HeadBucket(ctx context.Context, in *s3model.HeadBucketInput) (*s3model.HeadBucketOutput, error)
	ListObjects(ctx context.Context, in *s3model.ListObjectsInput) (*s3model.ListObjectsOutput, error)
	ListObjectsV2(ctx context.Context, in *s3model.ListObjectsInput) (*s3model.ListObjectsV2Output, error)
	ListObjectVersions(ctx context.Context, in *s3model.ListObjectVersionsInput) (*s3model.ListObjectVersionsOutput, error)
	GetBucketLocation(ctx context.Context, in *s3model.GetBucketLocationInput) (*s3model.GetBucketLocationOutput, error)

	PutObject(ctx context.Context, in *s3model.PutObjectInput) (*s3model.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3model.GetObjectInput) (*s3model.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3model.HeadObjectInput) (*s3model.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3model.DeleteObjectInput) (*s3model.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3model.DeleteObjectsInput) (*s3model.DeleteObjectsOutput, error)
	CopyObject(ctx context.Context, in *s3model.CopyObjectInput) (*s3model.CopyObjectOutput, error)
	GetObjectAttributes(ctx context.Context, in *s3model.GetObjectAttributesInput) (*s3model.GetObjectAttributesOutput, error)
	RestoreObject(ctx context.Context, in *s3model.RestoreObjectInput) (*s3model.RestoreObjectOutput, error)
	GetObjectTorrent(ctx context.Context, in *s3model.GetObjectTorrentInput) (*s3model.GetObjectTorrentOutput, error)
	SelectObjectContent(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)

	CreateMultipartUpload(ctx context.Context, in *s3model.CreateMultipartUploadInput) (*s3model.CreateMultipartUploadOutput, error)
	UploadPart(ctx context.Context, in *s3model.UploadPartInput) (*s3model.UploadPartOutput, error)
	UploadPartCopy(ctx context.Context, in *s3model.UploadPartCopyInput) (*s3model.UploadPartCopyOutput, error)
	CompleteMultipartUpload(ctx context.Context, in *s3model.CompleteMultipartUploadInput) (*s3model.CompleteMultipartUploadOutput, error)
	AbortMultipartUpload(ctx context.Context, in *s3model.AbortMultipartUploadInput) (*s3model.AbortMultipartUploadOutput, error)
	ListMultipartUploads(ctx context.Context, in *s3model.ListMultipartUploadsInput) (*s3model.ListMultipartUploadsOutput, error)
	ListParts(ctx context.Context, in *s3model.ListPartsInput) (*s3model.ListPartsOutput, error)
	WriteGetObjectResponse(ctx context.Context, in *s3model.WriteGetObjectResponseInput) (*s3model.WriteGetObjectResponseOutput, error)

	GetBucketACL(ctx context.Context, in *s3model.GetBucketACLInput) (*s3model.GetBucketACLOutput, error)
	PutBucketACL(ctx context.Context, in *s3model.PutBucketACLInput) (*s3model.PutBucketACLOutput, error)
	GetBucketCORS(ctx context.Context, in *s3model.GetBucketCORSInput) (*s3model.GetBucketCORSOutput, error)
	PutBucketCORS(ctx context.Context, in *s3model.PutBucketCORSInput) (*s3model.PutBucketCORSOutput, error)
	DeleteBucketCORS(ctx context.Context, in *s3model.DeleteBucketCORSInput) (*s3model.DeleteBucketCORSOutput, error)
	GetBucketTagging(ctx context.Context, in *s3model.GetBucketTaggingInput) (*s3model.GetBucketTaggingOutput, error)
	PutBucketTagging(ctx context.Context, in *s3model.PutBucketTaggingInput) (*s3model.PutBucketTaggingOutput, error)
	DeleteBucketTagging(ctx context.Context, in *s3model.DeleteBucketTaggingInput) (*s3model.DeleteBucketTaggingOutput, error)
	GetObjectTagging(ctx context.Context, in *s3model.GetObjectTaggingInput) (*s3model.GetObjectTaggingOutput, error)
	PutObjectTagging(ctx context.Context, in *s3model.PutObjectTaggingInput) (*s3model.PutObjectTaggingOutput, error)
	DeleteObjectTagging(ctx context.Context, in *s3model.DeleteObjectTaggingInput) (*s3model.DeleteObjectTaggingOutput, error)
	GetBucketVersioning(ctx context.Context, in *s3model.GetBucketVersioningInput) (*s3model.GetBucketVersioningOutput, error)
	PutBucketVersioning(ctx context.Context, in *s3model.PutBucketVersioningInput) (*s3model.PutBucketVersioningOutput, error)
	GetBucketEncryption(ctx context.Context, in *s3model.GetBucketEncryptionInput) (*s3model.GetBucketEncryptionOutput, error)
	PutBucketEncryption(ctx context.Context, in *s3model.PutBucketEncryptionInput) (*s3model.PutBucketEncryptionOutput, error)
	DeleteBucketEncryption(ctx context.Context, in *s3model.DeleteBucketEncryptionInput) (*s3model.DeleteBucketEncryptionOutput, error)
	GetBucketLifecycle(ctx context.Context, in *s3model.GetBucketLifecycleInput) (*s3model.GetBucketLifecycleOutput, error)
	PutBucketLifecycle(ctx context.Context, in *s3model.PutBucketLifecycleInput) (*s3model.PutBucketLifecycleOutput, error)
	DeleteBucketLifecycle(ctx context.Context, in *s3model.DeleteBucketLifecycleInput) (*s3model.DeleteBucketLifecycleOutput, error)

	// Raw-passthrough bucket subresource operations (SPEC_FULL section
	// 4.3): the framework validates well-formedness and round-trips the
	// bytes without interpreting policy semantics.
	GetBucketPolicy(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketPolicy(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	DeleteBucketPolicy(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketPolicyStatus(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketWebsite(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketWebsite(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	DeleteBucketWebsite(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketReplication(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketReplication(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	DeleteBucketReplication(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketNotification(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketNotification(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketAccelerateConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketAccelerateConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketRequestPayment(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketRequestPayment(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketLogging(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketLogging(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketOwnershipControls(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketOwnershipControls(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	DeleteBucketOwnershipControls(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketAnalyticsConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketAnalyticsConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	DeleteBucketAnalyticsConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketInventoryConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketInventoryConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	DeleteBucketInventoryConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketMetricsConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketMetricsConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	DeleteBucketMetricsConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetBucketIntelligentTieringConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutBucketIntelligentTieringConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	DeleteBucketIntelligentTieringConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetObjectLockConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutObjectLockConfiguration(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetObjectLegalHold(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutObjectLegalHold(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetObjectRetention(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutObjectRetention(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	GetPublicAccessBlock(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	PutPublicAccessBlock(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
	DeletePublicAccessBlock(ctx context.Context, in *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error)
}

// UnimplementedService implements every Service method by returning
// NotImplemented. Hosts embed it and override the operations they
// actually serve — Go's analogue of a default trait method, since
// interfaces here carry no method bodies (spec section 4.7).
type UnimplementedService struct{}

func notImplemented(op string) error {
	return s3errors.New(s3errors.NotImplemented, "A header or query you provided implies functionality that is not implemented: "+op)
}

func (UnimplementedService) ListBuckets(context.Context, *s3model.ListBucketsInput) (*s3model.ListBucketsOutput, error) {
	return nil, notImplemented("ListBuckets")
}
func (UnimplementedService) CreateBucket(context.Context, *s3model.CreateBucketInput) (*s3model.CreateBucketOutput, error) {
	return nil, notImplemented("CreateBucket")
}
func (UnimplementedService) DeleteBucket(context.Context, *s3model.DeleteBucketInput) (*s3model.DeleteBucketOutput, error) {
	return nil, notImplemented("DeleteBucket")
}
func (UnimplementedService) HeadBucket(context.Context, *s3model.HeadBucketInput) (*s3model.HeadBucketOutput, error) {
	return nil, notImplemented("HeadBucket")
}
func (UnimplementedService) ListObjects(context.Context, *s3model.ListObjectsInput) (*s3model.ListObjectsOutput, error) {
	return nil, notImplemented("ListObjects")
}
func (UnimplementedService) ListObjectsV2(context.Context, *s3model.ListObjectsInput) (*s3model.ListObjectsV2Output, error) {
	return nil, notImplemented("ListObjectsV2")
}
func (UnimplementedService) ListObjectVersions(context.Context, *s3model.ListObjectVersionsInput) (*s3model.ListObjectVersionsOutput, error) {
	return nil, notImplemented("ListObjectVersions")
}
func (UnimplementedService) GetBucketLocation(context.Context, *s3model.GetBucketLocationInput) (*s3model.GetBucketLocationOutput, error) {
	return nil, notImplemented("GetBucketLocation")
}
func (UnimplementedService) PutObject(context.Context, *s3model.PutObjectInput) (*s3model.PutObjectOutput, error) {
	return nil, notImplemented("PutObject")
}
func (UnimplementedService) GetObject(context.Context, *s3model.GetObjectInput) (*s3model.GetObjectOutput, error) {
	return nil, notImplemented("GetObject")
}
func (UnimplementedService) HeadObject(context.Context, *s3model.HeadObjectInput) (*s3model.HeadObjectOutput, error) {
	return nil, notImplemented("HeadObject")
}
func (UnimplementedService) DeleteObject(context.Context, *s3model.DeleteObjectInput) (*s3model.DeleteObjectOutput, error) {
	return nil, notImplemented("DeleteObject")
}
func (UnimplementedService) DeleteObjects(context.Context, *s3model.DeleteObjectsInput) (*s3model.DeleteObjectsOutput, error) {
	return nil, notImplemented("DeleteObjects")
}
func (UnimplementedService) CopyObject(context.Context, *s3model.CopyObjectInput) (*s3model.CopyObjectOutput, error) {
	return nil, notImplemented("CopyObject")
}
func (UnimplementedService) GetObjectAttributes(context.Context, *s3model.GetObjectAttributesInput) (*s3model.GetObjectAttributesOutput, error) {
	return nil, notImplemented("GetObjectAttributes")
}
func (UnimplementedService) RestoreObject(context.Context, *s3model.RestoreObjectInput) (*s3model.RestoreObjectOutput, error) {
	return nil, notImplemented("RestoreObject")
}
func (UnimplementedService) GetObjectTorrent(context.Context, *s3model.GetObjectTorrentInput) (*s3model.GetObjectTorrentOutput, error) {
	return nil, notImplemented("GetObjectTorrent")
}
func (UnimplementedService) SelectObjectContent(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("SelectObjectContent")
}
func (UnimplementedService) CreateMultipartUpload(context.Context, *s3model.CreateMultipartUploadInput) (*s3model.CreateMultipartUploadOutput, error) {
	return nil, notImplemented("CreateMultipartUpload")
}
func (UnimplementedService) UploadPart(context.Context, *s3model.UploadPartInput) (*s3model.UploadPartOutput, error) {
	return nil, notImplemented("UploadPart")
}
func (UnimplementedService) UploadPartCopy(context.Context, *s3model.UploadPartCopyInput) (*s3model.UploadPartCopyOutput, error) {
	return nil, notImplemented("UploadPartCopy")
}
func (UnimplementedService) CompleteMultipartUpload(context.Context, *s3model.CompleteMultipartUploadInput) (*s3model.CompleteMultipartUploadOutput, error) {
	return nil, notImplemented("CompleteMultipartUpload")
}
func (UnimplementedService) AbortMultipartUpload(context.Context, *s3model.AbortMultipartUploadInput) (*s3model.AbortMultipartUploadOutput, error) {
	return nil, notImplemented("AbortMultipartUpload")
}
func (UnimplementedService) ListMultipartUploads(context.Context, *s3model.ListMultipartUploadsInput) (*s3model.ListMultipartUploadsOutput, error) {
	return nil, notImplemented("ListMultipartUploads")
}
func (UnimplementedService) ListParts(context.Context, *s3model.ListPartsInput) (*s3model.ListPartsOutput, error) {
	return nil, notImplemented("ListParts")
}
func (UnimplementedService) WriteGetObjectResponse(context.Context, *s3model.WriteGetObjectResponseInput) (*s3model.WriteGetObjectResponseOutput, error) {
	return nil, notImplemented("WriteGetObjectResponse")
}
func (UnimplementedService) GetBucketACL(context.Context, *s3model.GetBucketACLInput) (*s3model.GetBucketACLOutput, error) {
	return nil, notImplemented("GetBucketACL")
}
func (UnimplementedService) PutBucketACL(context.Context, *s3model.PutBucketACLInput) (*s3model.PutBucketACLOutput, error) {
	return nil, notImplemented("PutBucketACL")
}
func (UnimplementedService) GetBucketCORS(context.Context, *s3model.GetBucketCORSInput) (*s3model.GetBucketCORSOutput, error) {
	return nil, notImplemented("GetBucketCORS")
}
func (UnimplementedService) PutBucketCORS(context.Context, *s3model.PutBucketCORSInput) (*s3model.PutBucketCORSOutput, error) {
	return nil, notImplemented("PutBucketCORS")
}
func (UnimplementedService) DeleteBucketCORS(context.Context, *s3model.DeleteBucketCORSInput) (*s3model.DeleteBucketCORSOutput, error) {
	return nil, notImplemented("DeleteBucketCORS")
}
func (UnimplementedService) GetBucketTagging(context.Context, *s3model.GetBucketTaggingInput) (*s3model.GetBucketTaggingOutput, error) {
	return nil, notImplemented("GetBucketTagging")
}
func (UnimplementedService) PutBucketTagging(context.Context, *s3model.PutBucketTaggingInput) (*s3model.PutBucketTaggingOutput, error) {
	return nil, notImplemented("PutBucketTagging")
}
func (UnimplementedService) DeleteBucketTagging(context.Context, *s3model.DeleteBucketTaggingInput) (*s3model.DeleteBucketTaggingOutput, error) {
	return nil, notImplemented("DeleteBucketTagging")
}
func (UnimplementedService) GetObjectTagging(context.Context, *s3model.GetObjectTaggingInput) (*s3model.GetObjectTaggingOutput, error) {
	return nil, notImplemented("GetObjectTagging")
}
func (UnimplementedService) PutObjectTagging(context.Context, *s3model.PutObjectTaggingInput) (*s3model.PutObjectTaggingOutput, error) {
	return nil, notImplemented("PutObjectTagging")
}
func (UnimplementedService) DeleteObjectTagging(context.Context, *s3model.DeleteObjectTaggingInput) (*s3model.DeleteObjectTaggingOutput, error) {
	return nil, notImplemented("DeleteObjectTagging")
}
func (UnimplementedService) GetBucketVersioning(context.Context, *s3model.GetBucketVersioningInput) (*s3model.GetBucketVersioningOutput, error) {
	return nil, notImplemented("GetBucketVersioning")
}
func (UnimplementedService) PutBucketVersioning(context.Context, *s3model.PutBucketVersioningInput) (*s3model.PutBucketVersioningOutput, error) {
	return nil, notImplemented("PutBucketVersioning")
}
func (UnimplementedService) GetBucketEncryption(context.Context, *s3model.GetBucketEncryptionInput) (*s3model.GetBucketEncryptionOutput, error) {
	return nil, notImplemented("GetBucketEncryption")
}
func (UnimplementedService) PutBucketEncryption(context.Context, *s3model.PutBucketEncryptionInput) (*s3model.PutBucketEncryptionOutput, error) {
	return nil, notImplemented("PutBucketEncryption")
}
func (UnimplementedService) DeleteBucketEncryption(context.Context, *s3model.DeleteBucketEncryptionInput) (*s3model.DeleteBucketEncryptionOutput, error) {
	return nil, notImplemented("DeleteBucketEncryption")
}
func (UnimplementedService) GetBucketLifecycle(context.Context, *s3model.GetBucketLifecycleInput) (*s3model.GetBucketLifecycleOutput, error) {
	return nil, notImplemented("GetBucketLifecycle")
}
func (UnimplementedService) PutBucketLifecycle(context.Context, *s3model.PutBucketLifecycleInput) (*s3model.PutBucketLifecycleOutput, error) {
	return nil, notImplemented("PutBucketLifecycle")
}
func (UnimplementedService) DeleteBucketLifecycle(context.Context, *s3model.DeleteBucketLifecycleInput) (*s3model.DeleteBucketLifecycleOutput, error) {
	return nil, notImplemented("DeleteBucketLifecycle")
}

func (UnimplementedService) GetBucketPolicy(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketPolicy")
}
func (UnimplementedService) PutBucketPolicy(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketPolicy")
}
func (UnimplementedService) DeleteBucketPolicy(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("DeleteBucketPolicy")
}
func (UnimplementedService) GetBucketPolicyStatus(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketPolicyStatus")
}
func (UnimplementedService) GetBucketWebsite(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketWebsite")
}
func (UnimplementedService) PutBucketWebsite(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketWebsite")
}
func (UnimplementedService) DeleteBucketWebsite(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("DeleteBucketWebsite")
}
func (UnimplementedService) GetBucketReplication(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketReplication")
}
func (UnimplementedService) PutBucketReplication(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketReplication")
}
func (UnimplementedService) DeleteBucketReplication(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("DeleteBucketReplication")
}
func (UnimplementedService) GetBucketNotification(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketNotification")
}
func (UnimplementedService) PutBucketNotification(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketNotification")
}
func (UnimplementedService) GetBucketAccelerateConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketAccelerateConfiguration")
}
func (UnimplementedService) PutBucketAccelerateConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketAccelerateConfiguration")
}
func (UnimplementedService) GetBucketRequestPayment(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketRequestPayment")
}
func (UnimplementedService) PutBucketRequestPayment(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketRequestPayment")
}
func (UnimplementedService) GetBucketLogging(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketLogging")
}
func (UnimplementedService) PutBucketLogging(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketLogging")
}
func (UnimplementedService) GetBucketOwnershipControls(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketOwnershipControls")
}
func (UnimplementedService) PutBucketOwnershipControls(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketOwnershipControls")
}
func (UnimplementedService) DeleteBucketOwnershipControls(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("DeleteBucketOwnershipControls")
}
func (UnimplementedService) GetBucketAnalyticsConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketAnalyticsConfiguration")
}
func (UnimplementedService) PutBucketAnalyticsConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketAnalyticsConfiguration")
}
func (UnimplementedService) DeleteBucketAnalyticsConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("DeleteBucketAnalyticsConfiguration")
}
func (UnimplementedService) GetBucketInventoryConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketInventoryConfiguration")
}
func (UnimplementedService) PutBucketInventoryConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketInventoryConfiguration")
}
func (UnimplementedService) DeleteBucketInventoryConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("DeleteBucketInventoryConfiguration")
}
func (UnimplementedService) GetBucketMetricsConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketMetricsConfiguration")
}
func (UnimplementedService) PutBucketMetricsConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketMetricsConfiguration")
}
func (UnimplementedService) DeleteBucketMetricsConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("DeleteBucketMetricsConfiguration")
}
func (UnimplementedService) GetBucketIntelligentTieringConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetBucketIntelligentTieringConfiguration")
}
func (UnimplementedService) PutBucketIntelligentTieringConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutBucketIntelligentTieringConfiguration")
}
func (UnimplementedService) DeleteBucketIntelligentTieringConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("DeleteBucketIntelligentTieringConfiguration")
}
func (UnimplementedService) GetObjectLockConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetObjectLockConfiguration")
}
func (UnimplementedService) PutObjectLockConfiguration(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutObjectLockConfiguration")
}
func (UnimplementedService) GetObjectLegalHold(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetObjectLegalHold")
}
func (UnimplementedService) PutObjectLegalHold(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutObjectLegalHold")
}
func (UnimplementedService) GetObjectRetention(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetObjectRetention")
}
func (UnimplementedService) PutObjectRetention(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutObjectRetention")
}
func (UnimplementedService) GetPublicAccessBlock(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("GetPublicAccessBlock")
}
func (UnimplementedService) PutPublicAccessBlock(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("PutPublicAccessBlock")
}
func (UnimplementedService) DeletePublicAccessBlock(context.Context, *s3model.RawBucketConfig) (*s3model.RawBucketConfigOutput, error) {
	return nil, notImplemented("DeletePublicAccessBlock")
}

var _ Service = UnimplementedService{}
