package router

import (
	"net/http"
	"testing"

	"github.com/geckos3/geckos3/internal/query"
	"github.com/geckos3/geckos3/internal/s3ops"
	"github.com/geckos3/geckos3/internal/s3path"
)

func TestRouteListBuckets(t *testing.T) {
	d, err := Route("GET", s3path.Path{Kind: s3path.KindRoot}, query.Parse(""), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.ListBuckets {
		t.Fatalf("want ListBuckets, got %v", d.Operation)
	}
}

func TestRouteGetObjectPlain(t *testing.T) {
	path := s3path.Path{Kind: s3path.KindObject, Bucket: "b", Key: "k"}
	d, err := Route("GET", path, query.Parse(""), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.GetObject {
		t.Fatalf("want GetObject, got %v", d.Operation)
	}
}

func TestRouteBucketACLSubresource(t *testing.T) {
	path := s3path.Path{Kind: s3path.KindBucket, Bucket: "b"}
	d, err := Route("GET", path, query.Parse("acl"), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.GetBucketACL {
		t.Fatalf("want GetBucketACL, got %v", d.Operation)
	}
}

func TestRouteListObjectsV2RequiresListTypeValueTwo(t *testing.T) {
	path := s3path.Path{Kind: s3path.KindBucket, Bucket: "b"}

	d, err := Route("GET", path, query.Parse("list-type=2"), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.ListObjectsV2 {
		t.Fatalf("want ListObjectsV2, got %v", d.Operation)
	}

	// An unrecognized list-type value must not trip the V2 special
	// case; it falls through to plain ListObjects.
	d, err = Route("GET", path, query.Parse("list-type=1"), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.ListObjects {
		t.Fatalf("want ListObjects fallback, got %v", d.Operation)
	}
}

func TestRouteUploadPartWithoutCopySource(t *testing.T) {
	path := s3path.Path{Kind: s3path.KindObject, Bucket: "b", Key: "k"}
	d, err := Route("PUT", path, query.Parse("uploadId=xyz&partNumber=1"), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.UploadPart {
		t.Fatalf("want UploadPart, got %v", d.Operation)
	}
}

func TestRouteUploadPartCopyWithCopySourceHeader(t *testing.T) {
	path := s3path.Path{Kind: s3path.KindObject, Bucket: "b", Key: "k"}
	h := http.Header{}
	h.Set("x-amz-copy-source", "/src-bucket/src-key")
	d, err := Route("PUT", path, query.Parse("uploadId=xyz&partNumber=1"), h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.UploadPartCopy {
		t.Fatalf("want UploadPartCopy, got %v", d.Operation)
	}
}

func TestRouteUploadPartCopyTriggeredByEmptyCopySourceHeader(t *testing.T) {
	// Resolved Open Question: mere presence of x-amz-copy-source
	// disambiguates UploadPart vs UploadPartCopy, even when its value
	// is empty.
	path := s3path.Path{Kind: s3path.KindObject, Bucket: "b", Key: "k"}
	h := http.Header{}
	h["X-Amz-Copy-Source"] = []string{""}
	d, err := Route("PUT", path, query.Parse("uploadId=xyz"), h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.UploadPartCopy {
		t.Fatalf("want UploadPartCopy for empty-valued copy-source header, got %v", d.Operation)
	}
}

func TestRouteCopyObjectViaCopySourceHeader(t *testing.T) {
	path := s3path.Path{Kind: s3path.KindObject, Bucket: "b", Key: "k"}
	h := http.Header{}
	h.Set("x-amz-copy-source", "/src-bucket/src-key")
	d, err := Route("PUT", path, query.Parse(""), h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.CopyObject {
		t.Fatalf("want CopyObject, got %v", d.Operation)
	}
}

func TestRouteListParts(t *testing.T) {
	path := s3path.Path{Kind: s3path.KindObject, Bucket: "b", Key: "k"}
	d, err := Route("GET", path, query.Parse("uploadId=xyz"), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.ListParts {
		t.Fatalf("want ListParts, got %v", d.Operation)
	}
}

func TestRouteCompleteMultipartUpload(t *testing.T) {
	path := s3path.Path{Kind: s3path.KindObject, Bucket: "b", Key: "k"}
	d, err := Route("POST", path, query.Parse("uploadId=xyz"), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.CompleteMultipartUpload {
		t.Fatalf("want CompleteMultipartUpload, got %v", d.Operation)
	}
	if !d.SigningRequiresBodyDigest {
		t.Fatal("CompleteMultipartUpload must require a hashed body")
	}
}

func TestRouteWriteGetObjectResponse(t *testing.T) {
	h := http.Header{}
	h.Set("x-amz-request-route", "route-token")
	h.Set("x-amz-request-token", "req-token")
	d, err := Route("POST", s3path.Path{Kind: s3path.KindRoot}, query.Parse(""), h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.WriteGetObjectResponse {
		t.Fatalf("want WriteGetObjectResponse, got %v", d.Operation)
	}
}

func TestRouteListMultipartUploadsVsCreateMultipartUpload(t *testing.T) {
	bucketPath := s3path.Path{Kind: s3path.KindBucket, Bucket: "b"}
	d, err := Route("GET", bucketPath, query.Parse("uploads"), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.ListMultipartUploads {
		t.Fatalf("want ListMultipartUploads, got %v", d.Operation)
	}

	objectPath := s3path.Path{Kind: s3path.KindObject, Bucket: "b", Key: "k"}
	d, err = Route("POST", objectPath, query.Parse("uploads"), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Operation != s3ops.CreateMultipartUpload {
		t.Fatalf("want CreateMultipartUpload, got %v", d.Operation)
	}
}

func TestRouteUnmatchedMethodFails(t *testing.T) {
	path := s3path.Path{Kind: s3path.KindBucket, Bucket: "b"}
	if _, err := Route("PATCH", path, query.Parse(""), http.Header{}); err == nil {
		t.Fatal("unrecognized method+addressing combination should fail to route")
	}
}
