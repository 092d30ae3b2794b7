package server

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/geckos3/geckos3/internal/headercodec"
	"github.com/geckos3/geckos3/internal/httpio"
	"github.com/geckos3/geckos3/internal/multipartform"
	"github.com/geckos3/geckos3/internal/query"
	"github.com/geckos3/geckos3/internal/router"
	"github.com/geckos3/geckos3/internal/s3errors"
	"github.com/geckos3/geckos3/internal/s3model"
	"github.com/geckos3/geckos3/internal/s3ops"
	"github.com/geckos3/geckos3/internal/xmlcodec"
)

// dispatch decodes the request for decision.Operation, invokes the
// matching Service method, and encodes the response — the Decoded ->
// Invoked -> Encoded stages of spec section 4.8, collapsed into one
// hand-written adapter per operation (spec section 4.5 and 9).
func (p *Pipeline) dispatch(ctx context.Context, decision router.Decision, req *httpio.Request, rw *httpio.ResponseWriter) error {
	r := req.Raw
	h := r.Header
	q := req.Query
	path := req.Path

	switch decision.Operation {

	case s3ops.ListBuckets:
		out, err := p.Service.ListBuckets(ctx, &s3model.ListBucketsInput{
			ExpectedBucketOwner: h.Get("x-amz-expected-bucket-owner"),
		})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.CreateBucket:
		in := &s3model.CreateBucketInput{
			Bucket:           path.Bucket,
			ACL:              h.Get("x-amz-acl"),
			GrantFullControl: h.Get("x-amz-grant-full-control"),
			GrantRead:        h.Get("x-amz-grant-read"),
			GrantReadACP:     h.Get("x-amz-grant-read-acp"),
			GrantWrite:       h.Get("x-amz-grant-write"),
			GrantWriteACP:    h.Get("x-amz-grant-write-acp"),
			ObjectOwnership:  h.Get("x-amz-object-ownership"),
		}
		if v, ok, _ := headercodec.ParseBool(h, "x-amz-bucket-object-lock-enabled"); ok {
			in.ObjectLockEnabledForBucket = v
		}
		out, err := p.Service.CreateBucket(ctx, in)
		if err != nil {
			return err
		}
		if out.Location != "" {
			rw.Header().Set("Location", out.Location)
		}
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.DeleteBucket:
		_, err := p.Service.DeleteBucket(ctx, &s3model.DeleteBucketInput{
			Bucket:              path.Bucket,
			ExpectedBucketOwner: h.Get("x-amz-expected-bucket-owner"),
		})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusNoContent)
		return nil

	case s3ops.HeadBucket:
		out, err := p.Service.HeadBucket(ctx, &s3model.HeadBucketInput{
			Bucket:              path.Bucket,
			ExpectedBucketOwner: h.Get("x-amz-expected-bucket-owner"),
		})
		if err != nil {
			return err
		}
		if out.BucketRegion != "" {
			rw.Header().Set("x-amz-bucket-region", out.BucketRegion)
		}
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.ListObjects:
		in := listObjectsInput(path.Bucket, q)
		out, err := p.Service.ListObjects(ctx, in)
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.ListObjectsV2:
		in := listObjectsInput(path.Bucket, q)
		in.ContinuationToken = q.Get("continuation-token")
		in.StartAfter = q.Get("start-after")
		in.FetchOwner = q.Get("fetch-owner") == "true"
		out, err := p.Service.ListObjectsV2(ctx, in)
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.ListObjectVersions:
		in := s3model.ListObjectVersionsInput{
			ListObjectsInput: *listObjectsInput(path.Bucket, q),
			VersionIDMarker:  q.Get("version-id-marker"),
			KeyMarker:        q.Get("key-marker"),
		}
		out, err := p.Service.ListObjectVersions(ctx, &in)
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.GetBucketLocation:
		out, err := p.Service.GetBucketLocation(ctx, &s3model.GetBucketLocationInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.PutObject:
		return p.handlePutObject(ctx, req, rw)

	case s3ops.GetObject:
		in := &s3model.GetObjectInput{
			Bucket:               path.Bucket,
			Key:                  path.Key,
			VersionID:            q.Get("versionId"),
			Range:                h.Get("Range"),
			IfMatch:              h.Get("If-Match"),
			IfNoneMatch:          h.Get("If-None-Match"),
			SSECustomerAlgorithm: h.Get("x-amz-server-side-encryption-customer-algorithm"),
			SSECustomerKey:       h.Get("x-amz-server-side-encryption-customer-key"),
			SSECustomerKeyMD5:    h.Get("x-amz-server-side-encryption-customer-key-md5"),
			RequestPayer:         s3model.RequestPayer(h.Get("x-amz-request-payer")),
			ExpectedBucketOwner:  h.Get("x-amz-expected-bucket-owner"),
		}
		if t, ok, _ := headercodec.ParseHTTPDate(h, "If-Modified-Since"); ok {
			in.IfModifiedSince = &t
		}
		if t, ok, _ := headercodec.ParseHTTPDate(h, "If-Unmodified-Since"); ok {
			in.IfUnmodifiedSince = &t
		}
		if n, ok, _ := headercodec.ParseInt(h, "x-amz-part-number", 1, 10000); ok {
			in.PartNumber = int(n)
		}
		out, err := p.Service.GetObject(ctx, in)
		if err != nil {
			return err
		}
		return writeObjectBody(rw, out)

	case s3ops.HeadObject:
		in := &s3model.HeadObjectInput{
			Bucket:              path.Bucket,
			Key:                 path.Key,
			VersionID:           q.Get("versionId"),
			IfMatch:              h.Get("If-Match"),
			IfNoneMatch:          h.Get("If-None-Match"),
			Range:                h.Get("Range"),
			SSECustomerAlgorithm: h.Get("x-amz-server-side-encryption-customer-algorithm"),
			ExpectedBucketOwner:  h.Get("x-amz-expected-bucket-owner"),
		}
		out, err := p.Service.HeadObject(ctx, in)
		if err != nil {
			return err
		}
		emitObjectHeadHeaders(rw, out)
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.DeleteObject:
		in := &s3model.DeleteObjectInput{
			Bucket:                    path.Bucket,
			Key:                       path.Key,
			VersionID:                 q.Get("versionId"),
			MFA:                       h.Get("x-amz-mfa"),
			RequestPayer:              s3model.RequestPayer(h.Get("x-amz-request-payer")),
			ExpectedBucketOwner:       h.Get("x-amz-expected-bucket-owner"),
		}
		if v, ok, _ := headercodec.ParseBool(h, "x-amz-bypass-governance-retention"); ok {
			in.BypassGovernanceRetention = v
		}
		out, err := p.Service.DeleteObject(ctx, in)
		if err != nil {
			return err
		}
		if out.VersionID != nil {
			rw.Header().Set("x-amz-version-id", *out.VersionID)
		}
		if out.DeleteMarker {
			headercodec.EmitBool(rw.Header(), "x-amz-delete-marker", true)
		}
		rw.WriteStatus(http.StatusNoContent)
		return nil

	case s3ops.DeleteObjects:
		var in s3model.DeleteObjectsInput
		if err := xmlcodec.ReadBounded(req.Body.Reader, xmlcodec.DefaultMaxBodyBytes, &in); err != nil {
			return err
		}
		in.Bucket = path.Bucket
		in.MFA = h.Get("x-amz-mfa")
		out, err := p.Service.DeleteObjects(ctx, &in)
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.CopyObject:
		in := &s3model.CopyObjectInput{
			Bucket:              path.Bucket,
			Key:                 path.Key,
			MetadataDirective:   h.Get("x-amz-metadata-directive"),
			TaggingDirective:    h.Get("x-amz-tagging-directive"),
		}
		in.CopySourceBucket, in.CopySourceKey, in.CopySourceVersionID = parseCopySource(h.Get("x-amz-copy-source"))
		in.ContentType = h.Get("Content-Type")
		in.StorageClass = s3model.StorageClass(h.Get("x-amz-storage-class"))
		in.Metadata = headercodec.ParseMetadata(h)
		out, err := p.Service.CopyObject(ctx, in)
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out.Result)

	case s3ops.GetObjectAttributes:
		in := &s3model.GetObjectAttributesInput{
			Bucket:              path.Bucket,
			Key:                 path.Key,
			VersionID:           q.Get("versionId"),
			ExpectedBucketOwner: h.Get("x-amz-expected-bucket-owner"),
		}
		if raw, ok := headercodec.ParseList(h, "x-amz-object-attributes"); ok {
			in.ObjectAttributes = raw
		}
		out, err := p.Service.GetObjectAttributes(ctx, in)
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.CreateMultipartUpload:
		in := &s3model.CreateMultipartUploadInput{Bucket: path.Bucket, Key: path.Key}
		in.ContentType = h.Get("Content-Type")
		in.StorageClass = s3model.StorageClass(h.Get("x-amz-storage-class"))
		in.Metadata = headercodec.ParseMetadata(h)
		out, err := p.Service.CreateMultipartUpload(ctx, in)
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.UploadPart:
		n, err := strconv.Atoi(q.Get("partNumber"))
		if err != nil {
			return s3errors.New(s3errors.InvalidArgument, "invalid partNumber")
		}
		in := &s3model.UploadPartInput{
			Bucket:            path.Bucket,
			Key:               path.Key,
			UploadID:          q.Get("uploadId"),
			PartNumber:        n,
			ContentLength:     req.Body.DecodedContentLength,
			Body:              req.Body.Reader,
		}
		out, err := p.Service.UploadPart(ctx, in)
		if err != nil {
			return err
		}
		rw.Header().Set("ETag", out.ETag)
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.UploadPartCopy:
		n, err := strconv.Atoi(q.Get("partNumber"))
		if err != nil {
			return s3errors.New(s3errors.InvalidArgument, "invalid partNumber")
		}
		in := &s3model.UploadPartCopyInput{
			Bucket:     path.Bucket,
			Key:        path.Key,
			UploadID:   q.Get("uploadId"),
			PartNumber: n,
		}
		in.CopySourceBucket, in.CopySourceKey, in.CopySourceVersionID = parseCopySource(h.Get("x-amz-copy-source"))
		in.CopySourceRange = h.Get("x-amz-copy-source-range")
		out, err := p.Service.UploadPartCopy(ctx, in)
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out.Result)

	case s3ops.CompleteMultipartUpload:
		return p.handleCompleteMultipartUpload(ctx, req, rw, path.Bucket, path.Key, q.Get("uploadId"))

	case s3ops.AbortMultipartUpload:
		_, err := p.Service.AbortMultipartUpload(ctx, &s3model.AbortMultipartUploadInput{
			Bucket: path.Bucket, Key: path.Key, UploadID: q.Get("uploadId"),
		})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusNoContent)
		return nil

	case s3ops.ListMultipartUploads:
		maxUploads, _ := strconv.Atoi(q.Get("max-uploads"))
		out, err := p.Service.ListMultipartUploads(ctx, &s3model.ListMultipartUploadsInput{
			Bucket: path.Bucket, Delimiter: q.Get("delimiter"), Prefix: q.Get("prefix"),
			KeyMarker: q.Get("key-marker"), UploadIDMarker: q.Get("upload-id-marker"),
			MaxUploads: maxUploads,
		})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.ListParts:
		maxParts, _ := strconv.Atoi(q.Get("max-parts"))
		partMarker, _ := strconv.Atoi(q.Get("part-number-marker"))
		out, err := p.Service.ListParts(ctx, &s3model.ListPartsInput{
			Bucket: path.Bucket, Key: path.Key, UploadID: q.Get("uploadId"),
			MaxParts: maxParts, PartNumberMarker: partMarker,
		})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.GetBucketACL:
		out, err := p.Service.GetBucketACL(ctx, &s3model.GetBucketACLInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.PutBucketACL:
		in := &s3model.PutBucketACLInput{Bucket: path.Bucket, ACL: h.Get("x-amz-acl")}
		if req.Body.DecodedContentLength > 0 {
			var policy s3model.AccessControlPolicy
			if err := xmlcodec.ReadBounded(req.Body.Reader, xmlcodec.DefaultMaxBodyBytes, &policy); err != nil {
				return err
			}
			in.Policy = &policy
		}
		_, err := p.Service.PutBucketACL(ctx, in)
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.GetBucketCORS:
		out, err := p.Service.GetBucketCORS(ctx, &s3model.GetBucketCORSInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.PutBucketCORS:
		var cfg s3model.CORSConfiguration
		if err := xmlcodec.ReadBounded(req.Body.Reader, xmlcodec.DefaultMaxBodyBytes, &cfg); err != nil {
			return err
		}
		_, err := p.Service.PutBucketCORS(ctx, &s3model.PutBucketCORSInput{Bucket: path.Bucket, Configuration: cfg})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.DeleteBucketCORS:
		_, err := p.Service.DeleteBucketCORS(ctx, &s3model.DeleteBucketCORSInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusNoContent)
		return nil

	case s3ops.GetBucketTagging:
		out, err := p.Service.GetBucketTagging(ctx, &s3model.GetBucketTaggingInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.PutBucketTagging:
		var tagging s3model.Tagging
		if err := xmlcodec.ReadBounded(req.Body.Reader, xmlcodec.DefaultMaxBodyBytes, &tagging); err != nil {
			return err
		}
		_, err := p.Service.PutBucketTagging(ctx, &s3model.PutBucketTaggingInput{Bucket: path.Bucket, Tagging: tagging})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.DeleteBucketTagging:
		_, err := p.Service.DeleteBucketTagging(ctx, &s3model.DeleteBucketTaggingInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusNoContent)
		return nil

	case s3ops.GetObjectTagging:
		out, err := p.Service.GetObjectTagging(ctx, &s3model.GetObjectTaggingInput{Bucket: path.Bucket, Key: path.Key, VersionID: q.Get("versionId")})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.PutObjectTagging:
		var tagging s3model.Tagging
		if err := xmlcodec.ReadBounded(req.Body.Reader, xmlcodec.DefaultMaxBodyBytes, &tagging); err != nil {
			return err
		}
		_, err := p.Service.PutObjectTagging(ctx, &s3model.PutObjectTaggingInput{Bucket: path.Bucket, Key: path.Key, VersionID: q.Get("versionId"), Tagging: tagging})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.DeleteObjectTagging:
		_, err := p.Service.DeleteObjectTagging(ctx, &s3model.DeleteObjectTaggingInput{Bucket: path.Bucket, Key: path.Key, VersionID: q.Get("versionId")})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusNoContent)
		return nil

	case s3ops.GetBucketVersioning:
		out, err := p.Service.GetBucketVersioning(ctx, &s3model.GetBucketVersioningInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.PutBucketVersioning:
		var cfg s3model.VersioningConfiguration
		if err := xmlcodec.ReadBounded(req.Body.Reader, xmlcodec.DefaultMaxBodyBytes, &cfg); err != nil {
			return err
		}
		_, err := p.Service.PutBucketVersioning(ctx, &s3model.PutBucketVersioningInput{Bucket: path.Bucket, Configuration: cfg, MFA: h.Get("x-amz-mfa")})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.GetBucketEncryption:
		out, err := p.Service.GetBucketEncryption(ctx, &s3model.GetBucketEncryptionInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.PutBucketEncryption:
		var cfg s3model.ServerSideEncryptionConfiguration
		if err := xmlcodec.ReadBounded(req.Body.Reader, xmlcodec.DefaultMaxBodyBytes, &cfg); err != nil {
			return err
		}
		_, err := p.Service.PutBucketEncryption(ctx, &s3model.PutBucketEncryptionInput{Bucket: path.Bucket, Configuration: cfg})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.DeleteBucketEncryption:
		_, err := p.Service.DeleteBucketEncryption(ctx, &s3model.DeleteBucketEncryptionInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusNoContent)
		return nil

	case s3ops.GetBucketLifecycle:
		out, err := p.Service.GetBucketLifecycle(ctx, &s3model.GetBucketLifecycleInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		return writeXML(rw, http.StatusOK, out)

	case s3ops.PutBucketLifecycle:
		var cfg s3model.LifecycleConfiguration
		if err := xmlcodec.ReadBounded(req.Body.Reader, xmlcodec.DefaultMaxBodyBytes, &cfg); err != nil {
			return err
		}
		_, err := p.Service.PutBucketLifecycle(ctx, &s3model.PutBucketLifecycleInput{Bucket: path.Bucket, Configuration: cfg})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusOK)
		return nil

	case s3ops.DeleteBucketLifecycle:
		_, err := p.Service.DeleteBucketLifecycle(ctx, &s3model.DeleteBucketLifecycleInput{Bucket: path.Bucket})
		if err != nil {
			return err
		}
		rw.WriteStatus(http.StatusNoContent)
		return nil
	}

	return p.dispatchRaw(ctx, decision, req, rw)
}

func listObjectsInput(bucket string, q query.OrderedQs) *s3model.ListObjectsInput {
	maxKeys, _ := strconv.Atoi(q.Get("max-keys"))
	if maxKeys == 0 {
		maxKeys = 1000
	}
	return &s3model.ListObjectsInput{
		Bucket:       bucket,
		Prefix:       q.Get("prefix"),
		Delimiter:    q.Get("delimiter"),
		Marker:       q.Get("marker"),
		MaxKeys:      maxKeys,
		EncodingType: q.Get("encoding-type"),
	}
}

func writeXML(rw *httpio.ResponseWriter, status int, v any) error {
	body, err := xmlcodec.Encode(v)
	if err != nil {
		return s3errors.Wrap(err)
	}
	rw.Header().Set("Content-Type", "application/xml")
	rw.WriteStatus(status)
	_, err = rw.Write(body)
	return err
}

func writeObjectBody(rw *httpio.ResponseWriter, out *s3model.GetObjectOutput) error {
	defer out.Body.Close()
	h := rw.Header()
	h.Set("Content-Type", out.ContentType)
	headercodec.EmitInt(h, "Content-Length", out.ContentLength)
	if out.ETag != "" {
		h.Set("ETag", out.ETag)
	}
	if !out.LastModified.IsZero() {
		headercodec.EmitHTTPDate(h, "Last-Modified", out.LastModified)
	}
	if out.VersionID != nil {
		h.Set("x-amz-version-id", *out.VersionID)
	}
	if len(out.Metadata) > 0 {
		headercodec.EmitMetadata(h, out.Metadata)
	}
	if out.ContentRange != "" {
		h.Set("Content-Range", out.ContentRange)
		rw.WriteStatus(http.StatusPartialContent)
	} else {
		rw.WriteStatus(http.StatusOK)
	}
	_, err := io.Copy(rw, out.Body)
	return err
}

func emitObjectHeadHeaders(rw *httpio.ResponseWriter, out *s3model.HeadObjectOutput) {
	h := rw.Header()
	h.Set("Content-Type", out.ContentType)
	headercodec.EmitInt(h, "Content-Length", out.ContentLength)
	if out.ETag != "" {
		h.Set("ETag", out.ETag)
	}
	if !out.LastModified.IsZero() {
		headercodec.EmitHTTPDate(h, "Last-Modified", out.LastModified)
	}
	if out.VersionID != nil {
		h.Set("x-amz-version-id", *out.VersionID)
	}
	if len(out.Metadata) > 0 {
		headercodec.EmitMetadata(h, out.Metadata)
	}
}

func (p *Pipeline) handlePutObject(ctx context.Context, req *httpio.Request, rw *httpio.ResponseWriter) error {
	h := req.Raw.Header
	path := req.Path

	if isMultipartForm(h) {
		in, closeFile, err := multipartform.Decode(req.Raw, path.Bucket)
		if err != nil {
			return err
		}
		defer closeFile()
		out, err := p.Service.PutObject(ctx, in)
		if err != nil {
			return err
		}
		rw.Header().Set("ETag", out.ETag)
		rw.WriteStatus(http.StatusNoContent)
		return nil
	}

	in := &s3model.PutObjectInput{
		Bucket:        path.Bucket,
		Key:           path.Key,
		ContentLength: req.Body.DecodedContentLength,
		ContentType:   h.Get("Content-Type"),
		IfMatch:       h.Get("If-Match"),
		IfNoneMatch:   h.Get("If-None-Match"),
		Body:          req.Body.Reader,
	}
	in.StorageClass = s3model.StorageClass(h.Get("x-amz-storage-class"))
	in.ACL = h.Get("x-amz-acl")
	in.Metadata = headercodec.ParseMetadata(h)
	if md5, ok, _ := headercodec.ParseBase64(h, "Content-MD5"); ok {
		in.ContentMD5 = md5
	}
	out, err := p.Service.PutObject(ctx, in)
	if err != nil {
		return err
	}
	rw.Header().Set("ETag", out.ETag)
	if out.VersionID != nil {
		rw.Header().Set("x-amz-version-id", *out.VersionID)
	}
	rw.WriteStatus(http.StatusOK)
	return nil
}

func (p *Pipeline) handleCompleteMultipartUpload(ctx context.Context, req *httpio.Request, rw *httpio.ResponseWriter, bucket, key, uploadID string) error {
	var in s3model.CompleteMultipartUploadInput
	if err := xmlcodec.ReadBounded(req.Body.Reader, xmlcodec.DefaultMaxBodyBytes, &in); err != nil {
		return err
	}
	in.Bucket, in.Key, in.UploadID = bucket, key, uploadID
	out, err := p.Service.CompleteMultipartUpload(ctx, &in)
	if err != nil {
		// Documented exception (spec section 4.9): a mid-processing
		// failure after 200 OK has already committed is reported as an
		// <Error> in place of the success body, still inside the 200.
		se := s3errors.Wrap(err)
		errOut := s3model.CompleteMultipartUploadErrorOutput{Code: string(se.Code), Message: se.Message}
		return writeXML(rw, http.StatusOK, errOut)
	}
	return writeXML(rw, http.StatusOK, out)
}

func isMultipartForm(h http.Header) bool {
	return strings.HasPrefix(h.Get("Content-Type"), "multipart/form-data")
}

// parseCopySource decomposes an x-amz-copy-source header value, which
// AWS SDKs send either raw ("bucket/key") or URL-encoded
// ("%2Fbucket%2Fkey?versionId=..."), per spec section 4.4.
func parseCopySource(raw string) (bucket, key, versionID string) {
	s := strings.TrimPrefix(raw, "/")
	p, qs, _ := strings.Cut(s, "?")
	if decoded, err := url.QueryUnescape(p); err == nil {
		p = decoded
	}
	p = strings.TrimPrefix(p, "/")
	bucket, key, _ = strings.Cut(p, "/")
	if qs != "" {
		if values, err := url.ParseQuery(qs); err == nil {
			versionID = values.Get("versionId")
		}
	}
	return
}
