// Package multipartform decodes browser-style POST object uploads
// (multipart/form-data), producing the same Input a headered PutObject
// would (component C12, spec section 4.5 step 6).
package multipartform

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/geckos3/geckos3/internal/s3errors"
	"github.com/geckos3/geckos3/internal/s3model"
)

// MaxMemory bounds how much of a POST form's non-file fields are held
// in memory while multipart.Reader scans to the file part; object
// bytes themselves are streamed, never buffered here.
const MaxMemory = 32 << 10

// Decode reads bucket (already known from the path), the named form
// fields AWS's browser-upload form documents (key, acl, Content-Type,
// x-amz-* fields, policy, signature), and the file part, producing a
// PutObjectInput whose Body is the still-open file part reader.
func Decode(r *http.Request, bucket string) (*s3model.PutObjectInput, func() error, error) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		return nil, nil, s3errors.New(s3errors.InvalidRequest, "Content-Type is not multipart/form-data")
	}
	boundary, ok := params["boundary"]
	if !ok {
		return nil, nil, s3errors.New(s3errors.InvalidRequest, "missing multipart boundary")
	}

	mr := multipart.NewReader(r.Body, boundary)
	in := &s3model.PutObjectInput{Bucket: bucket}
	fields := map[string]string{}
	var filePart *multipart.Part

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, s3errors.New(s3errors.InvalidRequest, "malformed multipart form")
		}
		name := part.FormName()
		if name == "file" {
			filePart = part
			break // file part must be last per the documented form field order
		}
		data, err := io.ReadAll(io.LimitReader(part, MaxMemory))
		if err != nil {
			return nil, nil, s3errors.New(s3errors.InvalidRequest, "malformed multipart field")
		}
		fields[name] = string(data)
		part.Close()
	}
	if filePart == nil {
		return nil, nil, s3errors.New(s3errors.InvalidArgument, "multipart form is missing the file part")
	}

	if key, ok := fields["key"]; ok {
		in.Key = key
	} else {
		return nil, nil, s3errors.New(s3errors.MissingRequiredParameter, "form is missing required field key")
	}
	if ct, ok := fields["Content-Type"]; ok {
		in.ContentType = ct
	}
	if acl, ok := fields["acl"]; ok {
		in.ACL = acl
	}
	if cl, ok := fields["Content-Length"]; ok {
		if n, err := strconv.ParseInt(cl, 10, 64); err == nil {
			in.ContentLength = n
		}
	}
	meta := s3model.Metadata{}
	for k, v := range fields {
		const prefix = "x-amz-meta-"
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			meta[k[len(prefix):]] = v
		}
	}
	if len(meta) > 0 {
		in.Metadata = meta
	}

	in.Body = filePart
	return in, filePart.Close, nil
}
