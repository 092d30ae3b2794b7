// Package s3path decomposes an inbound request's Host header and URI
// path into an S3Path, supporting both virtual-hosted and path-style
// bucket addressing (spec section 4.1, component C2).
package s3path

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/geckos3/geckos3/internal/s3errors"
)

// Kind discriminates the three S3Path variants.
type Kind int

const (
	KindRoot Kind = iota
	KindBucket
	KindObject
)

// Path is the sum type `Root | Bucket{name} | Object{bucket,key}` from
// spec section 3. Bucket is set for KindBucket and KindObject; Key is
// set only for KindObject.
type Path struct {
	Kind   Kind
	Bucket string
	Key    string
}

// ServiceDomain is the suffix used to recognize a virtual-hosted Host
// header, e.g. "s3.example.com" turns "mybucket.s3.example.com" into
// bucket "mybucket". Callers configure this per deployment.
type Classifier struct {
	ServiceDomain string
}

// New returns a Classifier for the given base service domain (no
// leading dot, e.g. "s3.example.com").
func New(serviceDomain string) *Classifier {
	return &Classifier{ServiceDomain: strings.TrimPrefix(serviceDomain, ".")}
}

// Classify builds a Path from the Host header and URL path, per the
// three rules in spec section 4.1.
func (c *Classifier) Classify(host, urlPath string) (Path, error) {
	decodedPath, err := percentDecode(urlPath)
	if err != nil {
		return Path{}, s3errors.New(s3errors.InvalidURI, "could not decode request URI")
	}

	if bucket, ok := c.virtualHostedBucket(host); ok {
		key := strings.TrimPrefix(decodedPath, "/")
		return c.classifyWithBucket(bucket, key)
	}

	trimmed := strings.TrimPrefix(decodedPath, "/")
	if trimmed == "" {
		return Path{Kind: KindRoot}, nil
	}
	bucket, rest, _ := strings.Cut(trimmed, "/")
	return c.classifyWithBucket(bucket, rest)
}

func (c *Classifier) classifyWithBucket(bucket, key string) (Path, error) {
	if bucket == "" {
		return Path{Kind: KindRoot}, nil
	}
	if !IsValidBucketName(bucket) {
		return Path{}, s3errors.New(s3errors.InvalidBucketName, "The specified bucket is not valid.")
	}
	if key == "" {
		return Path{Kind: KindBucket, Bucket: bucket}, nil
	}
	if len(key) > 1024 {
		return Path{}, s3errors.New(s3errors.InvalidArgument, "Object key too long")
	}
	return Path{Kind: KindObject, Bucket: bucket, Key: key}, nil
}

// virtualHostedBucket reports whether host carries a leading label that
// is both a valid bucket name and is followed by the configured service
// domain, per spec section 4.1 rule 1.
func (c *Classifier) virtualHostedBucket(host string) (string, bool) {
	if c.ServiceDomain == "" {
		return "", false
	}
	host, _, _ = strings.Cut(host, ":") // strip port
	suffix := "." + c.ServiceDomain
	if !strings.HasSuffix(host, suffix) {
		return "", false
	}
	label := strings.TrimSuffix(host, suffix)
	if label == "" || strings.Contains(label, ".") {
		return "", false
	}
	if !IsValidBucketName(label) {
		return "", false
	}
	return label, true
}

// IsValidBucketName enforces the DNS-label bucket naming rules from
// spec section 3: 3-63 chars, lowercase alphanumerics/hyphens/dots, no
// adjacent dots, not leading/trailing with '-' or '.', not an IPv4
// literal.
func IsValidBucketName(name string) bool {
	if len(name) < 3 || len(name) > 63 {
		return false
	}
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '.') {
			return false
		}
	}
	if name[0] == '-' || name[0] == '.' || name[len(name)-1] == '-' || name[len(name)-1] == '.' {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	if isIPv4Literal(name) {
		return false
	}
	return true
}

func isIPv4Literal(name string) bool {
	parts := strings.Split(name, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if p == "" || len(p) > 3 {
			return false
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// percentDecode decodes a URL path, preserving multiple consecutive
// slashes in the decoded result (spec section 4.1 rule 2).
func percentDecode(path string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(path); i++ {
		if path[i] == '%' {
			if i+2 >= len(path) {
				return "", errInvalidPercentEncoding
			}
			hi, ok1 := hexVal(path[i+1])
			lo, ok2 := hexVal(path[i+2])
			if !ok1 || !ok2 {
				return "", errInvalidPercentEncoding
			}
			b.WriteByte(hi<<4 | lo)
			i += 2
			continue
		}
		b.WriteByte(path[i])
	}
	decoded := b.String()
	if !utf8.ValidString(decoded) {
		return "", errInvalidPercentEncoding
	}
	return decoded, nil
}

var errInvalidPercentEncoding = errors.New("invalid percent-encoding in URI")

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
