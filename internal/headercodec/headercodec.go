// Package headercodec implements typed header parse/emit for the HTTP
// header locations used by per-operation adapters (spec section 4.4,
// component C5).
package headercodec

import (
	"encoding/base64"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/geckos3/geckos3/internal/s3errors"
)

const metaPrefix = "x-amz-meta-"

// ParseString returns the raw header value, or ("", false) if absent.
func ParseString(h http.Header, name string) (string, bool) {
	v := h.Get(name)
	if v == "" {
		if _, ok := h[textproto.CanonicalMIMEHeaderKey(name)]; !ok {
			return "", false
		}
	}
	return v, true
}

// RequireString is ParseString but returns MissingHeader if absent.
func RequireString(h http.Header, name string) (string, error) {
	v, ok := ParseString(h, name)
	if !ok {
		return "", s3errors.New(s3errors.MissingHeader, "Missing required header: "+name)
	}
	return v, nil
}

// ParseInt parses a bounded decimal integer header.
func ParseInt(h http.Header, name string, min, max int64) (int64, bool, error) {
	raw, ok := ParseString(h, name)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false, s3errors.New(s3errors.InvalidHeader, "Invalid integer header: "+name)
	}
	if n < min || n > max {
		return 0, false, s3errors.New(s3errors.InvalidArgument, "Header out of range: "+name)
	}
	return n, true, nil
}

// EmitInt sets an integer header.
func EmitInt(h http.Header, name string, v int64) {
	h.Set(name, strconv.FormatInt(v, 10))
}

// ParseBool parses a case-insensitive "true"/"false" header.
func ParseBool(h http.Header, name string) (bool, bool, error) {
	raw, ok := ParseString(h, name)
	if !ok {
		return false, false, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true, true, nil
	case "false":
		return false, true, nil
	default:
		return false, false, s3errors.New(s3errors.InvalidHeader, "Invalid boolean header: "+name)
	}
}

// EmitBool sets a boolean header as "true"/"false".
func EmitBool(h http.Header, name string, v bool) {
	if v {
		h.Set(name, "true")
	} else {
		h.Set(name, "false")
	}
}

// ParseHTTPDate parses an RFC 7231 IMF-fixdate header (e.g. If-Modified-Since).
func ParseHTTPDate(h http.Header, name string) (time.Time, bool, error) {
	raw, ok := ParseString(h, name)
	if !ok {
		return time.Time{}, false, nil
	}
	t, err := http.ParseTime(raw)
	if err != nil {
		return time.Time{}, false, s3errors.New(s3errors.InvalidHeader, "Invalid date header: "+name)
	}
	return t, true, nil
}

// EmitHTTPDate sets an RFC 7231 IMF-fixdate header.
func EmitHTTPDate(h http.Header, name string, t time.Time) {
	h.Set(name, t.UTC().Format(http.TimeFormat))
}

// ParseISODate parses an RFC 3339 timestamp header.
func ParseISODate(h http.Header, name string) (time.Time, bool, error) {
	raw, ok := ParseString(h, name)
	if !ok {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, s3errors.New(s3errors.InvalidHeader, "Invalid date header: "+name)
	}
	return t, true, nil
}

// EmitISODate sets an ISO-8601/RFC3339 millisecond-precision header.
func EmitISODate(h http.Header, name string, t time.Time) {
	h.Set(name, t.UTC().Format("2006-01-02T15:04:05.000Z"))
}

// Enum is a closed set of canonical header string values.
type Enum struct {
	Canonical []string
}

// Parse matches raw (case-insensitively) against the canonical set,
// returning the canonical spelling. Unknown values are InvalidArgument.
func (e Enum) Parse(raw string) (string, error) {
	for _, c := range e.Canonical {
		if strings.EqualFold(c, raw) {
			return c, nil
		}
	}
	return "", s3errors.New(s3errors.InvalidArgument, "Unrecognized enum value: "+raw)
}

// ParseHeader reads and validates an enum header.
func (e Enum) ParseHeader(h http.Header, name string) (string, bool, error) {
	raw, ok := ParseString(h, name)
	if !ok {
		return "", false, nil
	}
	v, err := e.Parse(raw)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Emit writes the canonical string for v; callers are expected to have
// validated v is one of the enum's Canonical values already.
func Emit(h http.Header, name, v string) {
	h.Set(name, v)
}

// ParseList splits a comma-separated header into trimmed elements.
func ParseList(h http.Header, name string) ([]string, bool) {
	raw, ok := ParseString(h, name)
	if !ok || raw == "" {
		return nil, ok
	}
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out, true
}

// EmitList joins elements with ", " per AWS list-header convention.
func EmitList(h http.Header, name string, values []string) {
	if len(values) == 0 {
		return
	}
	h.Set(name, strings.Join(values, ", "))
}

// ParseBase64 decodes a base64-encoded header value (e.g. Content-MD5).
func ParseBase64(h http.Header, name string) ([]byte, bool, error) {
	raw, ok := ParseString(h, name)
	if !ok {
		return nil, false, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, false, s3errors.New(s3errors.InvalidHeader, "Invalid base64 header: "+name)
	}
	return decoded, true, nil
}

// EmitBase64 base64-encodes v into a header.
func EmitBase64(h http.Header, name string, v []byte) {
	h.Set(name, base64.StdEncoding.EncodeToString(v))
}

// ParseMetadata collects every header whose name starts with
// "x-amz-meta-" (matched case-insensitively) into a map keyed by the
// lower-cased suffix; the original case of the suffix is not preserved.
func ParseMetadata(h http.Header) map[string]string {
	meta := make(map[string]string)
	for name, values := range h {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, metaPrefix) && len(values) > 0 {
			meta[strings.TrimPrefix(lower, metaPrefix)] = values[0]
		}
	}
	return meta
}

// EmitMetadata writes each metadata entry as its own x-amz-meta-* header.
func EmitMetadata(h http.Header, meta map[string]string) {
	for k, v := range meta {
		h.Set(metaPrefix+k, v)
	}
}
