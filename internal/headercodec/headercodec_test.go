package headercodec

import (
	"net/http"
	"testing"
	"time"

	"github.com/geckos3/geckos3/internal/s3errors"
)

func errCode(err error) s3errors.Code {
	if se, ok := err.(*s3errors.Error); ok {
		return se.Code
	}
	return ""
}

func TestParseStringPresentAndAbsent(t *testing.T) {
	h := http.Header{}
	h.Set("X-Amz-Foo", "bar")
	if v, ok := ParseString(h, "X-Amz-Foo"); !ok || v != "bar" {
		t.Fatalf("got (%q, %v)", v, ok)
	}
	if _, ok := ParseString(h, "X-Amz-Missing"); ok {
		t.Fatal("expected absent header to report false")
	}
}

func TestRequireStringMissing(t *testing.T) {
	h := http.Header{}
	_, err := RequireString(h, "X-Amz-Required")
	if errCode(err) != s3errors.MissingHeader {
		t.Fatalf("want MissingHeader, got %v", err)
	}
}

func TestParseIntBoundsAndErrors(t *testing.T) {
	h := http.Header{}
	h.Set("X-Amz-Count", "42")
	n, ok, err := ParseInt(h, "X-Amz-Count", 0, 100)
	if err != nil || !ok || n != 42 {
		t.Fatalf("got (%d, %v, %v)", n, ok, err)
	}

	h.Set("X-Amz-Count", "not-a-number")
	if _, _, err := ParseInt(h, "X-Amz-Count", 0, 100); errCode(err) != s3errors.InvalidHeader {
		t.Fatalf("want InvalidHeader for non-numeric value, got %v", err)
	}

	h.Set("X-Amz-Count", "1000")
	if _, _, err := ParseInt(h, "X-Amz-Count", 0, 100); errCode(err) != s3errors.InvalidArgument {
		t.Fatalf("want InvalidArgument for out-of-range value, got %v", err)
	}
}

func TestEmitAndParseIntRoundTrip(t *testing.T) {
	h := http.Header{}
	EmitInt(h, "X-Amz-Count", 7)
	n, ok, err := ParseInt(h, "X-Amz-Count", 0, 10)
	if err != nil || !ok || n != 7 {
		t.Fatalf("round trip failed: (%d, %v, %v)", n, ok, err)
	}
}

func TestParseBoolVariants(t *testing.T) {
	h := http.Header{}
	h.Set("X-Amz-Flag", "TRUE")
	if v, ok, err := ParseBool(h, "X-Amz-Flag"); err != nil || !ok || !v {
		t.Fatalf("got (%v, %v, %v)", v, ok, err)
	}
	h.Set("X-Amz-Flag", "maybe")
	if _, _, err := ParseBool(h, "X-Amz-Flag"); errCode(err) != s3errors.InvalidHeader {
		t.Fatalf("want InvalidHeader for unrecognized bool, got %v", err)
	}
}

func TestEmitBool(t *testing.T) {
	h := http.Header{}
	EmitBool(h, "X-Amz-Flag", true)
	if h.Get("X-Amz-Flag") != "true" {
		t.Fatalf("got %q", h.Get("X-Amz-Flag"))
	}
	EmitBool(h, "X-Amz-Flag", false)
	if h.Get("X-Amz-Flag") != "false" {
		t.Fatalf("got %q", h.Get("X-Amz-Flag"))
	}
}

func TestHTTPDateRoundTrip(t *testing.T) {
	h := http.Header{}
	want := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	EmitHTTPDate(h, "If-Modified-Since", want)
	got, ok, err := ParseHTTPDate(h, "If-Modified-Since")
	if err != nil || !ok || !got.Equal(want) {
		t.Fatalf("got (%v, %v, %v)", got, ok, err)
	}
}

func TestISODateRoundTrip(t *testing.T) {
	h := http.Header{}
	want := time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC)
	EmitISODate(h, "X-Amz-Expiration", want)
	got, ok, err := ParseISODate(h, "X-Amz-Expiration")
	if err != nil || !ok || !got.Equal(want) {
		t.Fatalf("got (%v, %v, %v)", got, ok, err)
	}
}

func TestEnumParseCaseInsensitiveCanonicalizes(t *testing.T) {
	e := Enum{Canonical: []string{"STANDARD", "REDUCED_REDUNDANCY", "GLACIER"}}
	v, err := e.Parse("standard")
	if err != nil || v != "STANDARD" {
		t.Fatalf("got (%q, %v)", v, err)
	}
	if _, err := e.Parse("nonexistent"); errCode(err) != s3errors.InvalidArgument {
		t.Fatalf("want InvalidArgument for unknown enum value, got %v", err)
	}
}

func TestEnumEmitWritesCanonicalString(t *testing.T) {
	h := http.Header{}
	Emit(h, "X-Amz-Storage-Class", "GLACIER")
	if h.Get("X-Amz-Storage-Class") != "GLACIER" {
		t.Fatalf("got %q", h.Get("X-Amz-Storage-Class"))
	}
}

func TestListRoundTrip(t *testing.T) {
	h := http.Header{}
	EmitList(h, "X-Amz-Ids", []string{"a", "b", "c"})
	got, ok := ParseList(h, "X-Amz-Ids")
	if !ok {
		t.Fatal("expected list present")
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBase64RoundTrip(t *testing.T) {
	h := http.Header{}
	EmitBase64(h, "Content-MD5", []byte("hello"))
	got, ok, err := ParseBase64(h, "Content-MD5")
	if err != nil || !ok || string(got) != "hello" {
		t.Fatalf("got (%q, %v, %v)", got, ok, err)
	}
}

func TestParseBase64Invalid(t *testing.T) {
	h := http.Header{}
	h.Set("Content-MD5", "not valid base64!!")
	if _, _, err := ParseBase64(h, "Content-MD5"); errCode(err) != s3errors.InvalidHeader {
		t.Fatalf("want InvalidHeader, got %v", err)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	h := http.Header{}
	EmitMetadata(h, map[string]string{"owner": "alice", "project": "geckos3"})
	got := ParseMetadata(h)
	if got["owner"] != "alice" || got["project"] != "geckos3" {
		t.Fatalf("got %v", got)
	}
}

func TestParseMetadataIgnoresNonMetaHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "text/plain")
	h.Set("X-Amz-Meta-Key", "value")
	got := ParseMetadata(h)
	if len(got) != 1 || got["key"] != "value" {
		t.Fatalf("got %v", got)
	}
}
