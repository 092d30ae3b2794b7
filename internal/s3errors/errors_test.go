package s3errors

import (
	"net/http"
	"strings"
	"testing"
)

func TestNewFillsDefaultMessageFromCode(t *testing.T) {
	err := New(NoSuchBucket, "")
	if err.Message != string(NoSuchBucket) {
		t.Fatalf("got %q", err.Message)
	}
}

func TestErrorStringIncludesMessageWhenPresent(t *testing.T) {
	err := New(NoSuchKey, "the object was not found")
	if err.Error() != "NoSuchKey: the object was not found" {
		t.Fatalf("got %q", err.Error())
	}
}

func TestWrapPassesThroughExistingError(t *testing.T) {
	original := New(BucketNotEmpty, "still has objects")
	if Wrap(original) != original {
		t.Fatal("Wrap should return the same *Error unchanged")
	}
}

func TestWrapClassifiesPlainErrorAsInternalError(t *testing.T) {
	wrapped := Wrap(&plainError{"disk full"})
	if wrapped.Code != InternalError {
		t.Fatalf("want InternalError, got %v", wrapped.Code)
	}
	if wrapped.Message != "disk full" {
		t.Fatalf("got %q", wrapped.Message)
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Fatal("Wrap(nil) should return nil")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[Code]int{
		NoSuchBucket:          http.StatusNotFound,
		SignatureDoesNotMatch: http.StatusForbidden,
		MethodNotAllowed:      http.StatusMethodNotAllowed,
		PreconditionFailed:    http.StatusPreconditionFailed,
		NotModified:           http.StatusNotModified,
	}
	for code, want := range cases {
		if got := New(code, "").HTTPStatus(); got != want {
			t.Errorf("%s: got %d, want %d", code, got, want)
		}
	}
}

func TestHTTPStatusOverrideWins(t *testing.T) {
	err := New(InternalError, "boom")
	err.HTTPStatusOverride = http.StatusTeapot
	if err.HTTPStatus() != http.StatusTeapot {
		t.Fatalf("got %d", err.HTTPStatus())
	}
}

func TestHTTPStatusUnknownCodeFallsBackToInternalError(t *testing.T) {
	err := &Error{Code: "SomethingMadeUp"}
	if err.HTTPStatus() != http.StatusInternalServerError {
		t.Fatalf("got %d", err.HTTPStatus())
	}
}

func TestEncodeXMLProducesCanonicalDocument(t *testing.T) {
	err := New(NoSuchKey, "The specified key does not exist.")
	out, encErr := err.EncodeXML("/bucket/key", "req-123")
	if encErr != nil {
		t.Fatalf("unexpected error: %v", encErr)
	}
	doc := string(out)
	for _, want := range []string{
		"<Code>NoSuchKey</Code>",
		"<Message>The specified key does not exist.</Message>",
		"<Resource>/bucket/key</Resource>",
		"<RequestId>req-123</RequestId>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("expected document to contain %q, got %q", want, doc)
		}
	}
}

type plainError struct{ msg string }

func (e *plainError) Error() string { return e.msg }
