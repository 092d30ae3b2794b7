// Package s3errors defines the closed S3 error taxonomy the framework
// surfaces at the HTTP boundary, along with the XML error document and
// HTTP status mapping described in spec section 4.9 and 7.
package s3errors

import (
	"encoding/xml"
	"fmt"
	"net/http"
)

// Code is one variant of the closed S3 error taxonomy.
type Code string

const (
	// Protocol parsing
	InvalidURI                Code = "InvalidURI"
	InvalidBucketName          Code = "InvalidBucketName"
	InvalidRequest             Code = "InvalidRequest"
	MalformedXML               Code = "MalformedXML"
	MissingContentLength       Code = "MissingContentLength"
	InvalidArgument            Code = "InvalidArgument"
	InvalidHeader              Code = "InvalidHeader"
	MissingRequiredParameter   Code = "MissingRequiredParameter"
	MissingHeader              Code = "MissingHeader"
	DuplicateField             Code = "DuplicateField"
	MissingField               Code = "MissingField"
	XAmzContentSHA256Mismatch  Code = "XAmzContentSHA256Mismatch"
	BadDigest                  Code = "BadDigest"

	// Authentication
	SignatureDoesNotMatch Code = "SignatureDoesNotMatch"
	InvalidAccessKeyId    Code = "InvalidAccessKeyId"
	RequestTimeTooSkewed  Code = "RequestTimeTooSkewed"
	AccessDenied          Code = "AccessDenied"

	// Routing
	MethodNotAllowed Code = "MethodNotAllowed"
	NotImplemented   Code = "NotImplemented"

	// Semantic (raised by the host service, passed through unchanged)
	NoSuchBucket        Code = "NoSuchBucket"
	NoSuchKey           Code = "NoSuchKey"
	NoSuchUpload        Code = "NoSuchUpload"
	NoSuchVersion       Code = "NoSuchVersion"
	BucketAlreadyExists Code = "BucketAlreadyExists"
	BucketAlreadyOwnedByYou Code = "BucketAlreadyOwnedByYou"
	BucketNotEmpty      Code = "BucketNotEmpty"
	EntityTooSmall      Code = "EntityTooSmall"
	EntityTooLarge      Code = "EntityTooLarge"
	InvalidPart         Code = "InvalidPart"
	InvalidPartOrder    Code = "InvalidPartOrder"
	PreconditionFailed  Code = "PreconditionFailed"
	NotModified         Code = "NotModified"
	InternalError       Code = "InternalError"
)

// statusByCode maps each closed error code to its canonical HTTP status.
// NotModified carries no body per HTTP semantics; callers must special-case it.
var statusByCode = map[Code]int{
	InvalidURI:                 http.StatusBadRequest,
	InvalidBucketName:          http.StatusBadRequest,
	InvalidRequest:             http.StatusBadRequest,
	MalformedXML:               http.StatusBadRequest,
	MissingContentLength:       http.StatusLengthRequired,
	InvalidArgument:            http.StatusBadRequest,
	InvalidHeader:              http.StatusBadRequest,
	MissingRequiredParameter:   http.StatusBadRequest,
	MissingHeader:              http.StatusBadRequest,
	DuplicateField:             http.StatusBadRequest,
	MissingField:               http.StatusBadRequest,
	XAmzContentSHA256Mismatch:  http.StatusBadRequest,
	BadDigest:                  http.StatusBadRequest,

	SignatureDoesNotMatch: http.StatusForbidden,
	InvalidAccessKeyId:    http.StatusForbidden,
	RequestTimeTooSkewed:  http.StatusForbidden,
	AccessDenied:          http.StatusForbidden,

	MethodNotAllowed: http.StatusMethodNotAllowed,
	NotImplemented:   http.StatusNotImplemented,

	NoSuchBucket:            http.StatusNotFound,
	NoSuchKey:                http.StatusNotFound,
	NoSuchUpload:             http.StatusNotFound,
	NoSuchVersion:            http.StatusNotFound,
	BucketAlreadyExists:      http.StatusConflict,
	BucketAlreadyOwnedByYou:  http.StatusConflict,
	BucketNotEmpty:           http.StatusConflict,
	EntityTooSmall:           http.StatusBadRequest,
	EntityTooLarge:           http.StatusBadRequest,
	InvalidPart:              http.StatusBadRequest,
	InvalidPartOrder:         http.StatusBadRequest,
	PreconditionFailed:       http.StatusPreconditionFailed,
	NotModified:              http.StatusNotModified,
	InternalError:            http.StatusInternalServerError,
}

// Error is the S3 error value from spec section 3: a code, optional
// message/resource/request id, and an optional status override for the
// rare operation that needs to deviate from the code's canonical status.
type Error struct {
	Code                Code
	Message             string
	Resource            string
	RequestID           string
	HTTPStatusOverride  int
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return string(e.Code)
}

// New builds an Error with the given message; an empty message is
// replaced by the code name.
func New(code Code, message string) *Error {
	if message == "" {
		message = string(code)
	}
	return &Error{Code: code, Message: message}
}

// Wrap wraps an arbitrary error as InternalError, preserving its text as
// the message. Used at component boundaries that can't classify the
// failure into a taxonomy code (disk I/O, etc).
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*Error); ok {
		return se
	}
	return New(InternalError, err.Error())
}

// HTTPStatus returns the canonical HTTP status for e, honoring any override.
func (e *Error) HTTPStatus() int {
	if e.HTTPStatusOverride != 0 {
		return e.HTTPStatusOverride
	}
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// xmlDocument is the wire shape of an S3 <Error> document (spec section 6).
type xmlDocument struct {
	XMLName   xml.Name `xml:"Error"`
	Code      string   `xml:"Code"`
	Message   string   `xml:"Message,omitempty"`
	Resource  string   `xml:"Resource,omitempty"`
	RequestID string   `xml:"RequestId,omitempty"`
}

// EncodeXML renders e as the canonical S3 error XML document, prefixed
// with the XML declaration, with resource/request-id filled in.
func (e *Error) EncodeXML(resource, requestID string) ([]byte, error) {
	doc := xmlDocument{
		Code:      string(e.Code),
		Message:   e.Message,
		Resource:  resource,
		RequestID: requestID,
	}
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
