// Package httpio adapts net/http's request/response types into the
// envelope the rest of the framework consumes: a decoded S3Path, parsed
// query string, verified body reader, and a response writer that knows
// how to render both successful outputs and s3errors.Error values
// (component C1).
package httpio

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/geckos3/geckos3/internal/query"
	"github.com/geckos3/geckos3/internal/s3errors"
	"github.com/geckos3/geckos3/internal/s3path"
	"github.com/geckos3/geckos3/internal/sigv4"
)

// Request is the envelope threaded through the pipeline stages: the raw
// net/http request plus everything derived from it so far.
type Request struct {
	Raw       *http.Request
	RequestID string
	Path      s3path.Path
	Query     query.OrderedQs
	Body      *sigv4.VerifiedBody
	AccessKey string
}

// NewRequestID returns a fresh UUIDv4 request id, used both for
// response correlation (x-amz-request-id) and structured logging.
func NewRequestID() string {
	return uuid.NewString()
}

// ResponseWriter wraps http.ResponseWriter with the conventions S3
// responses share: the request-id header, HEAD body suppression, and
// rendering an s3errors.Error as the canonical <Error> document.
type ResponseWriter struct {
	w         http.ResponseWriter
	method    string
	requestID string
	wroteHead bool
}

func NewResponseWriter(w http.ResponseWriter, method, requestID string) *ResponseWriter {
	w.Header().Set("x-amz-request-id", requestID)
	return &ResponseWriter{w: w, method: method, requestID: requestID}
}

func (rw *ResponseWriter) Header() http.Header {
	return rw.w.Header()
}

// WriteStatus writes the status line and headers only; body writes
// that follow are suppressed for HEAD requests (spec section 4.9).
func (rw *ResponseWriter) WriteStatus(status int) {
	rw.wroteHead = true
	rw.w.WriteHeader(status)
}

func (rw *ResponseWriter) Write(p []byte) (int, error) {
	if !rw.wroteHead {
		rw.WriteStatus(http.StatusOK)
	}
	if rw.method == http.MethodHead {
		return len(p), nil
	}
	return rw.w.Write(p)
}

// WriteError renders an s3errors.Error as the canonical XML error
// document at its mapped HTTP status, honoring HEAD body suppression.
func (rw *ResponseWriter) WriteError(resource string, err *s3errors.Error) {
	body, encErr := err.EncodeXML(resource, rw.requestID)
	rw.Header().Set("Content-Type", "application/xml")
	rw.WriteStatus(err.HTTPStatus())
	if encErr != nil || rw.method == http.MethodHead {
		return
	}
	_, _ = rw.w.Write(body)
}
