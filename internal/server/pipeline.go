// Package server implements the seven-state request pipeline from spec
// section 4.8: Received -> Authenticated -> Routed -> Decoded ->
// Invoked -> Encoded -> Sent, with Failed short-circuiting straight to
// Encoded/Sent at whichever state raised the error.
package server

import (
	"log/slog"
	"net/http"

	"github.com/geckos3/geckos3/internal/httpio"
	"github.com/geckos3/geckos3/internal/query"
	"github.com/geckos3/geckos3/internal/router"
	"github.com/geckos3/geckos3/internal/s3errors"
	"github.com/geckos3/geckos3/internal/s3path"
	"github.com/geckos3/geckos3/internal/s3service"
	"github.com/geckos3/geckos3/internal/sigv4"
)

// Pipeline wires the framework's stages to a host-supplied Service. It
// is safe for concurrent use: net/http already gives goroutine-per-
// request, and Pipeline holds no per-request mutable state of its own.
type Pipeline struct {
	Service        s3service.Service
	Verifier       *sigv4.Verifier
	PathClassifier *s3path.Classifier
	Logger         *slog.Logger
}

// New builds a Pipeline for the given service domain (used by the path
// classifier to recognize virtual-hosted bucket addressing).
func New(svc s3service.Service, verifier *sigv4.Verifier, serviceDomain string, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Service:        svc,
		Verifier:       verifier,
		PathClassifier: s3path.New(serviceDomain),
		Logger:         logger,
	}
}

func (p *Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := httpio.NewRequestID()
	rw := httpio.NewResponseWriter(w, r.Method, requestID)
	resource := r.URL.Path

	// Received -> Authenticated
	verified, err := p.Verifier.Verify(r)
	if err != nil {
		p.fail(rw, resource, requestID, "", err)
		return
	}
	defer verified.Reader.Close()

	// Authenticated -> Routed
	path, err := p.PathClassifier.Classify(r.Host, r.URL.Path)
	if err != nil {
		p.fail(rw, resource, requestID, "", err)
		return
	}
	q := query.Parse(r.URL.RawQuery)
	decision, err := router.Route(r.Method, path, q, r.Header)
	if err != nil {
		p.fail(rw, resource, requestID, string(decision.Operation), err)
		return
	}

	// Routed -> Decoded -> Invoked -> Encoded -> Sent
	ctx := r.Context()
	req := &httpio.Request{
		Raw:       r,
		RequestID: requestID,
		Path:      path,
		Query:     q,
		Body:      verified,
	}
	if err := p.dispatch(ctx, decision, req, rw); err != nil {
		p.fail(rw, resource, requestID, string(decision.Operation), err)
		return
	}
}

func (p *Pipeline) fail(rw *httpio.ResponseWriter, resource, requestID, operation string, err error) {
	se := s3errors.Wrap(err)
	p.Logger.Warn("request failed",
		slog.String("request_id", requestID),
		slog.String("operation", operation),
		slog.String("error_code", string(se.Code)),
		slog.Int("status", se.HTTPStatus()),
	)
	rw.WriteError(resource, se)
}

func writeNoContent(rw *httpio.ResponseWriter, status int) {
	rw.WriteStatus(status)
}

func badRequest(msg string) error {
	return s3errors.New(s3errors.InvalidRequest, msg)
}
