package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *loggingResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// LoggingMiddleware emits one structured slog record per request,
// generalizing the teacher's JSON-line LogEntry into log/slog's
// key-value record shape (SPEC_FULL "Ambient Stack").
func LoggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		logger.Info("request",
			slog.String("request_id", rw.Header().Get("x-amz-request-id")),
			slog.String("method", r.Method),
			slog.String("uri", r.RequestURI),
			slog.Int("status", rw.statusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.Int64("bytes", rw.written),
			slog.String("client_ip", r.RemoteAddr),
		)
	})
}

// MaxClientsMiddleware limits concurrent in-flight operations with a
// buffered-channel semaphore, ported unchanged from the teacher's
// handler.go to protect file descriptor and goroutine limits under load.
func MaxClientsMiddleware(maxClients int) func(http.Handler) http.Handler {
	semaphore := make(chan struct{}, maxClients)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
				next.ServeHTTP(w, r)
			case <-r.Context().Done():
				http.Error(w, "request canceled", http.StatusServiceUnavailable)
			}
		})
	}
}

// CORSConfig controls which origins, methods, and headers
// CORSMiddleware advertises. A zero-value CORSConfig reproduces the
// teacher's original permissive behavior (allow every origin), since
// that matches geckos3's own default of wide-open credentials
// (see cmd/geckos3's access-key/secret-key flags).
type CORSConfig struct {
	// AllowedOrigins restricts Access-Control-Allow-Origin to this
	// list (exact match against the request's Origin header). An
	// empty list reflects whatever Origin the client sent, or "*"
	// if none was sent, same as the teacher's unconditional behavior.
	AllowedOrigins []string
	// AllowedMethods overrides the advertised method list. Empty
	// falls back to the teacher's fixed set.
	AllowedMethods []string
	// AllowedHeaders overrides the advertised request-header
	// allow-list. Empty falls back to the teacher's fixed set.
	AllowedHeaders []string
}

var (
	defaultCORSMethods = []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"}
	defaultCORSHeaders = []string{
		"Authorization", "Content-Type", "Content-Length", "X-Amz-Content-Sha256",
		"X-Amz-Date", "X-Amz-Security-Token", "X-Amz-User-Agent",
		"x-amz-acl", "x-amz-meta-*",
	}
)

// resolveOrigin returns the Access-Control-Allow-Origin value for a
// request, or "" if the origin isn't allowed and no header should be
// set. An empty AllowedOrigins list allows any origin.
func (c CORSConfig) resolveOrigin(requestOrigin string) string {
	if len(c.AllowedOrigins) == 0 {
		if requestOrigin == "" {
			return "*"
		}
		return requestOrigin
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == requestOrigin {
			return allowed
		}
	}
	return ""
}

// CORSMiddleware adds CORS headers so browser-based S3 clients
// (presigned uploads, JS SDKs) can talk to the server directly. Unlike
// the teacher's cors.go, the allowed origins/methods/headers are
// driven by CORSConfig rather than fixed, so a deployment can lock
// down Access-Control-Allow-Origin the way cmd/geckos3 lets data-dir,
// region, and credentials be configured instead of hard-coded.
func CORSMiddleware(cfg CORSConfig, next http.Handler) http.Handler {
	methods := cfg.AllowedMethods
	if len(methods) == 0 {
		methods = defaultCORSMethods
	}
	headers := cfg.AllowedHeaders
	if len(headers) == 0 {
		headers = defaultCORSHeaders
	}
	methodList := strings.Join(methods, ", ")
	headerList := strings.Join(headers, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := cfg.resolveOrigin(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", methodList)
		w.Header().Set("Access-Control-Allow-Headers", headerList)
		w.Header().Set("Access-Control-Expose-Headers",
			"ETag, x-amz-request-id, x-amz-meta-*")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
