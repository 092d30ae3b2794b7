package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func passthrough() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddlewareDefaultReflectsAnyOrigin(t *testing.T) {
	h := CORSMiddleware(CORSConfig{}, passthrough())

	req := httptest.NewRequest(http.MethodGet, "/bucket/key", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Fatalf("want reflected origin, got %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("missing Access-Control-Allow-Methods")
	}
	if rec.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("missing Access-Control-Allow-Headers")
	}
}

func TestCORSMiddlewareDefaultFallsBackToWildcardWithNoOrigin(t *testing.T) {
	h := CORSMiddleware(CORSConfig{}, passthrough())

	req := httptest.NewRequest(http.MethodGet, "/bucket/key", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("want *, got %q", got)
	}
}

func TestCORSMiddlewareHandlesPreflight(t *testing.T) {
	h := CORSMiddleware(CORSConfig{}, passthrough())

	req := httptest.NewRequest(http.MethodOptions, "/bucket/key", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200 on preflight, got %d", rec.Code)
	}
}

func TestCORSMiddlewareAllowListRejectsUnlistedOrigin(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"https://allowed.example.com"}}
	h := CORSMiddleware(cfg, passthrough())

	req := httptest.NewRequest(http.MethodGet, "/bucket/key", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("want no CORS header for a disallowed origin, got %q", got)
	}
}

func TestCORSMiddlewareAllowListAcceptsConfiguredOrigin(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"https://allowed.example.com"}}
	h := CORSMiddleware(cfg, passthrough())

	req := httptest.NewRequest(http.MethodGet, "/bucket/key", nil)
	req.Header.Set("Origin", "https://allowed.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://allowed.example.com" {
		t.Fatalf("want configured origin echoed back, got %q", got)
	}
}

func TestCORSMiddlewareCustomMethodsAndHeaders(t *testing.T) {
	cfg := CORSConfig{
		AllowedMethods: []string{"GET", "HEAD"},
		AllowedHeaders: []string{"Authorization"},
	}
	h := CORSMiddleware(cfg, passthrough())

	req := httptest.NewRequest(http.MethodGet, "/bucket/key", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, HEAD" {
		t.Fatalf("want custom method list, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Authorization" {
		t.Fatalf("want custom header list, got %q", got)
	}
}
