package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEnableCORS(t *testing.T) {
	rec := httptest.NewRecorder()
	enableCORS(rec)
	checkCORS(t, rec.Header())
}

func TestCORSMiddlewarePassthrough(t *testing.T) {
	// Headers must be present whatever status the inner handler picks.
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	corsMiddleware(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	checkCORS(t, rec.Header())
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	corsMiddleware(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/anything", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if called {
		t.Error("preflight request reached the inner handler")
	}
	checkCORS(t, rec.Header())
}
