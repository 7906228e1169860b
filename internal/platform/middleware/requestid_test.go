package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func TestRequestIDGeneratesUUID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = chimiddleware.GetReqID(r.Context())
	}))

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected UUID request ID, got %q", seen)
	}
	if got := resp.Header().Get(chimiddleware.RequestIDHeader); got != seen {
		t.Fatalf("expected response header %q, got %q", seen, got)
	}
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = chimiddleware.GetReqID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "client-id-1")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if seen != "client-id-1" {
		t.Fatalf("expected client ID to be reused, got %q", seen)
	}
}

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"empty", "", false},
		{"simple", "abc-123", true},
		{"spaces allowed", "a b", true},
		{"max length", strings.Repeat("a", maxRequestIDLength), true},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"newline", "abc\ndef", false},
		{"tab", "abc\tdef", false},
		{"delete char", "abc\x7f", false},
		{"non-ascii", "abcé", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validRequestID(tt.id); got != tt.want {
				t.Fatalf("validRequestID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
