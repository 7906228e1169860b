package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	Register(router, NewAPI(router, "test"))
	return router
}

func TestRegisterMountsGreeting(t *testing.T) {
	router := newTestRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body["message"] != "Hello DevOps World!" || body["version"] != "1.0.0" {
		t.Fatalf("unexpected greeting body %v", body)
	}
	if _, ok := body["$schema"]; ok {
		t.Fatalf("expected no $schema link in body, got %v", body)
	}
}

func TestRegisterMountsHealth(t *testing.T) {
	router := newTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(method, "/health", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s /health: expected 200, got %d", method, resp.Code)
		}
	}
}

func TestNewAPIServesDocsAndSpec(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{DocsPath, "/openapi.json"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestNewAPIAdvertisesCBOR(t *testing.T) {
	router := chi.NewRouter()
	api := NewAPI(router, "test")
	Register(router, api)

	op := api.OpenAPI().Paths["/"].Get
	resp, ok := op.Responses["200"]
	if !ok {
		t.Fatalf("expected 200 response, got %v", op.Responses)
	}
	if _, ok := resp.Content["application/cbor"]; !ok {
		t.Fatalf("expected application/cbor content, got %v", resp.Content)
	}
	if api.OpenAPI().Info.Version != "test" {
		t.Fatalf("expected version test, got %s", api.OpenAPI().Info.Version)
	}
}
