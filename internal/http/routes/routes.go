// Package routes assembles the Huma API and mounts every endpoint.
package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/hello-devops/internal/http/greeting"
	"github.com/janisto/hello-devops/internal/http/health"
)

// DocsPath serves the interactive API reference.
const DocsPath = "/api-docs"

// NewAPI creates the Huma API on router with OpenAPI docs and JSON plus CBOR
// content negotiation.
func NewAPI(router chi.Router, version string) huma.API {
	cfg := huma.DefaultConfig("Hello DevOps API", version)
	cfg.DocsPath = DocsPath
	// Drop the $schema link transformer so response bodies carry only their
	// documented fields.
	cfg.CreateHooks = nil
	api := humachi.New(router, cfg)

	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
	return api
}

// Register mounts the health probe on router and the greeting operation on api.
func Register(router chi.Router, api huma.API) {
	router.Get("/health", health.Handler)
	router.Head("/health", health.Handler)
	greeting.Register(api)
}
