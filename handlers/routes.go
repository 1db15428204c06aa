// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
// Solver-backed routes are marked Heavy and get the stricter rate tier.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
	Heavy   bool             // true for endpoints that run the solver
}

// Routes returns all API routes for registration. Paths ending in "/"
// are subtree matches; everything else is exact.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Status
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Aircraft profiles
		{Method: http.MethodGet, Path: "/api/v1/profiles", Handler: h.ListProfiles},
		{Method: http.MethodGet, Path: "/api/v1/profiles/", Handler: h.GetProfile},

		// Allocation
		{Method: http.MethodPost, Path: "/api/v1/allocate", Handler: h.Allocate, Heavy: true},
		{Method: http.MethodPost, Path: "/api/v1/allocate/compare", Handler: h.Compare, Heavy: true},

		// Manifest import
		{Method: http.MethodPost, Path: "/api/v1/manifest/import", Handler: h.ImportManifest},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
