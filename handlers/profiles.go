// ABOUTME: HTTP handlers for aircraft profile lookups
// ABOUTME: Lists known airframes and serves single profiles by type

package handlers

import (
	"fmt"
	"net/http"
	"strings"
)

// ListProfiles returns every airframe the planner can load, built-ins
// merged with any configured profile file.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profiles": h.registry.List(),
		"count":    h.registry.Count(),
	})
}

// GetProfile returns one airframe by its type designator, e.g. C-17A.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	acType := strings.TrimPrefix(r.URL.Path, "/api/v1/profiles/")
	if acType == "" || strings.Contains(acType, "/") {
		writeError(w, "Profile path must be /api/v1/profiles/{type}", http.StatusBadRequest)
		return
	}

	profile, ok := h.registry.Get(acType)
	if !ok {
		writeError(w, fmt.Sprintf("Unknown aircraft type %q", acType), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
