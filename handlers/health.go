// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports service status, profile count, and cache occupancy

package handlers

import "net/http"

// Health returns API health status including registry and cache state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":   "ok",
		"profiles": 0,
	}

	if h.registry != nil {
		resp["profiles"] = h.registry.Count()
	}
	if h.cache != nil {
		hits, misses := h.cache.Stats()
		resp["cached_results"] = h.cache.Len()
		resp["cache_hits"] = hits
		resp["cache_misses"] = misses
	}

	writeJSON(w, http.StatusOK, resp)
}
