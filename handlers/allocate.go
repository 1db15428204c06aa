// ABOUTME: Solve endpoint turning allocation requests into load plans
// ABOUTME: Caches results by request digest and collapses duplicate solves

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/twaldron/airlift-planner/cache"
	"github.com/twaldron/airlift-planner/models"
)

// maxRequestBytes caps JSON request bodies. Spreadsheet uploads have
// their own, larger limit on the import endpoint.
const maxRequestBytes = 1 << 20

// Allocate solves one manifest against a finite fleet or a single
// unbounded aircraft type.
func (h *Handler) Allocate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.AllocationRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	key, keyErr := cache.RequestKey("solve", req)
	if keyErr == nil && h.cache != nil {
		if cached, found := h.cache.Get(key); found {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	// Identical concurrent requests collapse into one solver run.
	v, err, _ := h.solves.Do(key, func() (interface{}, error) {
		return h.solve(req)
	})
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	result := v.(*models.AllocationResult)

	if keyErr == nil && h.cache != nil {
		h.cache.Set(key, result)
	}

	slog.Info("Allocation solved",
		"aircraft", result.TotalAircraft,
		"feasible", result.Feasible,
		"unloaded_items", len(result.UnloadedItems),
	)
	writeJSON(w, http.StatusOK, result)
}

// solve dispatches to single-type or fleet mode.
func (h *Handler) solve(req models.AllocationRequest) (*models.AllocationResult, error) {
	available := h.registry.Map()
	if req.AircraftType != "" {
		return h.solver.AllocateSingleType(req.Manifest, req.AircraftType, available)
	}
	return h.solver.Allocate(req.Manifest, req.Fleet, available)
}
