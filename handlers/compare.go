// ABOUTME: Fleet comparison endpoint evaluating several fleet mixes at once
// ABOUTME: Solves options concurrently and ranks them against a baseline

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/twaldron/airlift-planner/models"
)

// Compare solves the same manifest against each candidate fleet option.
// The first option is the baseline for the delta columns.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CompareRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	available := h.registry.Map()
	results := make([]*models.AllocationResult, len(req.Options))

	g, _ := errgroup.WithContext(r.Context())
	for i, opt := range req.Options {
		g.Go(func() error {
			res, err := h.solver.Allocate(req.Manifest, opt.Fleet, available)
			if err != nil {
				return fmt.Errorf("option %s: %w", opt.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, buildComparison(req.Options, results))
}

// buildComparison assembles entries and picks the best feasible option,
// fewest aircraft winning. Earlier options win ties.
func buildComparison(options []models.FleetOption, results []*models.AllocationResult) models.CompareResponse {
	base := results[0]

	entries := make([]models.ComparisonEntry, len(results))
	best := ""
	bestAircraft := 0
	for i, res := range results {
		entries[i] = models.ComparisonEntry{
			Name:                  options[i].Name,
			Result:                *res,
			DeltaAircraft:         res.TotalAircraft - base.TotalAircraft,
			DeltaUnloadedWeightLb: unloadedWeightLb(res) - unloadedWeightLb(base),
		}
		if res.Feasible && (best == "" || res.TotalAircraft < bestAircraft) {
			best = options[i].Name
			bestAircraft = res.TotalAircraft
		}
	}

	return models.CompareResponse{Entries: entries, Best: best}
}

func unloadedWeightLb(res *models.AllocationResult) float64 {
	if res.Shortfall == nil {
		return 0
	}
	return res.Shortfall.UnloadedWeightLb
}
