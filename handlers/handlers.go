// ABOUTME: HTTP handlers for airlift planner API endpoints
// ABOUTME: Holds shared handler state and JSON response helpers

package handlers

import (
	"encoding/json"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/twaldron/airlift-planner/cache"
	"github.com/twaldron/airlift-planner/config"
	"github.com/twaldron/airlift-planner/models"
	"github.com/twaldron/airlift-planner/profiles"
	"github.com/twaldron/airlift-planner/solver"
)

type Handler struct {
	cfg      *config.Config
	registry *profiles.Registry
	cache    *cache.ResultCache
	solver   *solver.Solver
	solves   singleflight.Group
}

// NewHandler wires the handler set. cfg and resultCache may be nil in
// tests; the solver then runs with default planning factors and caching
// is skipped.
func NewHandler(cfg *config.Config, registry *profiles.Registry, resultCache *cache.ResultCache) *Handler {
	opts := solver.DefaultOptions()
	if cfg != nil {
		opts.PaxWeightLb = cfg.PaxWeightLb
		opts.CandidateStepIn = cfg.CandidateStepIn
		opts.PalletClearanceIn = cfg.PalletClearanceIn
		opts.MaxAircraftPerPhase = cfg.MaxAircraftPerPhase
	}

	return &Handler{
		cfg:      cfg,
		registry: registry,
		cache:    resultCache,
		solver:   solver.NewSolver(opts),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
