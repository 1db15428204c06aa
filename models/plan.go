// ABOUTME: Load plan and allocation result models, the solver's outputs
// ABOUTME: One plan per aircraft plus fleet-level totals, warnings, and shortfall

package models

import "time"

// Warning severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// AircraftLoadPlan is one aircraft's complete assignment. Immutable once
// produced; the unit of output consumed by UI and export layers.
type AircraftLoadPlan struct {
	ID                string             `json:"id"`
	AircraftType      string             `json:"aircraft_type"`
	Label             string             `json:"label"` // e.g. "C-17A #2 (MAIN)"
	Phase             string             `json:"phase"`
	Sequence          int                `json:"sequence"` // 1-based within phase
	Profile           AircraftProfile    `json:"profile"`  // snapshot of the reference data used
	Pallets           []PalletPlacement  `json:"pallets"`
	Vehicles          []VehiclePlacement `json:"vehicles"`
	Passengers        int                `json:"passengers"` // actually boarded
	CargoWeightLb     float64            `json:"cargo_weight_lb"`
	PassengerWeightLb float64            `json:"passenger_weight_lb"`
	TotalWeightLb     float64            `json:"total_weight_lb"`
	Balance           BalanceReport      `json:"balance"`
	PayloadUtilPct    float64            `json:"payload_util_pct"`
	PositionsUsed     int                `json:"positions_used"`
	PositionsTotal    int                `json:"positions_total"`
	SeatUtilPct       float64            `json:"seat_util_pct"`
	Limits            LimitReport        `json:"limits"`
}

// PlacedItemCount counts cargo lines riding on this aircraft, counting
// every item inside each pallet.
func (p AircraftLoadPlan) PlacedItemCount() int {
	count := len(p.Vehicles)
	for _, pp := range p.Pallets {
		count += len(pp.Pallet.Items)
	}
	return count
}

// HasCargoOrPax reports whether the plan carries anything at all.
func (p AircraftLoadPlan) HasCargoOrPax() bool {
	return len(p.Pallets) > 0 || len(p.Vehicles) > 0 || p.Passengers > 0
}

// UnloadedItem is a manifest line that could not be placed, with the reason.
type UnloadedItem struct {
	Item   CargoItem `json:"item"`
	Reason string    `json:"reason"`
}

// AllocationWarning is a human-readable diagnostic attached to a result.
type AllocationWarning struct {
	Severity string `json:"severity"` // info, warning, critical
	Message  string `json:"message"`
}

// FleetEntry describes availability of one aircraft type in the request.
// Locked entries are held back from automatic allocation.
type FleetEntry struct {
	Type      string `json:"type"`
	Available int    `json:"available"`
	Locked    bool   `json:"locked"`
	Preferred bool   `json:"preferred"`
}

// FleetUsage reports how many airframes of one type a solve consumed.
type FleetUsage struct {
	Type      string `json:"type"`
	Used      int    `json:"used"`
	Available int    `json:"available"`
}

// Shortfall summarizes everything that could not be lifted.
type Shortfall struct {
	UnloadedWeightLb float64 `json:"unloaded_weight_lb"`
	Pallets          int     `json:"pallets"`
	RollingStock     int     `json:"rolling_stock"`
	Passengers       int     `json:"passengers"`
	Reason           string  `json:"reason"`
}

// AllocationResult is the aggregate outcome of one solver invocation.
// Read-only once produced.
type AllocationResult struct {
	ID                string                `json:"id"`
	GeneratedAt       time.Time             `json:"generated_at"`
	Aircraft          []AircraftLoadPlan    `json:"aircraft"`
	TotalAircraft     int                   `json:"total_aircraft"`
	AdvonAircraft     int                   `json:"advon_aircraft"`
	MainAircraft      int                   `json:"main_aircraft"`
	TotalWeightLb     float64               `json:"total_weight_lb"`
	TotalPallets      int                   `json:"total_pallets"`
	TotalRollingStock int                   `json:"total_rolling_stock"`
	TotalPassengers   int                   `json:"total_passengers"`
	UnloadedItems     []UnloadedItem        `json:"unloaded_items"`
	UnloadedPax       int                   `json:"unloaded_pax"`
	Warnings          []AllocationWarning   `json:"warnings"`
	Feasible          bool                  `json:"feasible"`
	FleetUsage        []FleetUsage          `json:"fleet_usage,omitempty"`
	Shortfall         *Shortfall            `json:"shortfall,omitempty"`
	Recommendations   []FleetRecommendation `json:"recommendations,omitempty"`
}

// AddWarning appends a diagnostic to the result.
func (r *AllocationResult) AddWarning(severity, message string) {
	r.Warnings = append(r.Warnings, AllocationWarning{Severity: severity, Message: message})
}

// PlacedWeightLb sums cargo item weights across all plans, excluding
// platform tare and passenger planning weight. Together with the
// unloaded list it accounts for every input pound.
func (r AllocationResult) PlacedWeightLb() float64 {
	total := 0.0
	for _, plan := range r.Aircraft {
		for _, v := range plan.Vehicles {
			total += v.Item.WeightLb
		}
		for _, pp := range plan.Pallets {
			total += pp.Pallet.ItemWeightLb()
		}
	}
	return total
}
