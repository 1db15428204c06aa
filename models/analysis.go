// ABOUTME: Load-factor analysis identifying what limits each aircraft
// ABOUTME: Ranks payload, position, floor, and seat utilization per plan

package models

import (
	"fmt"
	"sort"
)

// Limiting factors an aircraft load can run into.
const (
	LimitPayload   = "payload_weight"
	LimitPositions = "pallet_positions"
	LimitFloor     = "floor_space"
	LimitSeats     = "seats"
	LimitBalanced  = "balanced"
)

// FactorUtilization is one capacity dimension with its utilization.
type FactorUtilization struct {
	Factor  string  `json:"factor"`
	UtilPct float64 `json:"util_pct"`
}

// LimitReport identifies the binding constraint for one aircraft load.
type LimitReport struct {
	LimitingFactor string              `json:"limiting_factor"`
	Severity       string              `json:"severity"` // info, warning, critical
	Detail         string              `json:"detail"`
	Utilizations   []FactorUtilization `json:"utilizations"`
}

// AnalyzeLimits ranks the capacity dimensions of a load plan and names
// the one closest to its ceiling. A plan with all dimensions under 60%
// is reported as balanced.
func AnalyzeLimits(plan AircraftLoadPlan) LimitReport {
	p := plan.Profile

	factors := []FactorUtilization{
		{Factor: LimitPayload, UtilPct: plan.PayloadUtilPct},
	}
	if p.PalletPositions > 0 {
		factors = append(factors, FactorUtilization{
			Factor:  LimitPositions,
			UtilPct: pct(float64(plan.PositionsUsed), float64(p.PalletPositions)),
		})
	}
	if p.BayLengthIn > 0 {
		floorUsed := 0.0
		for _, v := range plan.Vehicles {
			floorUsed += v.EndIn - v.StartIn
		}
		for _, pp := range plan.Pallets {
			floorUsed += pp.EndIn - pp.StartIn
		}
		// Two-lane bays carry floor length per lane.
		lanes := len(p.PalletLanes)
		if lanes < 1 {
			lanes = 1
		}
		factors = append(factors, FactorUtilization{
			Factor:  LimitFloor,
			UtilPct: pct(floorUsed, p.BayLengthIn*float64(lanes)),
		})
	}
	if p.SeatCapacity > 0 {
		factors = append(factors, FactorUtilization{
			Factor:  LimitSeats,
			UtilPct: plan.SeatUtilPct,
		})
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].UtilPct > factors[j].UtilPct
	})

	top := factors[0]
	report := LimitReport{
		LimitingFactor: top.Factor,
		Utilizations:   factors,
	}

	switch {
	case top.UtilPct >= 95:
		report.Severity = SeverityCritical
	case top.UtilPct >= 85:
		report.Severity = SeverityWarning
	default:
		report.Severity = SeverityInfo
	}

	if top.UtilPct < 60 {
		report.LimitingFactor = LimitBalanced
		report.Detail = "no capacity dimension above 60% utilization"
		return report
	}

	report.Detail = fmt.Sprintf("%s at %.1f%% utilization", top.Factor, top.UtilPct)
	return report
}

func pct(used, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return used / total * 100
}
