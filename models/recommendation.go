// ABOUTME: Fleet recommendations for allocation shortfalls
// ABOUTME: Generates actionable planner suggestions from a finished solve

package models

import (
	"fmt"
	"math"
	"sort"
)

// RecommendationType defines the type of planner recommendation
type RecommendationType string

const (
	RecommendationAddAircraft  RecommendationType = "add_aircraft"
	RecommendationRouteOutsize RecommendationType = "route_outsize"
	RecommendationSurfaceMove  RecommendationType = "surface_move"
	RecommendationPaxLift      RecommendationType = "pax_lift"
	RecommendationConsolidate  RecommendationType = "consolidate"
)

// FleetRecommendation represents one actionable planner suggestion
type FleetRecommendation struct {
	Type           RecommendationType `json:"type"`
	Priority       int                `json:"priority"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Impact         string             `json:"impact"`
	ImpactLevel    string             `json:"impact_level"`
	AircraftType   string             `json:"aircraft_type,omitempty"`
	AircraftToAdd  int                `json:"aircraft_to_add,omitempty"`
	ItemsAffected  int                `json:"items_affected,omitempty"`
	PaxAffected    int                `json:"pax_affected,omitempty"`
}

// GenerateAddAircraftRecommendation sizes the extra lift needed to cover
// a weight shortfall using the largest-payload profile available
func GenerateAddAircraftRecommendation(result AllocationResult, profiles []AircraftProfile) *FleetRecommendation {
	if result.Shortfall == nil || result.Shortfall.UnloadedWeightLb <= 0 {
		return nil
	}
	best := largestPayloadProfile(profiles)
	if best == nil {
		return nil
	}

	count := int(math.Ceil(result.Shortfall.UnloadedWeightLb / best.MaxPayloadLb))
	if count < 1 {
		count = 1
	}

	return &FleetRecommendation{
		Type:          RecommendationAddAircraft,
		Priority:      1,
		Title:         "Add Aircraft",
		Description:   fmt.Sprintf("Add %d %s sortie(s) to cover the remaining cargo", count, best.Type),
		Impact:        fmt.Sprintf("Lifts up to %.0f lb of the %.0f lb shortfall", float64(count)*best.MaxPayloadLb, result.Shortfall.UnloadedWeightLb),
		ImpactLevel:   "high",
		AircraftType:  best.Type,
		AircraftToAdd: count,
	}
}

// GenerateOutsizeRecommendations finds unloaded rolling stock that
// physically fits a different available type, or flags items that no
// profile can carry at all
func GenerateOutsizeRecommendations(result AllocationResult, profiles []AircraftProfile) []FleetRecommendation {
	var recs []FleetRecommendation
	fitCounts := map[string]int{}
	noFit := 0

	for _, u := range result.UnloadedItems {
		if u.Item.Category != CategoryRollingStock {
			continue
		}
		fit := fittingProfile(u.Item, profiles)
		if fit == nil {
			noFit++
			continue
		}
		fitCounts[fit.Type]++
	}

	types := make([]string, 0, len(fitCounts))
	for acType := range fitCounts {
		types = append(types, acType)
	}
	sort.Strings(types)

	for _, acType := range types {
		count := fitCounts[acType]
		recs = append(recs, FleetRecommendation{
			Type:          RecommendationRouteOutsize,
			Priority:      1,
			Title:         "Route Outsize Cargo",
			Description:   fmt.Sprintf("Move %d outsize item(s) to %s", count, acType),
			Impact:        "Clears rolling stock that exceeds the bay cross-section of the types used",
			ImpactLevel:   "high",
			AircraftType:  acType,
			ItemsAffected: count,
		})
	}

	if noFit > 0 {
		recs = append(recs, FleetRecommendation{
			Type:          RecommendationSurfaceMove,
			Priority:      2,
			Title:         "Plan Surface Movement",
			Description:   fmt.Sprintf("%d item(s) exceed every available cargo bay", noFit),
			Impact:        "These items cannot move by air with the current fleet options",
			ImpactLevel:   "medium",
			ItemsAffected: noFit,
		})
	}

	return recs
}

// GeneratePaxLiftRecommendation covers unseated passengers with the
// highest-seat-count profile
func GeneratePaxLiftRecommendation(result AllocationResult, profiles []AircraftProfile) *FleetRecommendation {
	if result.UnloadedPax <= 0 {
		return nil
	}

	var best *AircraftProfile
	for i := range profiles {
		if best == nil || profiles[i].SeatCapacity > best.SeatCapacity {
			best = &profiles[i]
		}
	}
	if best == nil || best.SeatCapacity == 0 {
		return nil
	}

	count := (result.UnloadedPax + best.SeatCapacity - 1) / best.SeatCapacity
	return &FleetRecommendation{
		Type:          RecommendationPaxLift,
		Priority:      2,
		Title:         "Add Passenger Lift",
		Description:   fmt.Sprintf("Add %d %s sortie(s) for passenger movement", count, best.Type),
		Impact:        fmt.Sprintf("Seats the %d passengers left behind", result.UnloadedPax),
		ImpactLevel:   "medium",
		AircraftType:  best.Type,
		AircraftToAdd: count,
		PaxAffected:   result.UnloadedPax,
	}
}

// GenerateConsolidationRecommendation flags fleets flying mostly empty
func GenerateConsolidationRecommendation(result AllocationResult) *FleetRecommendation {
	if !result.Feasible || result.TotalAircraft < 2 {
		return nil
	}

	avg := 0.0
	for _, plan := range result.Aircraft {
		avg += plan.PayloadUtilPct
	}
	avg /= float64(result.TotalAircraft)
	if avg >= 40 {
		return nil
	}

	return &FleetRecommendation{
		Type:        RecommendationConsolidate,
		Priority:    3,
		Title:       "Consolidate Loads",
		Description: fmt.Sprintf("Average payload utilization is %.1f%% across %d aircraft", avg, result.TotalAircraft),
		Impact:      "Fewer airframes could carry the same manifest",
		ImpactLevel: "low",
	}
}

// GenerateFleetRecommendations creates a prioritized list of suggestions
// for a finished allocation
func GenerateFleetRecommendations(result AllocationResult, profiles []AircraftProfile) []FleetRecommendation {
	var recs []FleetRecommendation

	if rec := GenerateAddAircraftRecommendation(result, profiles); rec != nil {
		recs = append(recs, *rec)
	}
	recs = append(recs, GenerateOutsizeRecommendations(result, profiles)...)
	if rec := GeneratePaxLiftRecommendation(result, profiles); rec != nil {
		recs = append(recs, *rec)
	}
	if rec := GenerateConsolidationRecommendation(result); rec != nil {
		recs = append(recs, *rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})

	return recs
}

func largestPayloadProfile(profiles []AircraftProfile) *AircraftProfile {
	var best *AircraftProfile
	for i := range profiles {
		if best == nil || profiles[i].MaxPayloadLb > best.MaxPayloadLb {
			best = &profiles[i]
		}
	}
	return best
}

// fittingProfile returns the first profile whose bay accepts the item's
// dimensions, or nil when none does.
func fittingProfile(item CargoItem, profiles []AircraftProfile) *AircraftProfile {
	for i := range profiles {
		p := profiles[i]
		if item.WidthIn <= p.BayWidthIn && item.HeightIn <= p.BayHeightIn && item.LengthIn <= p.BayLengthIn {
			return &p
		}
	}
	return nil
}
