// ABOUTME: Fleet allocation loop spreading a phased manifest across aircraft
// ABOUTME: ADVON before MAIN, preferred type first, graceful shortfall reporting

package solver

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/twaldron/airlift-planner/models"
)

// fleetState tracks one aircraft type's availability during a solve.
type fleetState struct {
	entry     models.FleetEntry
	profile   models.AircraftProfile
	remaining int
	used      int
}

// AllocateSingleType plans against one aircraft type with availability
// bounded only by the per-phase iteration ceiling.
func (s *Solver) AllocateSingleType(manifest models.ClassifiedManifest, acType string, profiles map[string]models.AircraftProfile) (*models.AllocationResult, error) {
	fleet := []models.FleetEntry{{
		Type:      acType,
		Available: s.opts.MaxAircraftPerPhase,
		Preferred: true,
	}}
	return s.Allocate(manifest, fleet, profiles)
}

// Allocate runs the full solve: builds unit loads, walks the ADVON then
// MAIN phases across the fleet, and aggregates plans, warnings, and
// shortfall. Capacity shortfalls never return an error; the only error
// is a fleet entry naming an unknown aircraft type.
func (s *Solver) Allocate(manifest models.ClassifiedManifest, fleet []models.FleetEntry, profiles map[string]models.AircraftProfile) (*models.AllocationResult, error) {
	result := &models.AllocationResult{
		ID:            uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Aircraft:      []models.AircraftLoadPlan{},
		UnloadedItems: []models.UnloadedItem{},
		Warnings:      []models.AllocationWarning{},
		Feasible:      true,
	}

	states, err := buildFleetStates(fleet, profiles)
	if err != nil {
		return nil, err
	}

	available := 0
	for _, st := range states {
		available += st.remaining
	}
	if available == 0 {
		return s.noAircraftResult(result, manifest, fleet), nil
	}

	builder := NewPalletBuilder()
	capHit := false
	fleetRanDry := false

	for _, phase := range []string{models.PhaseAdvon, models.PhaseMain} {
		sub := manifest.ForPhase(phase)
		build := builder.Build(sub.PrebuiltPallets, sub.LooseItems)
		for _, item := range build.Unpalletizable {
			result.UnloadedItems = append(result.UnloadedItems, models.UnloadedItem{
				Item:   item,
				Reason: "exceeds 463L platform limits",
			})
		}
		result.Warnings = append(result.Warnings, build.Warnings...)

		queue := Queue{
			Vehicles: sub.RollingStock,
			Pallets:  build.Pallets,
			Pax:      sub.TotalPax(),
		}

		exhausted := map[string]bool{}
		iterations := 0
		sequence := 0

		for !queue.Empty() {
			if iterations >= s.opts.MaxAircraftPerPhase {
				capHit = true
				result.AddWarning(models.SeverityWarning, fmt.Sprintf(
					"%s phase stopped at the %d-iteration ceiling with cargo remaining",
					phase, s.opts.MaxAircraftPerPhase))
				break
			}
			iterations++

			state := nextAvailable(states, exhausted)
			if state == nil {
				// Either airframes ran out or every remaining type
				// already proved unable to take what is left.
				if !anyRemaining(states) {
					fleetRanDry = true
				}
				break
			}

			plan, rest := s.LoadAircraft(queue, state.profile, phase, sequence+1)
			if !plan.HasCargoOrPax() {
				// This type cannot take anything still queued; do not
				// burn an airframe on it.
				exhausted[state.entry.Type] = true
				continue
			}

			sequence++
			state.remaining--
			state.used++
			queue = rest

			if !plan.Balance.InEnvelope {
				result.AddWarning(models.SeverityCritical, fmt.Sprintf(
					"%s CG at %.1f%% MAC is outside the envelope (%s)",
					plan.Label, plan.Balance.CobPercent, plan.Balance.EnvelopeStatus))
			}
			result.Aircraft = append(result.Aircraft, plan)
		}

		s.recordLeftovers(result, queue, states)
	}

	s.aggregate(result, states, fleet, capHit, fleetRanDry)
	return result, nil
}

// buildFleetStates resolves fleet entries against the profile set and
// orders them: preferred types first, then largest payload, then name.
// Locked entries are held back from allocation entirely.
func buildFleetStates(fleet []models.FleetEntry, profiles map[string]models.AircraftProfile) ([]*fleetState, error) {
	var states []*fleetState
	for _, entry := range fleet {
		profile, ok := profiles[entry.Type]
		if !ok {
			return nil, fmt.Errorf("unknown aircraft type %q", entry.Type)
		}
		if entry.Locked {
			continue
		}
		states = append(states, &fleetState{
			entry:     entry,
			profile:   profile,
			remaining: entry.Available,
		})
	}
	sort.SliceStable(states, func(i, j int) bool {
		if states[i].entry.Preferred != states[j].entry.Preferred {
			return states[i].entry.Preferred
		}
		if states[i].profile.MaxPayloadLb != states[j].profile.MaxPayloadLb {
			return states[i].profile.MaxPayloadLb > states[j].profile.MaxPayloadLb
		}
		return states[i].entry.Type < states[j].entry.Type
	})
	return states, nil
}

// nextAvailable picks the highest-priority type with airframes left that
// is not exhausted for the current phase.
func nextAvailable(states []*fleetState, exhausted map[string]bool) *fleetState {
	for _, st := range states {
		if st.remaining > 0 && !exhausted[st.entry.Type] {
			return st
		}
	}
	return nil
}

// anyRemaining reports whether any airframes are left at all.
func anyRemaining(states []*fleetState) bool {
	for _, st := range states {
		if st.remaining > 0 {
			return true
		}
	}
	return false
}

// recordLeftovers converts whatever a phase could not place into
// unloaded entries with reasons derived from the fleet geometry.
func (s *Solver) recordLeftovers(result *models.AllocationResult, queue Queue, states []*fleetState) {
	for _, item := range queue.Vehicles {
		result.UnloadedItems = append(result.UnloadedItems, models.UnloadedItem{
			Item:   item,
			Reason: vehicleLeftoverReason(item, states),
		})
	}
	for _, pallet := range queue.Pallets {
		reason := palletLeftoverReason(pallet, states)
		for _, item := range pallet.Items {
			result.UnloadedItems = append(result.UnloadedItems, models.UnloadedItem{
				Item:   item,
				Reason: reason,
			})
		}
	}
	result.UnloadedPax += queue.Pax
}

func vehicleLeftoverReason(item models.CargoItem, states []*fleetState) string {
	for _, st := range states {
		p := st.profile
		if item.WidthIn <= p.BayWidthIn && item.HeightIn <= p.BayHeightIn && item.LengthIn <= p.BayLengthIn {
			return "insufficient fleet capacity remaining"
		}
	}
	return "exceeds cargo bay dimensions of every available type"
}

func palletLeftoverReason(pallet models.UnitLoad, states []*fleetState) string {
	fitsSomewhere := false
	for _, st := range states {
		p := st.profile
		if pallet.HeightIn > p.BayHeightIn || p.PalletPositions == 0 {
			continue
		}
		if pallet.GrossWeightLb <= p.PositionWeightLb {
			fitsSomewhere = true
			break
		}
	}
	if !fitsSomewhere {
		return "no pallet position in the fleet accepts this load"
	}
	return "insufficient fleet capacity remaining"
}

// noAircraftResult handles the empty-fleet precondition: an explicit
// result rather than a crash or an error.
func (s *Solver) noAircraftResult(result *models.AllocationResult, manifest models.ClassifiedManifest, fleet []models.FleetEntry) *models.AllocationResult {
	for _, entry := range fleet {
		result.FleetUsage = append(result.FleetUsage, models.FleetUsage{
			Type:      entry.Type,
			Used:      0,
			Available: entry.Available,
		})
	}
	if manifest.IsEmpty() {
		return result
	}

	reason := "no aircraft available"
	for _, item := range manifest.RollingStock {
		result.UnloadedItems = append(result.UnloadedItems, models.UnloadedItem{Item: item, Reason: reason})
	}
	for _, item := range manifest.LooseItems {
		result.UnloadedItems = append(result.UnloadedItems, models.UnloadedItem{Item: item, Reason: reason})
	}
	for _, item := range manifest.PrebuiltPallets {
		result.UnloadedItems = append(result.UnloadedItems, models.UnloadedItem{Item: item, Reason: reason})
	}
	result.UnloadedPax = manifest.TotalPax()
	result.Feasible = false
	result.AddWarning(models.SeverityCritical, "no aircraft available for allocation")
	result.Shortfall = &models.Shortfall{
		UnloadedWeightLb: manifest.TotalWeightLb(),
		Pallets:          len(manifest.PrebuiltPallets) + len(manifest.LooseItems),
		RollingStock:     len(manifest.RollingStock),
		Passengers:       result.UnloadedPax,
		Reason:           reason,
	}
	return result
}

// aggregate fills the result totals, usage counters, shortfall, and
// recommendations once both phases have run.
func (s *Solver) aggregate(result *models.AllocationResult, states []*fleetState, fleet []models.FleetEntry, capHit, fleetRanDry bool) {
	for _, plan := range result.Aircraft {
		result.TotalWeightLb += plan.TotalWeightLb
		result.TotalPallets += len(plan.Pallets)
		result.TotalRollingStock += len(plan.Vehicles)
		result.TotalPassengers += plan.Passengers
		if plan.Phase == models.PhaseAdvon {
			result.AdvonAircraft++
		} else {
			result.MainAircraft++
		}
	}
	result.TotalAircraft = len(result.Aircraft)

	used := map[string]int{}
	for _, st := range states {
		used[st.entry.Type] += st.used
	}
	for _, entry := range fleet {
		result.FleetUsage = append(result.FleetUsage, models.FleetUsage{
			Type:      entry.Type,
			Used:      used[entry.Type],
			Available: entry.Available,
		})
	}

	if len(result.UnloadedItems) == 0 && result.UnloadedPax == 0 {
		s.attachRecommendations(result, states)
		return
	}

	result.Feasible = false

	shortfall := &models.Shortfall{Passengers: result.UnloadedPax}
	for _, u := range result.UnloadedItems {
		shortfall.UnloadedWeightLb += u.Item.WeightLb
		if u.Item.Category == models.CategoryRollingStock {
			shortfall.RollingStock++
		} else {
			shortfall.Pallets++
		}
	}
	switch {
	case capHit:
		shortfall.Reason = "iteration ceiling reached before all cargo was placed"
	case fleetRanDry:
		shortfall.Reason = "fleet exhausted with cargo remaining"
	default:
		shortfall.Reason = "cargo exceeds aircraft or platform limits"
	}
	result.Shortfall = shortfall

	if len(result.UnloadedItems) > 0 {
		result.AddWarning(models.SeverityWarning, fmt.Sprintf(
			"%d item(s) could not be loaded", len(result.UnloadedItems)))
	}
	if result.UnloadedPax > 0 {
		result.AddWarning(models.SeverityWarning, fmt.Sprintf(
			"%d passenger(s) could not be seated", result.UnloadedPax))
	}

	s.attachRecommendations(result, states)
}

func (s *Solver) attachRecommendations(result *models.AllocationResult, states []*fleetState) {
	profiles := make([]models.AircraftProfile, 0, len(states))
	for _, st := range states {
		profiles = append(profiles, st.profile)
	}
	if recs := models.GenerateFleetRecommendations(*result, profiles); len(recs) > 0 {
		result.Recommendations = recs
	}
}
