// ABOUTME: Single-aircraft loader orchestrating pallet and vehicle placement
// ABOUTME: Pallets claim rail slots first, vehicles fill around them, then pax board

package solver

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/twaldron/airlift-planner/models"
)

// Queue is the remaining workload of one phase: what still needs lift.
type Queue struct {
	Vehicles []models.CargoItem
	Pallets  []models.UnitLoad
	Pax      int
}

// Empty reports whether nothing remains to load.
func (q Queue) Empty() bool {
	return len(q.Vehicles) == 0 && len(q.Pallets) == 0 && q.Pax <= 0
}

// LoadAircraft fills one aircraft from the queue and returns the plan
// plus whatever did not fit. Pallets go first because they occupy fixed
// rail positions; their footprints become reserved zones the vehicle
// search must stay out of. Passengers board last, limited by seats and
// by the payload remaining after cargo.
func (s *Solver) LoadAircraft(q Queue, p models.AircraftProfile, phase string, sequence int) (models.AircraftLoadPlan, Queue) {
	palletRes := s.PlacePallets(q.Pallets, p, 0, Accumulator{})

	reserved := make([]models.Footprint, 0, len(palletRes.Placements))
	for _, pp := range palletRes.Placements {
		reserved = append(reserved, pp.Footprint())
	}

	vehicleRes := s.PlaceRollingStock(q.Vehicles, p, 0, reserved, palletRes.Acc)

	cargoWeight := vehicleRes.Acc.WeightLb
	remainingPayload := p.MaxPayloadLb - cargoWeight

	pax := q.Pax
	if pax > p.SeatCapacity {
		pax = p.SeatCapacity
	}
	if byWeight := paxByPayload(remainingPayload, s.opts.PaxWeightLb); pax > byWeight {
		pax = byWeight
	}
	if pax < 0 {
		pax = 0
	}

	paxWeight := float64(pax) * s.opts.PaxWeightLb

	plan := models.AircraftLoadPlan{
		ID:                uuid.NewString(),
		AircraftType:      p.Type,
		Label:             fmt.Sprintf("%s #%d (%s)", p.Type, sequence, phase),
		Phase:             phase,
		Sequence:          sequence,
		Profile:           p,
		Pallets:           palletRes.Placements,
		Vehicles:          vehicleRes.Placements,
		Passengers:        pax,
		CargoWeightLb:     cargoWeight,
		PassengerWeightLb: paxWeight,
		TotalWeightLb:     cargoWeight + paxWeight,
		Balance:           balanceReport(vehicleRes.Acc, p),
		PositionsUsed:     len(palletRes.Placements),
		PositionsTotal:    p.PalletPositions,
	}
	if p.MaxPayloadLb > 0 {
		plan.PayloadUtilPct = plan.TotalWeightLb / p.MaxPayloadLb * 100
	}
	if p.SeatCapacity > 0 {
		plan.SeatUtilPct = float64(pax) / float64(p.SeatCapacity) * 100
	}
	plan.Limits = models.AnalyzeLimits(plan)

	rest := Queue{
		Vehicles: vehicleRes.Unplaced,
		Pallets:  palletRes.Unplaced,
		Pax:      q.Pax - pax,
	}
	return plan, rest
}

// paxByPayload is how many passengers the remaining payload can carry.
func paxByPayload(remainingLb, perPaxLb float64) int {
	if remainingLb <= 0 || perPaxLb <= 0 {
		return 0
	}
	return int(remainingLb / perPaxLb)
}
