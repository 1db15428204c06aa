// ABOUTME: Rolling-stock placer for vehicles on the cargo bay floor
// ABOUTME: CG-scored candidate search honoring reserved pallet zones

package solver

import (
	"math"
	"sort"

	"github.com/twaldron/airlift-planner/models"
)

// sideBandIn is the lateral band treated as centerline for the side
// classification.
const sideBandIn = 1.0

// VehicleResult is the rolling-stock placer's output.
type VehicleResult struct {
	Placements   []models.VehiclePlacement
	Unplaced     []models.CargoItem
	NextOffsetIn float64
	Acc          Accumulator
}

// span is a free lateral interval.
type span struct {
	lo, hi float64
}

// PlaceRollingStock places vehicles one at a time, heaviest and
// weapons-priority first. Candidates radiate from the CG target in
// fixed steps; each valid candidate is scored by projected %MAC
// deviation. Candidates that improve the running balance win outright;
// otherwise the least-damaging one closest to the target is taken.
// Items with no valid candidate are returned unplaced for the next
// aircraft to try.
func (s *Solver) PlaceRollingStock(items []models.CargoItem, p models.AircraftProfile, startIn float64, reserved []models.Footprint, acc Accumulator) VehicleResult {
	result := VehicleResult{NextOffsetIn: startIn, Acc: acc}

	occupied := make([]models.Footprint, len(reserved))
	copy(occupied, reserved)

	targetX := p.TargetLocalXIn()

	for _, item := range sortItemsForLoading(items) {
		if item.WidthIn > p.BayWidthIn || item.HeightIn > p.BayHeightIn {
			result.Unplaced = append(result.Unplaced, item)
			continue
		}
		if item.LengthIn > p.BayLengthIn-startIn {
			result.Unplaced = append(result.Unplaced, item)
			continue
		}
		if result.Acc.WeightLb+item.WeightLb > p.MaxPayloadLb {
			result.Unplaced = append(result.Unplaced, item)
			continue
		}

		placement, ok := s.bestVehiclePlacement(item, p, startIn, occupied, result.Acc, targetX)
		if !ok {
			result.Unplaced = append(result.Unplaced, item)
			continue
		}

		result.Acc = result.Acc.Add(p, item.WeightLb, placement.StartIn, item.LengthIn, placement.LateralIn)
		occupied = append(occupied, placement.Footprint())
		result.Placements = append(result.Placements, placement)
		if placement.EndIn > result.NextOffsetIn {
			result.NextOffsetIn = placement.EndIn
		}
	}

	return result
}

// vehicleCandidate is one scored position under consideration.
type vehicleCandidate struct {
	startIn   float64
	lateralIn float64
	score     float64
}

// bestVehiclePlacement runs the candidate search for one item. The
// improving partition is preferred; within a partition, score ties
// resolve toward the aft because later, lighter items correct an
// aft-heavy load more easily than a forward-heavy one.
func (s *Solver) bestVehiclePlacement(item models.CargoItem, p models.AircraftProfile, startIn float64, occupied []models.Footprint, acc Accumulator, targetX float64) (models.VehiclePlacement, bool) {
	currentScore := s.deviationScore(acc.MacPercent(p), p)

	var improving, worsening []vehicleCandidate
	for _, x := range s.longitudinalCandidates(item.LengthIn, startIn, p) {
		if x+item.LengthIn > p.RampStartIn() && item.WeightLb > p.RampPositionWeightLb {
			continue
		}
		gaps := lateralGaps(occupied, x, item.LengthIn, p.BayWidthIn/2)
		lat, ok := chooseLateral(gaps, item.WidthIn)
		if !ok {
			continue
		}
		cand := vehicleCandidate{
			startIn:   x,
			lateralIn: lat,
			score:     s.projectedScore(acc, p, item.WeightLb, x, item.LengthIn),
		}
		if cand.score <= currentScore+scoreEpsilon {
			improving = append(improving, cand)
		} else {
			worsening = append(worsening, cand)
		}
	}

	var winner vehicleCandidate
	switch {
	case len(improving) > 0:
		winner = pickByScore(improving)
	case len(worsening) > 0:
		winner = pickByTargetDistance(worsening, item.LengthIn, targetX)
	default:
		return models.VehiclePlacement{}, false
	}

	return models.VehiclePlacement{
		Item:      item,
		StartIn:   winner.startIn,
		EndIn:     winner.startIn + item.LengthIn,
		LateralIn: winner.lateralIn,
		LeftIn:    winner.lateralIn - item.WidthIn/2,
		RightIn:   winner.lateralIn + item.WidthIn/2,
		Side:      classifySide(winner.lateralIn),
		InRamp:    winner.startIn+item.LengthIn > p.RampStartIn(),
	}, true
}

// pickByScore takes the lowest score, resolving ties toward the aft.
func pickByScore(cands []vehicleCandidate) vehicleCandidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.score < best.score-scoreEpsilon {
			best = c
			continue
		}
		if math.Abs(c.score-best.score) <= scoreEpsilon && c.startIn > best.startIn {
			best = c
		}
	}
	return best
}

// pickByTargetDistance takes the candidate whose center stays closest to
// the target station, resolving ties toward the aft.
func pickByTargetDistance(cands []vehicleCandidate, lengthIn, targetX float64) vehicleCandidate {
	best := cands[0]
	bestDist := math.Abs(best.startIn + lengthIn/2 - targetX)
	for _, c := range cands[1:] {
		dist := math.Abs(c.startIn + lengthIn/2 - targetX)
		if dist < bestDist-scoreEpsilon {
			best, bestDist = c, dist
			continue
		}
		if math.Abs(dist-bestDist) <= scoreEpsilon && c.startIn > best.startIn {
			best, bestDist = c, dist
		}
	}
	return best
}

// longitudinalCandidates generates start positions radiating out from
// the target in fixed steps, staying inside [startIn, bay - length].
func (s *Solver) longitudinalCandidates(lengthIn, startIn float64, p models.AircraftProfile) []float64 {
	maxStart := p.BayLengthIn - lengthIn
	if maxStart < startIn {
		return nil
	}
	base := clamp(p.TargetLocalXIn()-lengthIn/2, startIn, maxStart)
	xs := []float64{base}
	for off := s.opts.CandidateStepIn; ; off += s.opts.CandidateStepIn {
		added := false
		if aft := base + off; aft <= maxStart {
			xs = append(xs, aft)
			added = true
		}
		if fore := base - off; fore >= startIn {
			xs = append(xs, fore)
			added = true
		}
		if !added {
			return xs
		}
	}
}

// lateralGaps computes the free lateral intervals across the span
// [x, x+length], subtracting every occupied footprint that overlaps it
// longitudinally.
func lateralGaps(occupied []models.Footprint, x, lengthIn, halfWidth float64) []span {
	var blocked []span
	for _, f := range occupied {
		if f.StartIn < x+lengthIn && x < f.EndIn {
			blocked = append(blocked, span{lo: f.LeftIn, hi: f.RightIn})
		}
	}
	if len(blocked) == 0 {
		return []span{{lo: -halfWidth, hi: halfWidth}}
	}

	sort.Slice(blocked, func(i, j int) bool { return blocked[i].lo < blocked[j].lo })

	var gaps []span
	cursor := -halfWidth
	for _, b := range blocked {
		if b.lo > cursor {
			gaps = append(gaps, span{lo: cursor, hi: math.Min(b.lo, halfWidth)})
		}
		if b.hi > cursor {
			cursor = b.hi
		}
		if cursor >= halfWidth {
			return gaps
		}
	}
	if cursor < halfWidth {
		gaps = append(gaps, span{lo: cursor, hi: halfWidth})
	}
	return gaps
}

// chooseLateral picks the lateral center for an item of the given width:
// the centerline when a gap allows it, otherwise the position nearest
// the centerline, with left winning a symmetric tie.
func chooseLateral(gaps []span, widthIn float64) (float64, bool) {
	best := 0.0
	found := false
	for _, g := range gaps {
		if g.hi-g.lo < widthIn {
			continue
		}
		center := clamp(0, g.lo+widthIn/2, g.hi-widthIn/2)
		if !found {
			best, found = center, true
			continue
		}
		if math.Abs(center) < math.Abs(best)-scoreEpsilon {
			best = center
			continue
		}
		if math.Abs(math.Abs(center)-math.Abs(best)) <= scoreEpsilon && center < best {
			best = center
		}
	}
	return best, found
}

// classifySide labels a lateral center as center, left, or right.
func classifySide(lateralIn float64) string {
	switch {
	case math.Abs(lateralIn) <= sideBandIn:
		return models.SideCenter
	case lateralIn < 0:
		return models.SideLeft
	default:
		return models.SideRight
	}
}
