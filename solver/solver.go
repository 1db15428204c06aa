// ABOUTME: Solver entry type with shared scoring and load-ordering rules
// ABOUTME: CG deviation scoring and weapons-priority-then-heaviest sorting

package solver

import (
	"math"
	"sort"

	"github.com/twaldron/airlift-planner/models"
)

// scoreEpsilon bounds float noise when comparing candidate scores.
// Candidates within this band are ties and resolve toward the aft.
const scoreEpsilon = 1e-9

// Solver runs load allocation. Each Allocate call is independent; a
// single Solver value is safe for concurrent use because all mutable
// state lives on the call stack.
type Solver struct {
	opts Options
}

// NewSolver creates a solver with normalized options.
func NewSolver(opts Options) *Solver {
	return &Solver{opts: opts.Normalize()}
}

// Opts returns the normalized options in effect.
func (s *Solver) Opts() Options {
	return s.opts
}

// deviationScore measures how far a %MAC value sits from the envelope
// midpoint, normalized by envelope span. Once the value leaves the
// envelope the score is multiplied by the out-of-envelope penalty, so
// in-envelope candidates always dominate.
func (s *Solver) deviationScore(macPercent float64, p models.AircraftProfile) float64 {
	dev := math.Abs(macPercent-p.TargetMacPercent()) / p.EnvelopeSpanPercent()
	if macPercent < p.CobMinPercent || macPercent > p.CobMaxPercent {
		dev *= s.opts.EnvelopePenalty
	}
	return dev
}

// projectedScore scores the CG state after adding one load.
func (s *Solver) projectedScore(acc Accumulator, p models.AircraftProfile, weightLb, startIn, lengthIn float64) float64 {
	next := acc.Add(p, weightLb, startIn, lengthIn, 0)
	return s.deviationScore(next.MacPercent(p), p)
}

// sortItemsForLoading orders rolling stock for placement: weapons and
// ordnance first, then descending weight. Heavy items go early because
// they move the CG the most and need first pick of positions.
func sortItemsForLoading(items []models.CargoItem) []models.CargoItem {
	out := make([]models.CargoItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := out[i].WeaponsPriority(), out[j].WeaponsPriority()
		if wi != wj {
			return wi
		}
		if out[i].WeightLb != out[j].WeightLb {
			return out[i].WeightLb > out[j].WeightLb
		}
		return out[i].FootprintArea() > out[j].FootprintArea()
	})
	return out
}

// sortPalletsForLoading applies the same weapons-then-weight rule to
// unit loads.
func sortPalletsForLoading(pallets []models.UnitLoad) []models.UnitLoad {
	out := make([]models.UnitLoad, len(pallets))
	copy(out, pallets)
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := out[i].WeaponsPriority(), out[j].WeaponsPriority()
		if wi != wj {
			return wi
		}
		return out[i].GrossWeightLb > out[j].GrossWeightLb
	})
	return out
}
