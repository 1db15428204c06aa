// ABOUTME: Pallet placer assigning unit loads to the discrete rail grid
// ABOUTME: Row-by-lane slots with ramp-aware ceilings and CG scoring

package solver

import (
	"math"

	"github.com/twaldron/airlift-planner/models"
)

// PalletResult is the pallet placer's output.
type PalletResult struct {
	Placements   []models.PalletPlacement
	Unplaced     []models.UnitLoad
	NextOffsetIn float64
	Acc          Accumulator
}

// palletSlot is one rail position in the grid.
type palletSlot struct {
	row       int
	lane      int
	startIn   float64
	endIn     float64
	lateralIn float64
	inRamp    bool
	limitLb   float64
	used      bool
}

// palletSpanDims returns the longitudinal and lateral extent a platform
// occupies in this aircraft. Most types load the platform long side
// across the bay; rotated types run it fore-aft.
func palletSpanDims(p models.AircraftProfile) (longIn, latIn float64) {
	if p.PalletsRotated {
		return PlatformLengthIn, PlatformWidthIn
	}
	return PlatformWidthIn, PlatformLengthIn
}

// palletGrid generates the slot grid: rows at a fixed pitch, one slot
// per lane, capped at the profile's position count and the bay length.
// Slots whose aft edge crosses into the ramp zone carry the reduced
// ramp ceiling.
func (s *Solver) palletGrid(p models.AircraftProfile, startIn float64) []palletSlot {
	longIn, _ := palletSpanDims(p)
	pitch := longIn + s.opts.PalletClearanceIn
	lanes := len(p.PalletLanes)
	if lanes == 0 || p.PalletPositions == 0 {
		return nil
	}

	var slots []palletSlot
	for row := 0; len(slots) < p.PalletPositions; row++ {
		rowStart := startIn + float64(row)*pitch
		rowEnd := rowStart + longIn
		if rowEnd > p.BayLengthIn {
			break
		}
		inRamp := rowEnd > p.RampStartIn()
		limit := p.PositionWeightLb
		if inRamp {
			limit = p.RampPositionWeightLb
		}
		for lane := 0; lane < lanes && len(slots) < p.PalletPositions; lane++ {
			slots = append(slots, palletSlot{
				row:       row,
				lane:      lane,
				startIn:   rowStart,
				endIn:     rowEnd,
				lateralIn: p.PalletLanes[lane],
				inRamp:    inRamp,
				limitLb:   limit,
			})
		}
	}
	return slots
}

// PlacePallets assigns unit loads to grid slots, weapons-priority and
// heaviest first. Every open slot whose ceiling accepts the pallet is
// scored by projected CG deviation; multi-lane aircraft add a small
// bonus for the lane that improves lateral balance. Pallets with no
// admissible slot are returned unplaced.
func (s *Solver) PlacePallets(pallets []models.UnitLoad, p models.AircraftProfile, startIn float64, acc Accumulator) PalletResult {
	result := PalletResult{NextOffsetIn: startIn, Acc: acc}
	slots := s.palletGrid(p, startIn)
	longIn, latIn := palletSpanDims(p)
	multiLane := len(p.PalletLanes) > 1

	for _, pallet := range sortPalletsForLoading(pallets) {
		if pallet.LengthIn > PlatformLengthIn || pallet.WidthIn > PlatformWidthIn || pallet.HeightIn > p.BayHeightIn {
			result.Unplaced = append(result.Unplaced, pallet)
			continue
		}
		if result.Acc.WeightLb+pallet.GrossWeightLb > p.MaxPayloadLb {
			result.Unplaced = append(result.Unplaced, pallet)
			continue
		}

		bestIdx := -1
		bestScore := 0.0
		for i := range slots {
			slot := &slots[i]
			if slot.used || pallet.GrossWeightLb > slot.limitLb {
				continue
			}
			score := s.projectedScore(result.Acc, p, pallet.GrossWeightLb, slot.startIn, longIn)
			if multiLane {
				score += s.lateralScore(result.Acc, pallet.GrossWeightLb, slot.lateralIn, p)
			}
			if bestIdx < 0 || score < bestScore-scoreEpsilon {
				bestIdx, bestScore = i, score
				continue
			}
			if math.Abs(score-bestScore) <= scoreEpsilon && slot.startIn > slots[bestIdx].startIn {
				bestIdx, bestScore = i, score
			}
		}
		if bestIdx < 0 {
			result.Unplaced = append(result.Unplaced, pallet)
			continue
		}

		slot := &slots[bestIdx]
		slot.used = true
		result.Acc = result.Acc.Add(p, pallet.GrossWeightLb, slot.startIn, longIn, slot.lateralIn)
		result.Placements = append(result.Placements, models.PalletPlacement{
			Pallet:    pallet,
			Row:       slot.row,
			Lane:      slot.lane,
			StartIn:   slot.startIn,
			EndIn:     slot.endIn,
			LateralIn: slot.lateralIn,
			LeftIn:    slot.lateralIn - latIn/2,
			RightIn:   slot.lateralIn + latIn/2,
			InRamp:    slot.inRamp,
		})
		if slot.endIn > result.NextOffsetIn {
			result.NextOffsetIn = slot.endIn
		}
	}

	return result
}

// lateralScore is the lane tie-break term: the projected lateral
// imbalance normalized to the half-width, scaled small enough that it
// only separates longitudinally equivalent slots.
func (s *Solver) lateralScore(acc Accumulator, weightLb, lateralIn float64, p models.AircraftProfile) float64 {
	projected := math.Abs(acc.LateralMomentLbIn + weightLb*lateralIn)
	total := acc.WeightLb + weightLb
	if total <= 0 {
		return 0
	}
	return s.opts.LateralBalanceWeight * projected / (total * p.BayWidthIn / 2)
}
