// ABOUTME: Tests for the pallet placer and its rail-position grid
// ABOUTME: Validates grid generation, ramp ceilings, lane balance, and rejects

package solver

import (
	"testing"

	"github.com/twaldron/airlift-planner/models"
)

// palletProfile: 300 in bay, two lanes at +/-54, 6 positions, ramp zone
// from 240 aft with a reduced 8000 lb ceiling. With the default 4 in
// clearance the grid pitch is 92: rows at 0, 92, and 184, the last one
// reaching 272 and therefore inside the ramp.
func palletProfile() models.AircraftProfile {
	return models.AircraftProfile{
		Type:                 "TEST",
		BayLengthIn:          300,
		BayWidthIn:           220,
		BayHeightIn:          120,
		RampLengthIn:         60,
		MaxPayloadLb:         60000,
		PalletPositions:      6,
		PalletLanes:          []float64{-54, 54},
		PositionWeightLb:     10355,
		RampPositionWeightLb: 8000,
		CobMinPercent:        20,
		CobMaxPercent:        40,
		LemacStationIn:       180,
		MacLengthIn:          100,
		BayOriginStationIn:   100,
	}
}

func testUnitLoad(id string, grossLb float64) models.UnitLoad {
	return models.UnitLoad{
		ID:            id,
		LengthIn:      PlatformLengthIn,
		WidthIn:       PlatformWidthIn,
		HeightIn:      80,
		NetWeightLb:   grossLb - PlatformTareLb,
		GrossWeightLb: grossLb,
	}
}

func TestPlacePallets_FillsEveryGridSlot(t *testing.T) {
	// Six 5000 lb pallets on a 6-position grid: all placed, each in a
	// distinct row/lane slot, with only the 184-row slots in the ramp.

	s := NewSolver(DefaultOptions())
	p := palletProfile()

	pallets := []models.UnitLoad{
		testUnitLoad("P1", 5000), testUnitLoad("P2", 5000), testUnitLoad("P3", 5000),
		testUnitLoad("P4", 5000), testUnitLoad("P5", 5000), testUnitLoad("P6", 5000),
	}
	result := s.PlacePallets(pallets, p, 0, Accumulator{})

	if len(result.Placements) != 6 {
		t.Fatalf("Expected 6 placements, got %d", len(result.Placements))
	}
	if len(result.Unplaced) != 0 {
		t.Errorf("Expected no unplaced pallets, got %d", len(result.Unplaced))
	}

	slots := map[[2]int]bool{}
	for _, placement := range result.Placements {
		key := [2]int{placement.Row, placement.Lane}
		if slots[key] {
			t.Errorf("Slot row %d lane %d used twice", placement.Row, placement.Lane)
		}
		slots[key] = true

		wantRamp := placement.EndIn > p.RampStartIn()
		if placement.InRamp != wantRamp {
			t.Errorf("Row %d: expected InRamp %v for end %.0f", placement.Row, wantRamp, placement.EndIn)
		}
	}
}

func TestPlacePallets_RampCeilingEnforced(t *testing.T) {
	// 9000 lb pallets clear the 10355 lb floor ceiling but not the
	// 8000 lb ramp ceiling. Only the four non-ramp slots may fill.

	s := NewSolver(DefaultOptions())
	p := palletProfile()

	pallets := []models.UnitLoad{
		testUnitLoad("P1", 9000), testUnitLoad("P2", 9000), testUnitLoad("P3", 9000),
		testUnitLoad("P4", 9000), testUnitLoad("P5", 9000),
	}
	result := s.PlacePallets(pallets, p, 0, Accumulator{})

	if len(result.Placements) != 4 {
		t.Fatalf("Expected 4 placements, got %d", len(result.Placements))
	}
	if len(result.Unplaced) != 1 {
		t.Errorf("Expected 1 unplaced pallet, got %d", len(result.Unplaced))
	}
	for _, placement := range result.Placements {
		if placement.InRamp {
			t.Errorf("Pallet %s placed in ramp despite exceeding the ramp ceiling", placement.Pallet.ID)
		}
	}
}

func TestPlacePallets_PositionCeilingRejects(t *testing.T) {
	// 11000 lb gross exceeds every position ceiling on this grid.

	s := NewSolver(DefaultOptions())
	p := palletProfile()

	result := s.PlacePallets([]models.UnitLoad{testUnitLoad("P1", 11000)}, p, 0, Accumulator{})

	if len(result.Placements) != 0 {
		t.Fatalf("Expected no placements, got %d", len(result.Placements))
	}
	if len(result.Unplaced) != 1 {
		t.Errorf("Expected 1 unplaced pallet, got %d", len(result.Unplaced))
	}
}

func TestPlacePallets_PayloadCeilingStopsPlacement(t *testing.T) {
	// With payload capped at 12000 lb, only two 5000 lb pallets fit.

	s := NewSolver(DefaultOptions())
	p := palletProfile()
	p.MaxPayloadLb = 12000

	pallets := []models.UnitLoad{
		testUnitLoad("P1", 5000), testUnitLoad("P2", 5000), testUnitLoad("P3", 5000),
	}
	result := s.PlacePallets(pallets, p, 0, Accumulator{})

	if len(result.Placements) != 2 {
		t.Fatalf("Expected 2 placements, got %d", len(result.Placements))
	}
	if len(result.Unplaced) != 1 {
		t.Errorf("Expected 1 unplaced pallet, got %d", len(result.Unplaced))
	}
}

func TestPlacePallets_TallPalletRejected(t *testing.T) {
	tall := testUnitLoad("P1", 3000)
	tall.HeightIn = 130 // bay height is 120

	s := NewSolver(DefaultOptions())
	result := s.PlacePallets([]models.UnitLoad{tall}, palletProfile(), 0, Accumulator{})

	if len(result.Placements) != 0 {
		t.Fatalf("Expected no placements, got %d", len(result.Placements))
	}
	if len(result.Unplaced) != 1 {
		t.Errorf("Expected 1 unplaced pallet, got %d", len(result.Unplaced))
	}
}

func TestPlacePallets_LanesAlternateForLateralBalance(t *testing.T) {
	// Two equal pallets on a two-lane grid: the second takes the
	// opposite lane, cancelling the lateral moment completely.

	s := NewSolver(DefaultOptions())
	p := palletProfile()

	result := s.PlacePallets([]models.UnitLoad{
		testUnitLoad("P1", 5000), testUnitLoad("P2", 5000),
	}, p, 0, Accumulator{})

	if len(result.Placements) != 2 {
		t.Fatalf("Expected 2 placements, got %d", len(result.Placements))
	}
	if result.Placements[0].Lane == result.Placements[1].Lane {
		t.Errorf("Expected opposite lanes, both got lane %d", result.Placements[0].Lane)
	}
	if result.Acc.LateralMomentLbIn != 0 {
		t.Errorf("Expected lateral moment 0 after symmetric lanes, got %.0f", result.Acc.LateralMomentLbIn)
	}
}

func TestPlacePallets_RotatedGridRunsLongSideForeAft(t *testing.T) {
	// Rotated platforms span 108 in longitudinally and 88 in across.

	s := NewSolver(DefaultOptions())
	p := models.AircraftProfile{
		Type:               "TEST",
		BayLengthIn:        400,
		BayWidthIn:         127,
		BayHeightIn:        100,
		MaxPayloadLb:       50000,
		PalletPositions:    3,
		PalletLanes:        []float64{0},
		PalletsRotated:     true,
		PositionWeightLb:   6000,
		CobMinPercent:      20,
		CobMaxPercent:      40,
		LemacStationIn:     180,
		MacLengthIn:        100,
		BayOriginStationIn: 100,
	}

	result := s.PlacePallets([]models.UnitLoad{testUnitLoad("P1", 5000)}, p, 0, Accumulator{})

	if len(result.Placements) != 1 {
		t.Fatalf("Expected 1 placement, got %d", len(result.Placements))
	}
	placement := result.Placements[0]
	if got := placement.EndIn - placement.StartIn; got != PlatformLengthIn {
		t.Errorf("Expected 108 in longitudinal span when rotated, got %.0f", got)
	}
	if got := placement.RightIn - placement.LeftIn; got != PlatformWidthIn {
		t.Errorf("Expected 88 in lateral span when rotated, got %.0f", got)
	}
}

func TestPlacePallets_NoGridWithoutLanes(t *testing.T) {
	// A profile with no pallet positions places nothing and returns
	// everything for the caller to report.

	s := NewSolver(DefaultOptions())
	p := palletProfile()
	p.PalletPositions = 0
	p.PalletLanes = nil

	result := s.PlacePallets([]models.UnitLoad{testUnitLoad("P1", 3000)}, p, 0, Accumulator{})

	if len(result.Placements) != 0 {
		t.Fatalf("Expected no placements, got %d", len(result.Placements))
	}
	if len(result.Unplaced) != 1 {
		t.Errorf("Expected 1 unplaced pallet, got %d", len(result.Unplaced))
	}
}
