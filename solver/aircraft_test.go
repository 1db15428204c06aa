// ABOUTME: Tests for the single-aircraft loader
// ABOUTME: Validates placement order, pax admission, conservation, and plan metadata

package solver

import (
	"math"
	"testing"

	"github.com/twaldron/airlift-planner/models"
	"github.com/twaldron/airlift-planner/profiles"
)

func builtinProfile(t *testing.T, acType string) models.AircraftProfile {
	t.Helper()
	for _, p := range profiles.Builtin() {
		if p.Type == acType {
			return p
		}
	}
	t.Fatalf("no built-in profile for %s", acType)
	return models.AircraftProfile{}
}

func TestLoadAircraft_PalletsAndVehiclesShareFloor(t *testing.T) {
	// Pallets claim rail slots first; the vehicles must fit around
	// their footprints with no overlap anywhere on the floor.

	s := NewSolver(DefaultOptions())
	p := builtinProfile(t, "C-17A")

	q := Queue{
		Pallets: []models.UnitLoad{
			testUnitLoad("P1", 6000), testUnitLoad("P2", 6000),
		},
		Vehicles: []models.CargoItem{
			testVehicle("V1", 12000, 280, 96, 100),
			testVehicle("V2", 5200, 180, 85, 74),
		},
	}
	plan, rest := s.LoadAircraft(q, p, models.PhaseMain, 1)

	if len(plan.Pallets) != 2 {
		t.Fatalf("Expected 2 pallets placed, got %d", len(plan.Pallets))
	}
	if len(plan.Vehicles) != 2 {
		t.Fatalf("Expected 2 vehicles placed, got %d", len(plan.Vehicles))
	}
	if !rest.Empty() {
		t.Errorf("Expected nothing left over, got %+v", rest)
	}

	var footprints []models.Footprint
	for _, pp := range plan.Pallets {
		footprints = append(footprints, pp.Footprint())
	}
	for _, vp := range plan.Vehicles {
		footprints = append(footprints, vp.Footprint())
	}
	for i := 0; i < len(footprints); i++ {
		for j := i + 1; j < len(footprints); j++ {
			if footprints[i].Intersects(footprints[j]) {
				t.Errorf("Footprints %d and %d overlap: %+v vs %+v",
					i, j, footprints[i], footprints[j])
			}
		}
	}
}

func TestLoadAircraft_PaxLimitedBySeats(t *testing.T) {
	// 100 requested against 54 seats: 54 board, 46 roll to the next
	// aircraft. Passenger weight uses the 400 lb planning factor.

	s := NewSolver(DefaultOptions())
	p := builtinProfile(t, "C-17A")

	plan, rest := s.LoadAircraft(Queue{Pax: 100}, p, models.PhaseMain, 1)

	if plan.Passengers != 54 {
		t.Errorf("Expected 54 passengers, got %d", plan.Passengers)
	}
	if rest.Pax != 46 {
		t.Errorf("Expected 46 passengers remaining, got %d", rest.Pax)
	}
	if plan.PassengerWeightLb != 54*400 {
		t.Errorf("Expected passenger weight 21600, got %.0f", plan.PassengerWeightLb)
	}
	if plan.TotalWeightLb != plan.PassengerWeightLb {
		t.Errorf("Expected total weight to equal passenger weight, got %.0f", plan.TotalWeightLb)
	}
}

func TestLoadAircraft_PaxLimitedByRemainingPayload(t *testing.T) {
	// A 169900 lb vehicle leaves 1000 lb of the C-17A's 170900 lb
	// payload: floor(1000 / 400) = 2 passengers despite 54 seats.

	s := NewSolver(DefaultOptions())
	p := builtinProfile(t, "C-17A")

	q := Queue{
		Vehicles: []models.CargoItem{testVehicle("TANK", 169900, 400, 100, 100)},
		Pax:      10,
	}
	plan, rest := s.LoadAircraft(q, p, models.PhaseMain, 1)

	if len(plan.Vehicles) != 1 {
		t.Fatalf("Expected the vehicle placed, got %d placements", len(plan.Vehicles))
	}
	if plan.Passengers != 2 {
		t.Errorf("Expected 2 passengers by remaining payload, got %d", plan.Passengers)
	}
	if rest.Pax != 8 {
		t.Errorf("Expected 8 passengers remaining, got %d", rest.Pax)
	}
}

func TestLoadAircraft_EveryQueueEntryAccountedFor(t *testing.T) {
	// Placed plus leftover must equal the queue, item by item. The
	// 250 in wide vehicle fits no C-17A and must come back out.

	s := NewSolver(DefaultOptions())
	p := builtinProfile(t, "C-17A")

	q := Queue{
		Vehicles: []models.CargoItem{
			testVehicle("V1", 8000, 200, 90, 80),
			testVehicle("WIDE", 3000, 100, 250, 80),
		},
		Pallets: []models.UnitLoad{testUnitLoad("P1", 4000)},
		Pax:     20,
	}
	plan, rest := s.LoadAircraft(q, p, models.PhaseAdvon, 1)

	if got := len(plan.Vehicles) + len(rest.Vehicles); got != 2 {
		t.Errorf("Expected 2 vehicles across plan and leftover, got %d", got)
	}
	if got := len(plan.Pallets) + len(rest.Pallets); got != 1 {
		t.Errorf("Expected 1 pallet across plan and leftover, got %d", got)
	}
	if got := plan.Passengers + rest.Pax; got != 20 {
		t.Errorf("Expected 20 passengers across plan and leftover, got %d", got)
	}
	if len(rest.Vehicles) != 1 || rest.Vehicles[0].ID != "WIDE" {
		t.Errorf("Expected WIDE left over, got %+v", rest.Vehicles)
	}
}

func TestLoadAircraft_PlanMetadata(t *testing.T) {
	s := NewSolver(DefaultOptions())
	p := builtinProfile(t, "C-17A")

	plan, _ := s.LoadAircraft(Queue{Pax: 10}, p, models.PhaseMain, 2)

	if plan.ID == "" {
		t.Error("Expected a generated plan ID")
	}
	if plan.AircraftType != "C-17A" {
		t.Errorf("Expected aircraft type C-17A, got %s", plan.AircraftType)
	}
	if plan.Label != "C-17A #2 (MAIN)" {
		t.Errorf("Expected label 'C-17A #2 (MAIN)', got %q", plan.Label)
	}
	if plan.Sequence != 2 {
		t.Errorf("Expected sequence 2, got %d", plan.Sequence)
	}
	if plan.PositionsTotal != 18 {
		t.Errorf("Expected 18 pallet positions, got %d", plan.PositionsTotal)
	}
	if plan.Limits.LimitingFactor == "" {
		t.Error("Expected a limiting-factor report on the plan")
	}
}

func TestLoadAircraft_BalanceAlwaysFinite(t *testing.T) {
	// Both an empty aircraft and a loaded one must report finite CG
	// numbers; the empty case falls back to the bay origin station.

	s := NewSolver(DefaultOptions())
	p := builtinProfile(t, "C-17A")

	empty, _ := s.LoadAircraft(Queue{}, p, models.PhaseMain, 1)
	if math.IsNaN(empty.Balance.CobPercent) || math.IsInf(empty.Balance.CobPercent, 0) {
		t.Errorf("Expected finite %%MAC for empty aircraft, got %v", empty.Balance.CobPercent)
	}
	if empty.Balance.StationCgIn != p.BayOriginStationIn {
		t.Errorf("Expected empty CG at bay origin %.0f, got %.1f",
			p.BayOriginStationIn, empty.Balance.StationCgIn)
	}

	loaded, _ := s.LoadAircraft(Queue{
		Vehicles: []models.CargoItem{testVehicle("V1", 9000, 220, 90, 85)},
	}, p, models.PhaseMain, 1)
	if math.IsNaN(loaded.Balance.CobPercent) || math.IsInf(loaded.Balance.CobPercent, 0) {
		t.Errorf("Expected finite %%MAC for loaded aircraft, got %v", loaded.Balance.CobPercent)
	}
	if loaded.Balance.TotalWeightLb != 9000 {
		t.Errorf("Expected balance weight 9000, got %.0f", loaded.Balance.TotalWeightLb)
	}
}

func TestLoadAircraft_UtilizationPercentages(t *testing.T) {
	// 54 of 54 seats and 21600 of 170900 lb payload.

	s := NewSolver(DefaultOptions())
	p := builtinProfile(t, "C-17A")

	plan, _ := s.LoadAircraft(Queue{Pax: 54}, p, models.PhaseMain, 1)

	if plan.SeatUtilPct != 100 {
		t.Errorf("Expected 100%% seat utilization, got %.1f", plan.SeatUtilPct)
	}
	want := 21600.0 / 170900 * 100
	if math.Abs(plan.PayloadUtilPct-want) > 1e-9 {
		t.Errorf("Expected payload utilization %.4f, got %.4f", want, plan.PayloadUtilPct)
	}
}
