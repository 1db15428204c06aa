// ABOUTME: Tests for load-factor analysis
// ABOUTME: Verifies limiting factor selection and severity bands

package models

import "testing"

func analysisPlan() AircraftLoadPlan {
	return AircraftLoadPlan{
		Profile:        validProfile(),
		PayloadUtilPct: 50,
		PositionsUsed:  2,
		SeatUtilPct:    10,
	}
}

func TestAnalyzeLimits_PicksHighestUtilization(t *testing.T) {
	plan := analysisPlan()
	plan.PayloadUtilPct = 91

	report := AnalyzeLimits(plan)

	if report.LimitingFactor != LimitPayload {
		t.Errorf("Expected payload_weight limiting factor, got %s", report.LimitingFactor)
	}
	if report.Severity != SeverityWarning {
		t.Errorf("Expected warning severity at 91%%, got %s", report.Severity)
	}
	if len(report.Utilizations) == 0 || report.Utilizations[0].Factor != LimitPayload {
		t.Error("Expected utilizations ranked with payload first")
	}
}

func TestAnalyzeLimits_CriticalAbove95(t *testing.T) {
	plan := analysisPlan()
	plan.PayloadUtilPct = 98.5

	report := AnalyzeLimits(plan)

	if report.Severity != SeverityCritical {
		t.Errorf("Expected critical severity at 98.5%%, got %s", report.Severity)
	}
}

func TestAnalyzeLimits_BalancedBelow60(t *testing.T) {
	plan := analysisPlan()

	report := AnalyzeLimits(plan)

	if report.LimitingFactor != LimitBalanced {
		t.Errorf("Expected balanced report under 60%%, got %s", report.LimitingFactor)
	}
	if report.Severity != SeverityInfo {
		t.Errorf("Expected info severity, got %s", report.Severity)
	}
}

func TestAnalyzeLimits_PositionsBindFirst(t *testing.T) {
	plan := analysisPlan()
	plan.PositionsUsed = 18 // all positions on an 18-position airframe

	report := AnalyzeLimits(plan)

	if report.LimitingFactor != LimitPositions {
		t.Errorf("Expected pallet_positions limiting factor, got %s", report.LimitingFactor)
	}
	if report.Severity != SeverityCritical {
		t.Errorf("Expected critical severity at 100%% positions, got %s", report.Severity)
	}
}

func TestAnalyzeLimits_SkipsAbsentDimensions(t *testing.T) {
	plan := analysisPlan()
	plan.Profile.PalletPositions = 0
	plan.Profile.PalletLanes = nil
	plan.Profile.SeatCapacity = 0

	report := AnalyzeLimits(plan)

	for _, f := range report.Utilizations {
		if f.Factor == LimitPositions || f.Factor == LimitSeats {
			t.Errorf("Expected %s to be skipped for a profile without that capacity", f.Factor)
		}
	}
}
