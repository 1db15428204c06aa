// ABOUTME: Tests for cargo items and classified manifests
// ABOUTME: Covers weapons priority, phase filtering, and manifest totals

package models

import "testing"

func TestWeaponsPriority_MatchesKeywords(t *testing.T) {
	tests := []struct {
		description string
		weapons     bool
	}{
		{"M777 Howitzer", true},
		{"small arms AMMUNITION crate", true},
		{"Guided Missile container", true},
		{"generator trailer", false},
		{"field kitchen", false},
		{"", false},
	}

	for _, tt := range tests {
		item := CargoItem{Description: tt.description}
		if got := item.WeaponsPriority(); got != tt.weapons {
			t.Errorf("WeaponsPriority(%q) = %v, want %v", tt.description, got, tt.weapons)
		}
	}
}

func TestInPhase_DefaultsToMain(t *testing.T) {
	unset := CargoItem{ID: "X-1"}
	if !unset.InPhase(PhaseMain) {
		t.Error("Expected item without phase to count as MAIN")
	}
	if unset.InPhase(PhaseAdvon) {
		t.Error("Expected item without phase to be excluded from ADVON")
	}

	advon := CargoItem{ID: "X-2", Phase: PhaseAdvon}
	if !advon.InPhase(PhaseAdvon) {
		t.Error("Expected ADVON item in ADVON phase")
	}
	if advon.InPhase(PhaseMain) {
		t.Error("Expected ADVON item to be excluded from MAIN")
	}
}

func TestForPhase_SplitsManifest(t *testing.T) {
	m := ClassifiedManifest{
		RollingStock: []CargoItem{
			{ID: "RS-1", Phase: PhaseAdvon},
			{ID: "RS-2", Phase: PhaseMain},
			{ID: "RS-3"},
		},
		PaxGroups: []CargoItem{
			{ID: "PAX-1", Category: CategoryPax, Phase: PhaseAdvon, PaxCount: 20},
			{ID: "PAX-2", Category: CategoryPax, PaxCount: 100},
		},
	}

	advon := m.ForPhase(PhaseAdvon)
	if len(advon.RollingStock) != 1 || advon.RollingStock[0].ID != "RS-1" {
		t.Errorf("Expected only RS-1 in ADVON, got %d items", len(advon.RollingStock))
	}
	if advon.TotalPax() != 20 {
		t.Errorf("Expected 20 ADVON pax, got %d", advon.TotalPax())
	}

	main := m.ForPhase(PhaseMain)
	if len(main.RollingStock) != 2 {
		t.Errorf("Expected 2 MAIN rolling stock items, got %d", len(main.RollingStock))
	}
	if main.TotalPax() != 100 {
		t.Errorf("Expected 100 MAIN pax, got %d", main.TotalPax())
	}
}

func TestTotalWeightLb_ExcludesPax(t *testing.T) {
	m := ClassifiedManifest{
		RollingStock:    []CargoItem{{ID: "RS-1", WeightLb: 8000}},
		LooseItems:      []CargoItem{{ID: "L-1", WeightLb: 500}, {ID: "L-2", WeightLb: 250}},
		PrebuiltPallets: []CargoItem{{ID: "P-1", WeightLb: 4200}},
		PaxGroups:       []CargoItem{{ID: "PAX-1", Category: CategoryPax, PaxCount: 40}},
	}

	if got := m.TotalWeightLb(); got != 12950 {
		t.Errorf("Expected total weight 12950, got %.0f", got)
	}
	if got := m.ItemCount(); got != 4 {
		t.Errorf("Expected 4 cargo lines, got %d", got)
	}
}

func TestIsEmpty(t *testing.T) {
	if !(ClassifiedManifest{}).IsEmpty() {
		t.Error("Expected zero-value manifest to be empty")
	}

	paxOnly := ClassifiedManifest{PaxGroups: []CargoItem{{ID: "PAX-1", PaxCount: 10}}}
	if paxOnly.IsEmpty() {
		t.Error("Expected manifest with passengers to be non-empty")
	}

	zeroPax := ClassifiedManifest{PaxGroups: []CargoItem{{ID: "PAX-1", PaxCount: 0}}}
	if !zeroPax.IsEmpty() {
		t.Error("Expected manifest with a zero-count pax group to be empty")
	}
}

func TestFootprint_Intersects(t *testing.T) {
	a := Footprint{StartIn: 0, EndIn: 100, LeftIn: -40, RightIn: 40}

	overlapping := Footprint{StartIn: 50, EndIn: 150, LeftIn: -40, RightIn: 40}
	if !a.Intersects(overlapping) {
		t.Error("Expected overlapping footprints to intersect")
	}

	touching := Footprint{StartIn: 100, EndIn: 200, LeftIn: -40, RightIn: 40}
	if a.Intersects(touching) {
		t.Error("Expected footprints sharing an edge not to intersect")
	}

	sideBySide := Footprint{StartIn: 0, EndIn: 100, LeftIn: 40, RightIn: 80}
	if a.Intersects(sideBySide) {
		t.Error("Expected laterally adjacent footprints not to intersect")
	}
}
