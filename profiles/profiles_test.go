// ABOUTME: Tests for the aircraft profile registry and YAML loading
// ABOUTME: Covers built-in validation, file overrides, and fail-fast rejection

package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/twaldron/airlift-planner/models"
)

const overrideYAML = `profiles:
  - type: C-130J
    name: Super Hercules (restricted)
    bay_length_in: 603
    bay_width_in: 119
    bay_height_in: 108
    ramp_length_in: 123
    max_payload_lb: 35000
    pallet_positions: 6
    pallet_lanes: [0]
    pallets_rotated: false
    position_weight_lb: 10355
    ramp_position_weight_lb: 4664
    seat_capacity: 64
    cob_min_percent: 15
    cob_max_percent: 30
    lemac_station_in: 487
    mac_length_in: 164.5
    bay_origin_station_in: 245
  - type: C-27J
    name: Spartan
    bay_length_in: 389
    bay_width_in: 98
    bay_height_in: 88
    ramp_length_in: 0
    max_payload_lb: 25353
    pallet_positions: 3
    pallet_lanes: [0]
    pallets_rotated: false
    position_weight_lb: 7000
    ramp_position_weight_lb: 0
    seat_capacity: 46
    cob_min_percent: 18
    cob_max_percent: 34
    lemac_station_in: 310
    mac_length_in: 110
    bay_origin_station_in: 160
`

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write profile file: %v", err)
	}
	return path
}

func TestBuiltin_AllValid(t *testing.T) {
	for _, p := range Builtin() {
		if err := p.Validate(); err != nil {
			t.Errorf("Built-in profile %s failed validation: %v", p.Type, err)
		}
	}
}

func TestBuiltin_ExpectedTypes(t *testing.T) {
	r, err := NewRegistry(Builtin())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, want := range []string{"C-17A", "C-5M", "C-130J", "KC-135R"} {
		if _, ok := r.Get(want); !ok {
			t.Errorf("Expected built-in profile %s", want)
		}
	}
	if r.Count() != 4 {
		t.Errorf("Expected 4 built-in profiles, got %d", r.Count())
	}
}

func TestNewRegistry_LaterSetOverrides(t *testing.T) {
	override := []models.AircraftProfile{Builtin()[0]}
	override[0].SeatCapacity = 102

	r, err := NewRegistry(Builtin(), override)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	p, ok := r.Get("C-17A")
	if !ok {
		t.Fatal("Expected C-17A to remain registered")
	}
	if p.SeatCapacity != 102 {
		t.Errorf("Expected overridden seat capacity 102, got %d", p.SeatCapacity)
	}
	if r.Count() != 4 {
		t.Errorf("Expected override to replace, not add; got %d profiles", r.Count())
	}
}

func TestNewRegistry_RejectsMalformedProfile(t *testing.T) {
	bad := Builtin()[0]
	bad.MaxPayloadLb = 0

	if _, err := NewRegistry([]models.AircraftProfile{bad}); err == nil {
		t.Error("Expected error for zero payload profile")
	}
}

func TestNewRegistry_RejectsEmptySet(t *testing.T) {
	if _, err := NewRegistry(); err == nil {
		t.Error("Expected error for empty registry")
	}
}

func TestNewRegistry_StableOrder(t *testing.T) {
	r, err := NewRegistry(Builtin())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	types := r.Types()
	want := []string{"C-17A", "C-5M", "C-130J", "KC-135R"}
	for i, w := range want {
		if types[i] != w {
			t.Errorf("Expected type %s at position %d, got %s", w, i, types[i])
		}
	}

	list := r.List()
	if list[0].Type != "C-17A" {
		t.Errorf("Expected List to follow registration order, got %s first", list[0].Type)
	}
}

func TestLoadFile_ParsesYAML(t *testing.T) {
	path := writeProfileFile(t, overrideYAML)

	parsed, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(parsed))
	}
	if parsed[1].Type != "C-27J" {
		t.Errorf("Expected second profile C-27J, got %s", parsed[1].Type)
	}
	if parsed[0].MaxPayloadLb != 35000 {
		t.Errorf("Expected restricted payload 35000, got %.0f", parsed[0].MaxPayloadLb)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile("/no/such/profiles.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	path := writeProfileFile(t, "profiles: [not: {valid")

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadFile_NoProfiles(t *testing.T) {
	path := writeProfileFile(t, "profiles: []\n")

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for a file defining no profiles")
	}
}

func TestLoad_EmptyPathUsesBuiltins(t *testing.T) {
	r, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if r.Count() != 4 {
		t.Errorf("Expected 4 built-in profiles, got %d", r.Count())
	}
}

func TestLoad_FileLayersOverBuiltins(t *testing.T) {
	path := writeProfileFile(t, overrideYAML)

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if r.Count() != 5 {
		t.Errorf("Expected 4 built-ins plus 1 new type, got %d", r.Count())
	}
	herc, _ := r.Get("C-130J")
	if herc.MaxPayloadLb != 35000 {
		t.Errorf("Expected file override payload 35000, got %.0f", herc.MaxPayloadLb)
	}
	if _, ok := r.Get("C-27J"); !ok {
		t.Error("Expected new type C-27J from file")
	}
}

func TestLoad_MalformedFileFailsFast(t *testing.T) {
	path := writeProfileFile(t, `profiles:
  - type: BROKEN
    bay_length_in: 100
    bay_width_in: 100
    bay_height_in: 100
    max_payload_lb: -5
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed profile in file")
	}
}

func TestRegistry_MapIsCopy(t *testing.T) {
	r, err := NewRegistry(Builtin())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	m := r.Map()
	delete(m, "C-17A")

	if _, ok := r.Get("C-17A"); !ok {
		t.Error("Expected registry to be unaffected by mutation of the returned map")
	}
}
