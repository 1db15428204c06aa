// ABOUTME: Aircraft profile registry with built-in airframe reference data
// ABOUTME: Merges optional YAML profile files over the built-ins, validating fail-fast

package profiles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/twaldron/airlift-planner/models"
)

// Builtin returns the airframe types the planner knows without any
// configuration. Geometry is in inches, weights in pounds, stations
// relative to the fuselage datum.
func Builtin() []models.AircraftProfile {
	return []models.AircraftProfile{
		{
			Type:                 "C-17A",
			Name:                 "Globemaster III",
			BayLengthIn:          1056,
			BayWidthIn:           216,
			BayHeightIn:          148,
			RampLengthIn:         244,
			MaxPayloadLb:         170900,
			PalletPositions:      18,
			PalletLanes:          []float64{-54, 54},
			PalletsRotated:       false,
			PositionWeightLb:     10355,
			RampPositionWeightLb: 8000,
			SeatCapacity:         54,
			CobMinPercent:        16,
			CobMaxPercent:        40,
			LemacStationIn:       850,
			MacLengthIn:          309.5,
			BayOriginStationIn:   480,
		},
		{
			Type:                 "C-5M",
			Name:                 "Super Galaxy",
			BayLengthIn:          1728,
			BayWidthIn:           228,
			BayHeightIn:          162,
			RampLengthIn:         284,
			MaxPayloadLb:         281001,
			PalletPositions:      36,
			PalletLanes:          []float64{-54, 54},
			PalletsRotated:       false,
			PositionWeightLb:     10355,
			RampPositionWeightLb: 7500,
			SeatCapacity:         73,
			CobMinPercent:        19,
			CobMaxPercent:        43,
			LemacStationIn:       1100,
			MacLengthIn:          390,
			BayOriginStationIn:   680,
		},
		{
			Type:                 "C-130J",
			Name:                 "Super Hercules",
			BayLengthIn:          603,
			BayWidthIn:           119,
			BayHeightIn:          108,
			RampLengthIn:         123,
			MaxPayloadLb:         42000,
			PalletPositions:      6,
			PalletLanes:          []float64{0},
			PalletsRotated:       false,
			PositionWeightLb:     10355,
			RampPositionWeightLb: 4664,
			SeatCapacity:         64,
			CobMinPercent:        15,
			CobMaxPercent:        30,
			LemacStationIn:       487,
			MacLengthIn:          164.5,
			BayOriginStationIn:   245,
		},
		{
			Type:                 "KC-135R",
			Name:                 "Stratotanker",
			BayLengthIn:          710,
			BayWidthIn:           127,
			BayHeightIn:          82,
			RampLengthIn:         0,
			MaxPayloadLb:         83000,
			PalletPositions:      6,
			PalletLanes:          []float64{0},
			PalletsRotated:       true,
			PositionWeightLb:     6000,
			RampPositionWeightLb: 0,
			SeatCapacity:         80,
			CobMinPercent:        17,
			CobMaxPercent:        33,
			LemacStationIn:       860,
			MacLengthIn:          241,
			BayOriginStationIn:   460,
		},
	}
}

// Registry holds validated aircraft profiles keyed by type.
type Registry struct {
	byType map[string]models.AircraftProfile
	order  []string
}

// profileFile is the YAML document layout for PROFILE_PATH files.
type profileFile struct {
	Profiles []models.AircraftProfile `yaml:"profiles"`
}

// NewRegistry builds a registry from the given profiles, rejecting the
// whole set on the first malformed entry. Later entries with a repeated
// type override earlier ones, which is how file profiles replace built-ins.
func NewRegistry(profileSets ...[]models.AircraftProfile) (*Registry, error) {
	r := &Registry{byType: make(map[string]models.AircraftProfile)}
	for _, set := range profileSets {
		for _, p := range set {
			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("invalid aircraft profile: %w", err)
			}
			if _, exists := r.byType[p.Type]; !exists {
				r.order = append(r.order, p.Type)
			}
			r.byType[p.Type] = p
		}
	}
	if len(r.order) == 0 {
		return nil, fmt.Errorf("no aircraft profiles defined")
	}
	return r, nil
}

// LoadFile parses a YAML profile file. Parse errors and malformed
// profiles both fail the load; there is no partial acceptance.
func LoadFile(path string) ([]models.AircraftProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	var doc profileFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse profile file %s: %w", path, err)
	}
	if len(doc.Profiles) == 0 {
		return nil, fmt.Errorf("profile file %s defines no profiles", path)
	}
	return doc.Profiles, nil
}

// Load builds the runtime registry: built-ins first, then the optional
// profile file layered on top. An empty path means built-ins only.
func Load(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(Builtin())
	}
	fromFile, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(Builtin(), fromFile)
}

// Get looks up one profile by type.
func (r *Registry) Get(acType string) (models.AircraftProfile, bool) {
	p, ok := r.byType[acType]
	return p, ok
}

// List returns all profiles in stable registration order.
func (r *Registry) List() []models.AircraftProfile {
	out := make([]models.AircraftProfile, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.byType[t])
	}
	return out
}

// Types returns the registered type names in stable order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Count returns how many profiles are registered.
func (r *Registry) Count() int {
	return len(r.order)
}

// Map returns a copy of the profile set for a solver invocation.
func (r *Registry) Map() map[string]models.AircraftProfile {
	out := make(map[string]models.AircraftProfile, len(r.byType))
	for t, p := range r.byType {
		out[t] = p
	}
	return out
}
