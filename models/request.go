// ABOUTME: Request and response envelopes for the allocation API
// ABOUTME: Covers single solves and multi-option fleet comparisons

package models

import "fmt"

// AllocationRequest asks for one solve. Exactly one of AircraftType
// (unbounded single-type mode) or Fleet (finite availability) must be set.
type AllocationRequest struct {
	Manifest     ClassifiedManifest `json:"manifest"`
	AircraftType string             `json:"aircraft_type,omitempty"`
	Fleet        []FleetEntry       `json:"fleet,omitempty"`
}

// Validate checks structural consistency before the solve runs.
func (r AllocationRequest) Validate() error {
	if r.AircraftType == "" && len(r.Fleet) == 0 {
		return fmt.Errorf("request must name an aircraft_type or a fleet")
	}
	if r.AircraftType != "" && len(r.Fleet) > 0 {
		return fmt.Errorf("aircraft_type and fleet are mutually exclusive")
	}
	for i, entry := range r.Fleet {
		if entry.Type == "" {
			return fmt.Errorf("fleet entry %d missing type", i)
		}
		if entry.Available < 0 {
			return fmt.Errorf("fleet entry %s: available count must not be negative", entry.Type)
		}
	}
	return validateManifest(r.Manifest)
}

func validateManifest(m ClassifiedManifest) error {
	check := func(items []CargoItem, list string) error {
		for _, item := range items {
			if item.ID == "" {
				return fmt.Errorf("%s: item with empty id", list)
			}
			if item.WeightLb < 0 {
				return fmt.Errorf("%s: item %s has negative weight", list, item.ID)
			}
			if item.LengthIn < 0 || item.WidthIn < 0 || item.HeightIn < 0 {
				return fmt.Errorf("%s: item %s has negative dimensions", list, item.ID)
			}
		}
		return nil
	}
	if err := check(m.RollingStock, "rolling_stock"); err != nil {
		return err
	}
	if err := check(m.LooseItems, "loose_items"); err != nil {
		return err
	}
	if err := check(m.PrebuiltPallets, "prebuilt_pallets"); err != nil {
		return err
	}
	for _, g := range m.PaxGroups {
		if g.PaxCount < 0 {
			return fmt.Errorf("pax_groups: group %s has negative pax count", g.ID)
		}
	}
	return nil
}

// FleetOption is one named fleet mix inside a comparison request.
type FleetOption struct {
	Name  string       `json:"name"`
	Fleet []FleetEntry `json:"fleet"`
}

// CompareRequest evaluates one manifest against several fleet options.
type CompareRequest struct {
	Manifest ClassifiedManifest `json:"manifest"`
	Options  []FleetOption      `json:"options"`
}

// Validate bounds the option count; each option is a full solve.
func (r CompareRequest) Validate() error {
	if len(r.Options) < 2 {
		return fmt.Errorf("comparison needs at least 2 fleet options")
	}
	if len(r.Options) > 8 {
		return fmt.Errorf("comparison limited to 8 fleet options")
	}
	for i, opt := range r.Options {
		if opt.Name == "" {
			return fmt.Errorf("option %d missing name", i)
		}
		if len(opt.Fleet) == 0 {
			return fmt.Errorf("option %s has an empty fleet", opt.Name)
		}
	}
	return validateManifest(r.Manifest)
}

// ComparisonEntry is one evaluated fleet option. Deltas are relative to
// the first option in the request, which acts as the baseline.
type ComparisonEntry struct {
	Name                  string           `json:"name"`
	Result                AllocationResult `json:"result"`
	DeltaAircraft         int              `json:"delta_aircraft"`
	DeltaUnloadedWeightLb float64          `json:"delta_unloaded_weight_lb"`
}

// CompareResponse ranks the evaluated options.
type CompareResponse struct {
	Entries []ComparisonEntry `json:"entries"`
	Best    string            `json:"best"` // fewest aircraft among feasible options, empty if none feasible
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
