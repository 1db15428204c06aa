// ABOUTME: Core cargo data models for airlift load planning
// ABOUTME: Defines manifest items, categories, phases, and the classified manifest

package models

import "strings"

// Cargo categories assigned during manifest classification.
const (
	CategoryRollingStock   = "ROLLING_STOCK"   // drives or rolls on, placed on the bay floor
	CategoryPalletizable   = "PALLETIZABLE"    // loose cargo grouped onto 463L platforms
	CategoryPrebuiltPallet = "PREBUILT_PALLET" // arrives already built up on a platform
	CategoryPax            = "PAX"             // passenger group, seated not placed
)

// Movement phases. ADVON cargo is loaded and dispatched before MAIN.
const (
	PhaseAdvon = "ADVON"
	PhaseMain  = "MAIN"
)

// weaponsKeywords mark cargo that loads before anything else per
// force-protection doctrine. Matched case-insensitively on description.
var weaponsKeywords = []string{
	"weapon", "ammo", "ammunition", "ordnance", "missile",
	"rocket", "gun", "howitzer", "mortar", "armament",
}

// CargoItem is a single manifest line. Immutable once classified.
type CargoItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	WeightLb    float64 `json:"weight_lb"`
	LengthIn    float64 `json:"length_in"`
	WidthIn     float64 `json:"width_in"`
	HeightIn    float64 `json:"height_in"`
	Category    string  `json:"category"`       // ROLLING_STOCK, PALLETIZABLE, PREBUILT_PALLET, PAX
	Phase       string  `json:"phase"`          // ADVON or MAIN
	Hazmat      bool    `json:"hazmat"`
	TCN         string  `json:"tcn,omitempty"`  // transportation control number
	PaxCount    int     `json:"pax_count,omitempty"` // only for PAX entries
}

// WeaponsPriority reports whether the item description matches a
// weapons or ordnance keyword.
func (c CargoItem) WeaponsPriority() bool {
	desc := strings.ToLower(c.Description)
	for _, kw := range weaponsKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// InPhase treats anything not explicitly ADVON as MAIN.
func (c CargoItem) InPhase(phase string) bool {
	if c.Phase == PhaseAdvon {
		return phase == PhaseAdvon
	}
	return phase == PhaseMain
}

// FootprintArea returns length times width in square inches.
func (c CargoItem) FootprintArea() float64 {
	return c.LengthIn * c.WidthIn
}

// ClassifiedManifest is the solver's input contract: manifest lines
// already split by category, each line tagged with a phase.
type ClassifiedManifest struct {
	RollingStock    []CargoItem `json:"rolling_stock"`
	LooseItems      []CargoItem `json:"loose_items"`
	PrebuiltPallets []CargoItem `json:"prebuilt_pallets"`
	PaxGroups       []CargoItem `json:"pax_groups"`
}

// IsEmpty reports whether the manifest carries no cargo and no passengers.
func (m ClassifiedManifest) IsEmpty() bool {
	return len(m.RollingStock) == 0 && len(m.LooseItems) == 0 &&
		len(m.PrebuiltPallets) == 0 && m.TotalPax() == 0
}

// TotalPax sums requested passengers across all PAX groups.
func (m ClassifiedManifest) TotalPax() int {
	total := 0
	for _, g := range m.PaxGroups {
		total += g.PaxCount
	}
	return total
}

// TotalWeightLb sums cargo item weights. Passenger weight is a planning
// factor applied by the solver, not manifest data, so it is excluded here.
func (m ClassifiedManifest) TotalWeightLb() float64 {
	total := 0.0
	for _, item := range m.RollingStock {
		total += item.WeightLb
	}
	for _, item := range m.LooseItems {
		total += item.WeightLb
	}
	for _, item := range m.PrebuiltPallets {
		total += item.WeightLb
	}
	return total
}

// ItemCount counts cargo lines, excluding PAX groups.
func (m ClassifiedManifest) ItemCount() int {
	return len(m.RollingStock) + len(m.LooseItems) + len(m.PrebuiltPallets)
}

// phaseFilter returns the subset of items belonging to the given phase.
func phaseFilter(items []CargoItem, phase string) []CargoItem {
	out := make([]CargoItem, 0, len(items))
	for _, item := range items {
		if item.InPhase(phase) {
			out = append(out, item)
		}
	}
	return out
}

// ForPhase returns the slice of the manifest belonging to one movement phase.
func (m ClassifiedManifest) ForPhase(phase string) ClassifiedManifest {
	return ClassifiedManifest{
		RollingStock:    phaseFilter(m.RollingStock, phase),
		LooseItems:      phaseFilter(m.LooseItems, phase),
		PrebuiltPallets: phaseFilter(m.PrebuiltPallets, phase),
		PaxGroups:       phaseFilter(m.PaxGroups, phase),
	}
}
