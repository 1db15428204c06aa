// ABOUTME: Unit load builder grouping loose cargo onto 463L platforms
// ABOUTME: Greedy next-fit by descending weight with footprint and weight caps

package solver

import (
	"fmt"

	"github.com/twaldron/airlift-planner/models"
)

// 463L platform limits. Usable surface is smaller than the platform
// because the outer 2 inches carry the tie-down rails.
const (
	PlatformLengthIn       = 108.0
	PlatformWidthIn        = 88.0
	PlatformUsableLengthIn = 104.0
	PlatformUsableWidthIn  = 84.0
	PlatformTareLb         = 290.0
	PlatformMaxNetLb       = 10000.0
	PlatformMaxStackIn     = 96.0
)

// BuildResult is the unit load builder's output: the full pallet list,
// items that can never ride a platform, and builder warnings.
type BuildResult struct {
	Pallets        []models.UnitLoad
	Unpalletizable []models.CargoItem
	Warnings       []models.AllocationWarning
}

// PalletBuilder assembles unit loads and owns the pallet ID sequence.
// Create one per solve so concurrent solves never share a counter.
type PalletBuilder struct {
	nextID int
}

// NewPalletBuilder starts a fresh ID sequence.
func NewPalletBuilder() *PalletBuilder {
	return &PalletBuilder{nextID: 1}
}

func (b *PalletBuilder) nextPalletID() string {
	id := fmt.Sprintf("P-%d", b.nextID)
	b.nextID++
	return id
}

// fitsPlatform checks a single item against platform limits, allowing
// the item to turn 90 degrees on the surface.
func fitsPlatform(item models.CargoItem) bool {
	if item.WeightLb > PlatformMaxNetLb || item.HeightIn > PlatformMaxStackIn {
		return false
	}
	straight := item.LengthIn <= PlatformUsableLengthIn && item.WidthIn <= PlatformUsableWidthIn
	turned := item.LengthIn <= PlatformUsableWidthIn && item.WidthIn <= PlatformUsableLengthIn
	return straight || turned
}

// openPallet is the in-progress load the builder fills before closing it.
type openPallet struct {
	items    []models.CargoItem
	usedArea float64
	netLb    float64
	heightIn float64
	hazmat   bool
}

func (o *openPallet) accepts(item models.CargoItem) bool {
	if o.netLb+item.WeightLb > PlatformMaxNetLb {
		return false
	}
	return o.usedArea+item.FootprintArea() <= PlatformUsableLengthIn*PlatformUsableWidthIn
}

func (o *openPallet) add(item models.CargoItem) {
	o.items = append(o.items, item)
	o.usedArea += item.FootprintArea()
	o.netLb += item.WeightLb
	if item.HeightIn > o.heightIn {
		o.heightIn = item.HeightIn
	}
	o.hazmat = o.hazmat || item.Hazmat
}

func (b *PalletBuilder) close(o *openPallet) models.UnitLoad {
	return models.UnitLoad{
		ID:            b.nextPalletID(),
		Items:         o.items,
		LengthIn:      PlatformLengthIn,
		WidthIn:       PlatformWidthIn,
		HeightIn:      o.heightIn,
		NetWeightLb:   o.netLb,
		GrossWeightLb: o.netLb + PlatformTareLb,
		Hazmat:        o.hazmat,
	}
}

// Build passes prebuilt pallets through unchanged and groups loose items
// onto new platforms. Items are taken heaviest first; a new platform
// opens whenever the current one would overflow surface area or net
// weight. Items exceeding single-item limits are reported, never dropped.
func (b *PalletBuilder) Build(prebuilt, loose []models.CargoItem) BuildResult {
	var result BuildResult

	for _, item := range prebuilt {
		result.Pallets = append(result.Pallets, b.passThrough(item))
	}

	var fitting []models.CargoItem
	for _, item := range loose {
		if fitsPlatform(item) {
			fitting = append(fitting, item)
			continue
		}
		result.Unpalletizable = append(result.Unpalletizable, item)
	}
	if n := len(result.Unpalletizable); n > 0 {
		result.Warnings = append(result.Warnings, models.AllocationWarning{
			Severity: models.SeverityWarning,
			Message:  fmt.Sprintf("%d item(s) exceed 463L platform limits and cannot be palletized", n),
		})
	}

	fitting = sortItemsForLoading(fitting)

	var current *openPallet
	for _, item := range fitting {
		if current != nil && !current.accepts(item) {
			result.Pallets = append(result.Pallets, b.close(current))
			current = nil
		}
		if current == nil {
			current = &openPallet{}
		}
		current.add(item)
	}
	if current != nil {
		result.Pallets = append(result.Pallets, b.close(current))
	}

	return result
}

// passThrough wraps a prebuilt pallet manifest line as a UnitLoad. The
// manifest weight of a prebuilt already includes the platform tare.
func (b *PalletBuilder) passThrough(item models.CargoItem) models.UnitLoad {
	length := item.LengthIn
	width := item.WidthIn
	if length <= 0 {
		length = PlatformLengthIn
	}
	if width <= 0 {
		width = PlatformWidthIn
	}
	net := item.WeightLb - PlatformTareLb
	if net < 0 {
		net = 0
	}
	return models.UnitLoad{
		ID:            item.ID,
		Items:         []models.CargoItem{item},
		LengthIn:      length,
		WidthIn:       width,
		HeightIn:      item.HeightIn,
		NetWeightLb:   net,
		GrossWeightLb: item.WeightLb,
		Hazmat:        item.Hazmat,
		IsPrebuilt:    true,
	}
}
