// ABOUTME: Placement models locating cargo inside the bay
// ABOUTME: Footprint geometry shared by pallet and vehicle placements

package models

// Vehicle side classification relative to the bay centerline.
const (
	SideCenter = "center"
	SideLeft   = "left"
	SideRight  = "right"
)

// Footprint is an axis-aligned occupied rectangle in the longitudinal
// by lateral plane of the cargo bay.
type Footprint struct {
	StartIn float64 `json:"start_in"` // longitudinal, bay-local
	EndIn   float64 `json:"end_in"`
	LeftIn  float64 `json:"left_in"` // lateral, negative = left of centerline
	RightIn float64 `json:"right_in"`
}

// Intersects reports whether two footprints overlap with positive area.
// Shared edges do not count as overlap.
func (f Footprint) Intersects(other Footprint) bool {
	return f.StartIn < other.EndIn && other.StartIn < f.EndIn &&
		f.LeftIn < other.RightIn && other.LeftIn < f.RightIn
}

// PalletPlacement assigns one UnitLoad to a discrete grid slot.
// Accepted placements are never moved.
type PalletPlacement struct {
	Pallet    UnitLoad `json:"pallet"`
	Row       int      `json:"row"`
	Lane      int      `json:"lane"`
	StartIn   float64  `json:"start_in"`
	EndIn     float64  `json:"end_in"`
	LateralIn float64  `json:"lateral_in"` // lane centerline offset
	LeftIn    float64  `json:"left_in"`
	RightIn   float64  `json:"right_in"`
	InRamp    bool     `json:"in_ramp"`
}

// Footprint returns the occupied rectangle of the placement.
func (p PalletPlacement) Footprint() Footprint {
	return Footprint{StartIn: p.StartIn, EndIn: p.EndIn, LeftIn: p.LeftIn, RightIn: p.RightIn}
}

// VehiclePlacement assigns one rolling-stock item to a floor position.
// Accepted placements are never moved.
type VehiclePlacement struct {
	Item      CargoItem `json:"item"`
	StartIn   float64   `json:"start_in"`
	EndIn     float64   `json:"end_in"`
	LateralIn float64   `json:"lateral_in"` // lateral center offset
	LeftIn    float64   `json:"left_in"`
	RightIn   float64   `json:"right_in"`
	Side      string    `json:"side"` // center, left, right
	InRamp    bool      `json:"in_ramp"`
}

// Footprint returns the occupied rectangle of the placement.
func (v VehiclePlacement) Footprint() Footprint {
	return Footprint{StartIn: v.StartIn, EndIn: v.EndIn, LeftIn: v.LeftIn, RightIn: v.RightIn}
}
