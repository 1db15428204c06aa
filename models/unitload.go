// ABOUTME: UnitLoad model for 463L-class palletized cargo
// ABOUTME: Aggregates loose items onto a platform with footprint and weight limits

package models

// UnitLoad is one or more CargoItems built up on a 463L-class platform.
// Created by the pallet builder and consumed read-only by the placers.
type UnitLoad struct {
	ID            string      `json:"id"`
	Items         []CargoItem `json:"items"`
	LengthIn      float64     `json:"length_in"` // platform long side
	WidthIn       float64     `json:"width_in"`  // platform short side
	HeightIn      float64     `json:"height_in"` // tallest item on the load
	NetWeightLb   float64     `json:"net_weight_lb"`
	GrossWeightLb float64     `json:"gross_weight_lb"` // net plus platform tare
	Hazmat        bool        `json:"hazmat"`
	IsPrebuilt    bool        `json:"is_prebuilt"`
}

// WeaponsPriority reports whether any item on the load carries a
// weapons or ordnance description.
func (u UnitLoad) WeaponsPriority() bool {
	for _, item := range u.Items {
		if item.WeaponsPriority() {
			return true
		}
	}
	return false
}

// ItemWeightLb sums the member item weights, excluding platform tare.
func (u UnitLoad) ItemWeightLb() float64 {
	total := 0.0
	for _, item := range u.Items {
		total += item.WeightLb
	}
	return total
}
