// ABOUTME: AircraftProfile reference data describing one airframe type
// ABOUTME: Cargo bay geometry, pallet grid, payload, seats, and CG envelope

package models

import "fmt"

// AircraftProfile is the static specification record for one aircraft
// type. Loaded at startup and never mutated during a solve.
type AircraftProfile struct {
	Type                 string    `json:"type" yaml:"type"`
	Name                 string    `json:"name" yaml:"name"`
	BayLengthIn          float64   `json:"bay_length_in" yaml:"bay_length_in"` // floor plus ramp
	BayWidthIn           float64   `json:"bay_width_in" yaml:"bay_width_in"`
	BayHeightIn          float64   `json:"bay_height_in" yaml:"bay_height_in"`
	RampLengthIn         float64   `json:"ramp_length_in" yaml:"ramp_length_in"` // aft reduced-limit zone, 0 = no ramp
	MaxPayloadLb         float64   `json:"max_payload_lb" yaml:"max_payload_lb"`
	PalletPositions      int       `json:"pallet_positions" yaml:"pallet_positions"`
	PalletLanes          []float64 `json:"pallet_lanes" yaml:"pallet_lanes"` // lane centerline offsets, negative = left
	PalletsRotated       bool      `json:"pallets_rotated" yaml:"pallets_rotated"` // platform long side runs fore-aft
	PositionWeightLb     float64   `json:"position_weight_lb" yaml:"position_weight_lb"`
	RampPositionWeightLb float64   `json:"ramp_position_weight_lb" yaml:"ramp_position_weight_lb"`
	SeatCapacity         int       `json:"seat_capacity" yaml:"seat_capacity"`
	CobMinPercent        float64   `json:"cob_min_percent" yaml:"cob_min_percent"` // forward envelope limit, %MAC
	CobMaxPercent        float64   `json:"cob_max_percent" yaml:"cob_max_percent"` // aft envelope limit, %MAC
	LemacStationIn       float64   `json:"lemac_station_in" yaml:"lemac_station_in"`
	MacLengthIn          float64   `json:"mac_length_in" yaml:"mac_length_in"`
	BayOriginStationIn   float64   `json:"bay_origin_station_in" yaml:"bay_origin_station_in"` // fuselage station of bay coordinate 0
}

// Validate rejects malformed profiles before any solve can run.
func (p AircraftProfile) Validate() error {
	if p.Type == "" {
		return fmt.Errorf("aircraft profile missing type")
	}
	if p.BayLengthIn <= 0 || p.BayWidthIn <= 0 || p.BayHeightIn <= 0 {
		return fmt.Errorf("profile %s: cargo bay dimensions must be positive", p.Type)
	}
	if p.RampLengthIn < 0 || p.RampLengthIn > p.BayLengthIn {
		return fmt.Errorf("profile %s: ramp length %.0f outside bay length %.0f", p.Type, p.RampLengthIn, p.BayLengthIn)
	}
	if p.MaxPayloadLb <= 0 {
		return fmt.Errorf("profile %s: max payload must be positive", p.Type)
	}
	if p.PalletPositions < 0 {
		return fmt.Errorf("profile %s: pallet positions must not be negative", p.Type)
	}
	if p.PalletPositions > 0 && len(p.PalletLanes) == 0 {
		return fmt.Errorf("profile %s: pallet positions defined without lane offsets", p.Type)
	}
	for _, lane := range p.PalletLanes {
		if lane < -p.BayWidthIn/2 || lane > p.BayWidthIn/2 {
			return fmt.Errorf("profile %s: lane offset %.1f outside bay half-width", p.Type, lane)
		}
	}
	if p.PalletPositions > 0 && p.PositionWeightLb <= 0 {
		return fmt.Errorf("profile %s: position weight ceiling must be positive", p.Type)
	}
	if p.RampLengthIn > 0 && p.RampPositionWeightLb <= 0 {
		return fmt.Errorf("profile %s: ramp weight ceiling must be positive when a ramp zone exists", p.Type)
	}
	if p.SeatCapacity < 0 {
		return fmt.Errorf("profile %s: seat capacity must not be negative", p.Type)
	}
	if p.MacLengthIn <= 0 {
		return fmt.Errorf("profile %s: MAC length must be positive", p.Type)
	}
	if p.CobMaxPercent <= p.CobMinPercent {
		return fmt.Errorf("profile %s: CG envelope is empty (%.1f to %.1f %%MAC)", p.Type, p.CobMinPercent, p.CobMaxPercent)
	}
	return nil
}

// RampStartIn returns the bay-local coordinate where the reduced-limit
// ramp zone begins. Equals bay length when there is no ramp.
func (p AircraftProfile) RampStartIn() float64 {
	return p.BayLengthIn - p.RampLengthIn
}

// TargetMacPercent is the midpoint of the CG envelope, the station the
// placers steer toward.
func (p AircraftProfile) TargetMacPercent() float64 {
	return (p.CobMinPercent + p.CobMaxPercent) / 2
}

// EnvelopeSpanPercent is the envelope width in %MAC, used to normalize
// CG deviation scores. Validate guarantees it is positive.
func (p AircraftProfile) EnvelopeSpanPercent() float64 {
	return p.CobMaxPercent - p.CobMinPercent
}

// StationAt converts a bay-local longitudinal coordinate to a fuselage station.
func (p AircraftProfile) StationAt(localX float64) float64 {
	return p.BayOriginStationIn + localX
}

// TargetLocalXIn converts the envelope-midpoint station into the solver's
// bay-local coordinate space, clamped into the bay.
func (p AircraftProfile) TargetLocalXIn() float64 {
	station := p.LemacStationIn + p.MacLengthIn*p.TargetMacPercent()/100
	x := station - p.BayOriginStationIn
	if x < 0 {
		return 0
	}
	if x > p.BayLengthIn {
		return p.BayLengthIn
	}
	return x
}
