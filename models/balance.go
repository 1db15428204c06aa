// ABOUTME: Weight and balance result types for center-of-gravity reporting
// ABOUTME: Carries raw and clamped %MAC plus envelope compliance status

package models

// Envelope compliance states.
const (
	EnvelopeIn      = "in_envelope"
	EnvelopeForward = "forward_limit"
	EnvelopeAft     = "aft_limit"
)

// BalanceLoad is one weight contribution to the CG computation: a weight
// spanning a longitudinal interval at a lateral offset.
type BalanceLoad struct {
	WeightLb  float64 `json:"weight_lb"`
	StartIn   float64 `json:"start_in"`   // longitudinal start, bay-local
	LengthIn  float64 `json:"length_in"`  // arm is taken at start + length/2
	LateralIn float64 `json:"lateral_in"` // lateral center offset
}

// BalanceReport is the computed weight and balance state of one load.
// CobPercent carries the physics value and is never clamped; consumers
// needing a bounded percentage read ClampedMacPercent instead.
type BalanceReport struct {
	TotalWeightLb     float64 `json:"total_weight_lb"`
	StationCgIn       float64 `json:"station_cg_in"`
	CobPercent        float64 `json:"cob_percent"`
	ClampedMacPercent float64 `json:"clamped_mac_percent"` // display only, forced into [0,100]
	InEnvelope        bool    `json:"in_envelope"`
	EnvelopeStatus    string  `json:"envelope_status"` // in_envelope, forward_limit, aft_limit
	DeviationPercent  float64 `json:"deviation_percent"` // signed distance outside the nearer limit
	LateralCgIn       float64 `json:"lateral_cg_in"`
}
