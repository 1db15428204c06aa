// ABOUTME: Moment-based weight and balance model
// ABOUTME: Pure functions from load tuples to station CG, %MAC, and envelope status

package solver

import (
	"math"

	"github.com/twaldron/airlift-planner/models"
)

// Accumulator is the running weight and moment state carried through a
// placement pass. It is a value type; Add returns a new accumulator, so
// probing a candidate never disturbs the caller's state.
type Accumulator struct {
	WeightLb          float64
	MomentLbIn        float64 // about the fuselage datum
	LateralMomentLbIn float64 // about the bay centerline
}

// Add returns the accumulator after loading a weight spanning
// [startIn, startIn+lengthIn] at a lateral offset. The arm is taken at
// the span midpoint, converted to a fuselage station.
func (a Accumulator) Add(p models.AircraftProfile, weightLb, startIn, lengthIn, lateralIn float64) Accumulator {
	arm := p.StationAt(startIn + lengthIn/2)
	return Accumulator{
		WeightLb:          a.WeightLb + weightLb,
		MomentLbIn:        a.MomentLbIn + weightLb*arm,
		LateralMomentLbIn: a.LateralMomentLbIn + weightLb*lateralIn,
	}
}

// StationCgIn is the station-coordinate center of gravity. An empty
// accumulator reports the bay origin station instead of dividing by zero.
func (a Accumulator) StationCgIn(p models.AircraftProfile) float64 {
	if a.WeightLb <= 0 {
		return p.BayOriginStationIn
	}
	return a.MomentLbIn / a.WeightLb
}

// MacPercent converts the CG station to percent of mean aerodynamic
// chord. Not clamped: the bay is longer than the certified CG range, so
// legitimate values fall outside [0,100].
func (a Accumulator) MacPercent(p models.AircraftProfile) float64 {
	return (a.StationCgIn(p) - p.LemacStationIn) / p.MacLengthIn * 100
}

// LateralCgIn is the lateral center of gravity offset from centerline.
func (a Accumulator) LateralCgIn() float64 {
	if a.WeightLb <= 0 {
		return 0
	}
	return a.LateralMomentLbIn / a.WeightLb
}

// envelopeStatus classifies a %MAC value against the profile envelope,
// returning the status string and the signed deviation outside the
// nearer limit (zero when inside).
func envelopeStatus(macPercent float64, p models.AircraftProfile) (string, float64) {
	if macPercent < p.CobMinPercent {
		return models.EnvelopeForward, macPercent - p.CobMinPercent
	}
	if macPercent > p.CobMaxPercent {
		return models.EnvelopeAft, macPercent - p.CobMaxPercent
	}
	return models.EnvelopeIn, 0
}

// ComputeBalance evaluates a fixed list of loads against a profile.
// Stateless: the same loads always produce the same report.
func ComputeBalance(loads []models.BalanceLoad, p models.AircraftProfile) models.BalanceReport {
	acc := Accumulator{}
	for _, l := range loads {
		acc = acc.Add(p, l.WeightLb, l.StartIn, l.LengthIn, l.LateralIn)
	}
	return balanceReport(acc, p)
}

// balanceReport renders an accumulator into the reporting shape.
func balanceReport(acc Accumulator, p models.AircraftProfile) models.BalanceReport {
	mac := acc.MacPercent(p)
	status, deviation := envelopeStatus(mac, p)
	return models.BalanceReport{
		TotalWeightLb:     acc.WeightLb,
		StationCgIn:       acc.StationCgIn(p),
		CobPercent:        mac,
		ClampedMacPercent: clamp(mac, 0, 100),
		InEnvelope:        status == models.EnvelopeIn,
		EnvelopeStatus:    status,
		DeviationPercent:  deviation,
		LateralCgIn:       acc.LateralCgIn(),
	}
}

// clamp forces v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
