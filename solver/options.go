// ABOUTME: Tunable solver options with planning-factor defaults
// ABOUTME: Candidate stepping, clearances, passenger weight, and loop guards

package solver

// Options carries the solver's planning factors. Zero values are
// replaced by defaults through Normalize, so a zero Options is usable.
type Options struct {
	PaxWeightLb          float64 // planning weight per passenger with gear
	CandidateStepIn      float64 // longitudinal step between vehicle candidates
	PalletClearanceIn    float64 // gap between pallet rows
	MaxAircraftPerPhase  int     // iteration ceiling per phase, a loop guard
	EnvelopePenalty      float64 // score multiplier once projected CG leaves the envelope
	LateralBalanceWeight float64 // tie-break weight for lane selection
}

// DefaultOptions returns the standard planning factors.
func DefaultOptions() Options {
	return Options{
		PaxWeightLb:          400,
		CandidateStepIn:      24,
		PalletClearanceIn:    4,
		MaxAircraftPerPhase:  50,
		EnvelopePenalty:      10,
		LateralBalanceWeight: 0.05,
	}
}

// Normalize fills unset fields with defaults and clamps nonsense values.
func (o Options) Normalize() Options {
	def := DefaultOptions()
	if o.PaxWeightLb <= 0 {
		o.PaxWeightLb = def.PaxWeightLb
	}
	if o.CandidateStepIn <= 0 {
		o.CandidateStepIn = def.CandidateStepIn
	}
	if o.PalletClearanceIn < 0 {
		o.PalletClearanceIn = def.PalletClearanceIn
	}
	if o.MaxAircraftPerPhase <= 0 {
		o.MaxAircraftPerPhase = def.MaxAircraftPerPhase
	}
	if o.EnvelopePenalty <= 1 {
		o.EnvelopePenalty = def.EnvelopePenalty
	}
	if o.LateralBalanceWeight < 0 {
		o.LateralBalanceWeight = def.LateralBalanceWeight
	}
	return o
}
