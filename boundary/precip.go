package boundary

import (
	"fmt"
	"math"
)

// PrecipChanger ramps rainfall statistics linearly over a given duration and
// exposes the resulting multiplicative erodibility adjustment that a
// stream-power component folds into its erodibility. It mutates no grid
// fields; its factor is refreshed as the model clock advances.
type PrecipChanger struct {
	f0, df float64 // starting rainfall intermittency; rate of change
	p0, dp float64 // starting mean storm intensity; rate of change
	ramp   float64 // duration over which change accrues
	m      float64 // discharge exponent of the coupled eroder
	fac    float64
}

// NewPrecipChanger constructor; the ramp holds its end state beyond
// stopTime-like durations
func NewPrecipChanger(intermittency, dIntermittency, intensity, dIntensity, ramp, m float64) (*PrecipChanger, error) {
	if intermittency <= 0. || intermittency > 1. {
		return nil, fmt.Errorf("%w: rainfall intermittency must be on (0,1]", ErrConfiguration)
	}
	if intensity <= 0. {
		return nil, fmt.Errorf("%w: mean storm intensity must be positive", ErrConfiguration)
	}
	if ramp <= 0. {
		return nil, fmt.Errorf("%w: ramp duration must be positive", ErrConfiguration)
	}
	fend := intermittency + dIntermittency*ramp
	if fend <= 0. || fend > 1. {
		return nil, fmt.Errorf("%w: intermittency leaves (0,1] over the ramp", ErrConfiguration)
	}
	if intensity+dIntensity*ramp <= 0. {
		return nil, fmt.Errorf("%w: storm intensity becomes non-positive over the ramp", ErrConfiguration)
	}
	return &PrecipChanger{
		f0: intermittency, df: dIntermittency,
		p0: intensity, dp: dIntensity,
		ramp: ramp, m: m, fac: 1.,
	}, nil
}

// Name handler registry key
func (pc *PrecipChanger) Name() string { return "precip" }

// Apply no field mutation; precipitation statistics force erosion indirectly
func (pc *PrecipChanger) Apply(t0, t1 float64) {}

// Update refreshes the adjustment factor for the current model time
func (pc *PrecipChanger) Update(t float64) { pc.fac = pc.factorAt(t) }

// ErodibilityAdjustmentFactor ratio of current to starting erosive efficacy
func (pc *PrecipChanger) ErodibilityAdjustmentFactor() float64 { return pc.fac }

// factorAt scales erosive efficacy with wet-day fraction and the mean storm
// intensity raised to the eroder's discharge exponent
func (pc *PrecipChanger) factorAt(t float64) float64 {
	tt := math.Min(t, pc.ramp)
	f := pc.f0 + pc.df*tt
	p := pc.p0 + pc.dp*tt
	return (f * math.Pow(p, pc.m)) / (pc.f0 * math.Pow(pc.p0, pc.m))
}
