package boundary

import (
	"fmt"
	"math"
)

// RateSource resolves the boundary displacement (positive = lowering)
// applicable over one timestep interval [t0,t1)
type RateSource interface {
	resolve(t0, t1 float64) float64
}

// constantRate fixed lowering rate
type constantRate float64

func (r constantRate) resolve(t0, t1 float64) float64 { return float64(r) * (t1 - t0) }

// seriesRate interprets the loaded signal as the outlet elevation history;
// the step displacement is the decrease in that signal over the interval
type seriesRate struct {
	ts    *timeSeries
	scale float64
}

func (r *seriesRate) resolve(t0, t1 float64) float64 {
	return -r.scale * r.ts.DeltaBetween(t0, t1)
}

// newSeriesRate wraps a loaded series, rescaled so that accumulating the
// per-step displacements from tStart to endTime lands the boundary exactly on
// the elevation change implied by endValue, regardless of the raw magnitude
// of the signal. With no rescale target the series is taken as-is (scale 1).
func newSeriesRate(ts *timeSeries, tStart float64, endTime, endValue *float64) (*seriesRate, error) {
	if endTime == nil {
		return &seriesRate{ts: ts, scale: 1.}, nil
	}
	v0 := ts.ValueAt(tStart)
	dv := ts.ValueAt(*endTime) - v0
	if dv == 0. || math.IsNaN(dv) {
		return nil, fmt.Errorf("%w: series is flat over [%g,%g], cannot rescale", ErrConfiguration, tStart, *endTime)
	}
	return &seriesRate{ts: ts, scale: (*endValue - v0) / dv}, nil
}
