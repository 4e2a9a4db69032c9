package boundary

import (
	"fmt"
)

// Options configure a single-node baselevel handler. Exactly one of Rate and
// FilePath must be given. EndTime and EndValue (given together) rescale a
// file-sourced history to hit EndValue's implied lowering at EndTime.
type Options struct {
	OutletNode int
	Rate       *float64 // constant lowering rate
	FilePath   string   // outlet elevation history table
	StartTime  float64  // model start time, reference point for rescaling
	EndTime    *float64 // model stop time
	EndValue   *float64 // target baselevel value at EndTime
}

// Baselevel lowers the elevation of a single boundary node each step,
// dragging a co-located bedrock interface down with it whenever the lowering
// would otherwise leave the surface below the interface.
type Baselevel struct {
	z, br []float64 // elevation; optional subsurface interface
	node  int
	rs    RateSource
	cum   float64 // total displacement applied, diagnostics only
}

// NewBaselevel validates o and constructs the handler; all configuration
// faults are fatal and reported before the model starts. br may be nil.
func NewBaselevel(z, br []float64, o Options) (*Baselevel, error) {
	if o.OutletNode < 0 || o.OutletNode >= len(z) {
		return nil, fmt.Errorf("%w: outlet node %d not on grid", ErrConfiguration, o.OutletNode)
	}
	if br != nil && len(br) != len(z) {
		return nil, fmt.Errorf("%w: interface field does not match elevation field", ErrConfiguration)
	}
	if (o.EndTime == nil) != (o.EndValue == nil) {
		return nil, fmt.Errorf("%w: rescaling needs both a model end time and an end value", ErrConfiguration)
	}
	rescale := o.EndTime != nil

	var rs RateSource
	switch {
	case o.Rate != nil && o.FilePath != "":
		return nil, fmt.Errorf("%w: both a lowering rate and a lowering file given", ErrConfiguration)
	case o.Rate != nil:
		if rescale {
			return nil, fmt.Errorf("%w: rescaling only applies to a lowering file", ErrConfiguration)
		}
		rs = constantRate(*o.Rate)
	case o.FilePath != "":
		ts, err := loadTimeSeries(o.FilePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		if rs, err = newSeriesRate(ts, o.StartTime, o.EndTime, o.EndValue); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: neither a lowering rate nor a lowering file given", ErrConfiguration)
	}
	return &Baselevel{z: z, br: br, node: o.OutletNode, rs: rs}, nil
}

// Name handler registry key
func (b *Baselevel) Name() string { return "baselevel" }

// Apply lowers the outlet over [t0,t1). Call exactly once per interval:
// lookups are time-indexed, but repeating an interval double-applies it.
func (b *Baselevel) Apply(t0, t1 float64) {
	d := b.rs.resolve(t0, t1)
	b.z[b.node] -= d
	if b.br != nil && b.z[b.node] < b.br[b.node] {
		b.br[b.node] -= d
	}
	b.cum += d
}

// Cumulative total displacement applied so far
func (b *Baselevel) Cumulative() float64 { return b.cum }
