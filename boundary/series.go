package boundary

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

var (
	// ErrConfiguration fatal construction-time configuration fault
	ErrConfiguration = errors.New("boundary: invalid configuration")
	// ErrDataFormat unreadable or non-monotonic time-series table
	ErrDataFormat = errors.New("boundary: bad time-series table")
)

// timeSeries is an ordered, irregularly spaced (time,value) signal loaded
// once from a two-column table and immutable thereafter
type timeSeries struct {
	t, v []float64
}

// loadTimeSeries reads the first two whitespace-delimited numeric columns per
// row; at least two rows, times strictly increasing
func loadTimeSeries(fp string) (*timeSeries, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataFormat, fp, err)
	}
	var ts timeSeries
	for _, ln := range lns {
		f := strings.Fields(ln)
		if len(f) == 0 {
			continue
		}
		if len(f) < 2 {
			return nil, fmt.Errorf("%w: %s: row %q needs two columns", ErrDataFormat, fp, ln)
		}
		t, err := strconv.ParseFloat(f[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDataFormat, fp, err)
		}
		v, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDataFormat, fp, err)
		}
		if n := len(ts.t); n > 0 && t <= ts.t[n-1] {
			return nil, fmt.Errorf("%w: %s: times must strictly increase (%g follows %g)", ErrDataFormat, fp, t, ts.t[n-1])
		}
		ts.t = append(ts.t, t)
		ts.v = append(ts.v, v)
	}
	if len(ts.t) < 2 {
		return nil, fmt.Errorf("%w: %s: fewer than two samples", ErrDataFormat, fp)
	}
	return &ts, nil
}

// ValueAt linear interpolation between bracketing samples, clamped flat
// beyond either end of the record
func (ts *timeSeries) ValueAt(t float64) float64 {
	n := len(ts.t)
	if t <= ts.t[0] {
		return ts.v[0]
	}
	if t >= ts.t[n-1] {
		return ts.v[n-1]
	}
	i := sort.SearchFloat64s(ts.t, t) // first sample not before t
	if ts.t[i] == t {
		return ts.v[i]
	}
	f := (t - ts.t[i-1]) / (ts.t[i] - ts.t[i-1])
	return ts.v[i-1] + f*(ts.v[i]-ts.v[i-1])
}

// DeltaBetween change in the signal over [t0,t1]
func (ts *timeSeries) DeltaBetween(t0, t1 float64) float64 {
	return ts.ValueAt(t1) - ts.ValueAt(t0)
}
