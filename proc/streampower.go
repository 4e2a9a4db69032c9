package proc

import (
	"fmt"
	"math"
)

// StreamPower explicit detachment-limited stream-power incision,
// dz = -K A^m S^n dt on core nodes. An optional Adjuster rescales K each
// step (time-varying climate forcing); absence means no adjustment. When a
// bedrock interface is supplied it is clamped to the incised surface.
type StreamPower struct {
	top         Topology
	z, br       []float64 // br may be nil
	area, slope []float64
	K, M, N     float64
	adj         Adjuster
}

// NewStreamPower constructor; adj may be nil
func NewStreamPower(top Topology, z, br, area, slope []float64, k, m, n float64, adj Adjuster) (*StreamPower, error) {
	if k < 0. {
		return nil, fmt.Errorf("proc.NewStreamPower: negative erodibility %g", k)
	}
	return &StreamPower{top: top, z: z, br: br, area: area, slope: slope, K: k, M: m, N: n, adj: adj}, nil
}

// RunOneStep incises core nodes for the current routed topography
func (sp *StreamPower) RunOneStep(dt float64) error {
	k := sp.K
	if sp.adj != nil {
		k *= sp.adj.ErodibilityAdjustmentFactor()
	}
	n := sp.top.Nodes()
	for i := 0; i < n; i++ {
		if !sp.top.IsCore(i) {
			continue
		}
		sp.z[i] -= k * math.Pow(sp.area[i], sp.M) * math.Pow(sp.slope[i], sp.N) * dt
	}
	if sp.br != nil {
		// water erosion into bedrock leaves the interface above the surface;
		// re-set it to the lower of itself and the current elevation
		for i := 0; i < n; i++ {
			if sp.br[i] > sp.z[i] {
				sp.br[i] = sp.z[i]
			}
		}
	}
	return nil
}
