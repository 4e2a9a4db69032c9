package proc

import "math"

// LinearDiffuser explicit linear hillslope diffusion,
// dz/dt = D ∇²z on core nodes over the 4-neighbourhood
type LinearDiffuser struct {
	top Topology
	z   []float64
	D   float64
	dz  []float64
}

// NewLinearDiffuser constructor
func NewLinearDiffuser(top Topology, z []float64, d float64) *LinearDiffuser {
	return &LinearDiffuser{top: top, z: z, D: d, dz: make([]float64, top.Nodes())}
}

// RunOneStep buffers the full increment before applying so sweep order
// cannot bias the stencil
func (ld *LinearDiffuser) RunOneStep(dt float64) error {
	n, cw2 := ld.top.Nodes(), ld.top.CellWidth()*ld.top.CellWidth()
	for i := 0; i < n; i++ {
		ld.dz[i] = 0.
		if !ld.top.IsCore(i) {
			continue
		}
		lap := 0.
		for _, j := range ld.top.Cardinals(i) {
			lap += ld.z[j] - ld.z[i]
		}
		ld.dz[i] = ld.D * lap / cw2 * dt
	}
	for i := 0; i < n; i++ {
		ld.z[i] += ld.dz[i]
	}
	return nil
}

// DepthDependentDiffuser hillslope soil transport with efficiency decaying
// over the soil transport decay depth: only regolith moves, the elevation
// tracks bedrock plus soil
type DepthDependentDiffuser struct {
	top      Topology
	z, br, h []float64
	D, Hstar float64 // transport coefficient; soil transport decay depth
	dh       []float64
}

// NewDepthDependentDiffuser constructor
func NewDepthDependentDiffuser(top Topology, z, br, h []float64, d, hstar float64) *DepthDependentDiffuser {
	return &DepthDependentDiffuser{top: top, z: z, br: br, h: h, D: d, Hstar: hstar, dh: make([]float64, top.Nodes())}
}

// RunOneStep moves soil down the surface gradient, efficiency 1-exp(-H/H*).
// Soil depth is first re-derived from the elevation and interface fields so
// that incision applied earlier in the step thins the column it cut.
func (dd *DepthDependentDiffuser) RunOneStep(dt float64) error {
	n, cw2 := dd.top.Nodes(), dd.top.CellWidth()*dd.top.CellWidth()
	for i := 0; i < n; i++ {
		dd.h[i] = dd.z[i] - dd.br[i]
	}
	for i := 0; i < n; i++ {
		dd.dh[i] = 0.
		if !dd.top.IsCore(i) {
			continue
		}
		lap := 0.
		for _, j := range dd.top.Cardinals(i) {
			lap += dd.z[j] - dd.z[i]
		}
		dd.dh[i] = dd.D * (1. - math.Exp(-dd.h[i]/dd.Hstar)) * lap / cw2 * dt
	}
	for i := 0; i < n; i++ {
		if dd.dh[i] == 0. {
			continue
		}
		dd.h[i] += dd.dh[i]
		if dd.h[i] < 0. {
			dd.h[i] = 0.
		}
		dd.z[i] = dd.br[i] + dd.h[i]
	}
	return nil
}
