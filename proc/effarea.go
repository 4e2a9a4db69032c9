package proc

import (
	"fmt"
	"math"
)

// EffectiveArea variable-source-area runoff: the discharge-producing area
// shrinks where the soil column can transmit the recharge downslope,
// Aeff = A exp(-Ksat H dx / R · S/A). Recomputed each step between routing
// and incision; off-core nodes pass drainage area through untransformed.
type EffectiveArea struct {
	top               Topology
	area, slope, h, q []float64
	Kdx, R            float64 // saturated conductivity × cell width; recharge rate
}

// NewEffectiveArea constructor
func NewEffectiveArea(top Topology, area, slope, h, q []float64, ksat, recharge float64) (*EffectiveArea, error) {
	if ksat < 0. || recharge <= 0. {
		return nil, fmt.Errorf("proc.NewEffectiveArea: bad saturation parameters (Ksat %g, recharge %g)", ksat, recharge)
	}
	return &EffectiveArea{top: top, area: area, slope: slope, h: h, q: q, Kdx: ksat * top.CellWidth(), R: recharge}, nil
}

// RunOneStep refreshes the discharge field for the current routed topography
func (ea *EffectiveArea) RunOneStep(dt float64) error {
	n := ea.top.Nodes()
	for i := 0; i < n; i++ {
		ea.q[i] = ea.area[i]
		if !ea.top.IsCore(i) {
			continue
		}
		sat := ea.Kdx * ea.h[i] / ea.R
		ea.q[i] = ea.area[i] * math.Exp(-sat*ea.slope[i]/ea.area[i])
	}
	return nil
}
