package proc

import "math"

// Weatherer exponential soil production, P0 exp(-H/Hs): bedrock converts to
// regolith in place, surface elevation is unchanged
type Weatherer struct {
	top    Topology
	br, h  []float64
	P0, Hs float64 // maximum production rate; production decay depth
}

// NewWeatherer constructor
func NewWeatherer(top Topology, br, h []float64, p0, hs float64) *Weatherer {
	return &Weatherer{top: top, br: br, h: h, P0: p0, Hs: hs}
}

// RunOneStep lowers the interface and thickens the soil column by the
// production accrued over dt
func (w *Weatherer) RunOneStep(dt float64) error {
	n := w.top.Nodes()
	for i := 0; i < n; i++ {
		if !w.top.IsCore(i) {
			continue
		}
		p := w.P0 * math.Exp(-w.h[i]/w.Hs) * dt
		w.br[i] -= p
		w.h[i] += p
	}
	return nil
}
