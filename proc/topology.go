// Package proc holds the physical-process components stepped by the model
// loop: flow routing, stream-power incision, hillslope diffusion and
// weathering. Components sweep node-indexed fields over a Topology and write
// core nodes only; boundary nodes belong to the boundary handlers.
package proc

// Topology is the node connectivity a process component sweeps over
type Topology interface {
	Nodes() int
	Neighbors(i int) []int // 8-connected
	Cardinals(i int) []int // 4-connected
	Dist(i, j int) float64 // centre-to-centre distance between neighbouring nodes
	CellWidth() float64
	CellArea() float64
	IsCore(i int) bool
}

// Adjuster scales erodibility in response to an external forcing
type Adjuster interface {
	ErodibilityAdjustmentFactor() float64
}
