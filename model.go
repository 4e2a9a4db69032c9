package terrainbento

import (
	"fmt"
)

// Process is a physical-process component stepped once per model interval
type Process interface {
	RunOneStep(dt float64) error
}

// BoundaryHandler applies externally imposed boundary conditions over the
// interval [t0,t1) ahead of any process component
type BoundaryHandler interface {
	Name() string
	Apply(t0, t1 float64)
}

// TimeVarying is satisfied by handlers holding a time-dependent parameter
// that must be refreshed when the model clock advances
type TimeVarying interface {
	Update(t float64)
}

// ErodibilityAdjuster is satisfied by handlers exposing a multiplicative
// adjustment that erosion components fold into their erodibility
type ErodibilityAdjuster interface {
	ErodibilityAdjustmentFactor() float64
}

// Model composes boundary handlers and process components into a single
// time-stepped simulation over shared grid fields
type Model struct {
	Grid  *Grid
	Clock *Clock
	procs []Process
	bhs   []BoundaryHandler
	mons  []*monitor
}

// NewModel constructor
func NewModel(g *Grid, c *Clock) *Model {
	return &Model{Grid: g, Clock: c}
}

// AddBoundaryHandler registers a handler; names must be unique
func (m *Model) AddBoundaryHandler(h BoundaryHandler) error {
	for _, hh := range m.bhs {
		if hh.Name() == h.Name() {
			return fmt.Errorf("terrainbento.AddBoundaryHandler: duplicate handler %q", h.Name())
		}
	}
	m.bhs = append(m.bhs, h)
	return nil
}

// AddProcess appends a process component; components step in the order added
func (m *Model) AddProcess(p Process) { m.procs = append(m.procs, p) }

// Handler returns the named boundary handler, if registered
func (m *Model) Handler(name string) (BoundaryHandler, bool) {
	for _, h := range m.bhs {
		if h.Name() == name {
			return h, true
		}
	}
	return nil, false
}

// Adjuster returns the registered erodibility-adjusting handler, if any.
// Absence is not an error; components treat it as "no adjustment".
func (m *Model) Adjuster() (ErodibilityAdjuster, bool) {
	for _, h := range m.bhs {
		if a, ok := h.(ErodibilityAdjuster); ok {
			return a, true
		}
	}
	return nil, false
}

// RunOneStep advances the model by dt: boundary handlers first, then process
// components in registration order, then the clock. A component failure
// restores all grid fields to their pre-step values.
func (m *Model) RunOneStep(dt float64) error {
	t0 := m.Clock.Time()
	snap := m.Grid.snapshot()
	for _, h := range m.bhs {
		h.Apply(t0, t0+dt)
	}
	for _, p := range m.procs {
		if err := p.RunOneStep(dt); err != nil {
			m.Grid.restore(snap)
			return fmt.Errorf("terrainbento.RunOneStep at t=%g: %w", t0, err)
		}
	}
	m.Clock.advance(dt)
	for _, h := range m.bhs {
		if tv, ok := h.(TimeVarying); ok {
			tv.Update(m.Clock.Time())
		}
	}
	return nil
}
