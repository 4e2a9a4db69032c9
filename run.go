package terrainbento

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"
)

// monitor records one node's field value at the end of every completed step
type monitor struct {
	a    []float64
	fld  string
	node int
	t, v []float64
}

func (mn *monitor) sample(t float64) {
	mn.t = append(mn.t, t)
	mn.v = append(mn.v, mn.a[mn.node])
}

// MonitorNode samples field[node] after every step for later output
func (m *Model) MonitorNode(field string, node int) error {
	a, ok := m.Grid.Field(field)
	if !ok {
		return fmt.Errorf("terrainbento.MonitorNode: no field %s", field)
	}
	if node < 0 || node >= m.Grid.Nodes() {
		return fmt.Errorf("terrainbento.MonitorNode: node %d not on grid", node)
	}
	m.mons = append(m.mons, &monitor{a: a, fld: field, node: node})
	return nil
}

// WriteMonitors prints each monitored trace to dirprfx as a two-column csv
func (m *Model) WriteMonitors(dirprfx string) {
	for _, mn := range m.mons {
		ti := make([]interface{}, len(mn.t))
		vi := make([]interface{}, len(mn.v))
		for i := range mn.t {
			ti[i] = mn.t[i]
			vi[i] = mn.v[i]
		}
		mmio.WriteCSV(fmt.Sprintf("%s%s.%d.csv", dirprfx, mn.fld, mn.node), "t,v", ti, vi)
	}
}

// Run steps the model from the clock's current time to its stop time; the
// final step is shortened to land exactly on Stop
func (m *Model) Run(print bool) error {
	nstp := m.Clock.NSteps()
	var bar *uiprogress.Bar
	if print {
		uiprogress.Start()
		bar = uiprogress.AddBar(nstp).AppendCompleted().PrependElapsed()
	}
	for m.Clock.Time() < m.Clock.Stop {
		dt := m.Clock.Step
		if rem := m.Clock.Stop - m.Clock.Time(); rem < dt {
			dt = rem
		}
		if err := m.RunOneStep(dt); err != nil {
			if print {
				uiprogress.Stop()
			}
			return err
		}
		for _, mn := range m.mons {
			mn.sample(m.Clock.Time())
		}
		if print {
			bar.Incr()
		}
	}
	if print {
		uiprogress.Stop()
	}
	return nil
}
