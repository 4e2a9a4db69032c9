package terrainbento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdpiper/terrainbento/boundary"
)

func rate(v float64) *float64 { return &v }

func TestNewBasicNeedsElevation(t *testing.T) {
	g := NewGrid(5, 5, 10.)
	_, err := NewBasic(g, NewClock(0., 100., 10.), boundary.Options{OutletNode: 5, Rate: rate(0.1)}, nil, BasicParams{K: 1e-5, M: 0.5, N: 1., D: 0.01})
	assert.Error(t, err)
}

func TestBasicRun(t *testing.T) {
	g := NewGrid(5, 5, 10.)
	g.AddField(FieldElevation, 1.)

	outlet := 5 // left edge, off the process-writable core
	mdl, err := NewBasic(g, NewClock(0., 100., 10.), boundary.Options{OutletNode: outlet, Rate: rate(0.1)}, nil, BasicParams{K: 1e-5, M: 0.5, N: 1., D: 0.01})
	require.NoError(t, err)
	require.NoError(t, mdl.MonitorNode(FieldElevation, outlet))
	require.NoError(t, mdl.Run(false))

	z, _ := g.Field(FieldElevation)
	assert.Equal(t, 100., mdl.Clock.Time())
	assert.InDelta(t, 1.-0.1*100., z[outlet], 1e-9)

	// one sample per step, last at the stop time
	require.Len(t, mdl.mons, 1)
	mn := mdl.mons[0]
	assert.Len(t, mn.t, 10)
	assert.Equal(t, 100., mn.t[9])
	assert.InDelta(t, z[outlet], mn.v[9], 1e-12)
}

func TestBasicRunRaggedStop(t *testing.T) {
	g := NewGrid(5, 5, 10.)
	g.AddField(FieldElevation, 1.)

	mdl, err := NewBasic(g, NewClock(0., 95., 10.), boundary.Options{OutletNode: 5, Rate: rate(0.1)}, nil, BasicParams{K: 1e-5, M: 0.5, N: 1., D: 0.01})
	require.NoError(t, err)
	require.NoError(t, mdl.Run(false))

	z, _ := g.Field(FieldElevation)
	assert.Equal(t, 95., mdl.Clock.Time())
	assert.InDelta(t, 1.-0.1*95., z[5], 1e-9)
}

func TestBasicWithPrecipChanger(t *testing.T) {
	g := NewGrid(5, 5, 10.)
	g.RandomSurface(FieldElevation, 1., 7)

	pc, err := boundary.NewPrecipChanger(0.3, 0.0002, 2., 0.001, 1000., 0.5)
	require.NoError(t, err)

	mdl, err := NewBasic(g, NewClock(0., 100., 10.), boundary.Options{OutletNode: 5, Rate: rate(0.001)}, pc, BasicParams{K: 1e-5, M: 0.5, N: 1., D: 0.01})
	require.NoError(t, err)

	// the changer registers as a handler and answers the capability query
	_, ok := mdl.Handler("precip")
	assert.True(t, ok)
	adj, ok := mdl.Adjuster()
	require.True(t, ok)
	assert.Equal(t, 1., adj.ErodibilityAdjustmentFactor())

	require.NoError(t, mdl.Run(false))
	assert.Greater(t, adj.ErodibilityAdjustmentFactor(), 1.)
}

func TestBasicSaVsRun(t *testing.T) {
	g := NewGrid(5, 5, 10.)
	g.AddField(FieldElevation, 1.)
	g.AddField(FieldSoil, 0.4)

	mdl, err := NewBasicSaVs(g, NewClock(0., 100., 10.),
		boundary.Options{OutletNode: 5, Rate: rate(0.1)}, nil,
		BasicParams{K: 1e-5, M: 0.5, N: 1., D: 0.01},
		SoilParams{MaxProductionRate: 1e-4, ProductionDecayDepth: 0.5, TransportDecayDepth: 0.5,
			HydraulicConductivity: 0.1, RechargeRate: 0.5})
	require.NoError(t, err)

	// bedrock interface derived as elevation less soil
	br, ok := g.Field(FieldBedrock)
	require.True(t, ok)
	assert.InDelta(t, 0.6, br[12], 1e-12)

	require.NoError(t, mdl.Run(false))

	// the column invariant holds everywhere after stepping
	z, _ := g.Field(FieldElevation)
	h, _ := g.Field(FieldSoil)
	for i := 0; i < g.Nodes(); i++ {
		require.GreaterOrEqual(t, z[i]+1e-9, br[i])
		require.GreaterOrEqual(t, h[i], 0.)
	}

	// saturated soil columns shed less incising discharge than they drain
	q, ok := g.Field(FieldDischarge)
	require.True(t, ok)
	area, _ := g.Field(FieldArea)
	for i := 0; i < g.Nodes(); i++ {
		require.LessOrEqual(t, q[i], area[i]+1e-12)
		require.Greater(t, q[i], 0.)
	}
}

func TestBasicSaVsBadSaturationParams(t *testing.T) {
	g := NewGrid(5, 5, 10.)
	g.AddField(FieldElevation, 1.)
	g.AddField(FieldSoil, 0.4)

	_, err := NewBasicSaVs(g, NewClock(0., 100., 10.),
		boundary.Options{OutletNode: 5, Rate: rate(0.1)}, nil,
		BasicParams{K: 1e-5, M: 0.5, N: 1., D: 0.01},
		SoilParams{MaxProductionRate: 1e-4, ProductionDecayDepth: 0.5, TransportDecayDepth: 0.5,
			HydraulicConductivity: 0.1}) // recharge left zero
	assert.Error(t, err)
}

func TestRescaleHorizonMustMatchStop(t *testing.T) {
	const fp = "boundary/testdata/outlet_history.txt"
	et, ev := 4000., -318.

	g := NewGrid(5, 5, 10.)
	g.AddField(FieldElevation, 0.)
	_, err := NewBasic(g, NewClock(0., 2400., 2400.),
		boundary.Options{OutletNode: 5, FilePath: fp, EndTime: &et, EndValue: &ev}, nil,
		BasicParams{K: 1e-5, M: 0.5, N: 1., D: 0.01})
	assert.Error(t, err)

	g2 := NewGrid(5, 5, 10.)
	g2.AddField(FieldElevation, 0.)
	g2.AddField(FieldSoil, 0.1)
	_, err = NewBasicSaVs(g2, NewClock(0., 2400., 2400.),
		boundary.Options{OutletNode: 5, FilePath: fp, EndTime: &et, EndValue: &ev}, nil,
		BasicParams{K: 1e-5, M: 0.5, N: 1., D: 0.01},
		SoilParams{MaxProductionRate: 1e-4, ProductionDecayDepth: 0.5, TransportDecayDepth: 0.5,
			HydraulicConductivity: 0.1, RechargeRate: 0.5})
	assert.Error(t, err)

	// an end time on the stop is accepted
	g3 := NewGrid(5, 5, 10.)
	g3.AddField(FieldElevation, 0.)
	_, err = NewBasic(g3, NewClock(0., 4000., 2000.),
		boundary.Options{OutletNode: 5, FilePath: fp, EndTime: &et, EndValue: &ev}, nil,
		BasicParams{K: 1e-5, M: 0.5, N: 1., D: 0.01})
	assert.NoError(t, err)
}
