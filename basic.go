package terrainbento

import (
	"fmt"

	"github.com/mdpiper/terrainbento/boundary"
	"github.com/mdpiper/terrainbento/proc"
)

// BasicParams parameters of the composed models
type BasicParams struct {
	K, M, N float64 // stream-power erodibility, area and slope exponents
	D       float64 // regolith transport parameter
}

// SoilParams soil-layer parameters of the soil-aware composition
type SoilParams struct {
	MaxProductionRate     float64 // P0
	ProductionDecayDepth  float64 // Hs
	TransportDecayDepth   float64 // H*
	HydraulicConductivity float64 // Ksat
	RechargeRate          float64 // Rm
}

// rescaling terminates at the clock stop so the outlet lands on the target
func checkRescaleHorizon(c *Clock, blo boundary.Options) error {
	if blo.EndTime != nil && *blo.EndTime != c.Stop {
		return fmt.Errorf("rescale end time %g is not the clock stop time %g", *blo.EndTime, c.Stop)
	}
	return nil
}

// NewBasic composes the Basic model: flow routing, stream-power incision and
// linear hillslope diffusion under single-node baselevel control. pc may be
// nil; when given, its adjustment factor scales the erodibility each step.
func NewBasic(g *Grid, c *Clock, blo boundary.Options, pc *boundary.PrecipChanger, par BasicParams) (*Model, error) {
	z, ok := g.Field(FieldElevation)
	if !ok {
		return nil, fmt.Errorf("terrainbento.NewBasic: grid is missing %s", FieldElevation)
	}
	if err := checkRescaleHorizon(c, blo); err != nil {
		return nil, fmt.Errorf("terrainbento.NewBasic: %w", err)
	}
	br, _ := g.Field(FieldBedrock) // optional

	mdl := NewModel(g, c)
	bl, err := boundary.NewBaselevel(z, br, blo)
	if err != nil {
		return nil, err
	}
	if err := mdl.AddBoundaryHandler(bl); err != nil {
		return nil, err
	}
	if pc != nil {
		if err := mdl.AddBoundaryHandler(pc); err != nil {
			return nil, err
		}
	}

	area, slope := g.AddField(FieldArea, 0.), g.AddField(FieldSlope, 0.)
	mdl.AddProcess(proc.NewRouter(g, z, area, slope))

	var adj proc.Adjuster
	if a, ok := mdl.Adjuster(); ok {
		adj = a
	}
	sp, err := proc.NewStreamPower(g, z, br, area, slope, par.K, par.M, par.N, adj)
	if err != nil {
		return nil, err
	}
	mdl.AddProcess(sp)
	mdl.AddProcess(proc.NewLinearDiffuser(g, z, par.D))
	return mdl, nil
}

// NewBasicSaVs Basic with an explicit regolith column and variable-source-area
// runoff: exponential weathering produces soil from bedrock, the incising
// discharge is the drainage area shrunk where the soil column transmits the
// recharge, and depth-dependent diffusion replaces linear diffusion. The grid
// must carry elevation and soil depth; the bedrock interface is derived as
// elevation less soil.
func NewBasicSaVs(g *Grid, c *Clock, blo boundary.Options, pc *boundary.PrecipChanger, par BasicParams, sol SoilParams) (*Model, error) {
	z, ok := g.Field(FieldElevation)
	if !ok {
		return nil, fmt.Errorf("terrainbento.NewBasicSaVs: grid is missing %s", FieldElevation)
	}
	h, ok := g.Field(FieldSoil)
	if !ok {
		return nil, fmt.Errorf("terrainbento.NewBasicSaVs: grid is missing %s", FieldSoil)
	}
	if err := checkRescaleHorizon(c, blo); err != nil {
		return nil, fmt.Errorf("terrainbento.NewBasicSaVs: %w", err)
	}
	br := g.AddField(FieldBedrock, 0.)
	for i := range br {
		br[i] = z[i] - h[i]
	}

	mdl := NewModel(g, c)
	bl, err := boundary.NewBaselevel(z, br, blo)
	if err != nil {
		return nil, err
	}
	if err := mdl.AddBoundaryHandler(bl); err != nil {
		return nil, err
	}
	if pc != nil {
		if err := mdl.AddBoundaryHandler(pc); err != nil {
			return nil, err
		}
	}

	area, slope := g.AddField(FieldArea, 0.), g.AddField(FieldSlope, 0.)
	mdl.AddProcess(proc.NewRouter(g, z, area, slope))

	q := g.AddField(FieldDischarge, 0.)
	ea, err := proc.NewEffectiveArea(g, area, slope, h, q, sol.HydraulicConductivity, sol.RechargeRate)
	if err != nil {
		return nil, err
	}
	mdl.AddProcess(ea)

	var adj proc.Adjuster
	if a, ok := mdl.Adjuster(); ok {
		adj = a
	}
	sp, err := proc.NewStreamPower(g, z, br, q, slope, par.K, par.M, par.N, adj)
	if err != nil {
		return nil, err
	}
	mdl.AddProcess(sp)
	mdl.AddProcess(proc.NewWeatherer(g, br, h, sol.MaxProductionRate, sol.ProductionDecayDepth))
	mdl.AddProcess(proc.NewDepthDependentDiffuser(g, z, br, h, par.D, sol.TransportDecayDepth))
	return mdl, nil
}
