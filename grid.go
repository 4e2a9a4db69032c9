package terrainbento

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// canonical at-node field names shared by handlers and process components
const (
	FieldElevation = "topographic__elevation"
	FieldBedrock   = "bedrock__elevation"
	FieldSoil      = "soil__depth"
	FieldArea      = "drainage__area"
	FieldSlope     = "topographic__steepest_slope"
	FieldDischarge = "surface_water__discharge"
)

// Grid is a row-major raster field container. Boundary handlers hold write
// authority over their controlled node; process components write core nodes.
type Grid struct {
	nr, nc int
	cw     float64 // cell width
	flds   map[string][]float64
}

// NewGrid builds an empty nrow-by-ncol raster with the given cell width
func NewGrid(nrow, ncol int, cw float64) *Grid {
	if nrow < 3 || ncol < 3 || cw <= 0. {
		panic("terrainbento.NewGrid: invalid raster dimensioning")
	}
	return &Grid{nr: nrow, nc: ncol, cw: cw, flds: make(map[string][]float64)}
}

// FromGDEF adapts a goHydro grid definition to a field container
func FromGDEF(gd *grid.Definition, nrow, ncol int) (*Grid, error) {
	if nrow*ncol != gd.Ncells() {
		return nil, fmt.Errorf("terrainbento.FromGDEF: %d x %d does not index %d cells", nrow, ncol, gd.Ncells())
	}
	return NewGrid(nrow, ncol, gd.Cwidth), nil
}

// Nodes number of nodes in the raster
func (g *Grid) Nodes() int { return g.nr * g.nc }

// CellWidth cell dimension
func (g *Grid) CellWidth() float64 { return g.cw }

// CellArea plan area per cell
func (g *Grid) CellArea() float64 { return g.cw * g.cw }

// AddField registers a node-indexed field, returning the existing array if
// the name is already present
func (g *Grid) AddField(name string, initial float64) []float64 {
	if a, ok := g.flds[name]; ok {
		return a
	}
	a := make([]float64, g.Nodes())
	if initial != 0. {
		for i := range a {
			a[i] = initial
		}
	}
	g.flds[name] = a
	return a
}

// Field returns a registered node field
func (g *Grid) Field(name string) ([]float64, bool) {
	a, ok := g.flds[name]
	return a, ok
}

// IsCore reports whether node i is interior to the raster perimeter
func (g *Grid) IsCore(i int) bool {
	r, c := i/g.nc, i%g.nc
	return r > 0 && r < g.nr-1 && c > 0 && c < g.nc-1
}

// Neighbors 8-connected neighbours of node i
func (g *Grid) Neighbors(i int) []int {
	r, c := i/g.nc, i%g.nc
	o := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr, cc := r+dr, c+dc
			if rr < 0 || rr >= g.nr || cc < 0 || cc >= g.nc {
				continue
			}
			o = append(o, rr*g.nc+cc)
		}
	}
	return o
}

// Cardinals 4-connected neighbours of node i
func (g *Grid) Cardinals(i int) []int {
	r, c := i/g.nc, i%g.nc
	o := make([]int, 0, 4)
	if r > 0 {
		o = append(o, i-g.nc)
	}
	if r < g.nr-1 {
		o = append(o, i+g.nc)
	}
	if c > 0 {
		o = append(o, i-1)
	}
	if c < g.nc-1 {
		o = append(o, i+1)
	}
	return o
}

// Dist centre-to-centre distance between neighbouring nodes
func (g *Grid) Dist(i, j int) float64 {
	ri, ci := i/g.nc, i%g.nc
	rj, cj := j/g.nc, j%g.nc
	if ri != rj && ci != cj {
		return g.cw * math.Sqrt2
	}
	return g.cw
}

// RandomSurface seeds a field with uniform roughness on [0,amp)
func (g *Grid) RandomSurface(name string, amp float64, seed int64) []float64 {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	a := g.AddField(name, 0.)
	for i := range a {
		a[i] = mmaths.LinearTransform(0., amp, rng.Float64())
	}
	return a
}

func (g *Grid) snapshot() map[string][]float64 {
	s := make(map[string][]float64, len(g.flds))
	for n, a := range g.flds {
		c := make([]float64, len(a))
		copy(c, a)
		s[n] = c
	}
	return s
}

func (g *Grid) restore(s map[string][]float64) {
	for n, c := range s {
		copy(g.flds[n], c)
	}
}
