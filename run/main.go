package main

import (
	"fmt"
	"log"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
	"github.com/mdpiper/terrainbento"
	"github.com/mdpiper/terrainbento/boundary"
)

func main() {

	const (
		nrow, ncol = 100, 160
		cellwidth  = 30.

		start, stop, step = 0., 1.e5, 50.

		outlet   = 5 // perimeter node controlled by the baselevel handler
		lowering = 0.001

		K, m, n, D = 1.e-5, 0.5, 1., 0.01

		gdefFP = "" // set to register the raster from a grid definition file
		outdir = "out/"
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nrun complete")

	g := func() *terrainbento.Grid {
		if gdefFP == "" {
			return terrainbento.NewGrid(nrow, ncol, cellwidth)
		}
		gd, err := grid.ReadGDEF(gdefFP, true)
		if err != nil {
			log.Fatalf("%v", err)
		}
		g, err := terrainbento.FromGDEF(gd, nrow, ncol)
		if err != nil {
			log.Fatalln(err)
		}
		return g
	}()
	g.RandomSurface(terrainbento.FieldElevation, 1., 1234)

	rate := lowering
	mdl, err := terrainbento.NewBasic(g,
		terrainbento.NewClock(start, stop, step),
		boundary.Options{OutletNode: outlet, Rate: &rate},
		nil,
		terrainbento.BasicParams{K: K, M: m, N: n, D: D})
	if err != nil {
		log.Fatalf("model build failed: %v", err)
	}
	if err := mdl.MonitorNode(terrainbento.FieldElevation, outlet); err != nil {
		log.Fatalln(err)
	}
	tt.Print("model build complete")

	if err := mdl.Run(true); err != nil {
		log.Fatalln(err)
	}

	mmio.MakeDir(outdir)
	mdl.WriteMonitors(outdir)
}
