package proc

import "sort"

// Router assigns each node its steepest-descent receiver, then accumulates
// drainage area down the receiver chain in elevation-descending order.
// Receivers default to self at pits and along the perimeter.
type Router struct {
	top   Topology
	z     []float64
	area  []float64 // drainage__area
	slope []float64 // topographic__steepest_slope
	rcvr  []int
	nbrs  [][]int
	dist  [][]float64
	ord   []int
}

// NewRouter constructor; neighbour lists are fixed by the raster and built once
func NewRouter(top Topology, z, area, slope []float64) *Router {
	n := top.Nodes()
	r := &Router{
		top: top, z: z, area: area, slope: slope,
		rcvr: make([]int, n),
		nbrs: make([][]int, n),
		dist: make([][]float64, n),
		ord:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		r.nbrs[i] = top.Neighbors(i)
		r.dist[i] = make([]float64, len(r.nbrs[i]))
		for k, j := range r.nbrs[i] {
			r.dist[i][k] = top.Dist(i, j)
		}
	}
	return r
}

// Receiver downslope node id assigned to i on the last step (self = no receiver)
func (r *Router) Receiver(i int) int { return r.rcvr[i] }

// RunOneStep recomputes receivers, steepest slopes and drainage area for the
// current topography
func (r *Router) RunOneStep(dt float64) error {
	n := r.top.Nodes()
	for i := 0; i < n; i++ {
		r.rcvr[i] = i
		smx := 0.
		for k, j := range r.nbrs[i] {
			if s := (r.z[i] - r.z[j]) / r.dist[i][k]; s > smx {
				smx, r.rcvr[i] = s, j
			}
		}
		r.slope[i] = smx
		r.ord[i] = i
	}

	sort.Slice(r.ord, func(a, b int) bool { return r.z[r.ord[a]] > r.z[r.ord[b]] })

	ca := r.top.CellArea()
	for i := 0; i < n; i++ {
		r.area[i] = ca
	}
	for _, i := range r.ord { // high to low, upslope area arrives before i drains
		if j := r.rcvr[i]; j != i {
			r.area[j] += r.area[i]
		}
	}
	return nil
}
