// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package delaunay implements incremental 2D and 3D Delaunay tessellators
// with exact integer predicates on rescaled coordinates
package delaunay

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	NoSimplex   = -1    // sentinel for "vertex not yet linked to a simplex"
	DummyVertex = -1    // sentinel tip vertex of dummy border simplices
	RescaleGap  = 1e-13 // slack keeping the largest rescaled value below 2.0
	MantissaBits = 52
)

// Vertices holds the three coordinate views of all generators, the
// vertex→simplex back-links and the per-vertex search radii.
// Coordinates are stored flat with stride Ndim.
type Vertices struct {

	// essential
	Ndim int       // space dimension
	N    int       // current number of vertices
	X    []float64 // [N*Ndim] original coordinates
	R    []float64 // [N*Ndim] rescaled coordinates in [1,2)
	M    []uint64  // [N*Ndim] 52-bit integer mantissas

	// back-links and radii
	Simp []int     // [N] index of one active simplex containing the vertex
	Slot []int     // [N] slot of the vertex within Simp
	Srad []float64 // [N] search radius (2 x max incident circumradius)

	// rescaling map: r = 1 + (x - Anchor)*InvSide
	Anchor  []float64 // [Ndim] anchor of the rescale box
	InvSide float64   // (1 - RescaleGap) / side of the rescale box
}

// NewVertices allocates a vertex store with the given rescale box
func NewVertices(ndim int, anchor []float64, side float64, nvertsCap int) (o *Vertices) {
	o = new(Vertices)
	o.Ndim = ndim
	o.X = make([]float64, 0, nvertsCap*ndim)
	o.R = make([]float64, 0, nvertsCap*ndim)
	o.M = make([]uint64, 0, nvertsCap*ndim)
	o.Simp = make([]int, 0, nvertsCap)
	o.Slot = make([]int, 0, nvertsCap)
	o.Srad = make([]float64, 0, nvertsCap)
	o.Anchor = make([]float64, ndim)
	copy(o.Anchor, anchor)
	o.InvSide = (1.0 - RescaleGap) / side
	return
}

// Append adds one vertex and records all three coordinate views. It panics
// if the rescaled coordinates fall outside [1,2), which indicates a
// misconfigured bounding box.
func (o *Vertices) Append(x []float64) (idx int) {
	idx = o.N
	for j := 0; j < o.Ndim; j++ {
		r := 1.0 + (x[j]-o.Anchor[j])*o.InvSide
		if r < 1.0 || r >= 2.0 {
			chk.Panic("vertex %d is outside the rescale range: x[%d]=%g maps to %g not in [1,2)", idx, j, x[j], r)
		}
		o.X = append(o.X, x[j])
		o.R = append(o.R, r)
		o.M = append(o.M, math.Float64bits(r)&(1<<MantissaBits-1))
	}
	o.Simp = append(o.Simp, NoSimplex)
	o.Slot = append(o.Slot, -1)
	o.Srad = append(o.Srad, math.Inf(1))
	o.N++
	return
}

// Pos returns a view of the original coordinates of vertex i
func (o *Vertices) Pos(i int) []float64 {
	return o.X[i*o.Ndim : (i+1)*o.Ndim]
}

// M2 returns the mantissa pair of vertex i (2D)
func (o *Vertices) M2(i int) [2]uint64 {
	return [2]uint64{o.M[i*2], o.M[i*2+1]}
}

// M3 returns the mantissa triple of vertex i (3D)
func (o *Vertices) M3(i int) [3]uint64 {
	return [3]uint64{o.M[i*3], o.M[i*3+1], o.M[i*3+2]}
}
