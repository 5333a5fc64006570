// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package voronoi derives the Voronoi dual of a Delaunay tessellation:
// per-generator cell volumes and centroids, and face records with area,
// midpoint and polygon
package voronoi

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// face source ids: interior faces separate two local cells, boundary faces
// border an imported ghost
const (
	SidInterior = 0
	SidBoundary = 1
)

// Cell holds one local generator's Voronoi cell
type Cell struct {
	Id    int       // internal vertex index of the generator
	X     []float64 // generator position
	Vol   float64   // volume (area in 2D)
	C     []float64 // centroid
	Faces []int     // indices into Voronoi.Faces of the faces recorded under this cell
}

// Face holds one Voronoi face record. Interior faces are recorded once,
// under the lower-indexed endpoint; boundary faces are always recorded.
type Face struct {
	Left  int         // owning (local) generator
	Right int         // generator on the other side
	Sid   int         // SidInterior or SidBoundary
	Area  float64     // surface area (length in 2D)
	M     []float64   // area-weighted midpoint
	Pts   [][]float64 // face polygon (3D) or segment endpoints (2D)
}

// Voronoi holds the materialised dual of one tessellation
type Voronoi struct {
	Ndim  int
	Cells []*Cell
	Faces []*Face
}

// SumVolumes adds up all cell volumes; the total must match the measure of
// the region tiled by the local cells within floating-point tolerance
func (o *Voronoi) SumVolumes() (sum float64) {
	for _, c := range o.Cells {
		sum += c.Vol
	}
	return
}

// Print writes the debug text dump: per cell one G line (generator), one C
// line (centroid, volume, face count) and one F line per recorded face
func (o *Voronoi) Print(path string) {
	var buf bytes.Buffer
	for _, c := range o.Cells {
		x3 := pad3(c.X)
		m3 := pad3(c.C)
		io.Ff(&buf, "G\t%.17g\t%.17g\t%.17g\n", x3[0], x3[1], x3[2])
		io.Ff(&buf, "C\t%.17g\t%.17g\t%.17g\t%.17g\t%d\n", m3[0], m3[1], m3[2], c.Vol, len(c.Faces))
		for _, fid := range c.Faces {
			f := o.Faces[fid]
			fm := pad3(f.M)
			io.Ff(&buf, "F\t%d\t%.17g\t%.17g\t%.17g\t%.17g", f.Sid, f.Area, fm[0], fm[1], fm[2])
			for _, p := range f.Pts {
				p3 := pad3(p)
				io.Ff(&buf, "\t(%.17g %.17g %.17g)", p3[0], p3[1], p3[2])
			}
			io.Ff(&buf, "\n")
		}
	}
	io.WriteFile(path, &buf)
}

// pad3 views a 2D or 3D point as three components (z = 0 in 2D)
func pad3(x []float64) (res [3]float64) {
	copy(res[:], x)
	return
}
