// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"github.com/cpmech/govoro/delaunay"
	"github.com/cpmech/govoro/geo"

	"github.com/cpmech/gosl/chk"
)

// BuildVoronoi2 materialises the 2D Voronoi dual: for each local generator
// the incident triangles are enumerated counterclockwise by rotating around
// the generator; their circumcenters bound the cell polygon, and each
// consecutive pair bounds the face dual to one Delaunay edge.
func BuildVoronoi2(d *delaunay.Delaunay2) (o *Voronoi) {
	if d.GhostOffset < 0 {
		chk.Panic("voronoi requires a consolidated tessellation")
	}
	o = new(Voronoi)
	o.Ndim = 2

	var centers [][]float64 // circumcenters, counterclockwise
	var nbGen []int         // generator across the edge crossed after each center

	for g := d.VertexStart; g < d.VertexEnd; g++ {

		// rotate counterclockwise around g
		centers = centers[:0]
		nbGen = nbGen[:0]
		t0 := d.Vtx.Simp[g]
		cur := t0
		for {
			if d.Tri.IsDummy(cur) {
				chk.Panic("voronoi cell of generator %d is not closed: import more ghost vertices", g)
			}
			sg := d.Tri.SlotOf(cur, g)
			y := d.Tri.V[cur][(sg+2)%3]
			if y < d.VertexStart {
				chk.Panic("voronoi cell of generator %d is not closed: import more ghost vertices", g)
			}
			vt := d.Tri.V[cur]
			cc := make([]float64, 2)
			geo.TriCircumcenter(cc, d.Vtx.Pos(vt[0]), d.Vtx.Pos(vt[1]), d.Vtx.Pos(vt[2]))
			centers = append(centers, cc)
			nbGen = append(nbGen, y)
			cur = d.Tri.N[cur][(sg+1)%3]
			if cur == t0 {
				break
			}
		}

		// cell measures
		cell := &Cell{Id: g, X: clonePoint(d.Vtx.Pos(g)), C: make([]float64, 2)}
		cell.Vol = geo.PolygonProps(cell.C, centers)

		// one face per Delaunay edge (g, nbGen[i])
		n := len(centers)
		for i := 0; i < n; i++ {
			a := nbGen[i]
			sid := SidBoundary
			if a < d.GhostOffset {
				if g > a {
					continue // recorded under the lower-indexed endpoint
				}
				sid = SidInterior
			}
			p0, p1 := centers[i], centers[(i+1)%n]
			f := &Face{
				Left:  g,
				Right: a,
				Sid:   sid,
				Area:  geo.Dist(p0, p1),
				M:     []float64{0.5 * (p0[0] + p1[0]), 0.5 * (p0[1] + p1[1])},
				Pts:   [][]float64{clonePoint(p0), clonePoint(p1)},
			}
			cell.Faces = append(cell.Faces, len(o.Faces))
			o.Faces = append(o.Faces, f)
		}
		o.Cells = append(o.Cells, cell)
	}
	return
}

// clonePoint copies one coordinate slice
func clonePoint(x []float64) []float64 {
	res := make([]float64, len(x))
	copy(res, x)
	return res
}
