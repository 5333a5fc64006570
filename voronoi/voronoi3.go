// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"github.com/cpmech/govoro/delaunay"
	"github.com/cpmech/govoro/geo"

	"github.com/cpmech/gosl/chk"
)

// edgeRef queues one Delaunay edge (g, a) together with a tetrahedron
// incident to it, from which the dual-face rotation starts
type edgeRef struct {
	tet int
	a   int
}

// BuildVoronoi3 materialises the 3D Voronoi dual. For each local generator
// g a FIFO of Delaunay edges (g,a) is drained; the face dual to one edge is
// bounded by the circumcenters of the tetrahedra sharing it, enumerated by
// rotating around the edge with the neighbour links. Rotations run with
// positive winding about a-g, so face normals point outward and the
// signed-tetrahedron fans accumulate a positive cell volume.
func BuildVoronoi3(d *delaunay.Delaunay3) (o *Voronoi) {
	if d.GhostOffset < 0 {
		chk.Panic("voronoi requires a consolidated tessellation")
	}
	o = new(Voronoi)
	o.Ndim = 3

	visited := make([]int, d.Vtx.N)
	epoch := 0
	var fifo []edgeRef
	var centers [][]float64

	for g := d.VertexStart; g < d.VertexEnd; g++ {
		epoch++
		visited[g] = epoch
		fifo = fifo[:0]

		// seed the queue with one arbitrary edge of the linked tetrahedron
		t0 := d.Vtx.Simp[g]
		for s := 0; s < 4; s++ {
			if v := d.Tet.V[t0][s]; v != g {
				fifo = append(fifo, edgeRef{t0, v})
				visited[v] = epoch
				break
			}
		}

		cell := &Cell{Id: g, X: clonePoint(d.Vtx.Pos(g)), C: make([]float64, 3)}
		xg := d.Vtx.Pos(g)

		for head := 0; head < len(fifo); head++ {
			er := fifo[head]
			a := er.a
			if a < d.VertexStart {
				chk.Panic("voronoi cell of generator %d is not closed: import more ghost vertices", g)
			}

			// ring rotation around the Delaunay edge (g, a)
			centers = centers[:0]
			t := er.tet
			sg := d.Tet.SlotOf(t, g)
			sa := d.Tet.SlotOf(t, a)
			sb, sc := -1, -1
			for s := 0; s < 4; s++ {
				if s != sg && s != sa {
					if sb < 0 {
						sb = s
					} else {
						sc = s
					}
				}
			}
			b, c := d.Tet.V[t][sb], d.Tet.V[t][sc]
			if parity4(sg, sa, sb, sc) == 0 {
				b, c = c, b // even permutation: swap for positive winding
			}
			centers = append(centers, circum3(d, t))
			pushRing(&fifo, visited, epoch, t, b)
			pushRing(&fifo, visited, epoch, t, c)
			exitv, piv := b, c
			cur := t
			for {
				nxt := d.Tet.N[cur][d.Tet.SlotOf(cur, exitv)]
				if nxt == t {
					break
				}
				if d.Tet.IsDummy(nxt) {
					chk.Panic("voronoi cell of generator %d is not closed: import more ghost vertices", g)
				}
				centers = append(centers, circum3(d, nxt))
				n := -1
				for s := 0; s < 4; s++ {
					if v := d.Tet.V[nxt][s]; v != g && v != a && v != piv {
						n = v
					}
				}
				pushRing(&fifo, visited, epoch, nxt, n)
				exitv, piv = piv, n
				cur = nxt
			}

			// accumulate volume and first moment from the fan of
			// tetrahedra (g, q0, qi, qi+1)
			q0 := centers[0]
			for i := 1; i < len(centers)-1; i++ {
				dv := geo.TetSignedVol(q0, centers[i], centers[i+1], xg)
				cell.Vol += dv
				for j := 0; j < 3; j++ {
					cell.C[j] += dv * (xg[j] + q0[j] + centers[i][j] + centers[i+1][j]) / 4.0
				}
			}

			// face record (interior faces once, under the lower endpoint)
			sid := SidBoundary
			if a < d.GhostOffset {
				if g > a {
					continue
				}
				sid = SidInterior
			}
			f := &Face{Left: g, Right: a, Sid: sid, M: make([]float64, 3)}
			f.Area = geo.FaceProps(f.M, centers)
			f.Pts = make([][]float64, len(centers))
			for i, q := range centers {
				f.Pts[i] = clonePoint(q)
			}
			cell.Faces = append(cell.Faces, len(o.Faces))
			o.Faces = append(o.Faces, f)
		}

		if cell.Vol > 0 {
			for j := 0; j < 3; j++ {
				cell.C[j] /= cell.Vol
			}
		}
		o.Cells = append(o.Cells, cell)
	}
	return
}

// pushRing queues the Delaunay edge (g, v) if v was not seen yet during the
// current cell
func pushRing(fifo *[]edgeRef, visited []int, epoch, tet, v int) {
	if visited[v] == epoch {
		return
	}
	visited[v] = epoch
	*fifo = append(*fifo, edgeRef{tet, v})
}

// circum3 computes the circumcenter of tetrahedron t in host coordinates
func circum3(d *delaunay.Delaunay3, t int) []float64 {
	vt := d.Tet.V[t]
	cc := make([]float64, 3)
	geo.TetCircumcenter(cc, d.Vtx.Pos(vt[0]), d.Vtx.Pos(vt[1]), d.Vtx.Pos(vt[2]), d.Vtx.Pos(vt[3]))
	return cc
}

// parity4 returns the parity (0 = even, 1 = odd) of a permutation of
// (0,1,2,3)
func parity4(a, b, c, d int) int {
	p := [4]int{a, b, c, d}
	inv := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}
	return inv % 2
}
