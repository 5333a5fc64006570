// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"testing"

	"github.com/cpmech/govoro/delaunay"
	"github.com/cpmech/govoro/geo"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// cube8 tessellates the 8 corners of the unit cube as local generators
func cube8() (d *delaunay.Delaunay3) {
	d = delaunay.NewDelaunay3([]float64{0, 0, 0}, 1.0, 256, 4096)
	k := 0
	for l := 0; l < 2; l++ {
		for j := 0; j < 2; j++ {
			for i := 0; i < 2; i++ {
				d.AddLocalVertex(k, []float64{float64(i), float64(j), float64(l)})
				k++
			}
		}
	}
	d.Consolidate()
	return
}

// lattice05 lists the half-spaced lattice covering [-0.5,1.5]³ without the
// cube corners; these are the ghost candidates closing the corner cells
func lattice05() (pool [][]float64) {
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			for l := 0; l < 5; l++ {
				x := []float64{-0.5 + 0.5*float64(i), -0.5 + 0.5*float64(j), -0.5 + 0.5*float64(l)}
				corner := x[0] == 0 || x[0] == 1
				corner = corner && (x[1] == 0 || x[1] == 1)
				corner = corner && (x[2] == 0 || x[2] == 1)
				if corner {
					continue
				}
				pool = append(pool, x)
			}
		}
	}
	return
}

func Test_vor3d01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vor3d01. unit cube corners give 0.125 cells")

	d := cube8()
	for _, x := range lattice05() {
		d.AddGhostVertex(x)
	}
	if err := d.Check(); err != nil {
		tst.Errorf("invariants broken:\n%v", err)
		return
	}

	v := BuildVoronoi3(d)
	chk.IntAssert(len(v.Cells), 8)
	for _, c := range v.Cells {
		chk.Scalar(tst, io.Sf("vol %d", c.Id), 1e-12, c.Vol, 0.125)
		chk.Vector(tst, io.Sf("cen %d", c.Id), 1e-12, c.C, c.X)
	}
	chk.Scalar(tst, "sum", 1e-10, v.SumVolumes(), 1.0)

	// every corner cell is closed by ghosts only: six proper faces of
	// area 0.25 each, all in the boundary bucket
	for _, c := range v.Cells {
		nprop := 0
		for _, fid := range c.Faces {
			f := v.Faces[fid]
			chk.IntAssert(f.Sid, SidBoundary)
			if f.Area < 1e-8 {
				continue
			}
			chk.Scalar(tst, "face area", 1e-12, f.Area, 0.25)
			nprop++
		}
		chk.IntAssert(nprop, 6)
	}
}

func Test_vor3d02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vor3d02. 2x2x2 grid: interior faces and volume conservation")

	d := delaunay.NewDelaunay3([]float64{0, 0, 0}, 1.0, 128, 2048)
	k := 0
	for l := 0; l < 2; l++ {
		for j := 0; j < 2; j++ {
			for i := 0; i < 2; i++ {
				d.AddLocalVertex(k, []float64{0.25 + 0.5*float64(i), 0.25 + 0.5*float64(j), 0.25 + 0.5*float64(l)})
				k++
			}
		}
	}
	d.Consolidate()
	for i := -1; i <= 2; i++ {
		for j := -1; j <= 2; j++ {
			for l := -1; l <= 2; l++ {
				if i >= 0 && i < 2 && j >= 0 && j < 2 && l >= 0 && l < 2 {
					continue
				}
				d.AddGhostVertex([]float64{0.25 + 0.5*float64(i), 0.25 + 0.5*float64(j), 0.25 + 0.5*float64(l)})
			}
		}
	}

	v := BuildVoronoi3(d)
	for _, c := range v.Cells {
		chk.Scalar(tst, io.Sf("vol %d", c.Id), 1e-12, c.Vol, 0.125)
		chk.Vector(tst, io.Sf("cen %d", c.Id), 1e-12, c.C, c.X)
	}
	chk.Scalar(tst, "sum", 1e-10, v.SumVolumes(), 1.0)

	nin, nbd := 0, 0
	for _, f := range v.Faces {
		if f.Area < 1e-8 {
			continue
		}
		chk.Scalar(tst, "face area", 1e-12, f.Area, 0.25)
		if f.Sid == SidInterior {
			if f.Left >= f.Right {
				tst.Errorf("interior face (%d,%d) is not recorded under the lower endpoint", f.Left, f.Right)
				return
			}
			nin++
		} else {
			nbd++
		}

		// the midpoint separates the two generators evenly
		dl := geo.Dist(f.M, d.Vtx.Pos(f.Left))
		dr := geo.Dist(f.M, d.Vtx.Pos(f.Right))
		chk.Scalar(tst, "midpoint bisects", 1e-10, dl, dr)
	}
	chk.IntAssert(nin, 12)
	chk.IntAssert(nbd, 24)
}

func Test_vor3d03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vor3d03. ghost import driven by the search radius converges")

	d := cube8()
	pool := lattice05()
	added := make([]bool, len(pool))

	r := 0.6
	niter := 0
	for ; niter < 20; niter++ {

		// import the candidates within radius r of any local generator
		for ip, q := range pool {
			if added[ip] {
				continue
			}
			near := false
			for i := 0; i < d.Nlocal(); i++ {
				if geo.Dist(q, d.Vtx.Pos(d.Local(i))) <= r {
					near = true
					break
				}
			}
			if near {
				d.AddGhostVertex(q)
				added[ip] = true
			}
		}

		// refresh the radii; converged when none exceeds r
		rmax := 0.0
		for i := 0; i < d.Nlocal(); i++ {
			if rr := d.SearchRadius(i); rr > rmax {
				rmax = rr
			}
		}
		if rmax <= r {
			break
		}
		r *= 2
	}
	io.Pforan("converged after %d iterations (r=%g)\n", niter+1, r)
	if niter == 20 {
		tst.Errorf("ghost import did not converge")
		return
	}

	// the closed cells have the exact corner-cube measures
	v := BuildVoronoi3(d)
	for _, c := range v.Cells {
		chk.Scalar(tst, io.Sf("vol %d", c.Id), 1e-12, c.Vol, 0.125)
	}
}
