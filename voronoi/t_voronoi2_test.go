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

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_vor2d01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vor2d01. regular 4x4 grid gives unit-square cells")

	// 16 local generators spaced 1 apart, one ghost layer around
	d := delaunay.NewDelaunay2([]float64{0, 0}, 4.0, 64, 512)
	d.Checks = true
	k := 0
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			d.AddLocalVertex(k, []float64{0.5 + float64(i), 0.5 + float64(j)})
			k++
		}
	}
	d.Consolidate()
	for i := -1; i <= 4; i++ {
		for j := -1; j <= 4; j++ {
			if i >= 0 && i < 4 && j >= 0 && j < 4 {
				continue
			}
			d.AddGhostVertex([]float64{0.5 + float64(i), 0.5 + float64(j)})
		}
	}

	v := BuildVoronoi2(d)
	chk.IntAssert(len(v.Cells), 16)

	// every cell is the unit square centred at its generator
	for _, c := range v.Cells {
		chk.Scalar(tst, io.Sf("area %d", c.Id), 1e-12, c.Vol, 1.0)
		chk.Vector(tst, io.Sf("cen  %d", c.Id), 1e-12, c.C, c.X)
	}
	chk.Scalar(tst, "sum", 1e-10, v.SumVolumes(), 16.0)

	// 24 interior and 16 boundary faces carry area; cocircular grid
	// corners may add zero-area diagonal faces
	nin, nbd := 0, 0
	for _, f := range v.Faces {
		if f.Area < 1e-8 {
			continue
		}
		chk.Scalar(tst, "face area", 1e-12, f.Area, 1.0)
		if f.Sid == SidInterior {
			nin++
		} else {
			nbd++
		}

		// the midpoint separates the two generators evenly
		dl := geo.Dist(f.M, d.Vtx.Pos(f.Left))
		dr := geo.Dist(f.M, d.Vtx.Pos(f.Right))
		chk.Scalar(tst, "midpoint bisects", 1e-10, dl, dr)
	}
	chk.IntAssert(nin, 24)
	chk.IntAssert(nbd, 16)

	// interior faces are recorded once, under the lower endpoint
	for _, f := range v.Faces {
		if f.Sid == SidInterior && f.Left >= f.Right {
			tst.Errorf("interior face (%d,%d) is not recorded under the lower endpoint", f.Left, f.Right)
			return
		}
	}
}

func Test_vor2d03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vor2d03. the dual requires a consolidated tessellation")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("building the dual before consolidate must panic")
		} else {
			io.Pforan("OK, panic caught: %v\n", err)
		}
	}()
	d := delaunay.NewDelaunay2([]float64{0, 0}, 1.0, 8, 32)
	d.AddLocalVertex(0, []float64{0.5, 0.5})
	BuildVoronoi2(d)
}

func Test_vor2d02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vor2d02. colinear generators without ghosts are refused")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("building the dual of unbounded cells must panic")
		} else {
			io.Pforan("OK, panic caught: %v\n", err)
		}
	}()
	d := delaunay.NewDelaunay2([]float64{0, 0}, 2.0, 8, 32)
	d.AddLocalVertex(0, []float64{0, 0})
	d.AddLocalVertex(1, []float64{1, 0})
	d.AddLocalVertex(2, []float64{2, 0})
	d.Consolidate()
	BuildVoronoi2(d)
}
