// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delaunay

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// grid2d builds the tessellation of a ndiv x ndiv grid of local generators
// in the unit box, with per-insertion verification enabled
func grid2d(ndiv int, seed int64) (o *Delaunay2) {
	o = NewDelaunay2([]float64{0, 0}, 1.0, ndiv*ndiv, 8*ndiv*ndiv)
	o.SetSeed(seed)
	o.Checks = true
	h := 1.0 / float64(ndiv)
	k := 0
	for j := 0; j < ndiv; j++ {
		for i := 0; i < ndiv; i++ {
			o.AddLocalVertex(k, []float64{h/2.0 + float64(i)*h, h/2.0 + float64(j)*h})
			k++
		}
	}
	return
}

func Test_dln2d01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln2d01. grid insertion keeps all invariants")

	o := grid2d(4, 1234)
	if err := o.Check(); err != nil {
		tst.Errorf("invariants broken:\n%v", err)
		return
	}

	// Euler: a triangulation of n points in a triangle has 2(n+3)-2-3
	// triangles minus the hull ones... simply count actives and vertices
	chk.IntAssert(o.Vtx.N, 3+16)
	nact := 0
	for t := 0; t < len(o.Tri.V); t++ {
		if o.Tri.Active[t] && !o.Tri.IsDummy(t) {
			nact++
		}
	}
	// n interior points inside a triangle: 2n+1 triangles
	chk.IntAssert(nact, 2*16+1)
}

func Test_dln2d02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln2d02. point exactly on an edge triggers the 2→4 split")

	o := NewDelaunay2([]float64{0, 0}, 1.0, 8, 32)
	o.Checks = true
	o.AddLocalVertex(0, []float64{0.2, 0.5})
	o.AddLocalVertex(1, []float64{0.8, 0.5})

	// same y-coordinate gives identical mantissas: the mid point is exactly
	// colinear in predicate space
	o.AddLocalVertex(2, []float64{0.5, 0.5})
	chk.IntAssert(o.NumSplitEdge, 1)
	if err := o.Check(); err != nil {
		tst.Errorf("invariants broken:\n%v", err)
	}
}

func Test_dln2d03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln2d03. coincident vertices are refused")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("inserting a coincident vertex must panic")
		} else {
			io.Pforan("OK, panic caught: %v\n", err)
		}
	}()
	o := NewDelaunay2([]float64{0, 0}, 1.0, 8, 32)
	o.AddLocalVertex(0, []float64{0.5, 0.5})
	o.AddLocalVertex(1, []float64{0.5, 0.5})
}

func Test_dln2d04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln2d04. spatially sorted insertion has bounded walks")

	n := 300
	rnd := rand.New(rand.NewSource(42))
	pts := make([][]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = []float64{rnd.Float64(), rnd.Float64()}
	}

	// row-major spatial sort keeps consecutive insertions close
	sort.Slice(pts, func(a, b int) bool {
		ra, rb := int(pts[a][1]*16), int(pts[b][1]*16)
		if ra != rb {
			return ra < rb
		}
		return pts[a][0] < pts[b][0]
	})

	o := NewDelaunay2([]float64{0, 0}, 1.0, n, 8*n)
	for i, x := range pts {
		o.AddLocalVertex(i, x)
	}
	if err := o.Check(); err != nil {
		tst.Errorf("invariants broken:\n%v", err)
		return
	}
	io.Pforan("average walk length = %g\n", o.AveWalkSteps())
	if o.AveWalkSteps() > 20 {
		tst.Errorf("average walk length %g is not bounded", o.AveWalkSteps())
	}
}

func Test_dln2d05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln2d05. identical input and seed give identical topology")

	a := grid2d(4, 77)
	b := grid2d(4, 77)
	chk.IntAssert(len(a.Tri.V), len(b.Tri.V))
	for t := 0; t < len(a.Tri.V); t++ {
		chk.IntAssert(boolToInt(a.Tri.Active[t]), boolToInt(b.Tri.Active[t]))
		if !a.Tri.Active[t] {
			continue
		}
		for k := 0; k < 3; k++ {
			chk.IntAssert(a.Tri.V[t][k], b.Tri.V[t][k])
			chk.IntAssert(a.Tri.N[t][k], b.Tri.N[t][k])
			chk.IntAssert(a.Tri.R[t][k], b.Tri.R[t][k])
		}
	}
}

func Test_dln2d06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln2d06. search radius covers the incident triangles")

	o := grid2d(4, 1234)
	o.Consolidate()
	for i := 0; i < o.Nlocal(); i++ {
		r := o.SearchRadius(i)
		if r <= 0 {
			tst.Errorf("search radius of local vertex %d must be positive", i)
			return
		}
	}
}

func Test_dln2d07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln2d07. ghosts are only accepted after consolidate")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("adding a ghost before consolidate must panic")
		} else {
			io.Pforan("OK, panic caught: %v\n", err)
		}
	}()
	o := NewDelaunay2([]float64{0, 0}, 1.0, 8, 32)
	o.AddLocalVertex(0, []float64{0.5, 0.5})
	o.AddGhostVertex([]float64{0.25, 0.25})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
