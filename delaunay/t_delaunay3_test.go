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

// grid3d builds the tessellation of a ndiv³ grid of local generators in the
// unit box
func grid3d(ndiv int, seed int64, checks bool) (o *Delaunay3) {
	n := ndiv * ndiv * ndiv
	o = NewDelaunay3([]float64{0, 0, 0}, 1.0, n, 16*n)
	o.SetSeed(seed)
	o.Checks = checks
	h := 1.0 / float64(ndiv)
	k := 0
	for l := 0; l < ndiv; l++ {
		for j := 0; j < ndiv; j++ {
			for i := 0; i < ndiv; i++ {
				o.AddLocalVertex(k, []float64{h/2.0 + float64(i)*h, h/2.0 + float64(j)*h, h/2.0 + float64(l)*h})
				k++
			}
		}
	}
	return
}

func Test_dln3d01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln3d01. grid insertion keeps all invariants")

	o := grid3d(3, 1234, true)
	if err := o.Check(); err != nil {
		tst.Errorf("invariants broken:\n%v", err)
		return
	}
	chk.IntAssert(o.Vtx.N, 4+27)
}

func Test_dln3d02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln3d02. point exactly on a face triggers the 2→6 split")

	o := NewDelaunay3([]float64{0, 0, 0}, 1.0, 8, 64)
	o.Checks = true

	// small triangle in the x=0.5 plane with one far apex on each side:
	// the two tetrahedra sharing the triangle are mutually Delaunay
	o.AddLocalVertex(0, []float64{0.5, 0.4, 0.4})
	o.AddLocalVertex(1, []float64{0.5, 0.6, 0.4})
	o.AddLocalVertex(2, []float64{0.5, 0.4, 0.6})
	o.AddLocalVertex(3, []float64{0.1, 0.5, 0.5})
	o.AddLocalVertex(4, []float64{0.9, 0.5, 0.5})

	// identical x-coordinates give identical mantissas: the probe is
	// exactly coplanar with the shared face
	o.AddLocalVertex(5, []float64{0.5, 0.45, 0.45})
	chk.IntAssert(o.NumSplitFace, 1)
	if err := o.Check(); err != nil {
		tst.Errorf("invariants broken:\n%v", err)
	}
}

func Test_dln3d03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln3d03. point exactly on an edge triggers the N→2N split")

	o := NewDelaunay3([]float64{0, 0, 0}, 1.0, 8, 64)
	o.Checks = true
	o.AddLocalVertex(0, []float64{0.5, 0.5, 0.2})
	o.AddLocalVertex(1, []float64{0.5, 0.5, 0.8})

	// the new point shares x and y with both edge tips: exactly on the edge
	o.AddLocalVertex(2, []float64{0.5, 0.5, 0.5})
	chk.IntAssert(o.NumSplitEdge, 1)
	if err := o.Check(); err != nil {
		tst.Errorf("invariants broken:\n%v", err)
	}
}

func Test_dln3d04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln3d04. random spatially sorted cloud: invariants and walks")

	n := 150
	rnd := rand.New(rand.NewSource(42))
	pts := make([][]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = []float64{rnd.Float64(), rnd.Float64(), rnd.Float64()}
	}
	sort.Slice(pts, func(a, b int) bool {
		la, lb := int(pts[a][2]*8), int(pts[b][2]*8)
		if la != lb {
			return la < lb
		}
		ra, rb := int(pts[a][1]*8), int(pts[b][1]*8)
		if ra != rb {
			return ra < rb
		}
		return pts[a][0] < pts[b][0]
	})

	o := NewDelaunay3([]float64{0, 0, 0}, 1.0, n, 16*n)
	for i, x := range pts {
		o.AddLocalVertex(i, x)
	}
	if err := o.Check(); err != nil {
		tst.Errorf("invariants broken:\n%v", err)
		return
	}
	io.Pforan("average walk length = %g\n", o.AveWalkSteps())
	io.Pforan("flips = %d, deferred = %d\n", o.NumFlips, o.NumDeferred)
	if o.AveWalkSteps() > 30 {
		tst.Errorf("average walk length %g is not bounded", o.AveWalkSteps())
	}
}

func Test_dln3d05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dln3d05. identical input and seed give identical topology")

	a := grid3d(2, 77, false)
	b := grid3d(2, 77, false)
	chk.IntAssert(len(a.Tet.V), len(b.Tet.V))
	for t := 0; t < len(a.Tet.V); t++ {
		chk.IntAssert(boolToInt(a.Tet.Active[t]), boolToInt(b.Tet.Active[t]))
		if !a.Tet.Active[t] {
			continue
		}
		for k := 0; k < 4; k++ {
			chk.IntAssert(a.Tet.V[t][k], b.Tet.V[t][k])
			chk.IntAssert(a.Tet.N[t][k], b.Tet.N[t][k])
			chk.IntAssert(a.Tet.R[t][k], b.Tet.R[t][k])
		}
	}
}
