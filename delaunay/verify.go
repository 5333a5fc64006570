// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delaunay

import "github.com/cpmech/gosl/chk"

// Check runs the expensive tessellation-wide verification of the 2D
// invariants: positive orientation, reciprocal neighbour links, the
// Delaunay property and the vertex back-links. It returns the first
// violation found.
func (o *Delaunay2) Check() (err error) {
	for t := 0; t < len(o.Tri.V); t++ {
		if !o.Tri.Active[t] || o.Tri.IsDummy(t) {
			continue
		}
		vt := o.Tri.V[t]

		// orientation
		if o.prd.Orient2(o.Vtx.M2(vt[0]), o.Vtx.M2(vt[1]), o.Vtx.M2(vt[2])) <= 0 {
			return chk.Err("triangle %d %v is not positively oriented", t, vt)
		}

		for k := 0; k < 3; k++ {
			nb := o.Tri.N[t][k]
			rs := o.Tri.R[t][k]
			if nb < 0 {
				return chk.Err("triangle %d has no neighbour at slot %d", t, k)
			}
			if !o.Tri.Active[nb] {
				return chk.Err("triangle %d links inactive neighbour %d", t, nb)
			}

			// reciprocity
			if o.Tri.N[nb][rs] != t || o.Tri.R[nb][rs] != k {
				return chk.Err("neighbour link %d:%d → %d:%d is not reciprocal", t, k, nb, rs)
			}

			// Delaunay property
			if o.Tri.IsDummy(nb) {
				continue
			}
			w := o.Tri.V[nb][rs]
			if o.prd.InCircle(o.Vtx.M2(vt[0]), o.Vtx.M2(vt[1]), o.Vtx.M2(vt[2]), o.Vtx.M2(w)) > 0 {
				return chk.Err("vertex %d lies inside the circumcircle of triangle %d %v", w, t, vt)
			}
		}
	}

	// back-links
	for v := 0; v < o.Vtx.N; v++ {
		t, s := o.Vtx.Simp[v], o.Vtx.Slot[v]
		if t == NoSimplex || !o.Tri.Active[t] || o.Tri.V[t][s] != v {
			return chk.Err("vertex %d has a broken simplex back-link (%d:%d)", v, t, s)
		}
	}
	return
}

// Check runs the expensive tessellation-wide verification of the 3D
// invariants: positive orientation, reciprocal neighbour links, the
// Delaunay property and the vertex back-links. It returns the first
// violation found.
func (o *Delaunay3) Check() (err error) {
	for t := 0; t < len(o.Tet.V); t++ {
		if !o.Tet.Active[t] || o.Tet.IsDummy(t) {
			continue
		}
		vt := o.Tet.V[t]

		// orientation
		if o.prd.Orient3(o.Vtx.M3(vt[0]), o.Vtx.M3(vt[1]), o.Vtx.M3(vt[2]), o.Vtx.M3(vt[3])) <= 0 {
			return chk.Err("tetrahedron %d %v is not positively oriented", t, vt)
		}

		for k := 0; k < 4; k++ {
			nb := o.Tet.N[t][k]
			rs := o.Tet.R[t][k]
			if nb < 0 {
				return chk.Err("tetrahedron %d has no neighbour at slot %d", t, k)
			}
			if !o.Tet.Active[nb] {
				return chk.Err("tetrahedron %d links inactive neighbour %d", t, nb)
			}

			// reciprocity
			if o.Tet.N[nb][rs] != t || o.Tet.R[nb][rs] != k {
				return chk.Err("neighbour link %d:%d → %d:%d is not reciprocal", t, k, nb, rs)
			}

			// Delaunay property
			if o.Tet.IsDummy(nb) {
				continue
			}
			w := o.Tet.V[nb][rs]
			if o.prd.InSphere(o.Vtx.M3(vt[0]), o.Vtx.M3(vt[1]), o.Vtx.M3(vt[2]), o.Vtx.M3(vt[3]), o.Vtx.M3(w)) > 0 {
				return chk.Err("vertex %d lies inside the circumsphere of tetrahedron %d %v", w, t, vt)
			}
		}
	}

	// back-links
	for v := 0; v < o.Vtx.N; v++ {
		t, s := o.Vtx.Simp[v], o.Vtx.Slot[v]
		if t == NoSimplex || !o.Tet.Active[t] || o.Tet.V[t][s] != v {
			return chk.Err("vertex %d has a broken simplex back-link (%d:%d)", v, t, s)
		}
	}
	return
}
