// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delaunay

import "github.com/cpmech/gosl/chk"

// TriFace lists, for each triangle slot, the edge opposite to it, ordered
// so that (TriFace[i][0], TriFace[i][1], i) is an even permutation of (0,1,2)
var TriFace = [3][2]int{{1, 2}, {2, 0}, {0, 1}}

// TetFace lists, for each tetrahedron slot, the face opposite to it, ordered
// so that (TetFace[i][0..2], i) is an even permutation of (0,1,2,3)
var TetFace = [4][3]int{{2, 1, 3}, {0, 2, 3}, {1, 0, 3}, {0, 1, 2}}

// Triangles holds the 2D simplices: vertex tuple, neighbour index per
// opposite-edge slot and the reciprocal slot each neighbour stores us at.
// Deactivated slots sit on a free-index stack for reuse.
type Triangles struct {
	V      [][3]int // vertex indices (counterclockwise)
	N      [][3]int // neighbour triangle across the edge opposite V[i]
	R      [][3]int // slot this triangle occupies in neighbour N[i]
	Active []bool   // soft-delete flag
	free   []int    // reusable slots
}

// NewTriangles allocates a triangle store
func NewTriangles(nCap int) (o *Triangles) {
	o = new(Triangles)
	o.V = make([][3]int, 0, nCap)
	o.N = make([][3]int, 0, nCap)
	o.R = make([][3]int, 0, nCap)
	o.Active = make([]bool, 0, nCap)
	return
}

// New returns a fresh (or recycled) triangle slot, marked active
func (o *Triangles) New() (idx int) {
	if n := len(o.free); n > 0 {
		idx = o.free[n-1]
		o.free = o.free[:n-1]
		o.V[idx] = [3]int{-1, -1, -1}
		o.N[idx] = [3]int{-1, -1, -1}
		o.R[idx] = [3]int{-1, -1, -1}
		o.Active[idx] = true
		return
	}
	idx = len(o.V)
	o.V = append(o.V, [3]int{-1, -1, -1})
	o.N = append(o.N, [3]int{-1, -1, -1})
	o.R = append(o.R, [3]int{-1, -1, -1})
	o.Active = append(o.Active, true)
	return
}

// Deactivate soft-deletes triangle i and pushes its slot on the free stack
func (o *Triangles) Deactivate(i int) {
	o.Active[i] = false
	o.free = append(o.free, i)
}

// IsDummy tells whether triangle i is a border sentinel (invalid tip)
func (o *Triangles) IsDummy(i int) bool {
	return o.V[i][2] == DummyVertex
}

// SlotOf returns the slot of vertex v within triangle t
func (o *Triangles) SlotOf(t, v int) int {
	for k := 0; k < 3; k++ {
		if o.V[t][k] == v {
			return k
		}
	}
	chk.Panic("vertex %d is not in triangle %d %v", v, t, o.V[t])
	return -1
}

// Link writes the reciprocal neighbour pair: triangle a at slot sa faces
// triangle b at slot sb (and vice versa), preserving reciprocity
func (o *Triangles) Link(a, sa, b, sb int) {
	o.N[a][sa] = b
	o.R[a][sa] = sb
	o.N[b][sb] = a
	o.R[b][sb] = sa
}

// Tetrahedra holds the 3D simplices, with the same layout and free-stack
// contract as Triangles
type Tetrahedra struct {
	V      [][4]int // vertex indices (positively oriented)
	N      [][4]int // neighbour tetrahedron across the face opposite V[i]
	R      [][4]int // slot this tetrahedron occupies in neighbour N[i]
	Active []bool   // soft-delete flag
	free   []int    // reusable slots
}

// NewTetrahedra allocates a tetrahedron store
func NewTetrahedra(nCap int) (o *Tetrahedra) {
	o = new(Tetrahedra)
	o.V = make([][4]int, 0, nCap)
	o.N = make([][4]int, 0, nCap)
	o.R = make([][4]int, 0, nCap)
	o.Active = make([]bool, 0, nCap)
	return
}

// New returns a fresh (or recycled) tetrahedron slot, marked active
func (o *Tetrahedra) New() (idx int) {
	if n := len(o.free); n > 0 {
		idx = o.free[n-1]
		o.free = o.free[:n-1]
		o.V[idx] = [4]int{-1, -1, -1, -1}
		o.N[idx] = [4]int{-1, -1, -1, -1}
		o.R[idx] = [4]int{-1, -1, -1, -1}
		o.Active[idx] = true
		return
	}
	idx = len(o.V)
	o.V = append(o.V, [4]int{-1, -1, -1, -1})
	o.N = append(o.N, [4]int{-1, -1, -1, -1})
	o.R = append(o.R, [4]int{-1, -1, -1, -1})
	o.Active = append(o.Active, true)
	return
}

// Deactivate soft-deletes tetrahedron i and pushes its slot on the free stack
func (o *Tetrahedra) Deactivate(i int) {
	o.Active[i] = false
	o.free = append(o.free, i)
}

// IsDummy tells whether tetrahedron i is a border sentinel (invalid tip)
func (o *Tetrahedra) IsDummy(i int) bool {
	return o.V[i][3] == DummyVertex
}

// SlotOf returns the slot of vertex v within tetrahedron t
func (o *Tetrahedra) SlotOf(t, v int) int {
	for k := 0; k < 4; k++ {
		if o.V[t][k] == v {
			return k
		}
	}
	chk.Panic("vertex %d is not in tetrahedron %d %v", v, t, o.V[t])
	return -1
}

// Link writes the reciprocal neighbour pair: tetrahedron a at slot sa faces
// tetrahedron b at slot sb (and vice versa), preserving reciprocity
func (o *Tetrahedra) Link(a, sa, b, sb int) {
	o.N[a][sa] = b
	o.R[a][sa] = sb
	o.N[b][sb] = a
	o.R[b][sb] = sa
}
