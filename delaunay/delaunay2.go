// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delaunay

import (
	"math/rand"

	"github.com/cpmech/govoro/geo"
	"github.com/cpmech/govoro/pred"

	"github.com/cpmech/gosl/chk"
)

// Delaunay2 is the incremental 2D Delaunay tessellator. One instance owns
// all of its scratch state and must not be shared between goroutines.
type Delaunay2 struct {

	// stores
	Vtx *Vertices  // vertex store
	Tri *Triangles // simplex store

	// vertex ranges
	VertexStart int // first local vertex (auxiliary vertices sit below)
	VertexEnd   int // one past the last local vertex (set by Consolidate)
	GhostOffset int // first ghost vertex (set by Consolidate)

	// host box
	BoxAnchor []float64 // anchor of the host bounding box
	BoxSide   float64   // side of the host bounding box

	// control
	Verbose bool // print debug information
	Checks  bool // run the full invariant sweep after every insertion

	// statistics
	NumWalks     int // number of point-location walks
	WalkSteps    int // total number of walk steps
	NumFlips     int // executed edge flips
	NumSplitEdge int // 2→4 splits (point on edge)

	// scratch (reused across insertions)
	prd          *pred.Scratch  // exact predicate workspace
	rng          *rand.Rand     // tie-break generator
	last         int            // walk starting guess
	queue        []int          // to-check LIFO of the flip cascade
	cavity       []int          // located cavity
	tuples       [][3]int       // replacement vertex tuples
	created      []int          // freshly allocated simplices
	ext          map[[2]int]ref // boundary edges of a cavity under rewiring
	pend         map[[2]int]ref // half-matched internal edges
	seen         []int          // per-simplex epoch marks (incidence walks)
	epoch        int            // current epoch of seen
	consolidated bool
}

// NewDelaunay2 builds the bounding triangle (6 x the host box) and its
// dummy border, and reserves capacity for the given number of vertices and
// triangles.
func NewDelaunay2(anchor []float64, side float64, nvertsCap, ntrisCap int) (o *Delaunay2) {
	if side <= 0 {
		chk.Panic("bounding box side must be positive. side=%g is invalid", side)
	}
	o = new(Delaunay2)
	o.BoxAnchor = []float64{anchor[0], anchor[1]}
	o.BoxSide = side

	// the rescale box spans the bounding triangle
	ra := []float64{anchor[0] - side, anchor[1] - side}
	o.Vtx = NewVertices(2, ra, 6*side, nvertsCap+3)
	o.Tri = NewTriangles(ntrisCap + 6)
	o.prd = pred.NewScratch()
	o.rng = rand.New(rand.NewSource(DefaultSeed))
	o.ext = make(map[[2]int]ref)
	o.pend = make(map[[2]int]ref)

	// auxiliary vertices: corners of the bounding triangle
	o.Vtx.Append(ra)
	o.Vtx.Append([]float64{ra[0] + 6*side, ra[1]})
	o.Vtx.Append([]float64{ra[0], ra[1] + 6*side})
	o.VertexStart = 3
	o.VertexEnd = -1
	o.GhostOffset = -1

	// bounding triangle, counterclockwise
	t0 := o.Tri.New()
	o.setTri(t0, [3]int{0, 1, 2})

	// dummy border: one invalid-tipped sentinel per edge
	for k := 0; k < 3; k++ {
		dk := o.Tri.New()
		f := TriFace[k]
		vt := o.Tri.V[t0]
		o.Tri.V[dk] = [3]int{vt[f[0]], vt[f[1]], DummyVertex}
		o.Tri.Link(dk, 2, t0, k)
	}
	o.last = t0
	return
}

// SetSeed re-seeds the tie-break generator (call before the first insertion
// for bit-reproducible topology)
func (o *Delaunay2) SetSeed(seed int64) {
	o.rng = rand.New(rand.NewSource(seed))
}

// Local maps a local generator slot to its internal vertex index
func (o *Delaunay2) Local(i int) int {
	return o.VertexStart + i
}

// Nlocal returns the number of local generators inserted so far
func (o *Delaunay2) Nlocal() int {
	if o.consolidated {
		return o.VertexEnd - o.VertexStart
	}
	return o.Vtx.N - o.VertexStart
}

// AddLocalVertex inserts the local generator for the pre-reserved slot i.
// Slots must be streamed in order.
func (o *Delaunay2) AddLocalVertex(i int, x []float64) {
	if o.consolidated {
		chk.Panic("cannot add local vertex %d after consolidate", i)
	}
	chk.IntAssert(i, o.Vtx.N-o.VertexStart)
	o.insert(o.Vtx.Append(x))
}

// AddGhostVertex appends one ghost generator (only after Consolidate) and
// returns its internal vertex index
func (o *Delaunay2) AddGhostVertex(x []float64) (idx int) {
	if !o.consolidated {
		chk.Panic("cannot add ghost vertices before consolidate")
	}
	idx = o.Vtx.Append(x)
	o.insert(idx)
	return
}

// Consolidate freezes the local/ghost vertex boundary. It must be called
// exactly once.
func (o *Delaunay2) Consolidate() {
	if o.consolidated {
		chk.Panic("consolidate must be called exactly once")
	}
	o.VertexEnd = o.Vtx.N
	o.GhostOffset = o.Vtx.N
	o.consolidated = true
}

// SearchRadius returns twice the largest circumradius among the triangles
// incident to local generator i, refreshing the stored per-vertex radius
func (o *Delaunay2) SearchRadius(i int) float64 {
	if !o.consolidated {
		chk.Panic("search radius requires a consolidated tessellation")
	}
	v := o.Local(i)
	rmax := 0.0
	o.forEachIncident(v, func(t int) {
		vt := o.Tri.V[t]
		r := geo.TriCircumradius(o.Vtx.Pos(vt[0]), o.Vtx.Pos(vt[1]), o.Vtx.Pos(vt[2]))
		if r > rmax {
			rmax = r
		}
	})
	o.Vtx.Srad[v] = 2 * rmax
	return 2 * rmax
}

// AveWalkSteps returns the average point-location walk length
func (o *Delaunay2) AveWalkSteps() float64 {
	if o.NumWalks == 0 {
		return 0
	}
	return float64(o.WalkSteps) / float64(o.NumWalks)
}

// insertion ////////////////////////////////////////////////////////////////

// insert runs point location, the matching split and the flip cascade for
// vertex p
func (o *Delaunay2) insert(p int) {
	o.NumWalks++
	t, z1, nzero := o.locate(p)
	switch nzero {
	case 0: // strictly inside: 1→3
		o.cavity = append(o.cavity[:0], t)
	case 1: // on one edge: 2→4
		nb := o.Tri.N[t][z1]
		if o.Tri.IsDummy(nb) {
			chk.Panic("vertex %d lies on the bounding simplex boundary", p)
		}
		o.NumSplitEdge++
		o.cavity = append(o.cavity[:0], t, nb)
	}
	o.splitCavity(p)
	o.restore(p)
	if o.Checks {
		if err := o.Check(); err != nil {
			chk.Panic("invariant broken after inserting vertex %d:\n%v", p, err)
		}
	}
}

// locate walks from the last visited triangle to the one containing vertex
// p. It returns the containing triangle, the slot whose edge orientation is
// zero (if any) and the number of zeros.
func (o *Delaunay2) locate(p int) (t, z1, nzero int) {
	t = o.last
	mp := o.Vtx.M2(p)
	var negs [3]int
	for iter := 0; ; iter++ {
		if iter > 4*len(o.Tri.V)+1000 {
			chk.Panic("point location did not converge for vertex %d (misconfigured bounding box?)", p)
		}
		if o.Tri.IsDummy(t) {
			chk.Panic("point location stepped into the border: vertex %d is outside the bounding simplex", p)
		}
		vt := o.Tri.V[t]
		nneg := 0
		nzero, z1 = 0, -1
		for i := 0; i < 3; i++ {
			f := TriFace[i]
			s := o.prd.Orient2(o.Vtx.M2(vt[f[0]]), o.Vtx.M2(vt[f[1]]), mp)
			if s < 0 {
				negs[nneg] = i
				nneg++
			} else if s == 0 {
				if nzero == 0 {
					z1 = i
				}
				nzero++
			}
		}
		if nneg > 0 {
			// unbiased tie-break among the negative edges prevents cycling
			pick := negs[0]
			if nneg > 1 {
				pick = negs[o.rng.Intn(nneg)]
			}
			t = o.Tri.N[t][pick]
			o.WalkSteps++
			continue
		}
		if nzero > 1 {
			chk.Panic("vertex %d coincides with an existing vertex (%d zero orientations)", p, nzero)
		}
		o.last = t
		return
	}
}

// splitCavity replaces the triangles of o.cavity with one new triangle per
// cavity-boundary edge, tipped at p. This realises the 1→3 and 2→4 splits
// uniformly.
func (o *Delaunay2) splitCavity(p int) {
	o.tuples = o.tuples[:0]
	for _, t := range o.cavity {
		for k := 0; k < 3; k++ {
			if o.inCavity(o.Tri.N[t][k]) {
				continue
			}
			f := TriFace[k]
			vt := o.Tri.V[t]
			o.tuples = append(o.tuples, [3]int{vt[f[0]], vt[f[1]], p})
		}
	}
	o.replace(o.cavity, o.tuples)
	o.queue = append(o.queue[:0], o.created...)
	o.last = o.created[0]
}

// inCavity tells whether simplex t is a member of the current cavity
func (o *Delaunay2) inCavity(t int) bool {
	for _, c := range o.cavity {
		if c == t {
			return true
		}
	}
	return false
}

// replace substitutes the triangles in old by new ones with the given
// (counterclockwise) vertex tuples, rewiring all neighbour links in
// reciprocal pairs. The freshly allocated ids are left in o.created.
func (o *Delaunay2) replace(old []int, tuples [][3]int) {
	for _, t := range old {
		for k := 0; k < 3; k++ {
			nb := o.Tri.N[t][k]
			isOld := false
			for _, q := range old {
				if q == nb {
					isOld = true
					break
				}
			}
			if isOld {
				continue
			}
			f := TriFace[k]
			vt := o.Tri.V[t]
			o.ext[edgeKey(vt[f[0]], vt[f[1]])] = ref{nb, o.Tri.R[t][k]}
		}
	}
	for _, t := range old {
		o.Tri.Deactivate(t)
	}
	o.created = o.created[:0]
	for _, tu := range tuples {
		id := o.Tri.New()
		o.setTri(id, tu)
		o.created = append(o.created, id)
	}
	for _, id := range o.created {
		for s := 0; s < 3; s++ {
			f := TriFace[s]
			vt := o.Tri.V[id]
			key := edgeKey(vt[f[0]], vt[f[1]])
			if rf, ok := o.ext[key]; ok {
				o.Tri.Link(id, s, rf.t, rf.s)
				delete(o.ext, key)
				continue
			}
			if rf, ok := o.pend[key]; ok {
				o.Tri.Link(id, s, rf.t, rf.s)
				delete(o.pend, key)
				continue
			}
			o.pend[key] = ref{id, s}
		}
	}
	if len(o.ext) > 0 || len(o.pend) > 0 {
		chk.Panic("internal error: cavity rewiring left %d+%d unmatched edges", len(o.ext), len(o.pend))
	}
}

// setTri writes the vertex tuple of triangle t and refreshes the
// vertex→simplex back-links
func (o *Delaunay2) setTri(t int, v [3]int) {
	o.Tri.V[t] = v
	for k := 0; k < 3; k++ {
		if v[k] >= 0 {
			o.Vtx.Simp[v[k]] = t
			o.Vtx.Slot[v[k]] = k
		}
	}
}

// edgeKey builds the order-independent identity of an edge
func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// restore pops the to-check queue until the Delaunay property holds around
// the freshly inserted vertex p. Every queued triangle carries p in its
// last slot; the 2D repair is always an edge flip (2→2).
func (o *Delaunay2) restore(p int) {
	for len(o.queue) > 0 {
		t := o.queue[len(o.queue)-1]
		o.queue = o.queue[:len(o.queue)-1]
		if !o.Tri.Active[t] {
			continue
		}
		if o.Tri.V[t][2] != p {
			chk.Panic("internal error: queued triangle %d does not carry vertex %d last", t, p)
		}
		u := o.Tri.N[t][2]
		if o.Tri.IsDummy(u) {
			continue
		}
		w := o.Tri.V[u][o.Tri.R[t][2]]
		a, b := o.Tri.V[t][0], o.Tri.V[t][1]
		if o.prd.InCircle(o.Vtx.M2(a), o.Vtx.M2(b), o.Vtx.M2(p), o.Vtx.M2(w)) <= 0 {
			continue
		}

		// flip the edge (a,b) to (p,w)
		o.cavity = append(o.cavity[:0], t, u)
		o.tuples = append(o.tuples[:0],
			[3]int{a, w, p},
			[3]int{w, b, p})
		o.replace(o.cavity, o.tuples)
		o.queue = append(o.queue, o.created...)
		o.last = o.created[0]
		o.NumFlips++
	}
}

// forEachIncident visits every active non-dummy triangle containing vertex
// v, using the epoch-marked scratch to avoid revisits
func (o *Delaunay2) forEachIncident(v int, fn func(t int)) {
	for len(o.seen) < len(o.Tri.V) {
		o.seen = append(o.seen, 0)
	}
	o.epoch++
	start := o.Vtx.Simp[v]
	if start == NoSimplex {
		chk.Panic("vertex %d has no simplex back-link", v)
	}
	stack := o.cavity[:0]
	stack = append(stack, start)
	o.seen[start] = o.epoch
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(t)
		for k := 0; k < 3; k++ {
			nb := o.Tri.N[t][k]
			if nb < 0 || o.seen[nb] == o.epoch || o.Tri.IsDummy(nb) {
				continue
			}
			has := false
			for s := 0; s < 3; s++ {
				if o.Tri.V[nb][s] == v {
					has = true
					break
				}
			}
			if !has {
				continue
			}
			o.seen[nb] = o.epoch
			stack = append(stack, nb)
		}
	}
	o.cavity = stack[:0]
}
