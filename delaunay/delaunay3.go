// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delaunay

import (
	"math/rand"

	"github.com/cpmech/govoro/geo"
	"github.com/cpmech/govoro/pred"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DefaultSeed seeds the point-location tie-break generator when the host
// does not call SetSeed
const DefaultSeed = 1234

// Delaunay3 is the incremental 3D Delaunay tessellator. One instance owns
// all of its scratch state and must not be shared between goroutines.
type Delaunay3 struct {

	// stores
	Vtx *Vertices   // vertex store
	Tet *Tetrahedra // simplex store

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
	NumFlips     int // executed flips (2→3, 3→2, 4→4)
	NumDeferred  int // deferred flip configurations
	NumSplitFace int // 2→6 splits (point on face)
	NumSplitEdge int // N→2N splits (point on edge)

	// scratch (reused across insertions)
	prd          *pred.Scratch  // exact predicate workspace
	rng          *rand.Rand     // tie-break generator
	last         int            // walk starting guess
	queue        []int          // to-check LIFO of the flip cascade
	deferred     []int          // configurations waiting for a later flip
	cavity       []int          // located cavity / edge ring
	tuples       [][4]int       // replacement vertex tuples
	created      []int          // freshly allocated simplices
	ext          map[[3]int]ref // boundary faces of a cavity under rewiring
	pend         map[[3]int]ref // half-matched internal faces
	seen         []int          // per-simplex epoch marks (incidence walks)
	epoch        int            // current epoch of seen
	progress     bool           // a flip was executed since the last re-drain
	consolidated bool
}

// ref is one half of a neighbour link: simplex id and slot
type ref struct {
	t, s int
}

// NewDelaunay3 builds the bounding tetrahedron (9 x the host box) and its
// dummy border, and reserves capacity for the given number of vertices and
// tetrahedra.
func NewDelaunay3(anchor []float64, side float64, nvertsCap, ntetsCap int) (o *Delaunay3) {
	if side <= 0 {
		chk.Panic("bounding box side must be positive. side=%g is invalid", side)
	}
	o = new(Delaunay3)
	o.BoxAnchor = []float64{anchor[0], anchor[1], anchor[2]}
	o.BoxSide = side

	// the rescale box spans the bounding tetrahedron
	ra := []float64{anchor[0] - side, anchor[1] - side, anchor[2] - side}
	o.Vtx = NewVertices(3, ra, 9*side, nvertsCap+4)
	o.Tet = NewTetrahedra(ntetsCap + 8)
	o.prd = pred.NewScratch()
	o.rng = rand.New(rand.NewSource(DefaultSeed))
	o.ext = make(map[[3]int]ref)
	o.pend = make(map[[3]int]ref)

	// auxiliary vertices: corners of the bounding tetrahedron
	o.Vtx.Append(ra)
	o.Vtx.Append([]float64{ra[0] + 9*side, ra[1], ra[2]})
	o.Vtx.Append([]float64{ra[0], ra[1] + 9*side, ra[2]})
	o.Vtx.Append([]float64{ra[0], ra[1], ra[2] + 9*side})
	o.VertexStart = 4
	o.VertexEnd = -1
	o.GhostOffset = -1

	// bounding tetrahedron, positively oriented
	t0 := o.Tet.New()
	o.setTet(t0, [4]int{0, 1, 3, 2})

	// dummy border: one invalid-tipped sentinel per face
	for k := 0; k < 4; k++ {
		dk := o.Tet.New()
		f := TetFace[k]
		vt := o.Tet.V[t0]
		o.Tet.V[dk] = [4]int{vt[f[0]], vt[f[1]], vt[f[2]], DummyVertex}
		o.Tet.Link(dk, 3, t0, k)
	}
	o.last = t0
	return
}

// SetSeed re-seeds the tie-break generator (call before the first insertion
// for bit-reproducible topology)
func (o *Delaunay3) SetSeed(seed int64) {
	o.rng = rand.New(rand.NewSource(seed))
}

// Local maps a local generator slot to its internal vertex index
func (o *Delaunay3) Local(i int) int {
	return o.VertexStart + i
}

// Nlocal returns the number of local generators inserted so far
func (o *Delaunay3) Nlocal() int {
	if o.consolidated {
		return o.VertexEnd - o.VertexStart
	}
	return o.Vtx.N - o.VertexStart
}

// AddLocalVertex inserts the local generator for the pre-reserved slot i.
// Slots must be streamed in order.
func (o *Delaunay3) AddLocalVertex(i int, x []float64) {
	if o.consolidated {
		chk.Panic("cannot add local vertex %d after consolidate", i)
	}
	chk.IntAssert(i, o.Vtx.N-o.VertexStart)
	o.insert(o.Vtx.Append(x))
}

// AddGhostVertex appends one ghost generator (only after Consolidate) and
// returns its internal vertex index
func (o *Delaunay3) AddGhostVertex(x []float64) (idx int) {
	if !o.consolidated {
		chk.Panic("cannot add ghost vertices before consolidate")
	}
	idx = o.Vtx.Append(x)
	o.insert(idx)
	return
}

// Consolidate freezes the local/ghost vertex boundary. It must be called
// exactly once.
func (o *Delaunay3) Consolidate() {
	if o.consolidated {
		chk.Panic("consolidate must be called exactly once")
	}
	o.VertexEnd = o.Vtx.N
	o.GhostOffset = o.Vtx.N
	o.consolidated = true
}

// SearchRadius returns twice the largest circumradius among the tetrahedra
// incident to local generator i, refreshing the stored per-vertex radius.
// The value drives the host's ghost-import loop; it is computed in plain
// double precision.
func (o *Delaunay3) SearchRadius(i int) float64 {
	if !o.consolidated {
		chk.Panic("search radius requires a consolidated tessellation")
	}
	v := o.Local(i)
	rmax := 0.0
	o.forEachIncident(v, func(t int) {
		vt := o.Tet.V[t]
		r := geo.TetCircumradius(o.Vtx.Pos(vt[0]), o.Vtx.Pos(vt[1]), o.Vtx.Pos(vt[2]), o.Vtx.Pos(vt[3]))
		if r > rmax {
			rmax = r
		}
	})
	o.Vtx.Srad[v] = 2 * rmax
	return 2 * rmax
}

// AveWalkSteps returns the average point-location walk length
func (o *Delaunay3) AveWalkSteps() float64 {
	if o.NumWalks == 0 {
		return 0
	}
	return float64(o.WalkSteps) / float64(o.NumWalks)
}

// insertion ////////////////////////////////////////////////////////////////

// insert runs point location, the matching split and the flip cascade for
// vertex p
func (o *Delaunay3) insert(p int) {
	o.NumWalks++
	t, z1, z2, nzero := o.locate(p)
	switch nzero {
	case 0: // strictly inside: 1→4
		o.cavity = append(o.cavity[:0], t)
	case 1: // on one face: 2→6
		nb := o.Tet.N[t][z1]
		if o.Tet.IsDummy(nb) {
			chk.Panic("vertex %d lies on the bounding simplex boundary", p)
		}
		o.NumSplitFace++
		o.cavity = append(o.cavity[:0], t, nb)
	case 2: // on one edge shared by N simplices: N→2N
		var ea, eb int
		k := 0
		for s := 0; s < 4; s++ {
			if s != z1 && s != z2 {
				if k == 0 {
					ea = o.Tet.V[t][s]
				} else {
					eb = o.Tet.V[t][s]
				}
				k++
			}
		}
		o.NumSplitEdge++
		o.collectRing(t, ea, eb, p)
	}
	o.splitCavity(p)
	o.restore(p)
	if o.Checks {
		if err := o.Check(); err != nil {
			chk.Panic("invariant broken after inserting vertex %d:\n%v", p, err)
		}
	}
}

// locate walks from the last visited tetrahedron to the one containing
// vertex p. It returns the containing tetrahedron, the slots whose face
// orientation is zero (z1, z2) and the number of zeros.
func (o *Delaunay3) locate(p int) (t, z1, z2, nzero int) {
	t = o.last
	mp := o.Vtx.M3(p)
	var negs [4]int
	for iter := 0; ; iter++ {
		if iter > 4*len(o.Tet.V)+1000 {
			chk.Panic("point location did not converge for vertex %d (misconfigured bounding box?)", p)
		}
		if o.Tet.IsDummy(t) {
			chk.Panic("point location stepped into the border: vertex %d is outside the bounding simplex", p)
		}
		vt := o.Tet.V[t]
		nneg := 0
		nzero, z1, z2 = 0, -1, -1
		for i := 0; i < 4; i++ {
			f := TetFace[i]
			s := o.prd.Orient3(o.Vtx.M3(vt[f[0]]), o.Vtx.M3(vt[f[1]]), o.Vtx.M3(vt[f[2]]), mp)
			if s < 0 {
				negs[nneg] = i
				nneg++
			} else if s == 0 {
				if nzero == 0 {
					z1 = i
				} else {
					z2 = i
				}
				nzero++
			}
		}
		if nneg > 0 {
			// unbiased tie-break among the negative faces prevents cycling
			pick := negs[0]
			if nneg > 1 {
				pick = negs[o.rng.Intn(nneg)]
			}
			t = o.Tet.N[t][pick]
			o.WalkSteps++
			continue
		}
		if nzero > 2 {
			chk.Panic("vertex %d coincides with an existing vertex or edge (%d zero orientations)", p, nzero)
		}
		o.last = t
		return
	}
}

// collectRing gathers into o.cavity the ring of tetrahedra sharing the edge
// (ea, eb), starting from t
func (o *Delaunay3) collectRing(t, ea, eb, p int) {
	o.cavity = append(o.cavity[:0], t)
	var x, y int
	k := 0
	for s := 0; s < 4; s++ {
		v := o.Tet.V[t][s]
		if v != ea && v != eb {
			if k == 0 {
				x = v
			} else {
				y = v
			}
			k++
		}
	}
	cur := o.Tet.N[t][o.Tet.SlotOf(t, y)]
	carry := x
	for cur != t {
		if o.Tet.IsDummy(cur) {
			chk.Panic("vertex %d lies on a border edge of the bounding simplex", p)
		}
		o.cavity = append(o.cavity, cur)
		z := -1
		for s := 0; s < 4; s++ {
			v := o.Tet.V[cur][s]
			if v != ea && v != eb && v != carry {
				z = v
			}
		}
		cur = o.Tet.N[cur][o.Tet.SlotOf(cur, carry)]
		carry = z
	}
}

// splitCavity replaces the simplices of o.cavity (all containing vertex p
// on their closure) with one new tetrahedron per cavity-boundary face,
// tipped at p. This realises the 1→4, 2→6 and N→2N splits uniformly.
func (o *Delaunay3) splitCavity(p int) {
	o.tuples = o.tuples[:0]
	for _, t := range o.cavity {
		for k := 0; k < 4; k++ {
			if o.inCavity(o.Tet.N[t][k]) {
				continue
			}
			f := TetFace[k]
			vt := o.Tet.V[t]
			o.tuples = append(o.tuples, [4]int{vt[f[0]], vt[f[1]], vt[f[2]], p})
		}
	}
	o.replace(o.cavity, o.tuples)
	o.queue = append(o.queue[:0], o.created...)
	o.last = o.created[0]
}

// inCavity tells whether simplex t is a member of the current cavity
func (o *Delaunay3) inCavity(t int) bool {
	for _, c := range o.cavity {
		if c == t {
			return true
		}
	}
	return false
}

// replace substitutes the simplices in old by new tetrahedra with the given
// (positively oriented) vertex tuples, rewiring all neighbour links in
// reciprocal pairs. The freshly allocated ids are left in o.created.
func (o *Delaunay3) replace(old []int, tuples [][4]int) {

	// record the links leaving the cavity
	for _, t := range old {
		for k := 0; k < 4; k++ {
			nb := o.Tet.N[t][k]
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
			f := TetFace[k]
			vt := o.Tet.V[t]
			o.ext[faceKey(vt[f[0]], vt[f[1]], vt[f[2]])] = ref{nb, o.Tet.R[t][k]}
		}
	}

	// recycle the old slots and allocate the new simplices
	for _, t := range old {
		o.Tet.Deactivate(t)
	}
	o.created = o.created[:0]
	for _, tu := range tuples {
		id := o.Tet.New()
		o.setTet(id, tu)
		o.created = append(o.created, id)
	}

	// rewire: external faces reconnect to the recorded links, internal
	// faces pair up among the new simplices
	for _, id := range o.created {
		for s := 0; s < 4; s++ {
			f := TetFace[s]
			vt := o.Tet.V[id]
			key := faceKey(vt[f[0]], vt[f[1]], vt[f[2]])
			if rf, ok := o.ext[key]; ok {
				o.Tet.Link(id, s, rf.t, rf.s)
				delete(o.ext, key)
				continue
			}
			if rf, ok := o.pend[key]; ok {
				o.Tet.Link(id, s, rf.t, rf.s)
				delete(o.pend, key)
				continue
			}
			o.pend[key] = ref{id, s}
		}
	}
	if len(o.ext) > 0 || len(o.pend) > 0 {
		chk.Panic("internal error: cavity rewiring left %d+%d unmatched faces", len(o.ext), len(o.pend))
	}
}

// setTet writes the vertex tuple of tetrahedron t and refreshes the
// vertex→simplex back-links
func (o *Delaunay3) setTet(t int, v [4]int) {
	o.Tet.V[t] = v
	for k := 0; k < 4; k++ {
		if v[k] >= 0 {
			o.Vtx.Simp[v[k]] = t
			o.Vtx.Slot[v[k]] = k
		}
	}
}

// faceKey builds the order-independent identity of a face
func faceKey(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

// flip cascade /////////////////////////////////////////////////////////////

// restore pops the to-check queue until the Delaunay property holds around
// the freshly inserted vertex p. Every queued simplex carries p in its last
// slot, so the face to test is always the one opposite that slot.
func (o *Delaunay3) restore(p int) {
	o.progress = true
	for {
		if len(o.queue) == 0 {
			if len(o.deferred) == 0 {
				return
			}
			if !o.progress {
				chk.Panic("flip cascade stalled with %d deferred configurations around vertex %d", len(o.deferred), p)
			}
			o.progress = false
			o.queue = append(o.queue, o.deferred...)
			o.deferred = o.deferred[:0]
			continue
		}
		t := o.queue[len(o.queue)-1]
		o.queue = o.queue[:len(o.queue)-1]
		if !o.Tet.Active[t] {
			continue
		}
		if o.Tet.V[t][3] != p {
			chk.Panic("internal error: queued tetrahedron %d does not carry vertex %d last", t, p)
		}
		u := o.Tet.N[t][3]
		if o.Tet.IsDummy(u) {
			continue
		}
		w := o.Tet.V[u][o.Tet.R[t][3]]
		vt := o.Tet.V[t]
		if o.prd.InSphere(o.Vtx.M3(vt[0]), o.Vtx.M3(vt[1]), o.Vtx.M3(vt[2]), o.Vtx.M3(p), o.Vtx.M3(w)) <= 0 {
			continue
		}

		// w violates the circumsphere of t: classify the flip diamond by
		// testing where the candidate edge (p,w) crosses the shared face
		a, b, c := vt[0], vt[1], vt[2]
		e0 := o.prd.Orient3(o.Vtx.M3(a), o.Vtx.M3(b), o.Vtx.M3(p), o.Vtx.M3(w))
		e1 := o.prd.Orient3(o.Vtx.M3(b), o.Vtx.M3(c), o.Vtx.M3(p), o.Vtx.M3(w))
		e2 := o.prd.Orient3(o.Vtx.M3(c), o.Vtx.M3(a), o.Vtx.M3(p), o.Vtx.M3(w))
		npos, nzero := 0, 0
		for _, e := range []int{e0, e1, e2} {
			if e > 0 {
				npos++
			} else if e == 0 {
				nzero++
			}
		}

		// relabel cyclically so the special edge, if any, is (a,b)
		switch {
		case e1 > 0 || (npos == 0 && e1 == 0):
			a, b, c = b, c, a
		case e2 > 0 || (npos == 0 && nzero == 1 && e2 == 0):
			a, b, c = c, a, b
		}

		switch {
		case npos == 0 && nzero == 0:
			o.flip23(t, u, p, w, a, b, c)
		case npos == 1 && nzero == 0:
			o.flip32(t, u, p, w, a, b, c)
		case npos == 0 && nzero == 1:
			o.flip44(t, u, p, w, a, b, c)
		default:
			// non-flippable arrangement: re-examined after later flips
			o.defer1(t)
		}
	}
}

// defer1 parks one configuration until the cascade makes progress elsewhere
func (o *Delaunay3) defer1(t int) {
	o.deferred = append(o.deferred, t)
	o.NumDeferred++
	if o.Verbose {
		io.Pf("delaunay3: deferred flip at tetrahedron %d\n", t)
	}
}

// flip23 replaces the two tetrahedra sharing face (a,b,c) by three sharing
// the new edge (p,w)
func (o *Delaunay3) flip23(t, u, p, w, a, b, c int) {
	o.cavity = append(o.cavity[:0], t, u)
	o.tuples = append(o.tuples[:0],
		[4]int{a, b, w, p},
		[4]int{b, c, w, p},
		[4]int{c, a, w, p})
	o.replace(o.cavity, o.tuples)
	o.queue = append(o.queue, o.created...)
	o.last = o.created[0]
	o.NumFlips++
	o.progress = true
}

// flip32 collapses the three tetrahedra sharing edge (a,b) into two, if the
// third member exists; otherwise the configuration is deferred
func (o *Delaunay3) flip32(t, u, p, w, a, b, c int) {
	x1 := o.Tet.N[t][o.Tet.SlotOf(t, c)] // across face (a,b,p)
	x2 := o.Tet.N[u][o.Tet.SlotOf(u, c)] // across face (a,b,w)
	if x1 != x2 || o.Tet.IsDummy(x1) {
		o.defer1(t)
		return
	}
	o.cavity = append(o.cavity[:0], t, u, x1)
	o.tuples = append(o.tuples[:0],
		[4]int{c, a, w, p},
		[4]int{b, c, w, p})
	o.replace(o.cavity, o.tuples)
	o.queue = append(o.queue, o.created...)
	o.last = o.created[0]
	o.NumFlips++
	o.progress = true
}

// flip44 re-splits the four tetrahedra around edge (a,b) along the
// perpendicular edge (p,w) when (a,b,p,w) are coplanar; the configuration
// is deferred unless the ring of four closes
func (o *Delaunay3) flip44(t, u, p, w, a, b, c int) {
	st := o.Tet.SlotOf(t, c)
	su := o.Tet.SlotOf(u, c)
	x1 := o.Tet.N[t][st] // across face (a,b,p)
	x2 := o.Tet.N[u][su] // across face (a,b,w)
	if o.Tet.IsDummy(x1) || o.Tet.IsDummy(x2) {
		o.defer1(t)
		return
	}
	z1 := o.Tet.V[x1][o.Tet.R[t][st]]
	z2 := o.Tet.V[x2][o.Tet.R[u][su]]
	if z1 != z2 || o.Tet.N[x1][o.Tet.SlotOf(x1, p)] != x2 {
		o.defer1(t)
		return
	}
	z := z1

	// positive orders for the two new simplices on the far side of the
	// coplanar sheet
	taz := [4]int{z, a, w, p}
	if s := o.prd.Orient3(o.Vtx.M3(z), o.Vtx.M3(a), o.Vtx.M3(w), o.Vtx.M3(p)); s < 0 {
		taz = [4]int{a, z, w, p}
	} else if s == 0 {
		o.defer1(t)
		return
	}
	tbz := [4]int{b, z, w, p}
	if s := o.prd.Orient3(o.Vtx.M3(b), o.Vtx.M3(z), o.Vtx.M3(w), o.Vtx.M3(p)); s < 0 {
		tbz = [4]int{z, b, w, p}
	} else if s == 0 {
		o.defer1(t)
		return
	}

	o.cavity = append(o.cavity[:0], t, u, x1, x2)
	o.tuples = append(o.tuples[:0],
		[4]int{c, a, w, p},
		[4]int{b, c, w, p},
		taz,
		tbz)
	o.replace(o.cavity, o.tuples)
	o.queue = append(o.queue, o.created...)
	o.last = o.created[0]
	o.NumFlips++
	o.progress = true
}

// incidence ////////////////////////////////////////////////////////////////

// forEachIncident visits every active non-dummy tetrahedron containing
// vertex v, using the epoch-marked scratch to avoid revisits
func (o *Delaunay3) forEachIncident(v int, fn func(t int)) {
	for len(o.seen) < len(o.Tet.V) {
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
		for k := 0; k < 4; k++ {
			nb := o.Tet.N[t][k]
			if nb < 0 || o.seen[nb] == o.epoch || o.Tet.IsDummy(nb) {
				continue
			}
			has := false
			for s := 0; s < 4; s++ {
				if o.Tet.V[nb][s] == v {
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
