// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pred

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_orient2d01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orient2d01. turns and colinearity")

	s := NewScratch()
	a := [2]uint64{0, 0}
	b := [2]uint64{4, 0}
	c := [2]uint64{0, 4}
	chk.IntAssert(s.Orient2(a, b, c), 1)  // counterclockwise
	chk.IntAssert(s.Orient2(a, c, b), -1) // clockwise
	chk.IntAssert(s.Orient2(a, b, [2]uint64{8, 0}), 0)

	// cancellation near the 52-bit range forces the exact path
	big := uint64(1) << 52
	chk.IntAssert(s.Orient2([2]uint64{0, 0}, [2]uint64{big / 2, big / 2}, [2]uint64{big, big + 1}), 1)
	chk.IntAssert(s.Orient2([2]uint64{0, 0}, [2]uint64{big / 2, big / 2}, [2]uint64{big, big}), 0)
	chk.IntAssert(s.Orient2([2]uint64{0, 1}, [2]uint64{big / 2, big/2 + 1}, [2]uint64{big, big + 1}), 0)
}

func Test_incircle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("incircle01. circle through right triangle")

	// circle through (0,0), (4,0), (0,4): centre (2,2), radius² = 8
	s := NewScratch()
	a := [2]uint64{0, 0}
	b := [2]uint64{4, 0}
	c := [2]uint64{0, 4}
	chk.IntAssert(s.Orient2(a, b, c), 1)
	chk.IntAssert(s.InCircle(a, b, c, [2]uint64{1, 1}), 1)  // inside
	chk.IntAssert(s.InCircle(a, b, c, [2]uint64{4, 4}), 0)  // on the circle
	chk.IntAssert(s.InCircle(a, b, c, [2]uint64{5, 5}), -1) // outside
}

func Test_orient3d01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orient3d01. plane sides and coplanarity")

	s := NewScratch()
	a := [3]uint64{0, 0, 0}
	b := [3]uint64{2, 0, 0}
	c := [3]uint64{0, 2, 0}
	d := [3]uint64{0, 0, 2}
	chk.IntAssert(s.Orient3(a, b, c, d), -1) // d above the ccw plane (a,b,c)
	chk.IntAssert(s.Orient3(a, c, b, d), 1)  // swapped: positively oriented
	chk.IntAssert(s.Orient3(a, b, c, [3]uint64{1, 1, 0}), 0)
}

func Test_insphere01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("insphere01. sphere through corner tetrahedron")

	// sphere through (0,0,0), (0,2,0), (2,0,0), (0,0,2): centre (1,1,1), radius² = 3
	s := NewScratch()
	a := [3]uint64{0, 0, 0}
	b := [3]uint64{0, 2, 0}
	c := [3]uint64{2, 0, 0}
	d := [3]uint64{0, 0, 2}
	chk.IntAssert(s.Orient3(a, b, c, d), 1)
	chk.IntAssert(s.InSphere(a, b, c, d, [3]uint64{1, 1, 1}), 1)  // inside (the centre)
	chk.IntAssert(s.InSphere(a, b, c, d, [3]uint64{2, 2, 0}), 0)  // on the sphere
	chk.IntAssert(s.InSphere(a, b, c, d, [3]uint64{3, 3, 3}), -1) // outside
}
