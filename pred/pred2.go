// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pred

import "math"

// ccwErrBound is the round-off bound of the non-exact Orient2 path:
// (3 + 16ε)ε with ε = 2^-53. If the double-precision determinant exceeds
// ccwErrBound times the magnitude sum, its sign is already certain.
const ccwErrBound = 3.3306690738754716e-16

// Orient2 returns the sign (-1, 0, +1) of the 2D orientation determinant
//
//	| ax-cx  ay-cy |
//	| bx-cx  by-cy |
//
// on integer mantissa coordinates: +1 when (a,b,c) turn counterclockwise,
// -1 clockwise, 0 colinear. A conservative floating-point filter runs
// first; correctness does not depend on it being taken.
func (o *Scratch) Orient2(a, b, c [2]uint64) int {
	acx := int64(a[0]) - int64(c[0])
	acy := int64(a[1]) - int64(c[1])
	bcx := int64(b[0]) - int64(c[0])
	bcy := int64(b[1]) - int64(c[1])

	// fast path: mantissa differences are exact doubles, only the two
	// products round, so the standard orient2d bound applies
	detLeft := float64(acx) * float64(bcy)
	detRight := float64(acy) * float64(bcx)
	det := detLeft - detRight
	if detLeft == 0 || detRight == 0 || (detLeft > 0) != (detRight > 0) {
		// opposite signs: no cancellation, det is exact enough
		return fsign(det)
	}
	detSum := math.Abs(detLeft) + math.Abs(detRight)
	if math.Abs(det) > ccwErrBound*detSum {
		return fsign(det)
	}

	// exact path
	return o.minor2(&o.det, acx, bcy, acy, bcx).Sign()
}

// InCircle returns the sign of the in-circle determinant: +1 when d lies
// strictly inside the circle through a, b and c, -1 strictly outside,
// 0 on the circle. Requires Orient2(a,b,c) > 0.
func (o *Scratch) InCircle(a, b, c, d [2]uint64) int {
	adx := int64(a[0]) - int64(d[0])
	ady := int64(a[1]) - int64(d[1])
	bdx := int64(b[0]) - int64(d[0])
	bdy := int64(b[1]) - int64(d[1])
	cdx := int64(c[0]) - int64(d[0])
	cdy := int64(c[1]) - int64(d[1])

	// 2x2 minors
	o.minor2(&o.ab, adx, bdy, ady, bdx)
	o.minor2(&o.bc, bdx, cdy, bdy, cdx)
	o.minor2(&o.ac, adx, cdy, ady, cdx) // note: ca = -ac

	// lifted column
	o.lift(&o.al, adx, ady, 0)
	o.lift(&o.bl, bdx, bdy, 0)
	o.lift(&o.cl, cdx, cdy, 0)

	// det = al*bc - bl*ac + cl*ab
	o.det.Mul(&o.al, &o.bc)
	o.p1.Mul(&o.bl, &o.ac)
	o.det.Sub(&o.det, &o.p1)
	o.p1.Mul(&o.cl, &o.ab)
	o.det.Add(&o.det, &o.p1)
	return o.det.Sign()
}

// fsign returns the sign of a float64 determinant estimate
func fsign(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
