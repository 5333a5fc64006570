// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pred implements exact geometric predicates on integer coordinates
package pred

import "math/big"

// Scratch holds the big-integer workspace of one tessellation. All exact
// predicates run on it so that no call allocates; it must not be shared
// between tessellations running on different goroutines.
type Scratch struct {

	// int64 factors
	xa, xb big.Int // operands of mul64

	// pairwise products
	ab, bc, cd, da, ac, bd big.Int // 2x2 minors
	p1, p2, p3             big.Int // product accumulators

	// 3x3 minors
	abc, bcd, cda, dab big.Int

	// lifted terms (squared norms)
	al, bl, cl, dl big.Int

	// final determinant
	det big.Int
}

// NewScratch returns a ready-to-use predicate workspace
func NewScratch() *Scratch {
	return new(Scratch)
}

// mul64 sets z = x*y for 64-bit signed factors
func (o *Scratch) mul64(z *big.Int, x, y int64) *big.Int {
	o.xa.SetInt64(x)
	o.xb.SetInt64(y)
	return z.Mul(&o.xa, &o.xb)
}

// minor2 sets z = x0*y1 - x1*y0
func (o *Scratch) minor2(z *big.Int, x0, y1, x1, y0 int64) *big.Int {
	o.mul64(&o.p1, x0, y1)
	o.mul64(&o.p2, x1, y0)
	return z.Sub(&o.p1, &o.p2)
}

// lift sets z = x*x + y*y + zz*zz (pass zz = 0 in 2D)
func (o *Scratch) lift(z *big.Int, x, y, zz int64) *big.Int {
	o.mul64(&o.p1, x, x)
	o.mul64(&o.p2, y, y)
	z.Add(&o.p1, &o.p2)
	if zz != 0 {
		o.mul64(&o.p1, zz, zz)
		z.Add(z, &o.p1)
	}
	return z
}

// mulAdd sets z += v*w where v is a 64-bit factor
func (o *Scratch) mulAdd(z *big.Int, v int64, w *big.Int) {
	o.xa.SetInt64(v)
	o.p3.Mul(&o.xa, w)
	z.Add(z, &o.p3)
}

// mulSub sets z -= v*w where v is a 64-bit factor
func (o *Scratch) mulSub(z *big.Int, v int64, w *big.Int) {
	o.xa.SetInt64(v)
	o.p3.Mul(&o.xa, w)
	z.Sub(z, &o.p3)
}
