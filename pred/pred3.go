// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pred

// TODO: add a non-exact floating-point filter for Orient3 and InSphere
//       (adaptive stages or a conservative error-bound short circuit)

// Orient3 returns the sign of the 3D orientation determinant
//
//	| ax-dx  ay-dy  az-dz |
//	| bx-dx  by-dy  bz-dz |
//	| cx-dx  cy-dy  cz-dz |
//
// on integer mantissa coordinates: +1 when d lies below the plane through
// a, b, c ("below" such that a, b, c appear counterclockwise from above),
// -1 above, 0 coplanar.
func (o *Scratch) Orient3(a, b, c, d [3]uint64) int {
	adx := int64(a[0]) - int64(d[0])
	ady := int64(a[1]) - int64(d[1])
	adz := int64(a[2]) - int64(d[2])
	bdx := int64(b[0]) - int64(d[0])
	bdy := int64(b[1]) - int64(d[1])
	bdz := int64(b[2]) - int64(d[2])
	cdx := int64(c[0]) - int64(d[0])
	cdy := int64(c[1]) - int64(d[1])
	cdz := int64(c[2]) - int64(d[2])

	// det = adx*(bdy*cdz - bdz*cdy) + bdx*(cdy*adz - cdz*ady) + cdx*(ady*bdz - adz*bdy)
	o.minor2(&o.ab, bdy, cdz, bdz, cdy)
	o.minor2(&o.bc, cdy, adz, cdz, ady)
	o.minor2(&o.cd, ady, bdz, adz, bdy)
	o.det.SetInt64(0)
	o.mulAdd(&o.det, adx, &o.ab)
	o.mulAdd(&o.det, bdx, &o.bc)
	o.mulAdd(&o.det, cdx, &o.cd)
	return o.det.Sign()
}

// InSphere returns the sign of the in-sphere determinant: +1 when e lies
// strictly inside the sphere through a, b, c and d, -1 strictly outside,
// 0 on the sphere. Requires Orient3(a,b,c,d) > 0.
func (o *Scratch) InSphere(a, b, c, d, e [3]uint64) int {
	aex := int64(a[0]) - int64(e[0])
	aey := int64(a[1]) - int64(e[1])
	aez := int64(a[2]) - int64(e[2])
	bex := int64(b[0]) - int64(e[0])
	bey := int64(b[1]) - int64(e[1])
	bez := int64(b[2]) - int64(e[2])
	cex := int64(c[0]) - int64(e[0])
	cey := int64(c[1]) - int64(e[1])
	cez := int64(c[2]) - int64(e[2])
	dex := int64(d[0]) - int64(e[0])
	dey := int64(d[1]) - int64(e[1])
	dez := int64(d[2]) - int64(e[2])

	// 2x2 minors in the xy-plane
	o.minor2(&o.ab, aex, bey, bex, aey)
	o.minor2(&o.bc, bex, cey, cex, bey)
	o.minor2(&o.cd, cex, dey, dex, cey)
	o.minor2(&o.da, dex, aey, aex, dey)
	o.minor2(&o.ac, aex, cey, cex, aey)
	o.minor2(&o.bd, bex, dey, dex, bey)

	// 3x3 minors
	o.abc.SetInt64(0)
	o.mulAdd(&o.abc, aez, &o.bc)
	o.mulSub(&o.abc, bez, &o.ac)
	o.mulAdd(&o.abc, cez, &o.ab)

	o.bcd.SetInt64(0)
	o.mulAdd(&o.bcd, bez, &o.cd)
	o.mulSub(&o.bcd, cez, &o.bd)
	o.mulAdd(&o.bcd, dez, &o.bc)

	o.cda.SetInt64(0)
	o.mulAdd(&o.cda, cez, &o.da)
	o.mulAdd(&o.cda, dez, &o.ac)
	o.mulAdd(&o.cda, aez, &o.cd)

	o.dab.SetInt64(0)
	o.mulAdd(&o.dab, dez, &o.ab)
	o.mulAdd(&o.dab, aez, &o.bd)
	o.mulAdd(&o.dab, bez, &o.da)

	// lifted column
	o.lift(&o.al, aex, aey, aez)
	o.lift(&o.bl, bex, bey, bez)
	o.lift(&o.cl, cex, cey, cez)
	o.lift(&o.dl, dex, dey, dez)

	// det = dl*abc - cl*dab + bl*cda - al*bcd
	o.det.Mul(&o.dl, &o.abc)
	o.p1.Mul(&o.cl, &o.dab)
	o.det.Sub(&o.det, &o.p1)
	o.p1.Mul(&o.bl, &o.cda)
	o.det.Add(&o.det, &o.p1)
	o.p1.Mul(&o.al, &o.bcd)
	o.det.Sub(&o.det, &o.p1)
	return o.det.Sign()
}
