// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the double-precision geometry kernel: circumcenters,
// simplex measures and polygon decompositions used by the Voronoi builder
package geo

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// TriCircumcenter computes the circumcenter of the triangle (a, b, c).
// a, b, c and the result have 2 components.
func TriCircumcenter(res, a, b, c []float64) {
	bx := b[0] - a[0]
	by := b[1] - a[1]
	cx := c[0] - a[0]
	cy := c[1] - a[1]
	d := 2.0 * (bx*cy - by*cx)
	bl := bx*bx + by*by
	cl := cx*cx + cy*cy
	res[0] = a[0] + (cy*bl-by*cl)/d
	res[1] = a[1] + (bx*cl-cx*bl)/d
}

// TriCircumradius returns the circumradius of the triangle (a, b, c)
func TriCircumradius(a, b, c []float64) float64 {
	var cc [2]float64
	TriCircumcenter(cc[:], a, b, c)
	cc[0] -= a[0]
	cc[1] -= a[1]
	return la.VecNorm(cc[:])
}

// TetCircumcenter computes the circumcenter of the tetrahedron (a, b, c, d).
// All arguments have 3 components.
func TetCircumcenter(res, a, b, c, d []float64) {
	var u, v, w, vw, wu, uv [3]float64
	for i := 0; i < 3; i++ {
		u[i] = b[i] - a[i]
		v[i] = c[i] - a[i]
		w[i] = d[i] - a[i]
	}
	cross(vw[:], v[:], w[:])
	cross(wu[:], w[:], u[:])
	cross(uv[:], u[:], v[:])
	ul := u[0]*u[0] + u[1]*u[1] + u[2]*u[2]
	vl := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	wl := w[0]*w[0] + w[1]*w[1] + w[2]*w[2]
	den := 2.0 * (u[0]*vw[0] + u[1]*vw[1] + u[2]*vw[2])
	for i := 0; i < 3; i++ {
		res[i] = a[i] + (ul*vw[i]+vl*wu[i]+wl*uv[i])/den
	}
}

// TetCircumradius returns the circumradius of the tetrahedron (a, b, c, d)
func TetCircumradius(a, b, c, d []float64) float64 {
	var cc [3]float64
	TetCircumcenter(cc[:], a, b, c, d)
	for i := 0; i < 3; i++ {
		cc[i] -= a[i]
	}
	return la.VecNorm(cc[:])
}

// TetSignedVol returns the signed volume of the tetrahedron (a, b, c, d):
// positive when d lies below the counterclockwise plane (a, b, c)
func TetSignedVol(a, b, c, d []float64) float64 {
	var u, v, w, vw [3]float64
	for i := 0; i < 3; i++ {
		u[i] = a[i] - d[i]
		v[i] = b[i] - d[i]
		w[i] = c[i] - d[i]
	}
	cross(vw[:], v[:], w[:])
	return (u[0]*vw[0] + u[1]*vw[1] + u[2]*vw[2]) / 6.0
}

// TriSignedArea returns the signed area of the triangle (a, b, c):
// positive for a counterclockwise turn
func TriSignedArea(a, b, c []float64) float64 {
	return 0.5 * ((b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0]))
}

// PolygonProps computes the area and centroid of a simple 2D polygon given
// by its vertices in counterclockwise order, via a fan from the first vertex
func PolygonProps(cen []float64, pts [][]float64) (area float64) {
	cen[0], cen[1] = 0, 0
	n := len(pts)
	for i := 1; i < n-1; i++ {
		ai := TriSignedArea(pts[0], pts[i], pts[i+1])
		area += ai
		cen[0] += ai * (pts[0][0] + pts[i][0] + pts[i+1][0]) / 3.0
		cen[1] += ai * (pts[0][1] + pts[i][1] + pts[i+1][1]) / 3.0
	}
	if area != 0 {
		cen[0] /= area
		cen[1] /= area
	}
	return
}

// FaceProps computes the (unsigned) area and area-weighted midpoint of a
// planar 3D polygon given by its vertices in ring order, via a fan from the
// first vertex. Degenerate polygons report the vertex average as midpoint.
func FaceProps(mid []float64, pts [][]float64) (area float64) {
	mid[0], mid[1], mid[2] = 0, 0, 0
	n := len(pts)
	var u, v, w [3]float64
	for i := 1; i < n-1; i++ {
		for j := 0; j < 3; j++ {
			u[j] = pts[i][j] - pts[0][j]
			v[j] = pts[i+1][j] - pts[0][j]
		}
		cross(w[:], u[:], v[:])
		ai := 0.5 * math.Sqrt(w[0]*w[0]+w[1]*w[1]+w[2]*w[2])
		area += ai
		for j := 0; j < 3; j++ {
			mid[j] += ai * (pts[0][j] + pts[i][j] + pts[i+1][j]) / 3.0
		}
	}
	if area > 0 {
		for j := 0; j < 3; j++ {
			mid[j] /= area
		}
		return
	}
	for _, p := range pts {
		for j := 0; j < 3; j++ {
			mid[j] += p[j] / float64(n)
		}
	}
	return
}

// Dist returns the Euclidean distance between two points with ndim components
func Dist(a, b []float64) float64 {
	sum := 0.0
	for i := 0; i < len(a); i++ {
		sum += (a[i] - b[i]) * (a[i] - b[i])
	}
	return math.Sqrt(sum)
}

// cross computes res = u × v
func cross(res, u, v []float64) {
	res[0] = u[1]*v[2] - u[2]*v[1]
	res[1] = u[2]*v[0] - u[0]*v[2]
	res[2] = u[0]*v[1] - u[1]*v[0]
}
