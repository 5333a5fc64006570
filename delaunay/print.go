// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delaunay

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// PrintTessellation writes the 2D debug text dump: one V line per vertex
// and one T line per active non-dummy triangle (tab-separated)
func (o *Delaunay2) PrintTessellation(path string) {
	var buf bytes.Buffer
	for v := 0; v < o.Vtx.N; v++ {
		x := o.Vtx.Pos(v)
		io.Ff(&buf, "V\t%d\t%.17g\t%.17g\n", v, x[0], x[1])
	}
	for t := 0; t < len(o.Tri.V); t++ {
		if !o.Tri.Active[t] || o.Tri.IsDummy(t) {
			continue
		}
		vt := o.Tri.V[t]
		io.Ff(&buf, "T\t%d\t%d\t%d\n", vt[0], vt[1], vt[2])
	}
	io.WriteFile(path, &buf)
	if o.Verbose {
		io.Pf("file <%s> written\n", path)
	}
}

// PrintTessellation writes the 3D debug text dump: one V line per vertex
// and one T line per active non-dummy tetrahedron (tab-separated)
func (o *Delaunay3) PrintTessellation(path string) {
	var buf bytes.Buffer
	for v := 0; v < o.Vtx.N; v++ {
		x := o.Vtx.Pos(v)
		io.Ff(&buf, "V\t%d\t%.17g\t%.17g\t%.17g\n", v, x[0], x[1], x[2])
	}
	for t := 0; t < len(o.Tet.V); t++ {
		if !o.Tet.Active[t] || o.Tet.IsDummy(t) {
			continue
		}
		vt := o.Tet.V[t]
		io.Ff(&buf, "T\t%d\t%d\t%d\t%d\n", vt[0], vt[1], vt[2], vt[3])
	}
	io.WriteFile(path, &buf)
	if o.Verbose {
		io.Pf("file <%s> written\n", path)
	}
}
