// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/govoro/delaunay"
	"github.com/cpmech/govoro/voronoi"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	ndim := io.ArgToInt(0, 2)
	ndiv := io.ArgToInt(1, 4)
	dirout := io.ArgToString(2, "/tmp/govoro")
	verbose := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nGovoro -- Go Voronoi Mesh Builder\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"space dimension", "ndim", ndim,
			"grid divisions per side", "ndiv", ndiv,
			"output directory", "dirout", dirout,
			"show messages", "verbose", verbose,
		))
	}
	if ndim != 2 && ndim != 3 {
		chk.Panic("space dimension must be 2 or 3. ndim=%d is invalid", ndim)
	}

	// grid of local generators in the unit box, one ghost layer around
	h := 1.0 / float64(ndiv)
	seq := utl.LinSpace(h/2.0, 1.0-h/2.0, ndiv)
	anchor := []float64{0, 0, 0}[:ndim]

	var vor *voronoi.Voronoi
	var nlocal int
	switch ndim {
	case 2:
		d := delaunay.NewDelaunay2(anchor, 1.0, (ndiv+2)*(ndiv+2), 8*ndiv*ndiv)
		k := 0
		for _, y := range seq {
			for _, x := range seq {
				d.AddLocalVertex(k, []float64{x, y})
				k++
			}
		}
		nlocal = k
		d.Consolidate()
		for i := -1; i <= ndiv; i++ {
			for j := -1; j <= ndiv; j++ {
				if i >= 0 && i < ndiv && j >= 0 && j < ndiv {
					continue
				}
				d.AddGhostVertex([]float64{h/2.0 + float64(i)*h, h/2.0 + float64(j)*h})
			}
		}
		if verbose {
			io.Pf("average walk length   = %g\n", d.AveWalkSteps())
			io.Pf("first search radius   = %g\n", d.SearchRadius(0))
		}
		d.PrintTessellation(io.Sf("%s/grid2d.tess", dirout))
		vor = voronoi.BuildVoronoi2(d)
	case 3:
		d := delaunay.NewDelaunay3(anchor, 1.0, (ndiv+2)*(ndiv+2)*(ndiv+2), 16*ndiv*ndiv*ndiv)
		k := 0
		for _, z := range seq {
			for _, y := range seq {
				for _, x := range seq {
					d.AddLocalVertex(k, []float64{x, y, z})
					k++
				}
			}
		}
		nlocal = k
		d.Consolidate()
		for i := -1; i <= ndiv; i++ {
			for j := -1; j <= ndiv; j++ {
				for l := -1; l <= ndiv; l++ {
					if i >= 0 && i < ndiv && j >= 0 && j < ndiv && l >= 0 && l < ndiv {
						continue
					}
					d.AddGhostVertex([]float64{h/2.0 + float64(i)*h, h/2.0 + float64(j)*h, h/2.0 + float64(l)*h})
				}
			}
		}
		if verbose {
			io.Pf("average walk length   = %g\n", d.AveWalkSteps())
			io.Pf("first search radius   = %g\n", d.SearchRadius(0))
		}
		d.PrintTessellation(io.Sf("%s/grid3d.tess", dirout))
		vor = voronoi.BuildVoronoi3(d)
	}

	// volume conservation
	io.Pf("number of local generators = %d\n", nlocal)
	io.Pf("number of faces recorded   = %d\n", len(vor.Faces))
	io.Pf("sum of cell volumes        = %.17g (expected 1)\n", vor.SumVolumes())
	vor.Print(io.Sf("%s/grid%dd.voro", dirout, ndim))

	// probe: find the generator owning the box centre
	var bins gm.Bins
	xi := make([]float64, ndim)
	xf := make([]float64, ndim)
	for j := 0; j < ndim; j++ {
		xi[j] = -0.1
		xf[j] = 1.1
	}
	if err := bins.Init(xi, xf, 2*ndiv); err != nil {
		chk.Panic("cannot initialise bins: %v", err)
	}
	for _, c := range vor.Cells {
		if err := bins.Append(c.X, c.Id); err != nil {
			chk.Panic("cannot append generator to bins: %v", err)
		}
	}
	probe := make([]float64, ndim)
	for j := 0; j < ndim; j++ {
		probe[j] = 0.5
	}
	io.Pf("generator closest to centre = %d\n", bins.Find(probe))
}
