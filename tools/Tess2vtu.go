// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// global variables
var (
	ndim   int         // space dimension (from the width of T lines)
	coords [][]float64 // all vertex coordinates, indexed by vertex id
	cells  [][]int     // tessellation simplices
	dirout string      // directory for output
	fnkey  string      // filename key
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	var tessfn string
	tessfn, fnkey = io.ArgToFilename(0, "/tmp/govoro/grid2d", ".tess", true)
	dirout = io.ArgToString(1, "/tmp/govoro")
	io.Pf("\n%s\n", io.ArgsTable(
		"tessellation dump filename", "tessfn", tessfn,
		"output directory", "dirout", dirout,
	))

	// read dump
	read_tess(tessfn)
	io.Pf("%d vertices and %d simplices read (ndim=%d)\n", len(coords), len(cells), ndim)

	// buffers
	geo := new(bytes.Buffer)
	vtu := new(bytes.Buffer)

	// generate topology and cell data
	topology(geo)
	cdata_write(vtu)

	// write vtu file
	vtu_write(geo, vtu)
}

// read_tess parses the line-oriented V/T dump written by PrintTessellation
func read_tess(fn string) {
	f, err := os.Open(fn)
	if err != nil {
		chk.Panic("cannot open tessellation dump:\n%v", err)
	}
	defer f.Close()
	scn := bufio.NewScanner(f)
	for scn.Scan() {
		fields := strings.Fields(scn.Text())
		if len(fields) < 1 {
			continue
		}
		switch fields[0] {
		case "V":
			x := make([]float64, len(fields)-2)
			for j := 2; j < len(fields); j++ {
				x[j-2] = io.Atof(fields[j])
			}
			coords = append(coords, x)
		case "T":
			c := make([]int, len(fields)-1)
			for j := 1; j < len(fields); j++ {
				c[j-1] = io.Atoi(fields[j])
			}
			ndim = len(c) - 1
			cells = append(cells, c)
		}
	}
	if len(coords) < 2 || len(cells) < 1 {
		chk.Panic("tessellation dump %q has no vertices or simplices", fn)
	}
}

// headers and footers ///////////////////////////////////////////////////////////////////////////

func vtu_write(geo, dat *bytes.Buffer) {
	if geo == nil || dat == nil {
		return
	}
	nv := len(coords)
	nc := len(cells)
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, fnkey+".vtu", &hdr, geo, dat, &foo)
}

// topology //////////////////////////////////////////////////////////////////////////////////////

func topology(buf *bytes.Buffer) {
	if buf == nil {
		return
	}

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	var z float64
	for _, x := range coords {
		if ndim == 3 {
			z = x[2]
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e ", x[0], x[1], z)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range cells {
		for _, v := range c {
			io.Ff(buf, "%d ", v)
		}
	}

	// offsets
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range cells {
		offset += len(c)
		io.Ff(buf, "%d ", offset)
	}

	// types: VTK_TRIANGLE = 5, VTK_TETRA = 10
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	vtkcode := 5
	if ndim == 3 {
		vtkcode = 10
	}
	for range cells {
		io.Ff(buf, "%d ", vtkcode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}

// cells data ////////////////////////////////////////////////////////////////////////////////////

func cdata_write(buf *bytes.Buffer) {

	// open
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for i := range cells {
		io.Ff(buf, "%d ", i)
	}

	// close
	io.Ff(buf, "\n</DataArray>\n</CellData>\n")
}
