// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/xfdtd/grid"
)

func Test_material01(tst *testing.T) {
	chk.PrintTitle("material01")

	box := grid.Box{Nx: 2, Ny: 2, Nz: 2}
	tbl := NewTable(box)
	dx, dy, dz, dt := 1e-3, 1e-3, 1e-3, 1e-12
	tbl.FillDefault(dx, dy, dz, dt)

	chk.Scalar(tst, "vacuum cSelf", 1e-15, tbl.Ex.CSelf[0][0][0], 1)
	chk.Scalar(tst, "vacuum cA", 1e-15, tbl.Ex.CA[0][0][0], dt/(eps0*dy))
	chk.Scalar(tst, "vacuum cB", 1e-15, tbl.Ex.CB[0][0][0], dt/(eps0*dz))
}

func Test_material02(tst *testing.T) {
	chk.PrintTitle("material02")

	box := grid.Box{Nx: 2, Ny: 2, Nz: 2}
	tbl := NewTable(box)
	dx, dy, dz, dt := 1e-3, 1e-3, 1e-3, 1e-12

	// a lossless dielectric (sigma=0) must give cSelf=1 regardless of epsR
	ApplyE(tbl.Ex, 0, 0, 0, 4.0, 0, dt, dy, dz)
	chk.Scalar(tst, "lossless cSelf", 1e-15, tbl.Ex.CSelf[0][0][0], 1)

	// a lossy material with sigma>0 must strictly decay (|cSelf| < 1)
	ApplyE(tbl.Ex, 1, 0, 0, 1.0, 1.0, dt, dy, dz)
	if v := tbl.Ex.CSelf[1][0][0]; v <= 0 || v >= 1 {
		tst.Errorf("lossy cSelf should be in (0,1), got %v", v)
	}
}

func Test_material03(tst *testing.T) {
	chk.PrintTitle("material03")

	g := NewIndexGrid(grid.Box{Nx: 3, Ny: 3, Nz: 3})
	for i := range g {
		for j := range g[i] {
			for k := range g[i][j] {
				if g[i][j][k] != -1 {
					tst.Fatalf("index grid must default to -1 at (%d,%d,%d)", i, j, k)
				}
			}
		}
	}
}
