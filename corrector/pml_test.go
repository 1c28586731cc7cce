// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corrector

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/grid"
	"github.com/cpmech/xfdtd/material"
)

func Test_pml01(tst *testing.T) {
	chk.PrintTitle("pml01")

	chk.IntAssert(int(FaceXN.Axis()), int(grid.X))
	chk.IntAssert(int(FaceXP.Axis()), int(grid.X))
	chk.IntAssert(int(FaceZP.Axis()), int(grid.Z))
	if FaceXN.IsHigh() || !FaceXP.IsHigh() {
		tst.Error("XN must be the low face, XP the high face")
	}

	if err := ValidateAxis(FaceZN, true, false); err != nil {
		tst.Errorf("Z PML on a 1-D run should be accepted: %v", err)
	}
	if err := ValidateAxis(FaceXN, true, false); err == nil {
		tst.Error("non-Z PML on a 1-D run must be rejected")
	}
	if err := ValidateAxis(FaceZN, false, true); err == nil {
		tst.Error("Z PML on a 2-D run must be rejected")
	}
}

func Test_pml02(tst *testing.T) {
	chk.PrintTitle("pml02")

	local := grid.Box{Nx: 10, Ny: 10, Nz: 10}
	emf := field.New(local)
	tbl := material.NewTable(local)
	tbl.FillDefault(1e-3, 1e-3, 1e-3, 1e-12)

	if _, err := NewPML(FaceXN, 0, local, emf, tbl, 1e-12, 1e-3); err == nil {
		tst.Error("zero-thickness PML must be rejected")
	}

	pml, err := NewPML(FaceXN, 4, local, emf, tbl, 1e-12, 1e-3)
	if err != nil {
		tst.Fatalf("NewPML failed: %v", err)
	}

	// seed a nonzero Ez/Ey gradient so CorrectH has something to absorb
	for i := 0; i < 5; i++ {
		for j := 0; j < 11; j++ {
			for k := 0; k < 11; k++ {
				if k < 10 {
					emf.Ez[i][j][k] = float64(i)
				}
			}
		}
	}
	before := emf.Hy[1][1][1]
	pml.CorrectH()
	if emf.Hy[1][1][1] == before {
		tst.Error("CorrectH should perturb Hy inside the slab given a nonzero Ez gradient")
	}
	// a cell outside the slab's footprint (thickness 4, so i>=4) is untouched
	if emf.Hy[5][1][1] != 0 {
		tst.Error("CorrectH must not touch cells outside the slab footprint")
	}
}
