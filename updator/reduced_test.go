// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package updator

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/grid"
	"github.com/cpmech/xfdtd/material"
)

func Test_basicTE01(tst *testing.T) {
	chk.PrintTitle("basicTE01")

	local := grid.Box{Nx: 4, Ny: 4, Nz: 1}
	emf := field.New(local)
	tbl := material.NewTable(local)
	tbl.FillDefault(1e-3, 1e-3, 1e-3, 1e-12)
	task := field.Task{X: field.Range{Start: 0, End: 4}, Y: field.Range{Start: 0, End: 4}, Z: field.Range{Start: 0, End: 1}}

	u := NewBasicTE(Sides{EMF: emf, Table: tbl, Task: task})
	emf.Ex[1][2][0] = 1.0
	u.UpdateH()
	if emf.Hz[1][1][0] == 0 {
		tst.Error("BasicTE.UpdateH should perturb Hz from the seeded Ex")
	}

	emf2 := field.New(local)
	u2 := NewBasicTE(Sides{EMF: emf2, Table: tbl, Task: task})
	emf2.Hz[1][1][0] = 1.0
	u2.UpdateE()
	if emf2.Ex[1][2][0] == 0 {
		tst.Error("BasicTE.UpdateE should perturb Ex from the seeded Hz")
	}
	if emf2.Ex[1][0][0] != 0 {
		tst.Error("BasicTE.UpdateE must not write the global boundary")
	}
}

func Test_basicTEM01(tst *testing.T) {
	chk.PrintTitle("basicTEM01")

	local := grid.Box{Nx: 1, Ny: 1, Nz: 6}
	emf := field.New(local)
	tbl := material.NewTable(local)
	tbl.FillDefault(1e-3, 1e-3, 1e-3, 1e-12)
	task := field.Task{X: field.Range{Start: 0, End: 1}, Y: field.Range{Start: 0, End: 1}, Z: field.Range{Start: 0, End: 6}}

	u := NewBasicTEM(Sides{EMF: emf, Table: tbl, Task: task})
	emf.Ex[0][0][2] = 1.0
	u.UpdateH()
	if emf.Hy[0][0][1] == 0 {
		tst.Error("BasicTEM.UpdateH should perturb Hy from the seeded Ex")
	}

	emf2 := field.New(local)
	u2 := NewBasicTEM(Sides{EMF: emf2, Table: tbl, Task: task})
	emf2.Hy[0][0][1] = 1.0
	u2.UpdateE()
	if emf2.Ex[0][0][2] == 0 {
		tst.Error("BasicTEM.UpdateE should perturb Ex from the seeded Hy")
	}
	if emf2.Ex[0][0][0] != 0 {
		tst.Error("BasicTEM.UpdateE must not write the global boundary")
	}
}
