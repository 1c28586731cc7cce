// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/xfdtd/grid"
)

func Test_dispersive01(tst *testing.T) {
	chk.PrintTitle("dispersive01")

	box := grid.Box{Nx: 2, Ny: 2, Nz: 2}
	debye := NewDebye(box, 2.0, []float64{4.0}, []float64{1e-10}, 0)
	debye.Init(1e-12)

	if len(debye.k) != 1 || len(debye.beta) != 1 {
		tst.Fatalf("expected one pole's worth of k/beta, got %d/%d", len(debye.k), len(debye.beta))
	}
	// a passive relaxation pole must have |k| < 1 (decaying memory)
	if debye.k[0] <= -1 || debye.k[0] >= 1 {
		tst.Errorf("Debye pole coefficient k should be in (-1,1), got %v", debye.k[0])
	}

	c := NewTable(box).Ex
	debye.CorrectCoeff(c, 0, 0, 0, 0, 1e-12, 1e-3, 1e-3)
	chk.Scalar(tst, "corrected cSelf", 1e-15, c.CSelf[0][0][0], debye.a)

	old := 0.0
	curl := 1.0
	next := debye.UpdateE(CompEx, 0, 0, 0, old, curl)
	if next == 0 {
		tst.Error("UpdateE with a nonzero curl term should move E away from zero")
	}
	debye.UpdateJ(CompEx, 0, 0, 0, next, old)
	if debye.jx.cur[0][0][0][0] == 0 {
		tst.Error("UpdateJ should have accumulated polarization current")
	}
}

func Test_dispersive02(tst *testing.T) {
	chk.PrintTitle("dispersive02")

	box := grid.Box{Nx: 2, Ny: 2, Nz: 2}
	lorentz := NewLorentz(box, 1.0, []float64{2.0}, []float64{1e10}, []float64{1e9}, 0)
	lorentz.Init(1e-13)

	// Lorentz keeps a two-level current (cur and prev), unlike Debye/Drude
	if lorentz.jx.prev == nil {
		tst.Error("Lorentz must allocate the prev current slab")
	}
	debye := NewDebye(box, 1.0, []float64{2.0}, []float64{1e-10}, 0)
	debye.Init(1e-13)
	if debye.jx.prev != nil {
		tst.Error("Debye must not allocate the prev current slab")
	}
}
