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
	"github.com/cpmech/xfdtd/waveform"
)

func Test_lumped01(tst *testing.T) {
	chk.PrintTitle("lumped01")

	local := grid.Box{Nx: 4, Ny: 4, Nz: 4}
	tbl := material.NewTable(local)
	tbl.FillDefault(1e-3, 1e-3, 1e-3, 1e-12)

	fp := field.Task{X: field.Range{Start: 1, End: 2}, Y: field.Range{Start: 1, End: 2}, Z: field.Range{Start: 1, End: 3}}
	if _, err := NewResistor(grid.Z, fp, 1e-3, 1e-3, 1e-3, 1, 50, 1e-12, tbl); err != nil {
		tst.Fatalf("NewResistor failed: %v", err)
	}
	// a finite resistor must strictly decay the self coefficient below vacuum's 1
	if v := tbl.Ez.CSelf[1][1][1]; v <= 0 || v >= 1 {
		tst.Errorf("resistive cSelf should be in (0,1), got %v", v)
	}

	degenerate := field.Task{X: field.Range{Start: 1, End: 1}, Y: field.Range{Start: 1, End: 2}, Z: field.Range{Start: 1, End: 2}}
	if _, err := NewResistor(grid.Z, degenerate, 1e-3, 1e-3, 1e-3, 1, 50, 1e-12, tbl); err == nil {
		tst.Error("a zero-length footprint axis must be rejected")
	}
}

func Test_lumped02(tst *testing.T) {
	chk.PrintTitle("lumped02")

	local := grid.Box{Nx: 4, Ny: 4, Nz: 4}
	emf := field.New(local)
	fp := field.Task{X: field.Range{Start: 1, End: 2}, Y: field.Range{Start: 1, End: 2}, Z: field.Range{Start: 1, End: 3}}

	capacitor, err := NewCapacitor(grid.Z, fp, 1e-3, 1e-3, 1e-3, 1, 1e-12, 1e-12, emf)
	if err != nil {
		tst.Fatalf("NewCapacitor failed: %v", err)
	}
	emf.Ez[1][1][1] = 1.0
	// the branch current lags one step: the first call subtracts the
	// still-zero J and then charges it, the second subtracts it from E
	capacitor.CorrectE()
	capacitor.CorrectE()
	if emf.Ez[1][1][1] == 1.0 {
		tst.Error("Capacitor.CorrectE should subtract the branch current from E")
	}

	ind, err := NewInductor(grid.Z, fp, 1e-3, 1e-3, 1e-3, 1, 1e-9, 1e-12, emf)
	if err != nil {
		tst.Fatalf("NewInductor failed: %v", err)
	}
	emf.Ez[1][1][2] = 2.0
	ind.CorrectE()
	// the first call integrates a nonzero E into J but subtracts only the
	// (still-zero) prior current, so E itself is unchanged on this step
	chk.Scalar(tst, "first-step inductor E", 1e-15, emf.Ez[1][1][2], 2.0)
}

func Test_lumped03(tst *testing.T) {
	chk.PrintTitle("lumped03")

	local := grid.Box{Nx: 4, Ny: 4, Nz: 4}
	tbl := material.NewTable(local)
	tbl.FillDefault(1e-3, 1e-3, 1e-3, 1e-12)
	emf := field.New(local)
	fp := field.Task{X: field.Range{Start: 1, End: 2}, Y: field.Range{Start: 1, End: 2}, Z: field.Range{Start: 1, End: 3}}

	// the first CorrectE samples the waveform at t=0, so use a cosine
	// (nonzero there) rather than a sine
	src := waveform.New("cosine", nil)
	vs, err := NewVoltageSource(grid.Z, fp, 1e-3, 1e-3, 1e-3, 1, 50, 1e-12, false, src, tbl, emf)
	if err != nil {
		tst.Fatalf("NewVoltageSource failed: %v", err)
	}
	before := emf.Ez[1][1][1]
	vs.CorrectE()
	if emf.Ez[1][1][1] == before {
		tst.Error("VoltageSource.CorrectE must inject the source contribution")
	}

	_, err = ApplyPecPlane(grid.Z, fp, 1e-3, 1e-3, 1e-3, 1e-12, tbl)
	if err != nil {
		tst.Fatalf("ApplyPecPlane failed: %v", err)
	}
	chk.Scalar(tst, "PEC cSelf", 1e-6, tbl.Ez.CSelf[1][1][1], -1)
}
