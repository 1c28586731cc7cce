// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package waveform

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_auxline01(tst *testing.T) {
	chk.PrintTitle("auxline01")

	src := New("cosine", nil)
	line := NewAuxLine(1e-3, 1.0, 1e-12, 0, 0, 0, 20, src)

	chk.IntAssert(len(line.E), 20)
	chk.IntAssert(len(line.H), 19)

	line.Step(0)
	if line.E[0] == 0 {
		tst.Error("a cosine source sampled at t=0 should inject a nonzero value")
	}
}

func Test_auxline02(tst *testing.T) {
	chk.PrintTitle("auxline02")

	src := New("cosine", nil)
	line := NewAuxLine(1e-3, 1.0, 1e-12, 0, 0, 0, 20, src)

	// K should point along +z for theta=phi=0
	chk.Scalar(tst, "Kx", 1e-12, line.K[0], 0)
	chk.Scalar(tst, "Ky", 1e-12, line.K[1], 0)
	chk.Scalar(tst, "Kz", 1e-12, line.K[2], 1)

	p0 := line.Project(0, 0, 0, 1.0, false)
	p1 := line.Project(0, 0, 1, 1.0, false)
	chk.Scalar(tst, "projection spacing", 1e-12, p1-p0, 1.0)
}

func Test_auxline03(tst *testing.T) {
	chk.PrintTitle("auxline03")

	if got := interp([]float64{0, 1, 2, 3}, 1.5); got != 1.5 {
		tst.Errorf("midpoint interpolation: got %v want 1.5", got)
	}
	if got := interp([]float64{0, 1, 2, 3}, -1); got != 0 {
		tst.Errorf("clamped-low interpolation: got %v want 0", got)
	}
	if got := interp([]float64{0, 1, 2, 3}, 10); got != 3 {
		tst.Errorf("clamped-high interpolation: got %v want 3", got)
	}
}
