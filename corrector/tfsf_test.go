// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corrector

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/grid"
	"github.com/cpmech/xfdtd/waveform"
)

func Test_tfsf01(tst *testing.T) {
	chk.PrintTitle("tfsf01")

	local := grid.Box{Nx: 10, Ny: 10, Nz: 10}
	emf := field.New(local)
	box := field.Task{X: field.Range{Start: 2, End: 6}, Y: field.Range{Start: 2, End: 6}, Z: field.Range{Start: 2, End: 6}}

	src := waveform.New("sine", nil)
	// oblique, non-axis-aligned incidence so every tangential component of
	// the rotated incident E/H is generically nonzero
	line := waveform.NewAuxLine(1e-3, 1.0, 1e-12, 0.7, 0.5, 0.3, 40, src)
	// seed the line directly so the projected samples at the box faces are
	// deterministic, rather than depending on Step's transient buildup
	for i := range line.E {
		line.E[i] = 1.0
	}
	for i := range line.H {
		line.H[i] = 1.0
	}

	tfsf := NewTFSF(box, 1.0, line, emf)

	before := emf.Ey[2][2][3]
	tfsf.CorrectE()
	if emf.Ey[2][2][3] == before {
		tst.Error("CorrectE on the box's low-X face must perturb tangential Ey")
	}
	// a cell far outside the box must be untouched
	if emf.Ey[8][8][8] != 0 {
		tst.Error("CorrectE must not touch cells off the TFSF box faces")
	}

	beforeH := emf.Hy[2][2][3]
	tfsf.CorrectH()
	if emf.Hy[2][2][3] == beforeH {
		tst.Error("CorrectH on the box's low-X face must perturb tangential Hy")
	}
}

func Test_tfsf02(tst *testing.T) {
	chk.PrintTitle("tfsf02")

	// opposite faces of the same axis must carry opposite tangential sign
	eLoA := sign(false, false, false)
	eHiA := sign(false, true, false)
	if eLoA == eHiA {
		tst.Error("low/high faces of one axis must inject with opposite sign")
	}
	hLoA := sign(true, false, false)
	hHiA := sign(true, true, false)
	if hLoA == hHiA {
		tst.Error("low/high faces of one axis must inject H with opposite sign")
	}
}
