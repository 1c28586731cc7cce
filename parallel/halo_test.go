// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/xfdtd/grid"
)

func Test_haloGeometry01(tst *testing.T) {
	chk.PrintTitle("haloGeometry01")

	g := grid.Box{Nx: 4, Ny: 3, Nz: 2}

	na, nb := tangentialExtent(grid.X, g, true)
	chk.IntAssert(na, g.Ny+1)
	chk.IntAssert(nb, g.Nz)

	na, nb = tangentialExtent(grid.X, g, false)
	chk.IntAssert(na, g.Ny)
	chk.IntAssert(nb, g.Nz+1)

	lj, lk := localTangentialExtent(grid.Y, g)
	chk.IntAssert(lj, g.Nz+1)
	chk.IntAssert(lk, g.Nx+1)

	oa, ob := tangentialOrigin(grid.Z, [3]int{5, 6, 7})
	chk.IntAssert(oa, 5)
	chk.IntAssert(ob, 6)
}

func Test_haloGeometry02(tst *testing.T) {
	chk.PrintTitle("haloGeometry02")

	x, y, z := permute(grid.X, 9, 2, 3)
	chk.Ints(tst, "permuteX", []int{x, y, z}, []int{9, 2, 3})

	x, y, z = permute(grid.Y, 9, 2, 3)
	chk.Ints(tst, "permuteY", []int{x, y, z}, []int{3, 9, 2})

	x, y, z = permute(grid.Z, 9, 2, 3)
	chk.Ints(tst, "permuteZ", []int{x, y, z}, []int{2, 3, 9})

	if boolIdx(true) != 1 || boolIdx(false) != 0 {
		tst.Error("boolIdx must map true->1, false->0")
	}
}

func Test_haloExchanger01(tst *testing.T) {
	chk.PrintTitle("haloExchanger01")

	local := grid.Box{Nx: 4, Ny: 4, Nz: 4}
	var hasHalo [3][2]bool
	hasHalo[grid.X][1] = true

	o := NewHaloExchanger(local, local, [3]int{0, 0, 0}, hasHalo)
	chk.IntAssert(len(o.faces), 1)
	if o.faces[0].face.Axis != grid.X || !o.faces[0].face.High {
		tst.Error("the only registered face should be X-high")
	}
}
