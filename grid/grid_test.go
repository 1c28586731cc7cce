// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {
	chk.PrintTitle("grid01")

	_, err := NewGlobal(0, 1e-3, 1e-3, 10, 10, 10)
	if err == nil {
		tst.Error("expected error on non-positive cell size")
	}

	space, err := NewGlobal(1e-3, 1e-3, 1e-3, 10, 10, 10)
	if err != nil {
		tst.Fatalf("NewGlobal failed: %v", err)
	}
	chk.Scalar(tst, "dx", 1e-15, space.Dx, 1e-3)

	c := 299792458.0
	dt := space.DtMax(c, 1.0)
	if dt <= 0 {
		tst.Error("DtMax must be positive")
	}
	// the CFL-limited dt must be strictly below the 1-D bound 1/(c/dx)
	if dt >= space.Dx/c {
		tst.Error("DtMax should be tighter than the 1-D bound in 3-D")
	}
}

func Test_grid02(tst *testing.T) {
	chk.PrintTitle("grid02")

	global := Box{Nx: 10, Ny: 4, Nz: 4}

	// two ranks along x split 10 cells into 5/5, no remainder; each chunk
	// is widened by one halo cell on its internal face, so both hold 6
	// cells and rank1's local grid starts one cell below its chunk at 5
	local0, origin0, halo0, err := Decompose(global, 2, 1, 1, 0)
	if err != nil {
		tst.Fatalf("Decompose rank0 failed: %v", err)
	}
	chk.Ints(tst, "local0", []int{local0.Nx, local0.Ny, local0.Nz}, []int{6, 4, 4})
	chk.Ints(tst, "origin0", origin0[:], []int{0, 0, 0})
	if halo0[X][0] || !halo0[X][1] {
		tst.Error("rank0 should have a halo only on its high X face")
	}

	local1, origin1, halo1, err := Decompose(global, 2, 1, 1, 1)
	if err != nil {
		tst.Fatalf("Decompose rank1 failed: %v", err)
	}
	chk.Ints(tst, "local1", []int{local1.Nx, local1.Ny, local1.Nz}, []int{6, 4, 4})
	chk.Ints(tst, "origin1", origin1[:], []int{4, 0, 0})
	if !halo1[X][0] || halo1[X][1] {
		tst.Error("rank1 should have a halo only on its low X face")
	}

	if _, _, _, err := Decompose(global, 2, 1, 1, 2); err == nil {
		tst.Error("expected error for out-of-range rank")
	}
}
