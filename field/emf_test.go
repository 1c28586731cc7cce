// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/xfdtd/grid"
)

func Test_emf01(tst *testing.T) {
	chk.PrintTitle("emf01")

	box := grid.Box{Nx: 4, Ny: 3, Nz: 2}
	emf := New(box)

	chk.Ints(tst, "Ex shape", []int{len(emf.Ex), len(emf.Ex[0]), len(emf.Ex[0][0])}, []int{4, 4, 3})
	chk.Ints(tst, "Ey shape", []int{len(emf.Ey), len(emf.Ey[0]), len(emf.Ey[0][0])}, []int{5, 3, 3})
	chk.Ints(tst, "Ez shape", []int{len(emf.Ez), len(emf.Ez[0]), len(emf.Ez[0][0])}, []int{5, 4, 2})
	chk.Ints(tst, "Hx shape", []int{len(emf.Hx), len(emf.Hx[0]), len(emf.Hx[0][0])}, []int{5, 3, 2})
	chk.Ints(tst, "Hy shape", []int{len(emf.Hy), len(emf.Hy[0]), len(emf.Hy[0][0])}, []int{4, 4, 2})
	chk.Ints(tst, "Hz shape", []int{len(emf.Hz), len(emf.Hz[0]), len(emf.Hz[0][0])}, []int{4, 3, 3})
}

func Test_emf02(tst *testing.T) {
	chk.PrintTitle("emf02")

	box := grid.Box{Nx: 6, Ny: 4, Nz: 2}
	tasks := Split(box, 2, 2, 1)
	if len(tasks) != 4 {
		tst.Fatalf("expected 4 tasks, got %d", len(tasks))
	}

	total := 0
	for i, a := range tasks {
		for j, b := range tasks {
			if i != j && a.Intersects(b) {
				tst.Errorf("tasks %d and %d must not overlap", i, j)
			}
		}
		total += a.X.Len() * a.Y.Len() * a.Z.Len()
	}
	if total != box.Nx*box.Ny*box.Nz {
		tst.Errorf("tasks must exactly cover the box: got %d want %d", total, box.Nx*box.Ny*box.Nz)
	}

	g := Global(box)
	if !g.Contains(0, 0, 0) || !g.Contains(5, 3, 1) || g.Contains(6, 0, 0) {
		tst.Error("Global task must span exactly the box")
	}
}
