// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field holds the six Yee-staggered field arrays (Ex,Ey,Ez,
// Hx,Hy,Hz) and the task-view machinery that lets many threads share
// them without locks (§9 "Shared mutable arrays across threads").
package field

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/xfdtd/grid"
)

// Array3 is a dense row-major [Nx][Ny][Nz] array.
type Array3 = [][][]float64

// EMF holds the six field components, sized per the Yee convention
// (§3 "Yee staggering") for a local grid of nx×ny×nz cells.
type EMF struct {
	Ex, Ey, Ez Array3
	Hx, Hy, Hz Array3
}

// New allocates all six arrays for a local box of nx×ny×nz cells.
func New(box grid.Box) *EMF {
	nx, ny, nz := box.Nx, box.Ny, box.Nz
	return &EMF{
		Ex: utl.Deep3alloc(nx, ny+1, nz+1),
		Ey: utl.Deep3alloc(nx+1, ny, nz+1),
		Ez: utl.Deep3alloc(nx+1, ny+1, nz),
		Hx: utl.Deep3alloc(nx+1, ny, nz),
		Hy: utl.Deep3alloc(nx, ny+1, nz),
		Hz: utl.Deep3alloc(nx, ny, nz+1),
	}
}

// Range is a half-open index range [Start,End) on one axis.
type Range struct{ Start, End int }

// Len returns the number of indices covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Task is a non-overlapping sub-range of the local grid assigned to one
// thread (§9 "Task"). Correctors that straddle thread boundaries are
// instead handed the Global task (§5 "Decomposition policy").
type Task struct {
	X, Y, Z Range
}

// Contains reports whether the cell (i,j,k) lies in the task.
func (t Task) Contains(i, j, k int) bool {
	return i >= t.X.Start && i < t.X.End &&
		j >= t.Y.Start && j < t.Y.End &&
		k >= t.Z.Start && k < t.Z.End
}

// Intersects reports whether two tasks share any cell.
func (t Task) Intersects(o Task) bool {
	return overlap(t.X, o.X) && overlap(t.Y, o.Y) && overlap(t.Z, o.Z)
}

func overlap(a, b Range) bool {
	return a.Start < b.End && b.Start < a.End
}

// Split divides the local box into nx*ny*nz non-overlapping tasks that
// cover it exactly, distributing remainder cells to the low-indexed
// tasks on each axis (same policy as grid.Decompose, applied one level
// down at the thread layer).
func Split(box grid.Box, nx, ny, nz int) []Task {
	xs := splitRanges(box.Nx, nx)
	ys := splitRanges(box.Ny, ny)
	zs := splitRanges(box.Nz, nz)
	tasks := make([]Task, 0, len(xs)*len(ys)*len(zs))
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				tasks = append(tasks, Task{X: x, Y: y, Z: z})
			}
		}
	}
	return tasks
}

func splitRanges(n, p int) []Range {
	if p < 1 {
		p = 1
	}
	base := n / p
	rem := n % p
	ranges := make([]Range, 0, p)
	start := 0
	for i := 0; i < p; i++ {
		count := base
		if i < rem {
			count++
		}
		ranges = append(ranges, Range{Start: start, End: start + count})
		start += count
	}
	return ranges
}

// Global returns the task that spans the entire local box; correctors
// whose footprint straddles thread boundaries run against this task
// instead of a per-thread sub-task (§5).
func Global(box grid.Box) Task {
	return Task{
		X: Range{0, box.Nx},
		Y: Range{0, box.Ny},
		Z: Range{0, box.Nz},
	}
}
