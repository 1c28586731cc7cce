// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corrector implements the post-sweep per-cell patches applied
// after each global E or H update: the CPML absorbing boundary, TFSF
// plane-wave injection, and lumped-circuit-element coupling (§4.2).
package corrector

import "github.com/cpmech/xfdtd/field"

// Corrector mutates only the cells in its footprint, which must be
// disjoint from every other corrector of the same kind (§4.2). It is
// generated once at init from its owning object and only instantiated
// when that object's footprint intersects the task it is handed
// (§4.2 "generator").
type Corrector interface {
	CorrectE()
	CorrectH()
}

// Footprint is the index-space region a corrector owns. PML/TFSF/lumped
// element regions are typically much smaller than the bulk grid, so
// correctors run against the global task rather than a per-thread
// sub-task (§5 "Decomposition policy").
type Footprint = field.Task

// Intersects reports whether a footprint overlaps a thread's task; the
// generator uses this to decide whether a given thread's Domain needs
// this corrector at all.
func Intersects(fp Footprint, task field.Task) bool {
	return fp.Intersects(task)
}
