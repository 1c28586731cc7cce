// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package updator implements the inner Yee stencil sweeps that advance
// E from H and H from E over one local task (§4.1).
package updator

import (
	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/material"
)

// Updator advances one half-step on its task's interior cells. Variants
// are selected by the driver based on dimensionality and whether any
// dispersive material is present (§4.1 "Variants").
type Updator interface {
	UpdateH()
	UpdateE()
}

// Sides is the shared, borrowed state every updator variant needs: the
// field arrays, the coefficient tables, the material index grid and the
// task it owns. Correctors borrow the same EMF/Table but never an
// Updator (§3 "Ownership").
type Sides struct {
	EMF   *field.EMF
	Table *material.Table
	Mat   material.IndexGrid
	Task  field.Task
}

// Basic3D is the plain curl update using only the coefficient tables
// (§4.1 "Basic3D").
type Basic3D struct {
	S Sides
}

// NewBasic3D returns a full 3-D updator over the given sides.
func NewBasic3D(s Sides) *Basic3D { return &Basic3D{S: s} }

// edge policy: the update excludes cells on the high face of each axis
// where the dual field would sample outside the array (§4.1 "Edge
// policy"). clampHigh returns the task bound reduced by one when the
// task itself reaches the local grid's high face, so the loop never
// reads the out-of-range neighbour.
func clampHigh(end, arrayLen int) int {
	if end >= arrayLen {
		return arrayLen - 1
	}
	return end
}

func (o *Basic3D) UpdateH() {
	t := o.S.Task
	hx, hy, hz := o.S.EMF.Hx, o.S.EMF.Hy, o.S.EMF.Hz
	ey, ez := o.S.EMF.Ey, o.S.EMF.Ez
	ex := o.S.EMF.Ex
	c := o.S.Table

	// Hx(i, j+1/2, k+1/2): curl of Ey (d/dz) and Ez (d/dy)
	for i := t.X.Start; i < clampHigh(t.X.End, len(hx)); i++ {
		for j := t.Y.Start; j < t.Y.End; j++ {
			for k := t.Z.Start; k < t.Z.End; k++ {
				hx[i][j][k] = c.Hx.CSelf[i][j][k]*hx[i][j][k] -
					c.Hx.CA[i][j][k]*(ez[i][j+1][k]-ez[i][j][k]) +
					c.Hx.CB[i][j][k]*(ey[i][j][k+1]-ey[i][j][k])
			}
		}
	}

	// Hy(i+1/2, j, k+1/2): curl of Ez (d/dx) and Ex (d/dz)
	for i := t.X.Start; i < t.X.End; i++ {
		for j := t.Y.Start; j < clampHigh(t.Y.End, len(hy[0])); j++ {
			for k := t.Z.Start; k < t.Z.End; k++ {
				hy[i][j][k] = c.Hy.CSelf[i][j][k]*hy[i][j][k] -
					c.Hy.CA[i][j][k]*(ex[i][j][k+1]-ex[i][j][k]) +
					c.Hy.CB[i][j][k]*(ez[i+1][j][k]-ez[i][j][k])
			}
		}
	}

	// Hz(i+1/2, j+1/2, k): curl of Ex (d/dy) and Ey (d/dx)
	for i := t.X.Start; i < t.X.End; i++ {
		for j := t.Y.Start; j < t.Y.End; j++ {
			for k := t.Z.Start; k < clampHigh(t.Z.End, len(hz[0][0])); k++ {
				hz[i][j][k] = c.Hz.CSelf[i][j][k]*hz[i][j][k] -
					c.Hz.CA[i][j][k]*(ey[i+1][j][k]-ey[i][j][k]) +
					c.Hz.CB[i][j][k]*(ex[i][j+1][k]-ex[i][j][k])
			}
		}
	}
}

func (o *Basic3D) UpdateE() {
	t := o.S.Task
	hx, hy, hz := o.S.EMF.Hx, o.S.EMF.Hy, o.S.EMF.Hz
	ex, ey, ez := o.S.EMF.Ex, o.S.EMF.Ey, o.S.EMF.Ez
	c := o.S.Table

	// Ex(i+1/2, j, k): leave j=0,k=0 (global PEC/PML boundary) alone
	js := startInterior(t.Y.Start)
	ks := startInterior(t.Z.Start)
	for i := t.X.Start; i < t.X.End; i++ {
		for j := js; j < t.Y.End; j++ {
			for k := ks; k < t.Z.End; k++ {
				ex[i][j][k] = c.Ex.CSelf[i][j][k]*ex[i][j][k] +
					c.Ex.CA[i][j][k]*(hz[i][j][k]-hz[i][j-1][k]) -
					c.Ex.CB[i][j][k]*(hy[i][j][k]-hy[i][j][k-1])
			}
		}
	}

	is := startInterior(t.X.Start)
	ks = startInterior(t.Z.Start)
	for i := is; i < t.X.End; i++ {
		for j := t.Y.Start; j < t.Y.End; j++ {
			for k := ks; k < t.Z.End; k++ {
				ey[i][j][k] = c.Ey.CSelf[i][j][k]*ey[i][j][k] +
					c.Ey.CA[i][j][k]*(hx[i][j][k]-hx[i][j][k-1]) -
					c.Ey.CB[i][j][k]*(hz[i][j][k]-hz[i-1][j][k])
			}
		}
	}

	is = startInterior(t.X.Start)
	js = startInterior(t.Y.Start)
	for i := is; i < t.X.End; i++ {
		for j := js; j < t.Y.End; j++ {
			for k := t.Z.Start; k < t.Z.End; k++ {
				ez[i][j][k] = c.Ez.CSelf[i][j][k]*ez[i][j][k] +
					c.Ez.CA[i][j][k]*(hy[i][j][k]-hy[i-1][j][k]) -
					c.Ez.CB[i][j][k]*(hx[i][j][k]-hx[i][j-1][k])
			}
		}
	}
}

// startInterior nudges a task's global-boundary start past index 0 so
// tangential-E cells on the global domain boundary are left to PML/PEC
// rather than read out of range (§4.1 "Edge policy").
func startInterior(start int) int {
	if start == 0 {
		return 1
	}
	return start
}
