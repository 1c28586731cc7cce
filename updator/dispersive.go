// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package updator

import (
	"github.com/cpmech/xfdtd/material"
)

// Dispersive3D defers to a per-cell dispersive material.Method when the
// cell's material index maps to one, and falls back to the basic
// coefficient update otherwise (§4.1 "Dispersive3D"), grounded on
// original_source/src/updator/dispersive_material_updator.cpp.
type Dispersive3D struct {
	Basic3D

	// methods[i] is the ADE method for material index i, or nil for a
	// non-dispersive (or absent, -1) material.
	methods []material.Method
}

// NewDispersive3D returns a dispersive-aware 3-D updator. methods is
// indexed by material index (as produced by the material.Array the
// driver built); entries may be nil.
func NewDispersive3D(s Sides, methods []material.Method) *Dispersive3D {
	return &Dispersive3D{Basic3D: Basic3D{S: s}, methods: methods}
}

func (o *Dispersive3D) methodAt(i, j, k int) material.Method {
	idx := o.S.Mat[i][j][k]
	if idx < 0 || idx >= len(o.methods) {
		return nil
	}
	return o.methods[idx]
}

// UpdateH is unchanged from Basic3D: only E updates defer to ADE methods.
func (o *Dispersive3D) UpdateH() { o.Basic3D.UpdateH() }

func (o *Dispersive3D) UpdateE() {
	t := o.S.Task
	hx, hy, hz := o.S.EMF.Hx, o.S.EMF.Hy, o.S.EMF.Hz
	ex, ey, ez := o.S.EMF.Ex, o.S.EMF.Ey, o.S.EMF.Ez
	c := o.S.Table

	js := startInterior(t.Y.Start)
	ks := startInterior(t.Z.Start)
	for i := t.X.Start; i < t.X.End; i++ {
		for j := js; j < t.Y.End; j++ {
			for k := ks; k < t.Z.End; k++ {
				m := o.methodAt(i, j, k)
				curl := (hz[i][j][k] - hz[i][j-1][k]) - (hy[i][j][k] - hy[i][j][k-1])
				if m == nil {
					ex[i][j][k] = c.Ex.CSelf[i][j][k]*ex[i][j][k] +
						c.Ex.CA[i][j][k]*(hz[i][j][k]-hz[i][j-1][k]) -
						c.Ex.CB[i][j][k]*(hy[i][j][k]-hy[i][j][k-1])
					continue
				}
				old := ex[i][j][k]
				next := m.UpdateE(material.CompEx, i, j, k, old, curl)
				ex[i][j][k] = next
				m.UpdateJ(material.CompEx, i, j, k, next, old)
			}
		}
	}

	is := startInterior(t.X.Start)
	ks = startInterior(t.Z.Start)
	for i := is; i < t.X.End; i++ {
		for j := t.Y.Start; j < t.Y.End; j++ {
			for k := ks; k < t.Z.End; k++ {
				m := o.methodAt(i, j, k)
				curl := (hx[i][j][k] - hx[i][j][k-1]) - (hz[i][j][k] - hz[i-1][j][k])
				if m == nil {
					ey[i][j][k] = c.Ey.CSelf[i][j][k]*ey[i][j][k] +
						c.Ey.CA[i][j][k]*(hx[i][j][k]-hx[i][j][k-1]) -
						c.Ey.CB[i][j][k]*(hz[i][j][k]-hz[i-1][j][k])
					continue
				}
				old := ey[i][j][k]
				next := m.UpdateE(material.CompEy, i, j, k, old, curl)
				ey[i][j][k] = next
				m.UpdateJ(material.CompEy, i, j, k, next, old)
			}
		}
	}

	is = startInterior(t.X.Start)
	js = startInterior(t.Y.Start)
	for i := is; i < t.X.End; i++ {
		for j := js; j < t.Y.End; j++ {
			for k := t.Z.Start; k < t.Z.End; k++ {
				m := o.methodAt(i, j, k)
				curl := (hy[i][j][k] - hy[i-1][j][k]) - (hx[i][j][k] - hx[i][j-1][k])
				if m == nil {
					ez[i][j][k] = c.Ez.CSelf[i][j][k]*ez[i][j][k] +
						c.Ez.CA[i][j][k]*(hy[i][j][k]-hy[i-1][j][k]) -
						c.Ez.CB[i][j][k]*(hx[i][j][k]-hx[i][j-1][k])
					continue
				}
				old := ez[i][j][k]
				next := m.UpdateE(material.CompEz, i, j, k, old, curl)
				ez[i][j][k] = next
				m.UpdateJ(material.CompEz, i, j, k, next, old)
			}
		}
	}
}
