// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package updator

// BasicTE is the 2-D transverse-electric reduction of Basic3D: the z
// axis stencil is trivially constant (single cell), so Hx, Hy, Ez drop
// out and only Ex, Ey, Hz are advanced (§4.1 "BasicTE").
type BasicTE struct {
	S Sides
}

// NewBasicTE returns a 2-D TE updator over the given sides.
func NewBasicTE(s Sides) *BasicTE { return &BasicTE{S: s} }

func (o *BasicTE) UpdateH() {
	t := o.S.Task
	hz := o.S.EMF.Hz
	ex, ey := o.S.EMF.Ex, o.S.EMF.Ey
	c := o.S.Table
	k := t.Z.Start
	for i := t.X.Start; i < t.X.End; i++ {
		for j := t.Y.Start; j < t.Y.End; j++ {
			hz[i][j][k] = c.Hz.CSelf[i][j][k]*hz[i][j][k] -
				c.Hz.CA[i][j][k]*(ey[i+1][j][k]-ey[i][j][k]) +
				c.Hz.CB[i][j][k]*(ex[i][j+1][k]-ex[i][j][k])
		}
	}
}

func (o *BasicTE) UpdateE() {
	t := o.S.Task
	hz := o.S.EMF.Hz
	ex, ey := o.S.EMF.Ex, o.S.EMF.Ey
	c := o.S.Table
	k := t.Z.Start

	js := startInterior(t.Y.Start)
	for i := t.X.Start; i < t.X.End; i++ {
		for j := js; j < t.Y.End; j++ {
			ex[i][j][k] = c.Ex.CSelf[i][j][k]*ex[i][j][k] +
				c.Ex.CA[i][j][k]*(hz[i][j][k]-hz[i][j-1][k])
		}
	}

	is := startInterior(t.X.Start)
	for i := is; i < t.X.End; i++ {
		for j := t.Y.Start; j < t.Y.End; j++ {
			ey[i][j][k] = c.Ey.CSelf[i][j][k]*ey[i][j][k] -
				c.Ey.CB[i][j][k]*(hz[i][j][k]-hz[i-1][j][k])
		}
	}
}

// BasicTEM is the 1-D reduction used for 1-D TEM problems: only Ex and
// Hy vary along z (§4.1 "BasicTEM"). The TFSF auxiliary line does not
// use it; waveform.AuxLine.Step carries its own 1-D update.
type BasicTEM struct {
	S Sides
}

// NewBasicTEM returns a 1-D TEM updator over the given sides.
func NewBasicTEM(s Sides) *BasicTEM { return &BasicTEM{S: s} }

func (o *BasicTEM) UpdateH() {
	t := o.S.Task
	hy := o.S.EMF.Hy
	ex := o.S.EMF.Ex
	c := o.S.Table
	i, j := t.X.Start, t.Y.Start
	for k := t.Z.Start; k < t.Z.End; k++ {
		hy[i][j][k] = c.Hy.CSelf[i][j][k]*hy[i][j][k] -
			c.Hy.CA[i][j][k]*(ex[i][j][k+1]-ex[i][j][k])
	}
}

func (o *BasicTEM) UpdateE() {
	t := o.S.Task
	hy := o.S.EMF.Hy
	ex := o.S.EMF.Ex
	c := o.S.Table
	i, j := t.X.Start, t.Y.Start
	ks := startInterior(t.Z.Start)
	for k := ks; k < t.Z.End; k++ {
		ex[i][j][k] = c.Ex.CSelf[i][j][k]*ex[i][j][k] -
			c.Ex.CB[i][j][k]*(hy[i][j][k]-hy[i][j][k-1])
	}
}
