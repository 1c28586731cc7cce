// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corrector

import (
	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/grid"
	"github.com/cpmech/xfdtd/waveform"
)

// TFSFBox is the index-space box the TFSF surface encloses, given as
// half-open ranges in the local grid (§4.2.2 "The box faces").
type TFSFBox = Footprint

// tfsfSign is the compile-time-computed ±1 lookup from §4.2.2's 16-row
// table, indexed [isH][isPositiveNormal][isBTangent] — a product of the
// four independent booleans (compensate, equation, difference,
// direction) the spec names in §9 "TFSF sign table".
var tfsfSign = [2][2][2]float64{
	// E
	{
		{+1, -1}, // negative-normal: {a-tangent, b-tangent}
		{-1, +1}, // positive-normal: {a-tangent, b-tangent}
	},
	// H
	{
		{-1, +1}, // negative-normal: {a-tangent, b-tangent}
		{+1, -1}, // positive-normal: {a-tangent, b-tangent}
	},
}

func sign(isH, positiveNormal, bTangent bool) float64 {
	hi, pi, bi := 0, 0, 0
	if isH {
		hi = 1
	}
	if positiveNormal {
		pi = 1
	}
	if bTangent {
		bi = 1
	}
	return tfsfSign[hi][pi][bi]
}

// TFSF injects the incident plane wave at every cell on the six faces
// of the TFSF box, sampled from the auxiliary 1-D line (§4.2.2).
type TFSF struct {
	box        TFSFBox
	ratioDelta float64
	line       *waveform.AuxLine
	emf        *field.EMF
}

// NewTFSF builds the TFSF corrector for a box of the local grid, given
// as half-open index ranges on each axis.
func NewTFSF(box TFSFBox, ratioDelta float64, line *waveform.AuxLine, emf *field.EMF) *TFSF {
	return &TFSF{box: box, ratioDelta: ratioDelta, line: line, emf: emf}
}

// face identifies one of the six TFSF box faces by axis and side.
type tfsfFace struct {
	axis     grid.Axis
	positive bool
}

var tfsfFaces = [6]tfsfFace{
	{grid.X, false}, {grid.X, true},
	{grid.Y, false}, {grid.Y, true},
	{grid.Z, false}, {grid.Z, true},
}

// CorrectE adds the incident E contribution on every TFSF face, with
// the sign from tfsfSign (§4.2.2).
func (o *TFSF) CorrectE() {
	o.walk(false)
}

// CorrectH subtracts the incident H contribution on every TFSF face.
func (o *TFSF) CorrectH() {
	o.walk(true)
}

func (o *TFSF) walk(isH bool) {
	for _, f := range tfsfFaces {
		o.correctFace(f, isH)
	}
}

// correctFace adds/subtracts the two tangential incident components at
// every cell of one face. The a/b tangent axes are the two axes other
// than the face's normal, in (Y,Z), (Z,X), (X,Y) cyclic order so that
// (normal, a, b) is right-handed.
func (o *TFSF) correctFace(f tfsfFace, isH bool) {
	i0, i1 := o.box.X.Start, o.box.X.End-1
	j0, j1 := o.box.Y.Start, o.box.Y.End-1
	k0, k1 := o.box.Z.Start, o.box.Z.End-1

	lo := [3]int{i0, j0, k0}
	hi := [3]int{i1, j1, k1}
	fixed := lo[f.axis]
	if f.positive {
		fixed = hi[f.axis]
	}

	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			for k := k0; k <= k1; k++ {
				switch f.axis {
				case grid.X:
					if i != fixed {
						continue
					}
				case grid.Y:
					if j != fixed {
						continue
					}
				default:
					if k != fixed {
						continue
					}
				}
				o.applyCell(f, i, j, k, isH)
			}
		}
	}
}

// applyCell adds the signed incident contribution for the two
// tangential components at one face cell.
func (o *TFSF) applyCell(f tfsfFace, i, j, k int, isH bool) {
	var aVal, bVal float64
	var incE, incH waveform.Vec3
	if isH {
		incH = o.line.IncidentH(i, j, k, o.ratioDelta)
	} else {
		incE = o.line.IncidentE(i, j, k, o.ratioDelta)
	}

	switch f.axis {
	case grid.X:
		if isH {
			aVal, bVal = incH[1], incH[2] // tangential H: Hy (a), Hz (b)
			o.emf.Hy[i][j][k] += sign(true, f.positive, false) * aVal
			o.emf.Hz[i][j][k] += sign(true, f.positive, true) * bVal
		} else {
			aVal, bVal = incE[1], incE[2] // tangential E: Ey (a), Ez (b)
			o.emf.Ey[i][j][k] += sign(false, f.positive, false) * aVal
			o.emf.Ez[i][j][k] += sign(false, f.positive, true) * bVal
		}
	case grid.Y:
		if isH {
			aVal, bVal = incH[2], incH[0]
			o.emf.Hz[i][j][k] += sign(true, f.positive, false) * aVal
			o.emf.Hx[i][j][k] += sign(true, f.positive, true) * bVal
		} else {
			aVal, bVal = incE[2], incE[0]
			o.emf.Ez[i][j][k] += sign(false, f.positive, false) * aVal
			o.emf.Ex[i][j][k] += sign(false, f.positive, true) * bVal
		}
	default: // Z
		if isH {
			aVal, bVal = incH[0], incH[1]
			o.emf.Hx[i][j][k] += sign(true, f.positive, false) * aVal
			o.emf.Hy[i][j][k] += sign(true, f.positive, true) * bVal
		} else {
			aVal, bVal = incE[0], incE[1]
			o.emf.Ex[i][j][k] += sign(false, f.positive, false) * aVal
			o.emf.Ey[i][j][k] += sign(false, f.positive, true) * bVal
		}
	}
}
