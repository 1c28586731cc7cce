// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corrector

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/grid"
	"github.com/cpmech/xfdtd/material"
)

// Face names one of the six outer faces a PML slab can be attached to.
type Face int

// PML faces, named by axis and side.
const (
	FaceXN Face = iota
	FaceXP
	FaceYN
	FaceYP
	FaceZN
	FaceZP
)

// Axis reports which grid axis this face is normal to.
func (f Face) Axis() grid.Axis {
	return grid.Axis(f / 2)
}

// IsHigh reports whether this face is the high-index side of its axis.
func (f Face) IsHigh() bool { return f%2 == 1 }

const (
	gradingOrder = 3             // p in sigma(d) = sigma_max*(d/T)^p (§4.2.1)
	targetR0     = 1e-8          // target reflection coefficient
	alphaMax     = 0.05          // CPML loss-tangent grading cap
	eta0         = 376.730313668 // free-space wave impedance
)

// PMLError reports a rejected PML configuration (§4.2.1 "Failure policy").
type PMLError struct{ Msg string }

func (e *PMLError) Error() string { return e.Msg }

// profile holds the graded CPML recursion coefficients b(depth) and
// a(depth) along the face's normal axis; kappa is held at 1 (no
// coordinate stretching beyond the convolution term — see DESIGN.md).
type profile struct {
	b, a []float64
}

func newProfile(t int, d, dt float64) profile {
	sigmaMax := -(float64(gradingOrder) + 1) * math.Log(targetR0) / (2 * eta0 * float64(t) * d)
	p := profile{b: make([]float64, t), a: make([]float64, t)}
	for n := 0; n < t; n++ {
		frac := (float64(n) + 0.5) / float64(t) // ~0 at the interior edge (depth 0), ~1 at the outer edge
		sigma := sigmaMax * math.Pow(frac, float64(gradingOrder))
		alpha := alphaMax * (1 - frac)
		p.b[n] = math.Exp(-(sigma + alpha) * dt / material.Eps0)
		if denom := sigma + alpha; denom > 0 {
			p.a[n] = sigma * (p.b[n] - 1) / denom
		}
	}
	return p
}

// ValidateAxis rejects PML placed on an axis the decomposed problem
// cannot support: a 1-D run only supports Z, a 2-D run rejects Z
// (§4.2.1 "Failure policy", §9 open question (a)).
func ValidateAxis(face Face, is1D, is2D bool) error {
	axisIsZ := face.Axis() == grid.Z
	if is1D && !axisIsZ {
		return &PMLError{Msg: "PML on a 1-D simulation must be on the Z axis"}
	}
	if is2D && axisIsZ {
		return &PMLError{Msg: "PML on a 2-D simulation must not be on the Z axis"}
	}
	return nil
}

// PML is a CPML absorbing slab on one face of thickness T (§4.2.1). It
// keeps one auxiliary Psi slab per tangential E or H component whose
// curl has a derivative along the face's normal axis; the normal
// component itself is untouched (it has no such derivative).
type PML struct {
	face      Face
	thickness int
	fp        Footprint
	prof      profile

	emf *field.EMF
	tbl *material.Table

	// tangential component pair, named a/b by the spec's convention
	psiEa, psiEb field.Array3
	psiHa, psiHb field.Array3
}

// NewPML validates and builds a CPML corrector for one face of a local
// grid. d is the cell size along the face's normal axis.
func NewPML(face Face, thickness int, local grid.Box, emf *field.EMF, tbl *material.Table, dt, d float64) (*PML, error) {
	if thickness < 1 {
		return nil, &PMLError{Msg: "PML thickness must be >= 1"}
	}
	o := &PML{face: face, thickness: thickness, emf: emf, tbl: tbl}
	o.fp = faceFootprint(face, thickness, local)
	o.prof = newProfile(thickness, d, dt)

	nx, ny, nz := o.fp.X.Len(), o.fp.Y.Len(), o.fp.Z.Len()
	o.psiEa = utl.Deep3alloc(nx, ny, nz)
	o.psiEb = utl.Deep3alloc(nx, ny, nz)
	o.psiHa = utl.Deep3alloc(nx, ny, nz)
	o.psiHb = utl.Deep3alloc(nx, ny, nz)
	return o, nil
}

func faceFootprint(face Face, t int, local grid.Box) Footprint {
	fp := field.Global(local)
	switch face {
	case FaceXN:
		fp.X = field.Range{Start: 0, End: t}
	case FaceXP:
		fp.X = field.Range{Start: local.Nx - t, End: local.Nx}
	case FaceYN:
		fp.Y = field.Range{Start: 0, End: t}
	case FaceYP:
		fp.Y = field.Range{Start: local.Ny - t, End: local.Ny}
	case FaceZN:
		fp.Z = field.Range{Start: 0, End: t}
	case FaceZP:
		fp.Z = field.Range{Start: local.Nz - t, End: local.Nz}
	}
	return fp
}

// depth returns this cell's 0-based distance from the interior edge of
// the slab (0 = deepest into the domain), used to index prof.a/b.
func (o *PML) depth(i, j, k int) int {
	switch o.face {
	case FaceXN:
		return o.thickness - 1 - i
	case FaceXP:
		return i - o.fp.X.Start
	case FaceYN:
		return o.thickness - 1 - j
	case FaceYP:
		return j - o.fp.Y.Start
	case FaceZN:
		return o.thickness - 1 - k
	default: // FaceZP
		return k - o.fp.Z.Start
	}
}

// CorrectH updates the magnetic Psi fields and folds them additively
// into H inside the slab, after the global H update (§4.2.1).
func (o *PML) CorrectH() {
	t := o.fp
	hx, hy, hz := o.emf.Hx, o.emf.Hy, o.emf.Hz
	ex, ey, ez := o.emf.Ex, o.emf.Ey, o.emf.Ez
	c := o.tbl

	for i := t.X.Start; i < t.X.End; i++ {
		for j := t.Y.Start; j < t.Y.End; j++ {
			for k := t.Z.Start; k < t.Z.End; k++ {
				d := o.depth(i, j, k)
				if d < 0 || d >= o.thickness {
					continue
				}
				b, a := o.prof.b[d], o.prof.a[d]
				pi, pj, pk := i-t.X.Start, j-t.Y.Start, k-t.Z.Start

				switch o.face.Axis() {
				case grid.X: // psi for Hy (dEz/dx) and Hz (dEy/dx)
					o.psiHa[pi][pj][pk] = b*o.psiHa[pi][pj][pk] + a*(ez[i+1][j][k]-ez[i][j][k])
					o.psiHb[pi][pj][pk] = b*o.psiHb[pi][pj][pk] + a*(ey[i+1][j][k]-ey[i][j][k])
					hy[i][j][k] += c.Hy.CB[i][j][k] * o.psiHa[pi][pj][pk]
					hz[i][j][k] -= c.Hz.CA[i][j][k] * o.psiHb[pi][pj][pk]
				case grid.Y: // psi for Hx (dEz/dy) and Hz (dEx/dy)
					o.psiHa[pi][pj][pk] = b*o.psiHa[pi][pj][pk] + a*(ez[i][j+1][k]-ez[i][j][k])
					o.psiHb[pi][pj][pk] = b*o.psiHb[pi][pj][pk] + a*(ex[i][j+1][k]-ex[i][j][k])
					hx[i][j][k] -= c.Hx.CA[i][j][k] * o.psiHa[pi][pj][pk]
					hz[i][j][k] += c.Hz.CB[i][j][k] * o.psiHb[pi][pj][pk]
				case grid.Z: // psi for Hx (dEy/dz) and Hy (dEx/dz)
					o.psiHa[pi][pj][pk] = b*o.psiHa[pi][pj][pk] + a*(ey[i][j][k+1]-ey[i][j][k])
					o.psiHb[pi][pj][pk] = b*o.psiHb[pi][pj][pk] + a*(ex[i][j][k+1]-ex[i][j][k])
					hx[i][j][k] += c.Hx.CB[i][j][k] * o.psiHa[pi][pj][pk]
					hy[i][j][k] -= c.Hy.CA[i][j][k] * o.psiHb[pi][pj][pk]
				}
			}
		}
	}
}

// CorrectE updates the electric Psi fields and folds them additively
// into E inside the slab, after the global E update (§4.2.1).
func (o *PML) CorrectE() {
	t := o.fp
	hx, hy, hz := o.emf.Hx, o.emf.Hy, o.emf.Hz
	ey, ez := o.emf.Ey, o.emf.Ez
	ex := o.emf.Ex
	c := o.tbl

	for i := t.X.Start; i < t.X.End; i++ {
		for j := t.Y.Start; j < t.Y.End; j++ {
			for k := t.Z.Start; k < t.Z.End; k++ {
				if i == 0 || j == 0 || k == 0 {
					continue // tangential E on the global boundary is left to PEC (§4.1)
				}
				d := o.depth(i, j, k)
				if d < 0 || d >= o.thickness {
					continue
				}
				b, a := o.prof.b[d], o.prof.a[d]
				pi, pj, pk := i-t.X.Start, j-t.Y.Start, k-t.Z.Start

				switch o.face.Axis() {
				case grid.X: // psi for Ey (dHz/dx) and Ez (dHy/dx)
					o.psiEa[pi][pj][pk] = b*o.psiEa[pi][pj][pk] + a*(hz[i][j][k]-hz[i-1][j][k])
					o.psiEb[pi][pj][pk] = b*o.psiEb[pi][pj][pk] + a*(hy[i][j][k]-hy[i-1][j][k])
					ey[i][j][k] -= c.Ey.CB[i][j][k] * o.psiEa[pi][pj][pk]
					ez[i][j][k] += c.Ez.CA[i][j][k] * o.psiEb[pi][pj][pk]
				case grid.Y: // psi for Ex (dHz/dy) and Ez (dHx/dy)
					o.psiEa[pi][pj][pk] = b*o.psiEa[pi][pj][pk] + a*(hz[i][j][k]-hz[i][j-1][k])
					o.psiEb[pi][pj][pk] = b*o.psiEb[pi][pj][pk] + a*(hx[i][j][k]-hx[i][j-1][k])
					ex[i][j][k] += c.Ex.CA[i][j][k] * o.psiEa[pi][pj][pk]
					ez[i][j][k] -= c.Ez.CB[i][j][k] * o.psiEb[pi][pj][pk]
				case grid.Z: // psi for Ex (dHy/dz) and Ey (dHx/dz)
					o.psiEa[pi][pj][pk] = b*o.psiEa[pi][pj][pk] + a*(hy[i][j][k]-hy[i][j][k-1])
					o.psiEb[pi][pj][pk] = b*o.psiEb[pi][pj][pk] + a*(hx[i][j][k]-hx[i][j][k-1])
					ex[i][j][k] -= c.Ex.CB[i][j][k] * o.psiEa[pi][pj][pk]
					ey[i][j][k] += c.Ey.CA[i][j][k] * o.psiEb[pi][pj][pk]
				}
			}
		}
	}
}
