// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corrector

import (
	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/grid"
	"github.com/cpmech/xfdtd/material"
	"github.com/cpmech/xfdtd/waveform"
)

// NumericError reports a lumped-element configuration that cannot be
// discretized (§7 "Numeric"): a footprint with zero length along one
// axis makes the node-count ratio undefined.
type NumericError struct{ Msg string }

func (e *NumericError) Error() string { return e.Msg }

// geometry is the per-element node-count and cell-size bookkeeping
// shared by every lumped element (§3 "Lumped elements", grounded on
// original_source/src/object/lumped_element/lumped_element.cpp's
// nodeCountMainAxis/nodeCountSubAxisA/B).
type geometry struct {
	axis       grid.Axis
	na, nb, nc int     // cross-section (a,b) and main-axis cell counts
	da, db, dc float64 // matching cell sizes
	fp         Footprint
}

func newGeometry(axis grid.Axis, fp Footprint, dx, dy, dz float64) (geometry, error) {
	g := geometry{axis: axis, fp: fp}
	switch axis {
	case grid.X:
		g.na, g.nb, g.nc = fp.Y.Len(), fp.Z.Len(), fp.X.Len()
		g.da, g.db, g.dc = dy, dz, dx
	case grid.Y:
		g.na, g.nb, g.nc = fp.Z.Len(), fp.X.Len(), fp.Y.Len()
		g.da, g.db, g.dc = dz, dx, dy
	default:
		g.na, g.nb, g.nc = fp.X.Len(), fp.Y.Len(), fp.Z.Len()
		g.da, g.db, g.dc = dx, dy, dz
	}
	if g.na == 0 || g.nb == 0 || g.nc == 0 {
		return geometry{}, &NumericError{Msg: "lumped element footprint has zero node count along some axis"}
	}
	return g, nil
}

// impedanceFactor scales a per-unit-cell quantity (resistance,
// inductance) by the parallel/series combination the footprint
// represents: na*nb branches in parallel, nc cells in series.
func (g geometry) impedanceFactor(v float64) float64 { return v * float64(g.na*g.nb) / float64(g.nc) }

func (g geometry) coeffFor(tbl *material.Table) material.Coefficients {
	switch g.axis {
	case grid.X:
		return tbl.Ex
	case grid.Y:
		return tbl.Ey
	default:
		return tbl.Ez
	}
}

func (g geometry) walk(f func(i, j, k int)) {
	for i := g.fp.X.Start; i < g.fp.X.End; i++ {
		for j := g.fp.Y.Start; j < g.fp.Y.End; j++ {
			for k := g.fp.Z.Start; k < g.fp.Z.End; k++ {
				f(i, j, k)
			}
		}
	}
}

func (g geometry) mainAxisField(emf *field.EMF) field.Array3 {
	switch g.axis {
	case grid.X:
		return emf.Ex
	case grid.Y:
		return emf.Ey
	default:
		return emf.Ez
	}
}

func regularized(resistance float64) float64 {
	if resistance == 0 {
		return 1e-20 // §7 "Numeric": zero resistance is a regularization, not an error
	}
	return resistance
}

// resistiveCoeff overwrites cSelf/cA/cB at every footprint cell with
// the resistor/voltage-source formula (§3 "Lumped elements", grounded
// on voltage_source.cpp's correctUpdateCoefficient): the branch's
// resistance folds into the self-decay exactly like an added
// conductivity term, beta = dt*dc/(da*db*R).
func resistiveCoeff(g geometry, tbl *material.Table, epsR, resistance, dt float64) (alpha, beta float64) {
	rFactor := g.impedanceFactor(regularized(resistance))
	alpha = g.da * g.db * rFactor
	beta = dt * g.dc / alpha
	eps := epsR * material.Eps0
	denom := 2*eps + beta
	c := g.coeffFor(tbl)
	g.walk(func(i, j, k int) {
		c.CSelf[i][j][k] = (2*eps - beta) / denom
		c.CA[i][j][k] = 2 * dt / (denom * g.da)
		c.CB[i][j][k] = 2 * dt / (denom * g.db)
	})
	return alpha, beta
}

// ---------------------------------------------------------------------
// Resistor

// Resistor corrects the coefficient table once at init and otherwise
// takes no action every step (§4.2.3: "Resistor modifies only
// coefficients").
type Resistor struct {
	Resistance float64
}

// NewResistor corrects tbl in place for a resistor spanning fp along
// axis, with uniform background permittivity epsR, and returns the
// (no-op) runtime corrector.
func NewResistor(axis grid.Axis, fp Footprint, dx, dy, dz, epsR, resistance, dt float64, tbl *material.Table) (*Resistor, error) {
	g, err := newGeometry(axis, fp, dx, dy, dz)
	if err != nil {
		return nil, err
	}
	resistiveCoeff(g, tbl, epsR, resistance, dt)
	return &Resistor{Resistance: resistance}, nil
}

func (o *Resistor) CorrectE() {}
func (o *Resistor) CorrectH() {}

// ---------------------------------------------------------------------
// VoltageSource

// VoltageSource is a resistive branch in series with an ideal voltage
// source: it corrects the coefficient table exactly like Resistor,
// then adds c_v·waveform(n) to E_main every step (§4.2.3, grounded on
// voltage_source.cpp's correctE).
type VoltageSource struct {
	g     geometry
	emf   *field.EMF
	src   waveform.Waveform
	dt    float64
	coffV float64
	step  int
}

// NewVoltageSource builds a voltage source; negative flips the sign of
// the amplitude for sources driven from the negative-direction face of
// the main axis.
func NewVoltageSource(axis grid.Axis, fp Footprint, dx, dy, dz, epsR, resistance, dt float64, negative bool, src waveform.Waveform, tbl *material.Table, emf *field.EMF) (*VoltageSource, error) {
	g, err := newGeometry(axis, fp, dx, dy, dz)
	if err != nil {
		return nil, err
	}
	alpha, beta := resistiveCoeff(g, tbl, epsR, resistance, dt)
	eps := epsR * material.Eps0
	denom := 2*eps + beta

	vAmp := src.Amplitude() / float64(g.nc)
	if negative {
		vAmp = -vAmp
	}
	coffV := -2 * dt / (denom * alpha) * vAmp

	return &VoltageSource{g: g, emf: emf, src: src, dt: dt, coffV: coffV}, nil
}

// CorrectE adds the voltage-source contribution, sampled once per step
// from the waveform (§4.3 "sampled once per time step").
func (o *VoltageSource) CorrectE() {
	e := o.g.mainAxisField(o.emf)
	v := o.coffV * o.src.F(float64(o.step)*o.dt, nil)
	o.g.walk(func(i, j, k int) {
		e[i][j][k] += v
	})
	o.step++
}

func (o *VoltageSource) CorrectH() {}

// ---------------------------------------------------------------------
// Capacitor

// Capacitor couples an auxiliary branch current into the E update
// (§4.2.3): the basic material coefficients are left untouched, and
// each step the branch current J (computed from the previous step's
// field difference) is subtracted from E, then refreshed from the
// corrected field (grounded on the same ADE lag the Debye/Drude
// methods use in material/dispersive.go — see DESIGN.md).
type Capacitor struct {
	g           geometry
	emf         *field.EMF
	epsR        float64
	dt          float64
	Capacitance float64

	j, prevE field.Array3
}

// NewCapacitor builds a capacitor spanning fp along axis.
func NewCapacitor(axis grid.Axis, fp Footprint, dx, dy, dz, epsR, capacitance, dt float64, emf *field.EMF) (*Capacitor, error) {
	g, err := newGeometry(axis, fp, dx, dy, dz)
	if err != nil {
		return nil, err
	}
	o := &Capacitor{g: g, emf: emf, epsR: epsR, dt: dt, Capacitance: capacitance}
	o.j = allocFootprint(fp)
	o.prevE = allocFootprint(fp)
	return o, nil
}

func allocFootprint(fp Footprint) field.Array3 {
	a := make(field.Array3, fp.X.Len())
	for i := range a {
		a[i] = make([][]float64, fp.Y.Len())
		for j := range a[i] {
			a[i][j] = make([]float64, fp.Z.Len())
		}
	}
	return a
}

func (o *Capacitor) CorrectE() {
	e := o.g.mainAxisField(o.emf)
	eps := o.epsR * material.Eps0
	cRate := o.Capacitance * o.g.dc / o.dt
	o.g.walk(func(i, j, k int) {
		pi, pj, pk := i-o.g.fp.X.Start, j-o.g.fp.Y.Start, k-o.g.fp.Z.Start
		e[i][j][k] -= o.dt / eps * o.j[pi][pj][pk]
		o.j[pi][pj][pk] += cRate * (e[i][j][k] - o.prevE[pi][pj][pk])
		o.prevE[pi][pj][pk] = e[i][j][k]
	})
}

func (o *Capacitor) CorrectH() {}

// ---------------------------------------------------------------------
// Inductor

// Inductor is the dual of Capacitor: the branch current is the time
// integral of the main-axis field rather than its derivative (§4.2.3).
type Inductor struct {
	g          geometry
	emf        *field.EMF
	epsR       float64
	dt         float64
	Inductance float64

	j field.Array3
}

// NewInductor builds an inductor spanning fp along axis.
func NewInductor(axis grid.Axis, fp Footprint, dx, dy, dz, epsR, inductance, dt float64, emf *field.EMF) (*Inductor, error) {
	g, err := newGeometry(axis, fp, dx, dy, dz)
	if err != nil {
		return nil, err
	}
	o := &Inductor{g: g, emf: emf, epsR: epsR, dt: dt, Inductance: inductance}
	o.j = allocFootprint(fp)
	return o, nil
}

func (o *Inductor) CorrectE() {
	e := o.g.mainAxisField(o.emf)
	eps := o.epsR * material.Eps0
	lRate := o.dt * o.g.dc / o.g.impedanceFactor(o.Inductance)
	o.g.walk(func(i, j, k int) {
		pi, pj, pk := i-o.g.fp.X.Start, j-o.g.fp.Y.Start, k-o.g.fp.Z.Start
		e[i][j][k] -= o.dt / eps * o.j[pi][pj][pk]
		o.j[pi][pj][pk] += lRate * e[i][j][k]
	})
}

func (o *Inductor) CorrectH() {}

// ---------------------------------------------------------------------
// PecPlane

// PecPlane is a zero-thickness perfect-electric-conductor slab: its
// coefficient correction forces the main-axis E to PEC (sigma=1e10)
// after every other material write, so the short dominates any
// neighboring material (§4.2.3, §4.5 step 4 "PEC planes last").
type PecPlane struct{}

// ApplyPecPlane overwrites the coefficient table so the main-axis E on
// the plane decays to (numerically) zero.
func ApplyPecPlane(axis grid.Axis, fp Footprint, dx, dy, dz, dt float64, tbl *material.Table) (*PecPlane, error) {
	g, err := newGeometry(axis, fp, dx, dy, dz)
	if err != nil {
		return nil, err
	}
	const sigmaPec = 1e10
	c := g.coeffFor(tbl)
	g.walk(func(i, j, k int) {
		material.ApplyE(c, i, j, k, 1, sigmaPec, dt, g.da, g.db)
	})
	return &PecPlane{}, nil
}

func (o *PecPlane) CorrectE() {}
func (o *PecPlane) CorrectH() {}
