// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/xfdtd/grid"
)

// Method is a linearly dispersive medium evaluated through an
// auxiliary differential equation (§4.1 "Dispersive update method
// contract"): Init computes pole-wise coefficients, CorrectCoeff
// overwrites the generic material coefficients once at init, and
// UpdateE/UpdateJ run every step for every cell the medium covers.
type Method interface {
	// Init computes the pole-wise ADE coefficients for timestep dt.
	Init(dt float64)

	// CorrectCoeff overwrites the self/cross coefficients for one E
	// component at (i,j,k), folding the dispersive contribution into
	// the same ca/cb shape the basic updator consumes.
	CorrectCoeff(c Coefficients, i, j, k int, sigma, dt, da, db float64)

	// UpdateE returns E(n+1) at (i,j,k) given the basic curl term and
	// the cell's accumulated polarization current; it must be called
	// before UpdateJ for the same step.
	UpdateE(comp Component, i, j, k int, eOld, curl float64) float64

	// UpdateJ advances the per-pole polarization current slabs after
	// UpdateE has produced the new field value.
	UpdateJ(comp Component, i, j, k int, eNew, eOld float64)
}

// Component names which E array a dispersive method is being asked to
// update; the three components keep independent current slabs because
// each samples a different cell's material index.
type Component int

// field components addressed by a dispersive Method
const (
	CompEx Component = iota
	CompEy
	CompEz
)

// jset holds one polarization-current slab per pole for a single E
// component, shaped like that component's array, allocated once at
// init and never reallocated during the run (§3 "Lifecycle").
type jset struct {
	cur  [][][][]float64 // [pole][i][j][k], current step
	prev [][][][]float64 // [pole][i][j][k], one step back (Lorentz only)
}

func newJset(poles, nx, ny, nz int, twoLevel bool) *jset {
	s := &jset{cur: utl.Deep4alloc(poles, nx, ny, nz)}
	if twoLevel {
		s.prev = utl.Deep4alloc(poles, nx, ny, nz)
	}
	return s
}

func allocJ(box grid.Box, comp Component, poles int, twoLevel bool) *jset {
	var nx, ny, nz int
	switch comp {
	case CompEx:
		nx, ny, nz = shape(box, "ex")
	case CompEy:
		nx, ny, nz = shape(box, "ey")
	case CompEz:
		nx, ny, nz = shape(box, "ez")
	}
	return newJset(poles, nx, ny, nz, twoLevel)
}

// ---------------------------------------------------------------------
// Debye

// Debye is a multi-pole Debye-relaxation medium (§3 "Dispersive material").
type Debye struct {
	EpsInf     float64
	EpsStatic  []float64 // per pole
	Tau        []float64 // per pole relaxation time
	SigmaE     float64

	k, beta []float64
	a, b    float64

	box              grid.Box
	jx, jy, jz       *jset
}

// NewDebye constructs a Debye medium over the given local box.
func NewDebye(box grid.Box, epsInf float64, epsStatic, tau []float64, sigmaE float64) *Debye {
	return &Debye{EpsInf: epsInf, EpsStatic: epsStatic, Tau: tau, SigmaE: sigmaE, box: box}
}

func (o *Debye) poles() int { return len(o.Tau) }

// Init computes k_p, beta_p and the a/b scalar coefficients (formulas
// grounded on original_source/src/material/debye_medium.cpp).
func (o *Debye) Init(dt float64) {
	n := o.poles()
	o.k = make([]float64, n)
	o.beta = make([]float64, n)
	var sumBeta float64
	for p := 0; p < n; p++ {
		o.k[p] = (2*o.Tau[p] - dt) / (2*o.Tau[p] + dt)
		o.beta[p] = (2 * eps0 * (o.EpsStatic[p] - o.EpsInf) * dt) / (2*o.Tau[p] + dt)
		sumBeta += o.beta[p]
	}
	denom := 2*eps0*o.EpsInf + sumBeta + dt*o.SigmaE
	o.a = (2*eps0*o.EpsInf + sumBeta - dt*o.SigmaE) / denom
	o.b = 2 * dt / denom
	o.jx = allocJ(o.box, CompEx, n, false)
	o.jy = allocJ(o.box, CompEy, n, false)
	o.jz = allocJ(o.box, CompEz, n, false)
}

func (o *Debye) CorrectCoeff(c Coefficients, i, j, k int, sigma, dt, da, db float64) {
	c.CSelf[i][j][k] = o.a
	c.CA[i][j][k] = o.b / da
	c.CB[i][j][k] = o.b / db
}

func (o *Debye) jsetFor(comp Component) *jset {
	switch comp {
	case CompEx:
		return o.jx
	case CompEy:
		return o.jy
	default:
		return o.jz
	}
}

func (o *Debye) UpdateE(comp Component, i, j, k int, eOld, curl float64) float64 {
	js := o.jsetFor(comp)
	var sumJ float64
	for p := 0; p < o.poles(); p++ {
		sumJ += (1 + o.k[p]) / 2 * js.cur[p][i][j][k]
	}
	return o.a*eOld + o.b*(curl-sumJ)
}

// UpdateJ advances each pole's polarization current from the relaxation
// equation J_p' = (beta_p/dt)*E' - J_p/tau_p, discretized the same way
// calculateCoeff derived k_p and beta_p.
func (o *Debye) UpdateJ(comp Component, i, j, k int, eNew, eOld float64) {
	js := o.jsetFor(comp)
	for p := 0; p < o.poles(); p++ {
		js.cur[p][i][j][k] = o.k[p]*js.cur[p][i][j][k] + o.beta[p]*(eNew-eOld)
	}
}

// ---------------------------------------------------------------------
// Drude

// Drude is a multi-pole Drude (free-electron) medium.
type Drude struct {
	EpsInf float64
	OmegaP []float64 // plasma frequency per pole
	Gamma  []float64 // collision frequency per pole
	SigmaE float64

	k, beta []float64
	a, b    float64

	box        grid.Box
	jx, jy, jz *jset
}

// NewDrude constructs a Drude medium over the given local box.
func NewDrude(box grid.Box, epsInf float64, omegaP, gamma []float64, sigmaE float64) *Drude {
	return &Drude{EpsInf: epsInf, OmegaP: omegaP, Gamma: gamma, SigmaE: sigmaE, box: box}
}

func (o *Drude) poles() int { return len(o.OmegaP) }

// Init computes k_p, beta_p and a/b (grounded on
// original_source/src/material/drude_medium.cpp).
func (o *Drude) Init(dt float64) {
	n := o.poles()
	o.k = make([]float64, n)
	o.beta = make([]float64, n)
	var sumBeta float64
	for p := 0; p < n; p++ {
		o.k[p] = (1 - o.Gamma[p]*dt/2) / (1 + o.Gamma[p]*dt/2)
		o.beta[p] = (eps0 * o.OmegaP[p] * o.OmegaP[p] * dt * dt / 2) / (1 + o.Gamma[p]*dt/2)
		sumBeta += o.beta[p]
	}
	denom := 2*eps0*o.EpsInf + dt*sumBeta + dt*o.SigmaE
	o.a = (2*eps0*o.EpsInf - dt*sumBeta - dt*o.SigmaE) / denom
	o.b = 2 * dt / denom
	o.jx = allocJ(o.box, CompEx, n, false)
	o.jy = allocJ(o.box, CompEy, n, false)
	o.jz = allocJ(o.box, CompEz, n, false)
}

func (o *Drude) CorrectCoeff(c Coefficients, i, j, k int, sigma, dt, da, db float64) {
	c.CSelf[i][j][k] = o.a
	c.CA[i][j][k] = o.b / da
	c.CB[i][j][k] = o.b / db
}

func (o *Drude) jsetFor(comp Component) *jset {
	switch comp {
	case CompEx:
		return o.jx
	case CompEy:
		return o.jy
	default:
		return o.jz
	}
}

func (o *Drude) UpdateE(comp Component, i, j, k int, eOld, curl float64) float64 {
	js := o.jsetFor(comp)
	var sumJ float64
	for p := 0; p < o.poles(); p++ {
		sumJ += (1 + o.k[p]) / 2 * js.cur[p][i][j][k]
	}
	return o.a*eOld + o.b*(curl-sumJ)
}

func (o *Drude) UpdateJ(comp Component, i, j, k int, eNew, eOld float64) {
	js := o.jsetFor(comp)
	for p := 0; p < o.poles(); p++ {
		js.cur[p][i][j][k] = o.k[p]*js.cur[p][i][j][k] + o.beta[p]*(eNew+eOld)
	}
}

// ---------------------------------------------------------------------
// Lorentz

// Lorentz is a single- or multi-pole Lorentz resonance medium; each pole
// is a second-order ADE so its update needs the current-minus-one slab.
type Lorentz struct {
	EpsInf    float64
	EpsStatic []float64
	OmegaP    []float64
	Nv        []float64 // damping frequency per pole
	SigmaE    float64

	alpha, xi, gamma []float64
	c1, c2, c3       float64

	box        grid.Box
	jx, jy, jz *jset
}

// NewLorentz constructs a Lorentz medium over the given local box.
func NewLorentz(box grid.Box, epsInf float64, epsStatic, omegaP, nv []float64, sigmaE float64) *Lorentz {
	return &Lorentz{EpsInf: epsInf, EpsStatic: epsStatic, OmegaP: omegaP, Nv: nv, SigmaE: sigmaE, box: box}
}

func (o *Lorentz) poles() int { return len(o.OmegaP) }

// Init computes alpha_p, xi_p, gamma_p and c1/c2/c3 (grounded on
// original_source/src/material/lorentz_medium.cpp).
func (o *Lorentz) Init(dt float64) {
	n := o.poles()
	o.alpha = make([]float64, n)
	o.xi = make([]float64, n)
	o.gamma = make([]float64, n)
	var sumGamma float64
	for p := 0; p < n; p++ {
		temp := o.Nv[p]*dt + 1
		o.alpha[p] = (2 - o.OmegaP[p]*o.OmegaP[p]*dt*dt) / temp
		o.xi[p] = (o.Nv[p]*dt - 1) / temp
		o.gamma[p] = eps0 * (o.EpsStatic[p] - o.EpsInf) * o.OmegaP[p] * o.OmegaP[p] * dt * dt / temp
		sumGamma += o.gamma[p]
	}
	coeffA := 2*eps0*o.EpsInf + 0.5*sumGamma + o.SigmaE*dt
	o.c1 = (0.5 * sumGamma) / coeffA
	o.c2 = (2*eps0*o.EpsInf - o.SigmaE*dt) / coeffA
	o.c3 = 2 * dt / coeffA
	o.jx = allocJ(o.box, CompEx, n, true)
	o.jy = allocJ(o.box, CompEy, n, true)
	o.jz = allocJ(o.box, CompEz, n, true)
}

func (o *Lorentz) CorrectCoeff(c Coefficients, i, j, k int, sigma, dt, da, db float64) {
	c.CSelf[i][j][k] = o.c2
	c.CA[i][j][k] = o.c3 / da
	c.CB[i][j][k] = o.c3 / db
}

func (o *Lorentz) jsetFor(comp Component) *jset {
	switch comp {
	case CompEx:
		return o.jx
	case CompEy:
		return o.jy
	default:
		return o.jz
	}
}

func (o *Lorentz) UpdateE(comp Component, i, j, k int, eOld, curl float64) float64 {
	js := o.jsetFor(comp)
	var sumJ float64
	for p := 0; p < o.poles(); p++ {
		sumJ += js.cur[p][i][j][k] + js.prev[p][i][j][k]
	}
	return o.c2*eOld + o.c3*curl - o.c1*sumJ
}

func (o *Lorentz) UpdateJ(comp Component, i, j, k int, eNew, eOld float64) {
	js := o.jsetFor(comp)
	for p := 0; p < o.poles(); p++ {
		next := o.alpha[p]*js.cur[p][i][j][k] + o.xi[p]*js.prev[p][i][j][k] + o.gamma[p]*(eNew+eOld)
		js.prev[p][i][j][k] = js.cur[p][i][j][k]
		js.cur[p][i][j][k] = next
	}
}
