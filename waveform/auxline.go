// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package waveform

import (
	"math"
)

const (
	eps0 = 8.8541878128e-12
	mu0  = 1.25663706212e-6
)

// Vec3 is a plain 3-vector, used for the incidence direction and the
// rotation vectors that map the 1-D auxiliary line to 3-D incident
// fields (§3 "Auxiliary state" TFSF).
type Vec3 [3]float64

func cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func scale(v Vec3, s float64) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// AuxLine is the 1-D FDTD line whose samples are interpolated to
// provide the plane-wave incident E and H at every TFSF cell (§4.3,
// §4.2.2). It is advanced once per step: inject, update interior E,
// Mur-absorb the far end, update H.
type AuxLine struct {
	DL   float64 // auxiliary line cell size = min(dx,dy,dz)/ratioDelta
	Dt   float64
	K    Vec3 // propagation direction, unit
	TrE  Vec3 // rotation vector for incident E
	TrH  Vec3 // rotation vector for incident H = K x TrE

	E, H []float64 // samples along the line, length L and L-1 respectively

	src Waveform

	// coefficients
	ceSelf, ceH float64
	chSelf, chE float64

	// first-order Mur ABC memory at the far end
	abcCoeff  float64
	prevFirst float64
}

// NewAuxLine builds the 1-D line for a given propagation direction and
// incidence polarization roll psi (§3 "TFSF"). length is in cells;
// simulation.Build sizes it to ratioDelta times the sum of the TFSF
// box's three extents, plus 4.
func NewAuxLine(dxMin, ratioDelta, dt float64, theta, phi, psi float64, length int, src Waveform) *AuxLine {
	sT, cT := math.Sin(theta), math.Cos(theta)
	sP, cP := math.Sin(phi), math.Cos(phi)
	sS, cS := math.Sin(psi), math.Cos(psi)

	k := Vec3{sT * cP, sT * sP, cT}
	trE := Vec3{
		cT*cP*cS - sP*sS,
		cT*sP*cS + cP*sS,
		-sT * cS,
	}
	trH := cross(k, trE)

	dl := dxMin / ratioDelta
	o := &AuxLine{
		DL: dl, Dt: dt, K: k, TrE: trE, TrH: trH,
		E: make([]float64, length), H: make([]float64, length-1),
		src: src,
	}

	// 1-D CFL-scaled coefficients (§4.3): dt/(eps0*dl) for E, dt/(mu0*dl) for H.
	o.ceSelf, o.ceH = 1, dt/(eps0*dl)
	o.chSelf, o.chE = 1, dt/(mu0*dl)

	// first-order Mur ABC coefficient: (c*dt - dl)/(c*dt + dl)
	c := 1 / math.Sqrt(eps0*mu0)
	o.abcCoeff = (c*dt - dl) / (c*dt + dl)
	return o
}

// Step advances the line by one full leapfrog step: inject the source
// at index 0, update interior E, Mur-absorb the last E cell, update H
// (§4.2.2 "The 1-D line itself is advanced once per step").
func (o *AuxLine) Step(n int) {
	last := len(o.E) - 1
	secondLast := o.E[last-1]

	o.E[0] = o.src.F(float64(n)*o.Dt, nil)
	for i := 1; i < last; i++ {
		o.E[i] = o.ceSelf*o.E[i] + o.ceH*(o.H[i]-o.H[i-1])
	}
	o.E[last] = o.prevFirst + o.abcCoeff*(o.E[last-1]-o.E[last])
	o.prevFirst = secondLast

	for i := range o.H {
		o.H[i] = o.chSelf*o.H[i] + o.chE*(o.E[i+1]-o.E[i])
	}
}

// Project returns the fractional index on the line for a cell at
// (i,j,k), with an extra -0.5 for H's half-step time offset (§4.2.2
// "Incident sampling"): P = (i*kx+j*ky+k*kz)*ratioDelta.
func (o *AuxLine) Project(i, j, k int, ratioDelta float64, isH bool) float64 {
	p := (float64(i)*o.K[0] + float64(j)*o.K[1] + float64(k)*o.K[2]) * ratioDelta
	if isH {
		p -= 0.5
	}
	return p
}

// sampleE two-point-linearly interpolates the scalar E line at fractional index p.
func (o *AuxLine) sampleE(p float64) float64 { return interp(o.E, p) }

// sampleH two-point-linearly interpolates the scalar H line at fractional index p.
func (o *AuxLine) sampleH(p float64) float64 { return interp(o.H, p) }

func interp(line []float64, p float64) float64 {
	if p < 0 {
		p = 0
	}
	n := len(line)
	lo := int(math.Floor(p))
	if lo >= n-1 {
		return line[n-1]
	}
	frac := p - float64(lo)
	return line[lo]*(1-frac) + line[lo+1]*frac
}

// IncidentE returns the three incident-E components at (i,j,k).
func (o *AuxLine) IncidentE(i, j, k int, ratioDelta float64) Vec3 {
	e := o.sampleE(o.Project(i, j, k, ratioDelta, false))
	return scale(o.TrE, e)
}

// IncidentH returns the three incident-H components at (i,j,k).
func (o *AuxLine) IncidentH(i, j, k int, ratioDelta float64) Vec3 {
	h := o.sampleH(o.Project(i, j, k, ratioDelta, true))
	return scale(o.TrH, h)
}
