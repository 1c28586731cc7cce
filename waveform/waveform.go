// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package waveform supplies the analytic source functions (§4.3) and
// the TFSF 1-D auxiliary line. Waveform function *evaluation* is named
// an external collaborator by §1; this package wires
// github.com/cpmech/gosl/fun for the forms it already provides (sine,
// cosine, square, step, built by fun.New from the kind name) and adds
// small Func-shaped
// types, in the same Name/Type/Prms convention as the teacher's
// inp.FuncData, for forms gosl/fun does not carry (Gaussian,
// cosine-modulated Gaussian, triangle, sawtooth).
package waveform

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// Waveform is a pure function of time with an amplitude factor, sampled
// once per time step (§4.3).
type Waveform interface {
	fun.Func
	Amplitude() float64
}

// wrap adapts a gosl/fun.Func plus an explicit amplitude into a Waveform.
type wrap struct {
	fun.Func
	amp float64
}

func (w wrap) Amplitude() float64 { return w.amp }

// New builds a waveform by kind, mirroring inp.FuncsData.GetOrPanic's
// "type string + Prms" dispatch. The amplitude is Prm "amp" if present,
// else 1; Amplitude reports it for every kind, but only the local forms
// (sawtooth, triangle, gaussian, cos-modulated-gaussian) multiply F by
// it — for the fun.New kinds F is gosl/fun's own value.
func New(kind string, prms fun.Prms) Waveform {
	amp := 1.0
	if p := prms.Find("amp"); p != nil {
		amp = p.V
	}
	switch kind {
	case "sine", "cosine", "square", "step":
		return wrap{Func: fun.New(kind, prms), amp: amp}
	case "sawtooth":
		return newSawtooth(prms, amp)
	case "triangle":
		return newTriangle(prms, amp)
	case "gaussian":
		return newGaussian(prms, amp)
	case "cos-modulated-gaussian":
		return newCosModGaussian(prms, amp)
	}
	panic(utl.Sf("waveform: unknown kind %q", kind))
}

// --- forms gosl/fun doesn't carry -----------------------------------

type gaussian struct {
	tau, t0, amp float64
}

func newGaussian(p fun.Prms, amp float64) Waveform {
	return gaussian{tau: p.Find("tau").V, t0: p.Find("t0").V, amp: amp}
}
func (g gaussian) F(t float64, x []float64) float64 {
	d := (t - g.t0) / g.tau
	return g.amp * math.Exp(-d*d)
}
func (g gaussian) G(t float64, x []float64) float64 {
	d := (t - g.t0) / g.tau
	return -2 * d / g.tau * g.F(t, x)
}
func (g gaussian) Grad(v []float64, t float64, x []float64) {}
func (g gaussian) Amplitude() float64                       { return g.amp }

type cosModGaussian struct {
	tau, t0, freq, amp float64
}

func newCosModGaussian(p fun.Prms, amp float64) Waveform {
	return cosModGaussian{tau: p.Find("tau").V, t0: p.Find("t0").V, freq: p.Find("freq").V, amp: amp}
}
func (c cosModGaussian) envelope(t float64) float64 {
	d := (t - c.t0) / c.tau
	return math.Exp(-d * d)
}
func (c cosModGaussian) F(t float64, x []float64) float64 {
	return c.amp * c.envelope(t) * math.Cos(2*math.Pi*c.freq*(t-c.t0))
}
func (c cosModGaussian) G(t float64, x []float64) float64 { return 0 }
func (c cosModGaussian) Grad(v []float64, t float64, x []float64) {}
func (c cosModGaussian) Amplitude() float64 { return c.amp }

type sawtooth struct {
	period, amp float64
}

func newSawtooth(p fun.Prms, amp float64) Waveform {
	return sawtooth{period: p.Find("T").V, amp: amp}
}
func (s sawtooth) F(t float64, x []float64) float64 {
	phase := math.Mod(t, s.period) / s.period
	return s.amp * (2*phase - 1)
}
func (s sawtooth) G(t float64, x []float64) float64         { return 2 * s.amp / s.period }
func (s sawtooth) Grad(v []float64, t float64, x []float64) {}
func (s sawtooth) Amplitude() float64                       { return s.amp }

type triangle struct {
	period, amp float64
}

func newTriangle(p fun.Prms, amp float64) Waveform {
	return triangle{period: p.Find("T").V, amp: amp}
}
func (tr triangle) F(t float64, x []float64) float64 {
	phase := math.Mod(t, tr.period) / tr.period
	if phase < 0.5 {
		return tr.amp * (4*phase - 1)
	}
	return tr.amp * (3 - 4*phase)
}
func (tr triangle) G(t float64, x []float64) float64         { return 0 }
func (tr triangle) Grad(v []float64, t float64, x []float64) {}
func (tr triangle) Amplitude() float64                       { return tr.amp }
