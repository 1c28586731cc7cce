// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package waveform

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_waveform01(tst *testing.T) {
	chk.PrintTitle("waveform01")

	w := New("gaussian", fun.Prms{&fun.Prm{N: "tau", V: 1e-9}, &fun.Prm{N: "t0", V: 2e-9}})
	chk.Scalar(tst, "Amplitude", 1e-15, w.Amplitude(), 1.0)
	chk.Scalar(tst, "peak at t0", 1e-12, w.F(2e-9, nil), 1.0)

	w2 := New("gaussian", fun.Prms{&fun.Prm{N: "tau", V: 1e-9}, &fun.Prm{N: "t0", V: 0}, &fun.Prm{N: "amp", V: 3.0}})
	chk.Scalar(tst, "scaled peak", 1e-12, w2.F(0, nil), 3.0)
}

func Test_waveform02(tst *testing.T) {
	chk.PrintTitle("waveform02")

	w := New("sawtooth", fun.Prms{&fun.Prm{N: "T", V: 1.0}})
	chk.Scalar(tst, "sawtooth(0)", 1e-12, w.F(0, nil), -1.0)

	tr := New("triangle", fun.Prms{&fun.Prm{N: "T", V: 1.0}})
	chk.Scalar(tst, "triangle(0)", 1e-12, tr.F(0, nil), -1.0)
	chk.Scalar(tst, "triangle(T/2)", 1e-12, tr.F(0.5, nil), 1.0)
}

func Test_waveform03(tst *testing.T) {
	chk.PrintTitle("waveform03")

	defer func() {
		if r := recover(); r == nil {
			tst.Error("an unknown waveform kind must panic")
		}
	}()
	New("not-a-real-kind", nil)
}
