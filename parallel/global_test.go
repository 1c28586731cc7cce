// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_global01(tst *testing.T) {
	chk.PrintTitle("global01")

	Start(true)

	if Global.Nproc != 1 {
		tst.Skip("this test only asserts the single-process defaults outside mpirun")
	}
	chk.IntAssert(Global.Rank, 0)
	if !Global.Root {
		tst.Error("rank 0 of a single-process run must be Root")
	}
	if Global.Distr {
		tst.Error("a single-process run must not be marked distributed")
	}
	if !Global.Verbose {
		tst.Error("Root with verbose=true should set Global.Verbose")
	}
}
