// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel implements the hybrid process×thread scheduling
// model (§5): a counting thread barrier, a collective (AllReduceSum)
// halo exchange over gosl/mpi, and the parallel-aware error propagation the rest of
// the engine reports failures through.
package parallel

import (
	"github.com/cpmech/gosl/mpi"
)

// Global holds the multiprocessing bookkeeping every package in the
// engine reads to decide whether to participate in a reduction or
// stay silent (adapted from the teacher's fem.global, trimmed to the
// process-topology fields; the FEM-specific simulation/material
// fields have no analogue here).
var Global struct {
	Rank     int   // this process' rank
	Nproc    int   // number of processes
	Root     bool  // Rank == 0
	Distr    bool  // Nproc > 1
	Verbose  bool  // Root and verbose requested
	WspcStop []int // stop-flag workspace, sized Nproc
	WspcInum []int // integer reduction workspace, sized Nproc
}

// Start initializes Global from the MPI runtime. Call once before any
// Domain begins its time loop.
func Start(verbose bool) {
	Global.Rank = 0
	Global.Nproc = 1
	Global.Root = true
	Global.Distr = false
	if mpi.IsOn() {
		Global.Rank = mpi.Rank()
		Global.Nproc = mpi.Size()
		Global.Root = Global.Rank == 0
		Global.Distr = Global.Nproc > 1
	}
	Global.Verbose = verbose && Global.Root
	if Global.Distr {
		Global.WspcStop = make([]int, Global.Nproc)
		Global.WspcInum = make([]int, Global.Nproc)
	}
}
