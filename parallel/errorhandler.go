// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// Stop decides whether a serial or distributed run must stop, folding
// every process' error state through an all-reduce so one process'
// init failure is visible to all before the time loop starts
// (grounded on the teacher's fem.Stop).
func Stop(err error, msg string) bool {
	if !Global.Distr {
		if err != nil {
			io.PfMag("xfdtd: failed on %s with %v\n", msg, err)
			return true
		}
		return false
	}

	for i := range Global.WspcStop {
		Global.WspcStop[i] = 0
	}
	if err != nil {
		io.PfMag("xfdtd: process %d failed on %s with %v\n", Global.Rank, msg, err)
		Global.WspcStop[Global.Rank] = 1
	}
	mpi.IntAllReduceMax(Global.WspcStop, Global.WspcInum)
	for _, s := range Global.WspcStop {
		if s > 0 {
			return true
		}
	}
	return false
}

// PanicOrNot panics (on every process) if any process requested a
// panic, keeping a halo-exchange or barrier failure on one rank from
// deadlocking the others (§5 "Cancellation and timeouts": init
// failures are fatal and must propagate as typed failures).
func PanicOrNot(dopanic bool, msg string, prm ...interface{}) {
	if !Global.Distr {
		if dopanic {
			panic(io.Sf(msg, prm...))
		}
		return
	}

	for i := range Global.WspcStop {
		Global.WspcStop[i] = 0
	}
	if dopanic {
		Global.WspcStop[Global.Rank] = 1
	}
	mpi.IntAllReduceMax(Global.WspcStop, Global.WspcInum)
	for _, s := range Global.WspcStop {
		if s > 0 {
			panic(io.Sf(msg, prm...))
		}
	}
}
