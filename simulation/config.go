// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulation

import (
	"github.com/cpmech/gosl/io"
)

// ThreadConfig is the OS-thread decomposition request for one process
// (§6 "thread_config"): the local sub-box is split into NumX*NumY*NumZ
// tasks, one Domain per task.
type ThreadConfig struct {
	NumX, NumY, NumZ int
	Divider          string // only "uniform" is implemented; named for parity with the teacher's divider_type
}

// ProcessGrid is the MPI process decomposition (§6 "mpi_parallel_dim");
// its product must equal the MPI world size.
type ProcessGrid struct {
	NumX, NumY, NumZ int
}

// Config is the plain-struct configuration every Simulation is built
// from (§6 "Configuration"). There is no file-format reader here —
// scene/material/waveform-table parsing is the named external
// collaborator's job (§1 Non-goals) — but every numeric field is
// range-checked by New exactly as inp.SolverData validates the
// teacher's simulation file.
type Config struct {
	Dx, Dy, Dz float64
	Nx, Ny, Nz int // global cell counts, before any PML extension
	Cfl        float64

	Threads   ThreadConfig
	Processes ProcessGrid

	Verbose bool
}

// validate rejects an out-of-range configuration (§7 "Configuration"):
// CFL violated, zero/negative dimensions, thread counts below 1,
// unknown divider type, process-grid product mismatch.
func (c Config) validate(nproc int) error {
	if c.Dx <= 0 || c.Dy <= 0 || c.Dz <= 0 {
		return &ConfigError{Msg: io.Sf("cell sizes must be positive: dx=%v dy=%v dz=%v", c.Dx, c.Dy, c.Dz)}
	}
	if c.Nx <= 0 || c.Ny <= 0 || c.Nz <= 0 {
		return &ConfigError{Msg: io.Sf("grid dimensions must be positive: nx=%d ny=%d nz=%d", c.Nx, c.Ny, c.Nz)}
	}
	if c.Cfl <= 0 || c.Cfl > 1 {
		return &ConfigError{Msg: io.Sf("cfl must be in (0,1]: got %v", c.Cfl)}
	}
	if c.Threads.NumX < 1 || c.Threads.NumY < 1 || c.Threads.NumZ < 1 {
		return &ConfigError{Msg: "thread_config counts must be >= 1 on every axis"}
	}
	switch c.Threads.Divider {
	case "", "uniform":
	default:
		return &ConfigError{Msg: io.Sf("unknown divider type %q", c.Threads.Divider)}
	}
	px, py, pz := c.Processes.NumX, c.Processes.NumY, c.Processes.NumZ
	if px < 1 || py < 1 || pz < 1 {
		return &ConfigError{Msg: "mpi_parallel_dim counts must be >= 1 on every axis"}
	}
	if px*py*pz != nproc {
		return &ConfigError{Msg: io.Sf("mpi_parallel_dim product %d does not match process count %d", px*py*pz, nproc)}
	}
	return nil
}

// ConfigError reports a bad Simulation configuration (§7
// "Configuration"); it is fatal at init and surfaces to the caller of
// Run.
type ConfigError struct{ Msg string }

func (e *ConfigError) Error() string { return e.Msg }
