// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/xfdtd/material"
	"github.com/cpmech/xfdtd/simulation"
)

// fullDomain is the trivial Shape every run needs at least one of:
// scene construction is an external collaborator (§1 Non-goals), so
// the CLI only ships this one builtin — a uniform background fill —
// and leaves real geometry to a caller embedding this package.
type fullDomain struct{}

func (fullDomain) Contains(x, y, z float64) bool { return true }

func main() {
	defer func() {
		if mpi.Rank() == 0 {
			if err := recover(); err != nil {
				io.PfRed("xfdtd: ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	nx := flag.Int("nx", 32, "global cell count along x")
	ny := flag.Int("ny", 32, "global cell count along y")
	nz := flag.Int("nz", 32, "global cell count along z")
	dx := flag.Float64("dx", 1e-3, "cell size along x [m]")
	dy := flag.Float64("dy", 1e-3, "cell size along y [m]")
	dz := flag.Float64("dz", 1e-3, "cell size along z [m]")
	cfl := flag.Float64("cfl", 0.99, "Courant number, in (0,1]")
	steps := flag.Int("steps", 100, "number of time steps to run")
	tx := flag.Int("tx", 1, "OS threads along x")
	ty := flag.Int("ty", 1, "OS threads along y")
	tz := flag.Int("tz", 1, "OS threads along z")
	px := flag.Int("px", 1, "MPI processes along x")
	py := flag.Int("py", 1, "MPI processes along y")
	pz := flag.Int("pz", 1, "MPI processes along z")
	verbose := flag.Bool("verbose", true, "print progress on the root process")
	flag.Parse()

	io.PfWhite("\nxfdtd -- a staggered-grid FDTD electromagnetic solver\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	simulation.Start(*verbose)

	sim, err := simulation.New(simulation.Config{
		Dx: *dx, Dy: *dy, Dz: *dz,
		Nx: *nx, Ny: *ny, Nz: *nz,
		Cfl:       *cfl,
		Threads:   simulation.ThreadConfig{NumX: *tx, NumY: *ty, NumZ: *tz},
		Processes: simulation.ProcessGrid{NumX: *px, NumY: *py, NumZ: *pz},
		Verbose:   *verbose,
	})
	if err != nil {
		panic(io.Sf("xfdtd: configuration rejected: %v", err))
	}

	sim.AddObject(fullDomain{}, material.Entry{EpsR: 1, MuR: 1})

	if err := sim.Build(); err != nil {
		panic(io.Sf("xfdtd: build failed: %v", err))
	}

	if err := sim.Run(*steps); err != nil {
		panic(io.Sf("xfdtd: run failed: %v", err))
	}
}
