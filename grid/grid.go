// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the uniform rectilinear (Yee) coordinate mesh:
// the global simulation box, cell sizes, and the per-process sub-box view
// produced by domain decomposition.
package grid

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Axis names a coordinate direction.
type Axis int

// axis identifiers
const (
	X Axis = iota
	Y
	Z
)

// Box holds the cell counts of a rectangular grid region; its cells are
// indexed by the half-open ranges [0,Nx), [0,Ny), [0,Nz), following the
// teacher's half-open range convention for loop bounds.
type Box struct {
	Nx, Ny, Nz int // number of cells on each axis
}

// Space is the uniform rectilinear grid: global box size, cell sizes and
// the local (per-process) sub-box produced by decomposition.
type Space struct {

	// global
	Dx, Dy, Dz float64 // cell sizes [m]
	Global     Box     // global number of cells on each axis

	// local (after decomposition): this process' sub-box, widened by a
	// one-cell halo on every internal face (§3 "Ownership")
	Local Box

	// Origin is this process' local-grid offset into the global index
	// space; global = local + Origin.
	Origin [3]int

	// HasHalo[axis][lowOrHigh] is true when this process' local box was
	// widened with a halo on that face (i.e. the face is internal, not
	// on the global domain boundary).
	HasHalo [3][2]bool
}

// NewGlobal builds a global grid space from cell sizes and cell counts.
func NewGlobal(dx, dy, dz float64, nx, ny, nz int) (o *Space, err error) {
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return nil, &ConfigError{Msg: utl.Sf("cell sizes must be positive: dx=%v dy=%v dz=%v", dx, dy, dz)}
	}
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, &ConfigError{Msg: utl.Sf("grid dimensions must be positive: nx=%d ny=%d nz=%d", nx, ny, nz)}
	}
	o = &Space{Dx: dx, Dy: dy, Dz: dz, Global: Box{nx, ny, nz}}
	o.Local = o.Global
	return o, nil
}

// DtMax returns the Courant-limited maximum timestep for the given CFL
// number (§3 "Time parameter"): dt_max = 1/(c·sqrt(1/dx²+1/dy²+1/dz²))·CFL.
func (o *Space) DtMax(c, cfl float64) float64 {
	inv := 1/(o.Dx*o.Dx) + 1/(o.Dy*o.Dy) + 1/(o.Dz*o.Dz)
	return cfl / (c * math.Sqrt(inv))
}

// Decompose splits the global box into P contiguous sub-boxes (one per
// process) along the requested axes, distributing the remainder to the
// low-indexed chunks (§5 "Decomposition policy"), and returns the local
// sub-box (with halo) owned by rank `myrank` out of the `px×py×pz` grid
// of processes.
func Decompose(global Box, px, py, pz, myrank int) (local Box, origin [3]int, hasHalo [3][2]bool, err error) {
	if px*py*pz <= 0 {
		return Box{}, [3]int{}, [3][2]bool{}, &ConfigError{Msg: "process grid dimensions must be positive"}
	}
	if myrank < 0 || myrank >= px*py*pz {
		return Box{}, [3]int{}, [3][2]bool{}, &ConfigError{Msg: utl.Sf("rank %d out of range for %d processes", myrank, px*py*pz)}
	}

	// rank -> (ix, iy, iz) in the process grid, row-major on x fastest
	ix := myrank % px
	iy := (myrank / px) % py
	iz := myrank / (px * py)

	nx, ox, loX, hiX := splitAxis(global.Nx, px, ix)
	ny, oy, loY, hiY := splitAxis(global.Ny, py, iy)
	nz, oz, loZ, hiZ := splitAxis(global.Nz, pz, iz)

	local = Box{Nx: nx, Ny: ny, Nz: nz}
	origin = [3]int{ox, oy, oz}
	hasHalo = [3][2]bool{{loX, hiX}, {loY, hiY}, {loZ, hiZ}}
	return
}

// splitAxis divides n cells among p equal contiguous chunks (remainder to
// the low-indexed chunks), reports whether chunk `idx` has an internal
// (hence halo-bearing) neighbour on its low and high faces, and widens
// the returned count/offset by one halo cell on each such face.
func splitAxis(n, p, idx int) (count, offset int, haloLo, haloHi bool) {
	base := n / p
	rem := n % p
	count = base
	if idx < rem {
		count++
	}
	if idx < rem {
		offset = idx * (base + 1)
	} else {
		offset = rem*(base+1) + (idx-rem)*base
	}
	haloLo = idx > 0
	haloHi = idx < p-1
	if haloLo {
		count++
		offset--
	}
	if haloHi {
		count++
	}
	return
}

// ConfigError reports a bad grid configuration; it is fatal at init and
// surfaces to the driver's caller (§7 "Configuration").
type ConfigError struct{ Msg string }

func (e *ConfigError) Error() string { return e.Msg }
