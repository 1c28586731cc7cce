// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material holds the per-cell material index grid, the linear
// (ca/cb) update-coefficient tables, and the dispersive (Debye, Drude,
// Lorentz) media evaluated through auxiliary differential equations.
//
// Scalar material *tables* (measured frequency-dependent data) are an
// external collaborator (§1 Non-goals); this package only carries the
// constant-coefficient and ADE representations the core time loop needs.
package material

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/grid"
)

// Fundamental constants (SI), used throughout the coefficient and
// dispersive-ADE formulas.
const (
	Eps0 = 8.8541878128e-12
	Mu0  = 1.25663706212e-6

	eps0 = Eps0
	mu0  = Mu0
)

// IndexGrid is a per-cell material reference; -1 means the default (air).
type IndexGrid [][][]int

// NewIndexGrid allocates a material index grid for a local box, defaulted
// to -1 everywhere (§3 "Material index grid").
func NewIndexGrid(box grid.Box) IndexGrid {
	g := make(IndexGrid, box.Nx)
	for i := range g {
		g[i] = make([][]int, box.Ny)
		for j := range g[i] {
			g[i][j] = make([]int, box.Nz)
			for k := range g[i][j] {
				g[i][j][k] = -1
			}
		}
	}
	return g
}

// Entry is a non-dispersive material's constitutive data: relative
// permittivity, relative permeability and conductivities.
type Entry struct {
	EpsR, MuR   float64
	SigmaE      float64 // electric conductivity
	SigmaM      float64 // magnetic (fictitious) conductivity
	Dispersion  Method  // nil for a non-dispersive entry
}

// Array holds the appended materials in add-order; index i in an
// IndexGrid refers to Array[i].
type Array []*Entry

// Coefficients holds, for one E or H component, the self-decay and the
// two curl-coupling coefficients (§3 "Coefficient tables"):
//
//	next = cSelf*prev + cA*(curl term a) - cB*(curl term b)
type Coefficients struct {
	CSelf, CA, CB field.Array3
}

// Table holds all six per-component coefficient sets, shaped to match
// the corresponding E or H array.
type Table struct {
	Ex, Ey, Ez Coefficients
	Hx, Hy, Hz Coefficients
}

// shape mirrors field.New's per-component shapes so coefficient arrays
// are always cell-to-cell compatible with their field.
func shape(box grid.Box, comp string) (nx, ny, nz int) {
	switch comp {
	case "ex":
		return box.Nx, box.Ny + 1, box.Nz + 1
	case "ey":
		return box.Nx + 1, box.Ny, box.Nz + 1
	case "ez":
		return box.Nx + 1, box.Ny + 1, box.Nz
	case "hx":
		return box.Nx + 1, box.Ny, box.Nz
	case "hy":
		return box.Nx, box.Ny+1, box.Nz
	case "hz":
		return box.Nx, box.Ny, box.Nz+1
	}
	panic("material: unknown component " + comp)
}

func allocCoef(box grid.Box, comp string) Coefficients {
	nx, ny, nz := shape(box, comp)
	return Coefficients{
		CSelf: utl.Deep3alloc(nx, ny, nz),
		CA:    utl.Deep3alloc(nx, ny, nz),
		CB:    utl.Deep3alloc(nx, ny, nz),
	}
}

// NewTable allocates the six coefficient sets for a local box.
func NewTable(box grid.Box) *Table {
	return &Table{
		Ex: allocCoef(box, "ex"), Ey: allocCoef(box, "ey"), Ez: allocCoef(box, "ez"),
		Hx: allocCoef(box, "hx"), Hy: allocCoef(box, "hy"), Hz: allocCoef(box, "hz"),
	}
}

// FillDefault writes the vacuum (air, no loss) coefficients into every
// cell of the table: cSelf=1, cA/cB=dt/(eps0*d) or dt/(mu0*d), matching
// the ca/cb invariant of §3 with eps=eps0, sigma=0.
func (o *Table) FillDefault(dx, dy, dz, dt float64) {
	fillAxis(o.Ex, dt/(eps0*dy), dt/(eps0*dz))
	fillAxis(o.Ey, dt/(eps0*dz), dt/(eps0*dx))
	fillAxis(o.Ez, dt/(eps0*dx), dt/(eps0*dy))
	fillAxis(o.Hx, dt/(mu0*dz), dt/(mu0*dy))
	fillAxis(o.Hy, dt/(mu0*dx), dt/(mu0*dz))
	fillAxis(o.Hz, dt/(mu0*dy), dt/(mu0*dx))
}

func fillAxis(c Coefficients, a, b float64) {
	for i := range c.CSelf {
		for j := range c.CSelf[i] {
			for k := range c.CSelf[i][j] {
				c.CSelf[i][j][k] = 1
				c.CA[i][j][k] = a
				c.CB[i][j][k] = b
			}
		}
	}
}

// ApplyE overwrites the E-coefficient triple at (i,j,k) from a
// conductive, non-dispersive material entry, per the §3 invariant:
//
//	cSelf = (2eps - sigma*dt) / (2eps + sigma*dt)
//	cA,cB = 2*dt / ((2eps + sigma*dt) * d)
func ApplyE(c Coefficients, i, j, k int, epsR, sigma, dt, da, db float64) {
	eps := epsR * eps0
	denom := 2*eps + sigma*dt
	c.CSelf[i][j][k] = (2*eps - sigma*dt) / denom
	c.CA[i][j][k] = 2 * dt / (denom * da)
	c.CB[i][j][k] = 2 * dt / (denom * db)
}

// ApplyH is the magnetic-loss analogue of ApplyE, using mu0*muR and the
// fictitious magnetic conductivity sigmaM.
func ApplyH(c Coefficients, i, j, k int, muR, sigmaM, dt, da, db float64) {
	mu := muR * mu0
	denom := 2*mu + sigmaM*dt
	c.CSelf[i][j][k] = (2*mu - sigmaM*dt) / denom
	c.CA[i][j][k] = 2 * dt / (denom * da)
	c.CB[i][j][k] = 2 * dt / (denom * db)
}
