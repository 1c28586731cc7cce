// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulation

import (
	"github.com/cpmech/xfdtd/corrector"
	"github.com/cpmech/xfdtd/domain"
	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/material"
	"github.com/cpmech/xfdtd/updator"
	"github.com/cpmech/xfdtd/waveform"
)

// stampObjects runs §4.5 step 4's two passes over every registered
// object: the material index grid first (last object to claim a cell
// wins, add order), then the coefficient tables (§9
// "coefficient-correction sequencing").
func (s *Simulation) stampObjects(dt float64) {
	local := s.space.Local

	for idx, obj := range s.objects {
		for i := 0; i < local.Nx; i++ {
			for j := 0; j < local.Ny; j++ {
				for k := 0; k < local.Nz; k++ {
					x, y, z := s.cellCenter(i, j, k)
					if obj.Shape.Contains(x, y, z) {
						s.matGrid[i][j][k] = idx
					}
				}
			}
		}
	}

	for idx, obj := range s.objects {
		m := obj.Material
		s.methods[idx] = m.Dispersion
		if m.Dispersion != nil {
			m.Dispersion.Init(dt)
		}
		for i := 0; i < local.Nx; i++ {
			for j := 0; j < local.Ny; j++ {
				for k := 0; k < local.Nz; k++ {
					if s.matGrid[i][j][k] != idx {
						continue
					}
					s.applyMaterial(i, j, k, m, dt)
				}
			}
		}
	}
}

// applyMaterial writes this cell's coefficients on all six component
// tables, using the same (da,db) pairing per component as
// material.Table.FillDefault.
func (s *Simulation) applyMaterial(i, j, k int, m material.Entry, dt float64) {
	dx, dy, dz := s.cfg.Dx, s.cfg.Dy, s.cfg.Dz
	tbl := s.table
	if m.Dispersion != nil {
		m.Dispersion.CorrectCoeff(tbl.Ex, i, j, k, m.SigmaE, dt, dy, dz)
		m.Dispersion.CorrectCoeff(tbl.Ey, i, j, k, m.SigmaE, dt, dz, dx)
		m.Dispersion.CorrectCoeff(tbl.Ez, i, j, k, m.SigmaE, dt, dx, dy)
	} else {
		material.ApplyE(tbl.Ex, i, j, k, m.EpsR, m.SigmaE, dt, dy, dz)
		material.ApplyE(tbl.Ey, i, j, k, m.EpsR, m.SigmaE, dt, dz, dx)
		material.ApplyE(tbl.Ez, i, j, k, m.EpsR, m.SigmaE, dt, dx, dy)
	}
	material.ApplyH(tbl.Hx, i, j, k, m.MuR, m.SigmaM, dt, dz, dy)
	material.ApplyH(tbl.Hy, i, j, k, m.MuR, m.SigmaM, dt, dx, dz)
	material.ApplyH(tbl.Hz, i, j, k, m.MuR, m.SigmaM, dt, dy, dx)
}

// hasDispersive reports whether any registered object carries a
// dispersive method, which selects Dispersive3D over Basic3D for
// every task's updator (§4.1 "Variants").
func (s *Simulation) hasDispersive() bool {
	for _, obj := range s.objects {
		if obj.Material.Dispersion != nil {
			return true
		}
	}
	return false
}

// componentArray resolves a monitor's component name to the matching
// EMF array.
func (s *Simulation) componentArray(name string) (field.Array3, error) {
	switch name {
	case "Ex":
		return s.emf.Ex, nil
	case "Ey":
		return s.emf.Ey, nil
	case "Ez":
		return s.emf.Ez, nil
	case "Hx":
		return s.emf.Hx, nil
	case "Hy":
		return s.emf.Hy, nil
	case "Hz":
		return s.emf.Hz, nil
	}
	return nil, &TopologyError{Msg: "unknown monitor component " + name}
}

// updatorSidesFor builds the Sides a thread task's updator borrows.
func (s *Simulation) updatorSidesFor(task field.Task) updator.Sides {
	return updator.Sides{EMF: s.emf, Table: s.table, Mat: s.matGrid, Task: task}
}

// newBasicFor selects the dimensionality-appropriate non-dispersive
// updator (§4.1 "Variants"): BasicTEM for a 1-D run, BasicTE for 2-D,
// Basic3D otherwise. It is not used when any object is dispersive:
// Build then gives every task a Dispersive3D regardless of
// dimensionality (see DESIGN.md).
func (s *Simulation) newBasicFor(sides updator.Sides) domain.Updator {
	switch {
	case s.is1D:
		return updator.NewBasicTEM(sides)
	case s.is2D:
		return updator.NewBasicTE(sides)
	default:
		return updator.NewBasic3D(sides)
	}
}

func newDispersive(sides updator.Sides, methods []material.Method) *updator.Dispersive3D {
	return updator.NewDispersive3D(sides, methods)
}

// buildTFSF builds a TFSF corrector for one registered source, along
// with the local-index footprint it owns. The auxiliary line's length
// is ratioDelta times the sum of the box's three extents, plus 4 cells,
// which is never shorter than ratioDelta times the box diagonal
// (§4.2.2 "The auxiliary line").
func (s *Simulation) buildTFSF(src TFSFSource, dt float64) (*corrector.TFSF, field.Task, error) {
	fp := s.toLocalFootprint(src.X0, src.Y0, src.Z0, src.X0+src.Nx, src.Y0+src.Ny, src.Z0+src.Nz)
	if fp.X.Len() <= 0 || fp.Y.Len() <= 0 || fp.Z.Len() <= 0 {
		return nil, field.Task{}, nil
	}

	dxMin := s.cfg.Dx
	if s.cfg.Dy < dxMin {
		dxMin = s.cfg.Dy
	}
	if s.cfg.Dz < dxMin {
		dxMin = s.cfg.Dz
	}

	ratio := src.RatioDelta
	if ratio < 1 {
		ratio = 1
	}
	length := int(ratio*float64(src.Nx+src.Ny+src.Nz)) + 4

	line := waveform.NewAuxLine(dxMin, ratio, dt, src.Theta, src.Phi, src.Psi, length, src.Src)
	tfsf := corrector.NewTFSF(fp, ratio, line, s.emf)
	return tfsf, fp, nil
}

// buildLumped builds the runtime corrector for one non-PEC-plane
// network branch descriptor (§4.2.3).
func (s *Simulation) buildLumped(e LumpedElement, dt float64) (corrector.Corrector, field.Task, error) {
	fp := s.toLocalFootprint(e.X0, e.Y0, e.Z0, e.X1, e.Y1, e.Z1)
	if fp.X.Len() <= 0 || fp.Y.Len() <= 0 || fp.Z.Len() <= 0 {
		return nil, field.Task{}, nil
	}
	dx, dy, dz := s.cfg.Dx, s.cfg.Dy, s.cfg.Dz

	switch e.Kind {
	case LumpedResistor:
		c, err := corrector.NewResistor(e.Axis, fp, dx, dy, dz, 1, e.Resistance, dt, s.table)
		return corrector.Corrector(c), fp, err
	case LumpedCapacitor:
		c, err := corrector.NewCapacitor(e.Axis, fp, dx, dy, dz, 1, e.Capacitance, dt, s.emf)
		return corrector.Corrector(c), fp, err
	case LumpedInductor:
		c, err := corrector.NewInductor(e.Axis, fp, dx, dy, dz, 1, e.Inductance, dt, s.emf)
		return corrector.Corrector(c), fp, err
	case LumpedVoltageSource:
		c, err := corrector.NewVoltageSource(e.Axis, fp, dx, dy, dz, 1, e.Resistance, dt, e.Negative, e.Src, s.table, s.emf)
		return corrector.Corrector(c), fp, err
	}
	return nil, field.Task{}, &TopologyError{Msg: "unknown lumped element kind"}
}
