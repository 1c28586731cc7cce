// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simulation is the driver (§4.5): it owns the public
// registration surface (objects, boundaries, waveform sources, lumped
// networks, monitors), builds the grid/EMF/coefficient state once at
// Build, and runs the time loop across every thread's Domain.
//
// Scene construction (concrete shapes), scalar material tables, NFFFT
// and S-parameter/network post-processing are named external
// collaborators (§1 Non-goals): this package only consumes the Shape
// and monitor.Recorder contracts they must satisfy.
package simulation

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/xfdtd/corrector"
	"github.com/cpmech/xfdtd/domain"
	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/grid"
	"github.com/cpmech/xfdtd/material"
	"github.com/cpmech/xfdtd/monitor"
	"github.com/cpmech/xfdtd/parallel"
	"github.com/cpmech/xfdtd/waveform"
)

// Shape is the external scene-construction contract (§1 Non-goals):
// Contains reports whether a physical point (in metres, global
// coordinates) lies inside the region an Object occupies.
type Shape interface {
	Contains(x, y, z float64) bool
}

// Object registers a material-filled region; its index in the driver's
// add order is the material index every cell it covers is stamped with
// (§4.5 step 4).
type Object struct {
	Shape    Shape
	Material material.Entry
}

// Boundary is the only boundary descriptor in scope: a CPML slab on one
// outer face (§6 "addBoundary").
type Boundary struct {
	Face      corrector.Face
	Thickness int
}

// TFSFSource is a TFSF3D waveform-source descriptor (§6
// "addWaveformSource"): a box in global cell coordinates, an incidence
// direction/polarization, and the analytic source it samples.
type TFSFSource struct {
	X0, Y0, Z0    int // low corner, global index space
	Nx, Ny, Nz    int // extent in cells
	Theta, Phi, Psi float64
	RatioDelta    float64 // auxiliary-line cells per main-grid cell, >= 1
	Src           waveform.Waveform
}

// LumpedKind selects which circuit element a LumpedElement descriptor
// builds (§4.2.3).
type LumpedKind int

// Lumped element kinds.
const (
	LumpedResistor LumpedKind = iota
	LumpedCapacitor
	LumpedInductor
	LumpedVoltageSource
	LumpedPecPlane
)

// LumpedElement is a network branch descriptor: a footprint (global
// index box) along one axis, plus the parameters its Kind needs.
type LumpedElement struct {
	Kind                                  LumpedKind
	Axis                                  grid.Axis
	X0, Y0, Z0, X1, Y1, Z1                int // global index box, half-open
	Resistance, Capacitance, Inductance   float64
	Negative                              bool
	Src                                   waveform.Waveform // VoltageSource only
}

// MonitorSpec registers a passive field-time tap (§6 "addMonitor"): a
// footprint and which component to sample.
type MonitorSpec struct {
	Name, OutputDir         string
	Component               string // "Ex","Ey","Ez","Hx","Hy","Hz"
	X0, Y0, Z0, X1, Y1, Z1  int    // global index box, half-open
}

// externalRecorder is a pre-built Recorder the caller supplies directly
// (§6 "addNetwork", "addNF2FF": NFFFT and network post-processing are
// named external collaborators; the driver only wires their passive
// sampling contract into the per-thread Domain it belongs to).
type externalRecorder struct {
	rec monitor.Recorder
	fp  field.Task // global-index footprint, for task assignment
}

// Simulation is the driver: register objects/boundaries/sources/
// networks/monitors, then Build once and Run(N).
type Simulation struct {
	cfg Config

	objects    []Object
	boundaries []Boundary
	sources    []TFSFSource
	lumped     []LumpedElement
	monitors   []MonitorSpec
	externals  []externalRecorder

	built bool
	ran   bool

	space    *grid.Space
	emf      *field.EMF
	table    *material.Table
	matGrid  material.IndexGrid
	methods  []material.Method
	domains  []*domain.Domain
	clock    *domain.Clock

	// padLo/padHi is the PML extension added to the user's coordinate
	// frame on each axis' low/high face (§4.5 step 1); origin is this
	// process' offset into the padded global index space. Every
	// X0/Y0/Z0 the caller registers is in the user's (unpadded) global
	// frame and is shifted into local indices via toLocal.
	padLo, padHi [3]int
	origin       [3]int

	is1D, is2D bool
}

// toLocal converts a point in the caller's (unpadded) global index
// frame into this process' local grid indices.
func (s *Simulation) toLocal(gx, gy, gz int) (lx, ly, lz int) {
	return gx - s.origin[0] + s.padLo[0], gy - s.origin[1] + s.padLo[1], gz - s.origin[2] + s.padLo[2]
}

// toLocalFootprint converts a half-open box in the caller's global
// frame into a local field.Task, clipped to this process' local grid.
func (s *Simulation) toLocalFootprint(x0, y0, z0, x1, y1, z1 int) field.Task {
	lx0, ly0, lz0 := s.toLocal(x0, y0, z0)
	lx1, ly1, lz1 := s.toLocal(x1, y1, z1)
	local := s.space.Local
	return field.Task{
		X: clipRange(lx0, lx1, local.Nx),
		Y: clipRange(ly0, ly1, local.Ny),
		Z: clipRange(lz0, lz1, local.Nz),
	}
}

func clipRange(lo, hi, n int) field.Range {
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}
	return field.Range{Start: lo, End: hi}
}

// cellCenter returns the physical coordinates (metres, user's unpadded
// frame) of the center of local cell (i,j,k).
func (s *Simulation) cellCenter(i, j, k int) (x, y, z float64) {
	gx := s.origin[0] + i - s.padLo[0]
	gy := s.origin[1] + j - s.padLo[1]
	gz := s.origin[2] + k - s.padLo[2]
	return (float64(gx) + 0.5) * s.cfg.Dx, (float64(gy) + 0.5) * s.cfg.Dy, (float64(gz) + 0.5) * s.cfg.Dz
}

// New builds an unconfigured Simulation from cfg; Start must have been
// called already so parallel.Global reflects the MPI runtime.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.validate(parallel.Global.Nproc); err != nil {
		return nil, err
	}
	return &Simulation{cfg: cfg}, nil
}

// Start wires parallel.Global from the MPI runtime; call once before
// New (§4.5, grounded on fem.Start).
func Start(verbose bool) { parallel.Start(verbose) }

// AddObject registers a material region; material index is assigned
// in call order (§6 "addObject").
func (s *Simulation) AddObject(shape Shape, mat material.Entry) {
	s.objects = append(s.objects, Object{Shape: shape, Material: mat})
}

// AddBoundary registers a PML(thickness, face) boundary (§6 "addBoundary").
func (s *Simulation) AddBoundary(b Boundary) { s.boundaries = append(s.boundaries, b) }

// AddWaveformSource registers a TFSF3D source (§6 "addWaveformSource").
func (s *Simulation) AddWaveformSource(src TFSFSource) { s.sources = append(s.sources, src) }

// AddLumpedElement registers one network branch (§4.2.3, §6 "addNetwork").
func (s *Simulation) AddLumpedElement(e LumpedElement) { s.lumped = append(s.lumped, e) }

// AddMonitor registers a passive field-time tap (§6 "addMonitor").
func (s *Simulation) AddMonitor(m MonitorSpec) { s.monitors = append(s.monitors, m) }

// AddNetwork wires an externally-built Recorder (S-parameter/network
// post-processing is a named external collaborator, §1 Non-goals) into
// the task decomposition by its footprint.
func (s *Simulation) AddNetwork(rec monitor.Recorder, fp field.Task) {
	s.externals = append(s.externals, externalRecorder{rec: rec, fp: fp})
}

// AddNF2FF wires an externally-built near-to-far-field Recorder the
// same way as AddNetwork (§1 Non-goals, §6 "addNF2FF").
func (s *Simulation) AddNF2FF(rec monitor.Recorder, fp field.Task) {
	s.externals = append(s.externals, externalRecorder{rec: rec, fp: fp})
}

// c0 is the free-space speed of light used for the CFL-limited timestep.
func c0() float64 { return 1 / math.Sqrt(material.Eps0*material.Mu0) }

// Build performs every §4.5 init step and must be called exactly once,
// before Run. All failures are fatal and returned as typed errors
// (§7 "Policy").
func (s *Simulation) Build() error {
	if s.built {
		return &TopologyError{Msg: "Build called more than once"}
	}
	if len(s.objects) == 0 {
		return &TopologyError{Msg: "simulation has no objects"}
	}

	// step 1: global grid, padded by every requested PML face.
	global := grid.Box{Nx: s.cfg.Nx, Ny: s.cfg.Ny, Nz: s.cfg.Nz}
	for _, b := range s.boundaries {
		axis, hi := b.Face.Axis(), b.Face.IsHigh()
		if hi {
			s.padHi[axis] += b.Thickness
		} else {
			s.padLo[axis] += b.Thickness
		}
	}
	padded := grid.Box{
		Nx: global.Nx + s.padLo[0] + s.padHi[0],
		Ny: global.Ny + s.padLo[1] + s.padHi[1],
		Nz: global.Nz + s.padLo[2] + s.padHi[2],
	}
	space, err := grid.NewGlobal(s.cfg.Dx, s.cfg.Dy, s.cfg.Dz, padded.Nx, padded.Ny, padded.Nz)
	if err != nil {
		return err
	}

	s.is1D, s.is2D = dimensionality(padded)
	for _, b := range s.boundaries {
		if err := corrector.ValidateAxis(b.Face, s.is1D, s.is2D); err != nil {
			return err
		}
	}

	// step 2: per-process sub-box with one-cell internal halo.
	px, py, pz := s.cfg.Processes.NumX, s.cfg.Processes.NumY, s.cfg.Processes.NumZ
	local, origin, hasHalo, err := grid.Decompose(padded, px, py, pz, parallel.Global.Rank)
	if err != nil {
		return err
	}
	space.Local, space.Origin, space.HasHalo = local, origin, hasHalo
	s.space = space
	s.origin = origin

	dt := space.DtMax(c0(), s.cfg.Cfl)
	parallel.PanicOrNot(dt <= 0, "xfdtd: computed non-positive dt=%v", dt)

	// step 3: allocate EMF and coefficient arrays.
	s.emf = field.New(local)
	s.table = material.NewTable(local)
	s.table.FillDefault(s.cfg.Dx, s.cfg.Dy, s.cfg.Dz, dt)
	s.matGrid = material.NewIndexGrid(local)

	// step 4: stamp material index (pass 1, regular objects in add
	// order), then coefficients (pass 2): objects, then boundaries,
	// then waveform sources, then PEC planes last with index -1 (§4.5,
	// §9 "coefficient-correction sequencing").
	s.methods = make([]material.Method, len(s.objects))
	s.stampObjects(dt)

	var correctors []correctorEntry
	for _, b := range s.boundaries {
		d := cellSize(s.cfg, b.Face.Axis())
		pml, err := corrector.NewPML(b.Face, b.Thickness, local, s.emf, s.table, dt, d)
		if parallel.Stop(err, "PML construction") {
			return err
		}
		correctors = append(correctors, correctorEntry{pml, field.Global(local)})
	}

	for _, src := range s.sources {
		tfsf, fp, err := s.buildTFSF(src, dt)
		if err != nil {
			return err
		}
		if tfsf != nil {
			correctors = append(correctors, correctorEntry{tfsf, fp})
		}
	}

	for _, e := range s.lumped {
		if e.Kind == LumpedPecPlane {
			continue // applied last, below
		}
		c, fp, err := s.buildLumped(e, dt)
		if err != nil {
			return err
		}
		if c != nil {
			correctors = append(correctors, correctorEntry{c, fp})
		}
	}

	// PEC planes, index -1, always last (§4.5 step 4, §9).
	for _, e := range s.lumped {
		if e.Kind != LumpedPecPlane {
			continue
		}
		fp := s.toLocalFootprint(e.X0, e.Y0, e.Z0, e.X1, e.Y1, e.Z1)
		if fp.X.Len() <= 0 || fp.Y.Len() <= 0 || fp.Z.Len() <= 0 {
			continue
		}
		pec, err := corrector.ApplyPecPlane(e.Axis, fp, s.cfg.Dx, s.cfg.Dy, s.cfg.Dz, dt, s.table)
		if err != nil {
			return err
		}
		correctors = append(correctors, correctorEntry{pec, fp})
	}

	// step 5+6: thread decomposition, per-task Updator + intersecting correctors.
	tasks := field.Split(local, s.cfg.Threads.NumX, s.cfg.Threads.NumY, s.cfg.Threads.NumZ)
	if len(tasks) == 0 {
		return &TopologyError{Msg: "thread decomposition produced no tasks"}
	}
	if err := verifyCover(local, tasks); err != nil {
		return err
	}

	barrier := parallel.NewBarrier(len(tasks))
	s.clock = &domain.Clock{}

	var halo domain.Exchanger
	if anyHalo(hasHalo) {
		if !parallel.Global.Distr {
			return &ParallelError{Msg: "decomposition requires halo exchange but the MPI runtime is not distributed"}
		}
		halo = parallel.NewHaloExchanger(local, padded, origin, hasHalo)
	}

	dispersive := s.hasDispersive()
	assigned := make([]bool, len(correctors))
	recAssigned := make([]bool, len(s.monitors)+len(s.externals))

	s.domains = make([]*domain.Domain, 0, len(tasks))
	for i, task := range tasks {
		sides := s.updatorSidesFor(task)
		var u domain.Updator
		if dispersive {
			u = newDispersive(sides, s.methods)
		} else {
			u = s.newBasicFor(sides)
		}

		var taskCorrectors []corrector.Corrector
		for ci, c := range correctors {
			if assigned[ci] {
				continue
			}
			if !c.fp.Intersects(task) {
				continue
			}
			taskCorrectors = append(taskCorrectors, c.c)
			assigned[ci] = true
		}

		var taskMonitors []monitor.Recorder
		ri := 0
		for _, m := range s.monitors {
			fp := s.toLocalFootprint(m.X0, m.Y0, m.Z0, m.X1, m.Y1, m.Z1)
			if !recAssigned[ri] && fp.Intersects(task) {
				comp, cerr := s.componentArray(m.Component)
				if cerr == nil {
					taskMonitors = append(taskMonitors, monitor.NewFieldRecorder(m.Name, m.OutputDir, fp, comp))
					recAssigned[ri] = true
				}
			}
			ri++
		}
		for _, e := range s.externals {
			fp := s.toLocalFootprint(e.fp.X.Start, e.fp.Y.Start, e.fp.Z.Start, e.fp.X.End, e.fp.Y.End, e.fp.Z.End)
			if !recAssigned[ri] && fp.Intersects(task) {
				taskMonitors = append(taskMonitors, e.rec)
				recAssigned[ri] = true
			}
			ri++
		}

		threadZero := i == 0
		root := threadZero && parallel.Global.Root
		s.domains = append(s.domains, domain.New(u, taskCorrectors, taskMonitors, threadZero, root, s.emf, barrier, halo, s.clock))
	}

	s.built = true
	if parallel.Global.Verbose {
		io.Pfcyan("xfdtd: built simulation: local=%v dt=%e threads=%d\n", local, dt, len(tasks))
	}
	return nil
}

// Run executes N time steps across every thread's Domain concurrently
// (§4.4). At-most-once per driver (§6 "run(N)").
func (s *Simulation) Run(n int) error {
	if !s.built {
		return &TopologyError{Msg: "Run called before Build"}
	}
	if s.ran {
		return &TopologyError{Msg: "run(N) is at-most-once per driver"}
	}
	s.ran = true

	var wg sync.WaitGroup
	wg.Add(len(s.domains))
	for _, d := range s.domains {
		d := d
		go func() {
			defer wg.Done()
			d.Run(n)
		}()
	}
	wg.Wait()

	for _, d := range s.domains {
		for _, m := range d.Monitors {
			if err := m.Output(); err != nil {
				return err
			}
		}
	}
	return nil
}

func anyHalo(h [3][2]bool) bool {
	for _, axis := range h {
		for _, v := range axis {
			if v {
				return true
			}
		}
	}
	return false
}

// dimensionality reports whether the padded global box is effectively
// 1-D or 2-D (a single cell on two, resp. one, axis), used only to
// validate PML axis placement (§9 open question (a): "do not guess;
// reject at init").
func dimensionality(b grid.Box) (is1D, is2D bool) {
	n := 0
	if b.Nx > 1 {
		n++
	}
	if b.Ny > 1 {
		n++
	}
	if b.Nz > 1 {
		n++
	}
	return n == 1, n == 2
}

func cellSize(cfg Config, axis grid.Axis) float64 {
	switch axis {
	case grid.X:
		return cfg.Dx
	case grid.Y:
		return cfg.Dy
	default:
		return cfg.Dz
	}
}

func verifyCover(local grid.Box, tasks []field.Task) error {
	total := local.Nx * local.Ny * local.Nz
	sum := 0
	for _, t := range tasks {
		sum += t.X.Len() * t.Y.Len() * t.Z.Len()
	}
	if sum != total {
		return &TopologyError{Msg: "thread task decomposition does not exactly cover the local grid"}
	}
	return nil
}

// correctorEntry pairs a built corrector with the footprint it owns, so
// Build can assign it to exactly one intersecting thread task (§5
// "Decomposition policy": "single-threaded corrector execution").
type correctorEntry struct {
	c  corrector.Corrector
	fp field.Task
}
