// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain implements the fixed fourteen-step per-step sequence
// every thread (Domain) executes in lock-step (§4.4): updateH,
// correctH, exchange H halos, updateE, correctE, record, advance the
// time counter. See DESIGN.md for why Step issues seven thread-barrier
// waits rather than the three named in §5's summary paragraph.
package domain

import (
	"github.com/cpmech/xfdtd/corrector"
	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/monitor"
	"github.com/cpmech/xfdtd/parallel"
)

// Domain owns one thread's sub-task: its updator, the correctors whose
// footprint intersects the task, and the monitors sampling from it
// (§3 "Ownership": each domain exclusively owns its updator and
// corrector list; nothing here is shared except through the barrier,
// the halo exchanger, and the process-shared EMF arrays).
type Domain struct {
	Updator    Updator
	Correctors []corrector.Corrector
	Monitors   []monitor.Recorder

	// ThreadZero is true for exactly one Domain per process: the one
	// driving task 0. Every process' thread zero posts that process'
	// own halo exchange (§4.4 step 5) — halo exchange is a collective
	// over every rank, not a rank-0-only action.
	ThreadZero bool

	// Root is true for exactly one Domain job-wide: thread zero of MPI
	// rank 0. Only the root advances the shared time counter (§4.4
	// "The master domain").
	Root bool

	EMF     *field.EMF // process-shared field state, read by Exchange on ThreadZero
	Barrier *parallel.Barrier
	Halo    Exchanger // nil unless running distributed; only ThreadZero calls it
	Clock   *Clock    // shared step counter; only Root advances it
}

// Updator is the subset of updator.Updator a Domain drives each step.
type Updator interface {
	UpdateH()
	UpdateE()
}

// Exchanger is the subset of *parallel.HaloExchanger a Domain drives at
// step (5): refresh the process' one-cell H halo in place. Declared here
// rather than referencing *parallel.HaloExchanger directly so tests can
// substitute a fake that records what it observed, without reaching into
// gosl/mpi (see domain_test.go).
type Exchanger interface {
	Exchange(*field.EMF)
}

// Clock is the shared step counter the master Domain alone advances
// (§4.4 step 13). Monitors read Step() to label their samples.
type Clock struct {
	step int
}

// Step returns the current step index.
func (c *Clock) Step() int { return c.step }

func (c *Clock) advance() { c.step++ }

// New builds a Domain for one thread's task. threadZero marks the task
// that drives this process' own halo exchange; root additionally marks
// the single job-wide Domain that owns the shared Clock.
func New(u Updator, correctors []corrector.Corrector, monitors []monitor.Recorder, threadZero, root bool, emf *field.EMF, barrier *parallel.Barrier, halo Exchanger, clock *Clock) *Domain {
	return &Domain{
		Updator:    u,
		Correctors: correctors,
		Monitors:   monitors,
		ThreadZero: threadZero,
		Root:       root,
		EMF:        emf,
		Barrier:    barrier,
		Halo:       halo,
		Clock:      clock,
	}
}

// Step runs the fixed fourteen-step sequence once (§4.4):
//
//	(1) updateH -> (2) thread-barrier -> (3) correctH ->
//	(4) process-sync -> (5) exchangeH -> (6) process-sync ->
//	(7) updateE -> (8) thread-barrier -> (9) correctE ->
//	(10) thread-barrier -> (11) record -> (12) process-sync ->
//	(13) advance time (master only) -> (14) thread-barrier.
//
// Steps (4) and (6) are each a real thread-barrier wait, not folded
// away: (4) is load-bearing because it guarantees every thread's
// CorrectH has landed on the process' outer-face cells before thread
// zero reads and publishes them into the collective halo exchange at
// (5); (6) is load-bearing because it guarantees the halo exchange has
// finished refreshing those cells before any thread (including
// sibling threads that never touch the halo themselves) starts
// updateE at (7), which reads across task boundaries.
func (d *Domain) Step() {
	d.Updator.UpdateH()
	d.Barrier.Wait()

	for _, c := range d.Correctors {
		c.CorrectH()
	}
	d.Barrier.Wait()

	if d.ThreadZero && d.Halo != nil {
		d.Halo.Exchange(d.EMF)
	}
	d.Barrier.Wait()

	d.Updator.UpdateE()
	d.Barrier.Wait()

	for _, c := range d.Correctors {
		c.CorrectE()
	}
	d.Barrier.Wait()

	step := 0
	if d.Clock != nil {
		step = d.Clock.Step()
	}
	for _, m := range d.Monitors {
		m.Sample(step)
	}
	d.Barrier.Wait()

	if d.Root && d.Clock != nil {
		d.Clock.advance()
	}
	d.Barrier.Wait()
}

// Run executes n steps in sequence, once per call to Step.
func (d *Domain) Run(n int) {
	for i := 0; i < n; i++ {
		d.Step()
	}
}
