// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package monitor implements the passive, read-only field taps sampled
// once at the end of every step (§4.5 "addMonitor ... contract is
// read-only sampling"). A Recorder never mutates the engine's state;
// it copies the cells in its footprint into its own buffer and, on
// request, flushes that buffer as an array-dump file (§6 "Persisted
// output").
package monitor

import (
	"encoding/binary"
	"os"
	"path"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/xfdtd/field"
)

// Recorder is a passive tap: Sample is called once per step with the
// current step index, Output flushes accumulated samples to disk.
// Output must be idempotent and must write no state back into the
// engine (§6).
type Recorder interface {
	Sample(step int)
	Output() error
}

// FieldRecorder records one E or H component over a footprint, one
// row per sampled step (grounded on
// original_source/src/monitor/field_time_monitor.cpp's update(), which
// copies emf->field(component) into a time-indexed buffer every step).
type FieldRecorder struct {
	Name      string
	OutputDir string

	fp   field.Task
	comp field.Array3

	rows [][]float64 // one row per recorded step, flattened footprint order
}

// NewFieldRecorder builds a recorder over fp of the given field
// component array (one of EMF's six Array3 fields).
func NewFieldRecorder(name, outputDir string, fp field.Task, comp field.Array3) *FieldRecorder {
	return &FieldRecorder{Name: name, OutputDir: outputDir, fp: fp, comp: comp}
}

// Sample copies every cell in the footprint into a new row. step is not
// stored; the row order is implied by append order, matching the
// driver's monotonic time counter.
func (o *FieldRecorder) Sample(step int) {
	row := make([]float64, 0, o.fp.X.Len()*o.fp.Y.Len()*o.fp.Z.Len())
	for i := o.fp.X.Start; i < o.fp.X.End; i++ {
		for j := o.fp.Y.Start; j < o.fp.Y.End; j++ {
			for k := o.fp.Z.Start; k < o.fp.Z.End; k++ {
				row = append(row, o.comp[i][j][k])
			}
		}
	}
	o.rows = append(o.rows, row)
}

// Output writes the accumulated samples as an array-dump: a text shape
// header (nsteps, nx, ny, nz) followed by the raw row-major IEEE-754
// payload (§6 "Persisted output"). It is safe to call more than once;
// each call rewrites the same file from the current buffer.
func (o *FieldRecorder) Output() error {
	if err := os.MkdirAll(o.OutputDir, 0755); err != nil {
		return err
	}
	fn := path.Join(o.OutputDir, utl.Sf("%s.dump", o.Name))
	fil, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer fil.Close()

	nx, ny, nz := o.fp.X.Len(), o.fp.Y.Len(), o.fp.Z.Len()
	io.Ff(fil, "%d %d %d %d\n", len(o.rows), nx, ny, nz)

	for _, row := range o.rows {
		if err := binary.Write(fil, binary.LittleEndian, row); err != nil {
			return err
		}
	}
	return nil
}
