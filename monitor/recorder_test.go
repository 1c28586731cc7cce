// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import (
	"encoding/binary"
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/xfdtd/field"
	"github.com/cpmech/xfdtd/grid"
)

func Test_recorder01(tst *testing.T) {
	chk.PrintTitle("recorder01")

	local := grid.Box{Nx: 2, Ny: 2, Nz: 2}
	emf := field.New(local)
	emf.Ez[0][0][0] = 1.5
	emf.Ez[1][0][0] = 2.5

	fp := field.Task{X: field.Range{Start: 0, End: 2}, Y: field.Range{Start: 0, End: 1}, Z: field.Range{Start: 0, End: 1}}
	dir, err := os.MkdirTemp("", "xfdtd_recorder")
	if err != nil {
		tst.Fatalf("MkdirTemp failed: %v", err)
	}
	defer os.RemoveAll(dir)

	rec := NewFieldRecorder("ez_probe", dir, fp, emf.Ez)
	rec.Sample(0)
	emf.Ez[0][0][0] = 9.0
	rec.Sample(1)

	chk.IntAssert(len(rec.rows), 2)
	chk.Scalar(tst, "row0[0]", 1e-15, rec.rows[0][0], 1.5)
	chk.Scalar(tst, "row1[0]", 1e-15, rec.rows[1][0], 9.0)

	if err := rec.Output(); err != nil {
		tst.Fatalf("Output failed: %v", err)
	}

	fn := path.Join(dir, "ez_probe.dump")
	fil, err := os.Open(fn)
	if err != nil {
		tst.Fatalf("dump file missing: %v", err)
	}
	defer fil.Close()

	var nsteps, nx, ny, nz int
	if _, err := fmt.Fscan(fil, &nsteps, &nx, &ny, &nz); err != nil {
		tst.Fatalf("header read failed: %v", err)
	}
	chk.IntAssert(nsteps, 2)
	chk.IntAssert(nx, 2)
	chk.IntAssert(ny, 1)
	chk.IntAssert(nz, 1)

	// seek back over the whole binary payload (nsteps rows of nx*ny*nz
	// values) to its first value, just past the header's trailing newline
	if _, err := fil.Seek(-int64(binary.Size(float64(0)))*int64(nsteps*nx*ny*nz), os.SEEK_END); err != nil {
		tst.Fatalf("seek failed: %v", err)
	}
	var first float64
	if err := binary.Read(fil, binary.LittleEndian, &first); err != nil {
		tst.Fatalf("payload read failed: %v", err)
	}
	chk.Scalar(tst, "dumped row0[0]", 1e-15, first, 1.5)
}
