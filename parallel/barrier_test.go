// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_barrier01(tst *testing.T) {
	chk.PrintTitle("barrier01")

	const n = 8
	const steps = 50
	b := NewBarrier(n)

	var counter int64
	var wg sync.WaitGroup
	wg.Add(n)
	for t := 0; t < n; t++ {
		go func() {
			defer wg.Done()
			for s := 0; s < steps; s++ {
				atomic.AddInt64(&counter, 1)
				b.Wait()
				// every thread must observe the full round's increments
				if got := atomic.LoadInt64(&counter); got != int64(n*(s+1)) {
					tst.Errorf("step %d: expected counter %d, got %d", s, n*(s+1), got)
				}
				b.Wait()
			}
		}()
	}
	wg.Wait()
}
