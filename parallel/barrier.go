// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import "sync"

// Barrier is a reusable counting barrier for the T OS threads of one
// process (§5 "threads ... cooperate through a shared counting
// barrier"). Unlike sync.WaitGroup it can be waited on repeatedly,
// once per step, without being rebuilt.
type Barrier struct {
	n     int
	mu    sync.Mutex
	cond  *sync.Cond
	count int
	gen   int
}

// NewBarrier builds a barrier for n participating threads.
func NewBarrier(n int) *Barrier {
	b := &Barrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until all n threads have called Wait for the current
// generation, then releases them together (§5 "Suspension points").
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.count++
	if b.count == b.n {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
}
