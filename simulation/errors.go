// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulation

// TopologyError reports a structurally invalid decomposition or object
// registration (§7 "Topology"): an empty object list, a run with no
// master domain, or a thread-task decomposition that leaves a hole or
// an overlap in the local grid's cover.
type TopologyError struct{ Msg string }

func (e *TopologyError) Error() string { return e.Msg }

// ParallelError reports an inconsistency in the MPI substrate (§7
// "Parallel substrate"): Build returns it when the decomposition needs
// a halo exchange but the MPI runtime is not distributed. The core has
// no partial-result recovery for these; they are fatal for the whole
// job.
type ParallelError struct{ Msg string }

func (e *ParallelError) Error() string { return e.Msg }
