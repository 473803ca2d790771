// Package engine implements the Hopfield update dynamics as a small state
// machine: a state iterates under synchronous or asynchronous updates until
// it reaches a fixed point or exhausts its iteration budget.
//
// Synchronous steps are embarrassingly parallel and are partitioned across
// a fixed worker pool, with a barrier between steps. Classical asynchronous
// sweeps are inherently sequential; ModeAsyncBlocked is an explicitly
// relaxed variant that updates independent neuron blocks in parallel from a
// sweep-start snapshot, for which energy descent holds per block rather
// than per neuron.
package engine
