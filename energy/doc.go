// Package energy provides the Hopfield energy function and per-unit
// energy diagnostics.
//
// The energy E(s) = -½ sᵀWs + biasᵀs is a Lyapunov function of the
// network: it is non-increasing under sequential asynchronous updates
// for any symmetric, zero-diagonal weight matrix. Its local minima are
// the retrievable states.
//
// All functions are pure: they never mutate the weight matrix, the bias
// or the state.
package energy
