// Package mat provides dense float64 matrix and vector kernels for the
// Hopfield engine. This is an internal package - external users should use
// the hopgo, hebbian and energy packages.
package mat
