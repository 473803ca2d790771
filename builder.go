// Package hopgo provides an embedded Hopfield associative memory.
//
// This file implements the fluent builder API for constructing Network instances.
// The builder is immutable - each method returns a new builder with the updated
// configuration.
package hopgo

import (
	"log/slog"

	"github.com/hupe1980/hopgo/resource"
)

// NewBuilder creates a new network builder with the specified dimension.
//
// The builder is immutable - each method returns a new builder with the updated
// configuration. This ensures thread-safety and prevents accidental state sharing.
//
// Example:
//
//	net, err := hopgo.NewBuilder(64).
//	    Workers(4).
//	    Normalize(true).
//	    Build()
func NewBuilder(dimension int) Builder {
	return Builder{
		dimension: dimension,
	}
}

// Builder is an immutable fluent builder for creating Network instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	dimension int
	workers   int
	normalize bool
	logger    *Logger
	logLevel  *slog.Level
	metrics   MetricsCollector
	resources *resource.Config
}

// Workers sets the number of worker goroutines used for training and
// synchronous recall. Defaults to runtime.NumCPU().
func (b Builder) Workers(n int) Builder {
	b.workers = n
	return b
}

// Normalize enables division of the weight matrix by the dimension
// after training.
func (b Builder) Normalize(on bool) Builder {
	b.normalize = on
	return b
}

// Logger sets a custom logger for the network.
func (b Builder) Logger(logger *Logger) Builder {
	b.logger = logger
	return b
}

// LogLevel enables text logging at the given level.
func (b Builder) LogLevel(level slog.Level) Builder {
	b.logLevel = &level
	return b
}

// Metrics sets a metrics collector for the network.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Resources sets limits for concurrent recalls and snapshot IO bandwidth.
func (b Builder) Resources(cfg resource.Config) Builder {
	b.resources = &cfg
	return b
}

// Build creates the Network from the builder configuration.
func (b Builder) Build() (*Network, error) {
	optFns := make([]Option, 0, 6)

	if b.workers > 0 {
		optFns = append(optFns, WithWorkers(b.workers))
	}

	if b.normalize {
		optFns = append(optFns, WithNormalization(true))
	}

	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	} else if b.logLevel != nil {
		optFns = append(optFns, WithLogLevel(*b.logLevel))
	}

	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}

	if b.resources != nil {
		optFns = append(optFns, WithResourceConfig(*b.resources))
	}

	return New(b.dimension, optFns...)
}
