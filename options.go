package hopgo

import (
	"log/slog"

	"github.com/hupe1980/hopgo/resource"
)

type options struct {
	workers          int
	normalize        bool
	logger           *Logger
	metricsCollector MetricsCollector
	resources        *resource.Controller
}

// Option configures Network construction behavior.
type Option func(*options)

// WithWorkers fixes the size of the worker pool shared by training and
// synchronous recall. If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithNormalization divides trained weight matrices by the network
// dimension, for numerical-scale parity with the literature. It does not
// affect which states recall converges to, only the energy scale; the
// same matrix is used for recall and energy so the two always agree.
func WithNormalization(on bool) Option {
	return func(o *options) {
		o.normalize = on
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithResourceConfig bounds batch recall concurrency and snapshot IO
// throughput.
func WithResourceConfig(cfg resource.Config) Option {
	return func(o *options) {
		o.resources = resource.NewController(cfg)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
