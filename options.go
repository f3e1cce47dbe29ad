package panacus

import "github.com/codialab/panacus/cluster"

type options struct {
	logger      *Logger
	parallelism int
	linkage     cluster.Linkage
}

// Option configures the facade.
type Option func(*options)

// WithLogger configures structured logging. Pass nil to keep logging
// disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithParallelism bounds worker counts for the counting and growth passes.
// Values <= 0 mean one worker per CPU. Results are identical for any
// value; this is purely a resource knob.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithLinkage selects the clustering linkage policy OptimizeOrder uses.
// Default is average linkage.
func WithLinkage(link cluster.Linkage) Option {
	return func(o *options) { o.linkage = link }
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  NoopLogger(),
		linkage: cluster.LinkageAverage,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
