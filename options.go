package logview

import (
	"go.uber.org/zap"

	"github.com/coregx/logview/internal/parallel"
)

// DefaultParallelThreshold is the content size in bytes from which New builds
// the line index in parallel.
const DefaultParallelThreshold = 64 << 10

// Option configures a Buffer.
type Option func(*options)

type options struct {
	parallelism int
	threshold   int
	logger      *zap.Logger
}

func defaultOptions() options {
	return options{
		parallelism: parallel.Workers(),
		threshold:   DefaultParallelThreshold,
		logger:      zap.NewNop(),
	}
}

// WithParallelism sets the number of goroutines used to index content and by
// ParMap. Values below 1 are ignored.
func WithParallelism(p int) Option {
	return func(o *options) {
		if p > 0 {
			o.parallelism = p
		}
	}
}

// WithParallelThreshold sets the content size from which the line index is
// built in parallel. A negative value disables parallel indexing.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.threshold = n
	}
}

// WithLogger sets the logger used for construction diagnostics. A nil logger
// is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
