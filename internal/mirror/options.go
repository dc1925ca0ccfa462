package mirror

import (
	"time"

	"github.com/arloliu/teamdraw/internal/logger"
	"github.com/arloliu/teamdraw/internal/metrics"
	"github.com/arloliu/teamdraw/types"
)

// DefaultOperationTimeout bounds a single KV operation.
const DefaultOperationTimeout = 5 * time.Second

// Option configures a Publisher or Follower.
type Option func(*options)

type options struct {
	logger  types.Logger
	metrics types.MetricsCollector
	timeout time.Duration
}

func newOptions(opts []Option) options {
	o := options{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
		timeout: DefaultOperationTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger.
func WithLogger(l types.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithOperationTimeout bounds each KV call (values <= 0 keep the default).
func WithOperationTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}
