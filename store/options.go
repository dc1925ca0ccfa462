package store

import (
	"time"

	"github.com/arloliu/teamdraw/internal/logger"
	"github.com/arloliu/teamdraw/internal/metrics"
	"github.com/arloliu/teamdraw/types"
)

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
	clock   func() time.Time
}

func defaultOptions() storeOptions {
	return storeOptions{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
		clock:   time.Now,
	}
}

// WithLogger sets the store logger.
func WithLogger(l types.Logger) Option {
	return func(o *storeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector for publish, clear and dropped events.
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *storeOptions) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithClock overrides the time source used for PublishedAt.
func WithClock(clock func() time.Time) Option {
	return func(o *storeOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}
