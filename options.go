package teamdraw

import (
	"math/rand/v2"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/teamdraw/store"
)

// Option configures a Manager with optional dependencies.
type Option func(*managerOptions)

// managerOptions holds optional Manager configuration.
type managerOptions struct {
	strategy AllocationStrategy
	source   RosterSource
	store    *store.Store
	rng      *rand.Rand
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
	conn     *nats.Conn
	kv       jetstream.KeyValue
}

// WithStrategy sets the allocation strategy, overriding Config.Strategy.
//
// Parameters:
//   - s: AllocationStrategy implementation
//
// Returns:
//   - Option: Functional option for NewManager
//
// Example:
//
//	mgr, err := teamdraw.NewManager(&cfg, teamdraw.WithStrategy(strategy.NewRoundRobin()))
func WithStrategy(s AllocationStrategy) Option {
	return func(o *managerOptions) {
		o.strategy = s
	}
}

// WithRosterSource sets the source Draw loads people from.
//
// Parameters:
//   - src: RosterSource implementation
//
// Returns:
//   - Option: Functional option for NewManager
//
// Example:
//
//	mgr, err := teamdraw.NewManager(&cfg, teamdraw.WithRosterSource(source.NewFile("roster.yaml")))
func WithRosterSource(src RosterSource) Option {
	return func(o *managerOptions) {
		o.source = src
	}
}

// WithStore sets the published result store.
//
// By default every Manager gets its own store; pass store.Default() to share
// the process-wide one.
func WithStore(s *store.Store) Option {
	return func(o *managerOptions) {
		o.store = s
	}
}

// WithRand sets the random source used for every draw, overriding Config.Seed.
//
// The Manager serializes access to r, so it must not be shared with other users.
func WithRand(r *rand.Rand) Option {
	return func(o *managerOptions) {
		o.rng = r
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewManager
//
// Example:
//
//	hooks := &teamdraw.Hooks{
//	    OnPublished: func(ctx context.Context, version int64, p teamdraw.Partition) error {
//	        return announce(ctx, version, p)
//	    },
//	}
//	mgr, err := teamdraw.NewManager(&cfg, teamdraw.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *managerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewManager
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *managerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (message plus key-value pairs)
//
// Returns:
//   - Option: Functional option for NewManager
//
// Example:
//
//	// appLogger wraps the application's logger with Debug/Info/Warn/Error/Fatal(msg, kv...)
//	mgr, err := teamdraw.NewManager(&cfg, teamdraw.WithLogger(appLogger))
func WithLogger(logger Logger) Option {
	return func(o *managerOptions) {
		o.logger = logger
	}
}

// WithNATS enables the KV mirror over conn.
//
// Start creates the Config.Mirror bucket when it does not exist yet.
func WithNATS(conn *nats.Conn) Option {
	return func(o *managerOptions) {
		o.conn = conn
	}
}

// WithKeyValue enables the KV mirror on an already opened bucket.
//
// Takes precedence over WithNATS; Config.Mirror.Bucket is then ignored.
func WithKeyValue(kv jetstream.KeyValue) Option {
	return func(o *managerOptions) {
		o.kv = kv
	}
}
