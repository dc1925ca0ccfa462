package teamdraw

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/teamdraw/fuzzy"
	"github.com/arloliu/teamdraw/internal/hooks"
	"github.com/arloliu/teamdraw/internal/kvutil"
	"github.com/arloliu/teamdraw/internal/logger"
	"github.com/arloliu/teamdraw/internal/metrics"
	"github.com/arloliu/teamdraw/internal/mirror"
	"github.com/arloliu/teamdraw/normalize"
	"github.com/arloliu/teamdraw/store"
	"github.com/arloliu/teamdraw/strategy"
)

// Manager runs a team draw: it allocates the roster, publishes the result and
// answers participant lookups.
//
// The organizer works on a draft (the current partition) that participants
// cannot see until Publish. Lookups always read the published snapshot, so a
// new draw never disturbs participants who are looking up their team.
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Lookups never block on writers
//   - Publish and Clear are serialized with each other
//
// Lifecycle:
//   - Create with NewManager()
//   - Draw() or Allocate() to produce a draft, Publish() to expose it
//   - With a mirror, Start() follows the shared bucket and Stop() ends that
type Manager struct {
	cfg      Config
	strategy AllocationStrategy
	source   RosterSource
	store    *store.Store
	matcher  *fuzzy.Matcher

	hooks   *hooks.Dispatcher
	metrics MetricsCollector
	logger  Logger

	conn *nats.Conn
	kv   jetstream.KeyValue

	rngMu sync.Mutex
	rng   *rand.Rand

	// mu guards current and publisher and serializes Publish/Clear.
	mu        sync.Mutex
	current   *Partition
	publisher *mirror.Publisher
	state     atomic.Int32

	lifeMu     sync.Mutex
	stopFollow context.CancelFunc
	followDone chan struct{}
}

// NewManager creates a new Manager instance with the provided configuration.
//
// Missing configuration values are filled with defaults. The strategy comes from
// WithStrategy or, failing that, Config.Strategy; the random source from
// WithRand or Config.Seed.
//
// Parameters:
//   - cfg: Configuration (defaults are applied in place)
//   - opts: Optional dependencies (roster source, store, hooks, metrics, logger, NATS)
//
// Returns:
//   - *Manager: Initialized manager in StateIdle
//   - error: ErrInvalidConfig wrapping the validation failure
//
// Example:
//
//	cfg := teamdraw.DefaultConfig()
//	mgr, err := teamdraw.NewManager(&cfg,
//	    teamdraw.WithRosterSource(source.NewFile("roster.yaml")),
//	    teamdraw.WithLogger(logger),
//	)
func NewManager(cfg *Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	options := &managerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	allocator := options.strategy
	if allocator == nil {
		var err error
		if allocator, err = strategy.New(cfg.Strategy); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	matcher, err := fuzzy.NewMatcher(
		fuzzy.WithMaxResults(cfg.Suggestions.MaxResults),
		fuzzy.WithMinSimilarity(cfg.Suggestions.MinSimilarity),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	rng := options.rng
	if rng == nil {
		rng = strategy.NewRand(cfg.Seed)
	}

	resultStore := options.store
	if resultStore == nil {
		resultStore = store.New(store.WithLogger(loggerInstance), store.WithMetrics(metricsCollector))
	}

	m := &Manager{
		cfg:      *cfg,
		strategy: allocator,
		source:   options.source,
		store:    resultStore,
		matcher:  matcher,
		hooks:    hooks.NewDispatcher(options.hooks, loggerInstance),
		metrics:  metricsCollector,
		logger:   loggerInstance,
		conn:     options.conn,
		kv:       options.kv,
		rng:      rng,
	}
	m.state.Store(int32(StateIdle))

	return m, nil
}

// Draw loads the roster from the configured source and allocates it.
//
// Parameters:
//   - ctx: Context for the roster load
//   - teams: Team count (Config.DefaultTeams when <= 0)
//
// Returns:
//   - Partition: The new draft
//   - error: ErrRosterSourceRequired, a roster load error, or an Allocate error
func (m *Manager) Draw(ctx context.Context, teams int) (Partition, error) {
	if m.source == nil {
		return Partition{}, ErrRosterSourceRequired
	}

	if teams <= 0 {
		teams = m.cfg.DefaultTeams
	}

	people, err := m.source.LoadRoster(ctx)
	if err != nil {
		m.hooks.Error(ctx, err)
		return Partition{}, fmt.Errorf("failed to load roster: %w", err)
	}

	return m.Allocate(ctx, people, teams)
}

// Allocate partitions people into teams and makes the result the current draft.
//
// The published snapshot is not touched; call Publish to expose the draft.
// An empty roster is not an error and yields empty teams.
//
// Parameters:
//   - ctx: Context passed to hooks
//   - people: Roster to allocate (not modified)
//   - teams: Team count within [Config.MinTeams, Config.MaxTeams]
//
// Returns:
//   - Partition: Copy of the new draft
//   - error: ErrTeamCountOutOfRange, or a strategy error
func (m *Manager) Allocate(ctx context.Context, people []Person, teams int) (Partition, error) {
	if teams < m.cfg.MinTeams || teams > m.cfg.MaxTeams {
		return Partition{}, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrTeamCountOutOfRange, teams, m.cfg.MinTeams, m.cfg.MaxTeams)
	}

	if err := ctx.Err(); err != nil {
		return Partition{}, err
	}

	m.rngMu.Lock()
	start := time.Now()
	partition, err := m.strategy.Allocate(people, teams, m.rng)
	elapsed := time.Since(start)
	m.rngMu.Unlock()

	if err != nil {
		m.hooks.Error(ctx, err)
		return Partition{}, fmt.Errorf("allocation failed: %w", err)
	}

	m.metrics.RecordAllocation(strategy.Name(m.strategy), teams, len(people), elapsed.Seconds())
	m.logger.Info("roster allocated",
		"strategy", strategy.Name(m.strategy),
		"teams", teams,
		"people", len(people),
		"sizes", partition.Sizes(),
		"duration", elapsed,
	)

	draft := partition.Clone()
	m.mu.Lock()
	m.current = &draft
	from := m.swapState(StateDrafted)
	m.mu.Unlock()

	m.hooks.StateChanged(ctx, from, StateDrafted)
	m.hooks.Allocated(ctx, partition.Clone())

	return partition, nil
}

// Current returns a copy of the current draft.
//
// Returns:
//   - Partition: The draft (zero value if none)
//   - bool: false when nothing has been allocated yet
func (m *Manager) Current() (Partition, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return Partition{}, false
	}

	return m.current.Clone(), true
}

// Publish makes the current draft visible to participants.
//
// The local store is updated first. When a mirror is running the snapshot is
// then written to the bucket; if that write fails the local publish stays in
// place and the error wraps ErrPublishFailed.
//
// Parameters:
//   - ctx: Context for the mirror write and hooks
//
// Returns:
//   - *Snapshot: The published snapshot (non-nil whenever the local publish happened)
//   - error: ErrNothingToPublish, or ErrPublishFailed from the mirror
func (m *Manager) Publish(ctx context.Context) (*Snapshot, error) {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return nil, ErrNothingToPublish
	}

	snap := m.store.Publish(*m.current)
	from := m.swapState(StatePublished)

	var mirrorErr error
	if m.publisher != nil {
		if err := m.publisher.Publish(ctx, snap); err != nil {
			mirrorErr = fmt.Errorf("%w: version %d: %w", ErrPublishFailed, snap.Version, err)
		}
	}
	m.mu.Unlock()

	m.hooks.StateChanged(ctx, from, StatePublished)
	m.hooks.Published(ctx, snap.Version, snap.Partition.Clone())

	if mirrorErr != nil {
		m.logger.Error("failed to mirror published snapshot", "version", snap.Version, "error", mirrorErr)
		m.hooks.Error(ctx, mirrorErr)

		return snap, mirrorErr
	}

	return snap, nil
}

// Clear withdraws the published partition; lookups report LookupNotPublished again.
//
// The draft is kept, so it can be published again. With a running mirror a
// tombstone is written so followers clear as well.
//
// Returns:
//   - bool: true if something was published before the call
//   - error: ErrClearFailed from the mirror (the local clear stays in place)
func (m *Manager) Clear(ctx context.Context) (bool, error) {
	m.mu.Lock()
	cleared := m.store.Clear()
	if !cleared {
		m.mu.Unlock()
		return false, nil
	}

	to := StateIdle
	if m.current != nil {
		to = StateDrafted
	}
	from := m.swapState(to)

	var mirrorErr error
	if m.publisher != nil {
		version := m.store.Version()
		if err := m.publisher.Clear(ctx, version); err != nil {
			mirrorErr = fmt.Errorf("%w: version %d: %w", ErrClearFailed, version, err)
		}
	}
	m.mu.Unlock()

	m.hooks.StateChanged(ctx, from, to)
	m.hooks.Cleared(ctx)

	if mirrorErr != nil {
		m.logger.Error("failed to mirror clear", "error", mirrorErr)
		m.hooks.Error(ctx, mirrorErr)

		return true, mirrorErr
	}

	return true, nil
}

// Published returns the snapshot participants currently see.
//
// Returns:
//   - *Snapshot: Published snapshot (nil when nothing is published)
//   - bool: false when nothing is published
func (m *Manager) Published() (*Snapshot, bool) {
	return m.store.Read()
}

// State returns the organizer's draw state.
func (m *Manager) State() State {
	return State(m.state.Load())
}

// Lookup answers a participant query against the published snapshot.
//
// The query may be "First Last" or "Last First" in any case, with or without
// accents. A miss carries similar names as suggestions when any are close enough.
//
// Parameters:
//   - ctx: Reserved for tracing; lookups never block
//   - query: Raw name as typed
//
// Returns:
//   - LookupResult: Found, Suggested, NoMatch or NotPublished
//
// Example:
//
//	res := mgr.Lookup(ctx, "Gorski Lukasz")
//	if res.Status == teamdraw.LookupFound {
//	    fmt.Printf("team %d: %v\n", res.TeamNumber, res.Members)
//	}
func (m *Manager) Lookup(_ context.Context, query string) LookupResult {
	var res LookupResult
	if snap, ok := m.store.Read(); ok {
		res = snap.Index().Resolve(query, m.matcher)
	} else {
		res = LookupResult{Status: LookupNotPublished, Key: LookupKey(normalize.Key(query))}
	}

	m.metrics.RecordLookup(res.Status)
	m.logger.Debug("lookup", "key", res.Key, "status", res.Status.String(), "suggestions", len(res.Suggestions))

	return res
}

// LookupKey resolves a key exactly, without suggestions.
//
// Used when a participant picks one of the suggestions a previous Lookup offered.
//
// Returns:
//   - LookupResult: Found, NoMatch or NotPublished
func (m *Manager) LookupKey(_ context.Context, key LookupKey) LookupResult {
	res := LookupResult{Status: LookupNotPublished, Key: key}

	if snap, ok := m.store.Read(); ok {
		res.Status = LookupNoMatch
		if entry, found := snap.Index().Get(key); found {
			res.Status = LookupFound
			res.TeamNumber = entry.TeamNumber
			res.Members = slices.Clone(entry.Members())
		}
	}

	m.metrics.RecordLookup(res.Status)

	return res
}

// Search returns published names containing pattern as a subsequence, best first.
//
// Parameters:
//   - pattern: Partial name
//   - limit: Maximum number of results (all when <= 0)
//
// Returns:
//   - []Suggestion: Matches (empty when nothing is published)
func (m *Manager) Search(_ context.Context, pattern string, limit int) []Suggestion {
	snap, ok := m.store.Read()
	if !ok {
		return []Suggestion{}
	}

	return snap.Index().Search(pattern, limit)
}

// Start connects the manager to the mirror bucket.
//
// It opens (or creates) the bucket, starts following it and blocks until the
// snapshot already stored there has been applied. From then on Publish and
// Clear are mirrored, and snapshots published by other organizers show up in
// this manager's lookups.
//
// Parameters:
//   - ctx: Context for startup; bounded by Config.Mirror.StartupTimeout
//
// Returns:
//   - error: ErrMirrorNotConfigured, ErrAlreadyStarted, or a bucket/watch error
func (m *Manager) Start(ctx context.Context) error {
	m.lifeMu.Lock()
	defer m.lifeMu.Unlock()

	if m.stopFollow != nil {
		return ErrAlreadyStarted
	}
	if m.kv == nil && m.conn == nil {
		return ErrMirrorNotConfigured
	}

	startupCtx, cancel := context.WithTimeout(ctx, m.cfg.Mirror.StartupTimeout)
	defer cancel()

	kv := m.kv
	if kv == nil {
		var err error
		if kv, err = m.ensureBucket(startupCtx); err != nil {
			return err
		}
	}

	mirrorOpts := []mirror.Option{
		mirror.WithLogger(m.logger),
		mirror.WithMetrics(m.metrics),
		mirror.WithOperationTimeout(m.cfg.Mirror.OperationTimeout),
	}
	follower := mirror.NewFollower(kv, m.cfg.Mirror.Key, m.store, mirrorOpts...)

	followCtx, stopFollow := context.WithCancel(context.Background())
	done := make(chan struct{})
	runErr := make(chan error, 1)
	go func() {
		defer close(done)
		if err := follower.Run(followCtx); err != nil {
			m.logger.Error("mirror follower stopped", "bucket", kv.Bucket(), "error", err)
			m.hooks.Error(followCtx, err)
			runErr <- err
		}
	}()

	select {
	case <-follower.Ready():
	case err := <-runErr:
		stopFollow()
		return fmt.Errorf("failed to follow %s: %w", kv.Bucket(), err)
	case <-startupCtx.Done():
		stopFollow()
		<-done

		return fmt.Errorf("waiting for %s replay: %w", kv.Bucket(), startupCtx.Err())
	}

	// The replay already raised the local version when the stored record was
	// valid. A rejected record still claims its version.
	publisher := mirror.NewPublisher(kv, m.cfg.Mirror.Key, mirrorOpts...)
	if floor, err := publisher.DiscoverVersion(startupCtx); err != nil {
		m.logger.Warn("could not read stored version", "bucket", kv.Bucket(), "error", err)
	} else {
		m.store.SetVersionFloor(floor)
	}

	m.mu.Lock()
	m.publisher = publisher
	m.mu.Unlock()

	m.stopFollow = stopFollow
	m.followDone = done
	m.logger.Info("mirror started", "bucket", kv.Bucket(), "key", m.cfg.Mirror.Key, "version", m.store.Version())

	return nil
}

// Stop ends mirroring and waits for the follower to exit.
//
// The published snapshot stays in the local store. Start may be called again.
//
// Parameters:
//   - ctx: Context for shutdown timeout
//
// Returns:
//   - error: ErrNotStarted, or ctx.Err() when the follower did not exit in time
func (m *Manager) Stop(ctx context.Context) error {
	m.lifeMu.Lock()
	defer m.lifeMu.Unlock()

	if m.stopFollow == nil {
		return ErrNotStarted
	}

	m.mu.Lock()
	m.publisher = nil
	m.mu.Unlock()

	m.stopFollow()
	m.stopFollow = nil

	select {
	case <-m.followDone:
		m.logger.Info("mirror stopped")
		return nil
	case <-ctx.Done():
		m.logger.Error("shutdown timeout exceeded, mirror follower may still be running")
		return ctx.Err()
	}
}

// swapState stores to and returns the previous state. Callers hold m.mu.
func (m *Manager) swapState(to State) State {
	from := State(m.state.Swap(int32(to))) //nolint:gosec // State values are a small controlled enum
	if from != to {
		m.logger.Info("state transition", "from", from.String(), "to", to.String())
	}

	return from
}

// ensureBucket opens or creates the mirror bucket.
func (m *Manager) ensureBucket(ctx context.Context) (jetstream.KeyValue, error) {
	js, err := jetstream.New(m.conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	const maxRetries = 5
	cfg := kvutil.PublishedBucketConfig(m.cfg.Mirror.Bucket, m.cfg.Mirror.Replicas)
	kv, err := kvutil.EnsureKVBucketWithRetry(ctx, js, cfg, maxRetries)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrConnectivity, err)
		}

		return nil, fmt.Errorf("failed to create/open KV bucket %s: %w", m.cfg.Mirror.Bucket, err)
	}

	return kv, nil
}
