package teamdraw

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/teamdraw/internal/metrics"
	"github.com/arloliu/teamdraw/source"
	"github.com/arloliu/teamdraw/strategy"
	drawtest "github.com/arloliu/teamdraw/testing"
	"github.com/arloliu/teamdraw/types"
)

func officeRoster() []Person {
	return []Person{
		types.NewPerson("Łukasz", "Górski", "Engineer", "Engineering", "1"),
		types.NewPerson("Anna", "Nowak", "Engineer", "Engineering", "2"),
		types.NewPerson("Piotr", "Wiśniewski", "Architect", "Engineering", "3"),
		types.NewPerson("Marta", "Zielińska", "Engineer", "Engineering", "4"),
		types.NewPerson("Jan", "Kowalski", "Account Manager", "Sales", "5"),
		types.NewPerson("Ewa", "Wójcik", "Account Manager", "Sales", "6"),
		types.NewPerson("Tomasz", "Kamiński", "Sales Lead", "Sales", "7"),
		types.NewPerson("Agnieszka", "Lewandowska", "Account Manager", "Sales", "8"),
		types.NewPerson("Katarzyna", "Dąbrowska", "Recruiter", "HR", "9"),
		types.NewPerson("Michał", "Szymański", "Recruiter", "HR", "10"),
		types.NewPerson("Zofia", "Woźniak", "HR Partner", "HR", "11"),
		types.NewPerson("Paweł", "Kozłowski", "HR Partner", "HR", "12"),
	}
}

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()

	cfg := TestConfig()
	opts = append([]Option{
		WithRosterSource(source.NewStatic(officeRoster())),
		WithLogger(drawtest.NewTestLogger(t)),
	}, opts...)

	mgr, err := NewManager(&cfg, opts...)
	require.NoError(t, err)

	return mgr
}

type hookRecorder struct {
	mu     sync.Mutex
	events []string
	states [][2]State
	errs   []error
}

func (r *hookRecorder) hooks() *Hooks {
	record := func(name string) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, name)
	}

	return &Hooks{
		OnAllocated: func(context.Context, Partition) error {
			record("allocated")
			return nil
		},
		OnPublished: func(context.Context, int64, Partition) error {
			record("published")
			return nil
		},
		OnCleared: func(context.Context) error {
			record("cleared")
			return errors.New("hook failures are only logged")
		},
		OnStateChanged: func(_ context.Context, from, to State) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.states = append(r.states, [2]State{from, to})

			return nil
		},
		OnError: func(_ context.Context, err error) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.errs = append(r.errs, err)

			return nil
		},
	}
}

type lookupCounter struct {
	metrics.NopMetrics
	mu       sync.Mutex
	statuses map[LookupStatus]int
}

func (c *lookupCounter) RecordLookup(status LookupStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.statuses == nil {
		c.statuses = make(map[LookupStatus]int)
	}
	c.statuses[status]++
}

func TestNewManager(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewManager(nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxTeams = 1
		_, err := NewManager(&cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cfg := Config{Strategy: "by-height"}
		_, err := NewManager(&cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("applies defaults", func(t *testing.T) {
		cfg := Config{}
		mgr, err := NewManager(&cfg)
		require.NoError(t, err)
		require.Equal(t, 7, cfg.DefaultTeams)
		require.Equal(t, StateIdle, mgr.State())

		_, ok := mgr.Current()
		require.False(t, ok)
		_, ok = mgr.Published()
		require.False(t, ok)
	})
}

func TestManager_DrawPublishLookup(t *testing.T) {
	ctx := t.Context()
	counter := &lookupCounter{}
	mgr := newTestManager(t, WithMetrics(counter))
	people := officeRoster()

	require.Equal(t, LookupNotPublished, mgr.Lookup(ctx, "Anna Nowak").Status)

	draft, err := mgr.Draw(ctx, 3)
	require.NoError(t, err)
	drawtest.RequireBalancedPartition(t, people, 3, draft)
	require.Equal(t, StateDrafted, mgr.State())

	// Drafts stay invisible until published.
	require.Equal(t, LookupNotPublished, mgr.Lookup(ctx, "Anna Nowak").Status)

	snap, err := mgr.Publish(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), snap.Version)
	require.Equal(t, draft, snap.Partition)
	require.Equal(t, StatePublished, mgr.State())

	drawtest.RequireLookupRoundTrip(t, people, func(q string) LookupResult { return mgr.Lookup(ctx, q) })

	t.Run("normalizes queries", func(t *testing.T) {
		res := mgr.Lookup(ctx, "  GÓRSKI   lukasz ")
		require.Equal(t, LookupFound, res.Status)
		require.Equal(t, LookupKey("gorski lukasz"), res.Key)
	})

	t.Run("suggests near names", func(t *testing.T) {
		res := mgr.Lookup(ctx, "Lukasz Gorsky")
		require.Equal(t, LookupSuggested, res.Status)
		require.NotEmpty(t, res.Suggestions)
		require.Equal(t, LookupKey("lukasz gorski"), res.Suggestions[0].Key)
		require.Equal(t, "Łukasz Górski", res.Suggestions[0].DisplayName)

		picked := mgr.LookupKey(ctx, res.Suggestions[0].Key)
		require.Equal(t, LookupFound, picked.Status)
		require.Equal(t, mgr.Lookup(ctx, "Łukasz Górski").TeamNumber, picked.TeamNumber)
	})

	t.Run("unknown name", func(t *testing.T) {
		res := mgr.Lookup(ctx, "Xavier Quinn")
		require.Equal(t, LookupNoMatch, res.Status)
		require.Empty(t, res.Suggestions)

		require.Equal(t, LookupNoMatch, mgr.LookupKey(ctx, "xavier quinn").Status)
	})

	t.Run("search", func(t *testing.T) {
		hits := mgr.Search(ctx, "kowal", 3)
		require.NotEmpty(t, hits)
		require.Equal(t, "Jan Kowalski", hits[0].DisplayName)
	})

	counter.mu.Lock()
	defer counter.mu.Unlock()
	assert.Equal(t, 2, counter.statuses[LookupNotPublished])
	assert.Positive(t, counter.statuses[LookupFound])
	assert.Positive(t, counter.statuses[LookupSuggested])
}

func TestManager_RedrawKeepsPublished(t *testing.T) {
	ctx := t.Context()
	mgr := newTestManager(t)

	_, err := mgr.Draw(ctx, 4)
	require.NoError(t, err)
	first, err := mgr.Publish(ctx)
	require.NoError(t, err)

	before := mgr.Lookup(ctx, "Jan Kowalski")

	second, err := mgr.Draw(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2, second.Len())
	require.Equal(t, StateDrafted, mgr.State())

	published, ok := mgr.Published()
	require.True(t, ok)
	require.Equal(t, first.Version, published.Version)
	require.Equal(t, 4, published.Partition.Len())
	require.Equal(t, before, mgr.Lookup(ctx, "Jan Kowalski"))

	again, err := mgr.Publish(ctx)
	require.NoError(t, err)
	require.Greater(t, again.Version, first.Version)
	require.Equal(t, 2, again.Partition.Len())
}

func TestManager_Clear(t *testing.T) {
	ctx := t.Context()
	rec := &hookRecorder{}
	mgr := newTestManager(t, WithHooks(rec.hooks()))

	cleared, err := mgr.Clear(ctx)
	require.NoError(t, err)
	require.False(t, cleared, "nothing published yet")

	_, err = mgr.Publish(ctx)
	require.ErrorIs(t, err, ErrNothingToPublish)

	_, err = mgr.Draw(ctx, 3)
	require.NoError(t, err)
	_, err = mgr.Publish(ctx)
	require.NoError(t, err)

	cleared, err = mgr.Clear(ctx)
	require.NoError(t, err)
	require.True(t, cleared)
	require.Equal(t, StateDrafted, mgr.State())
	require.Equal(t, LookupNotPublished, mgr.Lookup(ctx, "Anna Nowak").Status)
	require.Empty(t, mgr.Search(ctx, "anna", 0))

	// The draft survives a clear and can be published again under a new version.
	snap, err := mgr.Publish(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), snap.Version)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Equal(t, []string{"allocated", "published", "cleared", "published"}, rec.events)
	require.Equal(t, [][2]State{
		{StateIdle, StateDrafted},
		{StateDrafted, StatePublished},
		{StatePublished, StateDrafted},
		{StateDrafted, StatePublished},
	}, rec.states)
	require.Empty(t, rec.errs, "hook failures are not reported as errors")
}

func TestManager_Allocate(t *testing.T) {
	ctx := t.Context()

	t.Run("team count bounds", func(t *testing.T) {
		mgr := newTestManager(t)

		for _, teams := range []int{-1, 0, 1, 21} {
			_, err := mgr.Allocate(ctx, officeRoster(), teams)
			require.ErrorIs(t, err, ErrTeamCountOutOfRange, "teams=%d", teams)
		}
		require.Equal(t, StateIdle, mgr.State())
	})

	t.Run("empty roster yields empty teams", func(t *testing.T) {
		mgr := newTestManager(t)

		p, err := mgr.Allocate(ctx, nil, 3)
		require.NoError(t, err)
		require.Equal(t, []int{0, 0, 0}, p.Sizes())

		_, err = mgr.Publish(ctx)
		require.NoError(t, err)
		require.Equal(t, LookupNoMatch, mgr.Lookup(ctx, "Anna Nowak").Status)
	})

	t.Run("more teams than people", func(t *testing.T) {
		mgr := newTestManager(t)
		people := officeRoster()[:3]

		p, err := mgr.Allocate(ctx, people, 5)
		require.NoError(t, err)
		drawtest.RequireBalancedPartition(t, people, 5, p)
	})

	t.Run("cancelled context", func(t *testing.T) {
		mgr := newTestManager(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := mgr.Allocate(cctx, officeRoster(), 3)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("same seed same draw", func(t *testing.T) {
		a := newTestManager(t)
		b := newTestManager(t)

		pa, err := a.Draw(ctx, 3)
		require.NoError(t, err)
		pb, err := b.Draw(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, pa, pb)
	})

	t.Run("custom strategy and rand", func(t *testing.T) {
		mgr := newTestManager(t,
			WithStrategy(strategy.NewRoundRobin()),
			WithRand(strategy.NewRand(99)),
		)

		p, err := mgr.Draw(ctx, 5)
		require.NoError(t, err)
		drawtest.RequireBalancedPartition(t, officeRoster(), 5, p)
	})

	t.Run("current is a copy", func(t *testing.T) {
		mgr := newTestManager(t)
		_, err := mgr.Draw(ctx, 3)
		require.NoError(t, err)

		cur, ok := mgr.Current()
		require.True(t, ok)
		cur.Teams[0].Members[0].FirstName = "Mallory"

		again, _ := mgr.Current()
		require.NotEqual(t, "Mallory", again.Teams[0].Members[0].FirstName)
	})
}

func TestManager_Draw(t *testing.T) {
	ctx := t.Context()

	t.Run("requires a roster source", func(t *testing.T) {
		cfg := TestConfig()
		mgr, err := NewManager(&cfg)
		require.NoError(t, err)

		_, err = mgr.Draw(ctx, 3)
		require.ErrorIs(t, err, ErrRosterSourceRequired)
	})

	t.Run("default team count", func(t *testing.T) {
		mgr := newTestManager(t)

		p, err := mgr.Draw(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, 7, p.Len())
	})

	t.Run("roster errors are wrapped", func(t *testing.T) {
		rec := &hookRecorder{}
		mgr := newTestManager(t,
			WithRosterSource(source.NewFile("testdata/does-not-exist.yaml")),
			WithHooks(rec.hooks()),
		)

		_, err := mgr.Draw(ctx, 3)
		require.ErrorContains(t, err, "failed to load roster")
		require.Len(t, rec.errs, 1)
	})
}

func TestManager_Lifecycle(t *testing.T) {
	ctx := t.Context()
	mgr := newTestManager(t)

	require.ErrorIs(t, mgr.Start(ctx), ErrMirrorNotConfigured)
	require.ErrorIs(t, mgr.Stop(ctx), ErrNotStarted)
}

func TestManager_Mirror(t *testing.T) {
	_, nc := drawtest.StartEmbeddedNATS(t)
	ctx := t.Context()

	organizer := newTestManager(t, WithNATS(nc))
	require.NoError(t, organizer.Start(ctx))
	require.ErrorIs(t, organizer.Start(ctx), ErrAlreadyStarted)

	reader := newTestManager(t, WithNATS(nc))
	require.NoError(t, reader.Start(ctx))

	lookupStatus := func(m *Manager) LookupStatus { return m.Lookup(ctx, "Zofia Woźniak").Status }

	_, err := organizer.Draw(ctx, 3)
	require.NoError(t, err)
	snap, err := organizer.Publish(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return lookupStatus(reader) == LookupFound }, 5*time.Second, 10*time.Millisecond)
	readerSnap, ok := reader.Published()
	require.True(t, ok)
	require.Equal(t, snap.ID, readerSnap.ID)
	require.Equal(t, organizer.Lookup(ctx, "Zofia Woźniak"), reader.Lookup(ctx, "Zofia Woźniak"))

	t.Run("late reader sees the stored snapshot on start", func(t *testing.T) {
		late := newTestManager(t, WithNATS(nc))
		require.NoError(t, late.Start(ctx))
		defer func() { require.NoError(t, late.Stop(ctx)) }()

		require.Equal(t, LookupFound, lookupStatus(late))
	})

	cleared, err := organizer.Clear(ctx)
	require.NoError(t, err)
	require.True(t, cleared)
	require.Eventually(t, func() bool { return lookupStatus(reader) == LookupNotPublished }, 5*time.Second, 10*time.Millisecond)

	t.Run("restarted organizer continues the version sequence", func(t *testing.T) {
		restarted := newTestManager(t, WithNATS(nc))
		require.NoError(t, restarted.Start(ctx))
		defer func() { require.NoError(t, restarted.Stop(ctx)) }()

		_, err := restarted.Draw(ctx, 4)
		require.NoError(t, err)
		next, err := restarted.Publish(ctx)
		require.NoError(t, err)
		require.Greater(t, next.Version, snap.Version)

		require.Eventually(t, func() bool {
			got, ok := reader.Published()
			return ok && got.Version == next.Version
		}, 5*time.Second, 10*time.Millisecond)
	})

	require.NoError(t, reader.Stop(ctx))
	require.NoError(t, organizer.Stop(ctx))
	require.ErrorIs(t, organizer.Stop(ctx), ErrNotStarted)
}

func TestManager_MirrorRejectsSecondOrganizer(t *testing.T) {
	_, nc := drawtest.StartEmbeddedNATS(t)
	ctx := t.Context()

	first := newTestManager(t, WithNATS(nc))
	second := newTestManager(t, WithNATS(nc))
	require.NoError(t, first.Start(ctx))
	require.NoError(t, second.Start(ctx))
	defer func() {
		require.NoError(t, first.Stop(ctx))
		require.NoError(t, second.Stop(ctx))
	}()

	_, err := first.Draw(ctx, 3)
	require.NoError(t, err)
	_, err = second.Draw(ctx, 4)
	require.NoError(t, err)

	winner, err := first.Publish(ctx)
	require.NoError(t, err)

	// second started before anything was stored and still expects an empty key.
	loser, err := second.Publish(ctx)
	require.ErrorIs(t, err, ErrPublishFailed)
	require.ErrorIs(t, err, ErrConcurrentPublish)
	require.NotNil(t, loser)

	_, err = second.Clear(ctx)
	require.ErrorIs(t, err, ErrClearFailed)
	require.ErrorIs(t, err, ErrConcurrentPublish)

	late := newTestManager(t, WithNATS(nc))
	require.NoError(t, late.Start(ctx))
	defer func() { require.NoError(t, late.Stop(ctx)) }()

	got, ok := late.Published()
	require.True(t, ok)
	require.Equal(t, winner.ID, got.ID)
}

func TestManager_MirrorFailureKeepsLocalPublish(t *testing.T) {
	ns, nc := drawtest.StartEmbeddedNATS(t)
	ctx := t.Context()

	rec := &hookRecorder{}
	mgr := newTestManager(t, WithNATS(nc), WithHooks(rec.hooks()))
	require.NoError(t, mgr.Start(ctx))

	_, err := mgr.Draw(ctx, 3)
	require.NoError(t, err)

	ns.Shutdown()
	ns.WaitForShutdown()

	snap, err := mgr.Publish(ctx)
	require.ErrorIs(t, err, ErrPublishFailed)
	require.NotNil(t, snap)
	require.Equal(t, LookupFound, mgr.Lookup(ctx, "Anna Nowak").Status)

	rec.mu.Lock()
	require.NotEmpty(t, rec.errs)
	rec.mu.Unlock()

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, mgr.Stop(stopCtx))
}
