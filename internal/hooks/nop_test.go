package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/arloliu/teamdraw/internal/logger"
	"github.com/arloliu/teamdraw/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	hooks := NewNop()
	ctx := context.Background()

	require.NotNil(t, hooks.OnAllocated)
	require.NotNil(t, hooks.OnPublished)
	require.NotNil(t, hooks.OnCleared)
	require.NotNil(t, hooks.OnStateChanged)
	require.NotNil(t, hooks.OnError)

	require.NoError(t, hooks.OnAllocated(ctx, types.NewPartition(2)))
	require.NoError(t, hooks.OnPublished(ctx, 1, types.NewPartition(2)))
	require.NoError(t, hooks.OnCleared(ctx))
	require.NoError(t, hooks.OnStateChanged(ctx, types.StateIdle, types.StateDrafted))
	require.NoError(t, hooks.OnError(ctx, errors.New("test error")))
}

func TestDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("calls set hooks with event data", func(t *testing.T) {
		var (
			allocated  int
			published  int64
			cleared    bool
			transition [2]types.State
			reported   error
		)
		h := &types.Hooks{
			OnAllocated: func(_ context.Context, p types.Partition) error {
				allocated = p.Len()
				return nil
			},
			OnPublished: func(_ context.Context, version int64, _ types.Partition) error {
				published = version
				return nil
			},
			OnCleared: func(_ context.Context) error {
				cleared = true
				return nil
			},
			OnStateChanged: func(_ context.Context, from, to types.State) error {
				transition = [2]types.State{from, to}
				return nil
			},
			OnError: func(_ context.Context, err error) error {
				reported = err
				return nil
			},
		}
		d := NewDispatcher(h, logger.NewTest(t))
		boom := errors.New("boom")

		d.Allocated(ctx, types.NewPartition(3))
		d.Published(ctx, 4, types.NewPartition(3))
		d.Cleared(ctx)
		d.StateChanged(ctx, types.StateDrafted, types.StatePublished)
		d.Error(ctx, boom)

		require.Equal(t, 3, allocated)
		require.Equal(t, int64(4), published)
		require.True(t, cleared)
		require.Equal(t, [2]types.State{types.StateDrafted, types.StatePublished}, transition)
		require.ErrorIs(t, reported, boom)
	})

	t.Run("skips unchanged state", func(t *testing.T) {
		calls := 0
		d := NewDispatcher(&types.Hooks{
			OnStateChanged: func(context.Context, types.State, types.State) error {
				calls++
				return nil
			},
		}, logger.NewNop())

		d.StateChanged(ctx, types.StateIdle, types.StateIdle)

		require.Zero(t, calls)
	})

	t.Run("nil hooks and failing hooks are harmless", func(t *testing.T) {
		require.NotPanics(t, func() {
			NewDispatcher(nil, logger.NewNop()).Cleared(ctx)
		})

		d := NewDispatcher(&types.Hooks{
			OnCleared:   func(context.Context) error { return errors.New("fail") },
			OnAllocated: func(context.Context, types.Partition) error { panic("hook bug") },
		}, logger.NewNop())

		require.NotPanics(t, func() {
			d.Cleared(ctx)
			d.Allocated(ctx, types.NewPartition(2))
		})
	})
}
