// Package hooks provides default and dispatching helpers for types.Hooks.
package hooks

import (
	"context"

	"github.com/arloliu/teamdraw/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.Partition) error          = (*NopHooks)(nil).OnAllocated
	_ func(context.Context, int64, types.Partition) error   = (*NopHooks)(nil).OnPublished
	_ func(context.Context) error                           = (*NopHooks)(nil).OnCleared
	_ func(context.Context, types.State, types.State) error = (*NopHooks)(nil).OnStateChanged
	_ func(context.Context, error) error                    = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}

	return types.Hooks{
		OnAllocated:    h.OnAllocated,
		OnPublished:    h.OnPublished,
		OnCleared:      h.OnCleared,
		OnStateChanged: h.OnStateChanged,
		OnError:        h.OnError,
	}
}

// OnAllocated is a no-op implementation.
func (h *NopHooks) OnAllocated(_ context.Context, _ types.Partition) error {
	return nil
}

// OnPublished is a no-op implementation.
func (h *NopHooks) OnPublished(_ context.Context, _ int64, _ types.Partition) error {
	return nil
}

// OnCleared is a no-op implementation.
func (h *NopHooks) OnCleared(_ context.Context) error {
	return nil
}

// OnStateChanged is a no-op implementation.
func (h *NopHooks) OnStateChanged(_ context.Context, _, _ types.State) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
