package hooks

import (
	"context"

	"github.com/arloliu/teamdraw/types"
)

// Dispatcher invokes user hooks synchronously and logs their failures.
//
// Unset callbacks are skipped. A failing or panicking hook never propagates to
// the caller: the event it reports has already taken effect.
type Dispatcher struct {
	hooks  types.Hooks
	logger types.Logger
}

// NewDispatcher creates a dispatcher for h.
//
// Parameters:
//   - h: User hooks (nil means no hooks)
//   - logger: Receives hook errors
//
// Returns:
//   - *Dispatcher: Dispatcher ready for concurrent use
func NewDispatcher(h *types.Hooks, logger types.Logger) *Dispatcher {
	d := &Dispatcher{logger: logger}
	if h != nil {
		d.hooks = *h
	}

	return d
}

// Allocated fires OnAllocated.
func (d *Dispatcher) Allocated(ctx context.Context, p types.Partition) {
	if d.hooks.OnAllocated == nil {
		return
	}
	d.run("allocated", func() error { return d.hooks.OnAllocated(ctx, p) })
}

// Published fires OnPublished.
func (d *Dispatcher) Published(ctx context.Context, version int64, p types.Partition) {
	if d.hooks.OnPublished == nil {
		return
	}
	d.run("published", func() error { return d.hooks.OnPublished(ctx, version, p) })
}

// Cleared fires OnCleared.
func (d *Dispatcher) Cleared(ctx context.Context) {
	if d.hooks.OnCleared == nil {
		return
	}
	d.run("cleared", func() error { return d.hooks.OnCleared(ctx) })
}

// StateChanged fires OnStateChanged.
func (d *Dispatcher) StateChanged(ctx context.Context, from, to types.State) {
	if d.hooks.OnStateChanged == nil || from == to {
		return
	}
	d.run("state_changed", func() error { return d.hooks.OnStateChanged(ctx, from, to) })
}

// Error fires OnError.
func (d *Dispatcher) Error(ctx context.Context, err error) {
	if d.hooks.OnError == nil || err == nil {
		return
	}
	d.run("error", func() error { return d.hooks.OnError(ctx, err) })
}

func (d *Dispatcher) run(name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("hook panicked", "hook", name, "panic", r)
		}
	}()

	if err := fn(); err != nil {
		d.logger.Warn("hook returned error", "hook", name, "error", err)
	}
}
