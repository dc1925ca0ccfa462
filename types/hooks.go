package types

import "context"

// Hooks defines callbacks for Manager lifecycle events.
//
// All hooks are optional. They run synchronously on the goroutine that triggered
// the event, after the event has taken effect, so a hook sees the new state.
//
// Hook execution behavior:
//   - Hook errors are logged but never undo or fail the triggering operation
//   - Hooks should complete quickly; Publish and Clear wait for them
//
// Example:
//
//	hooks := &teamdraw.Hooks{
//	    OnPublished: func(ctx context.Context, version int64, p teamdraw.Partition) error {
//	        return notifyOrganizer(ctx, version)
//	    },
//	}
type Hooks struct {
	// OnAllocated is called after a new current partition was allocated.
	OnAllocated func(ctx context.Context, partition Partition) error

	// OnPublished is called after a partition became visible to participants.
	OnPublished func(ctx context.Context, version int64, partition Partition) error

	// OnCleared is called after the published partition was withdrawn.
	OnCleared func(ctx context.Context) error

	// OnStateChanged is called when the draw lifecycle state changes.
	OnStateChanged func(ctx context.Context, from, to State) error

	// OnError is called when a recoverable error occurs.
	OnError func(ctx context.Context, err error) error
}
