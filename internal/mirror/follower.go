package mirror

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/teamdraw/store"
)

// ErrWatcherClosed is returned by Run when the KV watcher stops delivering updates.
var ErrWatcherClosed = errors.New("mirror watcher closed")

// Follower applies envelopes from the mirror key to a local store.
type Follower struct {
	kv    jetstream.KeyValue
	key   string
	store *store.Store
	opts  options

	readyOnce sync.Once
	ready     chan struct{}
}

// NewFollower creates a follower feeding s from key in kv.
func NewFollower(kv jetstream.KeyValue, key string, s *store.Store, opts ...Option) *Follower {
	return &Follower{
		kv:    kv,
		key:   key,
		store: s,
		opts:  newOptions(opts),
		ready: make(chan struct{}),
	}
}

// Ready is closed once the current value (if any) has been applied.
func (f *Follower) Ready() <-chan struct{} {
	return f.ready
}

// Run watches the mirror key until ctx is cancelled.
//
// The watcher first replays the current value, then delivers every later
// update. Envelopes older than the local store's version are ignored, so
// replays and duplicates are harmless.
//
// Returns:
//   - error: nil after ctx is cancelled; watch setup failure or ErrWatcherClosed otherwise
func (f *Follower) Run(ctx context.Context) error {
	watcher, err := f.kv.Watch(ctx, f.key)
	if err != nil {
		return err
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			f.opts.logger.Debug("failed to stop mirror watcher", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			f.opts.logger.Debug("mirror follower stopping", "key", f.key)
			return nil
		case entry, ok := <-watcher.Updates():
			if !ok {
				if ctx.Err() != nil {
					return nil
				}

				return ErrWatcherClosed
			}
			if entry == nil {
				// End of the initial replay.
				f.markReady()
				continue
			}

			f.handle(entry)
		}
	}
}

func (f *Follower) markReady() {
	f.readyOnce.Do(func() { close(f.ready) })
}

func (f *Follower) handle(entry jetstream.KeyValueEntry) {
	start := time.Now()

	if op := entry.Operation(); op == jetstream.KeyValueDelete || op == jetstream.KeyValuePurge {
		f.store.Clear()
		f.opts.metrics.RecordMirrorOperation("apply", time.Since(start).Seconds(), true)

		return
	}

	env, err := Decode(entry.Value())
	if err != nil {
		f.opts.metrics.RecordMirrorOperation("apply", time.Since(start).Seconds(), false)
		f.opts.logger.Error("ignoring malformed mirror record", "key", f.key, "revision", entry.Revision(), "error", err)

		return
	}

	if env.Cleared {
		if env.Version >= f.store.Version() {
			f.store.Clear()
			f.store.SetVersionFloor(env.Version)
		}
		f.opts.metrics.RecordMirrorOperation("apply", time.Since(start).Seconds(), true)

		return
	}

	applied, err := f.store.Apply(*env.Snapshot)
	f.opts.metrics.RecordMirrorOperation("apply", time.Since(start).Seconds(), err == nil)
	if err != nil {
		f.opts.logger.Error("rejected mirror snapshot", "version", env.Version, "error", err)
		return
	}
	if applied {
		f.opts.logger.Info("mirror snapshot applied", "version", env.Version)
	}
}
