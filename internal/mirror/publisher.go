package mirror

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/teamdraw/internal/natsutil"
	"github.com/arloliu/teamdraw/store"
	"github.com/arloliu/teamdraw/types"
)

// Publisher writes the organizer's snapshots to the mirror key.
//
// Writes are conditional on the key revision the publisher last saw (through
// DiscoverVersion or its own previous write). A key that moved on in between
// was written by another organizer, and the write fails with
// types.ErrConcurrentPublish instead of silently overwriting it.
type Publisher struct {
	kv   jetstream.KeyValue
	key  string
	opts options

	// revision is the last known revision of key; 0 means the key is expected absent.
	revision atomic.Uint64
}

// NewPublisher creates a publisher for key in kv.
//
// Parameters:
//   - kv: Bucket holding the published snapshot
//   - key: Key of the envelope
//   - opts: Logger, metrics and timeout options
//
// Returns:
//   - *Publisher: Publisher ready for use
//
// Example:
//
//	pub := mirror.NewPublisher(kv, "published", mirror.WithLogger(log))
//	floor, err := pub.DiscoverVersion(ctx)
//	if err != nil {
//	    return err
//	}
//	local.SetVersionFloor(floor)
func NewPublisher(kv jetstream.KeyValue, key string, opts ...Option) *Publisher {
	return &Publisher{kv: kv, key: key, opts: newOptions(opts)}
}

// Publish writes snap as the current envelope.
func (p *Publisher) Publish(ctx context.Context, snap *store.Snapshot) error {
	return p.put(ctx, Envelope{Version: snap.Version, Snapshot: snap})
}

// Clear writes a tombstone carrying the last published version.
func (p *Publisher) Clear(ctx context.Context, version int64) error {
	return p.put(ctx, Envelope{Version: version, Cleared: true})
}

// Fetch reads the current envelope and remembers its revision for the next write.
//
// Returns:
//   - Envelope: The stored envelope
//   - bool: false if nothing was ever written (or the key was purged)
//   - error: KV or decode error
func (p *Publisher) Fetch(ctx context.Context) (Envelope, bool, error) {
	env, revision, ok, err := fetch(ctx, p.kv, p.key, p.opts)
	if err == nil {
		p.revision.Store(revision)
	}

	return env, ok, err
}

// DiscoverVersion returns the highest version recorded in the bucket.
//
// The organizer raises its local version floor to this value on start, so
// versions stay monotonic across restarts and followers accept the next publish.
//
// Returns:
//   - int64: Highest version (0 when the key does not exist)
//   - error: KV or decode error
func (p *Publisher) DiscoverVersion(ctx context.Context) (int64, error) {
	env, ok, err := p.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		p.opts.logger.Debug("no published snapshot found", "bucket", p.kv.Bucket(), "key", p.key)
		return 0, nil
	}

	p.opts.logger.Info("discovered published version", "version", env.Version, "cleared", env.Cleared)

	return env.Version, nil
}

func (p *Publisher) put(ctx context.Context, env Envelope) error {
	data, err := Encode(env)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.timeout)
	defer cancel()

	expected := p.revision.Load()
	start := time.Now()
	var revision uint64
	if expected == 0 {
		revision, err = p.kv.Create(ctx, p.key, data)
	} else {
		revision, err = p.kv.Update(ctx, p.key, data, expected)
	}
	p.opts.metrics.RecordMirrorOperation("put", time.Since(start).Seconds(), err == nil)
	if err != nil {
		switch {
		case natsutil.IsRevisionConflict(err):
			p.opts.logger.Error("mirror key changed by another writer",
				"key", p.key, "version", env.Version, "expectedRevision", expected)

			return fmt.Errorf("%w: %s at revision %d: %w", types.ErrConcurrentPublish, p.key, expected, err)
		case natsutil.IsConnectivityError(err):
			p.opts.logger.Warn("mirror unreachable", "key", p.key, "version", env.Version, "error", err)
		}

		return fmt.Errorf("failed to write %s: %w", p.key, err)
	}
	p.revision.Store(revision)

	p.opts.logger.Debug("mirror updated", "key", p.key, "version", env.Version, "cleared", env.Cleared, "bytes", len(data))

	return nil
}

func fetch(ctx context.Context, kv jetstream.KeyValue, key string, o options) (Envelope, uint64, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	entry, err := kv.Get(ctx, key)
	if err != nil {
		notFound := natsutil.IsNotFound(err)
		o.metrics.RecordMirrorOperation("get", time.Since(start).Seconds(), notFound)
		if notFound {
			return Envelope{}, 0, false, nil
		}

		return Envelope{}, 0, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	o.metrics.RecordMirrorOperation("get", time.Since(start).Seconds(), true)

	env, err := Decode(entry.Value())
	if err != nil {
		return Envelope{}, entry.Revision(), false, err
	}

	return env, entry.Revision(), true, nil
}
