package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/teamdraw/internal/hash"
	"github.com/arloliu/teamdraw/lookup"
	"github.com/arloliu/teamdraw/types"
)

// ErrFingerprintMismatch is returned by Apply when a snapshot's partition does
// not hash to its recorded fingerprint.
var ErrFingerprintMismatch = errors.New("snapshot fingerprint mismatch")

// DefaultSubscriberBuffer is the channel capacity used by Subscribe for buffer <= 0.
const DefaultSubscriberBuffer = 4

// Store holds the published snapshot.
type Store struct {
	current atomic.Pointer[Snapshot]

	// mu serializes writers; version is only touched under mu.
	mu      sync.Mutex
	version int64

	subscribers      *xsync.Map[uint64, *subscriber]
	nextSubscriberID atomic.Uint64

	opts storeOptions
}

// New creates an empty store. Read reports nothing published until the first Publish.
//
// Example:
//
//	s := store.New(store.WithMetrics(collector))
//	snap := s.Publish(partition)
//	fmt.Println("published version", snap.Version)
func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		subscribers: xsync.NewMap[uint64, *subscriber](),
		opts:        o,
	}
}

var defaultStore = sync.OnceValue(func() *Store { return New() })

// Default returns the process-wide store, creating it on first use.
func Default() *Store {
	return defaultStore()
}

// Publish makes p the published partition.
//
// The partition is deep-copied and indexed before the swap, so readers see
// either the previous snapshot or the complete new one.
//
// Parameters:
//   - p: Partition to publish (not retained)
//
// Returns:
//   - *Snapshot: The snapshot now visible to readers
func (s *Store) Publish(p types.Partition) *Snapshot {
	partition := p.Clone()
	idx := lookup.Build(partition)
	fingerprint := hash.Partition(partition)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	snap := &Snapshot{
		ID:          uuid.NewString(),
		Version:     s.version,
		PublishedAt: s.opts.clock(),
		Fingerprint: fingerprint,
		Partition:   partition,
		index:       idx,
	}
	s.current.Store(snap)

	s.opts.metrics.RecordPublish(snap.Version, len(idx.Keys()))
	s.opts.logger.Info("partition published",
		"version", snap.Version,
		"id", snap.ID,
		"teams", partition.Len(),
		"members", partition.TotalMembers(),
	)
	s.emit(Event{Type: EventPublished, Version: snap.Version, Snapshot: snap})

	return snap
}

// Clear withdraws the published partition.
//
// The version counter is kept, so a later Publish still gets a higher version.
//
// Returns:
//   - bool: true if a snapshot was published before the call
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Swap(nil)
	if prev == nil {
		return false
	}

	s.opts.metrics.RecordClear()
	s.opts.logger.Info("published partition cleared", "version", prev.Version)
	s.emit(Event{Type: EventCleared, Version: prev.Version})

	return true
}

// Read returns the published snapshot.
//
// Returns:
//   - *Snapshot: Current snapshot (nil when nothing is published)
//   - bool: false when nothing is published or it was cleared
func (s *Store) Read() (*Snapshot, bool) {
	snap := s.current.Load()

	return snap, snap != nil
}

// Version returns the highest version this store has published or applied.
func (s *Store) Version() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.version
}

// SetVersionFloor raises the version counter to at least v.
//
// Publishers that share a version sequence with other processes call this
// after discovering the highest version already in use.
func (s *Store) SetVersionFloor(v int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version = max(s.version, v)
}

// Apply installs a snapshot published elsewhere.
//
// The snapshot is accepted only if its version is newer than every version this
// store has seen. Its index is rebuilt locally and its fingerprint verified.
//
// Parameters:
//   - snap: Snapshot decoded from a remote publisher
//
// Returns:
//   - bool: true if the snapshot is now current
//   - error: ErrFingerprintMismatch if the partition does not match its fingerprint
func (s *Store) Apply(snap Snapshot) (bool, error) {
	partition := snap.Partition.Clone()
	if got := hash.Partition(partition); got != snap.Fingerprint {
		return false, fmt.Errorf("%w: version %d has %x, content hashes to %x",
			ErrFingerprintMismatch, snap.Version, snap.Fingerprint, got)
	}
	idx := lookup.Build(partition)

	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Version <= s.version {
		s.opts.logger.Debug("ignoring stale snapshot", "version", snap.Version, "current", s.version)
		return false, nil
	}

	s.version = snap.Version
	installed := &Snapshot{
		ID:          snap.ID,
		Version:     snap.Version,
		PublishedAt: snap.PublishedAt,
		Fingerprint: snap.Fingerprint,
		Partition:   partition,
		index:       idx,
	}
	s.current.Store(installed)

	s.opts.metrics.RecordPublish(installed.Version, len(idx.Keys()))
	s.opts.logger.Info("snapshot applied", "version", installed.Version, "id", installed.ID)
	s.emit(Event{Type: EventPublished, Version: installed.Version, Snapshot: installed})

	return true, nil
}

// Subscribe registers for publish and clear notifications.
//
// Sends never block the writer: when the channel is full the event is dropped
// and counted. The channel is closed by the returned cancel function, which is
// safe to call more than once.
//
// Parameters:
//   - buffer: Channel capacity (DefaultSubscriberBuffer when <= 0)
//
// Returns:
//   - <-chan Event: Notification channel
//   - func(): Cancels the subscription and closes the channel
//
// Example:
//
//	events, cancel := s.Subscribe(0)
//	defer cancel()
//	for ev := range events {
//	    log.Info("store changed", "type", ev.Type, "version", ev.Version)
//	}
func (s *Store) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}

	id := s.nextSubscriberID.Add(1)
	sub := &subscriber{ch: make(chan Event, buffer)}
	s.subscribers.Store(id, sub)

	cancel := func() {
		if sub, ok := s.subscribers.LoadAndDelete(id); ok {
			sub.close()
		}
	}

	return sub.ch, cancel
}

// emit fans ev out to every subscriber. Callers hold s.mu.
func (s *Store) emit(ev Event) {
	s.subscribers.Range(func(_ uint64, sub *subscriber) bool {
		if !sub.trySend(ev) {
			s.opts.metrics.RecordEventDropped()
			s.opts.logger.Warn("dropped store event for slow subscriber", "type", ev.Type.String(), "version", ev.Version)
		}

		return true
	})
}
