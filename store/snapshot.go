package store

import (
	"time"

	"github.com/arloliu/teamdraw/lookup"
	"github.com/arloliu/teamdraw/types"
)

// Snapshot is one published partition with its lookup index.
//
// Snapshots are immutable once published. The JSON form carries everything but
// the index, which receivers rebuild with Apply.
type Snapshot struct {
	// ID uniquely identifies this publish.
	ID string `json:"id"`

	// Version increases with every publish of the same store.
	Version int64 `json:"version"`

	// PublishedAt is the wall-clock publish time.
	PublishedAt time.Time `json:"published_at"`

	// Fingerprint is hash.Partition of Partition.
	Fingerprint uint64 `json:"fingerprint"`

	// Partition is the published team list.
	Partition types.Partition `json:"partition"`

	index *lookup.Index
}

// Index returns the lookup index built from Partition.
func (s *Snapshot) Index() *lookup.Index {
	return s.index
}

// EventType identifies a store notification.
type EventType int

const (
	// EventPublished is sent after a snapshot became visible.
	EventPublished EventType = iota + 1

	// EventCleared is sent after the published snapshot was withdrawn.
	EventCleared
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventPublished:
		return "published"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event is a store notification delivered to subscribers.
type Event struct {
	Type EventType

	// Version is the published version, or the last version before a clear.
	Version int64

	// Snapshot is the new snapshot for EventPublished, nil for EventCleared.
	Snapshot *Snapshot
}
