package mirror

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/teamdraw/store"
)

// Envelope is the value stored under the mirror key.
type Envelope struct {
	// Version is the snapshot version, or the last published version for a tombstone.
	Version int64 `json:"version"`

	// Cleared marks a tombstone: nothing is published.
	Cleared bool `json:"cleared,omitempty"`

	// Snapshot is the published snapshot; nil for a tombstone.
	Snapshot *store.Snapshot `json:"snapshot,omitempty"`
}

// Encode marshals an envelope.
func Encode(env Envelope) ([]byte, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return data, nil
}

// Decode unmarshals and sanity-checks an envelope.
//
// Returns:
//   - Envelope: The decoded envelope
//   - error: Error if the payload is not JSON, or a non-tombstone has no snapshot
//     or disagrees with its snapshot's version
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to unmarshal envelope: %w", err)
	}

	if !env.Cleared {
		if env.Snapshot == nil {
			return Envelope{}, fmt.Errorf("envelope version %d has no snapshot", env.Version)
		}
		if env.Snapshot.Version != env.Version {
			return Envelope{}, fmt.Errorf("envelope version %d carries snapshot version %d", env.Version, env.Snapshot.Version)
		}
	}

	return env, nil
}
