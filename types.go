package teamdraw

import (
	"github.com/arloliu/teamdraw/store"
	"github.com/arloliu/teamdraw/types"
)

// Re-export types from the internal types package.
//
// Internal packages depend on `types` rather than on the root package, which
// avoids import cycles while still giving users `teamdraw.Person`,
// `teamdraw.Partition` and friends.
type (
	Person       = types.Person
	Team         = types.Team
	Partition    = types.Partition
	LookupKey    = types.LookupKey
	LookupEntry  = types.LookupEntry
	LookupStatus = types.LookupStatus
	LookupResult = types.LookupResult
	Suggestion   = types.Suggestion
	State        = types.State
	Snapshot     = store.Snapshot
)

// Re-export interfaces from the internal types package for convenience.
type (
	AllocationStrategy = types.AllocationStrategy
	RosterSource       = types.RosterSource
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
	Hooks              = types.Hooks
)

// Re-export State constants from the internal types package.
const (
	StateIdle      = types.StateIdle
	StateDrafted   = types.StateDrafted
	StatePublished = types.StatePublished
)

// Re-export LookupStatus constants from the internal types package.
const (
	LookupNotPublished = types.LookupNotPublished
	LookupFound        = types.LookupFound
	LookupSuggested    = types.LookupSuggested
	LookupNoMatch      = types.LookupNoMatch
)
