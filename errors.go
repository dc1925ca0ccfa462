package teamdraw

import "github.com/arloliu/teamdraw/types"

// Re-export sentinel errors from the types package so callers can use
// errors.Is(err, teamdraw.ErrNothingToPublish) without importing types.
var (
	ErrInvalidConfig        = types.ErrInvalidConfig
	ErrTeamCountOutOfRange  = types.ErrTeamCountOutOfRange
	ErrRosterSourceRequired = types.ErrRosterSourceRequired
	ErrNothingToPublish     = types.ErrNothingToPublish
	ErrAlreadyStarted       = types.ErrAlreadyStarted
	ErrNotStarted           = types.ErrNotStarted
	ErrMirrorNotConfigured  = types.ErrMirrorNotConfigured
	ErrInvalidTeamCount     = types.ErrInvalidTeamCount
	ErrUnknownStrategy      = types.ErrUnknownStrategy
	ErrInvalidRoster        = types.ErrInvalidRoster
	ErrInvalidMatcherConfig = types.ErrInvalidMatcherConfig
	ErrPublishFailed        = types.ErrPublishFailed
	ErrClearFailed          = types.ErrClearFailed
	ErrConcurrentPublish    = types.ErrConcurrentPublish
	ErrConnectivity         = types.ErrConnectivity
)
