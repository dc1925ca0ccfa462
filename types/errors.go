package types

import "errors"

// Sentinel errors for the teamdraw library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Conditions that are normal outcomes (empty roster, key collision, lookup miss,
// nothing published) are reported through return values, never as errors.

// Manager errors - Public API errors returned by Manager component.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTeamCountOutOfRange is returned when the requested team count is outside the configured bounds.
	ErrTeamCountOutOfRange = errors.New("team count out of range")

	// ErrRosterSourceRequired is returned when Draw is called without a roster source.
	ErrRosterSourceRequired = errors.New("roster source is required")

	// ErrNothingToPublish is returned when Publish is called before any allocation.
	ErrNothingToPublish = errors.New("no allocated partition to publish")

	// ErrAlreadyStarted is returned when Start is called on an already running manager.
	ErrAlreadyStarted = errors.New("manager already started")

	// ErrNotStarted is returned when Stop is called on a manager that hasn't been started.
	ErrNotStarted = errors.New("manager not started")

	// ErrMirrorNotConfigured is returned when a mirror operation is requested without a KV bucket.
	ErrMirrorNotConfigured = errors.New("mirror not configured")
)

// Allocation errors - Returned by allocation strategies.
var (
	// ErrInvalidTeamCount is returned when fewer than two teams are requested.
	ErrInvalidTeamCount = errors.New("invalid team count")

	// ErrUnknownStrategy is returned when a strategy name cannot be resolved.
	ErrUnknownStrategy = errors.New("unknown allocation strategy")
)

// Roster errors - Returned by roster sources.
var (
	// ErrInvalidRoster is returned when a roster row is missing a required field.
	ErrInvalidRoster = errors.New("invalid roster")
)

// Matching errors - Returned by the fuzzy matcher.
var (
	// ErrInvalidMatcherConfig is returned for a similarity outside [0,1] or a result limit below 1.
	ErrInvalidMatcherConfig = errors.New("invalid matcher configuration")
)

// Mirror errors - Returned by the NATS KV mirror.
var (
	// ErrPublishFailed is returned when writing the published snapshot to NATS KV fails.
	ErrPublishFailed = errors.New("failed to publish snapshot")

	// ErrClearFailed is returned when writing the clear tombstone to NATS KV fails.
	ErrClearFailed = errors.New("failed to clear published snapshot")

	// ErrConcurrentPublish is returned when the mirror key changed since this
	// organizer last read or wrote it, i.e. another organizer published.
	ErrConcurrentPublish = errors.New("published snapshot changed by another organizer")

	// ErrConnectivity indicates a NATS/KV connectivity issue.
	ErrConnectivity = errors.New("connectivity issue")
)
