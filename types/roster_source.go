package types

import "context"

// RosterSource provides the list of people to allocate.
//
// Implementations can read various backends:
//   - Static: fixed list for testing
//   - File: YAML or JSON roster file
//   - Custom: an upstream spreadsheet importer
//
// Sources are responsible for rejecting rows with missing required fields, so
// the allocator only ever sees complete Person records.
type RosterSource interface {
	// LoadRoster returns all people on the roster.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []Person: Roster in source order
	//   - error: Read or validation error (nil on success)
	LoadRoster(ctx context.Context) ([]Person, error)
}
