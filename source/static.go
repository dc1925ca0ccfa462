package source

import (
	"context"
	"slices"
	"sync"

	"github.com/arloliu/teamdraw/types"
)

// Static implements a roster source with a fixed list of people.
type Static struct {
	mu     sync.RWMutex
	people []types.Person
}

var _ types.RosterSource = (*Static)(nil)

// NewStatic creates a new static roster source.
//
// The list is copied; later changes to the caller's slice are not seen.
//
// Parameters:
//   - people: Fixed roster
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.Person{
//	    types.NewPerson("Jan", "Kowalski", "Developer", "R&D", "1"),
//	    types.NewPerson("Anna", "Nowak", "Accountant", "Finance", "2"),
//	})
//	mgr, err := teamdraw.NewManager(&cfg, teamdraw.WithRosterSource(src))
func NewStatic(people []types.Person) *Static {
	return &Static{people: slices.Clone(people)}
}

// LoadRoster returns a cleaned copy of the roster.
//
// Returns:
//   - []types.Person: The roster in source order
//   - error: types.ErrInvalidRoster if a row is missing a required field
func (s *Static) LoadRoster(_ context.Context) ([]types.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return validate(s.people, "static roster")
}

// Update replaces the roster.
//
// This lets tests simulate a re-uploaded roster between draws.
func (s *Static) Update(people []types.Person) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.people = slices.Clone(people)
}
