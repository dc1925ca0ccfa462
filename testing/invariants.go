package testing

import (
	"slices"
	"testing"

	"github.com/arloliu/teamdraw/types"
)

// RequireBalancedPartition fails the test unless p is a complete, size-balanced
// split of people into exactly k teams.
//
// Checked properties:
//   - p has k teams numbered 1..k
//   - every person appears in exactly one team, and nobody else does
//   - every team size is N/k or ceil(N/k)
//   - every team is sorted by last name
//
// Parameters:
//   - t: testing handle
//   - people: roster that was allocated
//   - k: requested team count
//   - p: allocation result
func RequireBalancedPartition(t *testing.T, people []types.Person, k int, p types.Partition) {
	t.Helper()

	if p.Len() != k {
		t.Fatalf("partition has %d teams, want %d", p.Len(), k)
	}

	lo, hi := len(people)/k, (len(people)+k-1)/k
	remaining := make(map[types.Person]int, len(people))
	for _, person := range people {
		remaining[person]++
	}

	for i, team := range p.Teams {
		if team.Number != i+1 {
			t.Fatalf("team at index %d has number %d", i, team.Number)
		}
		if team.Size() < lo || team.Size() > hi {
			t.Fatalf("team %d has %d members, want between %d and %d", team.Number, team.Size(), lo, hi)
		}
		if !slices.IsSortedFunc(team.Members, types.Person.CompareByLastName) {
			t.Fatalf("team %d is not sorted by last name", team.Number)
		}
		for _, m := range team.Members {
			if remaining[m] == 0 {
				t.Fatalf("team %d has unexpected or duplicated member %q", team.Number, m.DisplayName())
			}
			remaining[m]--
		}
	}

	for person, n := range remaining {
		if n > 0 {
			t.Fatalf("%q was not assigned to any team", person.DisplayName())
		}
	}
}

// RequireLookupRoundTrip fails the test unless every person resolves, in both
// name orders, to a team that contains them.
//
// Parameters:
//   - t: testing handle
//   - people: roster that was published
//   - resolve: query function under test (an index, a store reader, or a manager)
func RequireLookupRoundTrip(t *testing.T, people []types.Person, resolve func(query string) types.LookupResult) {
	t.Helper()

	for _, person := range people {
		for _, query := range []string{
			person.FirstName + " " + person.LastName,
			person.LastName + " " + person.FirstName,
		} {
			res := resolve(query)
			if res.Status != types.LookupFound {
				t.Fatalf("query %q: status %s, want Found", query, res.Status)
			}
			if !slices.Contains(res.Members, person) {
				t.Fatalf("query %q: team %d does not contain the person", query, res.TeamNumber)
			}
		}
	}
}
