package types

import "math/rand/v2"

// AllocationStrategy partitions a roster into a fixed number of teams.
//
// Strategies implement different allocation algorithms:
//   - DepartmentBalanced: Spreads each department across teams, sizes differ by at most one
//   - RoundRobin: Department-blind shuffled deal, sizes differ by at most one
//   - Custom: User-defined algorithms
//
// Strategy implementations should:
//   - Draw all randomness from rng (same seed → same output)
//   - Handle edge cases (empty roster, more teams than people)
//   - Never mutate the people slice
//   - Be stateless (no side effects)
type AllocationStrategy interface {
	// Allocate partitions people into teams.
	//
	// Parameters:
	//   - people: Roster to allocate (read-only)
	//   - teams: Number of teams, at least 2
	//   - rng: Random source for every shuffle
	//
	// Returns:
	//   - Partition: Exactly `teams` teams numbered from 1, members sorted by last name
	//   - error: ErrInvalidTeamCount when teams < 2
	Allocate(people []Person, teams int, rng *rand.Rand) (Partition, error)
}
