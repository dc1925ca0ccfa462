package strategy

import (
	"math/rand/v2"
	"slices"

	"github.com/arloliu/teamdraw/types"
)

// RoundRobin implements department-blind shuffled round-robin allocation.
type RoundRobin struct{}

var _ types.AllocationStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy shuffles the whole roster and deals it across teams like
// cards. Sizes are balanced but departments are ignored.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	s := strategy.NewRoundRobin()
//	mgr, err := teamdraw.NewManager(&cfg, teamdraw.WithStrategy(s))
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Allocate partitions people using a shuffled round-robin deal.
//
// The algorithm:
//  1. Shuffle a copy of the roster
//  2. Shuffle the team order, so the teams receiving the extra seats are random
//  3. Deal people to teams in that order, wrapping around
//  4. Sort every team by last name
//
// Parameters:
//   - people: Roster to allocate (not modified)
//   - teams: Number of teams, at least 2
//   - rng: Random source (a fresh random source is used when nil)
//
// Returns:
//   - types.Partition: Exactly `teams` teams
//   - error: types.ErrInvalidTeamCount when teams < 2
func (rr *RoundRobin) Allocate(people []types.Person, teams int, rng *rand.Rand) (types.Partition, error) {
	if err := validateTeams(teams); err != nil {
		return types.Partition{}, err
	}
	if rng == nil {
		rng = newRand()
	}

	partition := types.NewPartition(teams)

	pool := slices.Clone(people)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	order := rng.Perm(teams)
	for i, p := range pool {
		idx := order[i%teams]
		partition.Teams[idx].Members = append(partition.Teams[idx].Members, p)
	}

	sortMembers(partition)

	return partition, nil
}
