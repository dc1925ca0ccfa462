package strategy

import (
	"math/rand/v2"

	"github.com/arloliu/teamdraw/types"
)

// DepartmentBalanced implements department-aware, size-balanced allocation.
type DepartmentBalanced struct{}

var _ types.AllocationStrategy = (*DepartmentBalanced)(nil)

// NewDepartmentBalanced creates a new department-balanced strategy.
//
// The strategy deals each department's members across teams one round at a
// time, so no team receives a second member of a department while another team
// that still has room has none. Team sizes differ by at most one.
//
// Returns:
//   - *DepartmentBalanced: Initialized strategy
//
// Example:
//
//	s := strategy.NewDepartmentBalanced()
//	partition, err := s.Allocate(people, 7, rand.New(rand.NewPCG(seed, seed)))
func NewDepartmentBalanced() *DepartmentBalanced {
	return &DepartmentBalanced{}
}

// Allocate partitions people into teams, spreading departments.
//
// The algorithm:
//  1. Compute capacity targets: N/k seats each, and N%k randomly chosen teams get one more
//  2. Group people by department and shuffle the department order
//  3. Shuffle members within each department
//  4. Deal each department in rounds: every team below its target gets one
//     person per round, in a freshly shuffled order (all teams if none is below target)
//  5. Sort every team by last name
//
// Parameters:
//   - people: Roster to allocate (not modified)
//   - teams: Number of teams, at least 2
//   - rng: Random source (a fresh random source is used when nil)
//
// Returns:
//   - types.Partition: Exactly `teams` teams; some are empty when teams > len(people)
//   - error: types.ErrInvalidTeamCount when teams < 2
func (db *DepartmentBalanced) Allocate(people []types.Person, teams int, rng *rand.Rand) (types.Partition, error) {
	if err := validateTeams(teams); err != nil {
		return types.Partition{}, err
	}
	if rng == nil {
		rng = newRand()
	}

	partition := types.NewPartition(teams)
	if len(people) == 0 {
		return partition, nil
	}

	targets := capacityTargets(len(people), teams, rng)

	groups := groupByDepartment(people)
	rng.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
	})

	candidates := make([]int, 0, teams)
	for _, members := range groups {
		rng.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})

		next := 0
		for next < len(members) {
			candidates = openTeams(candidates[:0], partition, targets)
			if len(candidates) == 0 {
				// Unreachable while targets sum to N; kept so a bad target
				// computation degrades to uneven sizes instead of a hang.
				for i := range teams {
					candidates = append(candidates, i)
				}
			}
			rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})

			for _, idx := range candidates {
				if next >= len(members) {
					break
				}
				partition.Teams[idx].Members = append(partition.Teams[idx].Members, members[next])
				next++
			}
		}
	}

	sortMembers(partition)

	return partition, nil
}

// capacityTargets returns the seat count of every team.
//
// The teams receiving the extra seats are chosen by a random permutation so
// low team numbers are not systematically larger.
func capacityTargets(people, teams int, rng *rand.Rand) []int {
	base, extra := people/teams, people%teams

	targets := make([]int, teams)
	for i := range targets {
		targets[i] = base
	}
	for _, idx := range rng.Perm(teams)[:extra] {
		targets[idx]++
	}

	return targets
}

// groupByDepartment splits people by department, in order of first appearance.
//
// Each group is a fresh slice, so shuffling it never touches the caller's roster.
func groupByDepartment(people []types.Person) [][]types.Person {
	index := make(map[string]int)
	var groups [][]types.Person
	for _, p := range people {
		i, ok := index[p.Department]
		if !ok {
			i = len(groups)
			index[p.Department] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], p)
	}

	return groups
}

// openTeams appends the indexes of teams still below their target to dst.
func openTeams(dst []int, partition types.Partition, targets []int) []int {
	for i, team := range partition.Teams {
		if len(team.Members) < targets[i] {
			dst = append(dst, i)
		}
	}

	return dst
}
