package strategy

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/arloliu/teamdraw/types"
)

// Strategy names accepted by New.
const (
	NameDepartment = "department"
	NameRoundRobin = "round_robin"
)

// New resolves a strategy by name.
//
// Parameters:
//   - name: NameDepartment (also the default for "") or NameRoundRobin, case-insensitive
//
// Returns:
//   - types.AllocationStrategy: The strategy
//   - error: types.ErrUnknownStrategy for any other name
func New(name string) (types.AllocationStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameDepartment:
		return NewDepartmentBalanced(), nil
	case NameRoundRobin, "roundrobin", "round-robin":
		return NewRoundRobin(), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownStrategy, name)
	}
}

// Name returns the canonical name of a built-in strategy, or "custom".
func Name(s types.AllocationStrategy) string {
	switch s.(type) {
	case *DepartmentBalanced:
		return NameDepartment
	case *RoundRobin:
		return NameRoundRobin
	default:
		return "custom"
	}
}

// NewRand returns a PCG source seeded with seed, or a randomly seeded one when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return newRand()
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // team draws are not security sensitive
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // team draws are not security sensitive
}

func sortMembers(partition types.Partition) {
	for _, team := range partition.Teams {
		slices.SortStableFunc(team.Members, types.Person.CompareByLastName)
	}
}
