package strategy

import (
	"testing"

	"github.com/arloliu/teamdraw/types"
	"github.com/stretchr/testify/require"
)

func builtinStrategies() map[string]types.AllocationStrategy {
	return map[string]types.AllocationStrategy{
		"DepartmentBalanced": NewDepartmentBalanced(),
		"RoundRobin":         NewRoundRobin(),
	}
}

// TestAllocationStrategy_EmptyRoster verifies that strategies handle an empty roster.
func TestAllocationStrategy_EmptyRoster(t *testing.T) {
	for name, s := range builtinStrategies() {
		t.Run(name, func(t *testing.T) {
			partition, err := s.Allocate([]types.Person{}, 3, NewRand(1))

			require.NoError(t, err, "empty roster should not cause error")
			require.Len(t, partition.Teams, 3)
			require.Equal(t, 0, partition.TotalMembers())
		})
	}
}

// TestAllocationStrategy_MinimumTeams verifies the two-team boundary.
func TestAllocationStrategy_MinimumTeams(t *testing.T) {
	for name, s := range builtinStrategies() {
		t.Run(name, func(t *testing.T) {
			people := makeRoster(deptSize{"A", 3}, deptSize{"B", 2})

			partition, err := s.Allocate(people, 2, NewRand(2))
			require.NoError(t, err)
			requireBalanced(t, people, 2, partition)

			_, err = s.Allocate(people, 1, NewRand(2))
			require.ErrorIs(t, err, types.ErrInvalidTeamCount)
		})
	}
}

// TestAllocationStrategy_OnePersonPerTeam verifies N == k.
func TestAllocationStrategy_OnePersonPerTeam(t *testing.T) {
	for name, s := range builtinStrategies() {
		t.Run(name, func(t *testing.T) {
			people := makeRoster(deptSize{"A", 2}, deptSize{"B", 3})

			partition, err := s.Allocate(people, 5, NewRand(3))

			require.NoError(t, err)
			require.Equal(t, []int{1, 1, 1, 1, 1}, partition.Sizes())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", NameDepartment},
		{"department", NameDepartment},
		{" Department ", NameDepartment},
		{"round_robin", NameRoundRobin},
		{"round-robin", NameRoundRobin},
	}

	for _, tt := range tests {
		s, err := New(tt.name)
		require.NoError(t, err, "name %q", tt.name)
		require.Equal(t, tt.want, Name(s))
	}

	_, err := New("alphabetical")
	require.ErrorIs(t, err, types.ErrUnknownStrategy)
}

func TestNewRand(t *testing.T) {
	require.Equal(t, NewRand(5).Uint64(), NewRand(5).Uint64())
	require.NotNil(t, NewRand(0))
}
