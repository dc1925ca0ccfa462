package strategy

import (
	"slices"
	"testing"

	"github.com/arloliu/teamdraw/types"
	"github.com/stretchr/testify/require"
)

func TestRoundRobin_Allocate(t *testing.T) {
	t.Run("balances sizes", func(t *testing.T) {
		people := makeRoster(deptSize{"A", 11})

		partition, err := NewRoundRobin().Allocate(people, 4, NewRand(1))

		require.NoError(t, err)
		requireBalanced(t, people, 4, partition)

		sizes := partition.Sizes()
		slices.Sort(sizes)
		require.Equal(t, []int{2, 3, 3, 3}, sizes)
	})

	t.Run("extra seats are not always on the first teams", func(t *testing.T) {
		people := makeRoster(deptSize{"A", 5})

		seen := make(map[int]bool)
		for seed := uint64(1); seed <= 30; seed++ {
			partition, err := NewRoundRobin().Allocate(people, 4, NewRand(seed))
			require.NoError(t, err)
			for _, team := range partition.Teams {
				if team.Size() == 2 {
					seen[team.Number] = true
				}
			}
		}
		require.Greater(t, len(seen), 1)
	})

	t.Run("rejects too few teams", func(t *testing.T) {
		_, err := NewRoundRobin().Allocate(makeRoster(deptSize{"A", 2}), 1, NewRand(1))
		require.ErrorIs(t, err, types.ErrInvalidTeamCount)
	})

	t.Run("deterministic with the same seed", func(t *testing.T) {
		people := makeRoster(deptSize{"A", 6}, deptSize{"B", 6})

		first, err := NewRoundRobin().Allocate(people, 3, NewRand(8))
		require.NoError(t, err)
		second, err := NewRoundRobin().Allocate(people, 3, NewRand(8))
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}
