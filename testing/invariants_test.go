package testing

import (
	"testing"

	"github.com/arloliu/teamdraw/lookup"
	"github.com/arloliu/teamdraw/strategy"
	"github.com/arloliu/teamdraw/types"
	"github.com/stretchr/testify/require"
)

func roster() []types.Person {
	return []types.Person{
		types.NewPerson("Jan", "Kowalski", "Dev", "R&D", "1"),
		types.NewPerson("Anna", "Nowak", "QA", "R&D", "2"),
		types.NewPerson("Piotr", "Wiśniewski", "Ops", "IT", "3"),
		types.NewPerson("Ewa", "Kamińska", "HR", "People", "4"),
		types.NewPerson("Łukasz", "Górski", "Dev", "R&D", "5"),
	}
}

func TestInvariants_AllocationAndLookup(t *testing.T) {
	people := roster()

	p, err := strategy.NewDepartmentBalanced().Allocate(people, 2, strategy.NewRand(3))
	require.NoError(t, err)

	RequireBalancedPartition(t, people, 2, p)

	idx := lookup.Build(p)
	RequireLookupRoundTrip(t, people, func(q string) types.LookupResult {
		return idx.Resolve(q, nil)
	})
}
