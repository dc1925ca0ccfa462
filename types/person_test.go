package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	t.Parallel()

	p := NewPerson("  Jan  Maria ", "Kowalski\t-Nowak", " Senior   Engineer", " R&D ", " 12 ")

	require.Equal(t, "Jan Maria", p.FirstName)
	require.Equal(t, "Kowalski -Nowak", p.LastName)
	require.Equal(t, "Senior Engineer", p.Position)
	require.Equal(t, "R&D", p.Department)
	require.Equal(t, "12", p.SequenceNo)
}

func TestPersonDisplayName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Łukasz Górski", NewPerson("Łukasz", "Górski", "", "", "").DisplayName())
	require.Equal(t, "Górski", Person{LastName: "Górski"}.DisplayName())
}

func TestPersonMissing(t *testing.T) {
	t.Parallel()

	require.Empty(t, NewPerson("a", "b", "c", "d", "").Missing())
	require.Equal(t, []string{"first_name", "department"}, Person{LastName: "b", Position: "c", Department: "  "}.Missing())
}

func TestPersonCompareByLastName(t *testing.T) {
	t.Parallel()

	a := Person{FirstName: "Jan", LastName: "Adamski"}
	b := Person{FirstName: "Adam", LastName: "Bednarz"}
	c := Person{FirstName: "Zofia", LastName: "Adamski"}

	require.Less(t, a.CompareByLastName(b), 0)
	require.Greater(t, b.CompareByLastName(a), 0)
	require.Less(t, a.CompareByLastName(c), 0)
	require.Equal(t, 0, a.CompareByLastName(a))
}
