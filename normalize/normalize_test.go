package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"plain ascii", "Jan Kowalski", "jan kowalski"},
		{"polish diacritics", "Zażółć Gęślą", "zazolc gesla"},
		{"stroked capital L", "Łukasz Górski", "lukasz gorski"},
		{"collapses inner runs", "Anna \t  Nowak", "anna nowak"},
		{"trims ends", "  Anna Nowak  ", "anna nowak"},
		{"upper case", "ANNA NOWAK", "anna nowak"},
		{"german umlaut", "Jürgen Müller", "jurgen muller"},
		{"scandinavian slash", "Søren Kierkegaard", "soren kierkegaard"},
		{"compatibility form", "ﬁona", "fiona"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Key(tt.in))
		})
	}
}

func TestKey_Equivalences(t *testing.T) {
	t.Parallel()

	want := Key("lukasz gorski")
	require.Equal(t, want, Key("Łukasz   Górski"))
	require.Equal(t, want, Key("  ŁUKASZ GÓRSKI  "))
}

func TestKey_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Jan Kowalski",
		"  ŁUKASZ   GÓRSKI ",
		"Zażółć\tgęślą jaźń",
		"Ærøskøbing Đorđe",
		"Ñandú  Çelik",
	}

	for _, in := range inputs {
		once := Key(in)
		require.Equal(t, once, Key(once), "input %q", in)
	}
}

func TestNameKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "jan kowalski", NameKey("Jan", "Kowalski"))
	require.Equal(t, "kowalski jan", NameKey("Kowalski", "Jan"))
	// Missing halves do not leave stray spaces behind.
	require.Equal(t, "kowalski", NameKey("", "Kowalski"))
}

func TestFoldAccents_PreservesCase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Lodz", FoldAccents("Łódź"))
	require.Equal(t, "  A  b ", FoldAccents("  Á  b "))
}

func TestCollapseSpaces(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a b c", CollapseSpaces(" a  b\t\tc\n"))
	require.Equal(t, "", CollapseSpaces("   "))
}
