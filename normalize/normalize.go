// Package normalize canonicalizes display names into lookup keys.
//
// A key is the accent-folded, whitespace-collapsed, lower-cased form of a name:
//
//	normalize.Key("  ŁUKASZ   Górski ") == "lukasz gorski"
//
// Key is idempotent, so keys can be normalized again without changing them.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strokeLetters maps Latin letters that have no canonical decomposition to the
// base letter they are commonly typed as. NFKD leaves them untouched.
var strokeLetters = map[rune]rune{
	'Ł': 'L', 'ł': 'l',
	'Đ': 'D', 'đ': 'd',
	'Ø': 'O', 'ø': 'o',
	'Ħ': 'H', 'ħ': 'h',
	'Ŧ': 'T', 'ŧ': 't',
	'ı': 'i',
}

func foldStroke(r rune) rune {
	if base, ok := strokeLetters[r]; ok {
		return base
	}

	return r
}

// Key returns the lookup key for a raw name.
//
// Steps, in order:
//  1. Unicode-decompose (NFKD) and drop nonspacing marks, folding stroked letters
//  2. Collapse whitespace runs to a single space and trim
//  3. Lower-case
//
// Parameters:
//   - raw: Free-form name text (may be empty)
//
// Returns:
//   - string: Normalized key ("" for empty or whitespace-only input)
func Key(raw string) string {
	return strings.ToLower(CollapseSpaces(FoldAccents(raw)))
}

// NameKey returns the key of a first/last name pair in the given order.
func NameKey(first, last string) string {
	return Key(first + " " + last)
}

// FoldAccents strips diacritical marks so accented letters fold to their base letter.
//
// Case and whitespace are preserved.
func FoldAccents(s string) string {
	if s == "" {
		return ""
	}

	// transform.Chain is stateful, so each call builds its own chain.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Map(foldStroke))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// CollapseSpaces replaces every whitespace run with a single space and trims both ends.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
