package lookup

import (
	"slices"
	"strings"

	typeahead "github.com/sahilm/fuzzy"

	"github.com/arloliu/teamdraw/fuzzy"
	"github.com/arloliu/teamdraw/normalize"
	"github.com/arloliu/teamdraw/types"
)

// BuildIndex maps every person's name keys to their team.
//
// Teams are visited in order and members in display order. For each person the
// "first last" key is inserted and appended to keys, then the "last first" key.
// Later insertions overwrite earlier ones on collision.
//
// Parameters:
//   - p: Partition to index
//
// Returns:
//   - map[types.LookupKey]types.LookupEntry: Key to owning team
//   - []types.LookupKey: Every generated key in insertion order, duplicates kept
func BuildIndex(p types.Partition) (map[types.LookupKey]types.LookupEntry, []types.LookupKey) {
	idx := Build(p)

	return idx.entries, idx.keys
}

// Index is an immutable name index over one partition.
type Index struct {
	entries      map[types.LookupKey]types.LookupEntry
	keys         []types.LookupKey
	displayNames map[types.LookupKey]string

	// searchKeys and searchNames are parallel: one "first last" entry per person.
	searchKeys  []types.LookupKey
	searchNames []string
}

// Build creates the index for p.
//
// Besides the key map and corpus of BuildIndex, the index remembers each key's
// display name ("First Last" with original diacritics) and a per-person list
// used by Search.
//
// Parameters:
//   - p: Partition to index (its member slices are referenced, not copied)
//
// Returns:
//   - *Index: Index ready for concurrent reads
//
// Example:
//
//	idx := lookup.Build(partition)
//	if entry, ok := idx.Get(types.LookupKey(normalize.Key("Kowalski Jan"))); ok {
//	    fmt.Println("team", entry.TeamNumber)
//	}
func Build(p types.Partition) *Index {
	total := p.TotalMembers()
	idx := &Index{
		entries:      make(map[types.LookupKey]types.LookupEntry, 2*total),
		keys:         make([]types.LookupKey, 0, 2*total),
		displayNames: make(map[types.LookupKey]string, 2*total),
		searchKeys:   make([]types.LookupKey, 0, total),
		searchNames:  make([]string, 0, total),
	}

	for _, team := range p.Teams {
		entry := types.LookupEntry{TeamNumber: team.Number, Team: team}
		for _, person := range team.Members {
			display := person.DisplayName()
			forward := types.LookupKey(normalize.NameKey(person.FirstName, person.LastName))
			reverse := types.LookupKey(normalize.NameKey(person.LastName, person.FirstName))

			for _, key := range []types.LookupKey{forward, reverse} {
				idx.entries[key] = entry
				idx.displayNames[key] = display
				idx.keys = append(idx.keys, key)
			}

			idx.searchKeys = append(idx.searchKeys, forward)
			idx.searchNames = append(idx.searchNames, display)
		}
	}

	return idx
}

// Get returns the entry for an already-normalized key.
func (idx *Index) Get(key types.LookupKey) (types.LookupEntry, bool) {
	entry, ok := idx.entries[key]

	return entry, ok
}

// Keys returns the suggestion corpus in insertion order.
//
// The returned slice is shared; callers must not modify it.
func (idx *Index) Keys() []types.LookupKey {
	return idx.keys
}

// DisplayName returns the "First Last" name stored for key.
func (idx *Index) DisplayName(key types.LookupKey) (string, bool) {
	name, ok := idx.displayNames[key]

	return name, ok
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Resolve answers a participant query.
//
// The query is normalized first. An exact key hit returns LookupFound with the
// team number and a copy of its members. Otherwise matcher proposes near keys
// (LookupSuggested) or nothing qualifies (LookupNoMatch). A blank query is a
// miss without suggestions.
//
// Parameters:
//   - query: Raw name as typed, in either order
//   - matcher: Suggestion limits (package defaults when nil)
//
// Returns:
//   - types.LookupResult: Status and payload; never LookupNotPublished
func (idx *Index) Resolve(query string, matcher *fuzzy.Matcher) types.LookupResult {
	key := types.LookupKey(normalize.Key(query))
	if key == "" {
		return types.LookupResult{Status: types.LookupNoMatch}
	}

	if entry, ok := idx.entries[key]; ok {
		return types.LookupResult{
			Status:     types.LookupFound,
			Key:        key,
			TeamNumber: entry.TeamNumber,
			Members:    slices.Clone(entry.Members()),
		}
	}

	var near []types.LookupKey
	if matcher != nil {
		near = matcher.Suggest(key, idx.keys)
	} else {
		near = fuzzy.Suggest(key, idx.keys, fuzzy.DefaultMaxResults, fuzzy.DefaultMinSimilarity)
	}
	if len(near) == 0 {
		return types.LookupResult{Status: types.LookupNoMatch, Key: key}
	}

	suggestions := make([]types.Suggestion, 0, len(near))
	for _, k := range near {
		suggestions = append(suggestions, types.Suggestion{Key: k, DisplayName: idx.displayNames[k]})
	}

	return types.LookupResult{Status: types.LookupSuggested, Key: key, Suggestions: suggestions}
}

// Search returns people whose display name contains pattern as a subsequence.
//
// Matching is case-insensitive and ranked by the typeahead score (consecutive
// and word-start matches rank higher). Search backs as-you-type pickers; exact
// lookups go through Resolve.
//
// Parameters:
//   - pattern: Partial name; accents are folded before matching
//   - limit: Maximum number of results (all when <= 0)
//
// Returns:
//   - []types.Suggestion: Matches best first, empty for a blank pattern
func (idx *Index) Search(pattern string, limit int) []types.Suggestion {
	pattern = strings.ToLower(normalize.CollapseSpaces(normalize.FoldAccents(pattern)))
	if pattern == "" || len(idx.searchNames) == 0 {
		return []types.Suggestion{}
	}

	folded := make([]string, len(idx.searchNames))
	for i, name := range idx.searchNames {
		folded[i] = strings.ToLower(normalize.FoldAccents(name))
	}

	matches := typeahead.Find(pattern, folded)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]types.Suggestion, 0, len(matches))
	for _, m := range matches {
		out = append(out, types.Suggestion{
			Key:         idx.searchKeys[m.Index],
			DisplayName: idx.searchNames[m.Index],
		})
	}

	return out
}
