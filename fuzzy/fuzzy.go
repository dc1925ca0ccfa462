// Package fuzzy ranks lookup keys by similarity to a query.
//
// Similarity is the diff "matching blocks" ratio 2*M/T, where M is the number of
// characters in matching blocks and T the combined length of both strings. A
// ratio of 1 means identical, 0 means nothing in common.
package fuzzy

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/arloliu/teamdraw/types"
)

// Default suggestion limits.
const (
	DefaultMaxResults    = 5
	DefaultMinSimilarity = 0.75
)

// Matcher holds validated suggestion limits.
type Matcher struct {
	maxResults    int
	minSimilarity float64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithMaxResults sets the maximum number of suggestions returned.
func WithMaxResults(n int) Option {
	return func(m *Matcher) {
		m.maxResults = n
	}
}

// WithMinSimilarity sets the similarity cutoff in [0, 1].
func WithMinSimilarity(s float64) Option {
	return func(m *Matcher) {
		m.minSimilarity = s
	}
}

// NewMatcher creates a matcher with DefaultMaxResults and DefaultMinSimilarity
// unless overridden.
//
// Parameters:
//   - opts: Optional limits
//
// Returns:
//   - *Matcher: Validated matcher
//   - error: types.ErrInvalidMatcherConfig if the similarity is outside [0, 1]
//     or the result count is below 1
//
// Example:
//
//	m, err := fuzzy.NewMatcher(fuzzy.WithMaxResults(3))
//	if err != nil {
//	    return err
//	}
//	keys := m.Suggest("jan kowlaski", index.Keys())
func NewMatcher(opts ...Option) (*Matcher, error) {
	m := &Matcher{
		maxResults:    DefaultMaxResults,
		minSimilarity: DefaultMinSimilarity,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.maxResults < 1 {
		return nil, fmt.Errorf("%w: max results must be at least 1, got %d", types.ErrInvalidMatcherConfig, m.maxResults)
	}
	if m.minSimilarity < 0 || m.minSimilarity > 1 {
		return nil, fmt.Errorf("%w: min similarity must be within [0, 1], got %v", types.ErrInvalidMatcherConfig, m.minSimilarity)
	}

	return m, nil
}

// MaxResults returns the configured result limit.
func (m *Matcher) MaxResults() int {
	return m.maxResults
}

// MinSimilarity returns the configured cutoff.
func (m *Matcher) MinSimilarity() float64 {
	return m.minSimilarity
}

// Suggest returns the corpus keys most similar to query using the matcher's limits.
func (m *Matcher) Suggest(query types.LookupKey, corpus []types.LookupKey) []types.LookupKey {
	return Suggest(query, corpus, m.maxResults, m.minSimilarity)
}

type scored struct {
	key   types.LookupKey
	score float64
	order int
}

// Suggest returns up to maxResults distinct corpus keys whose similarity to query
// is at least minSimilarity, best first.
//
// Equal scores keep the order of first appearance in the corpus. The result is
// empty, never nil, when nothing qualifies or maxResults <= 0.
//
// Parameters:
//   - query: Normalized query key
//   - corpus: Candidate keys (duplicates allowed, scored once)
//   - maxResults: Maximum number of keys returned
//   - minSimilarity: Cutoff in [0, 1]
//
// Returns:
//   - []types.LookupKey: Matching keys by descending similarity
func Suggest(query types.LookupKey, corpus []types.LookupKey, maxResults int, minSimilarity float64) []types.LookupKey {
	if maxResults <= 0 || len(corpus) == 0 {
		return []types.LookupKey{}
	}

	// Candidates are seq1 and the query seq2, so the query's index is built once.
	matcher := difflib.NewMatcher(nil, splitRunes(string(query)))
	seen := make(map[types.LookupKey]struct{}, len(corpus))
	var hits []scored

	for i, key := range corpus {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		matcher.SetSeq1(splitRunes(string(key)))
		if matcher.RealQuickRatio() < minSimilarity || matcher.QuickRatio() < minSimilarity {
			continue
		}
		if score := matcher.Ratio(); score >= minSimilarity {
			hits = append(hits, scored{key: key, score: score, order: i})
		}
	}

	slices.SortFunc(hits, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.order, b.order)
	})

	result := make([]types.LookupKey, 0, min(maxResults, len(hits)))
	for _, h := range hits[:min(maxResults, len(hits))] {
		result = append(result, h.key)
	}

	return result
}

// Similarity returns the matching-blocks ratio of a and b in [0, 1].
//
// Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	if s == "" {
		return []string{}
	}

	return strings.Split(s, "")
}
