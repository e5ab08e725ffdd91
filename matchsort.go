package matchsort

import (
	"sort"

	"github.com/jonwraymond/matchsort/rank"
)

// Options configures a ranking call.
type Options[T any] struct {
	// Keys selects which fields of an item to classify, in priority
	// order. If empty, the item itself is treated as text.
	Keys []Selector[T]
}

// candidate is the transient record tracked per surviving item: the item
// itself (shared with the caller's slice, never copied deeply), the best
// tier it achieved, its original input index, and the selector index that
// produced the best tier (-1 for the plain-text case).
type candidate[T any] struct {
	item  T
	tier  rank.Tier
	index int
	key   int
}

// before is the order policy: tier descending, then selector index
// ascending with -1 (no selector) lowest among indices, then original
// input index ascending. It is a strict total order over distinct
// candidates, which makes the final order deterministic regardless of
// the sort algorithm's own stability.
func (a candidate[T]) before(b candidate[T]) bool {
	if a.tier != b.tier {
		return a.tier > b.tier
	}
	if a.key != b.key {
		if a.key == -1 {
			return false
		}
		if b.key == -1 {
			return true
		}
		return a.key < b.key
	}
	return a.index < b.index
}

// Ranked classifies every item against query and returns the matching
// subset ordered best to worst, with the tier and winning selector index
// attached to each match. The input slice is never mutated.
func Ranked[T any](items []T, query string, opts Options[T]) Matches[T] {
	records := make([]candidate[T], 0, len(items))
	for i, item := range items {
		tier, key := bestRank(item, opts.Keys, query)
		if !tier.Match() {
			continue
		}
		records = append(records, candidate[T]{item: item, tier: tier, index: i, key: key})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].before(records[j])
	})

	matches := make(Matches[T], len(records))
	for i, rec := range records {
		matches[i] = Match[T]{Item: rec.item, Tier: rec.tier, Key: rec.key}
	}
	return matches
}

// Sort returns the subset of items matching query, ordered best match
// first. Items that do not match at any tier are dropped. The result is
// a newly allocated slice; the input is never mutated.
func Sort[T any](items []T, query string, opts Options[T]) []T {
	return Ranked(items, query, opts).Items()
}

// Strings ranks and orders a plain string slice. Equivalent to calling
// Sort with zero Options.
func Strings(items []string, query string) []string {
	return Sort(items, query, Options[string]{})
}
