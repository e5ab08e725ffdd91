package matchsort

import (
	"github.com/jonwraymond/matchsort/rank"
)

// Match is one ranked result: the original item plus how it matched.
type Match[T any] struct {
	// Item is the original item, shared with the caller's input slice.
	Item T

	// Tier is the best rank tier the item achieved.
	Tier rank.Tier

	// Key is the index of the selector that achieved Tier, or -1 when
	// the item itself was classified (no selectors configured).
	Key int
}

// Matches is an ordered slice of Match with helper methods.
type Matches[T any] []Match[T]

// Items returns just the items, in ranked order.
func (m Matches[T]) Items() []T {
	items := make([]T, len(m))
	for i, match := range m {
		items[i] = match.Item
	}
	return items
}

// FilterMinTier returns the matches whose tier is min or better.
func (m Matches[T]) FilterMinTier(min rank.Tier) Matches[T] {
	var filtered Matches[T]
	for _, match := range m {
		if match.Tier >= min {
			filtered = append(filtered, match)
		}
	}
	return filtered
}
