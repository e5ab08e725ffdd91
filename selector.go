package matchsort

import (
	"fmt"

	"github.com/jonwraymond/matchsort/rank"
)

// Selector extracts a comparable text value from an item. The caller's
// selector order is significant: it encodes priority, with earlier
// selectors outranking later ones when both match at the same tier.
type Selector[T any] struct {
	// Name identifies the selector. Informational for Field selectors;
	// for Key and KeyAny it is the map key being read.
	Name string

	// Get produces the text value for an item. A missing or
	// inapplicable field must yield "", never an error.
	Get func(T) string
}

// Field returns a selector backed by a caller-supplied resolver.
func Field[T any](name string, get func(T) string) Selector[T] {
	return Selector[T]{Name: name, Get: get}
}

// Key returns a selector that reads the named key from a string map.
// Missing keys resolve to the empty string.
func Key(name string) Selector[map[string]string] {
	return Selector[map[string]string]{
		Name: name,
		Get:  func(m map[string]string) string { return m[name] },
	}
}

// KeyAny returns a selector that reads the named key from a map of any
// values, coercing the value to text. Missing keys resolve to the empty
// string.
func KeyAny(name string) Selector[map[string]any] {
	return Selector[map[string]any]{
		Name: name,
		Get: func(m map[string]any) string {
			v, ok := m[name]
			if !ok {
				return ""
			}
			return coerce(v)
		},
	}
}

// itemText coerces an item to text for classification when no selectors
// are configured. Strings pass through; other values are stringified.
func itemText[T any](item T) string {
	return coerce(any(item))
}

func coerce(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// bestRank returns the best tier an item achieves across the selectors,
// along with the index of the selector that achieved it (-1 when no
// selectors are configured and the item itself is classified). A later
// selector must strictly beat the current best to take the credit, so
// ties keep the earliest selector.
func bestRank[T any](item T, selectors []Selector[T], query string) (rank.Tier, int) {
	if len(selectors) == 0 {
		return rank.Classify(itemText(item), query), -1
	}

	best := rank.TierNoMatch
	bestKey := -1
	for i, sel := range selectors {
		var value string
		if sel.Get != nil {
			value = sel.Get(item)
		}
		if tier := rank.Classify(value, query); tier > best {
			best = tier
			bestKey = i
		}
	}
	return best, bestKey
}
