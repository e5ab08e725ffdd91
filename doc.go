// Package matchsort ranks and orders an in-memory collection against a
// query string, returning the matching subset ordered best match first.
// It is built for typeahead and autocomplete style filtering over slices
// of strings or structured records.
//
// # Basic Usage
//
// Plain strings need no configuration:
//
//	matchsort.Strings([]string{"apple", "banana", "grape"}, "ap")
//	// ["apple", "grape"]
//
// Structured records supply selectors via Options.Keys, in priority order:
//
//	type Contact struct{ Name, Email string }
//
//	ordered := matchsort.Sort(contacts, "jo", matchsort.Options[Contact]{
//	    Keys: []matchsort.Selector[Contact]{
//	        matchsort.Field("name", func(c Contact) string { return c.Name }),
//	        matchsort.Field("email", func(c Contact) string { return c.Email }),
//	    },
//	})
//
// [Ranked] returns the same ordering with the tier and winning selector
// attached to each result, for callers that need the metadata.
//
// # Ordering
//
// Each item is classified into a discrete tier by [rank.Classify]; see
// that package for the tier definitions. Results are ordered by tier
// (best first), then by which selector matched (earlier-declared
// selectors win), then by original input position. Every pair of
// candidates resolves to a strict before/after, so the output order is
// deterministic and items of equal rank keep their input order.
//
// Items that match at no tier are dropped; an empty result is a normal
// outcome, not an error. Nothing here errors: missing fields classify as
// empty text, and non-string items are stringified before comparison.
//
// # Large Collections
//
// The search subpackage offers bleve-backed BM25 ordering as a heavier
// alternative for large candidate sets, kept out of this package so core
// consumers stay dependency-light.
//
// # Thread Safety
//
// Every call is a pure function over its inputs with no shared state.
// Concurrent calls are safe as long as the caller does not mutate the
// input slice mid-call.
package matchsort
