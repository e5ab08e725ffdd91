// Package search provides BM25-based ordering for large candidate sets.
//
// It exists to:
//   - Keep the matchsort core small and dependency-light
//   - Enable stronger relevance ranking without forcing heavier search
//     dependencies on every consumer
//
// The core matchsort package ranks by discrete match tiers, which is the
// right tool for typeahead filtering of modest lists. When the candidate
// set is large or fields hold prose rather than names, BM25 term
// relevance orders results better than tier buckets.
//
// # Usage
//
// The primary type is [BM25Sorter]. Flatten items with [Docs], reusing
// the selectors already written for the matchsort facade:
//
//	docs := search.Docs(contacts,
//	    matchsort.Field("name", func(c Contact) string { return c.Name }),
//	    matchsort.Field("bio", func(c Contact) string { return c.Bio }),
//	)
//	sorter := search.NewBM25Sorter(search.Config{
//	    Boosts: map[string]float64{"name": 3},
//	})
//	ordered, err := sorter.Sort("query terms", 10, docs)
//
// # Configuration
//
// [Config] allows customization of field boosts and safety limits:
//
//	cfg := search.Config{
//	    Boosts:      map[string]float64{"name": 3, "tags": 2},
//	    MaxDocs:     1000, // Limit documents to index (0 = unlimited)
//	    MaxFieldLen: 5000, // Truncate long field values (0 = unlimited)
//	}
//
// # Thread Safety
//
// BM25Sorter is safe for concurrent use. It uses an internal RWMutex to
// protect index state and efficiently caches the Bleve index based on
// document fingerprints, only rebuilding when the document set changes.
//
// # Behavior
//
// Empty queries return the first N documents in input order. Non-empty
// queries use BM25 ranking with deterministic tie-breaking (score DESC,
// then ID ASC); documents that do not match are omitted.
package search
