// Package rank classifies how well a candidate string matches a query.
//
// It assigns one of seven discrete tiers, from best to worst:
//
//	TierEquals > TierStartsWith > TierWordStartsWith > TierContains >
//	TierAcronym > TierSubsequence > TierNoMatch
//
// Classification is case-insensitive (both sides are lowercased) and purely
// textual: no locale-aware collation, no edit-distance scoring. The two
// weakest matching tiers use simple derived forms of the candidate:
//
//   - TierAcronym matches against the candidate's acronym, the first
//     character of each space- or hyphen-delimited sub-word ("foo-bar baz"
//     has acronym "fbb").
//   - TierSubsequence requires every query character to appear in the
//     candidate in order, found by a single forward scan with no
//     backtracking.
//
// Single-character queries only match via the substring tiers; if the
// character is absent from the candidate the result is TierNoMatch, never
// an acronym or subsequence match.
//
// # Usage
//
//	rank.Classify("Hello World", "hw")    // TierAcronym
//	rank.Classify("Hello World", "world") // TierWordStartsWith
//	rank.Classify("Hello World", "xyz")   // TierNoMatch
//
// Tiers are ordinary ordered integers, so callers compare them directly:
//
//	if rank.Classify(name, query) >= rank.TierContains { ... }
//
// # Thread Safety
//
// Everything in this package is a pure function over its arguments; all
// functions are safe for concurrent use.
package rank
