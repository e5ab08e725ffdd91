package rank

import (
	"strings"
	"unicode/utf8"
)

// Tier expresses how well a candidate string matches a query, ordered from
// TierNoMatch (fails) to TierEquals (best). Higher values outrank lower ones,
// so tiers compare directly with <, >, and ==.
type Tier int

const (
	// TierNoMatch means the candidate does not match the query at all.
	TierNoMatch Tier = iota - 1

	// TierSubsequence means every query character appears in the candidate
	// in order, not necessarily contiguously.
	TierSubsequence

	// TierAcronym means the candidate's acronym contains the query.
	TierAcronym

	// TierContains means the candidate contains the query as a substring.
	TierContains

	// TierWordStartsWith means a word inside the candidate starts with
	// the query (the query immediately follows a space).
	TierWordStartsWith

	// TierStartsWith means the candidate begins with the query.
	TierStartsWith

	// TierEquals means the candidate and query are identical.
	TierEquals
)

var tierNames = map[Tier]string{
	TierNoMatch:        "no-match",
	TierSubsequence:    "subsequence",
	TierAcronym:        "acronym",
	TierContains:       "contains",
	TierWordStartsWith: "word-starts-with",
	TierStartsWith:     "starts-with",
	TierEquals:         "equals",
}

// String returns a short human-readable name for the tier.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// Match reports whether the tier counts as a match.
func (t Tier) Match() bool {
	return t > TierNoMatch
}

// Classify returns the best tier at which candidate matches query.
// Both strings are lowercased first; matching is case-insensitive and
// involves no other normalization. The checks run in fixed priority
// order and the first that passes wins.
func Classify(candidate, query string) Tier {
	candidate = strings.ToLower(candidate)
	query = strings.ToLower(query)

	queryLen := utf8.RuneCountInString(query)

	// A longer query can never match a shorter candidate.
	if queryLen > utf8.RuneCountInString(candidate) {
		return TierNoMatch
	}
	if candidate == query {
		return TierEquals
	}
	if strings.HasPrefix(candidate, query) {
		return TierStartsWith
	}
	if strings.Contains(candidate, " "+query) {
		return TierWordStartsWith
	}
	if strings.Contains(candidate, query) {
		return TierContains
	}
	// A single character either appears as a substring or not at all;
	// it never matches via the acronym or subsequence tiers.
	if queryLen == 1 {
		return TierNoMatch
	}
	if strings.Contains(Acronym(candidate), query) {
		return TierAcronym
	}
	if inOrderSubsequence(candidate, query) {
		return TierSubsequence
	}
	return TierNoMatch
}

// Acronym returns the string formed from the first character of each
// space- or hyphen-delimited sub-word of s, in order. Empty sub-words
// contribute nothing, so "foo--bar baz" yields "fbb".
func Acronym(s string) string {
	var b strings.Builder
	for _, word := range strings.Split(s, " ") {
		for _, sub := range strings.Split(word, "-") {
			if sub == "" {
				continue
			}
			r, _ := utf8.DecodeRuneInString(sub)
			b.WriteRune(r)
		}
	}
	return b.String()
}

// inOrderSubsequence reports whether every character of query appears in
// candidate in the same relative order. A single forward scan: each query
// character is matched against the first occurrence at or past the cursor,
// and the cursor never moves backwards. Not edit-distance matching.
func inOrderSubsequence(candidate, query string) bool {
	cursor := 0
	for _, r := range query {
		i := strings.IndexRune(candidate[cursor:], r)
		if i < 0 {
			return false
		}
		cursor += i + utf8.RuneLen(r)
	}
	return true
}
