package retrieval

import "strings"

// stopWords is the fixed function-word set excluded from similarity
// computation on both the query and document side.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "is": {},
	"are": {}, "for": {}, "of": {}, "to": {}, "in": {},
}

// tokenSet lower-cases text, splits on whitespace, and drops stop words.
// No punctuation stripping and no stemming; duplicates collapse into the set.
func tokenSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, tok := range fields {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// Similarity computes the token Jaccard index between query and document
// text: |Q ∩ D| / |Q ∪ D| over stop-word-filtered word sets. Returns 0
// when both sets are empty; always in [0, 1].
func Similarity(query, doc string) float64 {
	q := tokenSet(query)
	d := tokenSet(doc)

	intersection := 0
	for tok := range q {
		if _, ok := d[tok]; ok {
			intersection++
		}
	}
	union := len(q) + len(d) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
