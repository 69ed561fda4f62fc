package match

import "strings"

// stopwords are excluded from token sets so that similarity reflects the
// substantive words of a claim, not its connective tissue.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "in": {}, "on": {}, "at": {},
	"for": {}, "to": {}, "of": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "has": {}, "have": {}, "had": {}, "it": {},
	"this": {}, "that": {},
}

var punctReplacer = strings.NewReplacer(".", "", ",", "", "?", "")

// Tokenize lowercases text, strips a fixed punctuation set, splits on
// whitespace and drops stopwords, returning the remaining token set.
func Tokenize(text string) map[string]struct{} {
	cleaned := punctReplacer.Replace(strings.ToLower(text))
	tokens := make(map[string]struct{})
	for _, w := range strings.Fields(cleaned) {
		if _, skip := stopwords[w]; skip {
			continue
		}
		tokens[w] = struct{}{}
	}
	return tokens
}

// Similarity computes the Jaccard similarity |A∩B| / |A∪B| between the
// token sets of a and b. Returns 0.0 if either cleaned set is empty.
// Symmetric and pure: Similarity(a, b) == Similarity(b, a).
func Similarity(a, b string) float64 {
	setA := Tokenize(a)
	setB := Tokenize(b)

	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
