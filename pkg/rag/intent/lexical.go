package intent

import (
	"log"
	"strings"
)

// LexicalMatch is a fuzzy hit against a catalog trigger phrase.
type LexicalMatch struct {
	Intent Intent
	Score  int // partial ratio, 0-100
}

// LexicalMatcher scores an utterance against every trigger phrase in the
// catalog using a partial-string similarity ratio. Case- and
// whitespace-normalizing, language-agnostic: it operates on raw runes with
// no stemming.
type LexicalMatcher struct {
	catalog   *Catalog
	threshold int
	logger    *log.Logger
}

func NewLexicalMatcher(catalog *Catalog, threshold int, logger *log.Logger) *LexicalMatcher {
	return &LexicalMatcher{
		catalog:   catalog,
		threshold: threshold,
		logger:    logger,
	}
}

// Match returns the best-scoring catalog entry at or above the threshold,
// or nil. Ties go to the first entry in catalog iteration order.
func (m *LexicalMatcher) Match(utterance string) *LexicalMatch {
	normalized := normalize(utterance)
	if normalized == "" {
		return nil
	}

	var best *LexicalMatch
	for _, in := range m.catalog.Intents() {
		for _, trigger := range in.Triggers {
			score := PartialRatio(normalized, normalize(trigger))
			if best == nil || score > best.Score {
				best = &LexicalMatch{Intent: in, Score: score}
			}
		}
	}

	if best == nil || best.Score < m.threshold {
		return nil
	}

	m.logger.Printf("[DEBUG] Lexical match: %s (score: %d)", best.Intent.Name, best.Score)
	return best
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// PartialRatio computes a 0-100 similarity between two strings: the best
// Levenshtein ratio between the shorter string and any equally long rune
// window of the longer one. Equivalent in spirit to fuzzy partial matching:
// a phrase embedded verbatim in a longer utterance scores 100.
func PartialRatio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		if len(ra) == len(rb) {
			return 100
		}
		return 0
	}
	shorter, longer := ra, rb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		window := longer[start : start+len(shorter)]
		dist := levenshtein(shorter, window)
		score := 100 * (len(shorter) - dist) / len(shorter)
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
