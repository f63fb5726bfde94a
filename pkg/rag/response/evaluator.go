package response

import (
	"strings"
	"unicode/utf8"
)

// Boilerplate "no information" phrases. A single hit is not enough to fail a
// reply; short factual answers kept tripping naive substring checks.
var vaguePhrases = []string{
	"i don't know anything about",
	"i have no information about",
	"i cannot help you with this",
	"i'm not able to assist",
	"אין לי שום מידע על",
	"לא יכול לעזור עם זה",
	"לא מוכר לי",
}

const (
	minUsableLength    = 15
	briefVagueLength   = 30
	minVaguePhraseHits = 2
)

// Evaluator classifies generated replies as usable or vague. Deliberately
// conservative: failure requires corroborating signals, never one generic
// phrase alone.
type Evaluator struct {
	phrases []string
}

func NewEvaluator() *Evaluator {
	return &Evaluator{phrases: vaguePhrases}
}

// NewEvaluatorWithPhrases allows deployments to swap the boilerplate list.
func NewEvaluatorWithPhrases(phrases []string) *Evaluator {
	return &Evaluator{phrases: phrases}
}

// IsUsable reports whether a generated reply can be returned to the user.
// A reply fails only when it is empty, extremely short, or carries at least
// two boilerplate phrases (or one phrase combined with extreme brevity).
func (e *Evaluator) IsUsable(reply string) bool {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return false
	}
	if utf8.RuneCountInString(trimmed) < minUsableLength {
		return false
	}

	lower := strings.ToLower(trimmed)
	hits := 0
	for _, phrase := range e.phrases {
		if strings.Contains(lower, phrase) {
			hits++
		}
	}

	if hits >= minVaguePhraseHits {
		return false
	}
	if hits >= 1 && utf8.RuneCountInString(trimmed) < briefVagueLength {
		return false
	}
	return true
}
