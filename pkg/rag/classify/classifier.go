package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Languages the bot answers in.
const (
	LangHebrew  = "he"
	LangEnglish = "en"
)

// Topics recognized on assistant turns, used to resolve bare confirmations.
const (
	TopicPricing  = "pricing"
	TopicExamples = "examples"
	TopicProcess  = "process"
)

var (
	latinRe = regexp.MustCompile(`[a-zA-Z]`)
	punctRe = regexp.MustCompile(`\p{P}+`)
)

// Classifier is the single canonical home for every utterance heuristic.
// Earlier iterations of the product accumulated several diverging copies of
// "is this a greeting"; everything now goes through here.
type Classifier struct {
	lists Lists
}

func NewClassifier(lists Lists) *Classifier {
	return &Classifier{lists: lists}
}

// Language detects Hebrew or English by script.
func (c *Classifier) Language(text string) string {
	if latinRe.MatchString(text) {
		return LangEnglish
	}
	return LangHebrew
}

func (c *Classifier) IsGreeting(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return containsPhrase(lower, c.lists.GreetingsHe) || containsPhrase(lower, c.lists.GreetingsEn)
}

func (c *Classifier) IsSmallTalk(text string) bool {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) <= 2 {
		return true
	}
	return containsPhrase(strings.ToLower(trimmed), c.lists.SmallTalk)
}

// IsConfirmation matches only when the whole utterance is a confirmation
// word, so "yes, but how much does it cost" is not swallowed.
func (c *Classifier) IsConfirmation(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, w := range c.lists.ConfirmationWords {
		if lower == w {
			return true
		}
	}
	return false
}

// HasBuyingIntent detects direct purchase commitment. Commitment phrases win
// over exclusions, so "אני רוצה לקנות את הבוט. כמה זה עולה?" still counts.
func (c *Classifier) HasBuyingIntent(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return containsAny(lower, c.lists.BuyingIntent)
}

// IsPositiveEngagement counts interest signals toward the lead offer.
// Information-only phrasings ("just want info", "מה המחיר") are excluded so
// curiosity alone never triggers a contact-details request.
func (c *Classifier) IsPositiveEngagement(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if containsAny(lower, c.lists.BuyingIntentExclusions) {
		return false
	}
	return containsAny(lower, c.lists.PositiveEngagement)
}

func (c *Classifier) IsDisengagement(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return containsPhrase(lower, c.lists.Disengagement)
}

// IsLeadStatusQuery matches follow-ups about an already-submitted lead.
func (c *Classifier) IsLeadStatusQuery(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return containsPhrase(lower, c.lists.LeadStatusKeywords)
}

// BusinessVertical returns the first vertical whose indicators appear in the
// text, or "" when none match.
func (c *Classifier) BusinessVertical(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	// Stable iteration order keeps detection deterministic.
	for _, vertical := range []string{"recruitment", "restaurant", "retail", "real_estate", "medical"} {
		if containsAny(lower, c.lists.BusinessVerticals[vertical]) {
			return vertical
		}
	}
	return ""
}

// IsVeryShort flags inputs under three runes that are not confirmations.
func (c *Classifier) IsVeryShort(text string) bool {
	trimmed := strings.TrimSpace(text)
	return utf8.RuneCountInString(trimmed) < 3 && !c.IsConfirmation(trimmed)
}

// TopicOfMessage infers what an assistant message was about, so a bare "yes"
// from the user can be answered with the matching knowledge.
func (c *Classifier) TopicOfMessage(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(message, "מחיר") || strings.Contains(message, "עלות") || strings.Contains(lower, "pricing") || strings.Contains(lower, "price"):
		return TopicPricing
	case strings.Contains(message, "דוגמ") || strings.Contains(lower, "example"):
		return TopicExamples
	case strings.Contains(message, "תהליך") || strings.Contains(lower, "process"):
		return TopicProcess
	default:
		return ""
	}
}

func containsAny(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// containsPhrase matches on word boundaries, so short entries like "hi" or
// "די" do not fire inside longer words.
func containsPhrase(lower string, phrases []string) bool {
	padded := " " + punctRe.ReplaceAllString(lower, " ") + " "
	for _, p := range phrases {
		if strings.Contains(padded, " "+p+" ") {
			return true
		}
	}
	return false
}
