package lead

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Record holds contact details extracted from free text. Fields stay empty
// until their detector validates them; the record is complete only when all
// three are present. Partial captures (phone+email without a plausible name)
// are deliberately not complete.
type Record struct {
	Name  string
	Phone string
	Email string
}

func (r Record) Complete() bool {
	return r.Name != "" && r.Phone != "" && r.Email != ""
}

// MissingFields lists which detectors found nothing, for re-asking.
func (r Record) MissingFields() []string {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Phone == "" {
		missing = append(missing, "phone")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	return missing
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Israeli phone shapes: leading zero, 1-2 digit prefix, optional
	// separator, 7 digits.
	phoneRe = regexp.MustCompile(`\b0\d{1,2}[-\s]?\d{7}\b`)

	// Two capitalized Latin words, or two Hebrew words of 2+ letters.
	latinNameRe  = regexp.MustCompile(`\b[A-Z][a-z]{1,}\s+[A-Z][a-z]{1,}\b`)
	hebrewNameRe = regexp.MustCompile(`[\x{05D0}-\x{05EA}]{2,}\s+[\x{05D0}-\x{05EA}]{2,}`)
)

// Self-introduction phrases; the words following one are taken as the name.
// Only explicit introductions qualify; "i am interested" must not produce a
// name, so bare "i am" is excluded.
var introRe = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(קוראים לי|שמי הוא|השם שלי|שמי|my name is)\s+`)

// Words that are contact-field labels, never names.
var labelWords = map[string]bool{
	"טלפון": true, "נייד": true, "פלאפון": true, "מספר": true,
	"מייל": true, "אימייל": true, "דוא\"ל": true,
	"phone": true, "email": true, "mail": true, "number": true,
	"name": true, "שם": true, "מלא": true,
}

// Extractor pulls name/phone/email out of a free-text message using
// independent detectors. Each field is validated before it is set.
type Extractor struct {
	validate *validator.Validate
}

func NewExtractor() *Extractor {
	return &Extractor{validate: validator.New()}
}

// Extract applies the three detectors. The returned record may be partial.
func (e *Extractor) Extract(text string) Record {
	return Record{
		Name:  e.extractName(text),
		Phone: e.extractPhone(text),
		Email: e.extractEmail(text),
	}
}

func (e *Extractor) extractEmail(text string) string {
	candidate := emailRe.FindString(text)
	if candidate == "" {
		return ""
	}
	if err := e.validate.Var(candidate, "email"); err != nil {
		return ""
	}
	return candidate
}

func (e *Extractor) extractPhone(text string) string {
	return phoneRe.FindString(text)
}

func (e *Extractor) extractName(text string) string {
	// Strip email tokens first so "john@example.com" never feeds the name
	// heuristics.
	cleaned := emailRe.ReplaceAllString(text, " ")
	cleaned = phoneRe.ReplaceAllString(cleaned, " ")

	// 1. Explicit self-introduction wins.
	if name := nameAfterIntro(cleaned); name != "" {
		return name
	}

	// 2. Two-word capitalized / Hebrew patterns.
	for _, re := range []*regexp.Regexp{latinNameRe, hebrewNameRe} {
		if candidate := re.FindString(cleaned); candidate != "" && !containsLabelWord(candidate) {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

func nameAfterIntro(text string) string {
	loc := introRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return ""
	}

	rest := strings.TrimSpace(text[loc[1]:])
	rest = strings.TrimLeft(rest, ":,. ")

	var name []string
	for _, w := range strings.Fields(rest) {
		w = strings.Trim(w, ".,;:!?")
		if w == "" || labelWords[strings.ToLower(w)] || looksLikeContact(w) {
			break
		}
		name = append(name, w)
		if len(name) == 2 {
			break
		}
	}
	return strings.Join(name, " ")
}

func containsLabelWord(candidate string) bool {
	for _, w := range strings.Fields(strings.ToLower(candidate)) {
		if labelWords[w] {
			return true
		}
	}
	return false
}

func looksLikeContact(word string) bool {
	return strings.Contains(word, "@") || phoneRe.MatchString(word)
}
