package response

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"atarize-core/pkg/rag/classify"
)

func TestIsUsable(t *testing.T) {
	e := NewEvaluator()

	tests := []struct {
		name     string
		reply    string
		expected bool
	}{
		{name: "empty", reply: "", expected: false},
		{name: "whitespace only", reply: "   \n ", expected: false},
		{name: "under minimum length", reply: "ok sure", expected: false},
		{
			name:     "short factual answer is usable",
			reply:    "Setup takes 3 to 5 days.",
			expected: true,
		},
		{
			name:     "single boilerplate phrase in long answer is usable",
			reply:    "I have no information about that specific integration, but our API supports custom webhooks you could use instead.",
			expected: true,
		},
		{
			name:     "two boilerplate phrases fail",
			reply:    "I have no information about this and I cannot help you with this request.",
			expected: false,
		},
		{
			name:     "one boilerplate phrase with extreme brevity fails",
			reply:    "אין לי שום מידע על זה",
			expected: false,
		},
		{
			name:     "hebrew factual answer is usable",
			reply:    "ההקמה לוקחת בין שלושה לחמישה ימי עסקים.",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.IsUsable(tt.reply))
		})
	}
}

func TestIsUsableLengthBoundary(t *testing.T) {
	e := NewEvaluator()

	assert.False(t, e.IsUsable(strings.Repeat("a", 14)))
	assert.True(t, e.IsUsable(strings.Repeat("a", 15)))
}

func TestFallbacksCoverBothLanguages(t *testing.T) {
	f := NewFallbacks()

	for _, lang := range []string{classify.LangHebrew, classify.LangEnglish} {
		assert.NotEmpty(t, f.Apology(lang))
		assert.NotEmpty(t, f.Greeting(lang))
		assert.NotEmpty(t, f.LeadTransition(lang))
		assert.NotEmpty(t, f.Disengage(lang))
		assert.NotEmpty(t, f.Closure(lang))
		assert.NotEmpty(t, f.Clarify(lang))
	}

	assert.Contains(t, f.LeadConfirmed(classify.LangEnglish, "Dana"), "Dana")
	assert.Contains(t, f.MissingFields(classify.LangEnglish, []string{"phone", "email"}), "phone, email")
	assert.Contains(t, f.MissingFields(classify.LangHebrew, []string{"phone"}), "טלפון")
}
