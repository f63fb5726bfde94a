package intent

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testCatalog() *Catalog {
	return NewCatalog([]Intent{
		{Name: "pricing", Category: "sales", Triggers: []string{"how much does it cost", "כמה זה עולה", "what is the price"}},
		{Name: "setup_process", Category: "product", Triggers: []string{"how does the setup work", "איך התהליך עובד"}},
		{Name: "general_info", Category: CatchAllCategory, Triggers: []string{"tell me about", "ספרי לי על"}},
	})
}

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "identical", a: "pricing", b: "pricing", expected: 100},
		{name: "substring scores 100", a: "price", b: "what is the price today", expected: 100},
		{name: "both empty", a: "", b: "", expected: 100},
		{name: "one empty", a: "", b: "abc", expected: 0},
		{name: "disjoint", a: "xyz", b: "abc", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PartialRatio(tt.a, tt.b))
		})
	}
}

func TestPartialRatioSymmetricOnWindows(t *testing.T) {
	// The shorter side slides over the longer side regardless of argument order.
	assert.Equal(t, PartialRatio("price", "the price is high"), PartialRatio("the price is high", "price"))
}

func TestLexicalMatcherFindsIntent(t *testing.T) {
	m := NewLexicalMatcher(testCatalog(), 70, testLogger())

	match := m.Match("Hi, how much does it COST?")
	require.NotNil(t, match)
	assert.Equal(t, "pricing", match.Intent.Name)
	assert.GreaterOrEqual(t, match.Score, 70)
}

func TestLexicalMatcherHebrew(t *testing.T) {
	m := NewLexicalMatcher(testCatalog(), 70, testLogger())

	match := m.Match("שלום, כמה זה עולה בחודש?")
	require.NotNil(t, match)
	assert.Equal(t, "pricing", match.Intent.Name)
}

func TestLexicalMatcherBelowThreshold(t *testing.T) {
	m := NewLexicalMatcher(testCatalog(), 70, testLogger())

	assert.Nil(t, m.Match("completely unrelated utterance zzz"))
	assert.Nil(t, m.Match("   "))
}

func TestLexicalMatcherTieBreakFirstEntry(t *testing.T) {
	catalog := NewCatalog([]Intent{
		{Name: "first", Category: "a", Triggers: []string{"identical trigger"}},
		{Name: "second", Category: "b", Triggers: []string{"identical trigger"}},
	})
	m := NewLexicalMatcher(catalog, 70, testLogger())

	match := m.Match("identical trigger")
	require.NotNil(t, match)
	assert.Equal(t, "first", match.Intent.Name)
}
