package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty", text: "", expected: 0},
		{name: "single rune rounds up", text: "a", expected: 1},
		{name: "exactly one token", text: "abcd", expected: 1},
		{name: "five runes round up", text: "abcde", expected: 2},
		{name: "hebrew runes counted not bytes", text: "שלום", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateTokens(tt.text))
		})
	}
}

func TestEstimateTokensMonotonic(t *testing.T) {
	prev := 0
	for i := 1; i <= 64; i++ {
		cur := EstimateTokens(strings.Repeat("x", i))
		assert.GreaterOrEqual(t, cur, prev, "estimate must not shrink as text grows")
		prev = cur
	}
}

func TestCountTokensIncludesOverhead(t *testing.T) {
	empty := CountTokens(nil)
	assert.Equal(t, conversationOverheadTokens, empty)

	msgs := []Message{{Role: "user", Content: "abcd"}}
	// conversation + message overhead + role + content
	expected := conversationOverheadTokens + messageOverheadTokens + EstimateTokens("user") + 1
	assert.Equal(t, expected, CountTokens(msgs))

	more := append(msgs, Message{Role: "assistant", Content: "abcd"})
	assert.Greater(t, CountTokens(more), CountTokens(msgs))
}
