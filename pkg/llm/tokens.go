package llm

import "unicode/utf8"

// Token accounting mirrors the chat-completion format: a fixed per-message
// overhead plus a fixed per-conversation overhead on top of the content
// estimate. The content estimate is approximate (roughly 4 runes per token)
// but deterministic and monotonic in the input length, which is all the
// prompt budget needs.
const (
	messageOverheadTokens      = 4
	conversationOverheadTokens = 2
	runesPerToken              = 4
)

// EstimateTokens estimates the token cost of a single piece of text.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	n := utf8.RuneCountInString(text)
	return (n + runesPerToken - 1) / runesPerToken
}

// CountTokens estimates the total token cost of a message sequence,
// including role tags and conversation overhead.
func CountTokens(messages []Message) int {
	total := conversationOverheadTokens
	for _, m := range messages {
		total += messageOverheadTokens
		total += EstimateTokens(m.Role)
		total += EstimateTokens(m.Content)
	}
	return total
}
