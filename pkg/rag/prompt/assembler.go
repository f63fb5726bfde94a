package prompt

import (
	"fmt"
	"log"
	"strings"

	"atarize-core/pkg/llm"
	"atarize-core/pkg/store"
)

// Input is everything the assembler may place into the completion payload.
type Input struct {
	Persona   string        // mandatory system instructions
	Utterance string        // mandatory current user message
	History   []store.Turn  // optional, most recent first dropped last
	Snippets  []store.Snippet
	Examples  []llm.Message // optional few-shot pairs, first to go

	// ContextSignals are short framing lines appended to the persona
	// (detected business vertical, engagement hints).
	ContextSignals []string

	// ShortenTopic, when set, instructs the model to acknowledge briefly
	// and reference the earlier explanation of this topic.
	ShortenTopic string

	HistoryWindow int // turns of history offered, 0 means default
	TokenLimit    int
}

const defaultHistoryWindow = 3

// Utilization thresholds for budget logging.
const (
	cautionUtilization = 0.7
	warningUtilization = 0.9
)

// Assembler composes a bounded completion payload. Sections are considered
// in descending priority: persona and utterance are mandatory, then recent
// history, then retrieved snippets, then few-shot examples. A section that
// would push the estimate past the limit is dropped whole; a truncated
// section is worse than a missing one.
type Assembler struct {
	logger *log.Logger
}

func NewAssembler(logger *log.Logger) *Assembler {
	return &Assembler{logger: logger}
}

// Assemble returns the message payload and its estimated token cost. The
// estimate never exceeds in.TokenLimit as long as the mandatory sections
// alone fit; mandatory sections are always present.
func (a *Assembler) Assemble(in Input) ([]llm.Message, int) {
	window := in.HistoryWindow
	if window <= 0 {
		window = defaultHistoryWindow
	}

	persona := llm.Message{Role: store.RoleSystem, Content: a.buildPersona(in)}
	utterance := llm.Message{Role: store.RoleUser, Content: in.Utterance}

	history := recentTurns(in.History, window)
	snippets := snippetMessage(in.Snippets)
	examples := in.Examples

	mandatory := llm.CountTokens([]llm.Message{persona, utterance})
	if in.TokenLimit > 0 && mandatory > in.TokenLimit {
		a.logger.Printf("[WARN] Prompt budget: mandatory sections alone cost %d of %d tokens", mandatory, in.TokenLimit)
	}

	includeHistory := true
	includeSnippets := snippets != nil
	includeExamples := len(examples) > 0 && in.ShortenTopic == ""

	// Drop optional sections lowest-priority first until the estimate fits.
budget:
	for in.TokenLimit > 0 {
		total := llm.CountTokens(a.compose(persona, utterance, history, snippets, examples,
			includeHistory, includeSnippets, includeExamples))
		if total <= in.TokenLimit {
			break
		}
		switch {
		case includeExamples:
			includeExamples = false
			a.logger.Printf("[DEBUG] Prompt budget: dropping few-shot examples (%d > %d)", total, in.TokenLimit)
		case includeSnippets:
			includeSnippets = false
			a.logger.Printf("[DEBUG] Prompt budget: dropping retrieved snippets (%d > %d)", total, in.TokenLimit)
		case includeHistory:
			includeHistory = false
			a.logger.Printf("[DEBUG] Prompt budget: dropping history (%d > %d)", total, in.TokenLimit)
		default:
			// Only mandatory sections remain.
			break budget
		}
	}

	payload := a.compose(persona, utterance, history, snippets, examples,
		includeHistory, includeSnippets, includeExamples)
	total := llm.CountTokens(payload)
	a.logUtilization(total, in.TokenLimit)
	return payload, total
}

func (a *Assembler) compose(persona, utterance llm.Message, history []store.Turn, snippets *llm.Message, examples []llm.Message, withHistory, withSnippets, withExamples bool) []llm.Message {
	out := []llm.Message{persona}
	if withExamples {
		out = append(out, examples...)
	}
	if withSnippets && snippets != nil {
		out = append(out, *snippets)
	}
	if withHistory {
		for _, t := range history {
			out = append(out, llm.Message{Role: t.Role, Content: t.Content})
		}
	}
	return append(out, utterance)
}

func (a *Assembler) buildPersona(in Input) string {
	var b strings.Builder
	b.WriteString(in.Persona)
	for _, signal := range in.ContextSignals {
		b.WriteString("\n")
		b.WriteString(signal)
	}
	if in.ShortenTopic != "" {
		b.WriteString(fmt.Sprintf(
			"\nThe %s topic was already explained in this conversation. Acknowledge briefly, reference the earlier answer, and do not repeat the full explanation.",
			in.ShortenTopic))
	}
	return b.String()
}

func (a *Assembler) logUtilization(total, limit int) {
	if limit <= 0 {
		return
	}
	utilization := float64(total) / float64(limit)
	switch {
	case utilization > warningUtilization:
		a.logger.Printf("[WARN] Prompt budget: approaching token limit (%d/%d, %.0f%%)", total, limit, utilization*100)
	case utilization > cautionUtilization:
		a.logger.Printf("[WARN] Prompt budget: high token usage (%d/%d, %.0f%%)", total, limit, utilization*100)
	default:
		a.logger.Printf("[DEBUG] Prompt budget: %d/%d tokens (%.0f%%)", total, limit, utilization*100)
	}
}

func recentTurns(history []store.Turn, window int) []store.Turn {
	if len(history) <= window {
		return history
	}
	return history[len(history)-window:]
}

func snippetMessage(snippets []store.Snippet) *llm.Message {
	if len(snippets) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("Relevant business knowledge:\n")
	for _, s := range snippets {
		label := s.Intent
		if label == "" {
			label = "general"
		}
		b.WriteString(fmt.Sprintf("\nContext (%s): %s\n", label, s.Text))
	}
	return &llm.Message{Role: store.RoleSystem, Content: b.String()}
}
