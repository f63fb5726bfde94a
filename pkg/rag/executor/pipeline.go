package executor

import (
	"context"
	"fmt"
	"log"
	"time"

	"atarize-core/pkg/llm"
	"atarize-core/pkg/rag/classify"
	"atarize-core/pkg/rag/intent"
	"atarize-core/pkg/rag/lead"
	"atarize-core/pkg/rag/prompt"
	"atarize-core/pkg/rag/response"
	"atarize-core/pkg/rag/retrieval"
	"atarize-core/pkg/rag/state"
	"atarize-core/pkg/store"
)

// Notifier is the external notification sink for completed leads.
// Fire-and-forget: failures are logged, never surfaced to the user.
type Notifier interface {
	Notify(ctx context.Context, sessionID string, record lead.Record, rawMessage string) error
}

// Config carries the pipeline tunables and deployment prompt data.
type Config struct {
	Persona         string
	Examples        []llm.Message
	Model           string
	TokenLimit      int
	HistoryWindow   int
	GenerateTimeout time.Duration
}

// Pipeline is the conversational orchestration core. One request is one
// synchronous Resolve execution over a session value; the caller persists
// the returned session only after the reply is final.
type Pipeline struct {
	resolver   *intent.Resolver
	cascade    *retrieval.Cascade
	machine    *state.Machine
	assembler  *prompt.Assembler
	evaluator  *response.Evaluator
	fallbacks  *response.Fallbacks
	extractor  *lead.Extractor
	classifier *classify.Classifier
	llm        llm.LLMProvider
	notifier   Notifier
	cfg        Config
	logger     *log.Logger
}

func NewPipeline(
	resolver *intent.Resolver,
	cascade *retrieval.Cascade,
	machine *state.Machine,
	assembler *prompt.Assembler,
	evaluator *response.Evaluator,
	fallbacks *response.Fallbacks,
	extractor *lead.Extractor,
	classifier *classify.Classifier,
	provider llm.LLMProvider,
	notifier Notifier,
	cfg Config,
	logger *log.Logger,
) *Pipeline {
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = 30 * time.Second
	}
	return &Pipeline{
		resolver:   resolver,
		cascade:    cascade,
		machine:    machine,
		assembler:  assembler,
		evaluator:  evaluator,
		fallbacks:  fallbacks,
		extractor:  extractor,
		classifier: classifier,
		llm:        provider,
		notifier:   notifier,
		cfg:        cfg,
		logger:     logger,
	}
}

// Resolve runs one utterance through the full pipeline and returns the reply
// with the updated session. Collaborator failures degrade to fallbacks; the
// result is always a natural-language reply, never an error surface.
func (p *Pipeline) Resolve(ctx context.Context, utterance string, session store.Session) (string, store.Session) {
	s := session.Clone()
	p.machine.Normalize(&s)

	lang := p.classifier.Language(utterance)
	s.AppendTurn(store.RoleUser, utterance)

	// Post-collection closure: status questions about an already-submitted
	// lead get the deterministic closure; anything else continues as Q&A.
	if s.LeadCollected && p.classifier.IsLeadStatusQuery(utterance) {
		return p.reply(&s, p.fallbacks.Closure(lang))
	}

	// Buying intent is checked before everything else: a direct purchase
	// commitment jumps straight to lead collection.
	if !s.LeadCollected && !s.LeadPending && p.classifier.HasBuyingIntent(utterance) {
		p.logger.Printf("[DEBUG] Buying intent detected, entering lead collection")
		p.machine.OfferLead(&s)
		return p.reply(&s, p.fallbacks.LeadTransition(lang))
	}

	// A complete contact record short-circuits the rest of the pipeline,
	// whether or not collection mode was active.
	if !s.LeadCollected {
		if record := p.extractor.Extract(utterance); record.Complete() {
			return p.collectLead(ctx, &s, record, utterance, lang)
		}
	}

	if s.LeadPending {
		if done, replyText := p.handleLeadPending(ctx, &s, utterance, lang); done {
			return replyText, s
		}
		// Collection mode was reset; fall through to the normal flow.
	}

	// First greeting gets a generated welcome and marks the session active.
	if !s.Greeted && p.classifier.IsGreeting(utterance) {
		return p.greet(ctx, &s, utterance, lang)
	}
	if !s.Greeted {
		p.machine.Begin(&s)
	}

	// Bare confirmations are resolved against the previous assistant turn
	// rather than treated as vague input.
	if p.classifier.IsConfirmation(utterance) && len(s.History) > 1 {
		return p.handleConfirmation(ctx, &s, utterance, lang)
	}

	// Very short, unclear input: invite specifics and offer the lead path.
	if p.classifier.IsVeryShort(utterance) {
		p.machine.OfferLead(&s)
		return p.reply(&s, p.fallbacks.Clarify(lang))
	}

	// Remember the business vertical once the user mentions one.
	if s.BusinessType == "" {
		if vertical := p.classifier.BusinessVertical(utterance); vertical != "" {
			p.logger.Printf("[DEBUG] Business vertical detected: %s", vertical)
			s.BusinessType = vertical
		}
	}

	// Engagement accounting, then the accumulated-interest lead offer.
	if p.classifier.IsPositiveEngagement(utterance) {
		p.machine.RecordPositiveTurn(&s)
	}
	if p.machine.ShouldOfferLead(&s) {
		p.logger.Printf("[DEBUG] Accumulated engagement, offering lead collection")
		p.machine.OfferLead(&s)
		return p.reply(&s, p.fallbacks.LeadTransition(lang))
	}

	return p.answer(ctx, &s, utterance, lang)
}

// answer is the ordinary Q&A path: resolve intent, retrieve knowledge,
// assemble within budget, generate, evaluate.
func (p *Pipeline) answer(ctx context.Context, s *store.Session, utterance, lang string) (string, store.Session) {
	match := p.resolver.Resolve(ctx, utterance)
	s.LastIntent = match.Intent

	repeated := match.Intent != intent.Unknown && p.machine.TopicAlreadyDiscussed(s, match.Intent)
	if repeated {
		p.logger.Printf("[DEBUG] Topic %s already explained, shortening", match.Intent)
	}

	res := p.cascade.Retrieve(ctx, utterance, match.Intent, lang)

	in := p.promptInput(s, utterance, res.Snippets)
	if repeated {
		in.ShortenTopic = match.Intent
	}

	reply, err := p.generate(ctx, in)
	if err != nil {
		p.logger.Printf("[WARN] Generation failed: %v", err)
		return p.reply(s, p.fallbacks.Apology(lang))
	}

	// A vague reply triggers exactly one retry against the next broader
	// knowledge layer before the deterministic apology.
	if !p.evaluator.IsUsable(reply) {
		p.logger.Printf("[DEBUG] Vague reply, retrying with broader retrieval (layer was %s)", res.Layer)
		broader := p.cascade.RetrieveBroader(ctx, utterance, match.Intent, lang, res.Layer)
		retryIn := p.promptInput(s, utterance, broader.Snippets)
		retryIn.Examples = nil
		reply, err = p.generate(ctx, retryIn)
		if err != nil || !p.evaluator.IsUsable(reply) {
			return p.reply(s, p.fallbacks.Apology(lang))
		}
	}

	if !repeated {
		if match.Intent != intent.Unknown {
			p.machine.MarkTopicDiscussed(s, match.Intent)
		}
		p.machine.RecordInformativeReply(s)
	}
	return p.reply(s, reply)
}

// handleLeadPending processes a turn while contact collection is active.
// Returns done=false when collection mode was reset and the utterance should
// continue through the normal flow.
func (p *Pipeline) handleLeadPending(ctx context.Context, s *store.Session, utterance, lang string) (bool, string) {
	if p.classifier.IsDisengagement(utterance) {
		p.logger.Printf("[DEBUG] Disengagement detected, leaving lead collection")
		p.machine.AbandonLead(s)
		reply, _ := p.reply(s, p.fallbacks.Disengage(lang))
		return true, reply
	}

	// Substantive follow-up questions are answered normally rather than
	// re-demanding contact details; interrupting users mid-conversation
	// costs more leads than it wins. Only non-substantive turns count as
	// failed attempts.
	if p.isSubstantiveQuestion(utterance) {
		reply, _ := p.answer(ctx, s, utterance, lang)
		return true, reply
	}

	if p.machine.RecordFailedAttempt(s) {
		// Limit reached, collection abandoned; continue the normal flow.
		return false, ""
	}

	record := p.extractor.Extract(utterance)
	reply, _ := p.reply(s, p.fallbacks.MissingFields(lang, record.MissingFields()))
	return true, reply
}

func (p *Pipeline) isSubstantiveQuestion(utterance string) bool {
	if p.classifier.IsSmallTalk(utterance) || p.classifier.IsVeryShort(utterance) {
		return false
	}
	match := p.resolver.Resolve(context.Background(), utterance)
	return match.Intent != intent.Unknown
}

// collectLead finalizes a validated record: notify, transition, confirm.
func (p *Pipeline) collectLead(ctx context.Context, s *store.Session, record lead.Record, utterance, lang string) (string, store.Session) {
	p.logger.Printf("[DEBUG] Complete lead detected (name=%q)", record.Name)

	if p.notifier != nil {
		if err := p.notifier.Notify(ctx, s.ID, record, utterance); err != nil {
			p.logger.Printf("[WARN] Lead notification failed: %v", err)
		}
	}
	p.machine.CollectLead(s)

	// The confirmation is generated for warmth, with a deterministic
	// fallback when the completion service is down.
	in := p.promptInput(s, utterance, nil)
	in.Examples = nil
	in.ContextSignals = append(in.ContextSignals, fmt.Sprintf(
		"The user just provided complete contact details (name: %s). Thank them by name, confirm the team will reach out shortly, and invite further questions. Two or three sentences.",
		record.Name))

	reply, err := p.generate(ctx, in)
	if err != nil || !p.evaluator.IsUsable(reply) {
		reply = p.fallbacks.LeadConfirmed(lang, record.Name)
	}
	return p.reply(s, reply)
}

// greet produces the generated first-turn welcome.
func (p *Pipeline) greet(ctx context.Context, s *store.Session, utterance, lang string) (string, store.Session) {
	p.machine.Begin(s)

	in := p.promptInput(s, utterance, nil)
	in.ContextSignals = append(in.ContextSignals,
		"This is the user's first message and it is a greeting. Welcome them warmly, introduce yourself in one sentence, and invite their question. Do not list features or prices unprompted.")

	reply, err := p.generate(ctx, in)
	if err != nil || !p.evaluator.IsUsable(reply) {
		reply = p.fallbacks.Greeting(lang)
	}
	return p.reply(s, reply)
}

// handleConfirmation answers a bare "yes"/"ok" with the knowledge behind
// the previous assistant message.
func (p *Pipeline) handleConfirmation(ctx context.Context, s *store.Session, utterance, lang string) (string, store.Session) {
	topic := p.classifier.TopicOfMessage(s.LastAssistantTurn())
	if topic == "" {
		topic = s.LastIntent
	}
	p.logger.Printf("[DEBUG] Confirmation turn, topic: %q", topic)

	res := p.cascade.Retrieve(ctx, utterance, topic, lang)

	in := p.promptInput(s, utterance, res.Snippets)
	in.Examples = nil
	in.ContextSignals = append(in.ContextSignals, fmt.Sprintf(
		"The user confirmed they want the %s information referenced in your previous message. Provide exactly that information immediately, specific and concrete. No counter-questions, maximum four sentences.",
		topicLabel(topic)))

	reply, err := p.generate(ctx, in)
	if err != nil {
		return p.reply(s, p.fallbacks.Apology(lang))
	}
	return p.reply(s, reply)
}

func topicLabel(topic string) string {
	if topic == "" || topic == intent.Unknown {
		return "requested"
	}
	return topic
}

func (p *Pipeline) promptInput(s *store.Session, utterance string, snippets []store.Snippet) prompt.Input {
	// The current utterance was already appended to the session; it goes into
	// the payload as the final message, not as part of the history section.
	history := s.History
	if n := len(history); n > 0 && history[n-1].Role == store.RoleUser {
		history = history[:n-1]
	}

	in := prompt.Input{
		Persona:       p.cfg.Persona,
		Utterance:     utterance,
		History:       history,
		Snippets:      snippets,
		Examples:      p.cfg.Examples,
		HistoryWindow: p.cfg.HistoryWindow,
		TokenLimit:    p.cfg.TokenLimit,
	}
	if s.BusinessType != "" {
		in.ContextSignals = append(in.ContextSignals,
			fmt.Sprintf("The user runs a %s business; prefer examples from that domain.", s.BusinessType))
	}
	return in
}

// generate assembles the payload and calls the completion service under a
// bounded timeout. One retry drops the few-shot examples first.
func (p *Pipeline) generate(ctx context.Context, in prompt.Input) (string, error) {
	payload, _ := p.assembler.Assemble(in)

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.GenerateTimeout)
	defer cancel()

	reply, err := p.llm.Chat(callCtx, payload, llm.WithTemperature(0.7), llm.WithModel(p.cfg.Model))
	if err == nil {
		return reply, nil
	}
	if len(in.Examples) == 0 {
		return "", err
	}

	p.logger.Printf("[WARN] Completion failed, retrying with reduced prompt: %v", err)
	in.Examples = nil
	payload, _ = p.assembler.Assemble(in)

	retryCtx, cancel2 := context.WithTimeout(ctx, p.cfg.GenerateTimeout)
	defer cancel2()
	return p.llm.Chat(retryCtx, payload, llm.WithTemperature(0.7), llm.WithModel(p.cfg.Model))
}

// reply appends the assistant turn and returns the pair the contract wants.
func (p *Pipeline) reply(s *store.Session, text string) (string, store.Session) {
	s.AppendTurn(store.RoleAssistant, text)
	return text, *s
}
