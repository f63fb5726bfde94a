package retrieval

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/patrickmn/go-cache"

	"atarize-core/pkg/rag/intent"
	"atarize-core/pkg/store"
)

// Cascade layers, in order of decreasing specificity.
const (
	LayerIntentFiltered   = "intent_filtered"
	LayerLanguageFiltered = "language_filtered"
	LayerBroadSemantic    = "broad_semantic"
	LayerNone             = "none"
)

// Filter restricts a knowledge-index query. Zero values mean "no restriction".
type Filter struct {
	Intent   string
	Language string
}

// KnowledgeIndex is the knowledge-catalog collaborator. Implementations own
// the embedding round-trip; this package only decides filters and fallbacks.
type KnowledgeIndex interface {
	Search(ctx context.Context, query string, filter Filter, k int) ([]store.Snippet, error)
}

// Result is an ordered snippet list tagged with the layer that produced it.
type Result struct {
	Layer    string
	Snippets []store.Snippet
}

func (r Result) Empty() bool {
	return len(r.Snippets) == 0
}

// Config carries the per-layer result counts.
type Config struct {
	IntentTopN   int // layer A
	LanguageTopN int // layer B
	BroadKeepN   int // layer C, kept after language post-filter
}

// Cascade retrieves supporting knowledge through successively broader
// fallback layers. Index failures are downgraded to empty results; retrieval
// is never fatal to the conversation. Results are memoized in a bounded TTL
// cache shared across sessions.
type Cascade struct {
	index  KnowledgeIndex
	cfg    Config
	memo   *cache.Cache
	logger *log.Logger
}

func NewCascade(index KnowledgeIndex, cfg Config, logger *log.Logger) *Cascade {
	if cfg.IntentTopN <= 0 {
		cfg.IntentTopN = 3
	}
	if cfg.LanguageTopN <= 0 {
		cfg.LanguageTopN = 5
	}
	if cfg.BroadKeepN <= 0 {
		cfg.BroadKeepN = 3
	}
	return &Cascade{
		index:  index,
		cfg:    cfg,
		memo:   cache.New(10*time.Minute, 5*time.Minute),
		logger: logger,
	}
}

// Retrieve attempts the layers in order and returns the first non-empty
// result. Deterministic for a fixed utterance/intent/language against a
// static catalog.
func (c *Cascade) Retrieve(ctx context.Context, utterance, intentName, language string) Result {
	key := memoKey(utterance, intentName, language)
	if cached, found := c.memo.Get(key); found {
		return cached.(Result)
	}

	res := c.retrieveFrom(ctx, LayerIntentFiltered, utterance, intentName, language)
	c.memo.Set(key, res, cache.DefaultExpiration)
	return res
}

// RetrieveBroader re-enters the cascade one layer below the given one, used
// when a generated reply came back vague. Never memoized: it exists to
// escape a cached dead end.
func (c *Cascade) RetrieveBroader(ctx context.Context, utterance, intentName, language, afterLayer string) Result {
	switch afterLayer {
	case LayerIntentFiltered:
		return c.retrieveFrom(ctx, LayerLanguageFiltered, utterance, intentName, language)
	case LayerLanguageFiltered:
		return c.retrieveFrom(ctx, LayerBroadSemantic, utterance, intentName, language)
	default:
		return Result{Layer: LayerNone}
	}
}

func (c *Cascade) retrieveFrom(ctx context.Context, startLayer, utterance, intentName, language string) Result {
	// Layer A: intent + language. Skipped when the intent is unknown.
	if startLayer == LayerIntentFiltered && intentName != "" && intentName != intent.Unknown {
		snippets := c.search(ctx, utterance, Filter{Intent: intentName, Language: language}, c.cfg.IntentTopN)
		if len(snippets) > 0 {
			c.logger.Printf("[DEBUG] Retrieval: layer A hit (%d snippets, intent=%s)", len(snippets), intentName)
			return Result{Layer: LayerIntentFiltered, Snippets: snippets}
		}
	}

	// Layer B: language only.
	if startLayer == LayerIntentFiltered || startLayer == LayerLanguageFiltered {
		snippets := c.search(ctx, utterance, Filter{Language: language}, c.cfg.LanguageTopN)
		if len(snippets) > 0 {
			c.logger.Printf("[DEBUG] Retrieval: layer B hit (%d snippets, lang=%s)", len(snippets), language)
			return Result{Layer: LayerLanguageFiltered, Snippets: snippets}
		}
	}

	// Layer C: no filters, post-filtered to the detected language client-side.
	broad := c.search(ctx, utterance, Filter{}, c.cfg.LanguageTopN*2)
	kept := make([]store.Snippet, 0, c.cfg.BroadKeepN)
	for _, s := range broad {
		if s.Language == language || s.Language == "" {
			kept = append(kept, s)
			if len(kept) == c.cfg.BroadKeepN {
				break
			}
		}
	}
	if len(kept) > 0 {
		c.logger.Printf("[DEBUG] Retrieval: layer C hit (%d snippets)", len(kept))
		return Result{Layer: LayerBroadSemantic, Snippets: kept}
	}

	// Layer D: nothing anywhere; caller falls back to unaided generation.
	c.logger.Printf("[DEBUG] Retrieval: all layers empty")
	return Result{Layer: LayerNone}
}

func (c *Cascade) search(ctx context.Context, query string, filter Filter, k int) []store.Snippet {
	snippets, err := c.index.Search(ctx, query, filter, k)
	if err != nil {
		c.logger.Printf("[WARN] Knowledge search failed (filter=%+v): %v", filter, err)
		return nil
	}
	return snippets
}

func memoKey(utterance, intentName, language string) string {
	return fmt.Sprintf("%s|%s|%s", utterance, intentName, language)
}
