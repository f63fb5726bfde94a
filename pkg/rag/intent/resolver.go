package intent

import (
	"context"
	"log"
	"sync"
)

// Match sources.
const (
	SourceLexical  = "lexical"
	SourceSemantic = "semantic"
	SourceNone     = "none"
)

// Match is the transient result of resolution. Only the intent name outlives
// the request, as session.last_intent.
type Match struct {
	Intent     string
	Source     string
	Confidence float64
}

// Resolver combines the lexical and semantic matchers under ordered
// priorities:
//
//  1. lexical hit on a specific (non-catch-all) intent
//  2. semantic hit within the primary distance threshold
//  3. any lexical hit, catch-all included
//  4. semantic hit within the relaxed threshold
//
// Lexical matches on specific intents are trusted most because they reflect
// literal user vocabulary; semantic matches recover paraphrases; the relaxed
// pass is a last resort before declaring the intent unknown.
type Resolver struct {
	lexical          *LexicalMatcher
	semantic         *SemanticMatcher
	catalog          *Catalog
	primaryThreshold float64
	relaxedThreshold float64
	logger           *log.Logger
}

func NewResolver(lexical *LexicalMatcher, semantic *SemanticMatcher, catalog *Catalog, primaryThreshold, relaxedThreshold float64, logger *log.Logger) *Resolver {
	return &Resolver{
		lexical:          lexical,
		semantic:         semantic,
		catalog:          catalog,
		primaryThreshold: primaryThreshold,
		relaxedThreshold: relaxedThreshold,
		logger:           logger,
	}
}

// Resolve runs both matchers concurrently (independent reads, no shared
// state) and joins before evaluating priorities. A semantic failure is
// treated as no match, never propagated.
func (r *Resolver) Resolve(ctx context.Context, utterance string) Match {
	var (
		wg  sync.WaitGroup
		lex *LexicalMatch
		sem *SemanticMatch
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		lex = r.lexical.Match(utterance)
	}()
	go func() {
		defer wg.Done()
		m, err := r.semantic.Match(ctx, utterance)
		if err != nil {
			r.logger.Printf("[WARN] Semantic match unavailable: %v", err)
			return
		}
		sem = m
	}()
	wg.Wait()

	// Priority 1: lexical on a specific intent.
	if lex != nil && !r.catalog.IsCatchAll(lex.Intent.Name) {
		r.logger.Printf("[DEBUG] Resolver: lexical specific -> %s", lex.Intent.Name)
		return Match{Intent: lex.Intent.Name, Source: SourceLexical, Confidence: float64(lex.Score) / 100}
	}

	// Priority 2: semantic within the primary threshold.
	if sem.Accept(r.primaryThreshold) {
		r.logger.Printf("[DEBUG] Resolver: semantic primary -> %s", sem.Intent)
		return Match{Intent: sem.Intent, Source: SourceSemantic, Confidence: distanceConfidence(sem.Distance)}
	}

	// Priority 3: any lexical hit, catch-all included.
	if lex != nil {
		r.logger.Printf("[DEBUG] Resolver: lexical catch-all -> %s", lex.Intent.Name)
		return Match{Intent: lex.Intent.Name, Source: SourceLexical, Confidence: float64(lex.Score) / 100}
	}

	// Priority 4: semantic within the relaxed threshold.
	if sem.Accept(r.relaxedThreshold) {
		r.logger.Printf("[DEBUG] Resolver: semantic relaxed -> %s", sem.Intent)
		return Match{Intent: sem.Intent, Source: SourceSemantic, Confidence: distanceConfidence(sem.Distance)}
	}

	r.logger.Printf("[DEBUG] Resolver: no intent detected")
	return Match{Intent: Unknown, Source: SourceNone}
}

// distanceConfidence converts a cosine distance into a rough 0-1 confidence.
func distanceConfidence(distance float64) float64 {
	c := 1.0 - distance/2.0
	if c < 0 {
		c = 0
	}
	return c
}
