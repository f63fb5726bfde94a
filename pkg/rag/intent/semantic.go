package intent

import (
	"context"
	"fmt"
	"log"

	"atarize-core/pkg/embedding"
)

// IntentIndex is the vector-index collaborator holding embedded trigger
// descriptions. Pre-populated and read-only from this package's perspective.
type IntentIndex interface {
	// Nearest returns the closest intent name and its cosine distance.
	Nearest(ctx context.Context, vector []float32) (name string, distance float64, err error)
}

// SemanticMatch is a nearest-neighbor hit below a distance threshold.
type SemanticMatch struct {
	Intent   string
	Distance float64
}

// SemanticMatcher embeds the utterance and looks up the nearest labeled
// vector. One embed+query pair serves both the primary and the relaxed
// threshold check; the resolver applies the cutoffs.
type SemanticMatcher struct {
	embedder embedding.EmbeddingProvider
	index    IntentIndex
	logger   *log.Logger
}

func NewSemanticMatcher(embedder embedding.EmbeddingProvider, index IntentIndex, logger *log.Logger) *SemanticMatcher {
	return &SemanticMatcher{
		embedder: embedder,
		index:    index,
		logger:   logger,
	}
}

// Match returns the nearest intent with its raw distance, or an error when
// the embedding service or index is unavailable. Threshold acceptance is the
// caller's decision.
func (m *SemanticMatcher) Match(ctx context.Context, utterance string) (*SemanticMatch, error) {
	res, err := m.embedder.Generate(ctx, utterance, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed utterance: %w", err)
	}

	name, distance, err := m.index.Nearest(ctx, res.Embedding.Values)
	if err != nil {
		return nil, fmt.Errorf("query intent index: %w", err)
	}
	if name == "" {
		return nil, nil
	}

	m.logger.Printf("[DEBUG] Semantic nearest: %s (distance: %.3f)", name, distance)
	return &SemanticMatch{Intent: name, Distance: distance}, nil
}

// Accept reports whether the match clears the given distance threshold.
func (s *SemanticMatch) Accept(threshold float64) bool {
	return s != nil && s.Distance <= threshold
}
