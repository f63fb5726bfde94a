package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"atarize-core/pkg/embedding"
)

type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) Generate(ctx context.Context, text, taskType string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

type stubIntentIndex struct {
	name     string
	distance float64
	err      error
}

func (s *stubIntentIndex) Nearest(ctx context.Context, vector []float32) (string, float64, error) {
	return s.name, s.distance, s.err
}

func newTestResolver(index *stubIntentIndex) *Resolver {
	catalog := testCatalog()
	lex := NewLexicalMatcher(catalog, 70, testLogger())
	sem := NewSemanticMatcher(&stubEmbedder{}, index, testLogger())
	return NewResolver(lex, sem, catalog, 1.4, 1.8, testLogger())
}

func TestResolverLexicalSpecificBeatsSemantic(t *testing.T) {
	// Semantic has an excellent score, but the lexical hit is on a specific
	// intent and must win.
	r := newTestResolver(&stubIntentIndex{name: "setup_process", distance: 0.1})

	m := r.Resolve(context.Background(), "how much does it cost per month?")
	assert.Equal(t, "pricing", m.Intent)
	assert.Equal(t, SourceLexical, m.Source)
}

func TestResolverSemanticBeatsLexicalCatchAll(t *testing.T) {
	// Lexical only hits the catch-all; a primary-threshold semantic match
	// outranks it.
	r := newTestResolver(&stubIntentIndex{name: "setup_process", distance: 1.0})

	m := r.Resolve(context.Background(), "tell me about the onboarding")
	assert.Equal(t, "setup_process", m.Intent)
	assert.Equal(t, SourceSemantic, m.Source)
}

func TestResolverLexicalCatchAllBeatsRelaxedSemantic(t *testing.T) {
	// Semantic is outside the primary threshold, so the catch-all lexical
	// hit is used before the relaxed semantic pass.
	r := newTestResolver(&stubIntentIndex{name: "setup_process", distance: 1.6})

	m := r.Resolve(context.Background(), "tell me about the onboarding")
	assert.Equal(t, "general_info", m.Intent)
	assert.Equal(t, SourceLexical, m.Source)
}

func TestResolverRelaxedSemanticLastResort(t *testing.T) {
	r := newTestResolver(&stubIntentIndex{name: "pricing", distance: 1.6})

	m := r.Resolve(context.Background(), "zzz qqq unrelated")
	assert.Equal(t, "pricing", m.Intent)
	assert.Equal(t, SourceSemantic, m.Source)
}

func TestResolverUnknownWhenAllFail(t *testing.T) {
	r := newTestResolver(&stubIntentIndex{name: "pricing", distance: 1.9})

	m := r.Resolve(context.Background(), "zzz qqq unrelated")
	assert.Equal(t, Unknown, m.Intent)
	assert.Equal(t, SourceNone, m.Source)
}

func TestResolverSemanticFailureIsNotFatal(t *testing.T) {
	r := newTestResolver(&stubIntentIndex{err: errors.New("index down")})

	m := r.Resolve(context.Background(), "how much does it cost?")
	assert.Equal(t, "pricing", m.Intent)

	m = r.Resolve(context.Background(), "zzz qqq unrelated")
	assert.Equal(t, Unknown, m.Intent)
}
