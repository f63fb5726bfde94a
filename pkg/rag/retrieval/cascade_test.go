package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"atarize-core/pkg/store"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// fakeIndex returns canned snippets per filter shape and counts calls.
type fakeIndex struct {
	byIntent   []store.Snippet
	byLanguage []store.Snippet
	broad      []store.Snippet
	err        error
	calls      int
}

func (f *fakeIndex) Search(ctx context.Context, query string, filter Filter, k int) ([]store.Snippet, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	switch {
	case filter.Intent != "":
		return limit(f.byIntent, k), nil
	case filter.Language != "":
		return limit(f.byLanguage, k), nil
	default:
		return limit(f.broad, k), nil
	}
}

func limit(s []store.Snippet, k int) []store.Snippet {
	if len(s) > k {
		return s[:k]
	}
	return s
}

func snip(id, lang string) store.Snippet {
	return store.Snippet{ID: id, Text: "text " + id, Language: lang}
}

func TestRetrieveLayerA(t *testing.T) {
	idx := &fakeIndex{byIntent: []store.Snippet{snip("a1", "he")}}
	c := NewCascade(idx, Config{}, testLogger())

	res := c.Retrieve(context.Background(), "כמה עולה", "pricing", "he")
	assert.Equal(t, LayerIntentFiltered, res.Layer)
	assert.Len(t, res.Snippets, 1)
}

func TestRetrieveSkipsLayerAForUnknownIntent(t *testing.T) {
	idx := &fakeIndex{
		byIntent:   []store.Snippet{snip("a1", "he")},
		byLanguage: []store.Snippet{snip("b1", "he")},
	}
	c := NewCascade(idx, Config{}, testLogger())

	res := c.Retrieve(context.Background(), "שאלה כללית", "unknown", "he")
	assert.Equal(t, LayerLanguageFiltered, res.Layer)
	assert.Equal(t, "b1", res.Snippets[0].ID)
}

func TestRetrieveFallsThroughToBroadWithLanguagePostFilter(t *testing.T) {
	idx := &fakeIndex{
		broad: []store.Snippet{snip("c1", "en"), snip("c2", "he"), snip("c3", "he"), snip("c4", "he"), snip("c5", "he")},
	}
	c := NewCascade(idx, Config{BroadKeepN: 3}, testLogger())

	res := c.Retrieve(context.Background(), "משהו", "unknown", "he")
	assert.Equal(t, LayerBroadSemantic, res.Layer)
	assert.Len(t, res.Snippets, 3)
	for _, s := range res.Snippets {
		assert.Equal(t, "he", s.Language)
	}
}

func TestRetrieveEmptyEverywhere(t *testing.T) {
	c := NewCascade(&fakeIndex{}, Config{}, testLogger())

	res := c.Retrieve(context.Background(), "anything", "pricing", "en")
	assert.Equal(t, LayerNone, res.Layer)
	assert.True(t, res.Empty())
}

func TestRetrieveIndexFailureTreatedAsEmpty(t *testing.T) {
	c := NewCascade(&fakeIndex{err: errors.New("index down")}, Config{}, testLogger())

	res := c.Retrieve(context.Background(), "anything", "pricing", "en")
	assert.Equal(t, LayerNone, res.Layer)
	assert.True(t, res.Empty())
}

func TestRetrieveDeterministicAndMemoized(t *testing.T) {
	idx := &fakeIndex{byIntent: []store.Snippet{snip("a1", "he")}}
	c := NewCascade(idx, Config{}, testLogger())

	first := c.Retrieve(context.Background(), "כמה עולה", "pricing", "he")
	callsAfterFirst := idx.calls
	second := c.Retrieve(context.Background(), "כמה עולה", "pricing", "he")

	assert.Equal(t, first.Layer, second.Layer)
	assert.Equal(t, first.Snippets, second.Snippets)
	assert.Equal(t, callsAfterFirst, idx.calls, "repeated retrieval must be served from the memo cache")
}

func TestRetrieveBroaderStepsDownOneLayer(t *testing.T) {
	idx := &fakeIndex{
		byIntent:   []store.Snippet{snip("a1", "he")},
		byLanguage: []store.Snippet{snip("b1", "he")},
	}
	c := NewCascade(idx, Config{}, testLogger())

	res := c.RetrieveBroader(context.Background(), "כמה עולה", "pricing", "he", LayerIntentFiltered)
	assert.Equal(t, LayerLanguageFiltered, res.Layer)
	assert.Equal(t, "b1", res.Snippets[0].ID)

	res = c.RetrieveBroader(context.Background(), "כמה עולה", "pricing", "he", LayerNone)
	assert.True(t, res.Empty())
}
