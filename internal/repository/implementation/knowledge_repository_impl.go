package implementation

import (
	"context"
	"fmt"

	"atarize-core/internal/model"
	"atarize-core/pkg/embedding"
	"atarize-core/pkg/rag/retrieval"
	"atarize-core/pkg/store"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db       *gorm.DB
	embedder embedding.EmbeddingProvider
}

func NewKnowledgeRepository(db *gorm.DB, embedder embedding.EmbeddingProvider) retrieval.KnowledgeIndex {
	return &KnowledgeRepositoryImpl{db: db, embedder: embedder}
}

// Search embeds the query and returns the k nearest snippets under the given
// filter, ordered by cosine distance.
func (r *KnowledgeRepositoryImpl) Search(ctx context.Context, query string, filter retrieval.Filter, k int) ([]store.Snippet, error) {
	if k <= 0 {
		k = 5
	}

	res, err := r.embedder.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	queryVector := pgvector.NewVector(res.Embedding.Values)

	type row struct {
		model.KnowledgeSnippet
		Distance float64
	}
	var rows []row

	q := r.db.WithContext(ctx).
		Table("knowledge_snippets").
		Select("knowledge_snippets.*, embedding <=> ? as distance", queryVector).
		Where("deleted_at IS NULL")
	if filter.Intent != "" {
		q = q.Where("intent = ?", filter.Intent)
	}
	if filter.Language != "" {
		q = q.Where("language = ?", filter.Language)
	}

	if err := q.Order("distance ASC").Limit(k).Scan(&rows).Error; err != nil {
		return nil, err
	}

	snippets := make([]store.Snippet, len(rows))
	for i, m := range rows {
		snippets[i] = store.Snippet{
			ID:       m.Id.String(),
			Text:     m.Content,
			Intent:   m.Intent,
			Language: m.Language,
			Category: m.Category,
			Score:    m.Distance,
		}
	}
	return snippets, nil
}
