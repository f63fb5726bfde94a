package implementation

import (
	"context"
	"errors"

	"atarize-core/pkg/rag/intent"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type IntentIndexRepositoryImpl struct {
	db *gorm.DB
}

func NewIntentIndexRepository(db *gorm.DB) intent.IntentIndex {
	return &IntentIndexRepositoryImpl{db: db}
}

// Nearest returns the intent whose embedded trigger is closest to the query
// vector, with its cosine distance. An empty table yields no match, not an
// error.
func (r *IntentIndexRepositoryImpl) Nearest(ctx context.Context, vector []float32) (string, float64, error) {
	type row struct {
		Intent   string
		Distance float64
	}
	var res row

	queryVector := pgvector.NewVector(vector)

	err := r.db.WithContext(ctx).
		Table("intent_embeddings").
		Select("intent, embedding <=> ? as distance", queryVector).
		Order("distance ASC").
		Limit(1).
		Scan(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, nil
		}
		return "", 0, err
	}
	if res.Intent == "" {
		return "", 0, nil
	}
	return res.Intent, res.Distance, nil
}
