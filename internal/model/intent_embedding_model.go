package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type IntentEmbedding struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Intent    string          `gorm:"type:varchar(64);not null;index"`
	Trigger   string          `gorm:"type:text"` // the description sentence this vector encodes
	Embedding pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (IntentEmbedding) TableName() string {
	return "intent_embeddings"
}
