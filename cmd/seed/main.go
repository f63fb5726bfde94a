package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"atarize-core/internal/model"
	"atarize-core/pkg/database"
	"atarize-core/pkg/embedding"
	"atarize-core/pkg/rag/intent"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type knowledgeEntry struct {
	Content  string `json:"content"`
	Intent   string `json:"intent"`
	Language string `json:"language"`
	Category string `json:"category"`
}

// Seeds the intent-embedding and knowledge-snippet tables from the JSON data
// files. Re-runnable: existing rows are wiped first.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var embedder embedding.EmbeddingProvider
	if os.Getenv("EMBEDDING_PROVIDER") == "ollama" {
		embedder = embedding.NewOllamaProvider(
			getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
		)
	} else {
		embedder = embedding.NewGeminiProvider(os.Getenv("GOOGLE_GEMINI_API_KEY"))
	}

	ctx := context.Background()
	seedIntents(ctx, db, embedder, getEnv("INTENT_CATALOG_PATH", "data/intents.json"))
	seedKnowledge(ctx, db, embedder, getEnv("KNOWLEDGE_PATH", "data/knowledge.json"))

	log.Println("✅ Seeding complete")
}

func seedIntents(ctx context.Context, db *gorm.DB, embedder embedding.EmbeddingProvider, path string) {
	catalog, err := intent.LoadCatalogFile(path)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := db.Exec("DELETE FROM intent_embeddings").Error; err != nil {
		log.Fatalf("Error: Failed to clear intent_embeddings: %v", err)
	}

	count := 0
	for _, in := range catalog.Intents() {
		for _, trigger := range in.Triggers {
			res, err := embedder.Generate(ctx, trigger, embedding.TaskRetrievalDocument)
			if err != nil {
				log.Fatalf("Error: Failed to embed trigger %q: %v", trigger, err)
			}
			row := model.IntentEmbedding{
				Id:        uuid.New(),
				Intent:    in.Name,
				Trigger:   trigger,
				Embedding: pgvector.NewVector(res.Embedding.Values),
			}
			if err := db.Create(&row).Error; err != nil {
				log.Fatalf("Error: Failed to insert intent embedding: %v", err)
			}
			count++
		}
	}
	log.Printf("Seeded %d intent embeddings from %s", count, path)
}

func seedKnowledge(ctx context.Context, db *gorm.DB, embedder embedding.EmbeddingProvider, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warn: No knowledge file at %s, skipping (%v)", path, err)
		return
	}

	var entries []knowledgeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatalf("Error: Failed to parse %s: %v", path, err)
	}

	if err := db.Exec("DELETE FROM knowledge_snippets").Error; err != nil {
		log.Fatalf("Error: Failed to clear knowledge_snippets: %v", err)
	}

	for _, e := range entries {
		res, err := embedder.Generate(ctx, e.Content, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Fatalf("Error: Failed to embed snippet: %v", err)
		}
		row := model.KnowledgeSnippet{
			Id:        uuid.New(),
			Content:   e.Content,
			Intent:    e.Intent,
			Language:  e.Language,
			Category:  e.Category,
			Embedding: pgvector.NewVector(res.Embedding.Values),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("Error: Failed to insert knowledge snippet: %v", err)
		}
	}
	log.Printf("Seeded %d knowledge snippets from %s", len(entries), path)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
