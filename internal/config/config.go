package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	SessionStore       string // "memory" or "redis"
	IntentCatalogPath  string
	LeadTopic          string // gochannel topic for captured leads
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	LeadTarget string
}

type APIKeys struct {
	OpenAI       string
	GoogleGemini string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "openai" or "ollama"
	LLMModel          string // e.g. "gpt-4-turbo", "llama3"
}

// ChatConfig carries the pipeline thresholds. Defaults mirror the tuned
// production values; all are overridable per deployment.
type ChatConfig struct {
	FuzzyThreshold           int     // lexical partial-ratio acceptance, 0-100
	SemanticThreshold        float64 // primary embedding distance cutoff
	SemanticRelaxedThreshold float64 // last-resort embedding distance cutoff
	IntentTopN               int     // cascade layer restricted to intent+language
	LanguageTopN             int     // cascade layer restricted to language
	BroadKeepN               int     // cascade broad layer, kept after post-filter
	HistoryWindow            int     // turns of history offered to the assembler
	MaxLeadAttempts          int     // unsuccessful collection attempts before reset
	TokenLimit               int     // prompt budget for the configured model
	GenerateTimeoutSeconds   int     // completion call deadline
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionStore:       getEnv("SESSION_STORE", "memory"),
			IntentCatalogPath:  getEnv("INTENT_CATALOG_PATH", "data/intents.json"),
			LeadTopic:          getEnv("LEAD_TOPIC", "lead_captured"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Atarize"),
			LeadTarget: getEnv("LEAD_TARGET_EMAIL", ""),
		},
		Keys: APIKeys{
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4-turbo"),
		},
		Chat: ChatConfig{
			FuzzyThreshold:           getEnvAsInt("FUZZY_THRESHOLD", 70),
			SemanticThreshold:        getEnvAsFloat("SEMANTIC_THRESHOLD", 1.4),
			SemanticRelaxedThreshold: getEnvAsFloat("SEMANTIC_RELAXED_THRESHOLD", 1.8),
			IntentTopN:               getEnvAsInt("RETRIEVAL_INTENT_TOP_N", 3),
			LanguageTopN:             getEnvAsInt("RETRIEVAL_LANGUAGE_TOP_N", 5),
			BroadKeepN:               getEnvAsInt("RETRIEVAL_BROAD_KEEP_N", 3),
			HistoryWindow:            getEnvAsInt("HISTORY_WINDOW", 3),
			MaxLeadAttempts:          getEnvAsInt("MAX_LEAD_ATTEMPTS", 2),
			TokenLimit:               getEnvAsInt("PROMPT_TOKEN_LIMIT", 8192),
			GenerateTimeoutSeconds:   getEnvAsInt("GENERATE_TIMEOUT_SECONDS", 30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
