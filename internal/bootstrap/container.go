package bootstrap

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"atarize-core/internal/config"
	"atarize-core/internal/constant"
	"atarize-core/internal/controller"
	"atarize-core/internal/pkg/logger"
	"atarize-core/internal/pkg/mailer"
	"atarize-core/internal/repository/contract"
	"atarize-core/internal/repository/implementation"
	"atarize-core/internal/repository/memory"
	"atarize-core/internal/repository/redisstore"
	"atarize-core/internal/service"
	"atarize-core/pkg/embedding"
	"atarize-core/pkg/llm/factory"
	"atarize-core/pkg/rag/classify"
	"atarize-core/pkg/rag/executor"
	"atarize-core/pkg/rag/intent"
	"atarize-core/pkg/rag/lead"
	"atarize-core/pkg/rag/prompt"
	"atarize-core/pkg/rag/response"
	"atarize-core/pkg/rag/retrieval"
	"atarize-core/pkg/rag/state"

	pktNats "atarize-core/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	ragLogger := initRagLogger()

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.LeadTarget,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Session Storage
	var sessionRepo contract.SessionRepository
	if cfg.App.SessionStore == "redis" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Invalid REDIS_URL: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(redis.NewClient(opts))
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository()
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// 5. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 6. Conversation Pipeline
	catalog, err := intent.LoadCatalogFile(cfg.App.IntentCatalogPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load intent catalog: %v", err)
	}
	log.Printf("[INFO] Intent catalog loaded: %d intents", len(catalog.Intents()))

	lexicalMatcher := intent.NewLexicalMatcher(catalog, cfg.Chat.FuzzyThreshold, ragLogger)
	intentIndex := implementation.NewIntentIndexRepository(db)
	semanticMatcher := intent.NewSemanticMatcher(embeddingProvider, intentIndex, ragLogger)
	resolver := intent.NewResolver(
		lexicalMatcher,
		semanticMatcher,
		catalog,
		cfg.Chat.SemanticThreshold,
		cfg.Chat.SemanticRelaxedThreshold,
		ragLogger,
	)

	knowledgeIndex := implementation.NewKnowledgeRepository(db, embeddingProvider)
	cascade := retrieval.NewCascade(knowledgeIndex, retrieval.Config{
		IntentTopN:   cfg.Chat.IntentTopN,
		LanguageTopN: cfg.Chat.LanguageTopN,
		BroadKeepN:   cfg.Chat.BroadKeepN,
	}, ragLogger)

	publisherService := service.NewPublisherService(cfg.App.LeadTopic, pubSub)
	leadNotifier := service.NewLeadNotifierService(publisherService)

	pipeline := executor.NewPipeline(
		resolver,
		cascade,
		state.NewMachine(cfg.Chat.MaxLeadAttempts, ragLogger),
		prompt.NewAssembler(ragLogger),
		response.NewEvaluator(),
		response.NewFallbacks(),
		lead.NewExtractor(),
		classify.NewClassifier(classify.DefaultLists()),
		llmProvider,
		leadNotifier,
		executor.Config{
			Persona:         constant.Persona,
			Examples:        constant.FewShotExamples(),
			Model:           cfg.Ai.LLMModel,
			TokenLimit:      cfg.Chat.TokenLimit,
			HistoryWindow:   cfg.Chat.HistoryWindow,
			GenerateTimeout: time.Duration(cfg.Chat.GenerateTimeoutSeconds) * time.Second,
		},
		ragLogger,
	)

	// 7. Services
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.LeadTopic,
		emailService,
		natsPub,
	)
	chatService := service.NewChatService(pipeline, sessionRepo, sysLogger)

	// 8. Controllers
	chatController := controller.NewChatController(chatService)

	return &Container{
		ChatController:  chatController,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

func initRagLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_rag.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-RAG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
