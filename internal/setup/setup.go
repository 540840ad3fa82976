package setup

import (
	"context"
	"fmt"

	"github.com/nbs-ai/agentic-rag/internal/agents"
	"github.com/nbs-ai/agentic-rag/internal/bedrock"
	"github.com/nbs-ai/agentic-rag/internal/config"
	"github.com/nbs-ai/agentic-rag/internal/crew"
	"github.com/nbs-ai/agentic-rag/internal/database"
	"github.com/nbs-ai/agentic-rag/internal/embedding"
	"github.com/nbs-ai/agentic-rag/internal/guardrail"
	"github.com/nbs-ai/agentic-rag/internal/memory"
	"github.com/nbs-ai/agentic-rag/internal/redis"
	"github.com/nbs-ai/agentic-rag/internal/search"
	"github.com/rs/zerolog"
)

const (
	dbConnectRetries    = 5
	redisConnectRetries = 5
)

// Dependencies holds the wired query pipeline plus the shared clients
// the commands need beyond it.
type Dependencies struct {
	Crew      *crew.Crew
	DB        *database.DB
	LLMClient *bedrock.Client
	// MiniClient targets the smaller model, used for judge calls.
	MiniClient *bedrock.Client
	Logger     *zerolog.Logger
}

// Wire builds the full retrieval, synthesis and guardrail pipeline
// from configuration.
func Wire(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	bedrockClient, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}

	miniModelID := cfg.ClaudeMiniModelID
	if miniModelID == "" {
		miniModelID = cfg.ClaudeModelID
	}
	miniClient, err := bedrock.NewClient(ctx, cfg.AWSRegion, miniModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to create mini Bedrock client: %w", err)
	}

	logger.Info().
		Str("region", cfg.AWSRegion).
		Str("model", cfg.ClaudeModelID).
		Msg("Bedrock client initialized")

	db, err := database.NewWithBackoff(ctx, cfg.Database, dbConnectRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to vector database: %w", err)
	}

	redisClient, err := redis.Connect(ctx, cfg, redisConnectRetries)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	embedder := embedding.NewBedrockEmbedder(bedrockClient.Client, cfg.EmbeddingModelID)
	searchService := search.NewService(db, embedder)

	shortTerm := memory.NewShortTermStore(redisClient, cfg.MemoryTTL)
	longTerm := memory.NewLongTermStore(db, embedder)

	patterns, err := guardrail.LoadRules(cfg.GuardrailRulesPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load guardrail rules: %w", err)
	}
	validator := guardrail.NewValidator(patterns)

	retriever := agents.NewRetriever(shortTerm, longTerm, searchService, cfg.SearchLimit, cfg.MemoryMinScore)
	synthesizer := agents.NewSynthesizer(bedrockClient, cfg.SynthMaxTokens, cfg.SynthTemperature)

	pipeline := crew.New(
		retriever,
		synthesizer,
		validator,
		cfg.GuardrailMaxRetries,
		shortTerm,
		longTerm,
		logger,
	)

	return &Dependencies{
		Crew:       pipeline,
		DB:         db,
		LLMClient:  bedrockClient,
		MiniClient: miniClient,
		Logger:     logger,
	}, nil
}
