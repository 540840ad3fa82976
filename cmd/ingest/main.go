package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nbs-ai/agentic-rag/internal/bedrock"
	"github.com/nbs-ai/agentic-rag/internal/config"
	"github.com/nbs-ai/agentic-rag/internal/database"
	"github.com/nbs-ai/agentic-rag/internal/embedding"
	"github.com/nbs-ai/agentic-rag/internal/ingestion"
	"github.com/nbs-ai/agentic-rag/internal/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	insertDocCommand := flag.Bool("insert-doc", false, "Insert document command")
	filePath := flag.String("filePath", "", "Relative path to the document")
	chunkSize := flag.Int("chunkSize", 500, "Chunk size")
	chunkOverlap := flag.Int("chunkOverlap", 100, "Chunk overlap")

	deleteDocCommand := flag.Bool("delete-doc", false, "Delete existing document command")
	documentId := flag.String("doc-id", "", "Document id which needs to be deleted")

	getAllDocsCommand := flag.Bool("get-docs", false, "Get all documents command")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	cfg := config.Load()
	log.Logger = logger.Console(cfg.LogLevel)

	ctx := context.Background()

	db, err := database.NewWithBackoff(ctx, cfg.Database, 3)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	log.Info().Msg("Database connected")

	switch {
	case *deleteDocCommand:
		if *documentId == "" {
			log.Fatal().Msg("required flag -doc-id not provided")
		}
		if err := db.DeleteDocument(ctx, *documentId); err != nil {
			log.Fatal().Err(err).Msg("Failed to delete document")
		}
		log.Info().Str("document_id", *documentId).Msg("Document deleted")

	case *getAllDocsCommand:
		docs, err := db.GetAllDocs(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to list documents")
		}
		for _, doc := range docs {
			log.Info().Msg(doc.Print())
		}

	case *insertDocCommand:
		if *filePath == "" {
			log.Fatal().Msg("required flag -filePath not provided")
		}

		bedrockClient, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
		if err != nil {
			log.Fatal().Err(err).Msg("Unable to create bedrock client")
		}

		parser := ingestion.NewParser()
		chunker := ingestion.NewChunker(*chunkSize, *chunkOverlap)
		embedder := embedding.NewBedrockEmbedder(bedrockClient.Client, cfg.EmbeddingModelID)
		pipeline := ingestion.NewPipeline(parser, chunker, embedder, db)

		if err := pipeline.IngestDocument(ctx, *filePath); err != nil {
			log.Fatal().Err(err).Str("file", *filePath).Msg("Failed to ingest document")
		}
		log.Info().Str("file", *filePath).Msg("Document ingested")

	default:
		log.Fatal().Msg("no command provided: use -insert-doc, -delete-doc or -get-docs")
	}
}
