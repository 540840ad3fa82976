package ingestion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nbs-ai/agentic-rag/internal/database"
	"github.com/nbs-ai/agentic-rag/internal/embedding"
	"github.com/rs/zerolog/log"
)

type Pipeline struct {
	parser   *Parser
	chunker  *Chunker
	embedder *embedding.BedrockEmbedder
	db       *database.DB
}

func NewPipeline(
	parser *Parser,
	chunker *Chunker,
	embedder *embedding.BedrockEmbedder,
	db *database.DB,
) *Pipeline {
	return &Pipeline{
		parser:   parser,
		chunker:  chunker,
		embedder: embedder,
		db:       db,
	}
}

// IngestDocument parses, chunks, embeds and stores a single document file.
func (p *Pipeline) IngestDocument(ctx context.Context, filePath string) error {
	log.Info().Str("file", filePath).Msg("Starting ingestion")

	doc, err := p.parser.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("Failed to parse file. Error: %w", err)
	}
	log.Info().Str("doc_id", doc.ID).Str("title", doc.Title).Msg("Document parsed")

	chunks := p.chunker.ChunkText(doc.Content)
	if len(chunks) == 0 {
		return fmt.Errorf("document %s produced no chunks", doc.Title)
	}
	log.Info().Int("chunk_count", len(chunks)).Msg("Document chunked successfully")

	if err := p.db.InsertDocument(ctx, database.Document{
		Id:         doc.ID,
		Title:      doc.Title,
		SourcePath: doc.FilePath,
	}); err != nil {
		return err
	}

	for _, chunk := range chunks {
		embeddings, err := p.embedder.GenerateEmbeddings(ctx, chunk.Content)
		if err != nil {
			return fmt.Errorf("Failed to generate embeddings for chunk %d. Error: %w", chunk.Index, err)
		}

		if err := p.db.InsertChunk(ctx, database.Chunk{
			Id:         uuid.New().String(),
			DocumentID: doc.ID,
			Content:    chunk.Content,
			ChunkIndex: chunk.Index,
		}, embeddings); err != nil {
			return err
		}
	}

	log.Info().
		Str("doc_id", doc.ID).
		Int("chunks", len(chunks)).
		Msg("Ingestion complete")

	return nil
}
