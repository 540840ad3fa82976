package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nbs-ai/agentic-rag/internal/database"
	"github.com/nbs-ai/agentic-rag/internal/embedding"
	"github.com/nbs-ai/agentic-rag/internal/search"
	"github.com/pgvector/pgvector-go"
)

// LongTermStore persists exchanges in Postgres with pgvector embeddings
// so recall is semantic rather than keyword based.
type LongTermStore struct {
	db       *database.DB
	embedder *embedding.BedrockEmbedder
}

func NewLongTermStore(db *database.DB, embedder *embedding.BedrockEmbedder) *LongTermStore {
	return &LongTermStore{
		db:       db,
		embedder: embedder,
	}
}

func (s *LongTermStore) Save(ctx context.Context, record Record) error {
	embeddings, err := s.embedder.GenerateEmbeddings(ctx, record.Query)
	if err != nil {
		return fmt.Errorf("Unable to generate embeddings for memory record. Error: %w", err)
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
	INSERT INTO memory_records (id, query, answer, embedding, created_at)
	VALUES ($1, $2, $3, $4, $5)`

	if _, err := s.db.Pool.Exec(ctx, query, record.ID, record.Query, record.Answer, pgvector.NewVector(embeddings), record.CreatedAt); err != nil {
		return fmt.Errorf("Failed to save long term memory record. Error: %w", err)
	}

	return nil
}

func (s *LongTermStore) Search(ctx context.Context, queryText string, limit int) ([]Hit, error) {
	embeddings, err := s.embedder.GenerateEmbeddings(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("Unable to generate embeddings. Error: %w", err)
	}

	query := `
	SELECT
	  id,
	  query,
	  answer,
	  created_at,
	  embedding <=> $1 AS distance
	FROM memory_records
	ORDER BY distance ASC
	LIMIT $2`

	rows, err := s.db.Pool.Query(ctx, query, pgvector.NewVector(embeddings), limit)
	if err != nil {
		return nil, fmt.Errorf("Unable to query long term memory: %w", err)
	}

	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var record Record
		var distance float64

		if err := rows.Scan(&record.ID, &record.Query, &record.Answer, &record.CreatedAt, &distance); err != nil {
			return nil, fmt.Errorf("Failed to scan memory record: %w", err)
		}

		hits = append(hits, Hit{
			Record: record,
			Score:  search.DistanceToScore(distance),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return hits, nil
}
