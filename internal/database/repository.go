package database

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog/log"
)

func (db *DB) InsertDocument(ctx context.Context, doc Document) error {
	query := `INSERT INTO documents (id, title, source_path) VALUES ($1, $2, $3)`

	if _, err := db.Pool.Exec(ctx, query, doc.Id, doc.Title, doc.SourcePath); err != nil {
		return fmt.Errorf("Failed to insert document %s, error: %w", doc.Title, err)
	}

	return nil
}

func (db *DB) InsertChunk(ctx context.Context, chunk Chunk, embeddings []float32) error {
	query := `
	INSERT INTO document_chunks (id, document_id, content, chunk_index, embedding)
	VALUES ($1, $2, $3, $4, $5)`

	pgvectorEmbeddings := pgvector.NewVector(embeddings)

	if _, err := db.Pool.Exec(ctx, query, chunk.Id, chunk.DocumentID, chunk.Content, chunk.ChunkIndex, pgvectorEmbeddings); err != nil {
		return fmt.Errorf("Failed to insert chunk %d of document %s, error: %w", chunk.ChunkIndex, chunk.DocumentID, err)
	}

	return nil
}

func (db *DB) DeleteDocument(ctx context.Context, docId string) error {

	query := `DELETE FROM documents WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, docId)
	if err != nil {
		return fmt.Errorf("Failed to delete document id: %s, error: %w", docId, err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().Str("doc_id", docId).Msg("Document not found")
	} else {
		log.Info().Str("doc_id", docId).Msg("Document deleted")
	}

	return nil
}

// TODO: Add pagination
func (db *DB) GetAllDocs(ctx context.Context) ([]Document, error) {
	query := `SELECT id, title, source_path from documents`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("Unable to fetch document ids from DB")
	}

	defer rows.Close()

	var documentsResponse []Document

	for rows.Next() {
		var document Document

		if err := rows.Scan(&document.Id, &document.Title, &document.SourcePath); err != nil {
			return nil, fmt.Errorf("Failed to scan id: %w", err)
		}

		documentsResponse = append(documentsResponse, document)
	}

	return documentsResponse, nil
}

// TODO: Add support for cosine and euclidean distance configuration
func (db *DB) SemanticSearch(ctx context.Context, queryEmbeddings []float32, limit int) ([]Chunk, error) {
	// Convert embeddings to pgvector embeddings
	pgvectorEmbeddings := pgvector.NewVector(queryEmbeddings)

	query := `
	SELECT
	  c.id,
	  c.document_id,
	  d.title,
	  c.content,
	  c.chunk_index,
	  c.embedding <=> $1 AS distance
	FROM document_chunks c
	JOIN documents d ON d.id = c.document_id
	ORDER BY distance ASC
	LIMIT $2`

	rows, err := db.Pool.Query(ctx, query, pgvectorEmbeddings, limit)

	if err != nil {
		return nil, fmt.Errorf("Unable to query the database: %w", err)
	}

	defer rows.Close()

	var chunks []Chunk
	for rows.Next() {
		var chunk Chunk

		if err := rows.Scan(&chunk.Id, &chunk.DocumentID, &chunk.DocumentTitle, &chunk.Content, &chunk.ChunkIndex, &chunk.Distance); err != nil {
			return nil, fmt.Errorf("Failed to scan id: %w", err)
		}

		chunks = append(chunks, chunk)
	}

	// Rows errors catch
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return chunks, nil
}

func (db *DB) KeywordSearch(ctx context.Context, userQuery string, limit int) ([]Chunk, error) {
	query := `
		SELECT
			c.id,
			c.document_id,
			d.title,
			c.content,
			c.chunk_index,
			ts_rank(c.content_tsvector, plainto_tsquery('english', $1)) AS rank
		FROM document_chunks c
		JOIN documents d ON d.id = c.document_id
		WHERE c.content_tsvector @@ plainto_tsquery('english', $1)
		ORDER BY rank DESC
		LIMIT $2`

	rows, err := db.Pool.Query(ctx, query, userQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("keyword search failed. Error: %w", err)
	}

	defer rows.Close()

	var chunks []Chunk
	for rows.Next() {
		var chunk Chunk

		err := rows.Scan(&chunk.Id, &chunk.DocumentID, &chunk.DocumentTitle, &chunk.Content, &chunk.ChunkIndex, &chunk.Rank)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		chunks = append(chunks, chunk)
	}

	// Rows errors catch
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return chunks, nil
}
