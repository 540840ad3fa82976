package memory

import (
	"context"
	"time"
)

// Record is one stored question/answer exchange.
type Record struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// Hit is a record recalled for a query, with a relevance score in [0, 1].
type Hit struct {
	Record Record
	Score  float64
}

type Store interface {
	Save(ctx context.Context, record Record) error
	Search(ctx context.Context, query string, limit int) ([]Hit, error)
}
