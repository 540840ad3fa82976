package api

import (
	"errors"
	"testing"

	"github.com/nbs-ai/agentic-rag/internal/middleware"
)

func TestQueryRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
	}{
		{
			name:    "valid query",
			query:   "What is the annual leave policy?",
			wantErr: nil,
		},
		{
			name:    "empty query",
			query:   "",
			wantErr: middleware.ErrEmptyQuery,
		},
		{
			name:    "whitespace only query",
			query:   "   \t\n  ",
			wantErr: middleware.ErrEmptyQuery,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := QueryRequest{Query: test.query}
			if err := req.Validate(); !errors.Is(err, test.wantErr) {
				t.Errorf("error: %v, want: %v", err, test.wantErr)
			}
		})
	}
}
