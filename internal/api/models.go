package api

import (
	"strings"

	"github.com/nbs-ai/agentic-rag/internal/middleware"
)

type QueryRequest struct {
	Query string `json:"query" description:"The question to answer from the knowledge base"`
}

type QueryResponse struct {
	RunID    string   `json:"run_id" description:"Unique identifier for this pipeline run"`
	Answer   string   `json:"answer" description:"Synthesized answer"`
	Sources  []string `json:"sources,omitempty" description:"Document titles the answer was grounded on"`
	Redacted bool     `json:"redacted" description:"True when the answer had confidential content masked"`
	Attempts int      `json:"attempts" description:"Number of synthesis attempts"`
}

type DocumentResponse struct {
	Id         string `json:"id" description:"Document ID"`
	Title      string `json:"title" description:"Document title"`
	SourcePath string `json:"source_path" description:"Path the document was ingested from"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

func (q *QueryRequest) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return middleware.ErrEmptyQuery
	}
	return nil
}
