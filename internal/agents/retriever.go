package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/nbs-ai/agentic-rag/internal/crew"
	"github.com/nbs-ai/agentic-rag/internal/memory"
	"github.com/nbs-ai/agentic-rag/internal/search"
	"github.com/rs/zerolog/log"
)

// Searcher is the document search capability the retriever depends on.
type Searcher interface {
	HybridSearch(ctx context.Context, query string, limit int) ([]search.SearchResult, error)
}

// Retriever is the research specialist: it tries the memory stores
// first and falls back to document search, returning raw context
// chunks with source attribution. It never answers the question.
type Retriever struct {
	shortTerm memory.Store
	longTerm  memory.Store
	searcher  Searcher
	limit     int
	minScore  float64
}

func NewRetriever(
	shortTerm memory.Store,
	longTerm memory.Store,
	searcher Searcher,
	limit int,
	minScore float64,
) *Retriever {
	return &Retriever{
		shortTerm: shortTerm,
		longTerm:  longTerm,
		searcher:  searcher,
		limit:     limit,
		minScore:  minScore,
	}
}

func (r *Retriever) Research(ctx context.Context, query string) (*crew.ResearchResult, error) {
	// Memory first: a strong hit skips document search entirely
	if hit := r.recallFromMemory(ctx, query); hit != nil {
		log.Info().Float64("score", hit.Score).Msg("Answering from memory")
		return &crew.ResearchResult{
			Context:    fmt.Sprintf("Previously answered question: %s\nAnswer: %s", hit.Record.Query, hit.Record.Answer),
			Sources:    []string{"memory"},
			FromMemory: true,
		}, nil
	}

	searchResults, err := r.searcher.HybridSearch(ctx, query, r.limit)
	if err != nil {
		return nil, fmt.Errorf("document search failed: %w", err)
	}

	if len(searchResults) == 0 {
		return &crew.ResearchResult{
			Context: "No relevant documents found.",
		}, nil
	}

	return &crew.ResearchResult{
		Context: formatContextBlock(searchResults),
		Sources: collectSources(searchResults),
	}, nil
}

func (r *Retriever) recallFromMemory(ctx context.Context, query string) *memory.Hit {
	for _, store := range []memory.Store{r.shortTerm, r.longTerm} {
		if store == nil {
			continue
		}

		hits, err := store.Search(ctx, query, 1)
		if err != nil {
			log.Warn().Err(err).Msg("Memory recall failed, continuing with document search")
			continue
		}

		if len(hits) > 0 && hits[0].Score >= r.minScore {
			return &hits[0]
		}
	}

	return nil
}

func formatContextBlock(results []search.SearchResult) string {
	var sb strings.Builder

	sb.WriteString("<context>\n")
	for i, result := range results {
		sb.WriteString(fmt.Sprintf("[%d] (source: %s, relevance: %.2f)\n%s\n\n", i+1, result.DocumentTitle, result.Score, result.Content))
	}
	sb.WriteString("</context>\n")

	return sb.String()
}

func collectSources(results []search.SearchResult) []string {
	seen := make(map[string]bool)
	var sources []string

	for _, result := range results {
		if !seen[result.DocumentTitle] {
			seen[result.DocumentTitle] = true
			sources = append(sources, result.DocumentTitle)
		}
	}

	return sources
}
