package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/nbs-ai/agentic-rag/internal/crew"
	"github.com/nbs-ai/agentic-rag/internal/llm"
	"github.com/rs/zerolog/log"
)

// Synthesizer is the policy analyst: it turns the retrieved context
// into a direct, professional answer. It has no tools, only text.
type Synthesizer struct {
	llmClient   llm.Client
	maxTokens   int
	temperature float64
}

func NewSynthesizer(llmClient llm.Client, maxTokens int, temperature float64) *Synthesizer {
	return &Synthesizer{
		llmClient:   llmClient,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (s *Synthesizer) Synthesize(ctx context.Context, task crew.SynthesisTask) (string, error) {
	prompt := s.buildPrompt(task)

	response, err := s.llmClient.InvokeModelWithRetry(ctx, llm.Request{
		Prompt:      prompt,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to invoke synthesis model")
		return "", fmt.Errorf("synthesis failed: %w", err)
	}

	return strings.TrimSpace(response.Content), nil
}

func (s *Synthesizer) buildPrompt(task crew.SynthesisTask) string {
	feedbackSection := ""
	if task.Feedback != "" {
		feedbackSection = fmt.Sprintf(`A previous draft of this answer was rejected because it contained
confidential personal data. The redacted draft is below; produce a new
answer that conveys the same information WITHOUT any phone numbers,
identity numbers or other personal identifiers.

Rejected draft:
%s

`, task.Feedback)
	}

	return fmt.Sprintf(`You are an expert policy analyst who creates natural, professional responses.

Use ONLY the provided context - never add outside knowledge. Start with
the most direct answer to the question, then supporting details as the
content naturally requires. Make citations feel natural, referring to
the relevant article, clause or source document. If the context is
insufficient, clearly state what information is missing. Keep simple
answers simple.

%s%sCurrent question: %s

Answer:`, feedbackSection, task.Context, task.Query)
}
