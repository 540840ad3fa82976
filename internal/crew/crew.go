package crew

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nbs-ai/agentic-rag/internal/guardrail"
	"github.com/nbs-ai/agentic-rag/internal/memory"
	"github.com/rs/zerolog"
)

// Validator is the output guardrail contract: single shot, never errors
// past its boundary.
type Validator interface {
	Validate(result guardrail.Result) guardrail.Verdict
}

// Crew wires the research and synthesis tasks into a sequential
// pipeline and owns the guardrail retry policy: a rejected synthesis
// output is re-attempted with the redacted draft as feedback, up to
// MaxRetries times. On exhaustion the last redacted draft is surfaced
// as a degraded but safe answer.
type Crew struct {
	researcher  Researcher
	synthesizer Synthesizer
	validator   Validator
	maxRetries  int
	shortTerm   memory.Store
	longTerm    memory.Store
	logger      *zerolog.Logger
}

func New(
	researcher Researcher,
	synthesizer Synthesizer,
	validator Validator,
	maxRetries int,
	shortTerm memory.Store,
	longTerm memory.Store,
	logger *zerolog.Logger,
) *Crew {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Crew{
		researcher:  researcher,
		synthesizer: synthesizer,
		validator:   validator,
		maxRetries:  maxRetries,
		shortTerm:   shortTerm,
		longTerm:    longTerm,
		logger:      logger,
	}
}

// Kickoff runs the pipeline for a single query.
func (c *Crew) Kickoff(ctx context.Context, query string) (*TaskOutput, error) {
	runID := uuid.New().String()
	c.logger.Info().Str("run_id", runID).Str("query", query).Msg("starting crew run")

	research, err := c.researcher.Research(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("research task failed: %w", err)
	}

	output := &TaskOutput{
		RunID:   runID,
		Context: research.Context,
		Sources: research.Sources,
	}

	feedback := ""
	var lastVerdict guardrail.Verdict

	// First attempt plus maxRetries guardrail-driven retries
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		output.Attempts = attempt + 1

		answer, err := c.synthesizer.Synthesize(ctx, SynthesisTask{
			Query:    query,
			Context:  research.Context,
			Feedback: feedback,
		})
		if err != nil {
			return nil, fmt.Errorf("synthesis task failed: %w", err)
		}

		output.Answer = answer

		lastVerdict = c.validator.Validate(output)
		if lastVerdict.Accepted {
			c.saveMemory(ctx, query, output.Answer)
			c.logger.Info().
				Str("run_id", runID).
				Int("attempts", output.Attempts).
				Msg("crew run complete")
			return output, nil
		}

		c.logger.Warn().
			Str("run_id", runID).
			Int("attempt", attempt+1).
			Bool("redacted", lastVerdict.Redacted).
			Msg("synthesis output rejected by guardrail")

		if lastVerdict.Redacted {
			feedback = lastVerdict.Payload
		}
	}

	// Retries exhausted. A redacted draft is still safe to surface,
	// a validation fault is not.
	if !lastVerdict.Redacted {
		return nil, fmt.Errorf("guardrail validation failed after %d attempts: %s", output.Attempts, lastVerdict.Payload)
	}

	output.Answer = lastVerdict.Payload
	output.Redacted = true

	c.logger.Warn().
		Str("run_id", runID).
		Int("attempts", output.Attempts).
		Msg("guardrail retries exhausted, returning redacted answer")

	return output, nil
}

func (c *Crew) saveMemory(ctx context.Context, query string, answer string) {
	record := memory.Record{
		ID:        uuid.New().String(),
		Query:     query,
		Answer:    answer,
		CreatedAt: time.Now(),
	}

	for _, store := range []memory.Store{c.shortTerm, c.longTerm} {
		if store == nil {
			continue
		}
		if err := store.Save(ctx, record); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to save memory record")
		}
	}
}
