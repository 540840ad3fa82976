package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/nbs-ai/agentic-rag/internal/llm"
	"github.com/rs/zerolog"
)

// Judge scores one aspect of a RAG answer.
type Judge interface {
	Evaluate(ctx context.Context, sample Sample) MetricResult
}

// LLMJudge is a generic metric judge driven by a configurable prompt
// template. The model must answer with a json object:
// {"score": <0.0-1.0>, "reason": "..."}
type LLMJudge struct {
	name            string
	promptTemplate  *template.Template
	modelConfig     ModelConfig
	requiresContext bool
	llmClient       llm.Client
	logger          *zerolog.Logger
}

type judgeResponse struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

func NewLLMJudge(cfg MetricConfig, llmClient llm.Client, logger *zerolog.Logger) (*LLMJudge, error) {
	tmpl, err := template.New(cfg.Name).Parse(cfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for metric %s: %w", cfg.Name, err)
	}

	if cfg.Model == nil {
		return nil, fmt.Errorf("metric %s has nil model config (should be populated by config loader)", cfg.Name)
	}

	return &LLMJudge{
		name:            cfg.Name,
		promptTemplate:  tmpl,
		modelConfig:     *cfg.Model,
		requiresContext: cfg.RequiresContext,
		llmClient:       llmClient,
		logger:          logger,
	}, nil
}

func (j *LLMJudge) Evaluate(ctx context.Context, sample Sample) MetricResult {
	now := time.Now()

	result := MetricResult{
		Name:  j.name,
		Score: 0.0,
	}

	if j.requiresContext && sample.Context == "" {
		j.logger.Warn().
			Str("metric", j.name).
			Msg("metric requires context but none provided")
		result.Reason = "Context required but not provided"
		result.Duration = time.Since(now)
		return result
	}

	prompt, err := j.buildPrompt(sample)
	if err != nil {
		j.logger.Error().
			Err(err).
			Str("metric", j.name).
			Msg("failed to build prompt from template")
		result.Reason = fmt.Sprintf("Failed to build prompt: %v", err)
		result.Duration = time.Since(now)
		return result
	}

	var resp *llm.Response
	if j.modelConfig.Retry {
		resp, err = j.llmClient.InvokeModelWithRetry(ctx, llm.Request{
			Prompt:      prompt,
			MaxTokens:   j.modelConfig.MaxTokens,
			Temperature: j.modelConfig.Temperature,
		})
	} else {
		resp, err = j.llmClient.InvokeModel(ctx, llm.Request{
			Prompt:      prompt,
			MaxTokens:   j.modelConfig.MaxTokens,
			Temperature: j.modelConfig.Temperature,
		})
	}

	if err != nil {
		j.logger.Error().
			Err(err).
			Str("metric", j.name).
			Msg("LLM call failed")
		result.Reason = "Failed to call LLM"
		result.Duration = time.Since(now)
		return result
	}

	// Parse LLM response (strip markdown code blocks if present)
	content := stripMarkdownCodeBlock(resp.Content)
	var llmResponse judgeResponse
	if err := json.Unmarshal([]byte(content), &llmResponse); err != nil {
		j.logger.Error().
			Err(err).
			Str("metric", j.name).
			Str("content", resp.Content).
			Msg("failed to deserialize LLM response")
		result.Reason = "Failed to deserialize LLM response"
		result.Duration = time.Since(now)
		return result
	}

	if llmResponse.Score < 0.0 || llmResponse.Score > 1.0 {
		j.logger.Error().
			Str("metric", j.name).
			Float64("score", llmResponse.Score).
			Msg("LLM returned invalid score")
		result.Reason = fmt.Sprintf("Invalid LLM response: score %f out of range [0.0, 1.0]", llmResponse.Score)
		result.Duration = time.Since(now)
		return result
	}

	result.Score = llmResponse.Score
	result.Reason = llmResponse.Reason
	result.Duration = time.Since(now)

	j.logger.Info().
		Str("metric", j.name).
		Float64("score", result.Score).
		Dur("duration", result.Duration).
		Msg("metric evaluated")

	return result
}

func (j *LLMJudge) Name() string {
	return j.name
}

func (j *LLMJudge) buildPrompt(sample Sample) (string, error) {
	var buf bytes.Buffer
	if err := j.promptTemplate.Execute(&buf, sample); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// stripMarkdownCodeBlock removes markdown code block formatting if present
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}
