package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/nbs-ai/agentic-rag/internal/llm"
	"github.com/nbs-ai/agentic-rag/internal/llm/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func newMetricConfig(name string) MetricConfig {
	return MetricConfig{
		Name:    name,
		Prompt:  "Question: {{.Question}}\nAnswer: {{.Answer}}",
		Enabled: true,
		Model:   &ModelConfig{MaxTokens: 256},
	}
}

func TestLLMJudge_Evaluate_ValidResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(&llm.Response{Content: `{"score": 0.9, "reason": "faithful to context"}`}, nil)

	judge, err := NewLLMJudge(newMetricConfig("faithfulness"), mockClient, newTestLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := judge.Evaluate(context.Background(), Sample{
		Question: "What is the leave policy?",
		Answer:   "30 days per year.",
	})

	if result.Score != 0.9 {
		t.Errorf("score: %f, want: 0.9", result.Score)
	}
	if result.Reason != "faithful to context" {
		t.Errorf("reason: %s", result.Reason)
	}
}

func TestLLMJudge_Evaluate_MarkdownWrappedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(&llm.Response{Content: "```json\n{\"score\": 0.5, \"reason\": \"partial\"}\n```"}, nil)

	judge, _ := NewLLMJudge(newMetricConfig("relevancy"), mockClient, newTestLogger())

	result := judge.Evaluate(context.Background(), Sample{Question: "q", Answer: "a"})

	if result.Score != 0.5 {
		t.Errorf("score: %f, want: 0.5", result.Score)
	}
}

func TestLLMJudge_Evaluate_LLMFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("throttled"))

	judge, _ := NewLLMJudge(newMetricConfig("recall"), mockClient, newTestLogger())

	result := judge.Evaluate(context.Background(), Sample{Question: "q", Answer: "a"})

	if result.Score != 0.0 {
		t.Errorf("score: %f, want: 0.0", result.Score)
	}
	if result.Reason != "Failed to call LLM" {
		t.Errorf("reason: %s", result.Reason)
	}
}

func TestLLMJudge_Evaluate_ScoreOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(&llm.Response{Content: `{"score": 4.2, "reason": "wild"}`}, nil)

	judge, _ := NewLLMJudge(newMetricConfig("precision"), mockClient, newTestLogger())

	result := judge.Evaluate(context.Background(), Sample{Question: "q", Answer: "a"})

	if result.Score != 0.0 {
		t.Errorf("score: %f, want: 0.0", result.Score)
	}
}

func TestLLMJudge_Evaluate_MissingRequiredContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	// No InvokeModel expectation: the judge must bail out first

	cfg := newMetricConfig("context_recall")
	cfg.RequiresContext = true

	judge, _ := NewLLMJudge(cfg, mockClient, newTestLogger())

	result := judge.Evaluate(context.Background(), Sample{Question: "q", Answer: "a"})

	if result.Reason != "Context required but not provided" {
		t.Errorf("reason: %s", result.Reason)
	}
}

func TestLLMJudge_Evaluate_RetryConfigUsesRetryPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		InvokeModelWithRetry(gomock.Any(), gomock.Any()).
		Return(&llm.Response{Content: `{"score": 1.0, "reason": "ok"}`}, nil)

	cfg := newMetricConfig("faithfulness")
	cfg.Model.Retry = true

	judge, _ := NewLLMJudge(cfg, mockClient, newTestLogger())

	result := judge.Evaluate(context.Background(), Sample{Question: "q", Answer: "a"})

	if result.Score != 1.0 {
		t.Errorf("score: %f, want: 1.0", result.Score)
	}
}
