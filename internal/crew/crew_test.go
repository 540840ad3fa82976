package crew_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nbs-ai/agentic-rag/internal/crew"
	"github.com/nbs-ai/agentic-rag/internal/crew/mocks"
	"github.com/nbs-ai/agentic-rag/internal/guardrail"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestKickoff_CleanAnswerAcceptedFirstAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResearcher := mocks.NewMockResearcher(ctrl)
	mockSynthesizer := mocks.NewMockSynthesizer(ctrl)

	mockResearcher.EXPECT().Research(gomock.Any(), "annual leave").Return(&crew.ResearchResult{
		Context: "<context>\n[1] (source: hr-policy, relevance: 0.91)\nAnnual leave is 30 days.\n</context>\n",
		Sources: []string{"hr-policy"},
	}, nil)

	mockSynthesizer.EXPECT().Synthesize(gomock.Any(), crew.SynthesisTask{
		Query:   "annual leave",
		Context: "<context>\n[1] (source: hr-policy, relevance: 0.91)\nAnnual leave is 30 days.\n</context>\n",
	}).Return("The policy covers annual leave of 30 days.", nil)

	c := crew.New(mockResearcher, mockSynthesizer, guardrail.NewValidator(nil), 3, nil, nil, newTestLogger())

	output, err := c.Kickoff(context.Background(), "annual leave")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Answer != "The policy covers annual leave of 30 days." {
		t.Errorf("answer: %s", output.Answer)
	}
	if output.Redacted {
		t.Error("clean answer must not be flagged as redacted")
	}
	if output.Attempts != 1 {
		t.Errorf("attempts: %d, want: 1", output.Attempts)
	}
	if len(output.Sources) != 1 || output.Sources[0] != "hr-policy" {
		t.Errorf("sources: %v", output.Sources)
	}
}

func TestKickoff_RejectedThenCleanRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResearcher := mocks.NewMockResearcher(ctrl)
	mockSynthesizer := mocks.NewMockSynthesizer(ctrl)

	mockResearcher.EXPECT().Research(gomock.Any(), gomock.Any()).Return(&crew.ResearchResult{Context: "ctx"}, nil)

	first := mockSynthesizer.EXPECT().
		Synthesize(gomock.Any(), crew.SynthesisTask{Query: "contact", Context: "ctx"}).
		Return("Call +971 50 1234567 for help", nil)

	// The retry must carry the redacted draft as feedback
	mockSynthesizer.EXPECT().
		Synthesize(gomock.Any(), crew.SynthesisTask{
			Query:    "contact",
			Context:  "ctx",
			Feedback: "Call ****PH.NO**** for help",
		}).
		Return("Please reach out to the HR service desk", nil).
		After(first)

	c := crew.New(mockResearcher, mockSynthesizer, guardrail.NewValidator(nil), 3, nil, nil, newTestLogger())

	output, err := c.Kickoff(context.Background(), "contact")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Answer != "Please reach out to the HR service desk" {
		t.Errorf("answer: %s", output.Answer)
	}
	if output.Attempts != 2 {
		t.Errorf("attempts: %d, want: 2", output.Attempts)
	}
	if output.Redacted {
		t.Error("accepted retry must not be flagged redacted")
	}
}

func TestKickoff_RetriesExhaustedReturnsRedactedAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResearcher := mocks.NewMockResearcher(ctrl)
	mockSynthesizer := mocks.NewMockSynthesizer(ctrl)

	mockResearcher.EXPECT().Research(gomock.Any(), gomock.Any()).Return(&crew.ResearchResult{Context: "ctx"}, nil)

	// Every attempt leaks the same phone number
	mockSynthesizer.EXPECT().
		Synthesize(gomock.Any(), gomock.Any()).
		Return("Call +971 50 1234567", nil).
		Times(4) // first attempt + 3 retries

	c := crew.New(mockResearcher, mockSynthesizer, guardrail.NewValidator(nil), 3, nil, nil, newTestLogger())

	output, err := c.Kickoff(context.Background(), "contact")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Redacted {
		t.Error("expected redacted fallback answer")
	}
	if output.Answer != "Call ****PH.NO****" {
		t.Errorf("answer: %s", output.Answer)
	}
	if output.Attempts != 4 {
		t.Errorf("attempts: %d, want: 4", output.Attempts)
	}
}

func TestKickoff_ResearchFailureStopsPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResearcher := mocks.NewMockResearcher(ctrl)
	mockSynthesizer := mocks.NewMockSynthesizer(ctrl)

	mockResearcher.EXPECT().Research(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	c := crew.New(mockResearcher, mockSynthesizer, guardrail.NewValidator(nil), 3, nil, nil, newTestLogger())

	if _, err := c.Kickoff(context.Background(), "anything"); err == nil {
		t.Fatal("expected error")
	}
}

func TestKickoff_SynthesisFailureStopsPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResearcher := mocks.NewMockResearcher(ctrl)
	mockSynthesizer := mocks.NewMockSynthesizer(ctrl)

	mockResearcher.EXPECT().Research(gomock.Any(), gomock.Any()).Return(&crew.ResearchResult{Context: "ctx"}, nil)
	mockSynthesizer.EXPECT().Synthesize(gomock.Any(), gomock.Any()).Return("", errors.New("model unavailable"))

	c := crew.New(mockResearcher, mockSynthesizer, guardrail.NewValidator(nil), 3, nil, nil, newTestLogger())

	if _, err := c.Kickoff(context.Background(), "anything"); err == nil {
		t.Fatal("expected error")
	}
}

func TestKickoff_ContextCancelledBetweenAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResearcher := mocks.NewMockResearcher(ctrl)
	mockSynthesizer := mocks.NewMockSynthesizer(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	mockResearcher.EXPECT().Research(gomock.Any(), gomock.Any()).Return(&crew.ResearchResult{Context: "ctx"}, nil)
	mockSynthesizer.EXPECT().
		Synthesize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, crew.SynthesisTask) (string, error) {
			cancel() // cancel while the rejected attempt is in flight
			return "Call +971 50 1234567", nil
		})

	c := crew.New(mockResearcher, mockSynthesizer, guardrail.NewValidator(nil), 3, nil, nil, newTestLogger())

	if _, err := c.Kickoff(ctx, "contact"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
