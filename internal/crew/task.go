package crew

import (
	"context"
)

// ResearchResult is the research task's output: raw context chunks and
// the documents they came from.
type ResearchResult struct {
	Context    string
	Sources    []string
	FromMemory bool
}

// Researcher runs the retrieval stage.
type Researcher interface {
	Research(ctx context.Context, query string) (*ResearchResult, error)
}

// SynthesisTask is the input to one synthesis attempt. Feedback is
// empty on the first attempt and carries the rejected (redacted) draft
// on retries.
type SynthesisTask struct {
	Query    string
	Context  string
	Feedback string
}

// Synthesizer runs the synthesis stage.
type Synthesizer interface {
	Synthesize(ctx context.Context, task SynthesisTask) (string, error)
}

// TaskOutput is the crew's final answer for one query.
type TaskOutput struct {
	RunID    string   `json:"run_id"`
	Answer   string   `json:"answer"`
	Context  string   `json:"-"`
	Sources  []string `json:"sources,omitempty"`
	Redacted bool     `json:"redacted"`
	Attempts int      `json:"attempts"`
}

// DisplayString makes TaskOutput a guardrail result.
func (o *TaskOutput) DisplayString() string {
	return o.Answer
}
