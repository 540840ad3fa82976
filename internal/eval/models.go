package eval

import "time"

// Sample is one golden dataset entry plus the pipeline's output for it.
type Sample struct {
	Question    string `json:"question"`
	GroundTruth string `json:"ground_truth"`
	Answer      string `json:"answer"`
	Context     string `json:"contexts"`
}

// MetricResult is one judge's verdict for one sample.
type MetricResult struct {
	Name     string        `json:"name"`
	Score    float64       `json:"score"`
	Reason   string        `json:"reason"`
	Duration time.Duration `json:"duration_ns"`
}

// SampleResult is the full evaluation row for one question.
type SampleResult struct {
	Sample  Sample         `json:"sample"`
	Metrics []MetricResult `json:"metrics"`
}
