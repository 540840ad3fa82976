package memory

import (
	"testing"
)

func TestOverlapScore(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		score     float64
	}{
		{
			name:      "Identical queries",
			query:     "annual leave policy",
			candidate: "annual leave policy",
			score:     1.0,
		},
		{
			name:      "No overlap",
			query:     "annual leave policy",
			candidate: "database connection settings",
			score:     0.0,
		},
		{
			name:      "Partial overlap",
			query:     "annual leave days",
			candidate: "how many annual leave entitlements",
			score:     2.0 / 3.0,
		},
		{
			name:      "Stop words ignored",
			query:     "the a of",
			candidate: "anything",
			score:     0.0,
		},
		{
			name:      "Case and punctuation insensitive",
			query:     "Annual Leave?",
			candidate: "annual leave.",
			score:     1.0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := OverlapScore(test.query, test.candidate)
			if got != test.score {
				t.Errorf("Score: %f, want: %f", got, test.score)
			}
		})
	}
}
