package search

import (
	"testing"
)

func TestDistanceToScore(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		score    float64
	}{
		{
			name:     "Identical vectors",
			distance: 0.0,
			score:    1.0,
		},
		{
			name:     "Mid distance",
			distance: 0.4,
			score:    0.6,
		},
		{
			name:     "Opposite vectors clamp to zero",
			distance: 2.0,
			score:    0.0,
		},
		{
			name:     "Negative distance clamps to one",
			distance: -0.5,
			score:    1.0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := DistanceToScore(test.distance)
			if got != test.score {
				t.Errorf("Score: %f, want: %f", got, test.score)
			}
		})
	}
}

func TestFuseRRF_ChunkInBothListsRanksFirst(t *testing.T) {
	semantic := []SearchResult{
		{ChunkID: "a", Content: "chunk a"},
		{ChunkID: "b", Content: "chunk b"},
	}
	keyword := []SearchResult{
		{ChunkID: "c", Content: "chunk c"},
		{ChunkID: "b", Content: "chunk b"},
	}

	results := FuseRRF(semantic, keyword, 3)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// "b" appears in both lists so its fused score must win
	if results[0].ChunkID != "b" {
		t.Errorf("expected chunk b first, got %s", results[0].ChunkID)
	}

	for i, r := range results {
		if r.Rank != i+1 {
			t.Errorf("expected rank %d, got %d", i+1, r.Rank)
		}
	}
}

func TestFuseRRF_LimitApplied(t *testing.T) {
	semantic := []SearchResult{
		{ChunkID: "a"},
		{ChunkID: "b"},
		{ChunkID: "c"},
	}

	results := FuseRRF(semantic, nil, 2)

	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestFuseRRF_EmptyInputs(t *testing.T) {
	results := FuseRRF(nil, nil, 5)

	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
