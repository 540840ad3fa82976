package eval

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

type goldenRecord struct {
	Question    string `json:"question"`
	GroundTruth string `json:"ground_truth"`
}

// ReadDataset parses a jsonl golden dataset: one object per line with
// "question" and "ground_truth" fields. Blank lines are skipped,
// malformed lines are an error with the line number.
func ReadDataset(r io.Reader, logger *zerolog.Logger) ([]Sample, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var samples []Sample
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record goldenRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, fmt.Errorf("line %d: invalid json: %w", lineNumber, err)
		}

		if record.Question == "" || record.GroundTruth == "" {
			return nil, fmt.Errorf("line %d: question and ground_truth are required", lineNumber)
		}

		samples = append(samples, Sample{
			Question:    record.Question,
			GroundTruth: record.GroundTruth,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	logger.Info().Int("samples", len(samples)).Msg("golden dataset loaded")

	return samples, nil
}
