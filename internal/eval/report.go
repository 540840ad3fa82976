package eval

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// WriteCSVReport writes one row per evaluated sample with a column per
// metric, mirroring the evaluation report layout analysts already use.
func WriteCSVReport(w io.Writer, results []SampleResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	metricNames := collectMetricNames(results)

	writer := csv.NewWriter(w)

	header := []string{"question", "answer", "contexts", "ground_truth"}
	header = append(header, metricNames...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, result := range results {
		row := []string{
			result.Sample.Question,
			result.Sample.Answer,
			result.Sample.Context,
			result.Sample.GroundTruth,
		}

		scores := make(map[string]float64, len(result.Metrics))
		for _, metric := range result.Metrics {
			scores[metric.Name] = metric.Score
		}

		for _, name := range metricNames {
			row = append(row, strconv.FormatFloat(scores[name], 'f', 4, 64))
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func collectMetricNames(results []SampleResult) []string {
	seen := make(map[string]bool)
	var names []string

	for _, result := range results {
		for _, metric := range result.Metrics {
			if !seen[metric.Name] {
				seen[metric.Name] = true
				names = append(names, metric.Name)
			}
		}
	}

	sort.Strings(names)
	return names
}
