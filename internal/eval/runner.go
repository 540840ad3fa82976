package eval

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/nbs-ai/agentic-rag/internal/llm"
	"github.com/rs/zerolog"
)

// BuildJudges creates the enabled metric judges from configuration.
func BuildJudges(cfg *JudgesConfig, llmClient llm.Client, logger *zerolog.Logger) ([]Judge, error) {
	var judges []Judge

	for _, metricCfg := range cfg.Metrics {
		if !metricCfg.Enabled {
			logger.Info().Str("metric", metricCfg.Name).Msg("metric disabled in config, skipping")
			continue
		}

		judge, err := NewLLMJudge(metricCfg, llmClient, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create judge %s: %w", metricCfg.Name, err)
		}

		judges = append(judges, judge)
	}

	if len(judges) == 0 {
		return nil, fmt.Errorf("no enabled metrics found in config")
	}

	logger.Info().Int("total_judges", len(judges)).Msg("judge pool built")

	return judges, nil
}

// Runner fans every judge out over a sample and collects the results.
type Runner struct {
	Judges []Judge
}

func NewRunner(judges []Judge) *Runner {
	return &Runner{
		Judges: judges,
	}
}

func (r *Runner) Run(ctx context.Context, sample Sample) []MetricResult {
	results := make(chan MetricResult, len(r.Judges))
	var wg sync.WaitGroup

	for _, judge := range r.Judges {
		wg.Add(1)
		go func(j Judge) {
			defer wg.Done()
			results <- j.Evaluate(ctx, sample)
		}(judge)
	}

	wg.Wait()
	close(results)

	var metricResults []MetricResult
	for result := range results {
		metricResults = append(metricResults, result)
	}

	// Stable column order for the report
	sort.Slice(metricResults, func(i, j int) bool {
		return metricResults[i].Name < metricResults[j].Name
	})

	return metricResults
}

// Summarize averages every metric over all evaluated samples.
func Summarize(results []SampleResult) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, result := range results {
		for _, metric := range result.Metrics {
			sums[metric.Name] += metric.Score
			counts[metric.Name]++
		}
	}

	averages := make(map[string]float64, len(sums))
	for name, sum := range sums {
		averages[name] = sum / float64(counts[name])
	}

	return averages
}
