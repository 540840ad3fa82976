package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nbs-ai/agentic-rag/internal/config"
	"github.com/nbs-ai/agentic-rag/internal/eval"
	"github.com/nbs-ai/agentic-rag/internal/logger"
	"github.com/nbs-ai/agentic-rag/internal/setup"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	startTime := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	input := flag.String("input", "", "Golden dataset file (jsonl), or '-' for stdin")
	output := flag.String("output", "", "CSV report file, defaults to stdout")

	flag.Parse()

	if *input == "" {
		log.Fatal().Msg("required flag -input not provided")
	}

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log.Logger = logger.Console(cfg.LogLevel)

	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.DB.Close()

	// Open input file
	var inputFile io.Reader
	if *input == "-" {
		inputFile = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("file", *input).Msg("Failed to open input file")
		}
		defer f.Close()
		inputFile = f
		log.Info().Str("file", *input).Msg("Reading golden dataset")
	}

	samples, err := eval.ReadDataset(inputFile, deps.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read golden dataset")
	}
	if len(samples) == 0 {
		log.Fatal().Msg("golden dataset is empty")
	}

	judgesConfig, err := eval.LoadJudgesConfig(cfg.JudgesConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load judges config")
	}

	judges, err := eval.BuildJudges(judgesConfig, deps.MiniClient, deps.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build judges")
	}
	runner := eval.NewRunner(judges)

	// Run the pipeline for every golden question, then judge the answers
	var results []eval.SampleResult
	for i, sample := range samples {
		if err := ctx.Err(); err != nil {
			log.Warn().Msg("Evaluation interrupted, writing partial report")
			break
		}

		taskOutput, err := deps.Crew.Kickoff(ctx, sample.Question)
		if err != nil {
			log.Error().Err(err).Str("question", sample.Question).Msg("Pipeline run failed, skipping sample")
			continue
		}

		sample.Answer = taskOutput.Answer
		sample.Context = taskOutput.Context

		metrics := runner.Run(ctx, sample)
		results = append(results, eval.SampleResult{
			Sample:  sample,
			Metrics: metrics,
		})

		log.Info().
			Int("sample", i+1).
			Int("total", len(samples)).
			Msg("Sample evaluated")
	}

	if len(results) == 0 {
		log.Fatal().Msg("no samples evaluated")
	}

	// Open output file
	var outputFile io.Writer
	if *output == "" {
		outputFile = os.Stdout
		log.Info().Msg("Writing report to stdout")
	} else {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("file", *output).Msg("Failed to create output file")
		}
		defer f.Close()
		outputFile = f
		log.Info().Str("file", *output).Msg("Writing report")
	}

	if err := eval.WriteCSVReport(outputFile, results); err != nil {
		log.Fatal().Err(err).Msg("Failed to write report")
	}

	averages := eval.Summarize(results)
	summaryEvent := log.Info().Int("samples", len(results))
	for name, average := range averages {
		summaryEvent = summaryEvent.Float64(name, average)
	}
	summaryEvent.
		Dur("duration", time.Since(startTime)).
		Msg("Evaluation complete")
}
