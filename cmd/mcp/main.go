package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nbs-ai/agentic-rag/internal/config"
	"github.com/nbs-ai/agentic-rag/internal/crew"
	"github.com/nbs-ai/agentic-rag/internal/logger"
	"github.com/nbs-ai/agentic-rag/internal/mcpadapter"
	"github.com/nbs-ai/agentic-rag/internal/setup"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	// Stdout carries the MCP protocol, so logs go to stderr.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.Console(cfg.LogLevel)
	appLogger := log.Logger

	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}
	defer deps.DB.Close()

	server := createMCPServer(deps.Crew)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			appLogger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		appLogger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(pipeline *crew.Crew) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "agentic-rag",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_knowledge_base",
		Description: "Answer a question from the ingested document knowledge base, with confidential content masked",
	}, mcpadapter.NewAskHandler(pipeline))

	return server
}
