package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nbs-ai/agentic-rag/internal/crew"
)

// AskInput is the MCP tool input schema (matches the HTTP API field names).
type AskInput struct {
	Query string `json:"query" jsonschema:"the question to answer from the knowledge base"`
}

// AskOutput mirrors the HTTP query response.
type AskOutput struct {
	RunID    string   `json:"run_id"`
	Answer   string   `json:"answer"`
	Sources  []string `json:"sources,omitempty"`
	Redacted bool     `json:"redacted"`
	Attempts int      `json:"attempts"`
}

// NewAskHandler returns a tool handler that runs the full query
// pipeline. Pass the returned function to mcp.AddTool.
func NewAskHandler(c *crew.Crew) func(context.Context, *mcp.CallToolRequest, AskInput) (*mcp.CallToolResult, AskOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, AskOutput, error) {
		return Ask(ctx, c, req, input)
	}
}

// Ask runs the retrieval and synthesis pipeline for the given query.
func Ask(
	ctx context.Context,
	c *crew.Crew,
	req *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	output, err := c.Kickoff(ctx, input.Query)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		RunID:    output.RunID,
		Answer:   output.Answer,
		Sources:  output.Sources,
		Redacted: output.Redacted,
		Attempts: output.Attempts,
	}, nil
}
