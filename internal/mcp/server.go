// Package mcp exposes the RAIL Score API as Model Context Protocol tools so
// LLM-based tools can request responsibility scores over stdio.
package mcp

import (
	"context"
	"fmt"

	"github.com/RAILethicsHub/rail-score-go/railscoresdk"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server is an MCP (Model Context Protocol) server backed by a RAIL Score
// API client. It communicates via JSON-RPC over stdio.
type Server struct {
	client  *railscoresdk.RailScoreClient
	version string
}

// NewServer creates a new MCP server instance.
func NewServer(client *railscoresdk.RailScoreClient, version string) *Server {
	return &Server{
		client:  client,
		version: version,
	}
}

// ScoreTextInput represents the input schema for the score_text tool.
type ScoreTextInput struct {
	Text       string   `json:"text" jsonschema:"Text to evaluate against the RAIL responsibility dimensions"`
	Dimensions []string `json:"dimensions,omitempty" jsonschema:"Dimensions to evaluate (optional, defaults to all eight)"`
}

// ListDimensionsInput represents the input schema for the list_dimensions tool.
type ListDimensionsInput struct{}

// HealthInput represents the input schema for the health tool.
type HealthInput struct{}

// Run serves MCP over stdio until the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "railscore",
		Version: s.version,
	}, nil)

	// Tool: score_text
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "score_text",
		Description: "Evaluate text against the RAIL responsibility dimensions and return the overall rail score with per-dimension breakdowns.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ScoreTextInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.handleScoreText(ctx, input)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, result, nil
	})

	// Tool: list_dimensions
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_dimensions",
		Description: "List the eight responsibility dimensions the RAIL Score API evaluates.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListDimensionsInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		return nil, s.handleListDimensions(), nil
	})

	// Tool: health
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "health",
		Description: "Check that the RAIL Score API is reachable and serving.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input HealthInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.handleHealth(ctx)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, result, nil
	})

	// Run the server over stdio until the client disconnects
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

// handleScoreText handles score requests by delegating to the SDK client.
func (s *Server) handleScoreText(ctx context.Context, input ScoreTextInput) (map[string]any, error) {
	if input.Text == "" {
		return nil, fmt.Errorf("text is required")
	}

	result, err := s.client.ScoreWithDimensions(ctx, input.Text, input.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("score failed: %w", err)
	}

	dims := make([]map[string]any, 0, len(result.Dimensions))
	for _, d := range result.Dimensions {
		dims = append(dims, map[string]any{
			"dimension":   d.Dimension,
			"score":       d.Score,
			"confidence":  d.Confidence,
			"explanation": d.Explanation,
		})
	}

	return map[string]any{
		"rail_score": result.RailScore,
		"dimensions": dims,
		"model":      result.Model,
		"request_id": result.RequestID,
	}, nil
}

// handleListDimensions returns the published dimension names.
func (s *Server) handleListDimensions() map[string]any {
	return map[string]any{
		"dimensions": railscoresdk.Dimensions,
	}
}

// handleHealth pings the API.
func (s *Server) handleHealth(ctx context.Context) (map[string]any, error) {
	status, err := s.client.Health(ctx)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	return map[string]any{
		"status":  status.Status,
		"version": status.Version,
	}, nil
}
