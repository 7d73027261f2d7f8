package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const weightsURI = "matchscore://weights"

// registerResources registers all matchscore MCP resources on the given server.
func registerResources(s *server.MCPServer, weights WeightSource) {
	s.AddResource(
		mcplib.NewResource(
			weightsURI,
			"Factor Weights",
			mcplib.WithResourceDescription("Effective factor weights for the default regime"),
			mcplib.WithMIMEType("application/json"),
		),
		handleWeightsResource(weights),
	)
}

func handleWeightsResource(weights WeightSource) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		w, _, err := weights.Resolve(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("resolving weights: %w", err)
		}

		data, err := json.MarshalIndent(w, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling weights: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      weightsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
