package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/matchscore/internal/application"
)

const defaultRankLimit = 10

// registerTools registers all matchscore MCP tools on the given server.
func registerTools(s *server.MCPServer, matcher Matcher, weights WeightSource) {
	// 1. matchscore_score
	s.AddTool(
		mcplib.NewTool("matchscore_score",
			mcplib.WithDescription("Returns the 0-100 match score and per-factor breakdown for one engineer and one job"),
			mcplib.WithString("engineer_id",
				mcplib.Required(),
				mcplib.Description("Engineer id"),
			),
			mcplib.WithString("job_id",
				mcplib.Required(),
				mcplib.Description("Job id"),
			),
			mcplib.WithString("regime", mcplib.Description("Weight regime name (defaults to the configured default)")),
		),
		handleScore(matcher),
	)

	// 2. matchscore_rank_jobs
	s.AddTool(
		mcplib.NewTool("matchscore_rank_jobs",
			mcplib.WithDescription("Ranks every known job for an engineer, best match first"),
			mcplib.WithString("engineer_id",
				mcplib.Required(),
				mcplib.Description("Engineer id"),
			),
			mcplib.WithNumber("limit", mcplib.Description("Maximum number of results (default 10, 0 for all)")),
			mcplib.WithString("regime", mcplib.Description("Weight regime name")),
		),
		handleRankJobs(matcher),
	)

	// 3. matchscore_rank_engineers
	s.AddTool(
		mcplib.NewTool("matchscore_rank_engineers",
			mcplib.WithDescription("Ranks every known engineer for a job, best match first"),
			mcplib.WithString("job_id",
				mcplib.Required(),
				mcplib.Description("Job id"),
			),
			mcplib.WithNumber("limit", mcplib.Description("Maximum number of results (default 10, 0 for all)")),
			mcplib.WithString("regime", mcplib.Description("Weight regime name")),
		),
		handleRankEngineers(matcher),
	)

	// 4. matchscore_get_weights
	s.AddTool(
		mcplib.NewTool("matchscore_get_weights",
			mcplib.WithDescription("Returns the effective factor weights used for scoring"),
			mcplib.WithString("regime", mcplib.Description("Weight regime name")),
		),
		handleGetWeights(weights),
	)
}

func handleScore(matcher Matcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		engineerID, err := request.RequireString("engineer_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		jobID, err := request.RequireString("job_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		regime, _ := request.GetArguments()["regime"].(string)
		score, err := matcher.ScorePair(ctx, engineerID, jobID, application.ScoreOptions{Regime: regime})
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(score)
	}
}

func handleRankJobs(matcher Matcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		engineerID, err := request.RequireString("engineer_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		ranked, err := matcher.RankJobs(ctx, engineerID, rankOptions(request))
		if err != nil {
			return errorResult(fmt.Sprintf("ranking failed: %v", err)), nil
		}
		return jsonResult(ranked)
	}
}

func handleRankEngineers(matcher Matcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		jobID, err := request.RequireString("job_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		ranked, err := matcher.RankEngineers(ctx, jobID, rankOptions(request))
		if err != nil {
			return errorResult(fmt.Sprintf("ranking failed: %v", err)), nil
		}
		return jsonResult(ranked)
	}
}

func handleGetWeights(weights WeightSource) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		regime, _ := request.GetArguments()["regime"].(string)
		w, resolved, err := weights.Resolve(ctx, regime)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(map[string]any{
			"regime":  resolved,
			"weights": w,
		})
	}
}

// rankOptions reads the optional regime and limit arguments. JSON numbers
// arrive as float64.
func rankOptions(request mcplib.CallToolRequest) application.RankOptions {
	args := request.GetArguments()
	opts := application.RankOptions{Limit: defaultRankLimit}
	opts.Regime, _ = args["regime"].(string)
	if limit, ok := args["limit"].(float64); ok {
		opts.Limit = int(limit)
	}
	return opts
}

// jsonResult marshals v to indented JSON and wraps it in a tool result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
