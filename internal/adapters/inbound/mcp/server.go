package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/matchscore/internal/application"
	"github.com/abdidvp/matchscore/internal/domain"
)

// Matcher is the part of the match service the MCP tools call.
type Matcher interface {
	ScorePair(ctx context.Context, engineerID, jobID string, opts application.ScoreOptions) (*domain.MatchScore, error)
	RankJobs(ctx context.Context, engineerID string, opts application.RankOptions) ([]domain.RankedMatch, error)
	RankEngineers(ctx context.Context, jobID string, opts application.RankOptions) ([]domain.RankedMatch, error)
}

// WeightSource resolves the effective factor weights.
type WeightSource interface {
	Resolve(ctx context.Context, regime string) (domain.WeightConfig, string, error)
}

// NewMatchScoreMCPServer creates an MCP server with all matchscore tools and
// resources registered.
func NewMatchScoreMCPServer(matcher Matcher, weights WeightSource, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"matchscore",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, matcher, weights)
	registerResources(s, weights)

	return s
}
