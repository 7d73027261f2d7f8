package cli

import (
	mcpadapter "github.com/abdidvp/matchscore/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(env *runtimeEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the matchscore MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(env))
	return cmd
}

func newMCPServeCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start matchscore MCP server (stdio)",
		Long:  "Start the matchscore MCP server using stdio transport. This lets AI assistants score and rank engineer/job pairs from the local store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			s := mcpadapter.NewMatchScoreMCPServer(rt.service, rt.weights, version)
			return server.ServeStdio(s)
		},
	}
}
