package main

import (
	"github.com/jonathan/template-finder/internal/mcptools"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the template tools over MCP stdio",
		Long:  "Run a Model Context Protocol server on stdin/stdout exposing search, recommendation, suggestion, popular-term and quiz tools. Logs go to stderr.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			src, err := a.cachedSource(cmd.Context())
			if err != nil {
				return err
			}

			stopReload := reloadOnHangup(cmd.Context(), src, a.logger)
			defer stopReload()

			a.logger.Info("starting MCP server")
			return mcptools.ServeStdio(mcptools.NewServer(src, a.logger, version))
		},
	}
}
