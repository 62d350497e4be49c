package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"maxcolours/internal/mcpserver"
	"maxcolours/pkg/logging"
)

// newServeCmd defines the serve command structure.
// It exposes colour generation to AI assistants as an MCP tool over stdio.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve colour generation as an MCP tool over stdio",
		Long: `Starts an MCP server on stdin/stdout that exposes the generate_colour_set tool.

Configure it in your AI assistant's MCP settings with the command
'maxcolours serve'. The defaults.count and defaults.seed config values
apply when a tool call leaves them out.

The server runs until stdin is closed or the process receives SIGINT/SIGTERM.
Logs are written to stderr so they never mix with protocol messages.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcpserver.New(cmd.Root().Version, loadedConfig.Defaults)
	err := server.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	logging.Info("Serve", "MCP server stopped")
	return err
}
