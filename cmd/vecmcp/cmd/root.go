// Package cmd contains all CLI commands for vecmcp.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagEnv      string
	flagLogLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vecmcp",
	Short: "MCP server for LiteLLM vector store search",
	Long: `vecmcp bridges MCP hosts to LiteLLM-managed vector stores.

It exposes two tools over the Model Context Protocol: one that lists the
vector stores the configured API key can reach, and one that runs semantic
search against a store chosen by friendly name, numeric ID, or the
configured default.

Example usage:
  vecmcp serve                                  # stdio transport for MCP hosts
  vecmcp serve --transport http                 # streamable HTTP transport
  vecmcp stores                                 # print the store catalog
  vecmcp search "how does auth middleware work" # one-shot search
  vecmcp check                                  # verify connectivity and config`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "config environment (default: $ENV or local)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "override log level: debug, info, warn, error")
}
