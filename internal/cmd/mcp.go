package cmd

import (
	"github.com/RAILethicsHub/rail-score-go/internal/config"
	"github.com/RAILethicsHub/rail-score-go/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with LLM tools",
	Long: `Start Model Context Protocol (MCP) server.
LLM-based tools can request RAIL responsibility scores through stdio.

Tools provided by MCP server:
- score_text: Evaluate text against the responsibility dimensions
- list_dimensions: List the eight published dimensions
- health: Check the RAIL Score API status

Communicates via stdio for integration with Claude Desktop, Cursor, and other MCP clients.`,
	Example: `  railscore mcp`,
	RunE:    runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	client, err := cfg.NewSDKClient()
	if err != nil {
		return err
	}

	server := mcp.NewServer(client, GetVersion())
	return server.Run(cmd.Context())
}
