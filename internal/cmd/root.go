package cmd

import (
	"fmt"
	"os"

	"github.com/RAILethicsHub/rail-score-go/internal/ui"
	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "railscore",
	Short: "railscore - DEPRECATED client for the RAIL Score API",
	Long: `railscore is the DEPRECATED command line client for the RAIL Score API.

The railscore package has been renamed to railscoresdk and this tool only
forwards to it. Run 'railscore migrate' for step-by-step migration guidance.

Commands:
  score     Evaluate text against the RAIL responsibility dimensions
  health    Check the RAIL Score API status
  mcp       Expose scoring as Model Context Protocol tools
  migrate   Interactive migration guidance
  docs      Open the migration documentation`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// One banner per invocation, on stderr so piped output stays clean.
		ui.PrintDeprecated("railscore is deprecated; use railscoresdk (run 'railscore migrate')")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Core commands
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(configCmd)
	// Note: mcpCmd and versionCmd are registered in their own init()
}
