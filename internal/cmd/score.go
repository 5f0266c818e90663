package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/RAILethicsHub/rail-score-go/internal/config"
	"github.com/RAILethicsHub/rail-score-go/internal/ui"
	"github.com/spf13/cobra"
)

var (
	scoreDimensions []string
	scoreJSON       bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <text>",
	Short: "Evaluate text against the RAIL responsibility dimensions",
	Long: `Send text to the RAIL Score API and print the overall rail score with
per-dimension breakdowns. Scoring happens server-side; an API key is required.`,
	Example: `  railscore score "We collect user emails for marketing"
  railscore score --dimensions fairness,privacy "..."
  railscore score --json "..." | jq .rail_score`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringSliceVarP(&scoreDimensions, "dimensions", "d", nil, "dimensions to evaluate (default: all eight)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "print the raw JSON result")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	client, err := cfg.NewSDKClient()
	if err != nil {
		return err
	}

	if verbose {
		ui.PrintInfo(fmt.Sprintf("endpoint: %s", client.BaseURL))
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	result, err := client.ScoreWithDimensions(ctx, args[0], scoreDimensions)
	if err != nil {
		return fmt.Errorf("score failed: %w", err)
	}

	if scoreJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	fmt.Printf("rail score: %.1f\n\n", result.RailScore)
	for _, d := range result.Dimensions {
		fmt.Printf("  %-15s %5.1f  (confidence %.2f)\n", d.Dimension, d.Score, d.Confidence)
		if verbose && d.Explanation != "" {
			fmt.Println(ui.Indent(d.Explanation))
		}
	}
	if result.Model != "" {
		fmt.Printf("\nmodel: %s\n", result.Model)
	}

	return nil
}
