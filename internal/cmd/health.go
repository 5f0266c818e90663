package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/RAILethicsHub/rail-score-go/internal/config"
	"github.com/RAILethicsHub/rail-score-go/internal/ui"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the RAIL Score API status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		client, err := cfg.NewSDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		status, err := client.Health(ctx)
		if err != nil {
			ui.PrintError(fmt.Sprintf("RAIL Score API unreachable: %v", err))
			return err
		}

		ui.PrintOK(fmt.Sprintf("RAIL Score API %s (server %s)", status.Status, status.Version))
		return nil
	},
}
