package cmd

import (
	"fmt"

	"github.com/RAILethicsHub/rail-score-go/railscoresdk"
	"github.com/spf13/cobra"
)

// version will be set by build flags from cmd/railscore/main.go
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version of the railscore CLI and the underlying rail-score-sdk client.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("railscore version %s (rail-score-sdk %s)\n", version, railscoresdk.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version string (called from main.go)
func SetVersion(v string) {
	version = v
}

// GetVersion returns the current version string
func GetVersion() string {
	return version
}
