package cmd

import (
	"fmt"

	"github.com/RAILethicsHub/rail-score-go/internal/ui"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

const (
	sdkDocsURL  = "https://pkg.go.dev/github.com/RAILethicsHub/rail-score-go/railscoresdk"
	repoDocsURL = "https://github.com/RAILethicsHub/rail-score-go"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Open the migration documentation in your browser",
	Run: func(cmd *cobra.Command, args []string) {
		if err := browser.OpenURL(sdkDocsURL); err != nil {
			ui.PrintWarn("Could not open the browser automatically.")
			fmt.Println(ui.Indent("Please open these URLs manually:"))
			fmt.Println(ui.Indent(sdkDocsURL))
			fmt.Println(ui.Indent(repoDocsURL))
			return
		}
		ui.PrintOK("Opened " + sdkDocsURL)
	},
}
