package cmd

import (
	"fmt"

	"github.com/RAILethicsHub/rail-score-go/internal/ui"
	"github.com/manifoldco/promptui"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Interactive guidance for migrating to railscoresdk",
	Long: `Walk through the steps to move from the deprecated railscore package to
railscoresdk. Nothing is changed on disk; this command only explains.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	for {
		templates := &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "✔ {{ . | green }}",
		}

		selectPrompt := promptui.Select{
			Label:     "Migration to railscoresdk",
			Items:     []string{"Show migration steps", "Open documentation in browser", "Done"},
			Templates: templates,
		}

		_, choice, err := selectPrompt.Run()
		if err != nil {
			// Ctrl-C during the prompt is a normal way out
			return nil
		}

		switch choice {
		case "Show migration steps":
			printMigrationSteps()
		case "Open documentation in browser":
			if err := browser.OpenURL(sdkDocsURL); err != nil {
				ui.PrintWarn("Could not open the browser; URL: " + sdkDocsURL)
			}
		case "Done":
			return nil
		}
	}
}

func printMigrationSteps() {
	fmt.Println()
	fmt.Println("1. Fetch the successor package:")
	fmt.Println(ui.Indent("go get github.com/RAILethicsHub/rail-score-go/railscoresdk"))
	fmt.Println()
	fmt.Println("2. Update your imports:")
	fmt.Println(ui.Indent(`// Old`))
	fmt.Println(ui.Indent(`import "github.com/RAILethicsHub/rail-score-go/railscore"`))
	fmt.Println(ui.Indent(`// New`))
	fmt.Println(ui.Indent(`import "github.com/RAILethicsHub/rail-score-go/railscoresdk"`))
	fmt.Println()
	fmt.Println("3. Rename the client type: RailScore -> RailScoreClient")
	fmt.Println(ui.Indent("(they are the same type; this is a find-and-replace)"))
	fmt.Println()
	fmt.Println("4. Drop the old path:")
	fmt.Println(ui.Indent("go mod tidy"))
	fmt.Println()
	fmt.Println("Docs: " + sdkDocsURL)
	fmt.Println(ui.Indent(repoDocsURL))
	fmt.Println()
}
