package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/RAILethicsHub/rail-score-go/internal/envutil"
	"github.com/RAILethicsHub/rail-score-go/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the RAIL Score API key",
	Long: `Store your RAIL Score API key in ` + "`.railscore/.env`" + `.

The key is read from the RAIL_API_KEY environment variable first, then from
.railscore/.env, then from ~/.config/railscore/config.json.`,
	Run: func(cmd *cobra.Command, args []string) {
		promptAPIKeyConfiguration()
	},
}

// promptAPIKeyConfiguration checks for an existing key and offers to set one
func promptAPIKeyConfiguration() {
	if envutil.GetAPIKey("RAIL_API_KEY") != "" {
		ui.PrintOK("RAIL API key detected from environment or " + envutil.EnvFile)

		var overwrite bool
		prompt := &survey.Confirm{
			Message: "A key is already configured. Replace it?",
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil || !overwrite {
			return
		}
	} else {
		ui.PrintWarn("RAIL API key not found")
		fmt.Println(ui.Indent("Required for score, health commands and the MCP server"))
		fmt.Println()
	}

	apiKey, err := promptForAPIKey()
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to read API key: %v", err))
		return
	}

	if err := validateAPIKey(apiKey); err != nil {
		ui.PrintWarn(fmt.Sprintf("%v", err))
		fmt.Println(ui.Indent("API key was saved anyway. Make sure it's correct."))
	}

	if err := envutil.SaveKeyToEnvFile(envutil.EnvFile, "RAIL_API_KEY", apiKey); err != nil {
		ui.PrintError(fmt.Sprintf("Failed to save API key: %v", err))
		return
	}
	ui.PrintOK("API key saved to " + envutil.EnvFile)

	if err := ensureGitignore(envutil.EnvFile); err != nil {
		ui.PrintWarn(fmt.Sprintf("Failed to update .gitignore: %v", err))
		fmt.Println(ui.Indent("Please manually add '" + envutil.EnvFile + "' to .gitignore"))
	} else {
		ui.PrintOK("Added " + envutil.EnvFile + " to .gitignore")
	}
}

// promptForAPIKey prompts user to enter the API key using survey
func promptForAPIKey() (string, error) {
	var apiKey string
	prompt := &survey.Password{
		Message: "Enter your RAIL API key:",
	}

	if err := survey.AskOne(prompt, &apiKey); err != nil {
		return "", err
	}

	apiKey = cleanAPIKey(apiKey)

	if len(apiKey) == 0 {
		return "", fmt.Errorf("API key cannot be empty")
	}

	return apiKey, nil
}

// cleanAPIKey removes whitespace, control characters, and non-printable characters
func cleanAPIKey(input string) string {
	var result strings.Builder
	for _, r := range input {
		// Only keep printable ASCII characters (excluding space)
		if r >= 33 && r <= 126 {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// validateAPIKey performs basic validation on API key format
func validateAPIKey(key string) error {
	if !strings.HasPrefix(key, "rail-") {
		return fmt.Errorf("API key should start with 'rail-'")
	}
	if len(key) < 20 {
		return fmt.Errorf("API key seems too short")
	}
	return nil
}

// ensureGitignore ensures that the given path is in .gitignore
func ensureGitignore(path string) error {
	gitignorePath := ".gitignore"

	var lines []string
	existingFile, err := os.Open(gitignorePath)
	if err == nil {
		scanner := bufio.NewScanner(existingFile)
		for scanner.Scan() {
			line := scanner.Text()
			lines = append(lines, line)
			if strings.TrimSpace(line) == path {
				_ = existingFile.Close()
				return nil // Already in .gitignore
			}
		}
		_ = existingFile.Close()
	}

	lines = append(lines, "", "# RAIL API key configuration", path)
	content := strings.Join(lines, "\n") + "\n"

	if err := os.WriteFile(gitignorePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}

	return nil
}
