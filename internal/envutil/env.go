package envutil

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// EnvFile is the project-local env file the CLI reads and writes.
var EnvFile = filepath.Join(".railscore", ".env")

// GetAPIKey retrieves an API key from environment or .railscore/.env.
// The system environment variable wins over the file.
func GetAPIKey(keyName string) string {
	if key := os.Getenv(keyName); key != "" {
		return key
	}

	return LoadKeyFromEnvFile(EnvFile, keyName)
}

// LoadKeyFromEnvFile reads a specific key from an .env file.
func LoadKeyFromEnvFile(envPath, key string) string {
	file, err := os.Open(envPath)
	if err != nil {
		return ""
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	prefix := key + "="

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and empty lines
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}

	return ""
}

// SaveKeyToEnvFile saves a key-value pair to an .env file, preserving
// existing lines, comments, and blank lines.
func SaveKeyToEnvFile(envPath, key, value string) error {
	if err := os.MkdirAll(filepath.Dir(envPath), 0755); err != nil {
		return err
	}

	var lines []string
	keyFound := false
	existingFile, err := os.Open(envPath)
	if err == nil {
		scanner := bufio.NewScanner(existingFile)
		for scanner.Scan() {
			line := scanner.Text()
			trimmed := strings.TrimSpace(line)

			if trimmed != "" && !strings.HasPrefix(trimmed, "#") && strings.HasPrefix(trimmed, key+"=") {
				lines = append(lines, key+"="+value)
				keyFound = true
			} else {
				lines = append(lines, line)
			}
		}
		_ = existingFile.Close()
	} else if !os.IsNotExist(err) {
		return err
	}

	if !keyFound {
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, key+"="+value)
	}

	content := strings.Join(lines, "\n") + "\n"
	return os.WriteFile(envPath, []byte(content), 0600)
}
