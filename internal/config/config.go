package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/RAILethicsHub/rail-score-go/internal/envutil"
	"github.com/RAILethicsHub/rail-score-go/railscoresdk"
)

// Config is the persisted CLI configuration.
type Config struct {
	// APIKey for the RAIL Score API. Environment and .railscore/.env win
	// over this value.
	APIKey string `json:"api_key,omitempty"`

	// BaseURL overrides the hosted endpoint (self-hosted deployments).
	BaseURL string `json:"base_url,omitempty"`
}

var (
	configDir  string
	configPath string
)

func init() {
	homeDir := os.Getenv("HOME")
	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	}
	configDir = filepath.Join(homeDir, ".config", "railscore")
	configPath = filepath.Join(configDir, "config.json")
}

// ensureConfigDir creates the config directory if it doesn't exist
func ensureConfigDir() error {
	return os.MkdirAll(configDir, 0700)
}

// LoadConfig loads the configuration from file. A missing file is not an
// error; defaults apply.
func LoadConfig() (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to file
func SaveConfig(cfg *Config) error {
	if err := ensureConfigDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	return configPath
}

// GetAPIKey resolves the API key: RAIL_API_KEY environment variable, then
// .railscore/.env, then the config file.
func (c *Config) GetAPIKey() string {
	if key := envutil.GetAPIKey("RAIL_API_KEY"); key != "" {
		return key
	}
	return c.APIKey
}

// GetBaseURL resolves the endpoint: RAIL_BASE_URL environment variable, then
// the config file, then the hosted default.
func (c *Config) GetBaseURL() string {
	if url := os.Getenv("RAIL_BASE_URL"); url != "" {
		return url
	}
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return railscoresdk.DefaultBaseURL
}

// NewSDKClient builds a railscoresdk client from the resolved configuration.
// It fails when no API key can be found anywhere.
func (c *Config) NewSDKClient() (*railscoresdk.RailScoreClient, error) {
	key := c.GetAPIKey()
	if key == "" {
		return nil, fmt.Errorf("RAIL_API_KEY not found in environment, %s, or %s. Run 'railscore config' to set it up", envutil.EnvFile, configPath)
	}
	return railscoresdk.NewClientWithBaseURL(key, c.GetBaseURL()), nil
}
