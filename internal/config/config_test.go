package config

import (
	"testing"

	"github.com/RAILethicsHub/rail-score-go/railscoresdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBaseURL(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("RAIL_BASE_URL", "")
		cfg := &Config{}
		assert.Equal(t, railscoresdk.DefaultBaseURL, cfg.GetBaseURL())
	})

	t.Run("config file override", func(t *testing.T) {
		t.Setenv("RAIL_BASE_URL", "")
		cfg := &Config{BaseURL: "https://rail.internal/v1"}
		assert.Equal(t, "https://rail.internal/v1", cfg.GetBaseURL())
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("RAIL_BASE_URL", "https://env.example/v1")
		cfg := &Config{BaseURL: "https://rail.internal/v1"}
		assert.Equal(t, "https://env.example/v1", cfg.GetBaseURL())
	})
}

func TestGetAPIKey(t *testing.T) {
	t.Run("environment wins over config", func(t *testing.T) {
		t.Setenv("RAIL_API_KEY", "rail-from-env")
		cfg := &Config{APIKey: "rail-from-file"}
		assert.Equal(t, "rail-from-env", cfg.GetAPIKey())
	})

	t.Run("falls back to config", func(t *testing.T) {
		t.Setenv("RAIL_API_KEY", "")
		cfg := &Config{APIKey: "rail-from-file"}
		assert.Equal(t, "rail-from-file", cfg.GetAPIKey())
	})
}

func TestNewSDKClient(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		t.Setenv("RAIL_API_KEY", "")
		cfg := &Config{}
		_, err := cfg.NewSDKClient()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RAIL_API_KEY not found")
	})

	t.Run("configured", func(t *testing.T) {
		t.Setenv("RAIL_API_KEY", "rail-key")
		t.Setenv("RAIL_BASE_URL", "https://rail.internal/v1")
		cfg := &Config{}
		client, err := cfg.NewSDKClient()
		require.NoError(t, err)
		assert.Equal(t, "rail-key", client.APIKey)
		assert.Equal(t, "https://rail.internal/v1", client.BaseURL)
	})
}
