package envutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyFromEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	content := "# RAIL credentials\n\nRAIL_API_KEY=rail-abc123\nOTHER=value\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0600))

	assert.Equal(t, "rail-abc123", LoadKeyFromEnvFile(envPath, "RAIL_API_KEY"))
	assert.Equal(t, "value", LoadKeyFromEnvFile(envPath, "OTHER"))
	assert.Equal(t, "", LoadKeyFromEnvFile(envPath, "MISSING"))
}

func TestLoadKeyFromMissingFile(t *testing.T) {
	assert.Equal(t, "", LoadKeyFromEnvFile(filepath.Join(t.TempDir(), "nope"), "RAIL_API_KEY"))
}

func TestSaveKeyToEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".railscore", ".env")

	t.Run("creates file and directory", func(t *testing.T) {
		require.NoError(t, SaveKeyToEnvFile(envPath, "RAIL_API_KEY", "rail-new"))
		assert.Equal(t, "rail-new", LoadKeyFromEnvFile(envPath, "RAIL_API_KEY"))
	})

	t.Run("replaces existing key, keeps comments", func(t *testing.T) {
		content := "# keep me\nRAIL_API_KEY=old\n\nOTHER=x\n"
		require.NoError(t, os.WriteFile(envPath, []byte(content), 0600))

		require.NoError(t, SaveKeyToEnvFile(envPath, "RAIL_API_KEY", "replaced"))

		data, err := os.ReadFile(envPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# keep me")
		assert.Contains(t, string(data), "RAIL_API_KEY=replaced")
		assert.Contains(t, string(data), "OTHER=x")
		assert.NotContains(t, string(data), "RAIL_API_KEY=old")
	})
}

func TestGetAPIKeyPrefersEnvironment(t *testing.T) {
	t.Setenv("RAIL_TEST_KEY", "from-env")
	assert.Equal(t, "from-env", GetAPIKey("RAIL_TEST_KEY"))
}
