package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTest points every directory the loader touches at a temp dir so
// Load never reads or writes the real user configuration.
func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("DXL_COMPLETE_CONFIG_PATH", "")
	return tmp
}

func TestLoadAndGet(t *testing.T) {
	setupTest(t)
	Load()

	got := Get("missing", "default")
	require.Equal(t, "default", got)
}

func TestLoadDefaults(t *testing.T) {
	setupTest(t)
	Load()

	assert.Equal(t, "dxl", Get("tool", ""))
	assert.Equal(t, 0, GetInt("timeout_ms", -1))
	assert.False(t, GetBool("debug", true))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Equal(t, "info", Get("logging_level", ""))
	assert.Equal(t, 10, GetInt("logging_max_files", -1))
}

func TestEnvOverride(t *testing.T) {
	setupTest(t)
	t.Setenv("DXL_COMPLETE_TOOL", "dynamixel-tool")
	t.Setenv("DXL_COMPLETE_TIMEOUT_MS", "250")
	Load()

	assert.Equal(t, "dynamixel-tool", Get("tool", ""))
	assert.Equal(t, 250, GetInt("timeout_ms", 0))
}

func TestFileValuesApply(t *testing.T) {
	tmp := setupTest(t)
	configDir := filepath.Join(tmp, "config", "dxl-complete")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	content := "tool = \"/opt/dxl/bin/dxl\"\ntimeout_ms = 500\nlogging_enabled = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0644))
	Load()

	assert.Equal(t, "/opt/dxl/bin/dxl", Get("tool", ""))
	assert.Equal(t, 500, GetInt("timeout_ms", 0))
	assert.True(t, GetBool("logging_enabled", false))
}

func TestEnvWinsOverFile(t *testing.T) {
	tmp := setupTest(t)
	configDir := filepath.Join(tmp, "config", "dxl-complete")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("tool = \"from-file\"\n"), 0644))
	t.Setenv("DXL_COMPLETE_TOOL", "from-env")
	Load()

	assert.Equal(t, "from-env", Get("tool", ""))
}

func TestExplicitConfigPath(t *testing.T) {
	tmp := setupTest(t)
	path := filepath.Join(tmp, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("timeout_ms = 750\n"), 0644))
	t.Setenv("DXL_COMPLETE_CONFIG_PATH", path)
	Load()

	assert.Equal(t, 750, GetInt("timeout_ms", 0))
}

func TestValidatorsFallBackToDefault(t *testing.T) {
	tests := []struct {
		name    string
		envKey  string
		envVal  string
		confKey string
		want    string
	}{
		{"negative timeout", "DXL_COMPLETE_TIMEOUT_MS", "-5", "timeout_ms", "0"},
		{"non-numeric timeout", "DXL_COMPLETE_TIMEOUT_MS", "soon", "timeout_ms", "0"},
		{"zero max files", "DXL_COMPLETE_LOGGING_MAX_FILES", "0", "logging_max_files", "10"},
		{"unknown level", "DXL_COMPLETE_LOGGING_LEVEL", "verbose", "logging_level", "info"},
		{"bad boolean", "DXL_COMPLETE_DEBUG", "maybe", "debug", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTest(t)
			t.Setenv(tt.envKey, tt.envVal)
			Load()

			assert.Equal(t, tt.want, Get(tt.confKey, ""))
			require.NotEmpty(t, Warnings(), "invalid value should be reported")
			assert.Contains(t, strings.Join(Warnings(), "\n"), tt.confKey)
		})
	}
}

func TestBoolNormalization(t *testing.T) {
	setupTest(t)
	t.Setenv("DXL_COMPLETE_DEBUG", "Yes")
	t.Setenv("DXL_COMPLETE_LOGGING_ENABLED", "off")
	Load()

	assert.True(t, GetBool("debug", false))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Empty(t, Warnings())
}

func TestWarningsResetOnLoad(t *testing.T) {
	setupTest(t)
	t.Setenv("DXL_COMPLETE_TIMEOUT_MS", "bogus")
	Load()
	require.NotEmpty(t, Warnings())

	t.Setenv("DXL_COMPLETE_TIMEOUT_MS", "100")
	Load()
	assert.Empty(t, Warnings())
}

func TestCreateSampleConfig(t *testing.T) {
	setupTest(t)
	Load()

	samplePath := filepath.Join(Get("config_dir", ""), "config.toml")
	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tool =")
	assert.Contains(t, string(data), "timeout_ms =")
}
