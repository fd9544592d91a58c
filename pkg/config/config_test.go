package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t, 4, cfg.ProgressTTLHours)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_level: debug
api_port: 9090
database_path: /tmp/digest.db
upstream:
  base_url: https://upstream.example.com
  timeout_seconds: 30
  retry_attempts: 3
  poll_interval_seconds: 1
  poll_max_elapsed_seconds: 60
extractor:
  aliases:
    quiz:
      - pop quiz
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfigManager().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.APIPort)
	assert.Equal(t, "/tmp/digest.db", cfg.DatabasePath)
	assert.Equal(t, "https://upstream.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, []string{"pop quiz"}, cfg.Extractor.Aliases["quiz"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewConfigManager().Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := NewConfigManager().Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 90, cfg.Upstream.TimeoutSeconds)
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.APIPort = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateAliases(t *testing.T) {
	assert.NoError(t, ValidateAliases(map[string][]string{
		"quiz":     {"pop quiz", "test yourself"},
		"glossary": {"key terms"},
	}))
}

func TestValidateAliasesRejectsDuplicateAcrossKeys(t *testing.T) {
	err := ValidateAliases(map[string][]string{
		"quiz":     {"pop quiz"},
		"glossary": {"Pop Quiz"},
	})
	assert.Error(t, err, "one alias under two canonical keys must be rejected")
}

func TestValidateAliasesAllowsRepeatWithinKey(t *testing.T) {
	assert.NoError(t, ValidateAliases(map[string][]string{
		"quiz": {"pop quiz", "pop quiz"},
	}))
}

func TestToYAMLRoundTrip(t *testing.T) {
	data, err := Default().ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "api_port: 8080")
}
