package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Input.PrintAreas)
	assert.True(t, cfg.Input.DetectTable)
	assert.Equal(t, map[string]string{"boys": "1", "girls": "2"}, cfg.Pages)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "config.yaml", `
logging:
  format: json
input:
  print_areas: false
pages:
  girls: Girls
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Input.PrintAreas)
	assert.True(t, cfg.Input.DetectTable)
	assert.Equal(t, map[string]string{"boys": "1", "girls": "Girls"}, cfg.Pages)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "logging:\n  level: warn\n")
	t.Setenv("FITSTANDARDS_LOGGING_LEVEL", "debug")
	t.Setenv("FITSTANDARDS_INPUT_DETECT_TABLE", "false")
	t.Setenv("FITSTANDARDS_PAGES", "boys:Boys,girls:Girls")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Input.DetectTable)
	assert.Equal(t, map[string]string{"boys": "Boys", "girls": "Girls"}, cfg.Pages)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
		{"unknown sex", "pages:\n  men: \"3\"\n"},
		{"empty page", "pages:\n  girls: \"\"\n"},
		{"malformed", "logging: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.yaml", tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	t.Setenv("FITSTANDARDS_LOGGING_FORMAT", "")
	os.Unsetenv("FITSTANDARDS_LOGGING_FORMAT")
	path := writeFile(t, ".env", "FITSTANDARDS_LOGGING_FORMAT=json\n")
	require.NoError(t, LoadDotEnv(path))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)
}
