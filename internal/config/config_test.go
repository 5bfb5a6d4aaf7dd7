package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itertools/internal/config"
	"itertools/value"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, value.Strict.String(), cfg.Policy)
	assert.Equal(t, config.FormatYAML, cfg.Format)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "policy: coercive\nformat: JSON\nsort_output: true\nlimit: 5\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "coercive", cfg.Policy)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.True(t, cfg.SortOutput)
	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"UnknownKey", "colour: blue\n"},
		{"BadPolicy", "policy: fuzzy\n"},
		{"BadFormat", "format: xml\n"},
		{"BadLevel", "log_level: chatty\n"},
		{"NegativeLimit", "limit: -1\n"},
		{"NotYAML", "policy: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
