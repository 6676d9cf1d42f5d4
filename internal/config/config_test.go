package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CleverFlare/cql-lsp/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, []string{" ", "."}, cfg.TriggerCharacters)
	assert.Equal(t, 2, cfg.LogVerbosity)
	assert.Empty(t, cfg.LogFile)
	assert.Zero(t, cfg.MaxCompletionItems)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "log_verbosity: 3\nmax_completion_items: 25\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.LogVerbosity)
	assert.Equal(t, 25, cfg.MaxCompletionItems)
	// Untouched fields keep their defaults.
	assert.Equal(t, []string{" ", "."}, cfg.TriggerCharacters)
}

func TestLoadFileMissingExplicitPath(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	cfg := config.Default()
	cfg.MaxCompletionItems = 50

	// initializationOptions arrive as decoded JSON, i.e. map[string]any.
	merged, err := config.Merge(cfg, map[string]any{
		"log_file":      "/tmp/cql-lsp.log",
		"log_verbosity": 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cql-lsp.log", merged.LogFile)
	assert.Equal(t, 4, merged.LogVerbosity)
	// Fields absent from the options survive the merge.
	assert.Equal(t, 50, merged.MaxCompletionItems)
	assert.Equal(t, []string{" ", "."}, merged.TriggerCharacters)
}

func TestMergeNil(t *testing.T) {
	cfg := config.Default()
	merged, err := config.Merge(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, merged)
}

func TestMergeBadOptions(t *testing.T) {
	_, err := config.Merge(config.Default(), map[string]any{
		"log_verbosity": "loud",
	})
	assert.Error(t, err)
}
