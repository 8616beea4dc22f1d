package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playersort.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadConfig_Defaults returns defaults for an empty path and an empty file.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	cfg, err = loadConfig(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, "pt-BR", cfg.Locale)
}

// TestLoadConfig_Overrides merges file values over defaults.
func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, "input: data/jogadores.csv\nbucket_capacity: 4\nmemory_limit: 1048576\n"))
	require.NoError(t, err)
	assert.Equal(t, "data/jogadores.csv", cfg.Input)
	assert.Equal(t, 4, cfg.BucketCapacity)
	assert.Equal(t, int64(1<<20), cfg.MemoryLimit)
	assert.Equal(t, ".", cfg.OutputDir, "unset keys keep defaults")
	assert.Len(t, cfg.options(), 3)
}

// TestLoadConfig_Errors rejects unknown keys and missing files.
func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(writeFile(t, "colour: blue\n"))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
