package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "printutils.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "output:\n  mode: hardened\n  session_prefix: run\nlog:\n  level: debug\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "hardened", cfg.Output.Mode)
	assert.Equal(t, "run", cfg.Output.SessionPrefix)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, 64, cfg.Output.BufferSizeKB)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := map[string]string{
		"bad mode":  "output:\n  mode: lenient\n",
		"bad level": "log:\n  level: loud\n",
		"bad yaml":  "output: [\n",
	}
	for name, body := range tests {
		_, err := LoadConfig(writeConfig(t, body))
		assert.Error(t, err, name)
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutputDir(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	assert.Equal(t, "out", OutputDir("out", "", now))
	assert.Equal(t, ".", OutputDir("", "", now))
	assert.Equal(t, filepath.Join("out", "run_20240309_140507"), OutputDir("out", "run", now))
}
