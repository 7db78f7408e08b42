package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, WARN)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "shown 3")
	assert.Contains(t, out, "[ERROR]")
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("Debug")
	require.NoError(t, err)
	assert.Equal(t, DEBUG, lvl)

	lvl, err = ParseLogLevel("error")
	require.NoError(t, err)
	assert.Equal(t, ERROR, lvl)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "UNKNOWN", LogLevel(9).String())
}
