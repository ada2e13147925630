package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithoutFile(t *testing.T) {
	logger, err := New("", "info")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel), "empty file disables logging")
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "growgroove.log")

	logger, err := New(path, "WARN")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("theme has missing fields", zap.String("theme", "orange"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "theme has missing fields", entry["msg"])
	assert.Equal(t, "orange", entry["theme"])
	assert.Contains(t, entry, "time")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
