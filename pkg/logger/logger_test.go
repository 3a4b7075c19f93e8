package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.Zerolog())
}

func TestInfo_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOptions(Options{Output: &buf})

	logger.Info("User %s logged in with ID %d", "john", 123)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "User john logged in with ID 123", record["message"])
	assert.Equal(t, "videotube", record["service"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOptions(Options{Level: "warn", Output: &buf})

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	assert.Zero(t, buf.Len())

	logger.Warn("Warning: %s count is %d", "items", 5)
	logger.Error("Failed to process request %d: %s", 404, "not found")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[1], `"level":"error"`)
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOptions(Options{Output: &buf}).With("request_id", "abc")

	logger.Info("handled")

	assert.Contains(t, buf.String(), `"request_id":"abc"`)
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOptions(Options{Format: "console", Output: &buf})

	logger.Info("Server starting on port %s", "8000")

	assert.Contains(t, buf.String(), "Server starting on port 8000")
	assert.False(t, json.Valid(buf.Bytes()))
}
