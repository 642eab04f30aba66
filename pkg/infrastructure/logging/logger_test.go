package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("dataset loaded", "member", "sales.csv", "rows", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "dataset loaded", record["msg"])
	assert.Equal(t, "sales.csv", record["member"])
	assert.EqualValues(t, 3, record["rows"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "loud"}, &bytes.Buffer{})
	assert.EqualError(t, err, "invalid log level: loud (expected debug, info, warn or error)")

	_, err = New(Config{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.EqualError(t, err, "unsupported log format: xml")
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, expected := range testCases {
		level, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	logger := slog.Default()
	assert.Same(t, logger, OrDiscard(logger))
}
