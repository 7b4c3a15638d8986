package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleHandler_WritesJSONAndConsole(t *testing.T) {
	color.NoColor = true
	var out, console bytes.Buffer
	logger := slog.New(NewConsoleHandler(&out, &console, slog.LevelInfo)).With(slog.String("component", "test"))

	logger.Info("employee loaded", slog.Int64("id", 5))

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "employee loaded", line["msg"])
	assert.Equal(t, "hr_entity_api", line["service"])
	assert.Equal(t, "test", line["component"])
	assert.EqualValues(t, 5, line["id"])
	assert.Contains(t, line, "timestamp")

	assert.Contains(t, console.String(), "INFO")
	assert.Contains(t, console.String(), "employee loaded component=test id=5")
}

func TestConsoleHandler_LevelFilter(t *testing.T) {
	var out, console bytes.Buffer
	logger := slog.New(NewConsoleHandler(&out, &console, slog.LevelWarn))

	logger.Info("skipped")
	logger.Warn("kept")

	assert.NotContains(t, out.String(), "skipped")
	assert.Contains(t, out.String(), "kept")
	assert.NotContains(t, console.String(), "skipped")
}

func TestConsoleHandler_NoConsole(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewConsoleHandler(&out, nil, slog.LevelDebug))

	logger.Debug("quiet")

	assert.Contains(t, out.String(), "quiet")
}

func TestGormLogger_WritesWarnings(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewConsoleHandler(&out, nil, slog.LevelInfo))

	GormLogger(logger).Warn(t.Context(), "slow query %s", "SELECT 1")

	assert.Contains(t, out.String(), "slow query SELECT 1")
	assert.Contains(t, out.String(), `"level":"WARN"`)
}
