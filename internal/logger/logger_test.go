package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "gallery"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"filter": "warm", "visible": 1})
	log.Info("filter changed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "filter changed", entry["message"])
	require.Equal(t, "gallery", entry["component"])
	require.Equal(t, "warm", entry["filter"])
	require.EqualValues(t, 1, entry["visible"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.With("path", "gradients.yaml")
	log.Error(errors.New("boom"), "load failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "load failed", entry["message"])
	require.Equal(t, "gradients.yaml", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.ErrorContains(t, err, `log level "loud"`)

	log, err := New(Options{Level: " DEBUG ", Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.With("k", "v").Warn("ignored")
		Nop().Error(errors.New("x"), "ignored")
	})
}
