package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

func TestLogConfigDefaults(t *testing.T) {
	t.Setenv("FLIGHTDESK_LOG_LEVEL", "")
	t.Setenv("FLIGHTDESK_LOG_FORMAT", "")
	t.Setenv("FLIGHTDESK_LOG_DIR", "")

	cfg := LogConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.LogDir)
}

func TestLogConfigFromEnv(t *testing.T) {
	t.Setenv("FLIGHTDESK_LOG_LEVEL", "debug")
	t.Setenv("FLIGHTDESK_LOG_FORMAT", "json")

	cfg := LogConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, nil)))

	l.With("request_id", "abc").Info("hello")

	assert.Contains(t, buf.String(), "request_id=abc")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestHandlerWritesToLogDir(t *testing.T) {
	dir := t.TempDir()
	h := newHandler(&Conf{Level: "info", Format: "json", LogDir: dir})

	slog.New(h).Info("to file")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}
