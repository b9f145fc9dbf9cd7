package periphery

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.WithDevice("/dev/mem").WithRegion(0x3f200000, 0xb4).LogOpen("register window", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "register window opened", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "/dev/mem", entry["device"])
	assert.Equal(t, map[string]any{"base": "0x3f200000", "size": "0xb4"}, entry["region"])
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.LogClose("device")
	logger.LogTimeout(16, 8)
	assert.Empty(t, buf.String())

	logger.LogTeardownFailure("device", errors.New("EBADF"))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "device teardown failed")
	assert.Contains(t, buf.String(), "EBADF")

	buf.Reset()
	logger.LogOpen("device", errors.New("ENOENT"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "device open failed")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.NotPanics(t, func() {
		logger.WithDevice("x").LogTeardownFailure("x", errors.New("y"))
	})
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
}
