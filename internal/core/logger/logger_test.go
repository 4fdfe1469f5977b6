package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, cleanup := buildLogger(Options{Level: "info", JSON: true}, zapcore.AddSync(&buf))
	l.Debug("hidden")
	l.Info("stock adjusted", zap.String("item_id", "abc"))
	cleanup()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "stock adjusted", entry["msg"])
	assert.Equal(t, "abc", entry["item_id"])
	assert.Contains(t, entry, "ts")
}

func TestBuildLogger_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l, cleanup := buildLogger(Options{Level: "loud", JSON: true}, zapcore.AddSync(&buf))
	l.Debug("hidden")
	l.Info("shown")
	cleanup()
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestBuildLogger_Rotate(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "app.log")
	l, cleanup := buildLogger(Options{
		Level:  "info",
		JSON:   true,
		Rotate: FileRotate{Enable: true, Filename: file, MaxSizeMB: 1},
	}, zapcore.AddSync(&buf))
	l.Info("to both")
	cleanup()
	assert.FileExists(t, file)
}

func TestToWriter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := ToWriter(zap.New(core), zapcore.WarnLevel)

	n, err := w.Write([]byte("[GIN-debug] route registered\n"))
	require.NoError(t, err)
	assert.Equal(t, 29, n)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "[GIN-debug] route registered", logs.All()[0].Message)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestToStdLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	std, err := ToStdLogger(zap.New(core), zapcore.InfoLevel)
	require.NoError(t, err)
	std.Printf("slow sql %dms", 250)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "slow sql 250ms", logs.All()[0].Message)
}
