package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.File = filepath.Join(t.TempDir(), "yard.log")
	log, err := New(cfg)
	require.NoError(t, err)
	log.Debug("evaluated", zap.String("src", "1 + 2"), zap.Float64("result", 3))
	log.Sync()

	b, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "evaluated", entry["msg"])
	assert.Equal(t, "1 + 2", entry["src"])
	assert.Equal(t, 3.0, entry["result"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestNewLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "yard.log")
	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("hidden")
	log.Sync()
	b, _ := os.ReadFile(cfg.File)
	assert.Empty(t, b)

	cfg.Level = "loud"
	_, err = New(cfg)
	assert.Error(t, err)
}
