package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-firewall/internal/config/configs"
)

func TestNewJSONToStdout(t *testing.T) {
	var buf bytes.Buffer
	log, closer := New(configs.Logger{Level: "warn", Format: "json"}, &buf)
	defer closer.Close()

	log.Info("dropped")
	log.Warn("kept", "campaign_id", "c1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "c1", rec["campaign_id"])
}

func TestNewAlsoWritesFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "firewall.log")
	log, closer := New(configs.Logger{Level: "info", Format: "text", File: path, MaxSizeMB: 1}, &buf)

	log.Info("scan cycle started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scan cycle started")
	assert.Contains(t, buf.String(), "scan cycle started")
}
