package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{" error ", zerolog.ErrorLevel, false},
		{"trace", zerolog.TraceLevel, false},
		{"loud", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatConsole, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Warning("ThemeStore", "load failed", map[string]interface{}{
		"path":  "/tmp/settings.json",
		"cause": errors.New("boom"),
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "ThemeStore", entry["component"])
	assert.Equal(t, "load failed", entry["message"])
	assert.Equal(t, "/tmp/settings.json", entry["path"])
	assert.Equal(t, "boom", entry["cause"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Debug("Watcher", "tick", nil)
	assert.Zero(t, buf.Len())

	log.Error("Watcher", errors.New("sample failed"), nil)
	assert.Contains(t, buf.String(), "sample failed")
}
