package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_RejectsUnknownFormat(t *testing.T) {
	_, err := NewLogger(Options{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestNewLogger_FileConsoleOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "station.log")

	logger, err := NewLogger(Options{Level: "info", Format: "console", OutputFile: path, Color: true})
	require.NoError(t, err)

	logger.ComponentInfo(ComponentStation, "satellite subscribed", zap.Uint64("satellite_id", 327))
	logger.ComponentDebug(ComponentStation, "filtered out")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	// file output never carries color codes
	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, "[STATION] satellite subscribed")
	assert.Contains(t, out, `"satellite_id": 327`)
	assert.NotContains(t, out, "filtered out")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNewLogger_FileJSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "station.json")

	logger, err := NewLogger(Options{Level: "warn", Format: "json", OutputFile: path})
	require.NoError(t, err)

	logger.Named(ComponentSatellite).Warn("write failed", zap.Uint64("satellite_id", 12))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"SATELLITE"`)
	assert.Contains(t, string(data), `"satellite_id":12`)
}

func TestNewLogger_Output(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(Options{Level: "warn", Format: "console", Output: &buf})
	require.NoError(t, err)

	logger.ComponentWarn(ComponentCLI, "subscription errors reported")
	logger.ComponentError(ComponentGeneral, "delivery panicked")
	logger.ComponentInfo(ComponentCLI, "filtered out")
	require.NoError(t, logger.Close())

	assert.Contains(t, buf.String(), "[CLI] subscription errors reported")
	assert.Contains(t, buf.String(), "[GENERAL] delivery panicked")
	assert.NotContains(t, buf.String(), "filtered out")
}

func TestClose_ReleasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "station.log")

	logger, err := NewLogger(Options{Level: "info", OutputFile: path})
	require.NoError(t, err)
	require.NotNil(t, logger.file)

	logger.ComponentInfo(ComponentStation, "closing")
	require.NoError(t, logger.Close())
	assert.Nil(t, logger.file)
	require.NoError(t, logger.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[STATION] closing")
}
