package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: LevelWarn, Output: &buf})
	require.NoError(t, err)

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "[DEBUG]")
	assert.NotContains(t, out, "[INFO]")
	assert.Contains(t, out, "[WARN] warn 3")
	assert.Contains(t, out, "[ERROR] error 4")
	assert.NotContains(t, out, colorReset, "no colors unless enabled")
}

func TestColoredPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: LevelDebug, Output: &buf, Color: true})
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), colorGreen+"[INFO]"+colorReset+" hello")
}

func TestDefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Output: &buf})
	require.NoError(t, err)

	assert.False(t, logger.Enabled(LevelDebug))
	assert.True(t, logger.Enabled(LevelInfo))
	assert.False(t, logger.Enabled("verbose"))
}

func TestInvalidLevel(t *testing.T) {
	_, err := NewLogger(&Config{Level: "loud"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "logs", "contactus.log")

	var console bytes.Buffer
	logger, err := NewLogger(&Config{
		Level:      LevelInfo,
		File:       file,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Output:     &console,
	})
	require.NoError(t, err)

	logger.Info("form submitted")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] form submitted")
	assert.Contains(t, console.String(), "[INFO] form submitted")
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.False(t, logger.Enabled(LevelError))
	logger.Error("dropped")
	assert.NoError(t, logger.Close())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"console only", Config{Level: "info"}, ""},
		{"upper case level", Config{Level: "INFO"}, ""},
		{"empty level", Config{}, ""},
		{"file", Config{Level: "debug", File: "x.log", MaxSize: 10, MaxBackups: 0, MaxAge: 0}, ""},
		{"bad level", Config{Level: "trace"}, "invalid log level"},
		{"bad size", Config{Level: "info", File: "x.log"}, "max_size"},
		{"bad backups", Config{Level: "info", File: "x.log", MaxSize: 1, MaxBackups: -1}, "max_backups"},
		{"bad age", Config{Level: "info", File: "x.log", MaxSize: 1, MaxAge: -1}, "max_age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), err.Error())
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ctx"))

	base := errors.New("boom")
	err := WrapError(base, "writing submission")
	assert.Equal(t, "writing submission: boom", err.Error())
	assert.ErrorIs(t, err, base)
}
