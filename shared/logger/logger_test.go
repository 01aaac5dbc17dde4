package logger_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tourdesk/config"
	"tourdesk/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogger(t *testing.T) {
	restoreLogger(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("seat allocation failed"))

	assert.Contains(t, buf.String(), "seat allocation failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
	}{
		{raw: "trace", want: zerolog.TraceLevel},
		{raw: "debug", want: zerolog.DebugLevel},
		{raw: "WARN", want: zerolog.WarnLevel},
		{raw: " error ", want: zerolog.ErrorLevel},
		{raw: "", want: zerolog.InfoLevel},
		{raw: "chatty", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			restoreLogger(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.raw

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestAttachFileOutput(t *testing.T) {
	restoreLogger(t)

	path := filepath.Join(t.TempDir(), "tourdesk.log")

	cfg := &config.Config{}
	cfg.Server.LogFile.Path = path
	cfg.Server.LogFile.MaxSizeMB = 1

	closer := logger.AttachFileOutput(cfg)
	log.Info().Str("booking", "BK-1").Msg("booking confirmed")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "booking confirmed")
	assert.Contains(t, string(content), `"booking":"BK-1"`)
}

func TestAttachFileOutputWithoutPath(t *testing.T) {
	restoreLogger(t)

	closer := logger.AttachFileOutput(&config.Config{})

	assert.NoError(t, closer.Close())
}
