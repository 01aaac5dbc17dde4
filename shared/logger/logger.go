package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"tourdesk/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLevel = zerolog.InfoLevel

func console() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

// InitLogger switches the global logger to console output at trace level
// until SetLogLevel narrows it from config.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(console())
	log.Trace().Msg("Zerolog initialized.")
}

// AttachFileOutput tees the global logger into a size-rotated JSON file when
// SERVER_LOG_FILE_PATH is set. The returned closer flushes the file.
func AttachFileOutput(cfg *config.Config) io.Closer {
	fileCfg := cfg.Server.LogFile
	if fileCfg.Path == "" {
		return io.NopCloser(nil)
	}

	rotator := &lumberjack.Logger{
		Filename:   fileCfg.Path,
		MaxSize:    fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     fileCfg.MaxAgeDays,
		Compress:   true,
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(console(), rotator))
	log.Info().Str("path", fileCfg.Path).Msg("File logging enabled.")

	return rotator
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL. Empty or unknown values fall back to info.
func SetLogLevel(cfg *config.Config) {
	raw := strings.TrimSpace(cfg.Server.LogLevel)

	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if raw == "" || err != nil {
		log.Warn().Str("loglevel", raw).Msgf("Invalid or missing log level, using %s.", defaultLevel)

		level = defaultLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("loglevel", level.String()).Msg("Log level set.")
}
