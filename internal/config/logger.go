package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = newLogger(os.Stdout, zerolog.InfoLevel)

func newLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:     out,
		NoColor: false,
	}).With().Timestamp().Logger().Level(level)
}

// InitLogger sets the application log level. Unknown levels fall back to info.
func InitLogger(levelName string) {
	level := zerolog.InfoLevel
	if levelName != "" {
		if parsed, err := zerolog.ParseLevel(levelName); err == nil {
			level = parsed
		} else {
			logger.Warn().Str("invalid_level", levelName).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)
	logger.Info().Str("level", level.String()).Msg("Logging configured")
}

// GetLogger returns the application logger
func GetLogger() zerolog.Logger {
	return logger
}
