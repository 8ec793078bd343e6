package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLogLevel converts a level name to a zerolog level. An empty name means info.
func ParseLogLevel(level string) (zerolog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel, nil
	case "", "INFO":
		return zerolog.InfoLevel, nil
	case "WARN":
		return zerolog.WarnLevel, nil
	case "ERROR":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: invalid log level %q", ErrInvalidConfig, level)
	}
}

// SetLogLevel sets the log level for the application and writes human readable logs to stderr.
func SetLogLevel(level string) error {
	return SetLogOutput(level, os.Stderr)
}

// SetLogOutput is like SetLogLevel but writes to w.
func SetLogOutput(level string, w io.Writer) error {
	zlevel, err := ParseLogLevel(level)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(zlevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime})
	return nil
}
